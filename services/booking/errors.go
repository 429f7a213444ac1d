package booking

import (
	"errors"
	"fmt"
)

// Kind classifies coordinator failures for the presentation layer.
type Kind string

const (
	// KindInvalidInput marks a missing or malformed venue id, date, or
	// required venue field.
	KindInvalidInput Kind = "invalid_input"
	// KindNotFound marks a reference to a venue that does not exist.
	KindNotFound Kind = "not_found"
	// KindDateUnavailable marks a target date already blocked or booked per
	// the venue snapshot.
	KindDateUnavailable Kind = "date_unavailable"
	// KindAlreadyBooked marks an existing confirmed booking detected by the
	// secondary query.
	KindAlreadyBooked Kind = "already_booked"
	// KindConflict marks a storage-layer atomic-write rejection: the caller
	// lost a race on the same (venue, date).
	KindConflict Kind = "conflict"
	// KindStoreUnavailable marks an unreachable or failing store.
	KindStoreUnavailable Kind = "store_unavailable"
)

// Error is the result value every coordinator failure is recovered into.
// Nothing propagates past the coordinator as an uncaught fault.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind from an error returned by the
// coordinator. Unrecognized errors report KindStoreUnavailable, the
// fail-closed default.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStoreUnavailable
}
