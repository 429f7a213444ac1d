package booking

import (
	"context"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"
)

// Coordinator orchestrates the check-then-commit sequence for booking and
// the toggle sequence for blocking and unblocking dates. It is the only
// writer of booking records and the component that enforces the
// no-double-booking invariant across concurrent callers.
type Coordinator interface {
	// Book reserves the venue for the user on the given date. On success
	// the created booking is returned and the date is in the venue's
	// unavailable set. All failures are *Error values.
	Book(ctx context.Context, venueID, userID, date string) (*models.Booking, error)
	// BlockDate marks a date unavailable on behalf of the owner.
	// Blocking an already-blocked date succeeds silently.
	BlockDate(ctx context.Context, venueID, date string) error
	// UnblockDate removes a date from the venue's unavailable set,
	// regardless of whether a block or a booking put it there. Unblocking
	// an absent date succeeds silently.
	UnblockDate(ctx context.Context, venueID, date string) error
}
