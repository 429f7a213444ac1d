// Package availability holds the pure availability predicate. It answers the
// "is this legal" question over a venue snapshot; making it so is the
// coordinator's job.
package availability

import (
	"time"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"
)

// DateLayout is the calendar-date wire format used throughout the system.
const DateLayout = "2006-01-02"

// IsBookable reports whether the venue can be booked on the given date,
// judged solely from the passed-in snapshot. A date is bookable iff it is
// not in the venue's unavailable set.
func IsBookable(venue *models.Venue, date string) bool {
	if venue == nil {
		return false
	}
	return !venue.IsUnavailable(date)
}

// ValidDate reports whether s is a well-formed "YYYY-MM-DD" calendar date.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
