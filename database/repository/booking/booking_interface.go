package bookingRepo

import (
	"context"
	"errors"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"
)

// ErrDuplicateBooking is returned when a confirmed booking already exists for
// the same (venue, date). It is the storage layer's rejection of the losing
// side of a booking race.
var ErrDuplicateBooking = errors.New("confirmed booking already exists for this venue and date")

// ErrVenueNotFound is returned by the transactional commit when the
// referenced venue document does not exist.
var ErrVenueNotFound = errors.New("venue not found")

// Repository defines methods for booking data access.
type Repository interface {
	// Create inserts a new booking record. Uniqueness per (venue, date) is
	// NOT enforced here; use CreateConfirmed for the guarded commit.
	Create(booking *models.Booking) error
	// GetByUser retrieves all bookings made by one user.
	GetByUser(userID string) ([]models.Booking, error)
	// GetByVenue retrieves all bookings for one venue.
	GetByVenue(venueID string) ([]models.Booking, error)
	// FindByVenueAndDate retrieves bookings for a given venue and date.
	FindByVenueAndDate(venueID, date string) ([]models.Booking, error)
	// CreateConfirmed atomically inserts a confirmed booking and adds its
	// date to the venue's unavailable set. A second confirmed booking for
	// the same (venue, date) fails with ErrDuplicateBooking; a missing
	// venue fails with ErrVenueNotFound. Either failure leaves both
	// collections unchanged.
	CreateConfirmed(ctx context.Context, booking *models.Booking) error
}
