package venueRepo

import (
	"errors"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"
)

// ErrNotFound is returned when the referenced venue does not exist.
var ErrNotFound = errors.New("venue not found")

// Repository defines methods for venue data access.
type Repository interface {
	// Create inserts a new venue record.
	Create(venue *models.Venue) error
	// GetByID retrieves a venue by its unique ID.
	GetByID(id string) (*models.Venue, error)
	// GetAll retrieves all venues.
	GetAll() ([]models.Venue, error)
	// GetByOwner retrieves all venues belonging to one owner.
	GetByOwner(ownerID string) ([]models.Venue, error)
	// UpdateDisplay modifies the owner-mutable display fields.
	UpdateDisplay(id string, upd models.VenueUpdate) error
	// AddUnavailableDate adds a date to the venue's unavailable set.
	// Adding an already-present date is a no-op.
	AddUnavailableDate(id, date string) error
	// RemoveUnavailableDate removes a date from the venue's unavailable set.
	// Removing an absent date is a no-op.
	RemoveUnavailableDate(id, date string) error
}
