package booking

import (
	"context"
	"slices"
	"sync"

	bookingRepo "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/booking"
	venueRepo "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/venue"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"
)

// fakeVenueRepo is an in-memory venueRepo.Repository.
type fakeVenueRepo struct {
	mu     sync.Mutex
	venues map[string]*models.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: make(map[string]*models.Venue)}
}

func copyVenue(v *models.Venue) *models.Venue {
	cp := *v
	cp.UnavailableDates = slices.Clone(v.UnavailableDates)
	return &cp
}

func (f *fakeVenueRepo) Create(v *models.Venue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.venues[v.ID] = copyVenue(v)
	return nil
}

func (f *fakeVenueRepo) GetByID(id string) (*models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.venues[id]
	if !ok {
		return nil, venueRepo.ErrNotFound
	}
	return copyVenue(v), nil
}

func (f *fakeVenueRepo) GetAll() ([]models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Venue
	for _, v := range f.venues {
		out = append(out, *copyVenue(v))
	}
	return out, nil
}

func (f *fakeVenueRepo) GetByOwner(ownerID string) ([]models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Venue
	for _, v := range f.venues {
		if v.OwnerID == ownerID {
			out = append(out, *copyVenue(v))
		}
	}
	return out, nil
}

func (f *fakeVenueRepo) UpdateDisplay(id string, upd models.VenueUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.venues[id]
	if !ok {
		return venueRepo.ErrNotFound
	}
	if upd.Name != nil {
		v.Name = *upd.Name
	}
	if upd.Location != nil {
		v.Location = *upd.Location
	}
	if upd.Description != nil {
		v.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		v.ImageURL = *upd.ImageURL
	}
	return nil
}

func (f *fakeVenueRepo) AddUnavailableDate(id, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addDateLocked(id, date)
}

func (f *fakeVenueRepo) addDateLocked(id, date string) error {
	v, ok := f.venues[id]
	if !ok {
		return venueRepo.ErrNotFound
	}
	if !slices.Contains(v.UnavailableDates, date) {
		v.UnavailableDates = append(v.UnavailableDates, date)
	}
	return nil
}

func (f *fakeVenueRepo) RemoveUnavailableDate(id, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.venues[id]
	if !ok {
		return venueRepo.ErrNotFound
	}
	v.UnavailableDates = slices.DeleteFunc(v.UnavailableDates, func(d string) bool {
		return d == date
	})
	return nil
}

// fakeBookingRepo is an in-memory bookingRepo.Repository. CreateConfirmed
// serializes commits on one mutex, so the per-(venue, date) uniqueness check
// plus the insert behave like the storage layer's atomic conditional write.
type fakeBookingRepo struct {
	mu       sync.Mutex
	venues   *fakeVenueRepo
	bookings []models.Booking
}

func newFakeBookingRepo(venues *fakeVenueRepo) *fakeBookingRepo {
	return &fakeBookingRepo{venues: venues}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByVenue(venueID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.VenueID == venueID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByVenueAndDate(venueID, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.VenueID == venueID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CreateConfirmed(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.bookings {
		if existing.VenueID == b.VenueID && existing.Date == b.Date &&
			existing.Status == models.BookingStatusConfirmed {
			return bookingRepo.ErrDuplicateBooking
		}
	}

	f.venues.mu.Lock()
	err := f.venues.addDateLocked(b.VenueID, b.Date)
	f.venues.mu.Unlock()
	if err != nil {
		return bookingRepo.ErrVenueNotFound
	}

	f.bookings = append(f.bookings, *b)
	return nil
}
