package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/booking"
	venueRepo "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/venue"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/services/availability"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/services/notify"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCoordinator implements Coordinator over the venue and booking
// repositories, publishing change notifications after every committed
// mutation.
type DefaultCoordinator struct {
	Venues   venueRepo.Repository
	Bookings bookingRepo.Repository
	Bus      *notify.Hub
	Logger   *zap.Logger
}

// Book runs the booking protocol: validate, check the venue snapshot,
// re-check the booking store, then commit atomically. The snapshot check and
// the re-check are advisory fast paths over possibly-stale reads; the commit
// itself is the only step that decides a race, via the storage layer's
// uniqueness guarantee.
func (c *DefaultCoordinator) Book(ctx context.Context, venueID, userID, date string) (*models.Booking, error) {
	if venueID == "" {
		return nil, newError(KindInvalidInput, "venue id is required")
	}
	if userID == "" {
		return nil, newError(KindInvalidInput, "user id is required")
	}
	if !availability.ValidDate(date) {
		return nil, newError(KindInvalidInput, "date %q is not a valid YYYY-MM-DD date", date)
	}

	venue, err := c.Venues.GetByID(venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrNotFound) {
			return nil, newError(KindNotFound, "venue %s does not exist", venueID)
		}
		return nil, c.storeFailure("fetch venue", err)
	}

	if !availability.IsBookable(venue, date) {
		return nil, newError(KindDateUnavailable, "venue %s is not available on %s", venueID, date)
	}

	existing, err := c.Bookings.FindByVenueAndDate(venueID, date)
	if err != nil {
		return nil, c.storeFailure("check existing bookings", err)
	}
	for _, b := range existing {
		if b.Status == models.BookingStatusConfirmed {
			return nil, newError(KindAlreadyBooked, "venue %s is already booked on %s", venueID, date)
		}
	}

	bk := &models.Booking{
		ID:       uuid.New().String(),
		VenueID:  venueID,
		UserID:   userID,
		Date:     date,
		Status:   models.BookingStatusConfirmed,
		BookedAt: time.Now(),
	}

	if err := c.Bookings.CreateConfirmed(ctx, bk); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrDuplicateBooking):
			// Lost the race: another caller committed between our checks
			// and this write. The store kept the invariant; we report it.
			return nil, newError(KindConflict, "venue %s was booked concurrently on %s", venueID, date)
		case errors.Is(err, bookingRepo.ErrVenueNotFound):
			return nil, newError(KindNotFound, "venue %s does not exist", venueID)
		default:
			return nil, c.storeFailure("commit booking", err)
		}
	}

	c.Logger.Info("booking confirmed",
		zap.String("bookingId", bk.ID),
		zap.String("venueId", venueID),
		zap.String("userId", userID),
		zap.String("date", date))

	c.Bus.Publish(ctx,
		notify.TopicVenues,
		notify.TopicVenuesByOwner(venue.OwnerID),
		notify.TopicBookingsByUser(userID))

	return bk, nil
}

// BlockDate marks a date unavailable on behalf of the owner. Idempotent.
func (c *DefaultCoordinator) BlockDate(ctx context.Context, venueID, date string) error {
	venue, err := c.validateToggle(venueID, date)
	if err != nil {
		return err
	}

	if err := c.Venues.AddUnavailableDate(venueID, date); err != nil {
		if errors.Is(err, venueRepo.ErrNotFound) {
			return newError(KindNotFound, "venue %s does not exist", venueID)
		}
		return c.storeFailure("block date", err)
	}

	c.Bus.Publish(ctx, notify.TopicVenues, notify.TopicVenuesByOwner(venue.OwnerID))
	return nil
}

// UnblockDate removes a date from the venue's unavailable set. Idempotent.
// The unavailable set carries no provenance, so this also reopens dates that
// are unavailable because of a confirmed booking; when that happens the
// inconsistency is logged (the booking record survives) and the
// reconciliation sweep will restore the date.
func (c *DefaultCoordinator) UnblockDate(ctx context.Context, venueID, date string) error {
	venue, err := c.validateToggle(venueID, date)
	if err != nil {
		return err
	}

	if err := c.Venues.RemoveUnavailableDate(venueID, date); err != nil {
		if errors.Is(err, venueRepo.ErrNotFound) {
			return newError(KindNotFound, "venue %s does not exist", venueID)
		}
		return c.storeFailure("unblock date", err)
	}

	if existing, err := c.Bookings.FindByVenueAndDate(venueID, date); err == nil {
		for _, b := range existing {
			if b.Status == models.BookingStatusConfirmed {
				c.Logger.Warn("unblocked a date that still has a confirmed booking",
					zap.String("venueId", venueID),
					zap.String("date", date),
					zap.String("bookingId", b.ID))
				break
			}
		}
	}

	c.Bus.Publish(ctx, notify.TopicVenues, notify.TopicVenuesByOwner(venue.OwnerID))
	return nil
}

// validateToggle runs the shared input validation for BlockDate and
// UnblockDate and resolves the venue.
func (c *DefaultCoordinator) validateToggle(venueID, date string) (*models.Venue, error) {
	if venueID == "" {
		return nil, newError(KindInvalidInput, "venue id is required")
	}
	if !availability.ValidDate(date) {
		return nil, newError(KindInvalidInput, "date %q is not a valid YYYY-MM-DD date", date)
	}

	venue, err := c.Venues.GetByID(venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrNotFound) {
			return nil, newError(KindNotFound, "venue %s does not exist", venueID)
		}
		return nil, c.storeFailure("fetch venue", err)
	}
	return venue, nil
}

func (c *DefaultCoordinator) storeFailure(op string, err error) *Error {
	c.Logger.Error("store operation failed", zap.String("op", op), zap.Error(err))
	return newError(KindStoreUnavailable, "storage failure during %s", op)
}
