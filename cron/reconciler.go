package cron

import (
	"context"

	bookingRepo "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/booking"
	venueRepo "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/venue"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/services/notify"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reconciler periodically restores the invariant that every confirmed
// booking's date is present in its venue's unavailable set. The unavailable
// set carries no provenance, so an owner can unblock a booked date; this
// sweep re-adds such dates instead of leaving the venue bookable twice.
type Reconciler struct {
	Venues   venueRepo.Repository
	Bookings bookingRepo.Repository
	Bus      *notify.Hub
	Logger   *zap.Logger
}

// Start schedules the sweep on the given cron spec and returns the runner so
// the caller can stop it on shutdown.
func (r *Reconciler) Start(schedule string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, r.Sweep); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

// Sweep runs one reconciliation pass over all venues.
func (r *Reconciler) Sweep() {
	venues, err := r.Venues.GetAll()
	if err != nil {
		r.Logger.Error("reconciler: failed to list venues", zap.Error(err))
		return
	}

	for i := range venues {
		r.reconcileVenue(&venues[i])
	}
}

func (r *Reconciler) reconcileVenue(venue *models.Venue) {
	bookings, err := r.Bookings.GetByVenue(venue.ID)
	if err != nil {
		r.Logger.Error("reconciler: failed to list bookings",
			zap.String("venueId", venue.ID), zap.Error(err))
		return
	}

	repaired := false
	for _, b := range bookings {
		if b.Status != models.BookingStatusConfirmed || venue.IsUnavailable(b.Date) {
			continue
		}
		if err := r.Venues.AddUnavailableDate(venue.ID, b.Date); err != nil {
			r.Logger.Error("reconciler: failed to restore unavailable date",
				zap.String("venueId", venue.ID),
				zap.String("date", b.Date),
				zap.Error(err))
			continue
		}
		r.Logger.Warn("reconciler: restored booked date to unavailable set",
			zap.String("venueId", venue.ID),
			zap.String("date", b.Date),
			zap.String("bookingId", b.ID))
		repaired = true
	}

	if repaired {
		r.Bus.Publish(context.Background(),
			notify.TopicVenues, notify.TopicVenuesByOwner(venue.OwnerID))
	}
}
