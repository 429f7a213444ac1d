package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/services/availability"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/services/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCoordinator(t *testing.T) (*DefaultCoordinator, *fakeVenueRepo, *fakeBookingRepo) {
	t.Helper()
	venues := newFakeVenueRepo()
	bookings := newFakeBookingRepo(venues)
	hub := notify.NewHub(notify.NewMemoryBroker(), venues, bookings, zap.NewNop())
	coord := &DefaultCoordinator{
		Venues:   venues,
		Bookings: bookings,
		Bus:      hub,
		Logger:   zap.NewNop(),
	}
	return coord, venues, bookings
}

func seedVenue(t *testing.T, venues *fakeVenueRepo, id, ownerID string, unavailable ...string) {
	t.Helper()
	require.NoError(t, venues.Create(&models.Venue{
		ID:               id,
		OwnerID:          ownerID,
		Name:             "Test Hall",
		Location:         "Hyderabad",
		UnavailableDates: unavailable,
	}))
}

func TestBook_HappyPath(t *testing.T) {
	coord, venues, bookings := newTestCoordinator(t)
	seedVenue(t, venues, "v1", "owner1")

	bk, err := coord.Book(context.Background(), "v1", "u1", "2025-08-15")
	require.NoError(t, err)
	require.NotNil(t, bk)
	assert.NotEmpty(t, bk.ID)
	assert.Equal(t, "v1", bk.VenueID)
	assert.Equal(t, "u1", bk.UserID)
	assert.Equal(t, models.BookingStatusConfirmed, bk.Status)
	assert.False(t, bk.BookedAt.IsZero())

	// Booking implies unavailable.
	venue, err := venues.GetByID("v1")
	require.NoError(t, err)
	assert.False(t, availability.IsBookable(venue, "2025-08-15"))

	stored, err := bookings.FindByVenueAndDate("v1", "2025-08-15")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, bk.ID, stored[0].ID)
}

func TestBook_InvalidInput(t *testing.T) {
	coord, venues, _ := newTestCoordinator(t)
	seedVenue(t, venues, "v1", "owner1")

	cases := []struct {
		name    string
		venueID string
		userID  string
		date    string
	}{
		{"empty venue id", "", "u1", "2025-08-15"},
		{"empty user id", "v1", "", "2025-08-15"},
		{"empty date", "v1", "u1", ""},
		{"malformed date", "v1", "u1", "15/08/2025"},
		{"impossible date", "v1", "u1", "2025-02-30"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coord.Book(context.Background(), tc.venueID, tc.userID, tc.date)
			require.Error(t, err)
			assert.Equal(t, KindInvalidInput, KindOf(err))
		})
	}
}

func TestBook_UnknownVenue(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)

	_, err := coord.Book(context.Background(), "missing", "u1", "2025-08-15")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestBook_BlockedDate(t *testing.T) {
	coord, venues, _ := newTestCoordinator(t)
	seedVenue(t, venues, "v1", "owner1", "2025-08-15")

	_, err := coord.Book(context.Background(), "v1", "u1", "2025-08-15")
	require.Error(t, err)
	assert.Equal(t, KindDateUnavailable, KindOf(err))
}

func TestBook_SecondBookerRejected(t *testing.T) {
	coord, venues, _ := newTestCoordinator(t)
	seedVenue(t, venues, "v1", "owner1")

	_, err := coord.Book(context.Background(), "v1", "u1", "2025-08-15")
	require.NoError(t, err)

	_, err = coord.Book(context.Background(), "v1", "u2", "2025-08-15")
	require.Error(t, err)
	kind := KindOf(err)
	assert.Contains(t, []Kind{KindDateUnavailable, KindAlreadyBooked}, kind)
}

func TestBook_AlreadyBookedViaSecondaryCheck(t *testing.T) {
	coord, venues, bookings := newTestCoordinator(t)
	seedVenue(t, venues, "v1", "owner1")

	// A confirmed booking exists but its date drifted out of the venue set
	// (e.g. the owner unblocked it). The snapshot check passes; the
	// secondary query must still reject.
	require.NoError(t, bookings.Create(&models.Booking{
		ID: "b0", VenueID: "v1", UserID: "u1",
		Date: "2025-08-15", Status: models.BookingStatusConfirmed,
	}))

	_, err := coord.Book(context.Background(), "v1", "u2", "2025-08-15")
	require.Error(t, err)
	assert.Equal(t, KindAlreadyBooked, KindOf(err))
}

// TestBook_NoDoubleBookingUnderConcurrency races many callers on one
// (venue, date) and requires that exactly one confirmed booking exists
// afterwards, the losers all seeing a coherent rejection.
func TestBook_NoDoubleBookingUnderConcurrency(t *testing.T) {
	coord, venues, bookings := newTestCoordinator(t)
	seedVenue(t, venues, "v1", "owner1")

	const callers = 32
	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user-%d", i)
			_, errs[i] = coord.Book(context.Background(), "v1", user, "2025-08-15")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		kind := KindOf(err)
		assert.Contains(t,
			[]Kind{KindDateUnavailable, KindAlreadyBooked, KindConflict}, kind)
	}
	assert.Equal(t, 1, successes)

	confirmed := 0
	stored, err := bookings.FindByVenueAndDate("v1", "2025-08-15")
	require.NoError(t, err)
	for _, b := range stored {
		if b.Status == models.BookingStatusConfirmed {
			confirmed++
		}
	}
	assert.Equal(t, 1, confirmed)
}

func TestBlockDate_Idempotent(t *testing.T) {
	coord, venues, _ := newTestCoordinator(t)
	seedVenue(t, venues, "v1", "owner1")

	require.NoError(t, coord.BlockDate(context.Background(), "v1", "2025-09-01"))
	once, err := venues.GetByID("v1")
	require.NoError(t, err)

	require.NoError(t, coord.BlockDate(context.Background(), "v1", "2025-09-01"))
	twice, err := venues.GetByID("v1")
	require.NoError(t, err)

	assert.Equal(t, once.UnavailableDates, twice.UnavailableDates)
	assert.Equal(t, []string{"2025-09-01"}, twice.UnavailableDates)
}

func TestUnblockDate_AbsentDateIsNoop(t *testing.T) {
	coord, venues, _ := newTestCoordinator(t)
	seedVenue(t, venues, "v1", "owner1", "2025-09-01")

	require.NoError(t, coord.UnblockDate(context.Background(), "v1", "2025-12-25"))

	venue, err := venues.GetByID("v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-09-01"}, venue.UnavailableDates)
}

func TestBlockUnblock_RoundTrip(t *testing.T) {
	coord, venues, _ := newTestCoordinator(t)
	seedVenue(t, venues, "v1", "owner1")

	before, err := venues.GetByID("v1")
	require.NoError(t, err)
	wasBookable := availability.IsBookable(before, "2025-09-01")

	require.NoError(t, coord.BlockDate(context.Background(), "v1", "2025-09-01"))
	require.NoError(t, coord.UnblockDate(context.Background(), "v1", "2025-09-01"))

	after, err := venues.GetByID("v1")
	require.NoError(t, err)
	assert.Equal(t, wasBookable, availability.IsBookable(after, "2025-09-01"))
}

func TestToggle_Validation(t *testing.T) {
	coord, venues, _ := newTestCoordinator(t)
	seedVenue(t, venues, "v1", "owner1")
	ctx := context.Background()

	assert.Equal(t, KindInvalidInput, KindOf(coord.BlockDate(ctx, "", "2025-09-01")))
	assert.Equal(t, KindInvalidInput, KindOf(coord.BlockDate(ctx, "v1", "")))
	assert.Equal(t, KindInvalidInput, KindOf(coord.UnblockDate(ctx, "v1", "not-a-date")))
	assert.Equal(t, KindNotFound, KindOf(coord.BlockDate(ctx, "missing", "2025-09-01")))
	assert.Equal(t, KindNotFound, KindOf(coord.UnblockDate(ctx, "missing", "2025-09-01")))
}

// TestScenario_BookBlockUnblock walks the full dashboard scenario: a booking
// takes a date, a rival booker is turned away, the owner blocks another date
// and then reopens the booked one, which leaves the booking record behind.
func TestScenario_BookBlockUnblock(t *testing.T) {
	coord, venues, bookings := newTestCoordinator(t)
	seedVenue(t, venues, "V1", "owner1")
	ctx := context.Background()

	bk, err := coord.Book(ctx, "V1", "u1", "2025-08-15")
	require.NoError(t, err)

	venue, err := venues.GetByID("V1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-08-15"}, venue.UnavailableDates)

	_, err = coord.Book(ctx, "V1", "u2", "2025-08-15")
	require.Error(t, err)
	assert.Contains(t, []Kind{KindAlreadyBooked, KindDateUnavailable}, KindOf(err))

	require.NoError(t, coord.BlockDate(ctx, "V1", "2025-09-01"))
	venue, err = venues.GetByID("V1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2025-08-15", "2025-09-01"}, venue.UnavailableDates)

	require.NoError(t, coord.UnblockDate(ctx, "V1", "2025-08-15"))
	venue, err = venues.GetByID("V1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-09-01"}, venue.UnavailableDates)

	// The original booking record survives the unblock.
	stored, err := bookings.FindByVenueAndDate("V1", "2025-08-15")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, bk.ID, stored[0].ID)
	assert.Equal(t, models.BookingStatusConfirmed, stored[0].Status)
}
