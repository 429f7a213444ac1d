package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements Repository using MongoDB. It holds the venues
// collection as well so the confirmed-booking commit can span both documents
// in one transaction.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	venueColl   *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() Repository {
	db := database.DB()
	repo := &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		venueColl:   db.Collection("venues"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.bookingColl.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByUser retrieves all bookings made by one user.
func (r *MongoBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	return r.find(bson.M{"user_id": userID})
}

// GetByVenue retrieves all bookings for one venue.
func (r *MongoBookingRepo) GetByVenue(venueID string) ([]models.Booking, error) {
	return r.find(bson.M{"venue_id": venueID})
}

// FindByVenueAndDate retrieves bookings for a given venue and date.
func (r *MongoBookingRepo) FindByVenueAndDate(venueID, date string) ([]models.Booking, error) {
	return r.find(bson.M{"venue_id": venueID, "date": date})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// CreateConfirmed atomically inserts a confirmed booking and embeds its date
// in the venue's unavailable set. The partial unique index on
// (venue_id, date, status=confirmed) rejects the insert when a confirmed
// booking already exists, so two racing callers cannot both commit: the
// loser's insert fails inside the transaction and everything is rolled back.
func (r *MongoBookingRepo) CreateConfirmed(ctx context.Context, booking *models.Booking) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrDuplicateBooking
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}

		update := bson.M{"$addToSet": bson.M{"unavailable_dates": booking.Date}}
		res, err := r.venueColl.UpdateOne(sc, bson.M{"id": booking.VenueID}, update)
		if err != nil {
			return fmt.Errorf("embed unavailable date failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrVenueNotFound
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrDuplicateBooking || err == ErrVenueNotFound {
			return err
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
