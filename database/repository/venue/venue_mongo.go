package venueRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoVenueRepo implements Repository using MongoDB.
type MongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo creates a new instance of Repository using MongoDB.
func NewMongoVenueRepo() Repository {
	coll := database.DB().Collection("venues")
	repo := &MongoVenueRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create venue indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new venue document.
func (r *MongoVenueRepo) Create(venue *models.Venue) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	venue.CreatedAt = time.Now()
	if venue.UnavailableDates == nil {
		venue.UnavailableDates = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, venue); err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

// GetByID retrieves a venue by its unique ID.
func (r *MongoVenueRepo) GetByID(id string) (*models.Venue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var venue models.Venue
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&venue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch venue with id %s: %w", id, err)
	}
	return &venue, nil
}

// GetAll retrieves all venue documents.
func (r *MongoVenueRepo) GetAll() ([]models.Venue, error) {
	return r.find(bson.M{})
}

// GetByOwner retrieves all venues belonging to one owner.
func (r *MongoVenueRepo) GetByOwner(ownerID string) ([]models.Venue, error) {
	return r.find(bson.M{"owner_id": ownerID})
}

func (r *MongoVenueRepo) find(filter bson.M) ([]models.Venue, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve venues: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	for cursor.Next(ctx) {
		var v models.Venue
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return venues, nil
}

// UpdateDisplay modifies the owner-mutable display fields of a venue.
// OwnerID, UnavailableDates and CreatedAt are never touched here.
func (r *MongoVenueRepo) UpdateDisplay(id string, upd models.VenueUpdate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}
	if len(set) == 0 {
		return nil
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update venue with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddUnavailableDate adds a date to the venue's unavailable set. $addToSet
// makes re-adding a present date a no-op, so blocking is idempotent.
func (r *MongoVenueRepo) AddUnavailableDate(id, date string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"unavailable_dates": date}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add unavailable date for venue %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveUnavailableDate removes a date from the venue's unavailable set.
// Removing an absent date is a no-op.
func (r *MongoVenueRepo) RemoveUnavailableDate(id, date string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"unavailable_dates": date}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to remove unavailable date for venue %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
