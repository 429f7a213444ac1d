package models

import (
	"slices"
	"time"
)

// Venue represents a bookable listing owned by one user.
type Venue struct {
	ID          string `bson:"id" json:"id"`             // Unique venue identifier (UUID), assigned at creation
	OwnerID     string `bson:"owner_id" json:"ownerId"`  // Owning user; immutable after creation
	Name        string `bson:"name" json:"name"`         // Display name
	Location    string `bson:"location" json:"location"` // Display location
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	// Dates in "YYYY-MM-DD" on which the venue cannot be booked, caused by an
	// owner block or a confirmed booking. Unordered, no duplicates.
	UnavailableDates []string  `bson:"unavailable_dates" json:"unavailableDates"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}

// IsUnavailable reports whether date is in the venue's unavailable set.
func (v *Venue) IsUnavailable(date string) bool {
	return slices.Contains(v.UnavailableDates, date)
}

// VenueUpdate carries the owner-mutable display fields. Nil fields are left
// untouched.
type VenueUpdate struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}
