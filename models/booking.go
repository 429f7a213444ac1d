package models

import "time"

// Booking status values. Only "confirmed" is produced today; "pending" and
// "cancelled" are reserved.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed reservation of one venue for one date by one
// user. Booking records are never mutated in place and there is no
// cancellation path; at most one confirmed booking may exist per
// (venue, date).
type Booking struct {
	ID       string    `bson:"id" json:"id"`                   // Unique booking identifier (UUID)
	VenueID  string    `bson:"venue_id" json:"venueId"`        // Venue that was booked
	UserID   string    `bson:"user_id" json:"userId"`          // User who made the booking
	Date     string    `bson:"date" json:"bookingDate"`        // Booking date in "YYYY-MM-DD" format
	Status   string    `bson:"status" json:"status"`           // e.g. "confirmed"
	BookedAt time.Time `bson:"booked_at" json:"bookedAt"`      // Timestamp when the booking was created
}
