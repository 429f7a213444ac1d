package handlers

import (
	"io"
	"net/http"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/services/notify"

	"github.com/gin-gonic/gin"
)

// LiveHandler exposes the change notification bus over server-sent events.
// Each stream delivers the full current result set for its query: once on
// connect, then again after every matching mutation.
type LiveHandler struct {
	Hub *notify.Hub
}

// NewLiveHandler creates a LiveHandler.
func NewLiveHandler(hub *notify.Hub) *LiveHandler {
	return &LiveHandler{Hub: hub}
}

// VenuesStream streams the all-venues result set.
func (h *LiveHandler) VenuesStream(c *gin.Context) {
	h.stream(c, notify.TopicVenues)
}

// OwnerVenuesStream streams one owner's venues.
func (h *LiveHandler) OwnerVenuesStream(c *gin.Context) {
	h.stream(c, notify.TopicVenuesByOwner(c.Param("ownerId")))
}

// UserBookingsStream streams one user's bookings.
func (h *LiveHandler) UserBookingsStream(c *gin.Context) {
	h.stream(c, notify.TopicBookingsByUser(c.Param("userId")))
}

func (h *LiveHandler) stream(c *gin.Context, topic string) {
	updates := make(chan any, 8)
	sub := h.Hub.Subscribe(topic, func(payload any) {
		// Drop when the client is slow; the snapshot is a full result set,
		// so the next delivery supersedes anything missed.
		select {
		case updates <- payload:
		default:
		}
	})
	defer h.Hub.Unsubscribe(sub)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case payload := <-updates:
			c.SSEvent("snapshot", payload)
			return true
		}
	})
}
