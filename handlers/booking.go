package handlers

import (
	"context"
	"net/http"

	bookingRepo "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/booking"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/middleware"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/services/booking"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking and date-toggle endpoints.
type BookingHandler struct {
	Coordinator booking.Coordinator
	Bookings    bookingRepo.Repository
	Logger      *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(coordinator booking.Coordinator, bookings bookingRepo.Repository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Coordinator: coordinator, Bookings: bookings, Logger: logger}
}

// statusOf maps a coordinator failure kind to an HTTP status.
func statusOf(err error) int {
	switch booking.KindOf(err) {
	case booking.KindInvalidInput:
		return http.StatusBadRequest
	case booking.KindNotFound:
		return http.StatusNotFound
	case booking.KindDateUnavailable, booking.KindAlreadyBooked, booking.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusServiceUnavailable
	}
}

// BookHandler reserves a venue for the calling user on one date.
func (h *BookingHandler) BookHandler(c *gin.Context) {
	var input struct {
		VenueID string `json:"venueId"`
		Date    string `json:"bookingDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := middleware.UserID(c)
	bk, err := h.Coordinator.Book(c.Request.Context(), input.VenueID, userID, input.Date)
	if err != nil {
		utils.JSONError(c, statusOf(err), string(booking.KindOf(err)), err.Error())
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// BlockDateHandler marks a date unavailable on a venue.
func (h *BookingHandler) BlockDateHandler(c *gin.Context) {
	h.toggleDate(c, h.Coordinator.BlockDate)
}

// UnblockDateHandler reopens a date on a venue.
func (h *BookingHandler) UnblockDateHandler(c *gin.Context) {
	h.toggleDate(c, h.Coordinator.UnblockDate)
}

func (h *BookingHandler) toggleDate(c *gin.Context, op func(ctx context.Context, venueID, date string) error) {
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	venueID := c.Param("id")
	if err := op(c.Request.Context(), venueID, input.Date); err != nil {
		utils.JSONError(c, statusOf(err), string(booking.KindOf(err)), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"venueId": venueID, "date": input.Date})
}

// ListUserBookingsHandler returns all bookings made by one user.
func (h *BookingHandler) ListUserBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.GetByUser(c.Param("userId"))
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", "could not list bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
