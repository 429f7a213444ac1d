package handlers

import (
	"errors"
	"net/http"
	"time"

	venueRepo "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/venue"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/middleware"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/models"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/services/notify"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VenueHandler serves the owner dashboard and browse endpoints for venues.
type VenueHandler struct {
	Repo   venueRepo.Repository
	Bus    *notify.Hub
	Logger *zap.Logger
}

// NewVenueHandler creates a VenueHandler.
func NewVenueHandler(repo venueRepo.Repository, bus *notify.Hub, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{Repo: repo, Bus: bus, Logger: logger}
}

// CreateVenueHandler registers a new venue for the calling owner.
func (h *VenueHandler) CreateVenueHandler(c *gin.Context) {
	var input struct {
		Name        string `json:"name"`
		Location    string `json:"location"`
		Description string `json:"description"`
		ImageURL    string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Name == "" || input.Location == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "name and location are required")
		return
	}

	ownerID := middleware.UserID(c)
	venue := &models.Venue{
		ID:               uuid.New().String(),
		OwnerID:          ownerID,
		Name:             input.Name,
		Location:         input.Location,
		Description:      input.Description,
		ImageURL:         input.ImageURL,
		UnavailableDates: []string{},
		CreatedAt:        time.Now(),
	}

	if err := h.Repo.Create(venue); err != nil {
		h.Logger.Error("failed to create venue", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", "could not create venue")
		return
	}

	h.Bus.Publish(c.Request.Context(), notify.TopicVenues, notify.TopicVenuesByOwner(ownerID))
	c.JSON(http.StatusCreated, venue)
}

// GetVenueHandler returns a single venue by id.
func (h *VenueHandler) GetVenueHandler(c *gin.Context) {
	venue, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, venueRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not found", "venue does not exist")
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", "could not fetch venue")
		return
	}
	c.JSON(http.StatusOK, venue)
}

// ListVenuesHandler returns all venues for the browse view.
func (h *VenueHandler) ListVenuesHandler(c *gin.Context) {
	venues, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", "could not list venues")
		return
	}
	if venues == nil {
		venues = []models.Venue{}
	}
	c.JSON(http.StatusOK, venues)
}

// ListVenuesByOwnerHandler returns the venues belonging to one owner.
func (h *VenueHandler) ListVenuesByOwnerHandler(c *gin.Context) {
	venues, err := h.Repo.GetByOwner(c.Param("ownerId"))
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", "could not list venues")
		return
	}
	if venues == nil {
		venues = []models.Venue{}
	}
	c.JSON(http.StatusOK, venues)
}

// UpdateVenueHandler modifies the display fields of a venue.
func (h *VenueHandler) UpdateVenueHandler(c *gin.Context) {
	var upd models.VenueUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id := c.Param("id")
	venue, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not found", "venue does not exist")
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", "could not fetch venue")
		return
	}

	if err := h.Repo.UpdateDisplay(id, upd); err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", "could not update venue")
		return
	}

	h.Bus.Publish(c.Request.Context(), notify.TopicVenues, notify.TopicVenuesByOwner(venue.OwnerID))
	c.JSON(http.StatusOK, gin.H{"id": id, "updated": true})
}
