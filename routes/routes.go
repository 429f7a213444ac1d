package routes

import (
	"time"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/handlers"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint of the dashboard.
func RegisterRoutes(r *gin.Engine, venueH *handlers.VenueHandler, bookingH *handlers.BookingHandler, liveH *handlers.LiveHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-User-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	venues := r.Group("/api/venues")
	{
		venues.GET("", venueH.ListVenuesHandler)
		venues.GET("/:id", venueH.GetVenueHandler)
		venues.GET("/owner/:ownerId", venueH.ListVenuesByOwnerHandler)

		// Mutations need an attributed caller.
		protected := venues.Group("")
		protected.Use(middleware.RequireIdentity())
		protected.POST("", venueH.CreateVenueHandler)
		protected.PATCH("/:id", venueH.UpdateVenueHandler)
		protected.POST("/:id/block", bookingH.BlockDateHandler)
		protected.POST("/:id/unblock", bookingH.UnblockDateHandler)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.GET("/user/:userId", bookingH.ListUserBookingsHandler)

		protected := bookings.Group("")
		protected.Use(middleware.RequireIdentity())
		protected.POST("", bookingH.BookHandler)
	}

	live := r.Group("/api/live")
	{
		live.GET("/venues", liveH.VenuesStream)
		live.GET("/venues/owner/:ownerId", liveH.OwnerVenuesStream)
		live.GET("/bookings/user/:userId", liveH.UserBookingsStream)
	}

	r.GET("/api/health", handlers.HealthHandler)
}
