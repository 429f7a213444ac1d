package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/config"
	appcron "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/cron"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database"
	bookingRepoPkg "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/booking"
	venueRepoPkg "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/venue"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/handlers"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/middleware"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/routes"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/services/booking"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/services/notify"
	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitBusClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.Identity())

	// repositories.
	venueRepo := venueRepoPkg.NewMongoVenueRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// change notification bus.
	broker := notify.NewRedisBroker(utils.GetBusClient())
	hub := notify.NewHub(broker, venueRepo, bookingRepo, logger)

	busCtx, busCancel := context.WithCancel(context.Background())
	defer busCancel()
	go func() {
		if err := hub.Run(busCtx); err != nil && busCtx.Err() == nil {
			logger.Sugar().Fatalf("main: notification bus stopped: %v", err)
		}
	}()

	// services.
	coordinator := &booking.DefaultCoordinator{
		Venues:   venueRepo,
		Bookings: bookingRepo,
		Bus:      hub,
		Logger:   logger,
	}

	venueHandler := handlers.NewVenueHandler(venueRepo, hub, logger)
	bookingHandler := handlers.NewBookingHandler(coordinator, bookingRepo, logger)
	liveHandler := handlers.NewLiveHandler(hub)

	routes.RegisterRoutes(router, venueHandler, bookingHandler, liveHandler)

	// availability reconciler.
	reconciler := &appcron.Reconciler{
		Venues:   venueRepo,
		Bookings: bookingRepo,
		Bus:      hub,
		Logger:   logger,
	}
	cronRunner, err := reconciler.Start(config.AppConfig.ReconcileSchedule)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start reconciler: %v", err)
	}

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetBusClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	cronRunner.Stop()
	busCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
