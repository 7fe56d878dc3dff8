// File: fixhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"fixhub/config"
	"fixhub/cron"
	"fixhub/database"
	reservationRepo "fixhub/database/repository/reservation"
	technicianRepo "fixhub/database/repository/technician"
	"fixhub/handlers"
	"fixhub/middleware"
	"fixhub/routes"
	"fixhub/services/availability"
	"fixhub/services/technician"
	"fixhub/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	if !config.AppConfig.AuthDisabled {
		utils.FirebaseInit()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	resRepo := reservationRepo.NewMongoReservationRepo()
	if err := resRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure reservation indexes: %v", err)
	}
	techRepo := technicianRepo.NewMongoTechnicianRepo()

	// services.
	technicianService := &technician.DefaultTechnicianService{
		Repo:   techRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}

	engine := availability.NewEngine(resRepo, technicianService, logger)

	availabilityHandler := handlers.NewAvailabilityHandler(engine, logger)
	bookingHandler := handlers.NewBookingHandler(engine, logger)
	technicianHandler := handlers.NewTechnicianHandler(technicianService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetTechnicianByIDHandler: technicianHandler.GetTechnicianByID,

		GetDayScheduleHandler:     availabilityHandler.GetDaySchedule,
		StreamAvailabilityHandler: availabilityHandler.StreamAvailability,

		AttemptBookingHandler:         bookingHandler.AttemptBooking,
		ListTechnicianBookingsHandler: bookingHandler.ListTechnicianBookings,
		UpdateBookingStatusHandler:    bookingHandler.UpdateBookingStatus,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background housekeeping and health monitoring.
	cron.InitHousekeeping(technicianService, resRepo, logger)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
