// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/database"
	appointmentRepoPkg "medibook/database/repository/appointment"
	doctorRepoPkg "medibook/database/repository/doctor"
	scheduleRepoPkg "medibook/database/repository/schedule"
	slotRepoPkg "medibook/database/repository/slot"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/booking"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	for _, ensure := range []func() error{
		doctorRepo.EnsureIndexes,
		scheduleRepo.EnsureIndexes,
		slotRepo.EnsureIndexes,
		appointmentRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Schedules: scheduleRepo,
		Slots:     slotRepo,
		Cache:     utils.GetCacheClient(),
		CacheTTL:  time.Duration(config.AppConfig.SlotCacheTTL) * time.Second,
	}
	bookingService := &booking.DefaultBookingService{
		Appointments: appointmentRepo,
		Cache:        utils.GetCacheClient(),
	}

	scheduleHandler := handlers.NewScheduleHandler(schedulingService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	doctorHandler := handlers.NewDoctorHandler(doctorRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Doctor endpoints.
		CreateDoctorHandler: doctorHandler.CreateDoctorHandler,
		GetDoctorHandler:    doctorHandler.GetDoctorHandler,
		ListDoctorsHandler:  doctorHandler.ListDoctorsHandler,

		// Schedule endpoints.
		UpsertScheduleHandler:     scheduleHandler.UpsertScheduleHandler,
		GetDoctorSchedulesHandler: scheduleHandler.GetDoctorSchedulesHandler,

		// Slot endpoints.
		GenerateSlotsHandler:     scheduleHandler.GenerateSlotsHandler,
		GetScheduleSlotsHandler:  scheduleHandler.GetScheduleSlotsHandler,
		GetAvailableSlotsHandler: scheduleHandler.GetAvailableSlotsHandler,

		// Booking endpoints.
		ClaimSlotHandler:              bookingHandler.ClaimSlotHandler,
		GetAppointmentHandler:         bookingHandler.GetAppointmentHandler,
		GetPatientAppointmentsHandler: bookingHandler.GetPatientAppointmentsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
