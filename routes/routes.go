package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medibook/handlers"
)

// RegisterDoctorRoutes registers doctor administration endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.POST("", hb.CreateDoctorHandler)
		api.GET("", hb.ListDoctorsHandler)
		api.GET("/:doctorId", hb.GetDoctorHandler)

		// Per-doctor schedule and availability reads.
		api.POST("/:doctorId/schedules", hb.UpsertScheduleHandler)
		api.GET("/:doctorId/schedules", hb.GetDoctorSchedulesHandler)
		api.GET("/:doctorId/slots", hb.GetAvailableSlotsHandler)
	}
}

// RegisterScheduleRoutes registers slot generation and schedule slot reads.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.POST("/:scheduleId/generate-slots", hb.GenerateSlotsHandler)
		api.GET("/:scheduleId/slots", hb.GetScheduleSlotsHandler)
	}
}

// RegisterAppointmentRoutes registers the booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("/book", hb.ClaimSlotHandler)
		api.GET("/:appointmentId", hb.GetAppointmentHandler)
	}
	r.GET("/api/patients/:patientId/appointments", hb.GetPatientAppointmentsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDoctorRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterHealthRoute(r)
}
