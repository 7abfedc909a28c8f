// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Doctor endpoints
	CreateDoctorHandler gin.HandlerFunc
	GetDoctorHandler    gin.HandlerFunc
	ListDoctorsHandler  gin.HandlerFunc

	// Schedule endpoints
	UpsertScheduleHandler     gin.HandlerFunc
	GetDoctorSchedulesHandler gin.HandlerFunc

	// Slot endpoints
	GenerateSlotsHandler     gin.HandlerFunc
	GetScheduleSlotsHandler  gin.HandlerFunc
	GetAvailableSlotsHandler gin.HandlerFunc

	// Booking endpoints
	ClaimSlotHandler              gin.HandlerFunc
	GetAppointmentHandler         gin.HandlerFunc
	GetPatientAppointmentsHandler gin.HandlerFunc
}
