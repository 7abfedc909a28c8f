// File: handlers/booking.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medibook/models"
	"medibook/services/booking"
	"medibook/utils"
)

// BookingHandler exposes the claim flow and appointment reads.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// ClaimSlotHandler books a slot for a patient. Exactly one of any set of
// concurrent claims on the same slot succeeds; the rest get a 409.
func (h *BookingHandler) ClaimSlotHandler(c *gin.Context) {
	var req models.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	appt, err := h.Service.Claim(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully",
		"appointment": appt,
	})
}

func (h *BookingHandler) GetAppointmentHandler(c *gin.Context) {
	appointmentID := c.Param("appointmentId")

	appt, err := h.Service.GetAppointment(c.Request.Context(), appointmentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *BookingHandler) GetPatientAppointmentsHandler(c *gin.Context) {
	patientID := c.Param("patientId")

	appts, err := h.Service.GetPatientAppointments(c.Request.Context(), patientID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
