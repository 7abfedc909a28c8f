// File: handlers/schedule.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"
)

// ScheduleHandler exposes schedule management and slot generation.
type ScheduleHandler struct {
	Service scheduling.SchedulingService
}

func NewScheduleHandler(svc scheduling.SchedulingService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// UpsertScheduleHandler creates or replaces a doctor's schedule for one day.
func (h *ScheduleHandler) UpsertScheduleHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")

	var req models.ScheduleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	sched, err := h.Service.UpsertSchedule(c.Request.Context(), doctorID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

func (h *ScheduleHandler) GetDoctorSchedulesHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")

	schedules, err := h.Service.GetDoctorSchedules(c.Request.Context(), doctorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// GenerateSlotsHandler runs one slot generation batch for a schedule.
func (h *ScheduleHandler) GenerateSlotsHandler(c *gin.Context) {
	scheduleID := c.Param("scheduleId")

	var req struct {
		GenerationID string `json:"generationId"`
	}
	// The body is optional; an absent generationId mints a fresh batch.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
	}

	result, err := h.Service.GenerateSlots(c.Request.Context(), scheduleID, req.GenerationID)
	if err != nil {
		utils.GetLogger().Warn("slot generation refused",
			zap.String("scheduleId", scheduleID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *ScheduleHandler) GetScheduleSlotsHandler(c *gin.Context) {
	scheduleID := c.Param("scheduleId")

	slots, err := h.Service.GetScheduleSlots(c.Request.Context(), scheduleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetAvailableSlotsHandler lists a doctor's free slots, optionally filtered
// by a ?date=YYYY-MM-DD query parameter.
func (h *ScheduleHandler) GetAvailableSlotsHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	date := c.Query("date")

	slots, err := h.Service.GetAvailableSlots(c.Request.Context(), doctorID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
