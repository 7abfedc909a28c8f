// File: handlers/doctor.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/utils"
)

// DoctorHandler exposes administrative doctor records. Plain CRUD glue, no
// service layer in between.
type DoctorHandler struct {
	Repo doctorRepo.DoctorRepository
}

func NewDoctorHandler(repo doctorRepo.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{Repo: repo}
}

func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	var req models.DoctorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	doctor := &models.Doctor{
		ID:                 uuid.New().String(),
		Name:               req.Name,
		Specialty:          req.Specialty,
		DefaultSlotMinutes: req.DefaultSlotMinutes,
		Bio:                req.Bio,
		CreatedAt:          time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), doctor); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create doctor", err.Error())
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")

	doctor, err := h.Repo.GetByID(c.Request.Context(), doctorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Repo.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}
