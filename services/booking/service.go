// File: services/booking/service.go
package booking

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/apperr"
	"medibook/utils"
)

// BookingService coordinates slot claims.
type BookingService interface {
	// Claim books the slot for the patient. Under concurrent claims on the
	// same slot at most one caller succeeds; every other caller gets a
	// conflict, and a failed attempt leaves no trace.
	Claim(ctx context.Context, req models.ClaimRequest) (*models.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error)
	GetPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error)
}

// DefaultBookingService is the concrete implementation.
type DefaultBookingService struct {
	Appointments appointmentRepo.AppointmentRepository
	Cache        *redis.Client
}

func (s *DefaultBookingService) Claim(ctx context.Context, req models.ClaimRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()
	if req.SlotID == "" {
		return nil, apperr.NewValidation("missing slotId")
	}
	if req.PatientID == "" {
		return nil, apperr.NewValidation("missing patientId")
	}

	appt, err := s.Appointments.ClaimSlotTransactionally(ctx, req.SlotID, req.PatientID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrSlotNotFound):
			return nil, apperr.NewNotFound("slot not found")
		case errors.Is(err, appointmentRepo.ErrSlotNotFree):
			logger.Info("claim lost to an earlier booking",
				zap.String("slotId", req.SlotID),
				zap.String("patientId", req.PatientID))
			return nil, apperr.NewConflict("slot is no longer free")
		default:
			return nil, apperr.NewInternal("claim failed", err)
		}
	}

	utils.InvalidateFreeSlots(ctx, s.Cache, appt.DoctorID)

	logger.Info("slot claimed",
		zap.String("slotId", appt.SlotID),
		zap.String("appointmentId", appt.ID),
		zap.String("doctorId", appt.DoctorID),
		zap.String("patientId", appt.PatientID))
	return appt, nil
}

func (s *DefaultBookingService) GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NewNotFound("appointment not found")
		}
		return nil, apperr.NewInternal("failed to fetch appointment", err)
	}
	return appt, nil
}

func (s *DefaultBookingService) GetPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	appts, err := s.Appointments.GetByPatientID(ctx, patientID)
	if err != nil {
		return nil, apperr.NewInternal("failed to fetch appointments", err)
	}
	return appts, nil
}
