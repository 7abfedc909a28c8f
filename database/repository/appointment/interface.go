// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"medibook/database"
	"medibook/models"
)

// Claim outcomes the booking service distinguishes.
var (
	ErrSlotNotFound = errors.New("slot not found")
	ErrSlotNotFree  = errors.New("slot is not free")
)

type AppointmentRepository interface {
	// ClaimSlotTransactionally books the slot and creates its appointment
	// as one atomic unit: a conditional update flips the slot free→booked
	// and stamps the appointment reference, and the appointment insert
	// happens in the same transaction. If anything fails the slot is left
	// exactly as it was.
	ClaimSlotTransactionally(ctx context.Context, slotID, patientID string) (*models.Appointment, error)
	GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	apptColl *mongo.Collection
	slotColl *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.DB()
	return &mongoAppointmentRepo{
		apptColl: db.Collection("appointments"),
		slotColl: db.Collection("slots"),
	}
}
