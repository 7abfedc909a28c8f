// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"medibook/database"
	"medibook/models"
)

type SlotRepository interface {
	// CreateMany inserts a generation batch unordered. Documents that
	// collide with the unique (doctorId, start) index are skipped; the
	// return value is the number actually inserted.
	CreateMany(ctx context.Context, slots []models.Slot) (int, error)
	// HasGeneration reports whether any slot of the schedule already
	// carries the given generation batch id.
	HasGeneration(ctx context.Context, scheduleID, generationID string) (bool, error)
	GetByID(ctx context.Context, slotID string) (*models.Slot, error)
	GetByScheduleID(ctx context.Context, scheduleID string) ([]models.Slot, error)
	GetFreeByDoctorID(ctx context.Context, doctorID string, from, to *time.Time) ([]models.Slot, error)
	EnsureIndexes() error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	return &mongoSlotRepo{
		coll: database.DB().Collection("slots"),
	}
}
