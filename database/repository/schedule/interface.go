// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"medibook/database"
	"medibook/models"
)

type ScheduleRepository interface {
	// Upsert writes the schedule keyed by (doctorId, date); a second write
	// for the same doctor and day overwrites rather than duplicates.
	Upsert(ctx context.Context, sched *models.Schedule) (*models.Schedule, error)
	GetByID(ctx context.Context, scheduleID string) (*models.Schedule, error)
	GetByDoctorID(ctx context.Context, doctorID string) ([]models.Schedule, error)
	EnsureIndexes() error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("schedules"),
	}
}
