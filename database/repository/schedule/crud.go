// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

func (r *mongoScheduleRepo) Upsert(ctx context.Context, sched *models.Schedule) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"doctorId": sched.DoctorID, "date": sched.Date}
	update := bson.M{
		"$set": bson.M{
			"timezone":     sched.Timezone,
			"startTime":    sched.StartTime,
			"endTime":      sched.EndTime,
			"slotMinutes":  sched.SlotMinutes,
			"breakPeriods": sched.Breaks,
			"notes":        sched.Notes,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"id":        uuid.New().String(),
			"doctorId":  sched.DoctorID,
			"date":      sched.Date,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out models.Schedule
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *mongoScheduleRepo) GetByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sched models.Schedule
	err := r.coll.FindOne(ctx, bson.M{"id": scheduleID}).Decode(&sched)
	if err != nil {
		return nil, err
	}
	return &sched, nil
}

func (r *mongoScheduleRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// EnsureIndexes creates the necessary indexes on the schedules collection.
func (r *mongoScheduleRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One schedule per doctor per calendar day.
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_doctor_date"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	return err
}
