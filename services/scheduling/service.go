// File: services/scheduling/service.go
package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	scheduleRepo "medibook/database/repository/schedule"
	slotRepo "medibook/database/repository/slot"
	"medibook/models"
	"medibook/services/apperr"
	"medibook/utils"
)

// SchedulingService manages schedule definitions and slot generation.
type SchedulingService interface {
	UpsertSchedule(ctx context.Context, doctorID string, in models.ScheduleInput) (*models.Schedule, error)
	GetDoctorSchedules(ctx context.Context, doctorID string) ([]models.Schedule, error)
	// GenerateSlots materializes the schedule's slots as one generation
	// batch. An empty generationID mints a fresh one; reusing a
	// generationID for the same schedule is refused with a conflict and
	// inserts nothing.
	GenerateSlots(ctx context.Context, scheduleID, generationID string) (*models.GenerationResult, error)
	GetScheduleSlots(ctx context.Context, scheduleID string) ([]models.Slot, error)
	// GetAvailableSlots lists a doctor's free slots, optionally restricted
	// to one calendar day ("YYYY-MM-DD", interpreted as a UTC day window).
	GetAvailableSlots(ctx context.Context, doctorID, date string) ([]models.Slot, error)
}

// DefaultSchedulingService is the concrete implementation.
type DefaultSchedulingService struct {
	Schedules scheduleRepo.ScheduleRepository
	Slots     slotRepo.SlotRepository
	Cache     *redis.Client
	CacheTTL  time.Duration
}

func (s *DefaultSchedulingService) UpsertSchedule(ctx context.Context, doctorID string, in models.ScheduleInput) (*models.Schedule, error) {
	if doctorID == "" {
		return nil, apperr.NewValidation("missing doctorId")
	}
	if err := in.Validate(); err != nil {
		return nil, apperr.NewValidation(err.Error())
	}

	sched := &models.Schedule{
		DoctorID:    doctorID,
		Date:        in.Date,
		Timezone:    in.Timezone,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		SlotMinutes: in.SlotMinutes,
		Breaks:      in.Breaks,
		Notes:       in.Notes,
	}
	out, err := s.Schedules.Upsert(ctx, sched)
	if err != nil {
		return nil, apperr.NewInternal("failed to save schedule", err)
	}
	utils.GetLogger().Info("schedule saved",
		zap.String("scheduleId", out.ID),
		zap.String("doctorId", doctorID),
		zap.String("date", out.Date))
	return out, nil
}

func (s *DefaultSchedulingService) GetDoctorSchedules(ctx context.Context, doctorID string) ([]models.Schedule, error) {
	schedules, err := s.Schedules.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, apperr.NewInternal("failed to fetch schedules", err)
	}
	return schedules, nil
}

func (s *DefaultSchedulingService) GenerateSlots(ctx context.Context, scheduleID, generationID string) (*models.GenerationResult, error) {
	logger := utils.GetLogger()
	if scheduleID == "" {
		return nil, apperr.NewValidation("missing scheduleId")
	}
	if generationID == "" {
		generationID = "gen_" + uuid.New().String()
	}

	// Idempotency probe before anything is written: a generation id that
	// already tagged slots for this schedule refuses the whole run.
	used, err := s.Slots.HasGeneration(ctx, scheduleID, generationID)
	if err != nil {
		return nil, apperr.NewInternal("failed to check generation id", err)
	}
	if used {
		return nil, apperr.NewConflict(fmt.Sprintf(
			"slots already generated for schedule %s with generation id %s", scheduleID, generationID))
	}

	sched, err := s.Schedules.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NewNotFound("schedule not found")
		}
		return nil, apperr.NewInternal("failed to load schedule", err)
	}

	slots, err := BuildSlots(sched, generationID, time.Now())
	if err != nil {
		return nil, err
	}

	inserted, err := s.Slots.CreateMany(ctx, slots)
	if err != nil {
		return nil, apperr.NewInternal("failed to insert slots", err)
	}

	utils.InvalidateFreeSlots(ctx, s.Cache, sched.DoctorID)

	logger.Info("slots generated",
		zap.String("scheduleId", scheduleID),
		zap.String("generationId", generationID),
		zap.Int("candidates", len(slots)),
		zap.Int("inserted", inserted))

	return &models.GenerationResult{
		ScheduleID:   scheduleID,
		GenerationID: generationID,
		Inserted:     inserted,
	}, nil
}

func (s *DefaultSchedulingService) GetScheduleSlots(ctx context.Context, scheduleID string) ([]models.Slot, error) {
	slots, err := s.Slots.GetByScheduleID(ctx, scheduleID)
	if err != nil {
		return nil, apperr.NewInternal("failed to fetch slots", err)
	}
	return slots, nil
}

func (s *DefaultSchedulingService) GetAvailableSlots(ctx context.Context, doctorID, date string) ([]models.Slot, error) {
	var from, to *time.Time
	if date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, apperr.NewValidation(fmt.Sprintf("date must be YYYY-MM-DD: %q", date))
		}
		start := day.UTC()
		end := start.Add(24 * time.Hour)
		from, to = &start, &end
	}

	cacheKey := utils.FreeSlotsCacheKey(doctorID, date)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var slots []models.Slot
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
		}
	}

	slots, err := s.Slots.GetFreeByDoctorID(ctx, doctorID, from, to)
	if err != nil {
		return nil, apperr.NewInternal("failed to fetch available slots", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(slots); err == nil {
			ttl := s.CacheTTL
			if ttl <= 0 {
				ttl = 30 * time.Second
			}
			s.Cache.Set(ctx, cacheKey, data, ttl)
		}
	}
	return slots, nil
}
