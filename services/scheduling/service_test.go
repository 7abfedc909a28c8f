package scheduling

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	scheduleRepo "medibook/database/repository/schedule"
	slotRepo "medibook/database/repository/slot"
	"medibook/models"
	"medibook/services/apperr"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ scheduleRepo.ScheduleRepository = (*mockScheduleRepo)(nil)
	_ slotRepo.SlotRepository         = (*memorySlotRepo)(nil)
)

type mockScheduleRepo struct {
	UpsertFunc        func(ctx context.Context, sched *models.Schedule) (*models.Schedule, error)
	GetByIDFunc       func(ctx context.Context, scheduleID string) (*models.Schedule, error)
	GetByDoctorIDFunc func(ctx context.Context, doctorID string) ([]models.Schedule, error)
	UpsertCalls       int
}

func (m *mockScheduleRepo) Upsert(ctx context.Context, sched *models.Schedule) (*models.Schedule, error) {
	m.UpsertCalls++
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, sched)
	}
	out := *sched
	out.ID = "sched-1"
	return &out, nil
}

func (m *mockScheduleRepo) GetByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, scheduleID)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockScheduleRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.Schedule, error) {
	if m.GetByDoctorIDFunc != nil {
		return m.GetByDoctorIDFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockScheduleRepo) EnsureIndexes() error { return nil }

// memorySlotRepo mirrors the storage contract the Mongo repository provides:
// a unique (doctorId, start) constraint and generation tagging.
type memorySlotRepo struct {
	mu    sync.Mutex
	slots []models.Slot
}

func (m *memorySlotRepo) CreateMany(ctx context.Context, slots []models.Slot) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inserted := 0
	for _, slot := range slots {
		dup := false
		for _, existing := range m.slots {
			if existing.DoctorID == slot.DoctorID && existing.Start.Equal(slot.Start) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		m.slots = append(m.slots, slot)
		inserted++
	}
	return inserted, nil
}

func (m *memorySlotRepo) HasGeneration(ctx context.Context, scheduleID, generationID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, slot := range m.slots {
		if slot.ScheduleID == scheduleID && slot.Meta.GenerationID == generationID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memorySlotRepo) GetByID(ctx context.Context, slotID string) (*models.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.slots {
		if m.slots[i].ID == slotID {
			slot := m.slots[i]
			return &slot, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memorySlotRepo) GetByScheduleID(ctx context.Context, scheduleID string) ([]models.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Slot
	for _, slot := range m.slots {
		if slot.ScheduleID == scheduleID {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (m *memorySlotRepo) GetFreeByDoctorID(ctx context.Context, doctorID string, from, to *time.Time) ([]models.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Slot
	for _, slot := range m.slots {
		if slot.DoctorID != doctorID || slot.Status != models.SlotFree {
			continue
		}
		if from != nil && slot.Start.Before(*from) {
			continue
		}
		if to != nil && !slot.Start.Before(*to) {
			continue
		}
		out = append(out, slot)
	}
	return out, nil
}

func (m *memorySlotRepo) EnsureIndexes() error { return nil }

func testSchedule() *models.Schedule {
	return &models.Schedule{
		ID:          "sched-1",
		DoctorID:    "doc-1",
		Date:        "2025-03-10",
		Timezone:    "UTC",
		StartTime:   "09:00",
		EndTime:     "12:00",
		SlotMinutes: 30,
		Breaks:      []models.BreakPeriod{{Start: "10:00", End: "10:30"}},
	}
}

func newTestService(schedules *mockScheduleRepo, slots *memorySlotRepo) *DefaultSchedulingService {
	return &DefaultSchedulingService{Schedules: schedules, Slots: slots}
}

func TestGenerateSlotsMintsGenerationID(t *testing.T) {
	schedules := &mockScheduleRepo{
		GetByIDFunc: func(ctx context.Context, scheduleID string) (*models.Schedule, error) {
			return testSchedule(), nil
		},
	}
	svc := newTestService(schedules, &memorySlotRepo{})

	result, err := svc.GenerateSlots(context.Background(), "sched-1", "")
	require.NoError(t, err)
	assert.Contains(t, result.GenerationID, "gen_")
	assert.Equal(t, 5, result.Inserted)
}

func TestGenerateSlotsIdempotentPerGenerationID(t *testing.T) {
	schedules := &mockScheduleRepo{
		GetByIDFunc: func(ctx context.Context, scheduleID string) (*models.Schedule, error) {
			return testSchedule(), nil
		},
	}
	slots := &memorySlotRepo{}
	svc := newTestService(schedules, slots)

	first, err := svc.GenerateSlots(context.Background(), "sched-1", "gen-42")
	require.NoError(t, err)
	assert.Equal(t, 5, first.Inserted)

	_, err = svc.GenerateSlots(context.Background(), "sched-1", "gen-42")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Len(t, slots.slots, 5, "repeated generation must not add slots")
}

func TestGenerateSlotsToleratesCollidingRegeneration(t *testing.T) {
	schedules := &mockScheduleRepo{
		GetByIDFunc: func(ctx context.Context, scheduleID string) (*models.Schedule, error) {
			return testSchedule(), nil
		},
	}
	slots := &memorySlotRepo{}
	svc := newTestService(schedules, slots)

	_, err := svc.GenerateSlots(context.Background(), "sched-1", "gen-1")
	require.NoError(t, err)

	// A fresh generation id over the same window hits the (doctorId, start)
	// uniqueness backstop for every candidate: zero inserts, no failure.
	second, err := svc.GenerateSlots(context.Background(), "sched-1", "gen-2")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Len(t, slots.slots, 5)
}

func TestGenerateSlotsScheduleNotFound(t *testing.T) {
	svc := newTestService(&mockScheduleRepo{}, &memorySlotRepo{})

	_, err := svc.GenerateSlots(context.Background(), "missing", "gen-1")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGenerateSlotsInvalidWindow(t *testing.T) {
	schedules := &mockScheduleRepo{
		GetByIDFunc: func(ctx context.Context, scheduleID string) (*models.Schedule, error) {
			sched := testSchedule()
			sched.StartTime = "12:00"
			sched.EndTime = "09:00"
			return sched, nil
		},
	}
	slots := &memorySlotRepo{}
	svc := newTestService(schedules, slots)

	_, err := svc.GenerateSlots(context.Background(), "sched-1", "gen-1")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Empty(t, slots.slots)
}

func TestUpsertScheduleRejectsInvalidInput(t *testing.T) {
	schedules := &mockScheduleRepo{}
	svc := newTestService(schedules, &memorySlotRepo{})

	cases := []struct {
		name string
		in   models.ScheduleInput
	}{
		{"window inverted", models.ScheduleInput{
			Date: "2025-03-10", Timezone: "UTC", StartTime: "12:00", EndTime: "09:00", SlotMinutes: 30,
		}},
		{"non-positive duration", models.ScheduleInput{
			Date: "2025-03-10", Timezone: "UTC", StartTime: "09:00", EndTime: "12:00", SlotMinutes: 0,
		}},
		{"break outside window", models.ScheduleInput{
			Date: "2025-03-10", Timezone: "UTC", StartTime: "09:00", EndTime: "12:00", SlotMinutes: 30,
			Breaks: []models.BreakPeriod{{Start: "08:00", End: "08:30"}},
		}},
		{"break inverted", models.ScheduleInput{
			Date: "2025-03-10", Timezone: "UTC", StartTime: "09:00", EndTime: "12:00", SlotMinutes: 30,
			Breaks: []models.BreakPeriod{{Start: "10:30", End: "10:00"}},
		}},
		{"unknown timezone", models.ScheduleInput{
			Date: "2025-03-10", Timezone: "Nowhere/Nada", StartTime: "09:00", EndTime: "12:00", SlotMinutes: 30,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpsertSchedule(context.Background(), "doc-1", tc.in)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		})
	}
	assert.Zero(t, schedules.UpsertCalls, "invalid input must not reach the repository")
}

func TestGetAvailableSlotsRejectsBadDate(t *testing.T) {
	svc := newTestService(&mockScheduleRepo{}, &memorySlotRepo{})

	_, err := svc.GetAvailableSlots(context.Background(), "doc-1", "10-03-2025")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestGetAvailableSlotsFiltersByDay(t *testing.T) {
	schedules := &mockScheduleRepo{
		GetByIDFunc: func(ctx context.Context, scheduleID string) (*models.Schedule, error) {
			return testSchedule(), nil
		},
	}
	slots := &memorySlotRepo{}
	svc := newTestService(schedules, slots)

	_, err := svc.GenerateSlots(context.Background(), "sched-1", "gen-1")
	require.NoError(t, err)

	onDay, err := svc.GetAvailableSlots(context.Background(), "doc-1", "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, onDay, 5)

	offDay, err := svc.GetAvailableSlots(context.Background(), "doc-1", "2025-03-11")
	require.NoError(t, err)
	assert.Empty(t, offDay)
}
