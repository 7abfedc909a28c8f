package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medibook/models"
	"medibook/services/apperr"
)

func utcSchedule(start, end string, slotMinutes int, breaks ...models.BreakPeriod) *models.Schedule {
	return &models.Schedule{
		ID:          "sched-1",
		DoctorID:    "doc-1",
		Date:        "2025-03-10",
		Timezone:    "UTC",
		StartTime:   start,
		EndTime:     end,
		SlotMinutes: slotMinutes,
		Breaks:      breaks,
	}
}

func TestBuildSlotsWorkedExample(t *testing.T) {
	sched := utcSchedule("09:00", "12:00", 30, models.BreakPeriod{Start: "10:00", End: "10:30"})
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	slots, err := BuildSlots(sched, "gen-1", now)
	require.NoError(t, err)
	require.Len(t, slots, 5)

	wantStarts := []string{"09:00", "09:30", "10:30", "11:00", "11:30"}
	for i, slot := range slots {
		assert.Equal(t, wantStarts[i], slot.Start.UTC().Format("15:04"))
		assert.Equal(t, slot.Start.Add(30*time.Minute), slot.End)
		assert.Equal(t, models.SlotFree, slot.Status)
		assert.Equal(t, "sched-1", slot.ScheduleID)
		assert.Equal(t, "doc-1", slot.DoctorID)
		assert.Equal(t, "gen-1", slot.Meta.GenerationID)
		assert.Equal(t, now.UTC(), slot.Meta.GeneratedAt)
		assert.NotEmpty(t, slot.ID)
	}

	// The 10:00-10:30 candidate must not appear.
	for _, slot := range slots {
		assert.NotEqual(t, "10:00", slot.Start.UTC().Format("15:04"))
	}
}

func TestBuildSlotsNoPartialTrailingSlot(t *testing.T) {
	// 75-minute window only fits two full 30-minute slots.
	sched := utcSchedule("09:00", "10:15", 30)

	slots, err := BuildSlots(sched, "gen-1", time.Now())
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "10:00", slots[1].End.UTC().Format("15:04"))
}

func TestBuildSlotsExactFitLastSlotKept(t *testing.T) {
	sched := utcSchedule("09:00", "10:00", 30)

	slots, err := BuildSlots(sched, "gen-1", time.Now())
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "10:00", slots[1].End.UTC().Format("15:04"))
}

func TestBuildSlotsBreakBoundaryTouchIsNotOverlap(t *testing.T) {
	// A break from 09:45 to 10:00 kills the 09:30-10:00 candidate but the
	// slot starting exactly at the break's end survives.
	sched := utcSchedule("09:00", "11:00", 30, models.BreakPeriod{Start: "09:45", End: "10:00"})

	slots, err := BuildSlots(sched, "gen-1", time.Now())
	require.NoError(t, err)

	var starts []string
	for _, slot := range slots {
		starts = append(starts, slot.Start.UTC().Format("15:04"))
	}
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, starts)
}

func TestBuildSlotsNoSlotOverlapsAnyBreak(t *testing.T) {
	breaks := []models.BreakPeriod{
		{Start: "10:00", End: "10:30"},
		{Start: "11:15", End: "11:45"},
	}
	sched := utcSchedule("09:00", "13:00", 30, breaks...)

	slots, err := BuildSlots(sched, "gen-1", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	loc := time.UTC
	for _, slot := range slots {
		for _, b := range breaks {
			bs, rerr := resolveLocal(sched.Date, b.Start, loc)
			require.NoError(t, rerr)
			be, rerr := resolveLocal(sched.Date, b.End, loc)
			require.NoError(t, rerr)
			overlaps := slot.Start.Before(be) && slot.End.After(bs)
			assert.Falsef(t, overlaps, "slot [%s, %s) overlaps break [%s, %s)",
				slot.Start, slot.End, bs, be)
		}
	}
}

func TestBuildSlotsWindowFullyCoveredByBreak(t *testing.T) {
	sched := utcSchedule("09:00", "10:00", 30, models.BreakPeriod{Start: "09:00", End: "10:00"})

	slots, err := BuildSlots(sched, "gen-1", time.Now())
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestBuildSlotsResolvesTimezone(t *testing.T) {
	sched := utcSchedule("09:00", "10:00", 30)
	sched.Timezone = "Europe/Berlin"
	sched.Date = "2025-07-01" // CEST, UTC+2

	slots, err := BuildSlots(sched, "gen-1", time.Now())
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2025, 7, 1, 7, 0, 0, 0, time.UTC), slots[0].Start.UTC())
}

func TestBuildSlotsInvalidWindow(t *testing.T) {
	sched := utcSchedule("12:00", "09:00", 30)

	_, err := BuildSlots(sched, "gen-1", time.Now())
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestBuildSlotsUnknownTimezone(t *testing.T) {
	sched := utcSchedule("09:00", "12:00", 30)
	sched.Timezone = "Mars/Olympus_Mons"

	_, err := BuildSlots(sched, "gen-1", time.Now())
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}
