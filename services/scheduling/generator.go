// File: services/scheduling/generator.go
package scheduling

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"medibook/models"
	"medibook/services/apperr"
)

// BuildSlots turns a schedule's wall-clock window into concrete slot
// instances. It is deterministic for a given schedule and clock: the window
// is resolved through the schedule's timezone, a cursor walks it in
// slotMinutes steps, a trailing candidate that does not fit is dropped, and
// candidates overlapping a break are excluded. Overlap is half-open: a slot
// ending exactly when a break starts (or starting when it ends) is kept.
func BuildSlots(sched *models.Schedule, generationID string, now time.Time) ([]models.Slot, error) {
	loc, err := time.LoadLocation(sched.Timezone)
	if err != nil {
		return nil, apperr.NewValidation(fmt.Sprintf("unknown timezone %q", sched.Timezone))
	}

	windowStart, err := resolveLocal(sched.Date, sched.StartTime, loc)
	if err != nil {
		return nil, apperr.NewValidation(err.Error())
	}
	windowEnd, err := resolveLocal(sched.Date, sched.EndTime, loc)
	if err != nil {
		return nil, apperr.NewValidation(err.Error())
	}
	if !windowStart.Before(windowEnd) {
		return nil, apperr.NewValidation(fmt.Sprintf(
			"schedule window resolves to start %s not before end %s", windowStart, windowEnd))
	}

	type interval struct{ start, end time.Time }
	breaks := make([]interval, 0, len(sched.Breaks))
	for _, b := range sched.Breaks {
		bs, err := resolveLocal(sched.Date, b.Start, loc)
		if err != nil {
			return nil, apperr.NewValidation(err.Error())
		}
		be, err := resolveLocal(sched.Date, b.End, loc)
		if err != nil {
			return nil, apperr.NewValidation(err.Error())
		}
		if !bs.Before(be) {
			return nil, apperr.NewValidation(fmt.Sprintf(
				"break [%s, %s] resolves to an empty interval", b.Start, b.End))
		}
		breaks = append(breaks, interval{bs, be})
	}

	step := time.Duration(sched.SlotMinutes) * time.Minute
	if step <= 0 {
		return nil, apperr.NewValidation(fmt.Sprintf("slotMinutes must be positive, got %d", sched.SlotMinutes))
	}

	meta := models.GenerationMeta{GenerationID: generationID, GeneratedAt: now.UTC()}
	var slots []models.Slot
	for cursor := windowStart; ; cursor = cursor.Add(step) {
		slotEnd := cursor.Add(step)
		if slotEnd.After(windowEnd) {
			break
		}
		overlapsBreak := false
		for _, b := range breaks {
			if cursor.Before(b.end) && slotEnd.After(b.start) {
				overlapsBreak = true
				break
			}
		}
		if overlapsBreak {
			continue
		}
		slots = append(slots, models.Slot{
			ID:         uuid.New().String(),
			ScheduleID: sched.ID,
			DoctorID:   sched.DoctorID,
			Start:      cursor.UTC(),
			End:        slotEnd.UTC(),
			Status:     models.SlotFree,
			Meta:       meta,
		})
	}
	return slots, nil
}

// resolveLocal composes a date and an HH:MM wall-clock value in loc.
// Going through time.Date keeps DST shifts correct.
func resolveLocal(date, hhmm string, loc *time.Location) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %q", date)
	}
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return time.Time{}, fmt.Errorf("time of day must be HH:MM: %q", hhmm)
	}
	hour, err := strconv.Atoi(hhmm[:2])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("time of day must be HH:MM: %q", hhmm)
	}
	minute, err := strconv.Atoi(hhmm[3:])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("time of day must be HH:MM: %q", hhmm)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}
