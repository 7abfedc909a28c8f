package models

import (
	"fmt"
	"regexp"
	"time"
)

// timeOfDayRe matches "HH:MM" wall-clock values (minute precision).
var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// BreakPeriod is a pause inside a schedule's working window, expressed as
// local wall-clock times on the schedule's date.
type BreakPeriod struct {
	Start string `bson:"start" json:"start" binding:"required"` // "HH:MM"
	End   string `bson:"end" json:"end" binding:"required"`     // "HH:MM"
}

// Schedule represents a doctor's declared working window for one calendar day.
// There is at most one schedule per (doctorId, date); writes are upserts.
type Schedule struct {
	ID          string        `bson:"id" json:"id"`
	DoctorID    string        `bson:"doctorId" json:"doctorId"`
	Date        string        `bson:"date" json:"date"`         // "YYYY-MM-DD"
	Timezone    string        `bson:"timezone" json:"timezone"` // IANA name, e.g. "Europe/Berlin"
	StartTime   string        `bson:"startTime" json:"startTime"`
	EndTime     string        `bson:"endTime" json:"endTime"`
	SlotMinutes int           `bson:"slotMinutes" json:"slotMinutes"`
	Breaks      []BreakPeriod `bson:"breakPeriods,omitempty" json:"breakPeriods,omitempty"`
	Notes       string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleInput is the payload for creating or updating a schedule.
type ScheduleInput struct {
	Date        string        `json:"date" binding:"required"`
	Timezone    string        `json:"timezone" binding:"required"`
	StartTime   string        `json:"startTime" binding:"required"`
	EndTime     string        `json:"endTime" binding:"required"`
	SlotMinutes int           `json:"slotMinutes" binding:"required"`
	Breaks      []BreakPeriod `json:"breakPeriods"`
	Notes       string        `json:"notes"`
}

// Validate checks the schedule invariants before anything is persisted:
// well-formed times, start before end, positive slot duration, and every
// break lying inside the working window with start before end.
func (in ScheduleInput) Validate() error {
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %q", in.Date)
	}
	if _, err := time.LoadLocation(in.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q", in.Timezone)
	}
	if !timeOfDayRe.MatchString(in.StartTime) {
		return fmt.Errorf("startTime must be HH:MM: %q", in.StartTime)
	}
	if !timeOfDayRe.MatchString(in.EndTime) {
		return fmt.Errorf("endTime must be HH:MM: %q", in.EndTime)
	}
	if in.StartTime >= in.EndTime {
		return fmt.Errorf("startTime %s must be earlier than endTime %s", in.StartTime, in.EndTime)
	}
	if in.SlotMinutes <= 0 {
		return fmt.Errorf("slotMinutes must be a positive integer, got %d", in.SlotMinutes)
	}
	for i, b := range in.Breaks {
		if !timeOfDayRe.MatchString(b.Start) || !timeOfDayRe.MatchString(b.End) {
			return fmt.Errorf("breakPeriods[%d]: times must be HH:MM", i)
		}
		if b.Start >= b.End {
			return fmt.Errorf("breakPeriods[%d]: start %s must be earlier than end %s", i, b.Start, b.End)
		}
		if b.Start < in.StartTime || b.End > in.EndTime {
			return fmt.Errorf("breakPeriods[%d]: [%s, %s] lies outside the working window [%s, %s]",
				i, b.Start, b.End, in.StartTime, in.EndTime)
		}
	}
	return nil
}
