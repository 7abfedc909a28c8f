package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() ScheduleInput {
	return ScheduleInput{
		Date:        "2025-03-10",
		Timezone:    "Europe/Berlin",
		StartTime:   "09:00",
		EndTime:     "17:00",
		SlotMinutes: 30,
		Breaks:      []BreakPeriod{{Start: "12:00", End: "12:30"}},
	}
}

func TestScheduleInputValidate(t *testing.T) {
	assert.NoError(t, validInput().Validate())

	cases := []struct {
		name   string
		mutate func(*ScheduleInput)
	}{
		{"bad date", func(in *ScheduleInput) { in.Date = "10.03.2025" }},
		{"bad timezone", func(in *ScheduleInput) { in.Timezone = "Atlantis/Lost" }},
		{"bad start format", func(in *ScheduleInput) { in.StartTime = "9am" }},
		{"bad end format", func(in *ScheduleInput) { in.EndTime = "25:00" }},
		{"window inverted", func(in *ScheduleInput) { in.StartTime, in.EndTime = "17:00", "09:00" }},
		{"window empty", func(in *ScheduleInput) { in.EndTime = in.StartTime }},
		{"zero duration", func(in *ScheduleInput) { in.SlotMinutes = 0 }},
		{"negative duration", func(in *ScheduleInput) { in.SlotMinutes = -15 }},
		{"break format", func(in *ScheduleInput) { in.Breaks[0].Start = "noon" }},
		{"break inverted", func(in *ScheduleInput) { in.Breaks[0] = BreakPeriod{Start: "13:00", End: "12:30"} }},
		{"break before window", func(in *ScheduleInput) { in.Breaks[0] = BreakPeriod{Start: "08:00", End: "09:30"} }},
		{"break after window", func(in *ScheduleInput) { in.Breaks[0] = BreakPeriod{Start: "16:45", End: "17:15"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			assert.Error(t, in.Validate())
		})
	}
}

func TestScheduleInputValidateBreakTouchingWindowEdges(t *testing.T) {
	in := validInput()
	// Breaks may touch the window boundaries without leaving it.
	in.Breaks = []BreakPeriod{{Start: "09:00", End: "09:30"}, {Start: "16:30", End: "17:00"}}
	assert.NoError(t, in.Validate())
}
