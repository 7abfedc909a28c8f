package models

import "time"

// SlotStatus is the lifecycle state of a bookable slot. The service only
// ever moves a slot free→booked (claim) or free→blocked; neither transition
// is reversed here.
type SlotStatus string

const (
	SlotFree    SlotStatus = "free"
	SlotBooked  SlotStatus = "booked"
	SlotBlocked SlotStatus = "blocked"
)

// GenerationMeta tags a slot with the generation batch that produced it,
// which is what makes repeated generation runs detectable.
type GenerationMeta struct {
	GenerationID string    `bson:"generationId" json:"generationId"`
	GeneratedAt  time.Time `bson:"generatedAt" json:"generatedAt"`
}

// Slot is one bookable, fixed-duration interval derived from a schedule.
// Start/End are absolute instants (the schedule's wall-clock window resolved
// through its timezone). A unique (doctorId, start) index guarantees no two
// slots for the same doctor share a start instant.
type Slot struct {
	ID            string         `bson:"id" json:"id"`
	ScheduleID    string         `bson:"scheduleId" json:"scheduleId"`
	DoctorID      string         `bson:"doctorId" json:"doctorId"`
	Start         time.Time      `bson:"start" json:"start"`
	End           time.Time      `bson:"end" json:"end"`
	Status        SlotStatus     `bson:"status" json:"status"`
	AppointmentID string         `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Meta          GenerationMeta `bson:"meta" json:"meta"`
}

// GenerationResult reports the outcome of one slot generation run.
type GenerationResult struct {
	ScheduleID   string `json:"scheduleId"`
	GenerationID string `json:"generationId"`
	Inserted     int    `json:"inserted"`
}
