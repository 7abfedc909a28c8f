package models

import "time"

// AppointmentStatus follows an appointment through its lifecycle. The
// booking flow only ever creates SCHEDULED appointments; the later
// transitions belong to clinic-side workflows.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentNoShow    AppointmentStatus = "NO_SHOW"
)

// Appointment is a confirmed booking of exactly one slot for one patient.
// A unique index on slotId makes "one appointment per slot, ever" a
// storage-level invariant rather than an application promise.
type Appointment struct {
	ID        string            `bson:"id" json:"id"`
	PatientID string            `bson:"patientId" json:"patientId"`
	DoctorID  string            `bson:"doctorId" json:"doctorId"`
	SlotID    string            `bson:"slotId" json:"slotId"`
	Status    AppointmentStatus `bson:"status" json:"status"`
	Notes     string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
}

// ClaimRequest is the payload for booking a slot.
type ClaimRequest struct {
	SlotID    string `json:"slotId" binding:"required"`
	PatientID string `json:"patientId" binding:"required"`
}
