package models

import "time"

// Doctor is the administrative record schedules and slots hang off.
type Doctor struct {
	ID                 string    `bson:"id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Specialty          string    `bson:"specialty" json:"specialty"`
	DefaultSlotMinutes int       `bson:"defaultSlotMinutes,omitempty" json:"defaultSlotMinutes,omitempty"`
	Bio                string    `bson:"bio,omitempty" json:"bio,omitempty"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}

// DoctorInput is the payload for registering a doctor.
type DoctorInput struct {
	Name               string `json:"name" binding:"required"`
	Specialty          string `json:"specialty" binding:"required"`
	DefaultSlotMinutes int    `json:"defaultSlotMinutes"`
	Bio                string `json:"bio"`
}
