package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Appointment struct {
	ID              int            `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int            `gorm:"not null;index" json:"patient_id"`
	DoctorID        int            `gorm:"not null;index" json:"doctor_id"`
	AppointmentDate datatypes.Date `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime datatypes.Time `gorm:"type:time;not null" json:"appointment_time"`
	Status          string         `gorm:"type:varchar(50);not null;default:'Confirmed'" json:"status"`
	Notes           string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Appointment status constants
const (
	AppointmentStatusConfirmed = "Confirmed"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"
)
