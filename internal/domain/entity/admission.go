package entity

import "time"

type Admission struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID    int        `gorm:"not null;index" json:"patient_id"`
	AdmittedAt   time.Time  `gorm:"not null;index" json:"admitted_at"`
	DischargedAt *time.Time `json:"discharged_at,omitempty"`
	Status       string     `gorm:"type:varchar(50);not null;default:'Admitted'" json:"status"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Admission) TableName() string {
	return "admissions"
}

// Discharge closes the admission at t.
func (a *Admission) Discharge(t time.Time) {
	a.DischargedAt = &t
	a.Status = PatientStatusDischarged
}
