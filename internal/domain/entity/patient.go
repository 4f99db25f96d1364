package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Patient struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string          `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string          `gorm:"type:varchar(100);not null" json:"last_name"`
	Gender      string          `gorm:"type:varchar(10)" json:"gender"`
	DateOfBirth *datatypes.Date `gorm:"type:date" json:"date_of_birth,omitempty"`
	Phone       string          `gorm:"type:varchar(20)" json:"phone"`
	Email       string          `gorm:"type:varchar(255)" json:"email"`
	Address     string          `gorm:"type:text" json:"address"`
	City        string          `gorm:"type:varchar(100)" json:"city"`
	State       string          `gorm:"type:varchar(100)" json:"state"`
	Zip         string          `gorm:"type:varchar(20)" json:"zip"`
	Status      string          `gorm:"type:varchar(50);index" json:"status"`
	DoctorID    *int            `gorm:"index" json:"doctor_id,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Patient status constants
const (
	PatientStatusAdmitted   = "Admitted"
	PatientStatusOutpatient = "Outpatient"
	PatientStatusDischarged = "Discharged"
)
