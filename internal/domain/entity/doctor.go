package entity

import "time"

type Doctor struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Specialization string    `gorm:"type:varchar(100);index" json:"specialization"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email          string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Availabilities []DoctorAvailability `gorm:"foreignKey:DoctorID" json:"availabilities,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
