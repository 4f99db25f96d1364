package entity

import "time"

// PatientTest is a diagnostic test performed on a patient.
type PatientTest struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID  int       `gorm:"not null;index" json:"patient_id"`
	TestName   string    `gorm:"type:varchar(100);not null" json:"test_name"`
	TestType   string    `gorm:"type:varchar(100);index" json:"test_type"`
	TestDate   time.Time `gorm:"not null;index" json:"test_date"`
	TestResult string    `gorm:"type:text" json:"test_result"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (PatientTest) TableName() string {
	return "patient_tests"
}
