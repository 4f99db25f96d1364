package entity

import (
	"time"

	"gorm.io/datatypes"
)

type HospitalStaff struct {
	ID            int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"type:varchar(150);not null;index" json:"name"`
	Designation   string         `gorm:"type:varchar(100);index" json:"designation"`
	Phone         string         `gorm:"type:varchar(20)" json:"phone"`
	Email         string         `gorm:"type:varchar(255)" json:"email"`
	DateOfJoining datatypes.Date `gorm:"type:date;not null" json:"date_of_joining"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HospitalStaff) TableName() string {
	return "hospital_staff"
}

// Duty assigns a staff member to a working day.
type Duty struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID   int            `gorm:"not null;uniqueIndex:idx_duty_staff_date" json:"staff_id"`
	DutyDate  datatypes.Date `gorm:"type:date;not null;uniqueIndex:idx_duty_staff_date" json:"duty_date"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Staff *HospitalStaff `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

func (Duty) TableName() string {
	return "duties"
}

type StaffAttendance struct {
	ID             int            `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID        int            `gorm:"not null;uniqueIndex:idx_attendance_staff_date" json:"staff_id"`
	AttendanceDate datatypes.Date `gorm:"type:date;not null;uniqueIndex:idx_attendance_staff_date" json:"attendance_date"`
	Status         string         `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Staff *HospitalStaff `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

func (StaffAttendance) TableName() string {
	return "staff_attendance"
}

// Attendance status constants
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)
