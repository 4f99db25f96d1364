package entity

import "time"

// OperationTheater tracks how many more bookings a theatre can take.
type OperationTheater struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Location  string    `gorm:"type:varchar(255)" json:"location"`
	Capacity  int       `gorm:"not null;default:0" json:"capacity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OperationTheater) TableName() string {
	return "operation_theaters"
}

func (t *OperationTheater) HasCapacity() bool {
	return t.Capacity > 0
}

// OperationTheaterBooking is immutable once created.
type OperationTheaterBooking struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int       `gorm:"not null;index" json:"doctor_id"`
	TheaterID int       `gorm:"not null;index" json:"theater_id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor  *Doctor           `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Theater *OperationTheater `gorm:"foreignKey:TheaterID" json:"theater,omitempty"`
}

func (OperationTheaterBooking) TableName() string {
	return "operation_theatre_bookings"
}
