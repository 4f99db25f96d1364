package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int             `gorm:"not null;index" json:"patient_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentType string          `gorm:"type:varchar(50);not null;index" json:"payment_type"`
	PaymentDate time.Time       `gorm:"not null;index" json:"payment_date"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
