package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePaymentRequest struct {
	PatientID   int             `json:"patient_id" validate:"required,gt=0"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"payment_type" validate:"required,max=50"`
	PaymentDate string          `json:"payment_date" validate:"required,date_ymd"`
}

// Response DTOs

type PaymentResponse struct {
	ID          int             `json:"id"`
	PatientID   int             `json:"patient_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"payment_type"`
	PaymentDate string          `json:"payment_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int64             `json:"total"`
}
