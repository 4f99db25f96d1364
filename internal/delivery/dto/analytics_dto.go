package dto

import (
	"time"

	"hospital-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type DashboardResponse struct {
	Counts      entity.RecordCounts `json:"counts"`
	GeneratedAt time.Time           `json:"generated_at"`
}

type PatientStatusResponse struct {
	TotalPatients int64               `json:"total_patients"`
	ByStatus      []entity.LabelCount `json:"by_status"`
}

type AmountBucket struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type RevenueResponse struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	ByPaymentType []AmountBucket  `json:"by_payment_type"`
	ByMonth       []AmountBucket  `json:"by_month"`
}

type DayBucket struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type DoctorAvailabilityAnalytics struct {
	TotalDoctors          int64               `json:"total_doctors"`
	AvailablePerDay       []DayBucket         `json:"available_per_day"`
	AppointmentsPerDoctor []entity.LabelCount `json:"appointments_per_doctor"`
}

type StaffAvailabilityAnalytics struct {
	TotalStaff          int64               `json:"total_staff"`
	DutiesPerDay        []DayBucket         `json:"duties_per_day"`
	PresentDaysPerStaff []entity.LabelCount `json:"present_days_per_staff"`
}

// Query DTOs, bound from the URL. JSON names match the query parameters.

type RevenueQuery struct {
	DateStart string `json:"date_start" validate:"omitempty,date_ymd"`
	DateEnd   string `json:"date_end" validate:"omitempty,date_ymd"`
}

type PatientTestQuery struct {
	PatientID *int   `json:"patient_id" validate:"omitempty,gt=0"`
	TestType  string `json:"test_type"`
	DateStart string `json:"test_date_start" validate:"omitempty,date_ymd"`
	DateEnd   string `json:"test_date_end" validate:"omitempty,date_ymd"`
}

type TheaterBookingQuery struct {
	TheaterID *int   `json:"operation_theatre_id" validate:"omitempty,gt=0"`
	DateStart string `json:"booking_date_start" validate:"omitempty,date_ymd"`
	DateEnd   string `json:"booking_date_end" validate:"omitempty,date_ymd"`
}

type StaffQuery struct {
	StaffType string `json:"staff_type"`
	Name      string `json:"name"`
	JoinStart string `json:"date_of_joining_start" validate:"omitempty,date_ymd"`
	JoinEnd   string `json:"date_of_joining_end" validate:"omitempty,date_ymd"`
}

type AttendanceReportQuery struct {
	StartDate string `json:"start_date" validate:"required,date_ymd"`
	EndDate   string `json:"end_date" validate:"required,date_ymd"`
}
