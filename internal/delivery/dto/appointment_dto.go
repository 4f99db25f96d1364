package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       int    `json:"patient_id" validate:"required,gt=0"`
	DoctorID        int    `json:"doctor_id" validate:"required,gt=0"`
	AppointmentDate string `json:"appointment_date" validate:"required,date_ymd"`
	AppointmentTime string `json:"appointment_time" validate:"required,clock"`
	Status          string `json:"status" validate:"omitempty,oneof=Confirmed Completed Cancelled"`
	Notes           string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	PatientID       *int    `json:"patient_id" validate:"omitempty,gt=0"`
	DoctorID        *int    `json:"doctor_id" validate:"omitempty,gt=0"`
	AppointmentDate *string `json:"appointment_date" validate:"omitempty,date_ymd"`
	AppointmentTime *string `json:"appointment_time" validate:"omitempty,clock"`
	Status          *string `json:"status" validate:"omitempty,oneof=Confirmed Completed Cancelled"`
	Notes           *string `json:"notes"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int       `json:"id"`
	PatientID       int       `json:"patient_id"`
	PatientName     string    `json:"patient_name,omitempty"`
	DoctorID        int       `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
