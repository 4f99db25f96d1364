package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
	Phone          string `json:"phone" validate:"omitempty,max=20"`
	Email          string `json:"email" validate:"omitempty,email"`
}

type UpdateDoctorRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string `json:"last_name" validate:"omitempty,max=100"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	Email          *string `json:"email" validate:"omitempty,email"`
}

// Response DTOs

type DoctorResponse struct {
	ID             int                    `json:"id"`
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	FullName       string                 `json:"full_name"`
	Specialization string                 `json:"specialization"`
	Phone          string                 `json:"phone,omitempty"`
	Email          string                 `json:"email,omitempty"`
	Availabilities []AvailabilityResponse `json:"availabilities,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
