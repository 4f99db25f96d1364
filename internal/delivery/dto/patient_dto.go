package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Gender      string `json:"gender" validate:"omitempty,max=10"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,date_ymd"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	City        string `json:"city" validate:"omitempty,max=100"`
	State       string `json:"state" validate:"omitempty,max=100"`
	Zip         string `json:"zip" validate:"omitempty,max=20"`
	Status      string `json:"status" validate:"omitempty,max=50"`
	DoctorID    *int   `json:"doctor_id" validate:"omitempty,gt=0"`
}

// UpdatePatientRequest leaves fields that are omitted untouched.
type UpdatePatientRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	Gender      *string `json:"gender" validate:"omitempty,max=10"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,date_ymd"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
	Zip         *string `json:"zip" validate:"omitempty,max=20"`
	Status      *string `json:"status" validate:"omitempty,max=50"`
	DoctorID    *int    `json:"doctor_id" validate:"omitempty,gt=0"`
}

// Response DTOs

type PatientResponse struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Gender      string    `json:"gender"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Zip         string    `json:"zip,omitempty"`
	Status      string    `json:"status"`
	DoctorID    *int      `json:"doctor_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Redact clears the contact fields hidden from staff accounts.
func (p *PatientResponse) Redact() {
	p.Phone = ""
	p.Email = ""
	p.Address = ""
	p.City = ""
	p.State = ""
	p.Zip = ""
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

// PatientDetailResponse is a patient with their clinical history.
type PatientDetailResponse struct {
	Patient      PatientResponse       `json:"patient"`
	Tests        []PatientTestResponse `json:"tests"`
	Appointments []AppointmentResponse `json:"appointments"`
	Admissions   []AdmissionResponse   `json:"admissions"`
}
