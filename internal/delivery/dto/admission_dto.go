package dto

// Request DTOs

type CreateAdmissionRequest struct {
	PatientID     int    `json:"patient_id" validate:"required,gt=0"`
	AdmissionDate string `json:"admission_date" validate:"required,date_ymd"`
	AdmissionTime string `json:"admission_time" validate:"required,clock"`
	DischargeDate string `json:"discharge_date" validate:"omitempty,date_ymd"`
	DischargeTime string `json:"discharge_time" validate:"omitempty,clock"`
}

type UpdateAdmissionRequest struct {
	AdmissionDate *string `json:"admission_date" validate:"omitempty,date_ymd"`
	AdmissionTime *string `json:"admission_time" validate:"omitempty,clock"`
	DischargeDate *string `json:"discharge_date" validate:"omitempty,date_ymd"`
	DischargeTime *string `json:"discharge_time" validate:"omitempty,clock"`
}

// Response DTOs

type AdmissionResponse struct {
	ID            int    `json:"id"`
	PatientID     int    `json:"patient_id"`
	PatientName   string `json:"patient_name,omitempty"`
	AdmissionDate string `json:"admission_date"`
	AdmissionTime string `json:"admission_time"`
	DischargeDate string `json:"discharge_date,omitempty"`
	DischargeTime string `json:"discharge_time,omitempty"`
	Status        string `json:"status"`
}

type AdmissionListResponse struct {
	Admissions []AdmissionResponse `json:"admissions"`
	Total      int                 `json:"total"`
}
