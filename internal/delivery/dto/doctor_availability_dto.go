package dto

// Request DTOs

type CreateAvailabilityRequest struct {
	DoctorID  int    `json:"doctor_id" validate:"required,gt=0"`
	DayOfWeek *int   `json:"day_of_week" validate:"required,gte=0,lte=6"` // 0 = Monday
	StartTime string `json:"start_time" validate:"required,clock"`        // Format: HH:MM[:SS]
	EndTime   string `json:"end_time" validate:"required,clock"`          // Format: HH:MM[:SS]
}

type UpdateAvailabilityRequest struct {
	DoctorID  *int    `json:"doctor_id" validate:"omitempty,gt=0"`
	DayOfWeek *int    `json:"day_of_week" validate:"omitempty,gte=0,lte=6"`
	StartTime *string `json:"start_time" validate:"omitempty,clock"`
	EndTime   *string `json:"end_time" validate:"omitempty,clock"`
}

// Response DTOs

type AvailabilityResponse struct {
	ID         int    `json:"id"`
	DoctorID   int    `json:"doctor_id"`
	DoctorName string `json:"doctor_name,omitempty"`
	DayOfWeek  int    `json:"day_of_week"`
	DayName    string `json:"day_name"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type AvailabilityListResponse struct {
	Availabilities []AvailabilityResponse `json:"availabilities"`
	Total          int                    `json:"total"`
}
