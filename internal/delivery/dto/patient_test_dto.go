package dto

// Request DTOs

type CreatePatientTestRequest struct {
	PatientID  int    `json:"patient_id" validate:"required,gt=0"`
	TestName   string `json:"test_name" validate:"required,max=100"`
	TestType   string `json:"test_type" validate:"omitempty,max=100"`
	TestDate   string `json:"test_date" validate:"required,date_ymd"`
	TestResult string `json:"test_result"`
}

type UpdatePatientTestRequest struct {
	TestName   *string `json:"test_name" validate:"omitempty,max=100"`
	TestType   *string `json:"test_type" validate:"omitempty,max=100"`
	TestDate   *string `json:"test_date" validate:"omitempty,date_ymd"`
	TestResult *string `json:"test_result"`
}

// Response DTOs

type PatientTestResponse struct {
	ID          int    `json:"id"`
	PatientID   int    `json:"patient_id"`
	PatientName string `json:"patient_name,omitempty"`
	TestName    string `json:"test_name"`
	TestType    string `json:"test_type"`
	TestDate    string `json:"test_date"`
	TestResult  string `json:"test_result"`
}

type PatientTestListResponse struct {
	Tests []PatientTestResponse `json:"tests"`
	Total int                   `json:"total"`
}
