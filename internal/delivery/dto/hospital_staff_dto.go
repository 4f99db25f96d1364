package dto

// Request DTOs

type CreateStaffRequest struct {
	Name          string `json:"name" validate:"required,max=150"`
	Designation   string `json:"designation" validate:"required,max=100"`
	Phone         string `json:"phone" validate:"omitempty,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	DateOfJoining string `json:"date_of_joining" validate:"required,date_ymd"`
}

type UpdateStaffRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=150"`
	Designation   *string `json:"designation" validate:"omitempty,max=100"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
	Email         *string `json:"email" validate:"omitempty,email"`
	DateOfJoining *string `json:"date_of_joining" validate:"omitempty,date_ymd"`
}

type AssignDutyRequest struct {
	StaffID int    `json:"staff_id" validate:"required,gt=0"`
	Date    string `json:"date" validate:"required,date_ymd"`
}

type MarkAttendanceRequest struct {
	StaffID int    `json:"staff_id" validate:"required,gt=0"`
	Date    string `json:"date" validate:"required,date_ymd"`
	Status  string `json:"status" validate:"required,oneof=Present Absent"`
}

// Response DTOs

type StaffResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Designation   string `json:"designation"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	DateOfJoining string `json:"date_of_joining"`
}

type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}

type DutyResponse struct {
	ID      int    `json:"id"`
	StaffID int    `json:"staff_id"`
	Date    string `json:"date"`
}

type DutyScheduleResponse struct {
	StaffID int            `json:"staff_id"`
	Name    string         `json:"name"`
	Duties  []DutyResponse `json:"duties"`
}

type AttendanceResponse struct {
	ID      int    `json:"id"`
	StaffID int    `json:"staff_id"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

type StaffAttendanceGroup struct {
	StaffID int                  `json:"staff_id"`
	Name    string               `json:"name"`
	Records []AttendanceResponse `json:"records"`
}

type AttendanceReportRow struct {
	StaffID int    `json:"staff_id"`
	Name    string `json:"name"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

type AttendanceReportResponse struct {
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	Rows      []AttendanceReportRow `json:"rows"`
}
