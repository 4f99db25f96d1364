package handler

import (
	"errors"
	"net/http"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

// HospitalStaffHandler serves staff records along with their duties and attendance.
type HospitalStaffHandler struct {
	staffUsecase usecase.HospitalStaffUsecase
	dutyUsecase  usecase.StaffDutyUsecase
	validator    *validator.CustomValidator
}

func NewHospitalStaffHandler(staffUsecase usecase.HospitalStaffUsecase, dutyUsecase usecase.StaffDutyUsecase, validator *validator.CustomValidator) *HospitalStaffHandler {
	return &HospitalStaffHandler{
		staffUsecase: staffUsecase,
		dutyUsecase:  dutyUsecase,
		validator:    validator,
	}
}

func (h *HospitalStaffHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrStaffNotFound):
		response.NotFound(w, "Staff member not found")
	case errors.Is(err, usecase.ErrStaffUnavailable):
		response.Conflict(w, "Staff member is not available on this date")
	case errors.Is(err, usecase.ErrResourceInUse):
		response.Conflict(w, "Staff member is still referenced by other records")
	case inputError(w, err):
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *HospitalStaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStaffRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	staff, err := h.staffUsecase.CreateStaff(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create staff member")
		return
	}

	response.Success(w, http.StatusCreated, "Staff member created successfully", staff)
}

func (h *HospitalStaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "staff")
	if !ok {
		return
	}

	staff, err := h.staffUsecase.GetStaff(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get staff member")
		return
	}

	response.Success(w, http.StatusOK, "Staff member retrieved successfully", staff)
}

func (h *HospitalStaffHandler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffUsecase.GetAllStaff(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}

func (h *HospitalStaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "staff")
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	staff, err := h.staffUsecase.UpdateStaff(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update staff member")
		return
	}

	response.Success(w, http.StatusOK, "Staff member updated successfully", staff)
}

func (h *HospitalStaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "staff")
	if !ok {
		return
	}

	if err := h.staffUsecase.DeleteStaff(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete staff member")
		return
	}

	response.Success(w, http.StatusOK, "Staff member deleted successfully", nil)
}

// AssignDuty handles POST /assign_duty
func (h *HospitalStaffHandler) AssignDuty(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignDutyRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	duty, err := h.dutyUsecase.AssignDuty(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to assign duty")
		return
	}

	response.Success(w, http.StatusCreated, "Duty assigned successfully", duty)
}

// GetDutySchedule handles GET /staff_duty_schedule?staff_id=
func (h *HospitalStaffHandler) GetDutySchedule(w http.ResponseWriter, r *http.Request) {
	staffID, err := queryInt(r.URL.Query(), "staff_id")
	if err != nil || staffID == nil || *staffID <= 0 {
		response.BadRequest(w, "staff_id is required")
		return
	}

	schedule, err := h.dutyUsecase.GetDutySchedule(r.Context(), *staffID)
	if err != nil {
		h.writeError(w, err, "Failed to get duty schedule")
		return
	}

	response.Success(w, http.StatusOK, "Duty schedule retrieved successfully", schedule)
}

// MarkAttendance handles POST /mark_staff_attendance
func (h *HospitalStaffHandler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req dto.MarkAttendanceRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	attendance, err := h.dutyUsecase.MarkAttendance(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to mark attendance")
		return
	}

	response.Success(w, http.StatusOK, "Attendance marked successfully", attendance)
}

func (h *HospitalStaffHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	groups, err := h.dutyUsecase.GetAttendance(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get attendance")
		return
	}

	response.Success(w, http.StatusOK, "Attendance retrieved successfully", groups)
}

// GetAttendanceReport handles GET /staff_attendance_report?start_date=&end_date=
func (h *HospitalStaffHandler) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.AttendanceReportQuery{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.dutyUsecase.GetAttendanceReport(r.Context(), &query)
	if err != nil {
		h.writeError(w, err, "Failed to build attendance report")
		return
	}

	response.Success(w, http.StatusOK, "Attendance report generated successfully", report)
}
