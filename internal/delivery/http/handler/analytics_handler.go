package handler

import (
	"net/http"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

// AnalyticsHandler serves the dashboard and the read-only reports under /analytics.
type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
	dashboardUsecase usecase.DashboardUsecase
	validator        *validator.CustomValidator
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase, dashboardUsecase usecase.DashboardUsecase, validator *validator.CustomValidator) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
		dashboardUsecase: dashboardUsecase,
		validator:        validator,
	}
}

func (h *AnalyticsHandler) validQuery(w http.ResponseWriter, query interface{}) bool {
	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func (h *AnalyticsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *AnalyticsHandler) GetPatientStatus(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsUsecase.GetPatientStatus(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patient status analytics")
		return
	}

	response.Success(w, http.StatusOK, "Patient status analytics retrieved successfully", stats)
}

func (h *AnalyticsHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.RevenueQuery{
		DateStart: q.Get("date_start"),
		DateEnd:   q.Get("date_end"),
	}
	if !h.validQuery(w, &query) {
		return
	}

	revenue, err := h.analyticsUsecase.GetRevenue(r.Context(), &query)
	if err != nil {
		if inputError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get revenue analytics")
		return
	}

	response.Success(w, http.StatusOK, "Revenue analytics retrieved successfully", revenue)
}

func (h *AnalyticsHandler) GetDoctorAvailability(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsUsecase.GetDoctorAvailability(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctor availability analytics")
		return
	}

	response.Success(w, http.StatusOK, "Doctor availability analytics retrieved successfully", stats)
}

func (h *AnalyticsHandler) GetStaffAvailability(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsUsecase.GetStaffAvailability(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get staff availability analytics")
		return
	}

	response.Success(w, http.StatusOK, "Staff availability analytics retrieved successfully", stats)
}

func (h *AnalyticsHandler) GetPatientTestRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	patientID, err := queryInt(q, "patient_id")
	if err != nil {
		response.BadRequest(w, "Invalid patient_id")
		return
	}
	query := dto.PatientTestQuery{
		PatientID: patientID,
		TestType:  q.Get("test_type"),
		DateStart: q.Get("test_date_start"),
		DateEnd:   q.Get("test_date_end"),
	}
	if !h.validQuery(w, &query) {
		return
	}

	tests, err := h.analyticsUsecase.GetPatientTestRecords(r.Context(), &query)
	if err != nil {
		if inputError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get patient test records")
		return
	}

	response.Success(w, http.StatusOK, "Patient test records retrieved successfully", tests)
}

func (h *AnalyticsHandler) GetTheaterBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	theaterID, err := queryInt(q, "operation_theatre_id")
	if err != nil {
		response.BadRequest(w, "Invalid operation_theatre_id")
		return
	}
	query := dto.TheaterBookingQuery{
		TheaterID: theaterID,
		DateStart: q.Get("booking_date_start"),
		DateEnd:   q.Get("booking_date_end"),
	}
	if !h.validQuery(w, &query) {
		return
	}

	bookings, err := h.analyticsUsecase.GetTheaterBookings(r.Context(), &query)
	if err != nil {
		if inputError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get operation theatre bookings")
		return
	}

	response.Success(w, http.StatusOK, "Operation theatre bookings retrieved successfully", bookings)
}

func (h *AnalyticsHandler) GetHospitalStaff(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.StaffQuery{
		StaffType: q.Get("staff_type"),
		Name:      q.Get("name"),
		JoinStart: q.Get("date_of_joining_start"),
		JoinEnd:   q.Get("date_of_joining_end"),
	}
	if !h.validQuery(w, &query) {
		return
	}

	staff, err := h.analyticsUsecase.GetHospitalStaff(r.Context(), &query)
	if err != nil {
		if inputError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get hospital staff")
		return
	}

	response.Success(w, http.StatusOK, "Hospital staff retrieved successfully", staff)
}
