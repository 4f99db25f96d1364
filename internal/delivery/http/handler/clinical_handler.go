package handler

import (
	"errors"
	"net/http"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

// ClinicalHandler serves appointments, admissions and patient tests.
type ClinicalHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	admissionUsecase   usecase.AdmissionUsecase
	testUsecase        usecase.PatientTestUsecase
	validator          *validator.CustomValidator
}

func NewClinicalHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	admissionUsecase usecase.AdmissionUsecase,
	testUsecase usecase.PatientTestUsecase,
	validator *validator.CustomValidator,
) *ClinicalHandler {
	return &ClinicalHandler{
		appointmentUsecase: appointmentUsecase,
		admissionUsecase:   admissionUsecase,
		testUsecase:        testUsecase,
		validator:          validator,
	}
}

func (h *ClinicalHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrAdmissionNotFound):
		response.NotFound(w, "Admission not found")
	case errors.Is(err, usecase.ErrPatientTestNotFound):
		response.NotFound(w, "Patient test not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrDischargeBeforeAdmission), errors.Is(err, usecase.ErrIncompleteDischarge):
		response.BadRequest(w, err.Error())
	case inputError(w, err):
	default:
		response.InternalServerError(w, fallback)
	}
}

// Appointments

func (h *ClinicalHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *ClinicalHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "appointment")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *ClinicalHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *ClinicalHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "appointment")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *ClinicalHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "appointment")
	if !ok {
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

// Admissions

func (h *ClinicalHandler) CreateAdmission(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdmissionRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	admission, err := h.admissionUsecase.CreateAdmission(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create admission")
		return
	}

	response.Success(w, http.StatusCreated, "Admission created successfully", admission)
}

func (h *ClinicalHandler) GetAdmission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "admission")
	if !ok {
		return
	}

	admission, err := h.admissionUsecase.GetAdmission(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get admission")
		return
	}

	response.Success(w, http.StatusOK, "Admission retrieved successfully", admission)
}

func (h *ClinicalHandler) GetAllAdmissions(w http.ResponseWriter, r *http.Request) {
	admissions, err := h.admissionUsecase.GetAllAdmissions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get admissions")
		return
	}

	response.Success(w, http.StatusOK, "Admissions retrieved successfully", admissions)
}

func (h *ClinicalHandler) UpdateAdmission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "admission")
	if !ok {
		return
	}

	var req dto.UpdateAdmissionRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	admission, err := h.admissionUsecase.UpdateAdmission(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update admission")
		return
	}

	response.Success(w, http.StatusOK, "Admission updated successfully", admission)
}

func (h *ClinicalHandler) DeleteAdmission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "admission")
	if !ok {
		return
	}

	if err := h.admissionUsecase.DeleteAdmission(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete admission")
		return
	}

	response.Success(w, http.StatusOK, "Admission deleted successfully", nil)
}

// Patient tests

func (h *ClinicalHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientTestRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	test, err := h.testUsecase.CreateTest(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create patient test")
		return
	}

	response.Success(w, http.StatusCreated, "Patient test created successfully", test)
}

func (h *ClinicalHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "patient test")
	if !ok {
		return
	}

	test, err := h.testUsecase.GetTest(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get patient test")
		return
	}

	response.Success(w, http.StatusOK, "Patient test retrieved successfully", test)
}

func (h *ClinicalHandler) GetAllTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.testUsecase.GetAllTests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patient tests")
		return
	}

	response.Success(w, http.StatusOK, "Patient tests retrieved successfully", tests)
}

func (h *ClinicalHandler) UpdateTest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "patient test")
	if !ok {
		return
	}

	var req dto.UpdatePatientTestRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	test, err := h.testUsecase.UpdateTest(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update patient test")
		return
	}

	response.Success(w, http.StatusOK, "Patient test updated successfully", test)
}

func (h *ClinicalHandler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "patient test")
	if !ok {
		return
	}

	if err := h.testUsecase.DeleteTest(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete patient test")
		return
	}

	response.Success(w, http.StatusOK, "Patient test deleted successfully", nil)
}
