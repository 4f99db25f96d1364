package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorAvailabilityHandler struct {
	availabilityUsecase usecase.DoctorAvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewDoctorAvailabilityHandler(availabilityUsecase usecase.DoctorAvailabilityUsecase, validator *validator.CustomValidator) *DoctorAvailabilityHandler {
	return &DoctorAvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *DoctorAvailabilityHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrAvailabilityNotFound):
		response.NotFound(w, "Availability not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrInvalidWindow):
		response.BadRequest(w, "Start time must be before end time")
	case inputError(w, err):
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *DoctorAvailabilityHandler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAvailabilityRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	availability, err := h.availabilityUsecase.CreateAvailability(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create availability")
		return
	}

	response.Success(w, http.StatusCreated, "Availability created successfully", availability)
}

func (h *DoctorAvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "availability")
	if !ok {
		return
	}

	availability, err := h.availabilityUsecase.GetAvailability(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

func (h *DoctorAvailabilityHandler) GetAllAvailabilities(w http.ResponseWriter, r *http.Request) {
	availabilities, err := h.availabilityUsecase.GetAllAvailabilities(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get availabilities")
		return
	}

	response.Success(w, http.StatusOK, "Availabilities retrieved successfully", availabilities)
}

func (h *DoctorAvailabilityHandler) GetAvailabilitiesByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["doctorId"])
	if err != nil || doctorID <= 0 {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	availabilities, err := h.availabilityUsecase.GetAvailabilitiesByDoctor(r.Context(), doctorID)
	if err != nil {
		h.writeError(w, err, "Failed to get availabilities")
		return
	}

	response.Success(w, http.StatusOK, "Availabilities retrieved successfully", availabilities)
}

func (h *DoctorAvailabilityHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "availability")
	if !ok {
		return
	}

	var req dto.UpdateAvailabilityRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	availability, err := h.availabilityUsecase.UpdateAvailability(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", availability)
}

func (h *DoctorAvailabilityHandler) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "availability")
	if !ok {
		return
	}

	if err := h.availabilityUsecase.DeleteAvailability(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability deleted successfully", nil)
}
