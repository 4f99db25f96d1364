package handler

import (
	"errors"
	"net/http"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

type OperationTheaterHandler struct {
	theaterUsecase usecase.OperationTheaterUsecase
	validator      *validator.CustomValidator
}

func NewOperationTheaterHandler(theaterUsecase usecase.OperationTheaterUsecase, validator *validator.CustomValidator) *OperationTheaterHandler {
	return &OperationTheaterHandler{
		theaterUsecase: theaterUsecase,
		validator:      validator,
	}
}

func (h *OperationTheaterHandler) CreateTheater(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTheaterRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	theater, err := h.theaterUsecase.CreateTheater(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create theater")
		return
	}

	response.Success(w, http.StatusCreated, "Theater created successfully", theater)
}

func (h *OperationTheaterHandler) GetTheater(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "theater")
	if !ok {
		return
	}

	theater, err := h.theaterUsecase.GetTheater(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTheaterNotFound) {
			response.NotFound(w, "Theater not found")
			return
		}
		response.InternalServerError(w, "Failed to get theater")
		return
	}

	response.Success(w, http.StatusOK, "Theater retrieved successfully", theater)
}

func (h *OperationTheaterHandler) GetAllTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := h.theaterUsecase.GetAllTheaters(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get theaters")
		return
	}

	response.Success(w, http.StatusOK, "Theaters retrieved successfully", theaters)
}

func (h *OperationTheaterHandler) UpdateTheater(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "theater")
	if !ok {
		return
	}

	var req dto.UpdateTheaterRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	theater, err := h.theaterUsecase.UpdateTheater(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrTheaterNotFound) {
			response.NotFound(w, "Theater not found")
			return
		}
		response.InternalServerError(w, "Failed to update theater")
		return
	}

	response.Success(w, http.StatusOK, "Theater updated successfully", theater)
}

func (h *OperationTheaterHandler) DeleteTheater(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "theater")
	if !ok {
		return
	}

	if err := h.theaterUsecase.DeleteTheater(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrTheaterNotFound):
			response.NotFound(w, "Theater not found")
		case errors.Is(err, usecase.ErrResourceInUse):
			response.Conflict(w, "Theater still has bookings")
		default:
			response.InternalServerError(w, "Failed to delete theater")
		}
		return
	}

	response.Success(w, http.StatusOK, "Theater deleted successfully", nil)
}
