package handler

import (
	"errors"
	"net/http"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/delivery/http/middleware"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.OperationTheaterBookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.OperationTheaterBookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// BookTheater handles POST /operation-theater-booking
func (h *BookingHandler) BookTheater(w http.ResponseWriter, r *http.Request) {
	var req dto.BookTheaterRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	booking, err := h.bookingUsecase.BookTheater(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTimeRange):
			response.BadRequest(w, "Start time must be before end time")
		case usecase.IsBookingMalformed(err):
			response.BadRequest(w, "start_time and end_time must use format YYYY-MM-DD HH:MM:SS")
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrTheaterNotFound):
			response.NotFound(w, "Theater not found")
		case errors.Is(err, usecase.ErrDoctorUnavailable):
			response.Conflict(w, "Doctor not available at the specified time")
		case errors.Is(err, usecase.ErrTheaterUnavailable):
			response.Conflict(w, "Theater not available at the specified time")
		default:
			middleware.LoggerFromContext(r.Context()).Errorf("Failed to book theater: %+v", err)
			response.InternalServerError(w, "Failed to book operation theater")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Operation theater booked successfully", booking)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTheaterBookingNotFound) {
			response.NotFound(w, "Operation theatre booking not found")
			return
		}
		response.InternalServerError(w, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingUsecase.GetAllBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}
