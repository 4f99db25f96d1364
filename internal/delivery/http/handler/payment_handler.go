package handler

import (
	"errors"
	"net/http"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	payment, err := h.paymentUsecase.CreatePayment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrInvalidAmount):
			response.BadRequest(w, "Amount must be greater than zero")
		case inputError(w, err):
		default:
			response.InternalServerError(w, "Failed to create payment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment created successfully", payment)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "payment")
	if !ok {
		return
	}

	payment, err := h.paymentUsecase.GetPayment(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentNotFound) {
			response.NotFound(w, "Payment not found")
			return
		}
		response.InternalServerError(w, "Failed to get payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}

// GetPayments handles GET /payments?page=&limit=
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	payments, page, limit, err := h.paymentUsecase.GetPayments(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get payments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Payments retrieved successfully", payments.Payments, response.NewMeta(page, limit, payments.Total))
}
