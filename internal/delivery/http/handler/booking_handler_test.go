package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type fakeBookingUsecase struct {
	book func(req *dto.BookTheaterRequest) (*dto.TheaterBookingResponse, error)
	get  func(id int) (*dto.TheaterBookingResponse, error)
}

func (f *fakeBookingUsecase) BookTheater(_ context.Context, req *dto.BookTheaterRequest) (*dto.TheaterBookingResponse, error) {
	return f.book(req)
}

func (f *fakeBookingUsecase) GetBooking(_ context.Context, id int) (*dto.TheaterBookingResponse, error) {
	return f.get(id)
}

func (f *fakeBookingUsecase) GetAllBookings(context.Context) (*dto.TheaterBookingListResponse, error) {
	return &dto.TheaterBookingListResponse{}, nil
}

const validBookingBody = `{"doctor_id":1,"theater_id":2,"start_time":"2023-10-02 10:00:00","end_time":"2023-10-02 11:00:00"}`

func postBooking(t *testing.T, uc usecase.OperationTheaterBookingUsecase, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	h := NewBookingHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/operation-theater-booking", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.BookTheater(rec, req)

	var resp response.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return rec, resp
}

func TestBookTheaterCreated(t *testing.T) {
	uc := &fakeBookingUsecase{book: func(req *dto.BookTheaterRequest) (*dto.TheaterBookingResponse, error) {
		if req.DoctorID != 1 || req.TheaterID != 2 || req.StartTime != "2023-10-02 10:00:00" {
			t.Errorf("unexpected request: %+v", req)
		}
		return &dto.TheaterBookingResponse{ID: 7, DoctorID: 1, TheaterID: 2}, nil
	}}

	rec, resp := postBooking(t, uc, validBookingBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if !resp.Success || resp.Message != "Operation theater booked successfully" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestBookTheaterErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"doctor missing", usecase.ErrDoctorNotFound, http.StatusNotFound, "Doctor not found"},
		{"theater missing", usecase.ErrTheaterNotFound, http.StatusNotFound, "Theater not found"},
		{"doctor busy", usecase.ErrDoctorUnavailable, http.StatusConflict, "Doctor not available at the specified time"},
		{"theater full", usecase.ErrTheaterUnavailable, http.StatusConflict, "Theater not available at the specified time"},
		{"bad range", usecase.ErrInvalidTimeRange, http.StatusBadRequest, "Start time must be before end time"},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError, "Failed to book operation theater"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeBookingUsecase{book: func(*dto.BookTheaterRequest) (*dto.TheaterBookingResponse, error) {
				return nil, tt.err
			}}

			rec, resp := postBooking(t, uc, validBookingBody)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if resp.Success || resp.Message != tt.message {
				t.Errorf("unexpected envelope: %+v", resp)
			}
		})
	}
}

func TestBookTheaterRejectsBadInput(t *testing.T) {
	uc := &fakeBookingUsecase{book: func(*dto.BookTheaterRequest) (*dto.TheaterBookingResponse, error) {
		t.Fatal("usecase must not be reached")
		return nil, nil
	}}

	bodies := map[string]string{
		"not json":       `{"doctor_id":`,
		"missing doctor": `{"theater_id":2,"start_time":"2023-10-02 10:00:00","end_time":"2023-10-02 11:00:00"}`,
		"iso timestamp":  `{"doctor_id":1,"theater_id":2,"start_time":"2023-10-02T10:00:00Z","end_time":"2023-10-02 11:00:00"}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			rec, _ := postBooking(t, uc, body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGetBookingRoutes(t *testing.T) {
	uc := &fakeBookingUsecase{get: func(id int) (*dto.TheaterBookingResponse, error) {
		if id == 3 {
			return &dto.TheaterBookingResponse{ID: 3}, nil
		}
		return nil, usecase.ErrTheaterBookingNotFound
	}}
	h := NewBookingHandler(uc, validator.NewValidator())

	router := mux.NewRouter()
	router.HandleFunc("/operation-theatre-bookings/{id}", h.GetBooking).Methods(http.MethodGet)

	cases := map[string]int{
		"/operation-theatre-bookings/3":   http.StatusOK,
		"/operation-theatre-bookings/4":   http.StatusNotFound,
		"/operation-theatre-bookings/abc": http.StatusBadRequest,
	}
	for path, want := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != want {
			t.Errorf("%s: status = %d, want %d", path, rec.Code, want)
		}
	}
}
