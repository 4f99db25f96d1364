package dto

import "time"

// Request DTOs

type CreateTheaterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"omitempty,max=255"`
	Capacity *int   `json:"capacity" validate:"required,gte=0"`
}

type UpdateTheaterRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Location *string `json:"location" validate:"omitempty,max=255"`
	Capacity *int    `json:"capacity" validate:"omitempty,gte=0"`
}

// BookTheaterRequest timestamps use "YYYY-MM-DD HH:MM:SS".
type BookTheaterRequest struct {
	DoctorID  int    `json:"doctor_id" validate:"required,gt=0"`
	TheaterID int    `json:"theater_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" validate:"required,datetime_ymdhms"`
	EndTime   string `json:"end_time" validate:"required,datetime_ymdhms"`
}

// Response DTOs

type TheaterResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

type TheaterListResponse struct {
	Theaters []TheaterResponse `json:"theaters"`
	Total    int               `json:"total"`
}

type TheaterBookingResponse struct {
	ID          int       `json:"id"`
	DoctorID    int       `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	TheaterID   int       `json:"theater_id"`
	TheaterName string    `json:"theater_name,omitempty"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}

type TheaterBookingListResponse struct {
	Bookings []TheaterBookingResponse `json:"bookings"`
	Total    int                      `json:"total"`
}
