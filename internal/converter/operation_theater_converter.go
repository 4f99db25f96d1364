package converter

import (
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/pkg/clock"
)

func TheaterToResponse(t *entity.OperationTheater) *dto.TheaterResponse {
	if t == nil {
		return nil
	}

	return &dto.TheaterResponse{
		ID:       t.ID,
		Name:     t.Name,
		Location: t.Location,
		Capacity: t.Capacity,
	}
}

func TheatersToResponses(items []entity.OperationTheater) []dto.TheaterResponse {
	responses := make([]dto.TheaterResponse, len(items))
	for i := range items {
		responses[i] = *TheaterToResponse(&items[i])
	}
	return responses
}

// TheaterBookingToResponse converts a booking; doctor and theatre names are filled when preloaded.
func TheaterBookingToResponse(b *entity.OperationTheaterBooking) *dto.TheaterBookingResponse {
	if b == nil {
		return nil
	}

	resp := &dto.TheaterBookingResponse{
		ID:        b.ID,
		DoctorID:  b.DoctorID,
		TheaterID: b.TheaterID,
		StartTime: b.StartTime.UTC().Format(clock.DateTimeLayout),
		EndTime:   b.EndTime.UTC().Format(clock.DateTimeLayout),
		CreatedAt: b.CreatedAt,
	}
	if b.Doctor != nil {
		resp.DoctorName = b.Doctor.FullName()
	}
	if b.Theater != nil {
		resp.TheaterName = b.Theater.Name
	}
	return resp
}

func TheaterBookingsToResponses(items []entity.OperationTheaterBooking) []dto.TheaterBookingResponse {
	responses := make([]dto.TheaterBookingResponse, len(items))
	for i := range items {
		responses[i] = *TheaterBookingToResponse(&items[i])
	}
	return responses
}
