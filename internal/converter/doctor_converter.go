package converter

import (
	"time"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/pkg/clock"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO.
// Availabilities are included only when they were preloaded.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		ID:             doctor.ID,
		FirstName:      doctor.FirstName,
		LastName:       doctor.LastName,
		FullName:       doctor.FullName(),
		Specialization: doctor.Specialization,
		Phone:          doctor.Phone,
		Email:          doctor.Email,
		CreatedAt:      doctor.CreatedAt,
		UpdatedAt:      doctor.UpdatedAt,
	}
	if len(doctor.Availabilities) > 0 {
		resp.Availabilities = AvailabilitiesToResponses(doctor.Availabilities)
	}
	return resp
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func AvailabilityToResponse(a *entity.DoctorAvailability) *dto.AvailabilityResponse {
	if a == nil {
		return nil
	}

	resp := &dto.AvailabilityResponse{
		ID:        a.ID,
		DoctorID:  a.DoctorID,
		DayOfWeek: a.DayOfWeek,
		StartTime: clock.FormatClock(time.Duration(a.StartTime)),
		EndTime:   clock.FormatClock(time.Duration(a.EndTime)),
	}
	if a.DayOfWeek >= 0 && a.DayOfWeek < len(entity.DayNames) {
		resp.DayName = entity.DayNames[a.DayOfWeek]
	}
	if a.Doctor != nil {
		resp.DoctorName = a.Doctor.FullName()
	}
	return resp
}

func AvailabilitiesToResponses(items []entity.DoctorAvailability) []dto.AvailabilityResponse {
	responses := make([]dto.AvailabilityResponse, len(items))
	for i := range items {
		responses[i] = *AvailabilityToResponse(&items[i])
	}
	return responses
}
