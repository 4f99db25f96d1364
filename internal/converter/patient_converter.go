package converter

import (
	"time"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/pkg/clock"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		ID:        patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Gender:    patient.Gender,
		Phone:     patient.Phone,
		Email:     patient.Email,
		Address:   patient.Address,
		City:      patient.City,
		State:     patient.State,
		Zip:       patient.Zip,
		Status:    patient.Status,
		DoctorID:  patient.DoctorID,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}
	if patient.DateOfBirth != nil {
		resp.DateOfBirth = time.Time(*patient.DateOfBirth).Format(clock.DateLayout)
	}
	return resp
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
