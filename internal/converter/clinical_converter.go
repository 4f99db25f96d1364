package converter

import (
	"time"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/pkg/clock"
)

func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: time.Time(a.AppointmentDate).Format(clock.DateLayout),
		AppointmentTime: clock.FormatClock(time.Duration(a.AppointmentTime)),
		Status:          a.Status,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
	}
	if a.Patient != nil {
		resp.PatientName = a.Patient.FullName()
	}
	if a.Doctor != nil {
		resp.DoctorName = a.Doctor.FullName()
	}
	return resp
}

func AppointmentsToResponses(items []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(items))
	for i := range items {
		responses[i] = *AppointmentToResponse(&items[i])
	}
	return responses
}

// AdmissionToResponse splits the admission timestamps back into date and time fields.
func AdmissionToResponse(a *entity.Admission) *dto.AdmissionResponse {
	if a == nil {
		return nil
	}

	resp := &dto.AdmissionResponse{
		ID:            a.ID,
		PatientID:     a.PatientID,
		AdmissionDate: a.AdmittedAt.UTC().Format(clock.DateLayout),
		AdmissionTime: a.AdmittedAt.UTC().Format(clock.ClockLayout),
		Status:        a.Status,
	}
	if a.DischargedAt != nil {
		resp.DischargeDate = a.DischargedAt.UTC().Format(clock.DateLayout)
		resp.DischargeTime = a.DischargedAt.UTC().Format(clock.ClockLayout)
	}
	if a.Patient != nil {
		resp.PatientName = a.Patient.FullName()
	}
	return resp
}

func AdmissionsToResponses(items []entity.Admission) []dto.AdmissionResponse {
	responses := make([]dto.AdmissionResponse, len(items))
	for i := range items {
		responses[i] = *AdmissionToResponse(&items[i])
	}
	return responses
}

func PatientTestToResponse(t *entity.PatientTest) *dto.PatientTestResponse {
	if t == nil {
		return nil
	}

	resp := &dto.PatientTestResponse{
		ID:         t.ID,
		PatientID:  t.PatientID,
		TestName:   t.TestName,
		TestType:   t.TestType,
		TestDate:   t.TestDate.UTC().Format(clock.DateLayout),
		TestResult: t.TestResult,
	}
	if t.Patient != nil {
		resp.PatientName = t.Patient.FullName()
	}
	return resp
}

func PatientTestsToResponses(items []entity.PatientTest) []dto.PatientTestResponse {
	responses := make([]dto.PatientTestResponse, len(items))
	for i := range items {
		responses[i] = *PatientTestToResponse(&items[i])
	}
	return responses
}

func PaymentToResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:          p.ID,
		PatientID:   p.PatientID,
		Amount:      p.Amount,
		PaymentType: p.PaymentType,
		PaymentDate: p.PaymentDate.UTC().Format(clock.DateLayout),
		CreatedAt:   p.CreatedAt,
	}
}

func PaymentsToResponses(items []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(items))
	for i := range items {
		responses[i] = *PaymentToResponse(&items[i])
	}
	return responses
}
