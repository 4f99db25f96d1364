package converter

import (
	"time"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/pkg/clock"
)

func StaffToResponse(s *entity.HospitalStaff) *dto.StaffResponse {
	if s == nil {
		return nil
	}

	return &dto.StaffResponse{
		ID:            s.ID,
		Name:          s.Name,
		Designation:   s.Designation,
		Phone:         s.Phone,
		Email:         s.Email,
		DateOfJoining: time.Time(s.DateOfJoining).Format(clock.DateLayout),
	}
}

func StaffToResponses(items []entity.HospitalStaff) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(items))
	for i := range items {
		responses[i] = *StaffToResponse(&items[i])
	}
	return responses
}

func DutyToResponse(d *entity.Duty) dto.DutyResponse {
	return dto.DutyResponse{
		ID:      d.ID,
		StaffID: d.StaffID,
		Date:    time.Time(d.DutyDate).Format(clock.DateLayout),
	}
}

func AttendanceToResponse(a *entity.StaffAttendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:      a.ID,
		StaffID: a.StaffID,
		Date:    time.Time(a.AttendanceDate).Format(clock.DateLayout),
		Status:  a.Status,
	}
}
