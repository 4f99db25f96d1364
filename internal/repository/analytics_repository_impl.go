package repository

import (
	"context"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type analyticsRepository struct{}

func NewAnalyticsRepository() domainRepo.AnalyticsRepository {
	return &analyticsRepository{}
}

func (r *analyticsRepository) CountRecords(ctx context.Context, db *gorm.DB) (*entity.RecordCounts, error) {
	counts := &entity.RecordCounts{}
	targets := []struct {
		model interface{}
		dst   *int64
	}{
		{&entity.Patient{}, &counts.Patients},
		{&entity.Doctor{}, &counts.Doctors},
		{&entity.Appointment{}, &counts.Appointments},
		{&entity.Admission{}, &counts.Admissions},
		{&entity.PatientTest{}, &counts.Tests},
		{&entity.OperationTheaterBooking{}, &counts.Bookings},
		{&entity.HospitalStaff{}, &counts.Staff},
	}

	for _, t := range targets {
		if err := db.WithContext(ctx).Model(t.model).Count(t.dst).Error; err != nil {
			return nil, err
		}
	}
	return counts, nil
}

func (r *analyticsRepository) CountPatientsByStatus(ctx context.Context, db *gorm.DB) ([]entity.LabelCount, error) {
	var rows []entity.LabelCount
	err := db.WithContext(ctx).Model(&entity.Patient{}).
		Select("status AS label, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountDoctorsPerDay counts distinct doctors with at least one window on each weekday.
func (r *analyticsRepository) CountDoctorsPerDay(ctx context.Context, db *gorm.DB) ([]entity.DayCount, error) {
	var rows []entity.DayCount
	err := db.WithContext(ctx).Model(&entity.DoctorAvailability{}).
		Select("day_of_week, COUNT(DISTINCT doctor_id) AS count").
		Group("day_of_week").
		Order("day_of_week ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) CountAppointmentsPerDoctor(ctx context.Context, db *gorm.DB) ([]entity.LabelCount, error) {
	var rows []entity.LabelCount
	err := db.WithContext(ctx).Table("doctors").
		Select("doctors.first_name || ' ' || doctors.last_name AS label, COUNT(appointments.id) AS count").
		Joins("LEFT JOIN appointments ON appointments.doctor_id = doctors.id").
		Group("doctors.id, doctors.first_name, doctors.last_name").
		Order("doctors.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) CountPresentDaysPerStaff(ctx context.Context, db *gorm.DB) ([]entity.LabelCount, error) {
	var rows []entity.LabelCount
	err := db.WithContext(ctx).Table("hospital_staff").
		Select("hospital_staff.name AS label, COUNT(staff_attendance.id) AS count").
		Joins("LEFT JOIN staff_attendance ON staff_attendance.staff_id = hospital_staff.id AND staff_attendance.status = ?", entity.AttendancePresent).
		Group("hospital_staff.id, hospital_staff.name").
		Order("hospital_staff.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
