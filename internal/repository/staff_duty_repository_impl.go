package repository

import (
	"context"
	"errors"
	"time"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type dutyRepository struct{}

func NewDutyRepository() domainRepo.DutyRepository {
	return &dutyRepository{}
}

func (r *dutyRepository) Create(ctx context.Context, db *gorm.DB, duty *entity.Duty) error {
	return db.WithContext(ctx).Omit("Staff").Create(duty).Error
}

func (r *dutyRepository) FindByStaffAndDate(ctx context.Context, db *gorm.DB, staffID int, date time.Time) (*entity.Duty, error) {
	var duty entity.Duty
	err := db.WithContext(ctx).
		Where("staff_id = ? AND duty_date = ?", staffID, datatypes.Date(date)).
		First(&duty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &duty, nil
}

func (r *dutyRepository) FindByStaffID(ctx context.Context, db *gorm.DB, staffID int) ([]entity.Duty, error) {
	var duties []entity.Duty
	err := db.WithContext(ctx).Where("staff_id = ?", staffID).Order("duty_date ASC").Find(&duties).Error
	if err != nil {
		return nil, err
	}
	return duties, nil
}

func (r *dutyRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Duty, error) {
	var duties []entity.Duty
	if err := db.WithContext(ctx).Order("duty_date ASC").Find(&duties).Error; err != nil {
		return nil, err
	}
	return duties, nil
}

type staffAttendanceRepository struct{}

func NewStaffAttendanceRepository() domainRepo.StaffAttendanceRepository {
	return &staffAttendanceRepository{}
}

func (r *staffAttendanceRepository) Create(ctx context.Context, db *gorm.DB, attendance *entity.StaffAttendance) error {
	return db.WithContext(ctx).Omit("Staff").Create(attendance).Error
}

func (r *staffAttendanceRepository) Update(ctx context.Context, db *gorm.DB, attendance *entity.StaffAttendance) error {
	return db.WithContext(ctx).Omit("Staff").Save(attendance).Error
}

func (r *staffAttendanceRepository) FindByStaffAndDate(ctx context.Context, db *gorm.DB, staffID int, date time.Time) (*entity.StaffAttendance, error) {
	var attendance entity.StaffAttendance
	err := db.WithContext(ctx).
		Where("staff_id = ? AND attendance_date = ?", staffID, datatypes.Date(date)).
		First(&attendance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attendance, nil
}

func (r *staffAttendanceRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.StaffAttendance, error) {
	var records []entity.StaffAttendance
	err := db.WithContext(ctx).Preload("Staff").
		Order("staff_id ASC, attendance_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *staffAttendanceRepository) FindBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.StaffAttendance, error) {
	var records []entity.StaffAttendance
	err := db.WithContext(ctx).Preload("Staff").
		Where("attendance_date >= ? AND attendance_date <= ?", datatypes.Date(start), datatypes.Date(end)).
		Order("staff_id ASC, attendance_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
