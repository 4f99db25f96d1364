package repository

import (
	"context"
	"time"

	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type HospitalStaffRepository interface {
	Create(ctx context.Context, db *gorm.DB, staff *entity.HospitalStaff) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.HospitalStaff, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.HospitalStaff, error)
	FindByFilter(ctx context.Context, db *gorm.DB, filter *entity.StaffFilter) ([]entity.HospitalStaff, error)
	Update(ctx context.Context, db *gorm.DB, staff *entity.HospitalStaff) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}

type DutyRepository interface {
	Create(ctx context.Context, db *gorm.DB, duty *entity.Duty) error
	FindByStaffAndDate(ctx context.Context, db *gorm.DB, staffID int, date time.Time) (*entity.Duty, error)
	FindByStaffID(ctx context.Context, db *gorm.DB, staffID int) ([]entity.Duty, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Duty, error)
}

type StaffAttendanceRepository interface {
	Create(ctx context.Context, db *gorm.DB, attendance *entity.StaffAttendance) error
	Update(ctx context.Context, db *gorm.DB, attendance *entity.StaffAttendance) error
	FindByStaffAndDate(ctx context.Context, db *gorm.DB, staffID int, date time.Time) (*entity.StaffAttendance, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.StaffAttendance, error)
	FindBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.StaffAttendance, error)
}
