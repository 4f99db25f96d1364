package repository

import (
	"context"

	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorAvailabilityRepository interface {
	Create(ctx context.Context, db *gorm.DB, availability *entity.DoctorAvailability) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.DoctorAvailability, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.DoctorAvailability, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) ([]entity.DoctorAvailability, error)
	FindByDoctorAndDay(ctx context.Context, db *gorm.DB, doctorID, dayOfWeek int) ([]entity.DoctorAvailability, error)
	Update(ctx context.Context, db *gorm.DB, availability *entity.DoctorAvailability) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
