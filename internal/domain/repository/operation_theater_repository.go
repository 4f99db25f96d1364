package repository

import (
	"context"

	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type OperationTheaterRepository interface {
	Create(ctx context.Context, db *gorm.DB, theater *entity.OperationTheater) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.OperationTheater, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.OperationTheater, error)
	Update(ctx context.Context, db *gorm.DB, theater *entity.OperationTheater) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	// DecrementCapacity takes one slot only while capacity is positive.
	// Returns affected rows: 1 = slot taken, 0 = theatre full or missing.
	DecrementCapacity(ctx context.Context, db *gorm.DB, id int) (int64, error)
}

type OperationTheaterBookingRepository interface {
	Create(ctx context.Context, db *gorm.DB, booking *entity.OperationTheaterBooking) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.OperationTheaterBooking, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.OperationTheaterBooking, error)
	FindByFilter(ctx context.Context, db *gorm.DB, filter *entity.TheaterBookingFilter) ([]entity.OperationTheaterBooking, error)
}
