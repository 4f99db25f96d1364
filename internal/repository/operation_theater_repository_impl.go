package repository

import (
	"context"
	"errors"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type operationTheaterRepository struct{}

func NewOperationTheaterRepository() domainRepo.OperationTheaterRepository {
	return &operationTheaterRepository{}
}

func (r *operationTheaterRepository) Create(ctx context.Context, db *gorm.DB, theater *entity.OperationTheater) error {
	return db.WithContext(ctx).Create(theater).Error
}

func (r *operationTheaterRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.OperationTheater, error) {
	var theater entity.OperationTheater
	err := db.WithContext(ctx).Where("id = ?", id).First(&theater).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &theater, nil
}

func (r *operationTheaterRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.OperationTheater, error) {
	var theaters []entity.OperationTheater
	if err := db.WithContext(ctx).Order("id ASC").Find(&theaters).Error; err != nil {
		return nil, err
	}
	return theaters, nil
}

func (r *operationTheaterRepository) Update(ctx context.Context, db *gorm.DB, theater *entity.OperationTheater) error {
	return db.WithContext(ctx).Save(theater).Error
}

func (r *operationTheaterRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.OperationTheater{})
	return result.RowsAffected, result.Error
}

// DecrementCapacity is a compare-and-decrement: the capacity guard lives in the
// WHERE clause so concurrent callers cannot push capacity below zero.
func (r *operationTheaterRepository) DecrementCapacity(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.OperationTheater{}).
		Where("id = ? AND capacity > 0", id).
		Update("capacity", gorm.Expr("capacity - 1"))
	return result.RowsAffected, result.Error
}

type operationTheaterBookingRepository struct{}

func NewOperationTheaterBookingRepository() domainRepo.OperationTheaterBookingRepository {
	return &operationTheaterBookingRepository{}
}

func (r *operationTheaterBookingRepository) Create(ctx context.Context, db *gorm.DB, booking *entity.OperationTheaterBooking) error {
	return db.WithContext(ctx).Omit("Doctor", "Theater").Create(booking).Error
}

func (r *operationTheaterBookingRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.OperationTheaterBooking, error) {
	var booking entity.OperationTheaterBooking
	err := db.WithContext(ctx).Preload("Doctor").Preload("Theater").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *operationTheaterBookingRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.OperationTheaterBooking, error) {
	return r.FindByFilter(ctx, db, nil)
}

func (r *operationTheaterBookingRepository) FindByFilter(ctx context.Context, db *gorm.DB, filter *entity.TheaterBookingFilter) ([]entity.OperationTheaterBooking, error) {
	var bookings []entity.OperationTheaterBooking
	query := db.WithContext(ctx).Preload("Doctor").Preload("Theater")

	if filter != nil {
		if filter.TheaterID != nil {
			query = query.Where("theater_id = ?", *filter.TheaterID)
		}
		if filter.DateStart != nil {
			query = query.Where("start_time >= ?", *filter.DateStart)
		}
		if filter.DateEnd != nil {
			query = query.Where("start_time < ?", *filter.DateEnd)
		}
	}

	if err := query.Order("start_time ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
