package repository

import (
	"context"
	"errors"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorAvailabilityRepository struct{}

func NewDoctorAvailabilityRepository() domainRepo.DoctorAvailabilityRepository {
	return &doctorAvailabilityRepository{}
}

func (r *doctorAvailabilityRepository) Create(ctx context.Context, db *gorm.DB, availability *entity.DoctorAvailability) error {
	return db.WithContext(ctx).Omit("Doctor").Create(availability).Error
}

func (r *doctorAvailabilityRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.DoctorAvailability, error) {
	var availability entity.DoctorAvailability
	err := db.WithContext(ctx).Preload("Doctor").Where("id = ?", id).First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability, nil
}

func (r *doctorAvailabilityRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.DoctorAvailability, error) {
	var availabilities []entity.DoctorAvailability
	err := db.WithContext(ctx).Preload("Doctor").
		Order("doctor_id ASC, day_of_week ASC, start_time ASC").
		Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *doctorAvailabilityRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) ([]entity.DoctorAvailability, error) {
	var availabilities []entity.DoctorAvailability
	err := db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("day_of_week ASC, start_time ASC").
		Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *doctorAvailabilityRepository) FindByDoctorAndDay(ctx context.Context, db *gorm.DB, doctorID, dayOfWeek int) ([]entity.DoctorAvailability, error) {
	var availabilities []entity.DoctorAvailability
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).
		Order("start_time ASC").
		Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *doctorAvailabilityRepository) Update(ctx context.Context, db *gorm.DB, availability *entity.DoctorAvailability) error {
	return db.WithContext(ctx).Omit("Doctor").Save(availability).Error
}

func (r *doctorAvailabilityRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DoctorAvailability{})
	return result.RowsAffected, result.Error
}
