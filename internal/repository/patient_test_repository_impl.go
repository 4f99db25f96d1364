package repository

import (
	"context"
	"errors"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type patientTestRepository struct{}

func NewPatientTestRepository() domainRepo.PatientTestRepository {
	return &patientTestRepository{}
}

func (r *patientTestRepository) Create(ctx context.Context, db *gorm.DB, test *entity.PatientTest) error {
	return db.WithContext(ctx).Omit("Patient").Create(test).Error
}

func (r *patientTestRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.PatientTest, error) {
	var test entity.PatientTest
	err := db.WithContext(ctx).Preload("Patient").Where("id = ?", id).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *patientTestRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.PatientTest, error) {
	var tests []entity.PatientTest
	if err := db.WithContext(ctx).Preload("Patient").Order("test_date DESC").Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *patientTestRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.PatientTest, error) {
	var tests []entity.PatientTest
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).Order("test_date DESC").Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *patientTestRepository) FindByFilter(ctx context.Context, db *gorm.DB, filter *entity.PatientTestFilter) ([]entity.PatientTest, error) {
	var tests []entity.PatientTest
	query := db.WithContext(ctx).Preload("Patient")

	if filter != nil {
		if filter.PatientID != nil {
			query = query.Where("patient_id = ?", *filter.PatientID)
		}
		if filter.TestType != "" {
			query = query.Where("test_type = ?", filter.TestType)
		}
		if filter.DateStart != nil {
			query = query.Where("test_date >= ?", *filter.DateStart)
		}
		if filter.DateEnd != nil {
			query = query.Where("test_date < ?", *filter.DateEnd)
		}
	}

	if err := query.Order("test_date ASC").Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *patientTestRepository) Update(ctx context.Context, db *gorm.DB, test *entity.PatientTest) error {
	return db.WithContext(ctx).Omit("Patient").Save(test).Error
}

func (r *patientTestRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.PatientTest{})
	return result.RowsAffected, result.Error
}
