package repository

import (
	"context"
	"errors"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type admissionRepository struct{}

func NewAdmissionRepository() domainRepo.AdmissionRepository {
	return &admissionRepository{}
}

func (r *admissionRepository) Create(ctx context.Context, db *gorm.DB, admission *entity.Admission) error {
	return db.WithContext(ctx).Omit("Patient").Create(admission).Error
}

func (r *admissionRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Admission, error) {
	var admission entity.Admission
	err := db.WithContext(ctx).Preload("Patient").Where("id = ?", id).First(&admission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admission, nil
}

func (r *admissionRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Admission, error) {
	var admissions []entity.Admission
	if err := db.WithContext(ctx).Preload("Patient").Order("admitted_at DESC").Find(&admissions).Error; err != nil {
		return nil, err
	}
	return admissions, nil
}

func (r *admissionRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.Admission, error) {
	var admissions []entity.Admission
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).Order("admitted_at DESC").Find(&admissions).Error
	if err != nil {
		return nil, err
	}
	return admissions, nil
}

func (r *admissionRepository) Update(ctx context.Context, db *gorm.DB, admission *entity.Admission) error {
	return db.WithContext(ctx).Omit("Patient").Save(admission).Error
}

func (r *admissionRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Admission{})
	return result.RowsAffected, result.Error
}
