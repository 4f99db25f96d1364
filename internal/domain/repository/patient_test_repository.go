package repository

import (
	"context"

	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientTestRepository interface {
	Create(ctx context.Context, db *gorm.DB, test *entity.PatientTest) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.PatientTest, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.PatientTest, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.PatientTest, error)
	FindByFilter(ctx context.Context, db *gorm.DB, filter *entity.PatientTestFilter) ([]entity.PatientTest, error)
	Update(ctx context.Context, db *gorm.DB, test *entity.PatientTest) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
