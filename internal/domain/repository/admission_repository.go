package repository

import (
	"context"

	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AdmissionRepository interface {
	Create(ctx context.Context, db *gorm.DB, admission *entity.Admission) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Admission, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Admission, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.Admission, error)
	Update(ctx context.Context, db *gorm.DB, admission *entity.Admission) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
