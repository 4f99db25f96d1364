package repository

import (
	"context"

	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, db *gorm.DB, payment *entity.Payment) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Payment, error)
	FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]entity.Payment, int64, error)
	FindByDateRange(ctx context.Context, db *gorm.DB, r entity.DateRange) ([]entity.Payment, error)
}
