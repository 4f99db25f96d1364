package repository

import (
	"context"
	"errors"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(ctx context.Context, db *gorm.DB, payment *entity.Payment) error {
	return db.WithContext(ctx).Omit("Patient").Create(payment).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.WithContext(ctx).Preload("Patient").Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	var total int64

	if err := db.WithContext(ctx).Model(&entity.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.WithContext(ctx).Limit(limit).Offset(offset).Order("payment_date DESC, id DESC").Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *paymentRepository) FindByDateRange(ctx context.Context, db *gorm.DB, dr entity.DateRange) ([]entity.Payment, error) {
	var payments []entity.Payment
	query := db.WithContext(ctx)
	if dr.Start != nil {
		query = query.Where("payment_date >= ?", *dr.Start)
	}
	if dr.End != nil {
		query = query.Where("payment_date < ?", *dr.End)
	}
	if err := query.Order("payment_date ASC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
