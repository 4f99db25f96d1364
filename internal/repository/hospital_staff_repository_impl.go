package repository

import (
	"context"
	"errors"
	"strings"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type hospitalStaffRepository struct{}

func NewHospitalStaffRepository() domainRepo.HospitalStaffRepository {
	return &hospitalStaffRepository{}
}

func (r *hospitalStaffRepository) Create(ctx context.Context, db *gorm.DB, staff *entity.HospitalStaff) error {
	return db.WithContext(ctx).Create(staff).Error
}

func (r *hospitalStaffRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.HospitalStaff, error) {
	var staff entity.HospitalStaff
	err := db.WithContext(ctx).Where("id = ?", id).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *hospitalStaffRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.HospitalStaff, error) {
	return r.FindByFilter(ctx, db, nil)
}

func (r *hospitalStaffRepository) FindByFilter(ctx context.Context, db *gorm.DB, filter *entity.StaffFilter) ([]entity.HospitalStaff, error) {
	var staff []entity.HospitalStaff
	query := db.WithContext(ctx)

	if filter != nil {
		if filter.StaffType != "" {
			query = query.Where("designation = ?", filter.StaffType)
		}
		if filter.Name != "" {
			// ILIKE is postgres-only.
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
		}
		if filter.JoinStart != nil {
			query = query.Where("date_of_joining >= ?", datatypes.Date(*filter.JoinStart))
		}
		if filter.JoinEnd != nil {
			query = query.Where("date_of_joining < ?", datatypes.Date(*filter.JoinEnd))
		}
	}

	if err := query.Order("id ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *hospitalStaffRepository) Update(ctx context.Context, db *gorm.DB, staff *entity.HospitalStaff) error {
	return db.WithContext(ctx).Save(staff).Error
}

func (r *hospitalStaffRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.HospitalStaff{})
	return result.RowsAffected, result.Error
}
