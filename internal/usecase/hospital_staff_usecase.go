package usecase

import (
	"context"
	"errors"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/clock"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound = errors.New("staff member not found")
)

type HospitalStaffUsecase interface {
	CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	GetStaff(ctx context.Context, id int) (*dto.StaffResponse, error)
	GetAllStaff(ctx context.Context) (*dto.StaffListResponse, error)
	UpdateStaff(ctx context.Context, id int, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	DeleteStaff(ctx context.Context, id int) error
}

type hospitalStaffUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	staffRepo    repository.HospitalStaffRepository
	auditService service.AuditService
}

func NewHospitalStaffUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.HospitalStaffRepository,
	auditService service.AuditService,
) HospitalStaffUsecase {
	return &hospitalStaffUsecase{
		db:           db,
		log:          log,
		staffRepo:    staffRepo,
		auditService: auditService,
	}
}

func (u *hospitalStaffUsecase) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	joined, err := clock.ParseDate(req.DateOfJoining)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff := &entity.HospitalStaff{
		Name:          req.Name,
		Designation:   req.Designation,
		Phone:         req.Phone,
		Email:         req.Email,
		DateOfJoining: datatypes.Date(joined),
	}

	if err := u.staffRepo.Create(ctx, tx, staff); err != nil {
		u.log.Warnf("Failed to create staff: %+v", err)
		return nil, err
	}

	resp := converter.StaffToResponse(staff)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionStaffCreate, "hospital_staff", staff.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *hospitalStaffUsecase) GetStaff(ctx context.Context, id int) (*dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	return converter.StaffToResponse(staff), nil
}

func (u *hospitalStaffUsecase) GetAllStaff(ctx context.Context) (*dto.StaffListResponse, error) {
	staff, err := u.staffRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all staff: %+v", err)
		return nil, err
	}

	return &dto.StaffListResponse{
		Staff: converter.StaffToResponses(staff),
		Total: len(staff),
	}, nil
}

func (u *hospitalStaffUsecase) UpdateStaff(ctx context.Context, id int, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	oldValue := converter.StaffToResponse(staff)

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Designation != nil {
		staff.Designation = *req.Designation
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.DateOfJoining != nil {
		joined, err := clock.ParseDate(*req.DateOfJoining)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		staff.DateOfJoining = datatypes.Date(joined)
	}

	if err := u.staffRepo.Update(ctx, tx, staff); err != nil {
		u.log.Warnf("Failed to update staff: %+v", err)
		return nil, err
	}

	resp := converter.StaffToResponse(staff)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionStaffUpdate, "hospital_staff", staff.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *hospitalStaffUsecase) DeleteStaff(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return err
	}
	if staff == nil {
		return ErrStaffNotFound
	}

	if _, err := u.staffRepo.Delete(ctx, tx, id); err != nil {
		if isForeignKeyError(err, "") {
			return ErrResourceInUse
		}
		u.log.Warnf("Failed to delete staff: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionStaffDelete, "hospital_staff", id, converter.StaffToResponse(staff)); err != nil {
		return err
	}

	return tx.Commit().Error
}
