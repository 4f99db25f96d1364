package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrInvalidWindow        = errors.New("start_time must be before end_time")
)

type DoctorAvailabilityUsecase interface {
	CreateAvailability(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	GetAvailability(ctx context.Context, id int) (*dto.AvailabilityResponse, error)
	GetAllAvailabilities(ctx context.Context) (*dto.AvailabilityListResponse, error)
	GetAvailabilitiesByDoctor(ctx context.Context, doctorID int) (*dto.AvailabilityListResponse, error)
	UpdateAvailability(ctx context.Context, id int, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	DeleteAvailability(ctx context.Context, id int) error
}

type doctorAvailabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	availabilityRepo repository.DoctorAvailabilityRepository
	doctorRepo       repository.DoctorRepository
	auditService     service.AuditService
}

func NewDoctorAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availabilityRepo repository.DoctorAvailabilityRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorAvailabilityUsecase {
	return &doctorAvailabilityUsecase{
		db:               db,
		log:              log,
		availabilityRepo: availabilityRepo,
		doctorRepo:       doctorRepo,
		auditService:     auditService,
	}
}

func parseWindow(startRaw, endRaw string) (time.Duration, time.Duration, error) {
	start, err := clock.ParseClock(startRaw)
	if err != nil {
		return 0, 0, ErrInvalidTimeFormat
	}
	end, err := clock.ParseClock(endRaw)
	if err != nil {
		return 0, 0, ErrInvalidTimeFormat
	}
	if start >= end {
		return 0, 0, ErrInvalidWindow
	}
	return start, end, nil
}

func (u *doctorAvailabilityUsecase) CreateAvailability(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	availability := &entity.DoctorAvailability{
		DoctorID:  req.DoctorID,
		DayOfWeek: *req.DayOfWeek,
		StartTime: datatypes.Time(start),
		EndTime:   datatypes.Time(end),
	}

	if err := u.availabilityRepo.Create(ctx, tx, availability); err != nil {
		u.log.Warnf("Failed to create availability: %+v", err)
		return nil, err
	}
	availability.Doctor = doctor

	resp := converter.AvailabilityToResponse(availability)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionAvailabilityCreate, "doctor_availability", availability.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *doctorAvailabilityUsecase) GetAvailability(ctx context.Context, id int) (*dto.AvailabilityResponse, error) {
	availability, err := u.availabilityRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return nil, err
	}
	if availability == nil {
		return nil, ErrAvailabilityNotFound
	}

	return converter.AvailabilityToResponse(availability), nil
}

func (u *doctorAvailabilityUsecase) GetAllAvailabilities(ctx context.Context) (*dto.AvailabilityListResponse, error) {
	items, err := u.availabilityRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all availabilities: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Availabilities: converter.AvailabilitiesToResponses(items),
		Total:          len(items),
	}, nil
}

func (u *doctorAvailabilityUsecase) GetAvailabilitiesByDoctor(ctx context.Context, doctorID int) (*dto.AvailabilityListResponse, error) {
	items, err := u.availabilityRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find availabilities for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Availabilities: converter.AvailabilitiesToResponses(items),
		Total:          len(items),
	}, nil
}

func (u *doctorAvailabilityUsecase) UpdateAvailability(ctx context.Context, id int, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	availability, err := u.availabilityRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return nil, err
	}
	if availability == nil {
		return nil, ErrAvailabilityNotFound
	}
	oldValue := converter.AvailabilityToResponse(availability)

	if req.DoctorID != nil && *req.DoctorID != availability.DoctorID {
		doctor, err := u.doctorRepo.FindByID(ctx, tx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		availability.DoctorID = doctor.ID
		availability.Doctor = doctor
	}
	if req.DayOfWeek != nil {
		availability.DayOfWeek = *req.DayOfWeek
	}

	startRaw := clock.FormatClock(time.Duration(availability.StartTime))
	endRaw := clock.FormatClock(time.Duration(availability.EndTime))
	if req.StartTime != nil {
		startRaw = *req.StartTime
	}
	if req.EndTime != nil {
		endRaw = *req.EndTime
	}
	start, end, err := parseWindow(startRaw, endRaw)
	if err != nil {
		return nil, err
	}
	availability.StartTime = datatypes.Time(start)
	availability.EndTime = datatypes.Time(end)

	if err := u.availabilityRepo.Update(ctx, tx, availability); err != nil {
		u.log.Warnf("Failed to update availability: %+v", err)
		return nil, err
	}

	resp := converter.AvailabilityToResponse(availability)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionAvailabilityUpdate, "doctor_availability", availability.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *doctorAvailabilityUsecase) DeleteAvailability(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	availability, err := u.availabilityRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return err
	}
	if availability == nil {
		return ErrAvailabilityNotFound
	}

	if _, err := u.availabilityRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete availability: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionAvailabilityDelete, "doctor_availability", id, converter.AvailabilityToResponse(availability)); err != nil {
		return err
	}

	return tx.Commit().Error
}
