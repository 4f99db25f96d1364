package usecase

import (
	"context"
	"errors"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTheaterNotFound = errors.New("theater not found")
)

type OperationTheaterUsecase interface {
	CreateTheater(ctx context.Context, req *dto.CreateTheaterRequest) (*dto.TheaterResponse, error)
	GetTheater(ctx context.Context, id int) (*dto.TheaterResponse, error)
	GetAllTheaters(ctx context.Context) (*dto.TheaterListResponse, error)
	UpdateTheater(ctx context.Context, id int, req *dto.UpdateTheaterRequest) (*dto.TheaterResponse, error)
	DeleteTheater(ctx context.Context, id int) error
}

type operationTheaterUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	theaterRepo  repository.OperationTheaterRepository
	auditService service.AuditService
}

func NewOperationTheaterUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	theaterRepo repository.OperationTheaterRepository,
	auditService service.AuditService,
) OperationTheaterUsecase {
	return &operationTheaterUsecase{
		db:           db,
		log:          log,
		theaterRepo:  theaterRepo,
		auditService: auditService,
	}
}

func (u *operationTheaterUsecase) CreateTheater(ctx context.Context, req *dto.CreateTheaterRequest) (*dto.TheaterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	theater := &entity.OperationTheater{
		Name:     req.Name,
		Location: req.Location,
		Capacity: *req.Capacity,
	}

	if err := u.theaterRepo.Create(ctx, tx, theater); err != nil {
		u.log.Warnf("Failed to create theater: %+v", err)
		return nil, err
	}

	resp := converter.TheaterToResponse(theater)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionTheaterCreate, "operation_theater", theater.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *operationTheaterUsecase) GetTheater(ctx context.Context, id int) (*dto.TheaterResponse, error) {
	theater, err := u.theaterRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find theater: %+v", err)
		return nil, err
	}
	if theater == nil {
		return nil, ErrTheaterNotFound
	}

	return converter.TheaterToResponse(theater), nil
}

func (u *operationTheaterUsecase) GetAllTheaters(ctx context.Context) (*dto.TheaterListResponse, error) {
	theaters, err := u.theaterRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all theaters: %+v", err)
		return nil, err
	}

	return &dto.TheaterListResponse{
		Theaters: converter.TheatersToResponses(theaters),
		Total:    len(theaters),
	}, nil
}

func (u *operationTheaterUsecase) UpdateTheater(ctx context.Context, id int, req *dto.UpdateTheaterRequest) (*dto.TheaterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	theater, err := u.theaterRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find theater: %+v", err)
		return nil, err
	}
	if theater == nil {
		return nil, ErrTheaterNotFound
	}
	oldValue := converter.TheaterToResponse(theater)

	if req.Name != nil {
		theater.Name = *req.Name
	}
	if req.Location != nil {
		theater.Location = *req.Location
	}
	if req.Capacity != nil {
		theater.Capacity = *req.Capacity
	}

	if err := u.theaterRepo.Update(ctx, tx, theater); err != nil {
		u.log.Warnf("Failed to update theater: %+v", err)
		return nil, err
	}

	resp := converter.TheaterToResponse(theater)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionTheaterUpdate, "operation_theater", theater.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *operationTheaterUsecase) DeleteTheater(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	theater, err := u.theaterRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find theater: %+v", err)
		return err
	}
	if theater == nil {
		return ErrTheaterNotFound
	}

	if _, err := u.theaterRepo.Delete(ctx, tx, id); err != nil {
		if isForeignKeyError(err, "") {
			return ErrResourceInUse
		}
		u.log.Warnf("Failed to delete theater: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionTheaterDelete, "operation_theater", id, converter.TheaterToResponse(theater)); err != nil {
		return err
	}

	return tx.Commit().Error
}
