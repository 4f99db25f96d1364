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
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
)

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id int) (*dto.PaymentResponse, error)
	GetPayments(ctx context.Context, page, limit int) (*dto.PaymentListResponse, int, int, error)
}

type paymentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	paymentRepo  repository.PaymentRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	statsCache   service.StatsCache
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	statsCache service.StatsCache,
) PaymentUsecase {
	return &paymentUsecase{
		db:           db,
		log:          log,
		paymentRepo:  paymentRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
		statsCache:   statsCache,
	}
}

func (u *paymentUsecase) CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	paidOn, err := clock.ParseDate(req.PaymentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	payment := &entity.Payment{
		PatientID:   req.PatientID,
		Amount:      req.Amount.Round(2),
		PaymentType: req.PaymentType,
		PaymentDate: paidOn,
	}
	if err := u.paymentRepo.Create(ctx, tx, payment); err != nil {
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	resp := converter.PaymentToResponse(payment)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionPaymentCreate, "payment", payment.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if u.statsCache != nil {
		if err := u.statsCache.Invalidate(ctx); err != nil {
			u.log.Warnf("Failed to invalidate stats cache (non-fatal): %+v", err)
		}
	}

	return resp, nil
}

func (u *paymentUsecase) GetPayment(ctx context.Context, id int) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	return converter.PaymentToResponse(payment), nil
}

// GetPayments returns one page of payments, newest first, with the normalized page and limit.
func (u *paymentUsecase) GetPayments(ctx context.Context, page, limit int) (*dto.PaymentListResponse, int, int, error) {
	page, limit, offset := normalizePage(page, limit)

	payments, total, err := u.paymentRepo.FindAll(ctx, u.db, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find payments: %+v", err)
		return nil, 0, 0, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    total,
	}, page, limit, nil
}
