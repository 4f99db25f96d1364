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
	ErrPatientTestNotFound = errors.New("patient test not found")
)

type PatientTestUsecase interface {
	CreateTest(ctx context.Context, req *dto.CreatePatientTestRequest) (*dto.PatientTestResponse, error)
	GetTest(ctx context.Context, id int) (*dto.PatientTestResponse, error)
	GetAllTests(ctx context.Context) (*dto.PatientTestListResponse, error)
	UpdateTest(ctx context.Context, id int, req *dto.UpdatePatientTestRequest) (*dto.PatientTestResponse, error)
	DeleteTest(ctx context.Context, id int) error
}

type patientTestUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	testRepo     repository.PatientTestRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientTestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	testRepo repository.PatientTestRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientTestUsecase {
	return &patientTestUsecase{
		db:           db,
		log:          log,
		testRepo:     testRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientTestUsecase) CreateTest(ctx context.Context, req *dto.CreatePatientTestRequest) (*dto.PatientTestResponse, error) {
	testDate, err := clock.ParseDate(req.TestDate)
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

	test := &entity.PatientTest{
		PatientID:  req.PatientID,
		TestName:   req.TestName,
		TestType:   req.TestType,
		TestDate:   testDate,
		TestResult: req.TestResult,
	}

	if err := u.testRepo.Create(ctx, tx, test); err != nil {
		u.log.Warnf("Failed to create patient test: %+v", err)
		return nil, err
	}
	test.Patient = patient

	resp := converter.PatientTestToResponse(test)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionTestCreate, "patient_test", test.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *patientTestUsecase) GetTest(ctx context.Context, id int) (*dto.PatientTestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrPatientTestNotFound
	}

	return converter.PatientTestToResponse(test), nil
}

func (u *patientTestUsecase) GetAllTests(ctx context.Context) (*dto.PatientTestListResponse, error) {
	tests, err := u.testRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all patient tests: %+v", err)
		return nil, err
	}

	return &dto.PatientTestListResponse{
		Tests: converter.PatientTestsToResponses(tests),
		Total: len(tests),
	}, nil
}

func (u *patientTestUsecase) UpdateTest(ctx context.Context, id int, req *dto.UpdatePatientTestRequest) (*dto.PatientTestResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	test, err := u.testRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrPatientTestNotFound
	}
	oldValue := converter.PatientTestToResponse(test)

	if req.TestName != nil {
		test.TestName = *req.TestName
	}
	if req.TestType != nil {
		test.TestType = *req.TestType
	}
	if req.TestDate != nil {
		testDate, err := clock.ParseDate(*req.TestDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		test.TestDate = testDate
	}
	if req.TestResult != nil {
		test.TestResult = *req.TestResult
	}

	if err := u.testRepo.Update(ctx, tx, test); err != nil {
		u.log.Warnf("Failed to update patient test: %+v", err)
		return nil, err
	}

	resp := converter.PatientTestToResponse(test)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionTestUpdate, "patient_test", test.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *patientTestUsecase) DeleteTest(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	test, err := u.testRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient test: %+v", err)
		return err
	}
	if test == nil {
		return ErrPatientTestNotFound
	}

	if _, err := u.testRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete patient test: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionTestDelete, "patient_test", id, converter.PatientTestToResponse(test)); err != nil {
		return err
	}

	return tx.Commit().Error
}
