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
	"gorm.io/gorm"
)

var (
	ErrAdmissionNotFound        = errors.New("admission not found")
	ErrDischargeBeforeAdmission = errors.New("discharge must be after admission")
	ErrIncompleteDischarge      = errors.New("discharge_date and discharge_time must be given together")
)

type AdmissionUsecase interface {
	CreateAdmission(ctx context.Context, req *dto.CreateAdmissionRequest) (*dto.AdmissionResponse, error)
	GetAdmission(ctx context.Context, id int) (*dto.AdmissionResponse, error)
	GetAllAdmissions(ctx context.Context) (*dto.AdmissionListResponse, error)
	UpdateAdmission(ctx context.Context, id int, req *dto.UpdateAdmissionRequest) (*dto.AdmissionResponse, error)
	DeleteAdmission(ctx context.Context, id int) error
}

type admissionUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	admissionRepo repository.AdmissionRepository
	patientRepo   repository.PatientRepository
	auditService  service.AuditService
}

func NewAdmissionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	admissionRepo repository.AdmissionRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) AdmissionUsecase {
	return &admissionUsecase{
		db:            db,
		log:           log,
		admissionRepo: admissionRepo,
		patientRepo:   patientRepo,
		auditService:  auditService,
	}
}

func parseDischarge(date, clk string) (*time.Time, error) {
	if date == "" && clk == "" {
		return nil, nil
	}
	if date == "" || clk == "" {
		return nil, ErrIncompleteDischarge
	}
	t, err := combineDateClock(date, clk)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// syncPatientStatus mirrors the admission state onto the patient row.
func (u *admissionUsecase) syncPatientStatus(ctx context.Context, tx *gorm.DB, patient *entity.Patient, admission *entity.Admission) error {
	if patient.Status == admission.Status {
		return nil
	}
	patient.Status = admission.Status
	patient.Doctor = nil
	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update patient status: %+v", err)
		return err
	}
	return nil
}

func (u *admissionUsecase) CreateAdmission(ctx context.Context, req *dto.CreateAdmissionRequest) (*dto.AdmissionResponse, error) {
	admittedAt, err := combineDateClock(req.AdmissionDate, req.AdmissionTime)
	if err != nil {
		return nil, err
	}
	dischargedAt, err := parseDischarge(req.DischargeDate, req.DischargeTime)
	if err != nil {
		return nil, err
	}
	if dischargedAt != nil && !dischargedAt.After(admittedAt) {
		return nil, ErrDischargeBeforeAdmission
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

	admission := &entity.Admission{
		PatientID:  req.PatientID,
		AdmittedAt: admittedAt,
		Status:     entity.PatientStatusAdmitted,
	}
	if dischargedAt != nil {
		admission.Discharge(*dischargedAt)
	}

	if err := u.admissionRepo.Create(ctx, tx, admission); err != nil {
		u.log.Warnf("Failed to create admission: %+v", err)
		return nil, err
	}
	if err := u.syncPatientStatus(ctx, tx, patient, admission); err != nil {
		return nil, err
	}
	admission.Patient = patient

	resp := converter.AdmissionToResponse(admission)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionAdmissionCreate, "admission", admission.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *admissionUsecase) GetAdmission(ctx context.Context, id int) (*dto.AdmissionResponse, error) {
	admission, err := u.admissionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find admission: %+v", err)
		return nil, err
	}
	if admission == nil {
		return nil, ErrAdmissionNotFound
	}

	return converter.AdmissionToResponse(admission), nil
}

func (u *admissionUsecase) GetAllAdmissions(ctx context.Context) (*dto.AdmissionListResponse, error) {
	admissions, err := u.admissionRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all admissions: %+v", err)
		return nil, err
	}

	return &dto.AdmissionListResponse{
		Admissions: converter.AdmissionsToResponses(admissions),
		Total:      len(admissions),
	}, nil
}

func (u *admissionUsecase) UpdateAdmission(ctx context.Context, id int, req *dto.UpdateAdmissionRequest) (*dto.AdmissionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admission, err := u.admissionRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find admission: %+v", err)
		return nil, err
	}
	if admission == nil {
		return nil, ErrAdmissionNotFound
	}
	oldValue := converter.AdmissionToResponse(admission)

	if req.AdmissionDate != nil || req.AdmissionTime != nil {
		date := admission.AdmittedAt.UTC().Format(clock.DateLayout)
		clk := admission.AdmittedAt.UTC().Format(clock.ClockLayout)
		if req.AdmissionDate != nil {
			date = *req.AdmissionDate
		}
		if req.AdmissionTime != nil {
			clk = *req.AdmissionTime
		}
		admittedAt, err := combineDateClock(date, clk)
		if err != nil {
			return nil, err
		}
		admission.AdmittedAt = admittedAt
	}

	if req.DischargeDate != nil || req.DischargeTime != nil {
		var date, clk string
		if admission.DischargedAt != nil {
			date = admission.DischargedAt.UTC().Format(clock.DateLayout)
			clk = admission.DischargedAt.UTC().Format(clock.ClockLayout)
		}
		if req.DischargeDate != nil {
			date = *req.DischargeDate
		}
		if req.DischargeTime != nil {
			clk = *req.DischargeTime
		}
		dischargedAt, err := parseDischarge(date, clk)
		if err != nil {
			return nil, err
		}
		if dischargedAt != nil {
			admission.Discharge(*dischargedAt)
		}
	}

	if admission.DischargedAt != nil && !admission.DischargedAt.After(admission.AdmittedAt) {
		return nil, ErrDischargeBeforeAdmission
	}

	if err := u.admissionRepo.Update(ctx, tx, admission); err != nil {
		u.log.Warnf("Failed to update admission: %+v", err)
		return nil, err
	}
	if admission.Patient != nil {
		if err := u.syncPatientStatus(ctx, tx, admission.Patient, admission); err != nil {
			return nil, err
		}
	}

	resp := converter.AdmissionToResponse(admission)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionAdmissionUpdate, "admission", admission.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *admissionUsecase) DeleteAdmission(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admission, err := u.admissionRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find admission: %+v", err)
		return err
	}
	if admission == nil {
		return ErrAdmissionNotFound
	}

	if _, err := u.admissionRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete admission: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionAdmissionDelete, "admission", id, converter.AdmissionToResponse(admission)); err != nil {
		return err
	}

	return tx.Commit().Error
}
