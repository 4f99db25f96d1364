package usecase

import (
	"context"
	"errors"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/delivery/http/middleware"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/clock"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error)
	GetPatientDetail(ctx context.Context, id int) (*dto.PatientDetailResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int) error
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	userRepo        repository.UserRepository
	testRepo        repository.PatientTestRepository
	appointmentRepo repository.AppointmentRepository
	admissionRepo   repository.AdmissionRepository
	auditService    service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	userRepo repository.UserRepository,
	testRepo repository.PatientTestRepository,
	appointmentRepo repository.AppointmentRepository,
	admissionRepo repository.AdmissionRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		userRepo:        userRepo,
		testRepo:        testRepo,
		appointmentRepo: appointmentRepo,
		admissionRepo:   admissionRepo,
		auditService:    auditService,
	}
}

// viewer describes who is reading patient data.
type viewer struct {
	roleID   int
	doctorID *int
}

func (u *patientUsecase) currentViewer(ctx context.Context) (*viewer, error) {
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	v := &viewer{roleID: roleID}
	if roleID != entity.RoleIDDoctor {
		return v, nil
	}

	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return v, nil
	}
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user != nil {
		v.doctorID = user.DoctorID
	}
	return v, nil
}

// canSee applies doctor scoping: a doctor account only reaches its own patients.
func (v *viewer) canSee(p *entity.Patient) bool {
	if v.roleID != entity.RoleIDDoctor {
		return true
	}
	return v.doctorID != nil && p.DoctorID != nil && *v.doctorID == *p.DoctorID
}

func (v *viewer) present(p *entity.Patient) *dto.PatientResponse {
	resp := converter.PatientToResponse(p)
	if v.roleID == entity.RoleIDStaff {
		resp.Redact()
	}
	return resp
}

func (u *patientUsecase) ensureDoctor(ctx context.Context, tx *gorm.DB, doctorID *int) error {
	if doctorID == nil {
		return nil
	}
	doctor, err := u.doctorRepo.FindByID(ctx, tx, *doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}
	return nil
}

func parseOptionalDate(raw string) (*datatypes.Date, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := clock.ParseDate(raw)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	d := datatypes.Date(t)
	return &d, nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.ensureDoctor(ctx, tx, req.DoctorID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.PatientStatusAdmitted
	}

	patient := &entity.Patient{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		DateOfBirth: dob,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		Status:      status,
		DoctorID:    req.DoctorID,
	}

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	resp := converter.PatientToResponse(patient)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionPatientCreate, "patient", patient.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	v, err := u.currentViewer(ctx)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if !v.canSee(patient) {
		return nil, ErrForbidden
	}

	return v.present(patient), nil
}

// GetPatientDetail returns the patient with their tests, appointments and admissions.
func (u *patientUsecase) GetPatientDetail(ctx context.Context, id int) (*dto.PatientDetailResponse, error) {
	v, err := u.currentViewer(ctx)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if !v.canSee(patient) {
		return nil, ErrForbidden
	}

	tests, err := u.testRepo.FindByPatientID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find tests for patient %d: %+v", id, err)
		return nil, err
	}
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", id, err)
		return nil, err
	}
	admissions, err := u.admissionRepo.FindByPatientID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find admissions for patient %d: %+v", id, err)
		return nil, err
	}

	return &dto.PatientDetailResponse{
		Patient:      *v.present(patient),
		Tests:        converter.PatientTestsToResponses(tests),
		Appointments: converter.AppointmentsToResponses(appointments),
		Admissions:   converter.AdmissionsToResponses(admissions),
	}, nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	v, err := u.currentViewer(ctx)
	if err != nil {
		return nil, err
	}

	var patients []entity.Patient
	switch {
	case v.roleID == entity.RoleIDDoctor && v.doctorID == nil:
		patients = []entity.Patient{}
	case v.roleID == entity.RoleIDDoctor:
		patients, err = u.patientRepo.FindByDoctorID(ctx, u.db, *v.doctorID)
	default:
		patients, err = u.patientRepo.FindAll(ctx, u.db)
	}
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *v.present(&patients[i])
	}

	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	oldValue := converter.PatientToResponse(patient)

	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := parseOptionalDate(*req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		patient.DateOfBirth = dob
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.City != nil {
		patient.City = *req.City
	}
	if req.State != nil {
		patient.State = *req.State
	}
	if req.Zip != nil {
		patient.Zip = *req.Zip
	}
	if req.Status != nil {
		patient.Status = *req.Status
	}
	if req.DoctorID != nil {
		if err := u.ensureDoctor(ctx, tx, req.DoctorID); err != nil {
			return nil, err
		}
		patient.DoctorID = req.DoctorID
		patient.Doctor = nil
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	resp := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionPatientUpdate, "patient", patient.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if _, err := u.patientRepo.Delete(ctx, tx, id); err != nil {
		if isForeignKeyError(err, "") {
			return ErrResourceInUse
		}
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionPatientDelete, "patient", id, converter.PatientToResponse(patient)); err != nil {
		return err
	}

	return tx.Commit().Error
}
