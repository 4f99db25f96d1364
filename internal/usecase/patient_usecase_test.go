package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/repository"

	"gorm.io/gorm"
)

type patientFixture struct {
	db       *gorm.DB
	uc       PatientUsecase
	house    *entity.Doctor
	wilson   *entity.Doctor
	mine     *entity.Patient
	theirs   *entity.Patient
	houseUID int
	staffUID int
}

func newPatientFixture(t *testing.T) *patientFixture {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()

	f := &patientFixture{db: db}
	f.house = seedDoctor(t, db, "Gregory", "House")
	f.wilson = seedDoctor(t, db, "James", "Wilson")
	f.mine = seedPatient(t, db, "Rebecca", &f.house.ID)
	f.theirs = seedPatient(t, db, "Edward", &f.wilson.ID)

	doctorUser := &entity.User{RoleID: entity.RoleIDDoctor, Username: "house", Password: "x", DoctorID: &f.house.ID, IsActive: true}
	mustCreate(t, db, doctorUser)
	staffUser := &entity.User{RoleID: entity.RoleIDStaff, Username: "desk", Password: "x", IsActive: true}
	mustCreate(t, db, staffUser)
	f.houseUID, f.staffUID = doctorUser.ID, staffUser.ID

	f.uc = NewPatientUsecase(
		db, log,
		repository.NewPatientRepository(),
		repository.NewDoctorRepository(),
		repository.NewUserRepository(),
		repository.NewPatientTestRepository(),
		repository.NewAppointmentRepository(),
		repository.NewAdmissionRepository(),
		newTestAuditService(log),
	)
	return f
}

func TestPatientVisibility_Doctor(t *testing.T) {
	f := newPatientFixture(t)
	ctx := asUser(f.houseUID, entity.RoleIDDoctor)

	got, err := f.uc.GetPatient(ctx, f.mine.ID)
	if err != nil {
		t.Fatalf("own patient: %v", err)
	}
	if got.Phone == "" {
		t.Error("doctor should see contact details")
	}

	if _, err := f.uc.GetPatient(ctx, f.theirs.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("other doctor's patient err = %v, want ErrForbidden", err)
	}
	if _, err := f.uc.GetPatientDetail(ctx, f.theirs.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("detail err = %v, want ErrForbidden", err)
	}

	list, err := f.uc.GetAllPatients(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Total != 1 || list.Patients[0].ID != f.mine.ID {
		t.Errorf("doctor list = %+v", list.Patients)
	}
}

func TestPatientVisibility_UnlinkedDoctorSeesNothing(t *testing.T) {
	f := newPatientFixture(t)
	loose := &entity.User{RoleID: entity.RoleIDDoctor, Username: "locum", Password: "x", IsActive: true}
	mustCreate(t, f.db, loose)
	ctx := asUser(loose.ID, entity.RoleIDDoctor)

	list, err := f.uc.GetAllPatients(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Total != 0 {
		t.Errorf("total = %d, want 0", list.Total)
	}
	if _, err := f.uc.GetPatient(ctx, f.mine.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestPatientVisibility_StaffRedacted(t *testing.T) {
	f := newPatientFixture(t)
	ctx := asUser(f.staffUID, entity.RoleIDStaff)

	list, err := f.uc.GetAllPatients(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Total != 2 {
		t.Fatalf("total = %d, want 2", list.Total)
	}
	for _, p := range list.Patients {
		if p.Phone != "" || p.Email != "" || p.Address != "" || p.City != "" {
			t.Errorf("patient %d not redacted: %+v", p.ID, p)
		}
		if p.FirstName == "" || p.Status == "" {
			t.Errorf("patient %d lost non-contact fields: %+v", p.ID, p)
		}
	}

	admin := asUser(1, entity.RoleIDAdmin)
	got, err := f.uc.GetPatient(admin, f.theirs.ID)
	if err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if got.Email == "" {
		t.Error("admin should see contact details")
	}
}

func TestCreatePatient(t *testing.T) {
	f := newPatientFixture(t)
	ctx := asUser(1, entity.RoleIDAdmin)

	resp, err := f.uc.CreatePatient(ctx, &dto.CreatePatientRequest{
		FirstName:   "Lisa",
		LastName:    "Cuddy",
		DateOfBirth: "1970-05-01",
		DoctorID:    &f.wilson.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Status != entity.PatientStatusAdmitted {
		t.Errorf("status = %q, want default %q", resp.Status, entity.PatientStatusAdmitted)
	}
	if resp.DateOfBirth != "1970-05-01" {
		t.Errorf("date of birth = %q", resp.DateOfBirth)
	}

	missing := 999
	_, err = f.uc.CreatePatient(ctx, &dto.CreatePatientRequest{FirstName: "No", LastName: "Doctor", DoctorID: &missing})
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("err = %v, want ErrDoctorNotFound", err)
	}

	_, err = f.uc.CreatePatient(ctx, &dto.CreatePatientRequest{FirstName: "Bad", LastName: "Date", DateOfBirth: "01/05/1970"})
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("err = %v, want ErrInvalidDateFormat", err)
	}
}

func TestUpdatePatient_Partial(t *testing.T) {
	f := newPatientFixture(t)
	city := "Princeton"

	resp, err := f.uc.UpdatePatient(context.Background(), f.mine.ID, &dto.UpdatePatientRequest{City: &city})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.City != city || resp.FirstName != "Rebecca" || resp.Phone != "555-0100" {
		t.Errorf("partial update clobbered fields: %+v", resp)
	}

	if _, err := f.uc.UpdatePatient(context.Background(), 999, &dto.UpdatePatientRequest{City: &city}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("err = %v, want ErrPatientNotFound", err)
	}
}
