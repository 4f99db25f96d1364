package usecase

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"hospital-backend/internal/delivery/http/middleware"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/infrastructure/database"
	"hospital-backend/internal/repository"
	"hospital-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database. A single connection keeps every
// statement on the same memory database and serializes transactions.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := repository.NewRoleRepository().EnsureExists(context.Background(), db, entity.DefaultRoles()); err != nil {
		t.Fatalf("seed roles: %v", err)
	}
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAuditService(log *logrus.Logger) service.AuditService {
	return service.NewAuditService(log, repository.NewAuditLogRepository())
}

func asUser(userID, roleID int) context.Context {
	return middleware.WithIdentity(context.Background(), userID, "tester", roleID, "token-id")
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("seed %T: %v", value, err)
	}
}

func seedDoctor(t *testing.T, db *gorm.DB, first, last string) *entity.Doctor {
	t.Helper()
	doctor := &entity.Doctor{FirstName: first, LastName: last, Specialization: "Surgery"}
	mustCreate(t, db, doctor)
	return doctor
}

func seedWindow(t *testing.T, db *gorm.DB, doctorID, day, startH, endH int) {
	t.Helper()
	mustCreate(t, db, &entity.DoctorAvailability{
		DoctorID:  doctorID,
		DayOfWeek: day,
		StartTime: datatypes.NewTime(startH, 0, 0, 0),
		EndTime:   datatypes.NewTime(endH, 0, 0, 0),
	})
}

func seedTheater(t *testing.T, db *gorm.DB, name string, capacity int) *entity.OperationTheater {
	t.Helper()
	theater := &entity.OperationTheater{Name: name, Location: "Block A"}
	mustCreate(t, db, theater)
	// capacity carries a column default, so a zero value is written explicitly.
	if err := db.Model(theater).Update("capacity", capacity).Error; err != nil {
		t.Fatalf("set capacity: %v", err)
	}
	theater.Capacity = capacity
	return theater
}

func seedPatient(t *testing.T, db *gorm.DB, first string, doctorID *int) *entity.Patient {
	t.Helper()
	patient := &entity.Patient{
		FirstName: first,
		LastName:  "Doe",
		Phone:     "555-0100",
		Email:     first + "@example.com",
		Address:   "1 Main St",
		City:      "Springfield",
		Status:    entity.PatientStatusOutpatient,
		DoctorID:  doctorID,
	}
	mustCreate(t, db, patient)
	return patient
}

// metadataInt reads an integer from audit metadata. JSONMap decodes numbers as json.Number.
func metadataInt(t *testing.T, m datatypes.JSONMap, key string) int {
	t.Helper()
	n, ok := m[key].(json.Number)
	if !ok {
		t.Fatalf("metadata %s = %#v, want a number", key, m[key])
	}
	v, err := n.Int64()
	if err != nil {
		t.Fatalf("metadata %s: %v", key, err)
	}
	return int(v)
}
