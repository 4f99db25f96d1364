package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/repository"
)

func TestAuditLogFilters(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	audit := newTestAuditService(log)
	ctx := context.Background()

	admin, doctor := 1, 2
	writes := []struct {
		user   int
		action string
	}{
		{admin, entity.AuditActionPatientCreate},
		{admin, entity.AuditActionPatientUpdate},
		{admin, entity.AuditActionDoctorCreate},
		{doctor, entity.AuditActionTheaterBook},
	}
	for i, w := range writes {
		user := w.user
		if err := audit.LogCreate(ctx, db, &user, w.action, "test", i+1, nil); err != nil {
			t.Fatal(err)
		}
	}

	uc := NewAuditLogUsecase(db, log, repository.NewAuditLogRepository())

	tests := []struct {
		name   string
		filter dto.AuditLogFilterRequest
		want   int64
	}{
		{"no filter", dto.AuditLogFilterRequest{}, 4},
		{"entity prefix", dto.AuditLogFilterRequest{Action: "patient"}, 2},
		{"exact action", dto.AuditLogFilterRequest{Action: "Patient.Update"}, 1},
		{"prefix is not a substring match", dto.AuditLogFilterRequest{Action: "pat"}, 0},
		{"by user", dto.AuditLogFilterRequest{UserID: &doctor}, 1},
		{"user and action", dto.AuditLogFilterRequest{UserID: &admin, Action: "theater"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _, err := uc.GetAuditLogs(ctx, &tt.filter, 1, 10)
			if err != nil {
				t.Fatal(err)
			}
			if got.Total != tt.want || int64(len(got.Logs)) != tt.want {
				t.Errorf("total = %d (rows %d), want %d", got.Total, len(got.Logs), tt.want)
			}
		})
	}
}

func TestAuditLogPagingNewestFirst(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	audit := newTestAuditService(log)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if err := audit.LogCreate(ctx, db, nil, entity.AuditActionStaffCreate, "hospital_staff", i, nil); err != nil {
			t.Fatal(err)
		}
	}

	uc := NewAuditLogUsecase(db, log, repository.NewAuditLogRepository())
	got, page, limit, err := uc.GetAuditLogs(ctx, &dto.AuditLogFilterRequest{}, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if page != 2 || limit != 2 || got.Total != 3 || len(got.Logs) != 1 {
		t.Fatalf("page=%d limit=%d total=%d rows=%d", page, limit, got.Total, len(got.Logs))
	}
	if id := metadataInt(t, got.Logs[0].Metadata, "entity_id"); id != 1 {
		t.Errorf("last page should hold the oldest row, got entity_id %d", id)
	}

	if _, err := uc.GetAuditLog(ctx, 999); !errors.Is(err, ErrAuditLogNotFound) {
		t.Errorf("err = %v, want ErrAuditLogNotFound", err)
	}
}
