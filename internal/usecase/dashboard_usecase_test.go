package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-backend/internal/repository"
	"hospital-backend/internal/service"
)

func TestGetDashboard_CachesUntilInvalidated(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	cache := service.NewRedisStatsCache(newRedisClient(t), log, time.Minute)

	uc := NewDashboardUsecase(db, log, repository.NewAnalyticsRepository(), cache)
	ctx := context.Background()

	seedDoctor(t, db, "Gregory", "House")
	first, err := uc.GetDashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if first.Counts.Doctors != 1 {
		t.Fatalf("doctors = %d, want 1", first.Counts.Doctors)
	}

	seedDoctor(t, db, "James", "Wilson")
	cached, err := uc.GetDashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if cached.Counts.Doctors != 1 {
		t.Errorf("expected cached count 1, got %d", cached.Counts.Doctors)
	}

	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	fresh, err := uc.GetDashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if fresh.Counts.Doctors != 2 {
		t.Errorf("doctors after invalidate = %d, want 2", fresh.Counts.Doctors)
	}
}

func TestGetDashboard_WithoutCache(t *testing.T) {
	db := newTestDB(t)
	uc := NewDashboardUsecase(db, newTestLogger(), repository.NewAnalyticsRepository(), nil)

	seedPatient(t, db, "Jane", nil)
	resp, err := uc.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if resp.Counts.Patients != 1 {
		t.Errorf("patients = %d, want 1", resp.Counts.Patients)
	}
}
