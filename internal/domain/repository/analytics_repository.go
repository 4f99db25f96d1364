package repository

import (
	"context"

	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// AnalyticsRepository runs the read-only aggregate queries behind the dashboard and reports.
type AnalyticsRepository interface {
	CountRecords(ctx context.Context, db *gorm.DB) (*entity.RecordCounts, error)
	CountPatientsByStatus(ctx context.Context, db *gorm.DB) ([]entity.LabelCount, error)
	CountDoctorsPerDay(ctx context.Context, db *gorm.DB) ([]entity.DayCount, error)
	CountAppointmentsPerDoctor(ctx context.Context, db *gorm.DB) ([]entity.LabelCount, error)
	CountPresentDaysPerStaff(ctx context.Context, db *gorm.DB) ([]entity.LabelCount, error)
}
