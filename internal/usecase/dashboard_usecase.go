package usecase

import (
	"context"
	"time"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const dashboardCacheKey = "dashboard"

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	analyticsRepo repository.AnalyticsRepository
	statsCache    service.StatsCache
	now           func() time.Time
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	analyticsRepo repository.AnalyticsRepository,
	statsCache service.StatsCache,
) DashboardUsecase {
	return &dashboardUsecase{
		db:            db,
		log:           log,
		analyticsRepo: analyticsRepo,
		statsCache:    statsCache,
		now:           time.Now,
	}
}

// GetDashboard serves record counts from the stats cache, recomputing on a miss.
// Cache failures degrade to a direct query.
func (u *dashboardUsecase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	if u.statsCache != nil {
		var cached dto.DashboardResponse
		hit, err := u.statsCache.Get(ctx, dashboardCacheKey, &cached)
		if err != nil {
			u.log.Warnf("Failed to read dashboard cache: %+v", err)
		}
		if hit {
			return &cached, nil
		}
	}

	counts, err := u.analyticsRepo.CountRecords(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count records: %+v", err)
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Counts:      *counts,
		GeneratedAt: u.now().UTC(),
	}

	if u.statsCache != nil {
		if err := u.statsCache.Set(ctx, dashboardCacheKey, resp); err != nil {
			u.log.Warnf("Failed to write dashboard cache: %+v", err)
		}
	}

	return resp, nil
}
