package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/models"
)

type appInfoService struct {
	buildInfo     models.AppBuildInfo
	healthChecker store.HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, healthChecker store.HealthChecker, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo:     buildInfo,
		healthChecker: healthChecker,
		logger:        logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

// CheckHealth pings the database. A nil checker is reported as healthy.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if s.healthChecker == nil {
		return nil
	}

	if err := s.healthChecker.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("health check failed")
		return fmt.Errorf("health check failed: %w", err)
	}

	return nil
}
