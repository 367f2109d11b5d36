package service

import (
	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/crypto"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	CourseService  CourseService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, cfg config.App, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, cfg, logger),
		UserService:    NewUserService(storages.UserRepository, hasher, cfg, logger),
		CourseService:  NewCourseService(storages.CourseRepository, cfg, logger),
		AppInfoService: NewAppInfoService(buildInfo, storages.HealthChecker, logger),
	}
}
