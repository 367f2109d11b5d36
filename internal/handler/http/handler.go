package http

import (
	"time"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/service"
	"github.com/MKhiriev/go-course-keeper/internal/validators"
)

// Settings are the environment-dependent switches of the HTTP layer,
// resolved once at startup.
type Settings struct {
	// ServeDocs mounts the API documentation under /docs.
	ServeDocs bool
	// ValidateResponses checks every success body against its schema
	// before it is written.
	ValidateResponses bool
	// PublicCourses lets anonymous callers read courses.
	PublicCourses bool
	// RequestTimeout cancels the request context of slow handlers.
	RequestTimeout time.Duration
}

// NewSettings derives Settings from the loaded configuration.
func NewSettings(cfg *config.StructuredConfig) Settings {
	return Settings{
		ServeDocs:         !cfg.App.IsProduction(),
		ValidateResponses: !cfg.App.IsProduction(),
		PublicCourses:     cfg.App.PublicCourses,
		RequestTimeout:    cfg.Server.RequestTimeout,
	}
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	settings  Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("docs", settings.ServeDocs).
		Bool("public_courses", settings.PublicCourses).
		Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		settings:  settings,
		logger:    logger,
	}
}
