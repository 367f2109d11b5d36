package handler

import (
	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/handler/http"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/service"
	"github.com/MKhiriev/go-course-keeper/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, validator validators.Validator, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validator, http.NewSettings(cfg), logger),
	}, nil
}
