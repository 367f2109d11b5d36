package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/handler"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, cfg.ShutdownTimeout, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down gracefully.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run(ctx context.Context) error {
	listener, err := s.httpServer.listen()
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(listener)
	}()
	s.logger.Info().Str("address", listener.Addr().String()).Msg("HTTP server launched")

	select {
	case err = <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("stop signal received, shutting down")
	s.Shutdown()

	if err = <-serveErr; err != nil {
		return fmt.Errorf("HTTP server stopped: %w", err)
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
