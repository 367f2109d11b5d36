// @title                      Course keeper API
// @version                    1.0
// @description                Users, roles and courses with JWT authentication.
// @BasePath                   /
// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
// @description                Bearer token issued by POST /sessions, sent as "Bearer <token>".
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/handler"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/server"
	"github.com/MKhiriev/go-course-keeper/internal/service"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/internal/validators"
	"github.com/MKhiriev/go-course-keeper/models"
)

//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-course-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Str("env", cfg.App.Environment).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, buildInfo, cfg.App, log)

	handlers, err := handler.NewHandlers(services, validators.NewStructValidator(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runErr := srv.RunServer()
	if err = db.Close(); err != nil {
		log.Err(err).Msg("error closing database")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
