package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/handler"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/observability"
	"github.com/MKhiriev/go-poster-keeper/internal/server"
	"github.com/MKhiriev/go-poster-keeper/internal/service"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
	"github.com/MKhiriev/go-poster-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("poster-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	telemetry, err := observability.Initialize(ctx, cfg.Telemetry, "poster-server", cfg.App.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("telemetry shutdown")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
