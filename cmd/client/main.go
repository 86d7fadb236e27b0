package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/adapter"
	"github.com/MKhiriev/go-poster-keeper/internal/client"
	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/observability"
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
	os.Exit(run())
}

func run() int {
	log, logFile := logger.NewClientLogger("poster-client")
	defer logFile.Close()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Error().Err(err).Msg("error getting configs")
		return 2
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		fmt.Println(buildInfo)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry, err := observability.Initialize(ctx, cfg.Telemetry, "poster-client", buildInfo.BuildVersion(), log)
	if err != nil {
		log.Error().Err(err).Msg("init telemetry")
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("telemetry shutdown")
		}
	}()

	metrics, err := observability.NewSyncMetrics()
	if err != nil {
		log.Error().Err(err).Msg("create sync metrics")
		return 1
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot open local poster cache:", err)
		log.Error().Err(err).Msg("create local storage")
		return 1
	}
	defer localStorage.Close()

	remote, err := adapter.NewPosterService(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create remote adapter")
		return 1
	}
	defer remote.Close()

	services := service.NewClientServices(localStorage, remote, cfg, metrics, log)

	app, err := client.NewApp(services, cfg.Workers, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx, cfg.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		log.Error().Err(err).Msg("client run error")
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			return 2
		}
		return 1
	}
	return 0
}
