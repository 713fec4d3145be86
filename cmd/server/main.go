package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/rhsm-sync/internal/adapter"
	"github.com/MKhiriev/rhsm-sync/internal/config"
	"github.com/MKhiriev/rhsm-sync/internal/handler"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/server"
	"github.com/MKhiriev/rhsm-sync/internal/service"
	"github.com/MKhiriev/rhsm-sync/internal/store"
	"github.com/MKhiriev/rhsm-sync/internal/workers"
	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("rhsm-sync-agent")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	rhsm, err := adapter.NewDBusAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to subscription service")
	}
	defer rhsm.Close()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	services := service.NewServices(rhsm, storages, cfg.Client(), service.NewMetrics(registry), log)
	services.AppInfoService, err = service.NewAppInfoService(cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app info service")
	}

	handlers, err := handler.NewHandlers(services, cfg, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var history workers.Worker
	if services.History != nil {
		history = services.History
	}
	jobs := workers.NewWorkers(history, services.RefreshJob)
	jobs.Start(ctx)

	if err = services.SyncClient.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("error initializing sync client")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}

	stop()
	jobs.Wait()
	services.SyncClient.Close()
	log.Info().Msg("agent stopped")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
