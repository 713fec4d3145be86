package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/rhsm-sync/internal/adapter"
	"github.com/MKhiriev/rhsm-sync/internal/client"
	"github.com/MKhiriev/rhsm-sync/internal/config"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/service"
	"github.com/MKhiriev/rhsm-sync/internal/store"
	"github.com/MKhiriev/rhsm-sync/internal/tui"
	"github.com/MKhiriev/rhsm-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("rhsm-sync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	rhsm, err := adapter.NewDBusAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to subscription service")
	}
	defer rhsm.Close()

	localStorage, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewServices(rhsm, localStorage, *cfg, nil, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Println(err)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
