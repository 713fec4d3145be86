package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/service"
	"github.com/MKhiriev/rhsm-sync/internal/workers"
)

type App struct {
	services *service.Services
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SyncClient == nil {
		return nil, errNoSyncClient
	}
	if ui == nil {
		return nil, errNoUI
	}

	return &App{services: services, ui: ui, logger: logger.Component("client-app")}, nil
}

// Run starts the background workers, initializes the sync client and hands
// the terminal to the UI. Workers are stopped and the client closed once
// the UI returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var history workers.Worker
	if a.services.History != nil {
		history = a.services.History
	}
	var refresh workers.Worker
	if a.services.RefreshJob != nil {
		refresh = a.services.RefreshJob
	}
	jobs := workers.NewWorkers(history, refresh)
	jobs.Start(ctx)

	defer func() {
		cancel()
		jobs.Wait()
		a.services.SyncClient.Close()
		a.logger.Info().Msg("client stopped")
	}()

	if err := a.services.SyncClient.Init(ctx); err != nil {
		return fmt.Errorf("init sync client: %w", err)
	}

	return a.ui.Run(ctx)
}
