package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/service"
	"github.com/MKhiriev/rhsm-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the interactive subscriptions page.
type TUI struct {
	client    service.SyncClient
	history   service.HistoryReader
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SyncClient == nil {
		return nil, ErrNoSyncClient
	}

	t := &TUI{
		client:    services.SyncClient,
		buildInfo: buildInfo,
		logger:    logger.Component("tui"),
	}
	if services.History != nil {
		t.history = services.History
	}
	return t, nil
}

// Run blocks until the user quits or ctx is done. Every change
// notification of the sync client is forwarded to the program, so the page
// re-renders on each state change.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.client, t.history, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.client.Subscribe(func() {
		program.Send(stateChangedMsg{state: t.client.State()})
	})
	defer unsubscribe()

	if _, err := program.Run(); err != nil {
		// a cancelled ctx kills the program; that is a normal shutdown
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}

	t.logger.Info().Msg("tui closed")
	return nil
}
