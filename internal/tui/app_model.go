package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/rhsm-sync/internal/app"
	"github.com/MKhiriev/rhsm-sync/internal/service"
	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenStatus screen = iota
	screenRegister
	screenHistory
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	client    service.SyncClient
	history   service.HistoryReader
	buildInfo models.AppBuildInfo

	currentScreen screen
	statusPage    statusModel
	register      registerModel
	historyPage   historyModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, client service.SyncClient, history service.HistoryReader, buildInfo models.AppBuildInfo) appModel {
	m := appModel{
		ctx:           ctx,
		client:        client,
		history:       history,
		buildInfo:     buildInfo,
		currentScreen: screenStatus,
		statusPage:    newStatusModel(),
		register:      newRegisterModel(),
	}
	m.statusPage.setState(client.State())
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				m.statusPage.busy = app.MsgUnregistering
				return m, tea.Batch(m.statusPage.spinner.Tick, m.cmdUnregister())
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case stateChangedMsg:
		m.statusPage.setState(msg.state)
		return m, nil
	case registerDoneMsg:
		m.register.submitting = false
		m.statusPage.busy = ""
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.register = newRegisterModel()
		m.currentScreen = screenStatus
		m.statusPage.status = app.MsgRegistered
		return m, cmdClearStatus()
	case unregisterDoneMsg:
		m.statusPage.busy = ""
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.statusPage.status = app.MsgUnregisterRequested
		return m, cmdClearStatus()
	case historyLoadedMsg:
		m.historyPage.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.historyPage.snapshots = msg.snapshots
		return m, nil
	case copiedMsg:
		m.statusPage.status = app.MsgCopied
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case clearStatusMsg:
		m.statusPage.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.statusPage.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.statusPage.spinner, cmd = m.statusPage.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenStatus:
		return m.updateStatus(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	case m.currentScreen == screenRegister:
		body = m.register.View()
	case m.currentScreen == screenHistory:
		body = m.historyPage.View()
	default:
		body = m.statusPage.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateStatus(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.statusPage.idx > 0 {
			m.statusPage.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.statusPage.idx < len(m.statusPage.state.Products)-1 {
			m.statusPage.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.statusPage.status = app.MsgRefreshRequested
		return m, tea.Batch(m.cmdRefresh(), cmdClearStatus())
	case key.Matches(keyMsg, keys.register):
		m.currentScreen = screenRegister
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.unregister):
		m.showConfirm = true
		m.confirm.message = app.MsgConfirmUnregister
	case key.Matches(keyMsg, keys.history):
		m.currentScreen = screenHistory
		m.historyPage = historyModel{}
		if m.history == nil {
			m.historyPage.disabled = true
			return m, nil
		}
		m.historyPage.loading = true
		return m, m.cmdLoadHistory()
	case key.Matches(keyMsg, keys.copy):
		product, ok := m.statusPage.current()
		if !ok || product.ProductID == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(product.ProductID)
	case key.Matches(keyMsg, keys.about):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.register.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenStatus
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = m.register.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = m.register.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			details := m.register.details()
			if err := details.Validate(); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.register.submitting = true
			m.statusPage.busy = app.MsgRegistering
			return m, tea.Batch(m.statusPage.spinner.Tick, m.cmdRegister(details))
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.history):
		m.currentScreen = screenStatus
	case key.Matches(keyMsg, keys.up):
		if m.historyPage.offset > 0 {
			m.historyPage.offset--
		}
	case key.Matches(keyMsg, keys.down):
		if m.historyPage.offset < len(m.historyPage.snapshots)-1 {
			m.historyPage.offset++
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) cmdRefresh() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		client.RequestStatusRefresh()
		return nil
	}
}

func (m appModel) cmdRegister(details models.RegistrationDetails) tea.Cmd {
	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		return registerDoneMsg{err: client.RegisterSystem(ctx, details)}
	}
}

func (m appModel) cmdUnregister() tea.Cmd {
	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		return unregisterDoneMsg{err: client.UnregisterSystem(ctx)}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	history := m.history
	return func() tea.Msg {
		snapshots, err := history.History(ctx, historyPageSize)
		return historyLoadedMsg{snapshots: snapshots, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
