package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/rhsm-sync/internal/app"
	"github.com/MKhiriev/rhsm-sync/models"
)

const historyPageSize = 50

type historyModel struct {
	snapshots []models.Snapshot
	loading   bool
	disabled  bool
	offset    int
}

func (m historyModel) View() string {
	var b strings.Builder

	switch {
	case m.disabled:
		b.WriteString(app.MsgHistoryDisabled)
	case m.loading:
		b.WriteString("loading...")
	case len(m.snapshots) == 0:
		b.WriteString(app.MsgNoSnapshots)
	}

	for _, s := range m.snapshots[min(m.offset, len(m.snapshots)):] {
		line := fmt.Sprintf("%s  %-22s %-16s %d products",
			s.TakenAt.Local().Format(time.DateTime),
			serviceStatusStyle(s.ServiceStatus).Render(s.ServiceStatus.String()),
			fitText(valueOrDash(s.Status), 16),
			len(s.Products))
		if s.Error != "" {
			line += "  " + errorStyle.Render(fitText(s.Error, 40))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("STATUS HISTORY", b.String(), "up/down scroll  esc back")
}
