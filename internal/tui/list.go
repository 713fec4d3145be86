package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/rhsm-sync/internal/app"
	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// statusModel is the main page: the entitlement summary above the
// installed product list.
type statusModel struct {
	state   models.SubscriptionState
	idx     int
	busy    string
	spinner spinner.Model
	status  string
}

func newStatusModel() statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return statusModel{spinner: s}
}

func (m *statusModel) setState(state models.SubscriptionState) {
	m.state = state
	if m.idx >= len(state.Products) {
		m.idx = len(state.Products) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m statusModel) current() (models.ProductRecord, bool) {
	products := m.state.Products
	if len(products) == 0 || m.idx < 0 || m.idx >= len(products) {
		return models.ProductRecord{}, false
	}
	return products[m.idx], true
}

func (m statusModel) View() string {
	var b strings.Builder

	verdict := m.state.ServiceStatus
	fmt.Fprintf(&b, "Status:   %s\n", valueOrDash(m.state.Status))
	fmt.Fprintf(&b, "Verdict:  %s\n", serviceStatusStyle(verdict).Render(verdict.String()))
	if m.state.Err != nil {
		fmt.Fprintf(&b, "Error:    %s\n", errorStyle.Render(humanizeError(m.state.Err)))
	}
	if m.busy != "" {
		fmt.Fprintf(&b, "\n%s %s\n", m.spinner.View(), m.busy)
	}

	b.WriteString("\nInstalled products\n\n")
	if len(m.state.Products) == 0 {
		b.WriteString(helpStyle.Render(app.MsgNoProducts))
		b.WriteString("\n")
	}
	for i, p := range m.state.Products {
		line := fmt.Sprintf("%-36s %-8s %-8s %-8s %s",
			fitText(p.ProductName, 36), fitText(p.ProductID, 8), fitText(p.Version, 8), fitText(p.Arch, 8), p.Status)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("RHSM SUBSCRIPTIONS", b.String(),
		"r refresh  g register  u unregister  h history  c copy id  v about  q quit")
}
