package tui

import (
	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	selectedStyle   = lipgloss.NewStyle().Reverse(true)

	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func serviceStatusStyle(s models.ServiceStatus) lipgloss.Style {
	switch s {
	case models.ServiceStatusValid:
		return goodStyle
	case models.ServiceStatusWarning, models.ServiceStatusPartiallyValid, models.ServiceStatusClassic:
		return warnStyle
	case models.ServiceStatusExpired, models.ServiceStatusRegistrationRequired:
		return badStyle
	default:
		return helpStyle
	}
}
