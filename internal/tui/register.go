package tui

import (
	"strings"

	"github.com/MKhiriev/rhsm-sync/internal/app"
	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	fieldOrg = iota
	fieldUser
	fieldPassword
	fieldActivationKeys
	fieldURL
	fieldProxyServer
	fieldProxyUser
	fieldProxyPass
	fieldCount
)

var registerLabels = [fieldCount]string{
	fieldOrg:            "Organization",
	fieldUser:           "User",
	fieldPassword:       "Password",
	fieldActivationKeys: "Activation keys",
	fieldURL:            "Server URL",
	fieldProxyServer:    "Proxy server",
	fieldProxyUser:      "Proxy user",
	fieldProxyPass:      "Proxy password",
}

// registerModel is the registration form. Activation keys, when filled,
// take precedence over user and password. Filling the proxy server turns
// the proxy on.
type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	inputs[fieldProxyPass].EchoMode = textinput.EchoPassword
	inputs[fieldProxyPass].EchoCharacter = '*'
	inputs[fieldActivationKeys].Placeholder = "key1,key2"
	inputs[fieldURL].Placeholder = models.DefaultServerURL
	inputs[fieldOrg].Focus()

	return registerModel{inputs: inputs}
}

func (m registerModel) details() models.RegistrationDetails {
	value := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }

	proxyServer := value(fieldProxyServer)
	return models.RegistrationDetails{
		Org:            value(fieldOrg),
		User:           value(fieldUser),
		Password:       m.inputs[fieldPassword].Value(),
		ActivationKeys: value(fieldActivationKeys),
		URL:            value(fieldURL),
		Proxy:          proxyServer != "",
		ProxyServer:    proxyServer,
		ProxyUser:      value(fieldProxyUser),
		ProxyPass:      m.inputs[fieldProxyPass].Value(),
	}
}

func (m registerModel) focusNext() registerModel {
	return m.focusAt((m.focus + 1) % len(m.inputs))
}

func (m registerModel) focusPrev() registerModel {
	return m.focusAt((m.focus - 1 + len(m.inputs)) % len(m.inputs))
}

func (m registerModel) focusAt(i int) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m registerModel) View() string {
	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(padRight(registerLabels[i]+":", 17))
		b.WriteString("[")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	if m.submitting {
		b.WriteString("\n" + app.MsgRegistering + "\n")
	}

	return renderPage("REGISTER SYSTEM", b.String(), "esc cancel  tab next field  enter register")
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
