// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// DefaultServerURL is the sentinel URL value that keeps the server
// configured in rhsm.conf.
const DefaultServerURL = "default"

// RegistrationDetails is the user input for registering the system.
// Either ActivationKeys or the User/Password pair selects the flow.
type RegistrationDetails struct {
	Org            string `json:"org"`
	User           string `json:"user,omitempty"`
	Password       string `json:"password,omitempty"`
	ActivationKeys string `json:"activation_keys,omitempty"`
	URL            string `json:"url,omitempty"`
	Proxy          bool   `json:"proxy,omitempty"`
	ProxyServer    string `json:"proxy_server,omitempty"`
	ProxyUser      string `json:"proxy_user,omitempty"`
	ProxyPass      string `json:"proxy_pass,omitempty"`
}

// UsesActivationKeys reports whether the activation-key flow applies.
func (d RegistrationDetails) UsesActivationKeys() bool {
	return strings.TrimSpace(d.ActivationKeys) != ""
}

// Keys splits ActivationKeys on commas. Blank entries are dropped.
func (d RegistrationDetails) Keys() []string {
	parts := strings.Split(d.ActivationKeys, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Validate checks the mutually exclusive credential inputs and the server
// URL before anything is sent to the registration service.
func (d RegistrationDetails) Validate() error {
	if strings.TrimSpace(d.Org) == "" {
		return ErrMissingOrganization
	}
	if !d.UsesActivationKeys() && (d.User == "" || d.Password == "") {
		return ErrMissingCredentials
	}
	if d.Proxy && strings.TrimSpace(d.ProxyServer) == "" {
		return ErrMissingProxyServer
	}
	if _, _, err := d.ServerURL(); err != nil {
		return err
	}
	return nil
}

// ServerURL parses URL unless it is empty or [DefaultServerURL], in which
// case ok is false.
func (d RegistrationDetails) ServerURL() (u ServerURL, ok bool, err error) {
	raw := strings.TrimSpace(d.URL)
	if raw == "" || raw == DefaultServerURL {
		return ServerURL{}, false, nil
	}
	u, err = ParseServerURL(raw)
	if err != nil {
		return ServerURL{}, false, err
	}
	return u, true, nil
}

// Options builds the register call options from the details.
// Call Validate first; Options only reports URL parse failures.
func (d RegistrationDetails) Options() (RegisterOptions, error) {
	var opts RegisterOptions

	u, ok, err := d.ServerURL()
	if err != nil {
		return RegisterOptions{}, err
	}
	if ok {
		opts.Server = &u
	}

	if d.Proxy {
		opts.Proxy = &ProxyOptions{
			Hostname: strings.TrimSpace(d.ProxyServer),
			User:     d.ProxyUser,
			Password: d.ProxyPass,
		}
	}

	return opts, nil
}

// RegisterOptions carries the optional server and proxy overrides passed
// alongside the credentials.
type RegisterOptions struct {
	Server *ServerURL
	Proxy  *ProxyOptions
}

// ProxyOptions are the connection options used when a proxy is enabled.
type ProxyOptions struct {
	Hostname string
	User     string
	Password string
}

// ServerURL is a registration server address split the way RHSM expects it.
type ServerURL struct {
	Host    string
	Port    string
	Handler string
}

// ParseServerURL accepts host[:port][/path] with an optional http:// or
// https:// prefix. The path must contain at least one character after the
// leading slash.
func ParseServerURL(raw string) (ServerURL, error) {
	s := strings.TrimSpace(raw)
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(s, scheme) {
			s = s[len(scheme):]
			break
		}
	}

	var u ServerURL

	hostEnd := strings.IndexAny(s, ":/")
	if hostEnd == -1 {
		u.Host, s = s, ""
	} else {
		u.Host, s = s[:hostEnd], s[hostEnd:]
	}
	if u.Host == "" {
		return ServerURL{}, fmt.Errorf("%w: %q: empty host", ErrInvalidServerURL, raw)
	}

	if strings.HasPrefix(s, ":") {
		rest := s[1:]
		portEnd := strings.IndexByte(rest, '/')
		if portEnd == -1 {
			portEnd = len(rest)
		}
		port := rest[:portEnd]
		if port == "" || !isDigits(port) {
			return ServerURL{}, fmt.Errorf("%w: %q: bad port", ErrInvalidServerURL, raw)
		}
		u.Port, s = port, rest[portEnd:]
	}

	if s != "" {
		if len(s) < 2 || s[0] != '/' {
			return ServerURL{}, fmt.Errorf("%w: %q: bad path", ErrInvalidServerURL, raw)
		}
		u.Handler = s
	}

	return u, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
