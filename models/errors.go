package models

import "errors"

var (
	// ErrUnknownStatusCode is returned for check_status ordinals outside the
	// known status table.
	ErrUnknownStatusCode = errors.New("unknown entitlement status code")

	// ErrInvalidServerURL is returned when a registration server URL does not
	// match the host[:port][/path] form.
	ErrInvalidServerURL = errors.New("invalid registration server url")

	ErrMissingOrganization = errors.New("organization is required")
	ErrMissingCredentials  = errors.New("user and password are required without activation keys")
	ErrMissingProxyServer  = errors.New("proxy server is required when proxy is enabled")
)
