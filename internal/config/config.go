// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by every
// rhsm-sync binary. It aggregates all sub-configurations and is populated by
// merging flags, environment variables, an optional config file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the API bearer token used by subctl and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the snapshot history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the REST API listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound transports: the D-Bus connection to RHSM
	// and the REST API address used by subctl.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the snapshot history database settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to verify JWT bearer tokens on the
	// mutating REST routes.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of every bearer token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// APIToken is the bearer token subctl attaches to mutating requests.
	// Env: APP_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the REST API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the SQLite history database.
type DB struct {
	// DSN is the go-sqlite3 data source name, e.g. "rhsm-sync.db" or
	// "file:/var/lib/rhsm-sync/history.db?_busy_timeout=5000".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the outbound transports.
type Adapter struct {
	// BusAddress selects the D-Bus connection: "system" (also the empty
	// value), "session", or a full D-Bus address such as
	// "unix:path=/run/dbus/system_bus_socket".
	// Env: ADAPTER_BUS_ADDRESS
	BusAddress string `env:"BUS_ADDRESS"`

	// StatusTimeout bounds a single check_status call. A call still pending
	// when it elapses is reported as stale.
	// Env: ADAPTER_STATUS_TIMEOUT
	StatusTimeout time.Duration `env:"STATUS_TIMEOUT"`

	// APIAddress is the base URL of the rhsm-sync REST API used by subctl.
	// Env: ADAPTER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// RequestTimeout is the timeout of a single outbound REST request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is the period of the background status refresh.
	// Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources (see the package documentation for the priority order).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withFile().
		withDefaults().
		build()
}
