// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_API_TOKEN":      "bearer",
		"APP_VERSION":        "1.4.0",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_BUS_ADDRESS":     "session",
		"ADAPTER_STATUS_TIMEOUT":  "45s",
		"ADAPTER_API_ADDRESS":     "http://127.0.0.1:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"STORAGE_DB_DATABASE_URI": "file:history.db",

		"WORKERS_REFRESH_INTERVAL": "10m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.FilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "bearer", cfg.App.APIToken)
	assert.Equal(t, "1.4.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "session", cfg.Adapter.BusAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.StatusTimeout)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Adapter.APIAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "file:history.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_TOKEN_SIGN_KEY":  "jwt_secret",
		"ADAPTER_BUS_ADDRESS": "unix:path=/tmp/bus",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)

	assert.Equal(t, "unix:path=/tmp/bus", cfg.Adapter.BusAddress)
	assert.Zero(t, cfg.Adapter.StatusTimeout)

	// Others untouched
	assert.Equal(t, Server{}, cfg.Server)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.FilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_STATUS_TIMEOUT": "soon",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"WORKERS_REFRESH_INTERVAL": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Workers.RefreshInterval)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_TOKEN_SIGN_KEY",
		"APP_TOKEN_ISSUER",
		"APP_API_TOKEN",
		"APP_VERSION",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"ADAPTER_BUS_ADDRESS",
		"ADAPTER_STATUS_TIMEOUT",
		"ADAPTER_API_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",

		"STORAGE_DB_DATABASE_URI",

		"WORKERS_REFRESH_INTERVAL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
