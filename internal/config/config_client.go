package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the D-Bus settings used to reach RHSM.
type ClientAdapter struct {
	// BusAddress is "system", "session" or a full D-Bus address.
	BusAddress string
	// StatusTimeout is the staleness timeout of one check_status call.
	StatusTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string for the snapshot history.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// RefreshInterval is the period of the background status refresh.
	// Zero disables it.
	RefreshInterval time.Duration
}

// ClientConfig is the configuration of the interactive TUI client,
// assembled from [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the D-Bus connection settings.
	Adapter ClientAdapter
	// Storage contains the history database settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			BusAddress:    cfg.Adapter.BusAddress,
			StatusTimeout: cfg.Adapter.StatusTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}
