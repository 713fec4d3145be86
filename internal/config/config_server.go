package config

import (
	"fmt"
)

// ServerApp holds the token settings and version of the headless agent.
type ServerApp struct {
	TokenSignKey string
	TokenIssuer  string
	Version      string
}

// ServerConfig is the configuration of the headless agent that exposes the
// REST API. It shares the adapter, storage and worker settings with the
// interactive client.
type ServerConfig struct {
	App     ServerApp
	Server  Server
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetServerConfig builds and validates the agent config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	client := newClientConfig(cfg)

	return &ServerConfig{
		App: ServerApp{
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
			Version:      cfg.App.Version,
		},
		Server:  cfg.Server,
		Adapter: client.Adapter,
		Storage: client.Storage,
		Workers: client.Workers,
	}
}

// Client returns the settings the agent shares with the interactive client.
func (cfg *ServerConfig) Client() ClientConfig {
	return ClientConfig{Adapter: cfg.Adapter, Storage: cfg.Storage, Workers: cfg.Workers}
}
