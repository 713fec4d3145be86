package config

import (
	"fmt"
	"time"
)

// CtlConfig is the configuration of subctl, the REST API command-line client.
type CtlConfig struct {
	// APIAddress is the base URL of the agent.
	APIAddress string
	// RequestTimeout bounds each request.
	RequestTimeout time.Duration
	// Token is the bearer token for mutating calls. It may be empty for
	// read-only commands.
	Token string
	// TokenSignKey and TokenIssuer are only needed by "subctl token", which
	// mints bearer tokens on the agent host.
	TokenSignKey string
	TokenIssuer  string
}

// GetCtlConfig builds and validates the subctl config view.
func GetCtlConfig() (*CtlConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	ctlCfg := newCtlConfig(cfg)
	return ctlCfg, ctlCfg.validate()
}

func newCtlConfig(cfg *StructuredConfig) *CtlConfig {
	return &CtlConfig{
		APIAddress:     cfg.Adapter.APIAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Token:          cfg.App.APIToken,
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenIssuer:    cfg.App.TokenIssuer,
	}
}
