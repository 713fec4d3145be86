package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the config file. The same
// struct is decoded from JSON or YAML depending on the file extension.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer" yaml:"token_issuer"`
		APIToken     string `json:"api_token" yaml:"api_token"`
		Version      string `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		BusAddress     string   `json:"bus_address" yaml:"bus_address"`
		StatusTimeout  Duration `json:"status_timeout" yaml:"status_timeout"`
		APIAddress     string   `json:"api_address" yaml:"api_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval" yaml:"refresh_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads path as YAML when it ends in .yaml or .yml and as JSON
// otherwise.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: fileCfg.App.TokenSignKey,
			TokenIssuer:  fileCfg.App.TokenIssuer,
			APIToken:     fileCfg.App.APIToken,
			Version:      fileCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: fileCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			BusAddress:     fileCfg.Adapter.BusAddress,
			StatusTimeout:  time.Duration(fileCfg.Adapter.StatusTimeout),
			APIAddress:     fileCfg.Adapter.APIAddress,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(fileCfg.Workers.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s", or from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
