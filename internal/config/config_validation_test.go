package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *ServerConfig {
	return &ServerConfig{
		App:     ServerApp{TokenSignKey: "k", TokenIssuer: "rhsm-sync"},
		Server:  Server{HTTPAddress: "127.0.0.1:8080", RequestTimeout: time.Second},
		Adapter: ClientAdapter{StatusTimeout: time.Minute},
		Storage: ClientStorage{DB: ClientDB{DSN: "history.db"}},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: ClientConfig{
				Adapter: ClientAdapter{StatusTimeout: time.Minute},
				Storage: ClientStorage{DB: ClientDB{DSN: "history.db"}},
			},
		},
		{
			name:    "empty dsn",
			cfg:     ClientConfig{Adapter: ClientAdapter{StatusTimeout: time.Minute}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero status timeout",
			cfg:     ClientConfig{Storage: ClientStorage{DB: ClientDB{DSN: "history.db"}}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "negative refresh interval",
			cfg: ClientConfig{
				Adapter: ClientAdapter{StatusTimeout: time.Minute},
				Storage: ClientStorage{DB: ClientDB{DSN: "history.db"}},
				Workers: ClientWorkers{RefreshInterval: -time.Minute},
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	assert.NoError(t, validServerConfig().validate())

	noKey := validServerConfig()
	noKey.App.TokenSignKey = ""
	assert.ErrorIs(t, noKey.validate(), ErrInvalidAppConfigs)

	noAddr := validServerConfig()
	noAddr.Server.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidServerConfigs)

	noDSN := validServerConfig()
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)
}

func TestCtlConfig_Validate(t *testing.T) {
	assert.NoError(t, (&CtlConfig{APIAddress: "http://x", RequestTimeout: time.Second}).validate())
	assert.ErrorIs(t, (&CtlConfig{RequestTimeout: time.Second}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&CtlConfig{APIAddress: "http://x"}).validate(), ErrInvalidAdapterConfigs)
}

func TestNewServerConfig_Projection(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "k", TokenIssuer: "i", Version: "v", APIToken: "ignored"},
		Server:  Server{HTTPAddress: "127.0.0.1:9", RequestTimeout: time.Second},
		Adapter: Adapter{BusAddress: "session", StatusTimeout: time.Minute, APIAddress: "ignored"},
		Storage: Storage{DB: DB{DSN: "h.db"}},
		Workers: Workers{RefreshInterval: time.Hour},
	}

	got := newServerConfig(cfg)
	assert.Equal(t, ServerApp{TokenSignKey: "k", TokenIssuer: "i", Version: "v"}, got.App)
	assert.Equal(t, cfg.Server, got.Server)
	assert.Equal(t, ClientAdapter{BusAddress: "session", StatusTimeout: time.Minute}, got.Adapter)
	assert.Equal(t, "h.db", got.Storage.DB.DSN)
	assert.Equal(t, time.Hour, got.Workers.RefreshInterval)
}
