package http

import (
	"net/http"

	"github.com/MKhiriev/rhsm-sync/internal/config"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	syncClient service.SyncClient
	history    service.HistoryReader
	appInfo    service.AppInfoService

	tokenSignKey string
	tokenIssuer  string

	metrics http.Handler
	logger  *logger.Logger
}

// NewHandler builds the REST handler. gatherer, when not nil, is served on
// /metrics.
func NewHandler(services *service.Services, cfg config.ServerApp, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	h := &Handler{
		syncClient:   services.SyncClient,
		appInfo:      services.AppInfoService,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
	if services.History != nil {
		h.history = services.History
	}
	if gatherer != nil {
		h.metrics = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}

	logger.Info().Msg("http handler created")
	return h
}
