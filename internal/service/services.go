package service

import (
	"github.com/MKhiriev/rhsm-sync/internal/adapter"
	"github.com/MKhiriev/rhsm-sync/internal/config"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/store"
)

// Services bundles the sync client with the jobs built around it.
type Services struct {
	SyncClient     SyncClient
	History        *SnapshotHistory
	RefreshJob     *RefreshJob
	AppInfoService AppInfoService
	Metrics        *Metrics
}

// NewServices wires the service layer. storages may be nil, in which case
// no history is recorded.
func NewServices(a adapter.SubscriptionAdapter, storages *store.Storages, cfg config.ClientConfig, metrics *Metrics, logger *logger.Logger) *Services {
	client := NewSyncClient(a, metrics, logger, cfg.Adapter.StatusTimeout)

	services := &Services{
		SyncClient: client,
		RefreshJob: NewRefreshJob(client, cfg.Workers.RefreshInterval, logger),
		Metrics:    metrics,
	}
	if storages != nil && storages.SnapshotRepository != nil {
		services.History = NewSnapshotHistory(client, storages.SnapshotRepository, logger)
	}

	return services
}
