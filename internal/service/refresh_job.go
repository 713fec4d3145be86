package service

import (
	"context"
	"time"

	"github.com/MKhiriev/rhsm-sync/internal/logger"
)

// RefreshJob calls RequestStatusRefresh on a ticker until its context is
// cancelled. It backs up the remote change signals, which are not
// delivered while the bus is restarting.
type RefreshJob struct {
	client   SyncClient
	interval time.Duration
	logger   *logger.Logger
}

// NewRefreshJob creates a job for client. A zero or negative interval
// disables it: Run returns immediately.
func NewRefreshJob(client SyncClient, interval time.Duration, log *logger.Logger) *RefreshJob {
	return &RefreshJob{
		client:   client,
		interval: interval,
		logger:   log.Component("refresh-job"),
	}
}

// Run implements workers.Worker.
func (j *RefreshJob) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Debug().Msg("periodic refresh disabled")
		return
	}

	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			j.client.RequestStatusRefresh()
		}
	}
}
