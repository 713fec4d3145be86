// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/store"
	"github.com/MKhiriev/rhsm-sync/models"
)

// SnapshotHistory records a snapshot of the client state whenever it
// changes. Observer callbacks only poke a one-slot channel; the database
// write happens on the Run goroutine and reads the state at that moment,
// so bursts of notifications collapse into one write of the newest state.
type SnapshotHistory struct {
	client SyncClient
	repo   store.SnapshotRepository
	logger *logger.Logger
	now    func() time.Time

	changes chan struct{}
	last    *models.Snapshot
}

func NewSnapshotHistory(client SyncClient, repo store.SnapshotRepository, log *logger.Logger) *SnapshotHistory {
	return &SnapshotHistory{
		client:  client,
		repo:    repo,
		logger:  log.Component("history"),
		now:     time.Now,
		changes: make(chan struct{}, 1),
	}
}

// Run implements workers.Worker. It subscribes to the client and writes
// snapshots until ctx is done.
func (h *SnapshotHistory) Run(ctx context.Context) {
	unsubscribe := h.client.Subscribe(h.changed)
	defer unsubscribe()

	h.loadLast(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.changes:
			h.record(ctx)
		}
	}
}

// History lists the newest recorded snapshots. A zero limit lists all.
func (h *SnapshotHistory) History(ctx context.Context, limit uint64) ([]models.Snapshot, error) {
	return h.repo.ListSnapshots(ctx, limit)
}

func (h *SnapshotHistory) changed() {
	select {
	case h.changes <- struct{}{}:
	default:
	}
}

// loadLast seeds the comparison baseline so a restart does not write a
// duplicate of the newest stored snapshot.
func (h *SnapshotHistory) loadLast(ctx context.Context) {
	latest, err := h.repo.ListSnapshots(ctx, 1)
	if err != nil {
		h.logger.Err(err).Msg("failed to load latest snapshot")
		return
	}
	if len(latest) > 0 {
		h.last = &latest[0]
	}
}

func (h *SnapshotHistory) record(ctx context.Context) {
	snapshot := models.SnapshotOf(h.client.State(), h.now())
	if h.last != nil && h.last.SameState(snapshot) {
		return
	}

	id, err := h.repo.SaveSnapshot(ctx, snapshot)
	if err != nil {
		h.logger.Err(err).Msg("failed to save snapshot")
		return
	}
	snapshot.ID = id
	h.last = &snapshot

	h.logger.Debug().
		Int64("id", id).
		Str("service_status", snapshot.ServiceStatus.String()).
		Msg("snapshot recorded")
}
