package store

import (
	"context"

	"github.com/MKhiriev/rhsm-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository persists subscription state snapshots.
type SnapshotRepository interface {
	// SaveSnapshot inserts snapshot and returns its row ID.
	SaveSnapshot(ctx context.Context, snapshot models.Snapshot) (int64, error)
	// ListSnapshots returns up to limit snapshots, newest first.
	// A zero limit returns all of them.
	ListSnapshots(ctx context.Context, limit uint64) ([]models.Snapshot, error)
}
