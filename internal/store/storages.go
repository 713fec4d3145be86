package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rhsm-sync/internal/config"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
)

// Storages groups the repositories of the local history database.
type Storages struct {
	SnapshotRepository SnapshotRepository

	db *DB
}

// NewStorages opens the SQLite database named by cfg.DB.DSN, creating the
// file when needed, applies pending migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		SnapshotRepository: NewSnapshotRepository(db, logger),
		db:                 db,
	}, nil
}

// Close closes the underlying database.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
