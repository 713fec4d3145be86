// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/models"
)

const snapshotsTable = "subscription_snapshots"

var snapshotColumns = []string{"id", "taken_at", "service_status", "status", "products", "error"}

// snapshotRepository is the SQLite-backed implementation of
// [SnapshotRepository]. Products are stored as a JSON array in one column.
type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot models.Snapshot) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSnapshotQuery(snapshot)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveSnapshot").Msg("failed to create query")
		return 0, err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.SaveSnapshot").
			Str("service_status", snapshot.ServiceStatus.String()).
			Msg("failed to insert snapshot")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return 0, ErrSnapshotNotSaved
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *snapshotRepository) ListSnapshots(ctx context.Context, limit uint64) ([]models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSnapshotsQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.ListSnapshots").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ListSnapshots").
			Uint64("limit", limit).
			Msg("failed to execute query for listing snapshots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snapshots := make([]models.Snapshot, 0)
	for rows.Next() {
		var (
			s        models.Snapshot
			status   string
			products string
		)
		if err = rows.Scan(&s.ID, &s.TakenAt, &status, &s.Status, &products, &s.Error); err != nil {
			log.Err(err).Str("func", "snapshotRepository.ListSnapshots").Msg("failed to scan snapshot row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		s.ServiceStatus = models.ServiceStatus(status)

		if err = json.Unmarshal([]byte(products), &s.Products); err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.ListSnapshots").
				Int64("id", s.ID).
				Msg("failed to decode stored products")
			return nil, fmt.Errorf("%w (id=%d): %w", ErrDecodingProducts, s.ID, err)
		}

		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "snapshotRepository.ListSnapshots").Msg("error iterating snapshot rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snapshots, nil
}

func buildSaveSnapshotQuery(snapshot models.Snapshot) (string, []any, error) {
	products := snapshot.Products
	if products == nil {
		products = []models.ProductRecord{}
	}
	encoded, err := json.Marshal(products)
	if err != nil {
		return "", nil, fmt.Errorf("%w: encode products: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := sq.Insert(snapshotsTable).
		Columns(snapshotColumns[1:]...).
		Values(snapshot.TakenAt.UTC(), string(snapshot.ServiceStatus), snapshot.Status, string(encoded), snapshot.Error).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListSnapshotsQuery(limit uint64) (string, []any, error) {
	builder := sq.Select(snapshotColumns...).
		From(snapshotsTable).
		OrderBy("id DESC").
		PlaceholderFormat(sq.Question)
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
