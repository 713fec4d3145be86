// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/rhsm-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncClient keeps a local copy of the RHSM entitlement state and tells
// observers whenever it changes.
//
// RequestStatusRefresh, FetchStatusSummary and FetchProductList return
// immediately. Their outcome, including errors, lands in [State] and is
// announced through the callbacks registered with Subscribe.
type SyncClient interface {
	// Init subscribes to remote change signals and issues the first
	// status refresh. It may be called once.
	Init(ctx context.Context) error

	// RequestStatusRefresh starts a check_status round trip guarded by the
	// staleness timer. A newer request supersedes a pending one.
	RequestStatusRefresh()

	// FetchStatusSummary refreshes the human-readable status. Requests made
	// while a fetch is in flight are merged into one follow-up fetch.
	FetchStatusSummary()

	// FetchProductList refreshes the installed products with the same
	// merging rule as FetchStatusSummary.
	FetchProductList()

	// RegisterSystem runs the registration workflow and blocks until it
	// finishes. Failures are returned as *RegistrationError.
	RegisterSystem(ctx context.Context, details models.RegistrationDetails) error

	// UnregisterSystem removes the registration and always refreshes the
	// status afterwards.
	UnregisterSystem(ctx context.Context) error

	// State returns a copy of the current state.
	State() models.SubscriptionState

	// Subscribe registers fn to be called after every state change.
	// Callbacks run synchronously in registration order.
	Subscribe(fn func()) (unsubscribe func())

	// Close stops the signal subscription and the background work.
	Close()
}

// HistoryReader lists recorded snapshots, newest first.
type HistoryReader interface {
	History(ctx context.Context, limit uint64) ([]models.Snapshot, error)
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
