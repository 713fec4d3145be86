// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transports rhsm-sync talks through.
//
// [SubscriptionAdapter] decouples the service layer from D-Bus. The package
// ships a godbus implementation ([NewDBusAdapter]) that speaks to the RHSM1
// services and the legacy subscription-manager EntitlementStatus object.
// [APIClient] is the resty-based client of the rhsm-sync REST API used by
// subctl.
//
// Error values defined in errors.go are mapped from D-Bus error names by
// mapDBusError and from HTTP status codes by mapHTTPError so that callers can
// use [errors.Is] regardless of the transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/rhsm-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/subscription_adapter_mock.go -package=mock

// SubscriptionAdapter is the remote collaborator surface of RHSM. Every
// method blocks until the remote call settles or ctx is done.
type SubscriptionAdapter interface {
	// StartRegisterServer starts the ephemeral private registration bus and
	// returns its address.
	StartRegisterServer(ctx context.Context) (string, error)

	// StopRegisterServer stops the private registration bus.
	StopRegisterServer(ctx context.Context) error

	// Register registers the system with a user/password pair over a private
	// connection opened at address.
	Register(ctx context.Context, address, org, user, password string, opts models.RegisterOptions) error

	// RegisterWithActivationKeys registers the system with activation keys
	// over a private connection opened at address.
	RegisterWithActivationKeys(ctx context.Context, address, org string, keys []string, opts models.RegisterOptions) error

	// AutoAttach asks RHSM to attach the best matching subscriptions.
	AutoAttach(ctx context.Context) error

	// Unregister removes the system registration.
	Unregister(ctx context.Context) error

	// GetStatus returns the raw JSON entitlement summary.
	GetStatus(ctx context.Context) (string, error)

	// ListInstalledProducts returns the raw JSON list of product tuples.
	ListInstalledProducts(ctx context.Context) (string, error)

	// CheckStatus returns the legacy check_status ordinal.
	CheckStatus(ctx context.Context) (int32, error)

	// SubscribeChanges delivers a [ChangeSignal] for every
	// entitlement_status_changed or PropertiesChanged signal of the legacy
	// EntitlementStatus object. The channel is closed when ctx is done or
	// the connection goes away.
	SubscribeChanges(ctx context.Context) (<-chan ChangeSignal, error)

	// Close releases the bus connection.
	Close() error
}

// APIClient is the client side of the rhsm-sync REST API.
type APIClient interface {
	State(ctx context.Context) (models.StateView, error)
	Refresh(ctx context.Context) error
	History(ctx context.Context, limit int) ([]models.Snapshot, error)
	Register(ctx context.Context, details models.RegistrationDetails) error
	Unregister(ctx context.Context) error
	Version(ctx context.Context) (string, error)
}

// ChangeSignal identifies which remote notification fired.
type ChangeSignal int

const (
	// SignalEntitlementStatusChanged is the semantic
	// EntitlementStatus.entitlement_status_changed signal.
	SignalEntitlementStatusChanged ChangeSignal = iota + 1
	// SignalPropertiesChanged is the generic
	// org.freedesktop.DBus.Properties.PropertiesChanged signal.
	SignalPropertiesChanged
)

func (s ChangeSignal) String() string {
	switch s {
	case SignalEntitlementStatusChanged:
		return "entitlement_status_changed"
	case SignalPropertiesChanged:
		return "PropertiesChanged"
	default:
		return "unknown"
	}
}
