// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types shared by every layer of the
// subscription sync client: the observer-visible SubscriptionState, the
// installed product records, registration input, and persisted snapshots.
package models

import "fmt"

// ServiceStatus is the overall entitlement verdict reported by the legacy
// subscription-manager check_status call. The zero value means the status
// is unknown or has not been fetched yet.
type ServiceStatus string

const (
	ServiceStatusUnknown              ServiceStatus = ""
	ServiceStatusValid                ServiceStatus = "VALID"
	ServiceStatusExpired              ServiceStatus = "EXPIRED"
	ServiceStatusWarning              ServiceStatus = "WARNING"
	ServiceStatusClassic              ServiceStatus = "CLASSIC"
	ServiceStatusPartiallyValid       ServiceStatus = "PARTIALLY_VALID"
	ServiceStatusRegistrationRequired ServiceStatus = "REGISTRATION_REQUIRED"
)

// serviceStatusTable is indexed by the ordinal returned from check_status.
// The order is fixed by rhsm_icon and must not change.
var serviceStatusTable = [...]ServiceStatus{
	ServiceStatusValid,
	ServiceStatusExpired,
	ServiceStatusWarning,
	ServiceStatusClassic,
	ServiceStatusPartiallyValid,
	ServiceStatusRegistrationRequired,
}

// ServiceStatusFromCode maps a check_status ordinal onto a [ServiceStatus].
// Ordinals outside the table yield [ServiceStatusUnknown] and an error
// wrapping [ErrUnknownStatusCode].
func ServiceStatusFromCode(code int32) (ServiceStatus, error) {
	if code < 0 || int(code) >= len(serviceStatusTable) {
		return ServiceStatusUnknown, fmt.Errorf("%w: %d", ErrUnknownStatusCode, code)
	}
	return serviceStatusTable[code], nil
}

// String returns the status name, or "UNKNOWN" for the zero value.
func (s ServiceStatus) String() string {
	if s == ServiceStatusUnknown {
		return "UNKNOWN"
	}
	return string(s)
}

// Placeholder values written into SubscriptionState.Status by the client
// itself rather than by the remote service.
const (
	StatusUnknown       = "Unknown"
	StatusUnregistering = "Unregistering"
)

// SubscriptionState is the locally cached view of the remote entitlement
// state. Observers re-read it after every change notification.
type SubscriptionState struct {
	// ServiceStatus is the last decoded check_status verdict.
	ServiceStatus ServiceStatus
	// Status is the human-facing summary returned by Entitlement.GetStatus.
	Status string
	// Products holds the result of the last successful product-list fetch.
	Products []ProductRecord
	// Err is the last fetch error. A successful product-list fetch clears it.
	Err error
}

// Clone returns a deep copy so callers can read it without holding locks.
func (s SubscriptionState) Clone() SubscriptionState {
	out := s
	out.Products = make([]ProductRecord, len(s.Products))
	copy(out.Products, s.Products)
	return out
}

// ErrorText returns Err as a string, or "" when no error is recorded.
func (s SubscriptionState) ErrorText() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// View converts the state into its wire representation.
func (s SubscriptionState) View() StateView {
	products := make([]ProductRecord, len(s.Products))
	copy(products, s.Products)

	return StateView{
		ServiceStatus: s.ServiceStatus,
		Status:        s.Status,
		Products:      products,
		Error:         s.ErrorText(),
	}
}

// StateView is the JSON form of SubscriptionState used by the REST API.
type StateView struct {
	ServiceStatus ServiceStatus   `json:"service_status"`
	Status        string          `json:"status"`
	Products      []ProductRecord `json:"products"`
	Error         string          `json:"error,omitempty"`
}
