package models

import (
	"slices"
	"time"
)

// Snapshot is a persisted copy of SubscriptionState taken when the state
// changed.
type Snapshot struct {
	ID            int64           `json:"id"`
	TakenAt       time.Time       `json:"taken_at"`
	ServiceStatus ServiceStatus   `json:"service_status"`
	Status        string          `json:"status"`
	Products      []ProductRecord `json:"products"`
	Error         string          `json:"error,omitempty"`
}

// SnapshotOf captures state at the given time. ID is left for the store.
func SnapshotOf(state SubscriptionState, at time.Time) Snapshot {
	products := make([]ProductRecord, len(state.Products))
	copy(products, state.Products)

	return Snapshot{
		TakenAt:       at,
		ServiceStatus: state.ServiceStatus,
		Status:        state.Status,
		Products:      products,
		Error:         state.ErrorText(),
	}
}

// SameState reports whether two snapshots describe the same subscription
// state, ignoring ID and capture time.
func (s Snapshot) SameState(other Snapshot) bool {
	return s.ServiceStatus == other.ServiceStatus &&
		s.Status == other.Status &&
		s.Error == other.Error &&
		slices.Equal(s.Products, other.Products)
}
