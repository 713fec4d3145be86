package tui

import (
	"github.com/MKhiriev/rhsm-sync/models"
)

// stateChangedMsg carries the state read right after a change notification.
type stateChangedMsg struct {
	state models.SubscriptionState
}

type registerDoneMsg struct {
	err error
}

type unregisterDoneMsg struct {
	err error
}

type historyLoadedMsg struct {
	snapshots []models.Snapshot
	err       error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
