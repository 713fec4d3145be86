// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing strings shared by the terminal UI
// and subctl.
//
// Keeping them in one place keeps the wording of both front ends in step.
package app

const (
	// MsgRefreshRequested confirms that a status refresh was scheduled. The
	// outcome arrives later through a change notification.
	MsgRefreshRequested = "status refresh requested"

	// MsgRegistered is shown after the registration workflow completed and
	// the follow-up status refresh was scheduled.
	MsgRegistered = "system registered"

	// MsgUnregisterRequested confirms that the system was unregistered and
	// a refresh is on its way.
	MsgUnregisterRequested = "system unregistered"

	// MsgConfirmUnregister is the question asked before unregistering.
	MsgConfirmUnregister = "Unregister this system from Red Hat Subscription Management?"

	// MsgCopied is shown after a product ID was put on the clipboard.
	MsgCopied = "product ID copied"

	// MsgNoProducts is shown when the product list is empty.
	MsgNoProducts = "no installed products"

	// MsgHistoryDisabled is shown when the snapshot history store is not
	// configured.
	MsgHistoryDisabled = "snapshot history is disabled"

	// MsgNoSnapshots is shown when the history store holds nothing yet.
	MsgNoSnapshots = "no snapshots recorded"

	// MsgServiceUnavailable hints that rhsm.service is not running.
	MsgServiceUnavailable = "subscription service unavailable, is rhsm.service running?"

	// MsgAccessDenied hints at missing privileges on the system bus.
	MsgAccessDenied = "access denied by the subscription service, try running as root"

	// MsgStatusTimeout is shown when the status check went stale.
	MsgStatusTimeout = "the subscription service did not answer in time"

	// MsgRegistering and MsgUnregistering are shown while the workflows run.
	MsgRegistering   = "registering..."
	MsgUnregistering = "unregistering..."
)
