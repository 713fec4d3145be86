// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/rhsm-sync/internal/adapter"
	"github.com/MKhiriev/rhsm-sync/internal/app"
	"github.com/MKhiriev/rhsm-sync/internal/service"
)

var ErrNoSyncClient = errors.New("tui requires a sync client")

// humanizeError turns transport errors into the short hints shown in the
// error overlay and on the status page.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return app.MsgServiceUnavailable
	case errors.Is(err, adapter.ErrAccessDenied):
		return app.MsgAccessDenied
	case errors.Is(err, service.ErrStatusTimeout), errors.Is(err, adapter.ErrNoReply):
		return app.MsgStatusTimeout
	}

	return err.Error()
}
