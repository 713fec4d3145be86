// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration carries no HTTP listen address. This is treated as a
	// fatal misconfiguration and causes the application to fail at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errIncompleteServices is returned when the sync client or the app
	// info service has not been built.
	errIncompleteServices = errors.New("services required by handlers are missing")
)
