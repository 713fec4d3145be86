// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	errNoSyncClient = errors.New("client app requires a sync client")
	errNoUI         = errors.New("client app requires a ui")
)
