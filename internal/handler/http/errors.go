// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by the REST handlers. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidToken is returned when the bearer token fails signature,
	// issuer or expiry checks.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrInvalidLimit       = errors.New("limit must be a positive integer")
	ErrInvalidRequestBody = errors.New("invalid request body")
	ErrHistoryDisabled    = errors.New("snapshot history is disabled")
)
