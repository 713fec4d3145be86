package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
//
// RunServer blocks until ctx is done or serving fails, then shuts the
// server down gracefully.
type Server interface {
	// RunServer serves requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown drains in-flight requests until ctx expires.
	Shutdown(ctx context.Context) error
}
