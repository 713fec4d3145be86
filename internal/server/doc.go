// Package server runs the agent's HTTP transport.
//
// It owns the listener lifecycle: the listen address is bound when the
// server is created, requests are served until the run context is done,
// and in-flight requests are drained on shutdown.
package server
