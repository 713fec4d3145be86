// Package http implements the REST API of the rhsm-sync agent.
//
// It exposes the cached subscription state, a refresh trigger, the snapshot
// history and the register/unregister workflow of [service.SyncClient].
// Cross-cutting concerns such as panic recovery, request tracing, access
// logging, response compression and bearer-token authentication are
// handled here before requests reach the service layer.
package http
