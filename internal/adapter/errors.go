package adapter

import "errors"

// D-Bus transport errors.
var (
	// ErrServiceUnavailable means the RHSM service is not running or not
	// activatable on the bus.
	ErrServiceUnavailable = errors.New("subscription service unavailable")
	// ErrAccessDenied means bus policy or polkit rejected the call.
	ErrAccessDenied = errors.New("access denied by subscription service")
	// ErrNoReply means the call timed out or the peer went away before
	// replying.
	ErrNoReply = errors.New("no reply from subscription service")
	// ErrRemote is any other error raised by the remote service. The wrapped
	// message is the service's own.
	ErrRemote = errors.New("subscription service error")
	// ErrUnexpectedReply means the reply body did not match the expected
	// signature.
	ErrUnexpectedReply = errors.New("unexpected reply from subscription service")
)

// REST API errors.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
