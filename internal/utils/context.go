// Package utils provides small helpers shared by the transport layers:
// typed context keys, JSON response writing, the resty client wrapper,
// JWT minting and verification, and trace ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which the auth middleware stores the "sub"
// claim of a verified bearer token.
var SubjectCtxKey = contextKey("subject")

// TraceIDCtxKey is the key under which the trace middleware stores the
// request trace ID.
var TraceIDCtxKey = contextKey("traceID")

// WithSubject returns a copy of ctx carrying subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectCtxKey, subject)
}

// GetSubjectFromContext retrieves the token subject stored by the auth
// middleware. ok is false when the value is missing or not a string.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok
}

// GetTraceIDFromContext retrieves the request trace ID, or "" when none is
// set.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
