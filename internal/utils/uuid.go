package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7, or a random UUIDv4 if the clock
// source fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
