package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7 string, falling back to v4 when
// the clock-based generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
