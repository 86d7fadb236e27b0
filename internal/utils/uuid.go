package utils

import "github.com/google/uuid"

// RequestIDHeader carries the per-request identifier between the client and
// the server. The server reuses it as the trace id of the request logger.
const RequestIDHeader = "X-Request-ID"

// NewTraceID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 when the clock source fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
