package port

import (
	"time"

	"adpilot/internal/core/domain"
)

// BreakerStore is a TTL-bounded key-value store backing circuit breaker
// state. It is passed explicitly rather than held as process-global state
// so tests can inject a store with a fake clock. Entries may be lost at
// any time; readers must treat a missing key as the zero state.
type BreakerStore interface {
	// Incr increments the integer at key by one, creating it with the
	// given TTL when absent, and returns the new value.
	Incr(key string, ttl time.Duration) int
	// GetInt returns the integer at key, if present and unexpired.
	GetInt(key string) (int, bool)
	// SetTime stores a timestamp at key with the given TTL.
	SetTime(key string, t time.Time, ttl time.Duration)
	// GetTime returns the timestamp at key, if present and unexpired.
	GetTime(key string) (time.Time, bool)
	// Delete removes the given keys.
	Delete(keys ...string)
}

// BreakerInspector exposes read-only circuit breaker state for
// operational endpoints.
type BreakerInspector interface {
	State(service string) domain.BreakerState
}
