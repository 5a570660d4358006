package domain

import "time"

// BreakerState is the per-service circuit breaker record kept in a
// TTL-bounded store. Losing the state is safe: a missing entry reads as a
// closed breaker, so the system degrades to "available" on restart rather
// than sticking open.
type BreakerState struct {
	Failures  int
	TrippedAt *time.Time
}
