// Package breaker implements a per-service circuit breaker over a
// TTL-bounded key-value store. One breaker instance serves any number of
// named services; state is keyed by service name so one platform's outage
// never rejects calls to another.
package breaker

import (
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Breaker tracks failures per named external service and rejects calls
// locally while a service is tripped. The store is best-effort: losing an
// entry reads as a closed breaker, so the system degrades to available,
// never to stuck-open.
type Breaker struct {
	store       port.BreakerStore
	maxFailures int
	cooldown    time.Duration
	failureTTL  time.Duration
	now         func() time.Time
}

// Option customises a Breaker.
type Option func(*Breaker)

// WithClock injects a clock, used by tests to step through cooldowns.
func WithClock(now func() time.Time) Option {
	return func(b *Breaker) { b.now = now }
}

// New creates a breaker. maxFailures is the trip threshold, cooldown how
// long a tripped service stays rejected, failureTTL how long individual
// failures count toward the threshold. The failure TTL should comfortably
// exceed the cooldown so sporadic failures age out instead of accumulating
// forever.
func New(store port.BreakerStore, maxFailures int, cooldown, failureTTL time.Duration, opts ...Option) *Breaker {
	b := &Breaker{
		store:       store,
		maxFailures: maxFailures,
		cooldown:    cooldown,
		failureTTL:  failureTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// IsAvailable reports whether service may be called. Once the cooldown
// has elapsed the service reads as available again, but the failure count
// persists until its own TTL: the breaker is half-open, and a failing
// call re-trips it immediately. Only a success closes it fully.
func (b *Breaker) IsAvailable(service string) bool {
	trippedAt, ok := b.store.GetTime(trippedKey(service))
	if !ok {
		return true
	}
	if b.now().Sub(trippedAt) >= b.cooldown {
		b.store.Delete(trippedKey(service))
		return true
	}
	return false
}

// RecordFailure counts one failure against service and trips the breaker
// once the threshold is reached.
func (b *Breaker) RecordFailure(service string) {
	if b.store.Incr(failuresKey(service), b.failureTTL) >= b.maxFailures {
		b.store.SetTime(trippedKey(service), b.now(), b.cooldown)
	}
}

// RecordSuccess clears both the failure counter and any tripped state.
func (b *Breaker) RecordSuccess(service string) {
	b.store.Delete(failuresKey(service), trippedKey(service))
}

// State reports the service's current failure count and trip timestamp,
// for operational inspection. It never mutates the stored state.
func (b *Breaker) State(service string) domain.BreakerState {
	var state domain.BreakerState
	if n, ok := b.store.GetInt(failuresKey(service)); ok {
		state.Failures = n
	}
	if ts, ok := b.store.GetTime(trippedKey(service)); ok {
		state.TrippedAt = &ts
	}
	return state
}

func failuresKey(service string) string { return service + ":failures" }
func trippedKey(service string) string  { return service + ":tripped" }
