// Package memory provides an in-process TTL key-value store backing
// circuit breaker state. Entries are ephemeral by design: breaker state is
// safe to lose on restart.
package memory

import (
	"sync"
	"time"
)

type entry struct {
	intVal    int
	timeVal   time.Time
	isTime    bool
	expiresAt time.Time
}

// BreakerStore is a concurrency-safe map with per-entry expiry. Expired
// entries are dropped lazily on read and write. Concurrent writers may
// race on a counter increment; the worst case is one extra failed call
// before a breaker trips, which is acceptable for this use.
type BreakerStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// Option customises a BreakerStore.
type Option func(*BreakerStore)

// WithClock injects a clock for tests.
func WithClock(now func() time.Time) Option {
	return func(s *BreakerStore) { s.now = now }
}

// NewBreakerStore creates an empty store.
func NewBreakerStore(opts ...Option) *BreakerStore {
	s := &BreakerStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Incr increments the integer at key, creating it with ttl when absent or
// expired, and returns the new value. The expiry of an existing entry is
// not extended, so failures age out on their original schedule.
func (s *BreakerStore) Incr(key string, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(key)
	if !ok {
		e = entry{expiresAt: s.now().Add(ttl)}
	}
	e.intVal++
	s.entries[key] = e
	return e.intVal
}

// GetInt returns the integer at key, if present and unexpired.
func (s *BreakerStore) GetInt(key string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(key)
	if !ok || e.isTime {
		return 0, false
	}
	return e.intVal, true
}

// SetTime stores a timestamp at key with the given ttl.
func (s *BreakerStore) SetTime(key string, t time.Time, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{timeVal: t, isTime: true, expiresAt: s.now().Add(ttl)}
}

// GetTime returns the timestamp at key, if present and unexpired.
func (s *BreakerStore) GetTime(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(key)
	if !ok || !e.isTime {
		return time.Time{}, false
	}
	return e.timeVal, true
}

// Delete removes the given keys.
func (s *BreakerStore) Delete(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
}

// live returns the entry at key, dropping it when expired. Callers must
// hold the mutex.
func (s *BreakerStore) live(key string) (entry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return entry{}, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return entry{}, false
	}
	return e, true
}
