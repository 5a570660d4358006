package memory

import (
	"testing"
	"time"
)

func TestIncrCountsAndExpires(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	s := NewBreakerStore(WithClock(func() time.Time { return now }))

	if got := s.Incr("k", time.Minute); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := s.Incr("k", time.Minute); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}

	now = now.Add(time.Minute + time.Second)
	if got := s.Incr("k", time.Minute); got != 1 {
		t.Fatalf("expected the counter to restart after expiry, got %d", got)
	}
}

// TestIncrKeepsOriginalExpiry verifies increments do not slide the window.
func TestIncrKeepsOriginalExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	s := NewBreakerStore(WithClock(func() time.Time { return now }))

	s.Incr("k", time.Minute)
	now = now.Add(50 * time.Second)
	s.Incr("k", time.Minute)
	now = now.Add(20 * time.Second)
	if _, ok := s.GetInt("k"); ok {
		t.Fatalf("expected the entry to expire on the original schedule")
	}
}

func TestSetGetTime(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	s := NewBreakerStore(WithClock(func() time.Time { return now }))

	stamp := now.Add(-time.Second)
	s.SetTime("t", stamp, time.Minute)
	got, ok := s.GetTime("t")
	if !ok || !got.Equal(stamp) {
		t.Fatalf("expected %v, got %v (ok=%v)", stamp, got, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := s.GetTime("t"); ok {
		t.Fatalf("expected the timestamp to expire")
	}
}

func TestTypedReadsDoNotCross(t *testing.T) {
	s := NewBreakerStore()

	s.Incr("n", time.Minute)
	s.SetTime("t", time.Now(), time.Minute)

	if _, ok := s.GetTime("n"); ok {
		t.Fatalf("integer entry must not read as a timestamp")
	}
	if _, ok := s.GetInt("t"); ok {
		t.Fatalf("timestamp entry must not read as an integer")
	}
}

func TestDelete(t *testing.T) {
	s := NewBreakerStore()

	s.Incr("a", time.Minute)
	s.SetTime("b", time.Now(), time.Minute)
	s.Delete("a", "b")
	if _, ok := s.GetInt("a"); ok {
		t.Fatalf("expected a to be deleted")
	}
	if _, ok := s.GetTime("b"); ok {
		t.Fatalf("expected b to be deleted")
	}
}
