package breaker

import (
	"testing"
	"time"

	"adpilot/internal/adapter/memory"
)

// fakeClock is shared between the breaker and its store so cooldowns and
// TTLs advance together.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(t *testing.T) (*Breaker, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
	store := memory.NewBreakerStore(memory.WithClock(clock.now))
	return New(store, 3, time.Minute, 10*time.Minute, WithClock(clock.now)), clock
}

func TestBreakerTripsAtThreshold(t *testing.T) {
	b, _ := newTestBreaker(t)

	b.RecordFailure("ads:google")
	b.RecordFailure("ads:google")
	if !b.IsAvailable("ads:google") {
		t.Fatalf("breaker must stay closed below the threshold")
	}
	b.RecordFailure("ads:google")
	if b.IsAvailable("ads:google") {
		t.Fatalf("breaker must open after 3 failures")
	}
}

func TestBreakerCooldownReset(t *testing.T) {
	b, clock := newTestBreaker(t)

	for i := 0; i < 3; i++ {
		b.RecordFailure("ads:google")
	}
	clock.advance(59 * time.Second)
	if b.IsAvailable("ads:google") {
		t.Fatalf("breaker must stay open inside the cooldown")
	}
	clock.advance(time.Second)
	if !b.IsAvailable("ads:google") {
		t.Fatalf("breaker must close once the cooldown elapses")
	}
	// Half-open: the failure count outlives the cooldown, so a single
	// failing call re-trips immediately.
	b.RecordFailure("ads:google")
	if b.IsAvailable("ads:google") {
		t.Fatalf("a failing call after the cooldown must re-trip the breaker")
	}
}

// TestBreakerHalfOpenTrial pins the half-open behavior at the exact
// cooldown boundary and past it: both read as available, one failing call
// re-trips in both cases, and a successful call closes the breaker so
// fresh failures count from zero.
func TestBreakerHalfOpenTrial(t *testing.T) {
	for _, past := range []time.Duration{0, time.Millisecond} {
		b, clock := newTestBreaker(t)
		for i := 0; i < 3; i++ {
			b.RecordFailure("ads:google")
		}
		clock.advance(time.Minute + past)
		if !b.IsAvailable("ads:google") {
			t.Fatalf("past=%v: breaker must be available after the cooldown", past)
		}
		b.RecordFailure("ads:google")
		if b.IsAvailable("ads:google") {
			t.Fatalf("past=%v: one failing call must re-trip the breaker", past)
		}
	}

	b, clock := newTestBreaker(t)
	for i := 0; i < 3; i++ {
		b.RecordFailure("ads:google")
	}
	clock.advance(time.Minute)
	b.RecordSuccess("ads:google")
	b.RecordFailure("ads:google")
	b.RecordFailure("ads:google")
	if !b.IsAvailable("ads:google") {
		t.Fatalf("after a successful call, failures must count from zero")
	}
}

func TestBreakerSuccessClearsState(t *testing.T) {
	b, _ := newTestBreaker(t)

	b.RecordFailure("ads:facebook")
	b.RecordFailure("ads:facebook")
	b.RecordSuccess("ads:facebook")
	b.RecordFailure("ads:facebook")
	b.RecordFailure("ads:facebook")
	if !b.IsAvailable("ads:facebook") {
		t.Fatalf("success must reset the failure count")
	}
}

func TestBreakerIsolatesServices(t *testing.T) {
	b, _ := newTestBreaker(t)

	for i := 0; i < 3; i++ {
		b.RecordFailure("ads:google")
	}
	if b.IsAvailable("ads:google") {
		t.Fatalf("tripped service must be rejected")
	}
	if !b.IsAvailable("ads:facebook") {
		t.Fatalf("an unrelated service must stay available")
	}
}

func TestBreakerStateSnapshot(t *testing.T) {
	b, clock := newTestBreaker(t)

	if st := b.State("ads:google"); st.Failures != 0 || st.TrippedAt != nil {
		t.Fatalf("expected zero state, got %+v", st)
	}
	for i := 0; i < 3; i++ {
		b.RecordFailure("ads:google")
	}
	st := b.State("ads:google")
	if st.Failures != 3 {
		t.Fatalf("expected 3 failures, got %d", st.Failures)
	}
	if st.TrippedAt == nil || !st.TrippedAt.Equal(clock.now()) {
		t.Fatalf("expected the trip timestamp, got %+v", st.TrippedAt)
	}
}

func TestBreakerFailuresAgeOut(t *testing.T) {
	b, clock := newTestBreaker(t)

	b.RecordFailure("ads:google")
	b.RecordFailure("ads:google")
	clock.advance(10*time.Minute + time.Second)
	b.RecordFailure("ads:google")
	if !b.IsAvailable("ads:google") {
		t.Fatalf("stale failures must not count toward the threshold")
	}
}
