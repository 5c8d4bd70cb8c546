package rewards

import (
	"testing"
	"time"
)

// fakeClock lets tests drive the limiter's view of time.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func newTestLimiter(hourly, daily int, cooldown time.Duration) (*SubmissionLimiter, *fakeClock) {
	clock := newFakeClock()
	l := NewSubmissionLimiter(hourly, daily, cooldown)
	l.now = clock.now
	return l, clock
}

func TestLimiterHourlyCap(t *testing.T) {
	l, clock := newTestLimiter(5, 100, 0)
	const user = uint(1)

	for i := 0; i < 5; i++ {
		if !l.CanSubmit(user) {
			t.Fatalf("submission %d should be allowed", i+1)
		}
		l.Record(user)
		clock.advance(time.Minute)
	}

	if l.CanSubmit(user) {
		t.Fatal("6th submission within the hour should be denied")
	}

	// first submission leaves the trailing-hour window
	clock.advance(56 * time.Minute)
	if !l.CanSubmit(user) {
		t.Fatal("submission should be allowed after the window rolls over")
	}
}

func TestLimiterDailyCap(t *testing.T) {
	l, clock := newTestLimiter(100, 10, 0)
	const user = uint(7)

	for i := 0; i < 10; i++ {
		l.Record(user)
		clock.advance(90 * time.Minute) // spread beyond the hourly window
	}
	if l.CanSubmit(user) {
		t.Fatal("11th submission within 24h should be denied")
	}

	clock.advance(10 * time.Hour)
	if !l.CanSubmit(user) {
		t.Fatal("submissions should expire out of the 24h window")
	}
}

func TestLimiterCooldown(t *testing.T) {
	l, clock := newTestLimiter(100, 100, time.Minute)
	const user = uint(3)

	l.Record(user)
	if l.CanSubmit(user) {
		t.Fatal("cooldown should deny immediate resubmission")
	}
	if wait := l.TimeUntilNext(user); wait != time.Minute {
		t.Fatalf("expected 1m wait, got %s", wait)
	}

	clock.advance(30 * time.Second)
	if wait := l.TimeUntilNext(user); wait != 30*time.Second {
		t.Fatalf("expected 30s wait, got %s", wait)
	}

	clock.advance(30 * time.Second)
	if !l.CanSubmit(user) {
		t.Fatal("cooldown should have elapsed")
	}
	if wait := l.TimeUntilNext(user); wait != 0 {
		t.Fatalf("expected zero wait, got %s", wait)
	}
}

func TestLimiterWaitCoversHourlyWindow(t *testing.T) {
	l, clock := newTestLimiter(2, 100, time.Minute)
	const user = uint(9)

	l.Record(user)
	clock.advance(10 * time.Minute)
	l.Record(user)
	clock.advance(5 * time.Minute)

	// cooldown already elapsed; the hourly window dominates the wait:
	// the oldest submission is 15 minutes old and expires in 45 minutes.
	if l.CanSubmit(user) {
		t.Fatal("hourly cap should deny submission")
	}
	if wait := l.TimeUntilNext(user); wait != 45*time.Minute {
		t.Fatalf("expected 45m wait, got %s", wait)
	}
}

func TestLimiterUsersIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, 10, 0)

	l.Record(1)
	if l.CanSubmit(1) {
		t.Fatal("user 1 should be capped")
	}
	if !l.CanSubmit(2) {
		t.Fatal("user 2 should be unaffected")
	}
}
