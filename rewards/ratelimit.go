package rewards

import (
	"sync"
	"time"
)

// SubmissionLimiter tracks a sliding 24h window of confirmed submission
// timestamps per user and enforces hourly/daily ceilings plus a fixed cooldown
// between submissions. It is advisory: the authoritative daily quotas live in
// the ledger's transactions, so the read-then-decide race here is acceptable.
type SubmissionLimiter struct {
	mu       sync.Mutex
	history  map[uint][]time.Time
	hourly   int
	daily    int
	cooldown time.Duration
	now      func() time.Time
}

// NewSubmissionLimiter creates a limiter with the given ceilings.
func NewSubmissionLimiter(hourlyCap, dailyCap int, cooldown time.Duration) *SubmissionLimiter {
	return &SubmissionLimiter{
		history:  make(map[uint][]time.Time),
		hourly:   hourlyCap,
		daily:    dailyCap,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// CanSubmit reports whether the user may submit right now.
func (l *SubmissionLimiter) CanSubmit(userID uint) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timeUntilLocked(userID) == 0
}

// TimeUntilNext returns how long the user must wait before the next
// submission is allowed; zero when submission is allowed now. The cooldown is
// checked before the window ceilings, matching CanSubmit's predicate order.
func (l *SubmissionLimiter) TimeUntilNext(userID uint) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timeUntilLocked(userID)
}

// Record appends a submission timestamp. Call only after the submission has
// been confirmed to succeed; the log is never speculative.
func (l *SubmissionLimiter) Record(userID uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	l.history[userID] = append(l.pruneLocked(userID, now), now)
}

func (l *SubmissionLimiter) timeUntilLocked(userID uint) time.Duration {
	now := l.now()
	entries := l.pruneLocked(userID, now)
	l.history[userID] = entries

	if len(entries) == 0 {
		return 0
	}

	var wait time.Duration

	// Cooldown since the most recent submission comes first.
	if since := now.Sub(entries[len(entries)-1]); since < l.cooldown {
		wait = l.cooldown - since
	}

	hourAgo := now.Add(-time.Hour)
	inHour := entries
	for len(inHour) > 0 && inHour[0].Before(hourAgo) {
		inHour = inHour[1:]
	}
	if len(inHour) >= l.hourly {
		if w := inHour[0].Sub(hourAgo); w > wait {
			wait = w
		}
	}

	if len(entries) >= l.daily {
		dayAgo := now.Add(-24 * time.Hour)
		if w := entries[0].Sub(dayAgo); w > wait {
			wait = w
		}
	}

	return wait
}

// pruneLocked drops timestamps older than the trailing 24 hours.
func (l *SubmissionLimiter) pruneLocked(userID uint, now time.Time) []time.Time {
	entries := l.history[userID]
	cutoff := now.Add(-24 * time.Hour)
	for len(entries) > 0 && entries[0].Before(cutoff) {
		entries = entries[1:]
	}
	if len(entries) == 0 {
		delete(l.history, userID)
		return nil
	}
	return entries
}
