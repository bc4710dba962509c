package bridge

import (
	"sync"
	"time"

	"github.com/bnema/formbridge/internal/domain/entity"
)

// OutcomeDeduplicator suppresses re-delivered completed outcomes. Failed
// outcomes are never suppressed.
type OutcomeDeduplicator struct {
	mu              sync.Mutex
	seen            map[string]time.Time
	retention       time.Duration
	cleanupInterval time.Duration
	lastCleanup     time.Time
	now             func() time.Time
}

// NewOutcomeDeduplicator creates a deduplicator that remembers completed
// outcomes for 30 minutes.
func NewOutcomeDeduplicator() *OutcomeDeduplicator {
	return &OutcomeDeduplicator{
		seen:            make(map[string]time.Time),
		retention:       30 * time.Minute,
		cleanupInterval: time.Minute,
		lastCleanup:     time.Now(),
		now:             time.Now,
	}
}

// IsDuplicate reports whether outcome was already accepted. The first call
// for a completed outcome records it and returns false.
func (d *OutcomeDeduplicator) IsDuplicate(outcome entity.SaveOutcome) bool {
	if outcome.IsFailure() {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if now.Sub(d.lastCleanup) > d.cleanupInterval {
		d.cleanup(now)
	}

	key := outcome.DedupKey()
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = now
	return false
}

// Len returns the number of remembered outcomes.
func (d *OutcomeDeduplicator) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

func (d *OutcomeDeduplicator) cleanup(now time.Time) {
	for key, at := range d.seen {
		if now.Sub(at) > d.retention {
			delete(d.seen, key)
		}
	}
	d.lastCleanup = now
}
