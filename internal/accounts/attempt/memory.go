package attempt

import (
	"context"
	"sync"
	"time"
)

// MemoryTracker is an in-process tracker for single-instance deployments
// and tests. Counts reset when the window elapses without a new failure
// being recorded.
type MemoryTracker struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*entry

	now func() time.Time // overridable in tests
}

type entry struct {
	count   int
	started time.Time
}

func NewMemoryTracker(maxAttempts int, window time.Duration) *MemoryTracker {
	return &MemoryTracker{
		max:     maxAttempts,
		window:  window,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

func (t *MemoryTracker) RecordFailure(_ context.Context, username string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	e, ok := t.entries[username]
	if !ok || now.Sub(e.started) > t.window {
		t.entries[username] = &entry{count: 1, started: now}
		return nil
	}
	e.count++
	return nil
}

func (t *MemoryTracker) Exceeded(_ context.Context, username string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[username]
	if !ok {
		return false, nil
	}
	if t.now().Sub(e.started) > t.window {
		delete(t.entries, username)
		return false, nil
	}
	return e.count >= t.max, nil
}

func (t *MemoryTracker) Evict(_ context.Context, username string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, username)
	return nil
}
