// Package testutil provides shared helpers for localbase tests.
package testutil

import (
	"strconv"
	"sync"
	"time"
)

// TickingClock is a deterministic localdb clock for tests. Every call
// advances a fixed step from a fixed epoch, so created_at/updated_at
// values are reproducible and strictly increasing.
//
// Thread-safe: all methods use an internal mutex.
type TickingClock struct {
	mu    sync.Mutex
	epoch time.Time
	step  time.Duration
	calls int64
}

// NewTickingClock creates a clock starting at epoch, advancing by step
// per call.
func NewTickingClock(epoch time.Time, step time.Duration) *TickingClock {
	return &TickingClock{epoch: epoch, step: step}
}

// DefaultClock returns a ticking clock at a fixed 2025 epoch with
// one-second steps, suitable for golden tests.
func DefaultClock() *TickingClock {
	return NewTickingClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), time.Second)
}

// Now returns the next clock reading. Use as localdb.WithClock(c.Now).
func (c *TickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.epoch.Add(time.Duration(c.calls) * c.step)
	c.calls++
	return t
}

// Calls returns how many readings have been taken.
func (c *TickingClock) Calls() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Reset rewinds the clock to its epoch for test reuse.
func (c *TickingClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = 0
}

// SequentialIDs returns an id generator producing "id-1", "id-2", ...
// for deterministic row ids in tests.
func SequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	var n int
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
