package clock

import (
	"sync"
	"time"
)

// Clock is the single trusted time source for the game engine.
// Every time comparison (planting timestamps, growth checks, merchant
// rotation cooldowns) reads from one Clock; caller-supplied times are
// never accepted.
type Clock interface {
	// Now returns the current time. Successive calls never go backwards.
	Now() time.Time
}

// System is a monotonically non-decreasing wall clock.
// Wall-clock regressions (NTP steps, manual adjustment) are clamped to
// the last observed reading.
type System struct {
	mu   sync.Mutex
	last time.Time
}

// NewSystem creates a system clock
func NewSystem() *System {
	return &System{}
}

// Now returns the wall time, clamped to be non-decreasing
func (c *System) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if now.Before(c.last) {
		return c.last
	}
	c.last = now
	return now
}

// Manual is a hand-advanced clock for tests
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock starting at the given time
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time
func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative advances are ignored
// so the clock stays monotonic.
func (c *Manual) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the clock to t if t is not before the current reading
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.Before(c.now) {
		return
	}
	c.now = t
}
