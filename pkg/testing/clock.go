package testing

import (
	"sync"
	"time"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Stepper is anything advanced once per frame, such as
// animation.FrameScheduler.
type Stepper interface {
	Step() int
}

// AdvanceFrames advances the clock by interval n times, stepping s after
// each advance. It returns the total number of callbacks s reported.
func (c *FakeClock) AdvanceFrames(s Stepper, interval time.Duration, n int) int {
	fired := 0
	for i := 0; i < n; i++ {
		c.Advance(interval)
		fired += s.Step()
	}
	return fired
}
