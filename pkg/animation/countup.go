package animation

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// TickInterval is the cadence at which a running CountUp recomputes its
	// value (about 60Hz).
	TickInterval = 16 * time.Millisecond

	// DefaultCountUpDuration is the wall-clock length of a count-up.
	DefaultCountUpDuration = 1200 * time.Millisecond
)

var (
	// ErrNegativeTarget is returned by NewCountUp for targets below zero.
	ErrNegativeTarget = errors.New("animation: count-up target must not be negative")
	// ErrNoScheduler is returned by NewCountUp when no Scheduler is given.
	ErrNoScheduler = errors.New("animation: count-up requires a scheduler")
)

// CountUpStatus is the state of a CountUp.
//
//	          Start()              value reaches target
//	Idle ─────────────► Running ────────────────────────► Complete
//
// Complete is terminal. A zero target moves from Running to Complete inside
// Start without scheduling any tick.
type CountUpStatus int

const (
	// CountUpIdle means the count has not started; the value is 0.
	CountUpIdle CountUpStatus = iota
	// CountUpRunning means a tick is scheduled every TickInterval.
	CountUpRunning
	// CountUpComplete means the value is pinned at the target.
	CountUpComplete
)

// String returns a human-readable representation of the status.
func (s CountUpStatus) String() string {
	switch s {
	case CountUpIdle:
		return "idle"
	case CountUpRunning:
		return "running"
	case CountUpComplete:
		return "complete"
	default:
		return fmt.Sprintf("CountUpStatus(%d)", int(s))
	}
}

// CountUp produces a non-decreasing integer sequence from 0 to a target,
// paced over a duration.
//
// Each tick adds a constant floating point increment, computed once at
// Start as target / (duration / TickInterval), and publishes the floor of
// the running total. The final tick clamps to the target exactly. The tick
// budget ceil(duration / TickInterval) also ends the run, so float rounding
// can never add an extra tick.
//
// Always call Dispose when the owning region goes away.
type CountUp struct {
	target   int
	duration time.Duration
	sched    Scheduler

	status      CountUpStatus
	value       int
	accumulated float64
	increment   float64
	ticks       int
	budget      int
	handle      Handle
	disposed    bool

	listeners       map[int]func(int)
	statusListeners map[int]func(CountUpStatus)
	nextListenerID  int
}

// NewCountUp creates an idle count-up toward target. A non-positive duration
// means DefaultCountUpDuration.
func NewCountUp(target int, duration time.Duration, sched Scheduler) (*CountUp, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}
	if sched == nil {
		return nil, ErrNoScheduler
	}
	if duration <= 0 {
		duration = DefaultCountUpDuration
	}
	return &CountUp{
		target:          target,
		duration:        duration,
		sched:           sched,
		status:          CountUpIdle,
		listeners:       make(map[int]func(int)),
		statusListeners: make(map[int]func(CountUpStatus)),
	}, nil
}

// Start moves an idle count-up to Running. It returns false, doing nothing,
// if the count already started, finished or was disposed.
func (c *CountUp) Start() bool {
	if c.disposed || c.status != CountUpIdle {
		return false
	}
	c.setStatus(CountUpRunning)

	if c.target == 0 {
		c.complete()
		return true
	}

	steps := float64(c.duration) / float64(TickInterval)
	c.increment = float64(c.target) / steps
	c.budget = int(math.Ceil(steps))
	c.handle = c.sched.Every(TickInterval, c.tick)
	return true
}

func (c *CountUp) tick() {
	if c.disposed || c.status != CountUpRunning {
		return
	}
	c.ticks++
	c.accumulated += c.increment
	if c.accumulated >= float64(c.target) || c.ticks >= c.budget {
		c.complete()
		return
	}
	if next := int(math.Floor(c.accumulated)); next > c.value {
		c.value = next
		c.notifyListeners()
	}
}

func (c *CountUp) complete() {
	c.cancel()
	changed := c.value != c.target
	c.value = c.target
	c.setStatus(CountUpComplete)
	if changed {
		c.notifyListeners()
	}
}

func (c *CountUp) cancel() {
	if c.handle != nil {
		c.handle.Cancel()
		c.handle = nil
	}
}

// Value returns the current value, always within [0, Target()].
func (c *CountUp) Value() int {
	return c.value
}

// Target returns the final value.
func (c *CountUp) Target() int {
	return c.target
}

// Duration returns the configured run length.
func (c *CountUp) Duration() time.Duration {
	return c.duration
}

// Status returns the current status.
func (c *CountUp) Status() CountUpStatus {
	return c.status
}

// Ticks returns how many ticks the run has consumed.
func (c *CountUp) Ticks() int {
	return c.ticks
}

// IsRunning reports whether a tick is scheduled.
func (c *CountUp) IsRunning() bool {
	return c.status == CountUpRunning
}

// IsComplete reports whether the value reached the target.
func (c *CountUp) IsComplete() bool {
	return c.status == CountUpComplete
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *CountUp) AddListener(fn func(value int)) func() {
	if c.disposed {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *CountUp) AddStatusListener(fn func(CountUpStatus)) func() {
	if c.disposed {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *CountUp) setStatus(status CountUpStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *CountUp) notifyListeners() {
	for _, listener := range c.listeners {
		listener(c.value)
	}
}

// Dispose cancels any pending tick and drops listeners. A disposed count-up
// never changes again.
func (c *CountUp) Dispose() {
	c.cancel()
	c.disposed = true
	c.listeners = nil
	c.statusListeners = nil
}
