// Package animation provides the timing primitives behind muv's animated
// badges.
//
// # Core Components
//
//   - [Scheduler]: the "repeating scheduled callback" capability. Every
//     returns a [Handle] that must be cancelled when the work is done.
//
//   - [FrameScheduler]: a Scheduler driven by a host frame loop. Each call to
//     Step fires every callback whose deadline has passed, in issue order, on
//     the caller's goroutine.
//
//   - [CountUp]: a numeric ramp from 0 to a target value paced over a fixed
//     duration at [TickInterval], started once by a visibility edge.
//
// # Basic Usage
//
//	sched := animation.NewFrameScheduler(animation.SystemClock)
//	counter, err := animation.NewCountUp(100, animation.DefaultCountUpDuration, sched)
//	if err != nil {
//	    return err
//	}
//	counter.AddListener(func(v int) { redraw(v) })
//	counter.Start()
//
//	// In the host frame loop
//	sched.Step()
//
//	// On teardown
//	counter.Dispose()
package animation

import "time"

// Scheduler runs a callback repeatedly at a fixed interval until the
// returned handle is cancelled.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

// Handle controls one repeating callback registered with a Scheduler.
type Handle interface {
	// Cancel stops the callback. No invocation happens after Cancel returns.
	// Cancel is idempotent.
	Cancel()
	// Active reports whether the callback is still scheduled.
	Active() bool
}

// Ticker is the Handle returned by [FrameScheduler.Every].
type Ticker struct {
	interval time.Duration
	callback func()
	next     time.Time
	isActive bool
	fired    int
}

// Cancel deactivates the ticker.
func (t *Ticker) Cancel() {
	t.isActive = false
}

// Active returns whether the ticker is still scheduled.
func (t *Ticker) Active() bool {
	return t.isActive
}

// Fired returns how many times the callback has run.
func (t *Ticker) Fired() int {
	return t.fired
}

// Interval returns the ticker's period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// FrameScheduler is a Scheduler advanced explicitly by its host.
//
// A FrameScheduler belongs to one host loop and is not safe for concurrent
// use: Every, Step and Cancel must all run on the loop's goroutine. Separate
// hosts should use separate schedulers.
type FrameScheduler struct {
	clock   Clock
	tickers []*Ticker
}

// NewFrameScheduler creates a scheduler reading time from clock.
// A nil clock means SystemClock.
func NewFrameScheduler(clock Clock) *FrameScheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &FrameScheduler{clock: clock}
}

// Every registers fn to run each interval, first one interval from now.
// Non-positive intervals fall back to TickInterval.
func (s *FrameScheduler) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = TickInterval
	}
	t := &Ticker{
		interval: interval,
		callback: fn,
		next:     s.clock.Now().Add(interval),
		isActive: true,
	}
	s.tickers = append(s.tickers, t)
	return t
}

// Step fires every due callback and returns how many ran.
//
// A ticker that fell behind fires once per missed interval so time-based
// work stays paced to the clock. Tickers registered by a callback during
// Step are first considered on the next Step.
func (s *FrameScheduler) Step() int {
	now := s.clock.Now()
	pending := s.tickers[:len(s.tickers):len(s.tickers)]

	fired := 0
	for _, t := range pending {
		for t.isActive && !t.next.After(now) {
			t.next = t.next.Add(t.interval)
			t.fired++
			fired++
			if t.callback != nil {
				t.callback()
			}
		}
	}
	s.compact()
	return fired
}

// HasActive returns true if any ticker is still scheduled.
func (s *FrameScheduler) HasActive() bool {
	for _, t := range s.tickers {
		if t.isActive {
			return true
		}
	}
	return false
}

// Len returns the number of scheduled tickers.
func (s *FrameScheduler) Len() int {
	n := 0
	for _, t := range s.tickers {
		if t.isActive {
			n++
		}
	}
	return n
}

// NextDeadline returns the earliest pending deadline.
func (s *FrameScheduler) NextDeadline() (time.Time, bool) {
	var next time.Time
	found := false
	for _, t := range s.tickers {
		if !t.isActive {
			continue
		}
		if !found || t.next.Before(next) {
			next = t.next
			found = true
		}
	}
	return next, found
}

func (s *FrameScheduler) compact() {
	live := s.tickers[:0]
	for _, t := range s.tickers {
		if t.isActive {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tickers); i++ {
		s.tickers[i] = nil
	}
	s.tickers = live
}
