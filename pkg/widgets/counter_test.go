package widgets

import (
	"testing"
	"time"

	"github.com/muv-academia/muv/pkg/animation"
	muvtest "github.com/muv-academia/muv/pkg/testing"
	"github.com/muv-academia/muv/pkg/visibility"
)

type counterHarness struct {
	clock    *muvtest.FakeClock
	sched    *animation.FrameScheduler
	observer *muvtest.FakeObserver
	counter  *Counter
}

func newCounterHarness(t *testing.T, cfg AnimatedCounter) *counterHarness {
	t.Helper()
	h := &counterHarness{
		clock:    muvtest.NewFakeClock(),
		observer: muvtest.NewFakeObserver(),
	}
	h.sched = animation.NewFrameScheduler(h.clock)
	c, err := NewCounter(cfg, h.observer, h.sched)
	if err != nil {
		t.Fatalf("NewCounter: %v", err)
	}
	h.counter = c
	c.Mount(visibility.RegionFunc(func() visibility.Rect { return visibility.Rect{W: 4, H: 1} }))
	return h
}

func (h *counterHarness) frames(n int) int {
	return h.clock.AdvanceFrames(h.sched, animation.TickInterval, n)
}

func TestCounterStaysAtZeroUntilVisible(t *testing.T) {
	h := newCounterHarness(t, AnimatedCounter{Target: 100, Caption: "Crianças atendidas"})
	h.observer.Emit(0.3)
	h.frames(200)

	if h.counter.Label() != "0+" || h.counter.Status() != animation.CountUpIdle {
		t.Errorf("label=%q status=%v, want 0+/idle", h.counter.Label(), h.counter.Status())
	}
	if h.counter.Caption() != "Crianças atendidas" {
		t.Errorf("Caption = %q", h.counter.Caption())
	}
	if cfg := h.counter.Config(); cfg.Target != 100 || cfg.Caption != "Crianças atendidas" {
		t.Errorf("Config = %+v", cfg)
	}
}

func TestCounterCountsAfterVisibilityEdge(t *testing.T) {
	h := newCounterHarness(t, AnimatedCounter{Target: 100})
	changes := 0
	h.counter.OnChange(func() { changes++ })

	h.observer.Emit(0.5)
	if !h.counter.Visible() || h.counter.Status() != animation.CountUpRunning {
		t.Fatalf("visible=%v status=%v", h.counter.Visible(), h.counter.Status())
	}

	h.frames(37)
	if h.counter.Label() != "49+" {
		t.Errorf("Label at tick 37 = %q, want 49+", h.counter.Label())
	}
	h.frames(38)
	if h.counter.Label() != "100+" || h.counter.Status() != animation.CountUpComplete {
		t.Errorf("label=%q status=%v, want 100+/complete", h.counter.Label(), h.counter.Status())
	}
	if changes == 0 {
		t.Error("OnChange never fired")
	}
}

func TestCounterStartsOnceAcrossReentry(t *testing.T) {
	h := newCounterHarness(t, AnimatedCounter{Target: 100})
	h.observer.Emit(1)
	h.frames(10)
	h.observer.Emit(0)
	h.observer.Emit(1)

	if h.sched.Len() != 1 {
		t.Errorf("scheduled tickers = %d, want 1", h.sched.Len())
	}
	h.frames(100)
	if h.counter.Value() != 100 {
		t.Errorf("Value = %d, want 100", h.counter.Value())
	}
}

func TestCounterUnmountDuringRun(t *testing.T) {
	h := newCounterHarness(t, AnimatedCounter{Target: 100, Duration: 2 * time.Second})
	h.observer.Emit(1)
	h.frames(20)
	before := h.counter.Value()

	h.counter.Unmount()
	if fired := h.frames(200); fired != 0 {
		t.Errorf("%d ticks fired after Unmount", fired)
	}
	if h.counter.Value() != before {
		t.Errorf("value changed after Unmount: %d -> %d", before, h.counter.Value())
	}
	if h.observer.Active() != 0 {
		t.Errorf("observer subscriptions = %d, want 0", h.observer.Active())
	}
	if h.counter.Mounted() {
		t.Error("Mounted should be false after Unmount")
	}
}

func TestCounterUnmountBeforeVisible(t *testing.T) {
	h := newCounterHarness(t, AnimatedCounter{Target: 100})
	h.counter.Unmount()
	h.counter.Unmount()
	h.observer.Emit(1)

	if h.observer.Unobserved() != 1 || h.counter.Visible() {
		t.Errorf("unobserved=%d visible=%v", h.observer.Unobserved(), h.counter.Visible())
	}
	h.counter.Mount(visibility.RegionFunc(func() visibility.Rect { return visibility.Rect{} }))
	if h.observer.Observed() != 1 {
		t.Error("remounting an unmounted counter should be a no-op")
	}
}

func TestCounterZeroTarget(t *testing.T) {
	h := newCounterHarness(t, AnimatedCounter{Target: 0, Suffix: " alunos"})
	h.observer.Emit(1)
	if h.counter.Label() != "0 alunos" || h.counter.Status() != animation.CountUpComplete {
		t.Errorf("label=%q status=%v", h.counter.Label(), h.counter.Status())
	}
}

func TestCountersAreIndependent(t *testing.T) {
	clk := muvtest.NewFakeClock()
	sched := animation.NewFrameScheduler(clk)
	obsA, obsB := muvtest.NewFakeObserver(), muvtest.NewFakeObserver()
	a, _ := NewCounter(AnimatedCounter{Target: 10}, obsA, sched)
	b, _ := NewCounter(AnimatedCounter{Target: 20}, obsB, sched)
	region := visibility.RegionFunc(func() visibility.Rect { return visibility.Rect{W: 1, H: 1} })
	a.Mount(region)
	b.Mount(region)

	obsA.Emit(1)
	clk.AdvanceFrames(sched, animation.TickInterval, 100)
	if a.Value() != 10 || b.Value() != 0 {
		t.Errorf("a=%d b=%d, want 10/0", a.Value(), b.Value())
	}
}

func TestNewCounterRejectsNegativeTarget(t *testing.T) {
	if _, err := NewCounter(AnimatedCounter{Target: -1}, nil, animation.NewFrameScheduler(nil)); err == nil {
		t.Error("expected error for negative target")
	}
}
