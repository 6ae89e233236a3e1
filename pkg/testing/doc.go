// Package testing provides test doubles and a page tester for muv.
//
// # Fakes
//
// FakeClock controls time for the frame scheduler and FakeObserver lets a
// test decide when a region becomes visible:
//
//	clk := muvtest.NewFakeClock()
//	sched := animation.NewFrameScheduler(clk)
//	obs := muvtest.NewFakeObserver()
//	counter, _ := widgets.NewCounter(widgets.AnimatedCounter{Target: 100}, obs, sched)
//	counter.Mount(region)
//
//	obs.Emit(0.6)
//	clk.AdvanceFrames(sched, animation.TickInterval, 75)
//
// # Page Testing
//
// Terminal page tests use terminaltest.PageTester from
// github.com/muv-academia/muv/pkg/terminal/terminaltest, which runs the app
// on a tcell simulation screen driven by a FakeClock.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import muvtest "github.com/muv-academia/muv/pkg/testing"
package testing
