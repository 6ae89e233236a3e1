// Package terminaltest runs the terminal app against a tcell simulation
// screen and a fake clock.
//
//	func TestBadge(t *testing.T) {
//	    tester := terminaltest.NewPageTesterWithT(t)
//	    tester.PumpPage(content.Default())
//	    tester.App().ScrollToAnchor("soma")
//	    tester.PumpAndSettle(time.Second)
//
//	    if !tester.Contains("100+") {
//	        t.Error("expected finished badge")
//	    }
//	}
package terminaltest

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/muv-academia/muv/pkg/animation"
	"github.com/muv-academia/muv/pkg/content"
	"github.com/muv-academia/muv/pkg/terminal"
	muvtest "github.com/muv-academia/muv/pkg/testing"
)

const (
	// DefaultTestWidth is the default simulated terminal width in cells.
	DefaultTestWidth = 80
	// DefaultTestHeight is the default simulated terminal height in cells.
	DefaultTestHeight = 24
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations still running")

// PageTester runs a terminal.App against a tcell simulation screen and a
// fake clock, so pages can be scrolled and animated without a terminal.
type PageTester struct {
	screen tcell.SimulationScreen
	app    *terminal.App
	clock  *muvtest.FakeClock
	width  int
	height int
}

// NewPageTester creates a tester with the default screen size. Call
// Cleanup() when done, or use NewPageTesterWithT() instead.
func NewPageTester() *PageTester {
	return &PageTester{
		clock:  muvtest.NewFakeClock(),
		width:  DefaultTestWidth,
		height: DefaultTestHeight,
	}
}

// NewPageTesterWithT creates a tester that auto-cleans up via t.Cleanup().
func NewPageTesterWithT(t *testing.T) *PageTester {
	tester := NewPageTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup closes the app and finalizes the screen.
func (t *PageTester) Cleanup() {
	if t.app != nil {
		t.app.Close()
		t.app = nil
	}
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
}

// SetSize sets the screen size. Before PumpPage it only records the size;
// afterwards it resizes the running app.
func (t *PageTester) SetSize(width, height int) {
	t.width, t.height = width, height
	if t.screen == nil {
		return
	}
	t.screen.SetSize(width, height)
	t.app.HandleEvent(tcell.NewEventResize(width, height))
	t.app.Frame()
}

// Clock returns the fake clock for advancing time in tests.
func (t *PageTester) Clock() *muvtest.FakeClock {
	return t.clock
}

// PumpPage mounts page (replacing any previous app) and draws one frame.
func (t *PageTester) PumpPage(page *content.Page) error {
	t.Cleanup()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return err
	}
	screen.SetSize(t.width, t.height)

	app, err := terminal.NewApp(screen, page, terminal.Options{Clock: t.clock})
	if err != nil {
		screen.Fini()
		return err
	}
	t.screen = screen
	t.app = app
	t.app.Frame()
	return nil
}

// Pump advances the clock by one tick interval and runs one frame.
func (t *PageTester) Pump() int {
	t.clock.Advance(animation.TickInterval)
	return t.app.Frame()
}

// PumpFrames runs n frames and returns the number of tick callbacks fired.
func (t *PageTester) PumpFrames(n int) int {
	return t.clock.AdvanceFrames(appStepper{t.app}, animation.TickInterval, n)
}

// appStepper lets the fake clock drive whole frames of the app.
type appStepper struct{ app *terminal.App }

var _ muvtest.Stepper = appStepper{}

func (s appStepper) Step() int { return s.app.Frame() }

// PumpAndSettle runs frames until no tick is scheduled or timeout of fake
// time has passed.
func (t *PageTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		if !t.app.Scheduler().HasActive() {
			t.app.Frame()
			return nil
		}
		t.Pump()
		elapsed += animation.TickInterval
	}
	return ErrSettleTimeout
}

// App returns the running app.
func (t *PageTester) App() *terminal.App {
	return t.app
}

// Screen returns the simulation screen.
func (t *PageTester) Screen() tcell.SimulationScreen {
	return t.screen
}

// SendKey delivers a special key and draws a frame. It returns false when
// the app asked to quit.
func (t *PageTester) SendKey(key tcell.Key) bool {
	return t.send(tcell.NewEventKey(key, 0, tcell.ModNone))
}

// SendRune delivers a typed rune and draws a frame.
func (t *PageTester) SendRune(r rune) bool {
	return t.send(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

// SendText types every rune of s.
func (t *PageTester) SendText(s string) {
	for _, r := range s {
		t.SendRune(r)
	}
}

func (t *PageTester) send(ev tcell.Event) bool {
	ok := t.app.HandleEvent(ev)
	t.app.Frame()
	return ok
}

// Row returns the text on screen row y with trailing spaces trimmed.
func (t *PageTester) Row(y int) string {
	var b strings.Builder
	for x := 0; x < t.width; {
		r, _, _, w := t.screen.GetContent(x, y)
		b.WriteRune(r)
		x += max(w, 1)
	}
	return strings.TrimRight(b.String(), " ")
}

// Text returns the whole screen, one line per row.
func (t *PageTester) Text() string {
	rows := make([]string, t.height)
	for y := range rows {
		rows[y] = t.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Contains reports whether s appears anywhere on screen.
func (t *PageTester) Contains(s string) bool {
	return strings.Contains(t.Text(), s)
}
