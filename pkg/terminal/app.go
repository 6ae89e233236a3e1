package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/muv-academia/muv/pkg/animation"
	"github.com/muv-academia/muv/pkg/content"
	muverrors "github.com/muv-academia/muv/pkg/errors"
	"github.com/muv-academia/muv/pkg/log"
	"github.com/muv-academia/muv/pkg/visibility"
	"github.com/muv-academia/muv/pkg/widgets"
)

// headerRows is the height of the fixed header above the document.
const headerRows = 2

// Options configures an App.
type Options struct {
	// Clock drives the frame scheduler. Nil uses animation.SystemClock.
	Clock animation.Clock
	// Duration overrides every badge's count-up length when positive.
	Duration time.Duration
	// Logger receives app events. Nil uses log.Component("terminal").
	Logger *zerolog.Logger
}

// App is the landing page running in a terminal. All methods must be called
// from the goroutine that calls Run.
type App struct {
	screen tcell.Screen
	opts   Options
	logger zerolog.Logger

	page     *content.Page
	doc      *Document
	sched    *animation.FrameScheduler
	viewport *visibility.Viewport
	counters []*widgets.Counter
	unsubs   []func()
	menu     *widgets.NavMenu
	form     *widgets.ContactForm

	width, height int
	offset        int
	status        string
	dirty         bool
	closed        bool
}

// NewApp builds an App drawing on screen, which must already be
// initialized.
func NewApp(screen tcell.Screen, page *content.Page, opts Options) (*App, error) {
	if opts.Clock == nil {
		opts.Clock = animation.SystemClock
	}
	logger := log.Component("terminal")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	a := &App{
		screen:   screen,
		opts:     opts,
		logger:   logger,
		sched:    animation.NewFrameScheduler(opts.Clock),
		viewport: visibility.NewViewport(visibility.Rect{}),
	}
	a.width, a.height = screen.Size()
	if err := a.load(page); err != nil {
		return nil, err
	}
	return a, nil
}

// load lays page out and mounts one counter per stat.
func (a *App) load(page *content.Page) error {
	if err := page.Validate(); err != nil {
		return muverrors.E("terminal.App.load", muverrors.KindContent, err)
	}
	a.page = page
	a.doc = Layout(page, a.width)
	a.menu = widgets.NewNavMenu(page.Nav)
	a.form = widgets.NewContactForm(page.Contact.Form, page.Modalities())
	a.offset = min(a.offset, a.maxOffset())
	a.syncViewport()

	for i, slot := range a.doc.Badges {
		cfg := widgets.AnimatedCounter{
			Target:   slot.Stat.Target,
			Duration: time.Duration(slot.Stat.DurationMs) * time.Millisecond,
			Caption:  slot.Stat.Label,
		}
		if a.opts.Duration > 0 {
			cfg.Duration = a.opts.Duration
		}
		c, err := widgets.NewCounter(cfg, a.viewport, a.sched)
		if err != nil {
			a.unmountAll()
			return muverrors.E("terminal.App.load", muverrors.KindContent, err)
		}
		a.unsubs = append(a.unsubs, c.OnChange(a.invalidate))
		a.counters = append(a.counters, c)
		c.Mount(visibility.RegionFunc(func() visibility.Rect {
			return a.badgeRect(i)
		}))
	}
	a.dirty = true
	a.logger.Debug().
		Int("lines", len(a.doc.Lines)).
		Int("counters", len(a.counters)).
		Msg("page laid out")
	return nil
}

func (a *App) badgeRect(i int) visibility.Rect {
	if i >= len(a.doc.Badges) {
		return visibility.Rect{}
	}
	return a.doc.Badges[i].Rect
}

func (a *App) unmountAll() {
	for _, unsub := range a.unsubs {
		unsub()
	}
	for _, c := range a.counters {
		c.Unmount()
	}
	a.unsubs = nil
	a.counters = nil
}

func (a *App) invalidate() {
	a.dirty = true
}

// Reload replaces the page. Every mounted counter is torn down first, so no
// tick from the old page fires afterwards. The scroll position is kept when
// it still fits. On error the old page stays active.
func (a *App) Reload(page *content.Page) error {
	if err := page.Validate(); err != nil {
		return muverrors.E("terminal.App.Reload", muverrors.KindContent, err)
	}
	a.unmountAll()
	if err := a.load(page); err != nil {
		return err
	}
	a.status = "conteúdo recarregado"
	a.logger.Info().Msg("content reloaded")
	return nil
}

// Close unmounts every counter. It does not finalize the screen.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.unmountAll()
}

func (a *App) viewRows() int {
	return max(a.height-headerRows, 1)
}

func (a *App) maxOffset() int {
	return max(len(a.doc.Lines)-a.viewRows(), 0)
}

func (a *App) syncViewport() {
	a.viewport.SetBounds(visibility.Rect{X: 0, Y: a.offset, W: a.width, H: a.viewRows()})
}

// ScrollTo moves the document offset to row, clamped to the document.
func (a *App) ScrollTo(row int) {
	row = max(0, min(row, a.maxOffset()))
	if row == a.offset {
		return
	}
	a.offset = row
	a.dirty = true
	a.syncViewport()
}

// ScrollBy scrolls by n rows.
func (a *App) ScrollBy(n int) {
	a.ScrollTo(a.offset + n)
}

// ScrollToAnchor scrolls so the named section starts at the top.
func (a *App) ScrollToAnchor(anchor string) bool {
	row, ok := a.doc.Anchors[anchor]
	if !ok {
		return false
	}
	a.ScrollTo(row)
	return true
}

func (a *App) resize() {
	w, h := a.screen.Size()
	if w == a.width && h == a.height {
		return
	}
	a.width, a.height = w, h
	a.doc = Layout(a.page, w)
	a.offset = min(a.offset, a.maxOffset())
	a.syncViewport()
	a.screen.Sync()
	a.dirty = true
}

// HandleEvent applies one terminal event. It returns false when the app
// should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize()
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	a.dirty = true
	if _, ok := a.form.Focused(); ok {
		return a.handleFormKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if a.menu.IsOpen() {
			a.menu.Close()
			return true
		}
		return false
	case tcell.KeyUp:
		a.ScrollBy(-1)
	case tcell.KeyDown:
		a.ScrollBy(1)
	case tcell.KeyPgUp:
		a.ScrollBy(-(a.viewRows() - 1))
	case tcell.KeyPgDn:
		a.ScrollBy(a.viewRows() - 1)
	case tcell.KeyHome:
		a.ScrollTo(0)
	case tcell.KeyEnd:
		a.ScrollTo(a.maxOffset())
	case tcell.KeyTab:
		a.focusForm(widgets.FieldName)
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	if a.menu.IsOpen() && r >= '1' && r <= '9' {
		if anchor, ok := a.menu.Select(int(r - '1')); ok {
			a.ScrollToAnchor(anchor)
		}
		return true
	}
	switch r {
	case 'q':
		return false
	case 'm':
		a.menu.Toggle()
	case 'j':
		a.ScrollBy(1)
	case 'k':
		a.ScrollBy(-1)
	case ' ':
		a.ScrollBy(a.viewRows() - 1)
	case 'g':
		a.ScrollTo(0)
	case 'G':
		a.ScrollTo(a.maxOffset())
	}
	return true
}

func (a *App) focusForm(field widgets.FormField) {
	a.menu.Close()
	a.form.Focus(field)
	if a.doc.FormLine >= 0 {
		row := a.doc.FormLine + 2*int(field)
		if row < a.offset || row >= a.offset+a.viewRows() {
			a.ScrollTo(row - a.viewRows()/2)
		}
	}
}

func (a *App) handleFormKey(ev *tcell.EventKey) bool {
	field, _ := a.form.Focused()
	switch ev.Key() {
	case tcell.KeyEscape:
		a.form.Blur()
	case tcell.KeyTab:
		a.form.Next()
	case tcell.KeyBacktab:
		a.form.Prev()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.form.Backspace()
	case tcell.KeyLeft:
		if field == widgets.FieldModality {
			a.form.CycleOption(-1)
		}
	case tcell.KeyRight:
		if field == widgets.FieldModality {
			a.form.CycleOption(1)
		}
	case tcell.KeyEnter:
		if !a.form.Submit().Complete() {
			a.status = "preencha todos os campos"
			return true
		}
		a.status = "dados anotados, fale conosco pelo WhatsApp"
		a.form.Reset()
		return true
	case tcell.KeyRune:
		if field == widgets.FieldModality && ev.Rune() == ' ' {
			a.form.CycleOption(1)
			break
		}
		a.form.Input(ev.Rune())
	}
	if field, ok := a.form.Focused(); ok {
		a.focusForm(field)
	}
	return true
}

// Frame advances the scheduler and redraws when something changed. It
// returns the number of tick callbacks that ran.
func (a *App) Frame() int {
	fired := a.sched.Step()
	if a.dirty {
		a.draw()
		a.dirty = false
	}
	return fired
}

// Run reads terminal events and drives frames at animation.TickInterval
// until ctx is done, the user quits or the screen stops delivering events.
// Pages received on reloads replace the current one.
func (a *App) Run(ctx context.Context, reloads <-chan *content.Page) (err error) {
	defer muverrors.RecoverWithCallback("terminal.App.Run", func(r any) {
		err = muverrors.E("terminal.App.Run", muverrors.KindPanic, fmt.Errorf("%v", r))
	})

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(animation.TickInterval)
	defer ticker.Stop()

	a.Frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
		case page := <-reloads:
			if err := a.Reload(page); err != nil {
				muverrors.ReportError("terminal.App.Reload", muverrors.KindContent, err)
				a.status = "conteúdo inválido, mantendo versão anterior"
				a.dirty = true
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}

// Offset returns the first visible document row.
func (a *App) Offset() int { return a.offset }

// Document returns the current layout.
func (a *App) Document() *Document { return a.doc }

// Counters returns the mounted badge counters in stat order.
func (a *App) Counters() []*widgets.Counter { return a.counters }

// Menu returns the navigation menu.
func (a *App) Menu() *widgets.NavMenu { return a.menu }

// Form returns the contact form.
func (a *App) Form() *widgets.ContactForm { return a.form }

// Status returns the last status message.
func (a *App) Status() string { return a.status }

// Scheduler returns the frame scheduler.
func (a *App) Scheduler() *animation.FrameScheduler { return a.sched }
