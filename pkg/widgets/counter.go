package widgets

import (
	"strconv"
	"time"

	"github.com/muv-academia/muv/pkg/animation"
	"github.com/muv-academia/muv/pkg/visibility"
)

// AnimatedCounter describes a numeric badge that counts from 0 to Target the
// first time its region is at least half visible.
//
// Example:
//
//	widgets.AnimatedCounter{
//	    Target:  100,
//	    Caption: "Crianças atendidas",
//	}
type AnimatedCounter struct {
	// Target is the final count.
	Target int
	// Duration is the count-up length. Zero uses animation.DefaultCountUpDuration.
	Duration time.Duration
	// Suffix follows the number in Label. Empty means "+".
	Suffix string
	// Caption is the text shown under the number.
	Caption string
}

// Counter is a mounted AnimatedCounter. Each Counter owns its own detector
// and count-up; counters never share state.
type Counter struct {
	cfg      AnimatedCounter
	detector *visibility.Detector
	countUp  *animation.CountUp

	mounted   bool
	unmounted bool
}

// NewCounter builds a counter observed by observer and ticked by sched.
func NewCounter(cfg AnimatedCounter, observer visibility.Observer, sched animation.Scheduler) (*Counter, error) {
	countUp, err := animation.NewCountUp(cfg.Target, cfg.Duration, sched)
	if err != nil {
		return nil, err
	}
	c := &Counter{
		cfg:      cfg,
		detector: visibility.NewDetector(observer),
		countUp:  countUp,
	}
	c.detector.OnVisible(func() {
		c.countUp.Start()
	})
	return c, nil
}

// OnChange registers fn to run whenever the displayed value or status
// changes. Returns an unsubscribe function.
func (c *Counter) OnChange(fn func()) func() {
	offValue := c.countUp.AddListener(func(int) { fn() })
	offStatus := c.countUp.AddStatusListener(func(animation.CountUpStatus) { fn() })
	return func() {
		offValue()
		offStatus()
	}
}

// Mount binds the counter to region and starts observing it. Mounting twice
// is a no-op; a counter cannot be mounted again after Unmount.
func (c *Counter) Mount(region visibility.Region) {
	if c.mounted || c.unmounted {
		return
	}
	c.mounted = true
	c.detector.Attach(region)
}

// Unmount cancels the observation and any pending tick.
func (c *Counter) Unmount() {
	if c.unmounted {
		return
	}
	c.unmounted = true
	c.detector.Dispose()
	c.countUp.Dispose()
}

// Value returns the number currently displayed.
func (c *Counter) Value() int {
	return c.countUp.Value()
}

// Label returns the rendered number, e.g. "100+".
func (c *Counter) Label() string {
	suffix := c.cfg.Suffix
	if suffix == "" {
		suffix = "+"
	}
	return strconv.Itoa(c.countUp.Value()) + suffix
}

// Caption returns the text shown under the number.
func (c *Counter) Caption() string {
	return c.cfg.Caption
}

// Status returns the count-up status.
func (c *Counter) Status() animation.CountUpStatus {
	return c.countUp.Status()
}

// Visible reports whether the region has been seen.
func (c *Counter) Visible() bool {
	return c.detector.HasBeenVisible()
}

// Mounted reports whether the counter is mounted and not yet unmounted.
func (c *Counter) Mounted() bool {
	return c.mounted && !c.unmounted
}

// Config returns the configuration the counter was built from.
func (c *Counter) Config() AnimatedCounter {
	return c.cfg
}
