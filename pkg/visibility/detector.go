// Package visibility detects when a rendered region first becomes visible.
//
// A [Detector] binds one [Region] to an [Observer] and reports a single edge,
// the first time at least [Threshold] of the region's area lies inside the
// viewport. It never resets: scrolling the region away and back has no
// effect. When the host cannot observe intersections the detector degrades
// to never firing.
//
// [Viewport] is the Observer used by the terminal host.
package visibility

import (
	"errors"

	muverrors "github.com/muv-academia/muv/pkg/errors"
)

// Threshold is the minimum intersection ratio that counts as visible.
const Threshold = 0.5

// ErrUnsupported is returned by observers that cannot observe intersections
// in the current host.
var ErrUnsupported = errors.New("visibility: intersection observation unsupported")

// Region is a renderable area whose visibility can be tracked.
type Region interface {
	Bounds() Rect
}

// RegionFunc adapts a function to Region.
type RegionFunc func() Rect

// Bounds calls f.
func (f RegionFunc) Bounds() Rect { return f() }

// Observer reports intersection ratios of regions against a viewport.
type Observer interface {
	// Observe starts reporting the intersection ratio of region to fn.
	Observe(region Region, fn func(ratio float64)) (Subscription, error)
}

// Subscription cancels an observation.
type Subscription interface {
	// Unsubscribe stops delivery. It is idempotent and no callback runs
	// after it returns.
	Unsubscribe()
}

// Detector reports, once, that its region became visible.
//
// A Detector is owned by a single host loop and is not safe for concurrent
// use.
type Detector struct {
	observer Observer
	region   Region
	sub      Subscription

	attached bool
	visible  bool
	disposed bool

	handlers []func()
}

// NewDetector creates a detector using observer. A nil observer is allowed
// and means the host cannot observe: the detector will never fire.
func NewDetector(observer Observer) *Detector {
	return &Detector{observer: observer}
}

// OnVisible registers fn to run on the visibility edge. Handlers registered
// after the edge fired are never called; check HasBeenVisible instead.
func (d *Detector) OnVisible(fn func()) {
	if fn == nil || d.disposed || d.visible {
		return
	}
	d.handlers = append(d.handlers, fn)
}

// Attach begins observing region. Re-attaching while attached is a no-op,
// as is attaching after the edge fired or after Dispose.
func (d *Detector) Attach(region Region) {
	if d.attached || d.visible || d.disposed || region == nil {
		return
	}
	d.attached = true
	d.region = region

	if d.observer == nil {
		d.degrade(ErrUnsupported)
		return
	}
	sub, err := d.observer.Observe(region, d.onIntersect)
	if err != nil {
		d.degrade(err)
		return
	}
	if d.visible || d.disposed {
		// The observer fired synchronously and the edge already released
		// the observation.
		if sub != nil {
			sub.Unsubscribe()
		}
		return
	}
	d.sub = sub
}

// degrade leaves the detector attached but permanently invisible.
func (d *Detector) degrade(err error) {
	muverrors.Report(&muverrors.Error{
		Op:   "visibility.Detector.Attach",
		Kind: muverrors.KindVisibility,
		Err:  err,
	})
}

func (d *Detector) onIntersect(ratio float64) {
	if d.visible || d.disposed {
		return
	}
	if ratio < Threshold {
		return
	}
	d.visible = true
	d.release()

	handlers := d.handlers
	d.handlers = nil
	for _, fn := range handlers {
		fn()
	}
}

func (d *Detector) release() {
	if d.sub != nil {
		d.sub.Unsubscribe()
		d.sub = nil
	}
}

// HasBeenVisible reports whether the edge fired.
func (d *Detector) HasBeenVisible() bool {
	return d.visible
}

// Attached reports whether Attach was called.
func (d *Detector) Attached() bool {
	return d.attached
}

// Observing reports whether an observation is live.
func (d *Detector) Observing() bool {
	return d.sub != nil
}

// Dispose cancels the observation whether or not the edge fired.
func (d *Detector) Dispose() {
	d.release()
	d.disposed = true
	d.handlers = nil
}
