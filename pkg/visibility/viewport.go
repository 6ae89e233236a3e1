package visibility

// Viewport is an Observer that measures regions against a movable viewport
// rectangle.
//
// Like a browser intersection observer, it reports a region's ratio once
// when the region is observed and again whenever the ratio changes after
// SetBounds or Refresh. A Viewport belongs to one host and is not safe for
// concurrent use.
type Viewport struct {
	bounds Rect
	subs   []*viewportSubscription
}

type viewportSubscription struct {
	viewport *Viewport
	region   Region
	fn       func(float64)
	last     float64
	active   bool
}

func (s *viewportSubscription) Unsubscribe() {
	if !s.active {
		return
	}
	s.active = false
	s.viewport.compact()
}

// NewViewport creates a viewport covering bounds.
func NewViewport(bounds Rect) *Viewport {
	return &Viewport{bounds: bounds}
}

// Observe subscribes fn to region's intersection ratio and delivers the
// current ratio immediately.
func (v *Viewport) Observe(region Region, fn func(ratio float64)) (Subscription, error) {
	if region == nil || fn == nil {
		return nil, ErrUnsupported
	}
	s := &viewportSubscription{viewport: v, region: region, fn: fn, active: true}
	v.subs = append(v.subs, s)
	s.last = region.Bounds().IntersectionRatio(v.bounds)
	fn(s.last)
	return s, nil
}

// Bounds returns the viewport rectangle.
func (v *Viewport) Bounds() Rect {
	return v.bounds
}

// SetBounds moves or resizes the viewport and notifies regions whose ratio
// changed.
func (v *Viewport) SetBounds(r Rect) {
	v.bounds = r
	v.Refresh()
}

// Refresh re-measures every observed region, for hosts whose regions moved.
func (v *Viewport) Refresh() {
	for _, s := range append([]*viewportSubscription(nil), v.subs...) {
		if !s.active {
			continue
		}
		ratio := s.region.Bounds().IntersectionRatio(v.bounds)
		if ratio == s.last {
			continue
		}
		s.last = ratio
		s.fn(ratio)
	}
}

// Len returns the number of live subscriptions.
func (v *Viewport) Len() int {
	return len(v.subs)
}

func (v *Viewport) compact() {
	live := v.subs[:0]
	for _, s := range v.subs {
		if s.active {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(v.subs); i++ {
		v.subs[i] = nil
	}
	v.subs = live
}
