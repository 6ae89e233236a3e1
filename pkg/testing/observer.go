package testing

import (
	"github.com/muv-academia/muv/pkg/visibility"
)

// FakeObserver is a visibility.Observer whose intersection ratios are pushed
// by the test with Emit.
type FakeObserver struct {
	// Unsupported makes Observe fail with visibility.ErrUnsupported.
	Unsupported bool

	subs       []*fakeSubscription
	observed   int
	unobserved int
}

type fakeSubscription struct {
	owner  *FakeObserver
	region visibility.Region
	fn     func(float64)
	active bool
}

func (s *fakeSubscription) Unsubscribe() {
	if !s.active {
		return
	}
	s.active = false
	s.owner.unobserved++
}

// NewFakeObserver returns an observer with no subscriptions.
func NewFakeObserver() *FakeObserver {
	return &FakeObserver{}
}

// Observe records the subscription. It never fires on its own.
func (o *FakeObserver) Observe(region visibility.Region, fn func(ratio float64)) (visibility.Subscription, error) {
	if o.Unsupported {
		return nil, visibility.ErrUnsupported
	}
	s := &fakeSubscription{owner: o, region: region, fn: fn, active: true}
	o.subs = append(o.subs, s)
	o.observed++
	return s, nil
}

// Emit delivers ratio to every active subscription.
func (o *FakeObserver) Emit(ratio float64) {
	for _, s := range append([]*fakeSubscription(nil), o.subs...) {
		if s.active {
			s.fn(ratio)
		}
	}
}

// Active returns the number of live subscriptions.
func (o *FakeObserver) Active() int {
	n := 0
	for _, s := range o.subs {
		if s.active {
			n++
		}
	}
	return n
}

// Observed returns how many times Observe succeeded.
func (o *FakeObserver) Observed() int { return o.observed }

// Unobserved returns how many subscriptions were cancelled.
func (o *FakeObserver) Unobserved() int { return o.unobserved }
