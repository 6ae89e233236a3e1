package visibility

import "testing"

func TestViewportObserveDeliversInitialRatio(t *testing.T) {
	v := NewViewport(Rect{W: 80, H: 24})
	var got []float64
	_, err := v.Observe(RegionFunc(func() Rect { return Rect{Y: 10, W: 10, H: 2} }), func(r float64) {
		got = append(got, r)
	})
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("initial delivery = %v, want [1]", got)
	}
}

func TestViewportSetBoundsNotifiesOnChange(t *testing.T) {
	v := NewViewport(Rect{W: 80, H: 10})
	region := Rect{Y: 20, W: 10, H: 2}
	var got []float64
	v.Observe(RegionFunc(func() Rect { return region }), func(r float64) {
		got = append(got, r)
	})

	v.SetBounds(Rect{Y: 5, W: 80, H: 10})  // still out of view
	v.SetBounds(Rect{Y: 11, W: 80, H: 10}) // one row visible
	v.SetBounds(Rect{Y: 15, W: 80, H: 10}) // fully visible
	v.SetBounds(Rect{Y: 15, W: 80, H: 10}) // unchanged

	want := []float64{0, 0.5, 1}
	if len(got) != len(want) {
		t.Fatalf("deliveries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestViewportUnsubscribe(t *testing.T) {
	v := NewViewport(Rect{W: 80, H: 10})
	calls := 0
	sub, _ := v.Observe(RegionFunc(func() Rect { return Rect{Y: 30, W: 1, H: 1} }), func(float64) {
		calls++
	})
	sub.Unsubscribe()
	sub.Unsubscribe()

	v.SetBounds(Rect{Y: 25, W: 80, H: 10})
	if calls != 1 {
		t.Errorf("calls = %d, want only the initial delivery", calls)
	}
	if v.Len() != 0 {
		t.Errorf("Len = %d, want 0", v.Len())
	}
}

func TestViewportRejectsNilRegion(t *testing.T) {
	v := NewViewport(Rect{W: 1, H: 1})
	if _, err := v.Observe(nil, func(float64) {}); err == nil {
		t.Error("expected error for nil region")
	}
}

func TestDetectorWithViewport(t *testing.T) {
	v := NewViewport(Rect{W: 80, H: 10})
	badge := Rect{Y: 30, W: 6, H: 2}
	d := NewDetector(v)
	fired := 0
	d.OnVisible(func() { fired++ })
	d.Attach(RegionFunc(func() Rect { return badge }))

	if d.HasBeenVisible() {
		t.Fatal("badge below the fold should not be visible")
	}

	v.SetBounds(Rect{Y: 21, W: 80, H: 10}) // 1 of 2 rows: exactly 0.5
	if !d.HasBeenVisible() || fired != 1 {
		t.Fatalf("expected edge at ratio 0.5, visible=%v fired=%d", d.HasBeenVisible(), fired)
	}
	if v.Len() != 0 {
		t.Errorf("detector should release its observation after the edge, Len = %d", v.Len())
	}

	v.SetBounds(Rect{Y: 0, W: 80, H: 10})
	v.SetBounds(Rect{Y: 25, W: 80, H: 10})
	if fired != 1 {
		t.Errorf("fired = %d after scrolling away and back, want 1", fired)
	}
}

func TestDetectorVisibleOnAttach(t *testing.T) {
	v := NewViewport(Rect{W: 80, H: 24})
	d := NewDetector(v)
	fired := 0
	d.OnVisible(func() { fired++ })
	d.Attach(RegionFunc(func() Rect { return Rect{Y: 2, W: 4, H: 1} }))

	if fired != 1 {
		t.Errorf("fired = %d, want 1 for a region visible at attach", fired)
	}
	if v.Len() != 0 || d.Observing() {
		t.Errorf("observation should be released, Len=%d observing=%v", v.Len(), d.Observing())
	}
}

func TestDetectorOnIntersectThreshold(t *testing.T) {
	d := NewDetector(nil)
	fired := 0
	d.OnVisible(func() { fired++ })

	d.onIntersect(0.49)
	if d.HasBeenVisible() {
		t.Fatal("0.49 is below threshold")
	}
	d.onIntersect(Threshold)
	d.onIntersect(1)
	d.onIntersect(0)
	if !d.HasBeenVisible() || fired != 1 {
		t.Errorf("visible=%v fired=%d, want true/1", d.HasBeenVisible(), fired)
	}
}

func TestDetectorDisposeBeforeEdge(t *testing.T) {
	v := NewViewport(Rect{W: 80, H: 10})
	d := NewDetector(v)
	fired := 0
	d.OnVisible(func() { fired++ })
	d.Attach(RegionFunc(func() Rect { return Rect{Y: 50, W: 4, H: 1} }))
	if v.Len() != 1 {
		t.Fatalf("Len = %d, want 1", v.Len())
	}

	d.Dispose()
	if v.Len() != 0 {
		t.Errorf("Dispose should cancel the observation, Len = %d", v.Len())
	}
	v.SetBounds(Rect{Y: 45, W: 80, H: 10})
	d.onIntersect(1)
	if fired != 0 || d.HasBeenVisible() {
		t.Error("no edge should fire after Dispose")
	}
}
