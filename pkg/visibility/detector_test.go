package visibility_test

import (
	"testing"

	muverrors "github.com/muv-academia/muv/pkg/errors"
	muvtest "github.com/muv-academia/muv/pkg/testing"
	"github.com/muv-academia/muv/pkg/visibility"
)

func badge() visibility.Region {
	return visibility.RegionFunc(func() visibility.Rect { return visibility.Rect{W: 4, H: 1} })
}

func TestDetectorAttachIsIdempotent(t *testing.T) {
	obs := muvtest.NewFakeObserver()
	d := visibility.NewDetector(obs)
	d.Attach(badge())
	d.Attach(badge())

	if obs.Observed() != 1 {
		t.Errorf("Observed = %d, want 1", obs.Observed())
	}
}

func TestDetectorFiresOnce(t *testing.T) {
	obs := muvtest.NewFakeObserver()
	d := visibility.NewDetector(obs)
	fired := 0
	d.OnVisible(func() { fired++ })
	d.Attach(badge())

	obs.Emit(0.2)
	if fired != 0 {
		t.Fatal("below threshold should not fire")
	}
	obs.Emit(0.8)
	obs.Emit(0)
	obs.Emit(1)

	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if obs.Active() != 0 {
		t.Errorf("Active = %d, want the observation released", obs.Active())
	}
}

func TestDetectorDisposeCancelsObservation(t *testing.T) {
	obs := muvtest.NewFakeObserver()
	d := visibility.NewDetector(obs)
	d.Attach(badge())
	d.Dispose()
	d.Dispose()

	if obs.Active() != 0 || obs.Unobserved() != 1 {
		t.Errorf("Active=%d Unobserved=%d, want 0/1", obs.Active(), obs.Unobserved())
	}
}

func TestDetectorDegradesWhenUnsupported(t *testing.T) {
	var reported []*muverrors.Error
	old := muverrors.DefaultHandler
	muverrors.SetHandler(&captureHandler{errs: &reported})
	defer muverrors.SetHandler(old)

	obs := muvtest.NewFakeObserver()
	obs.Unsupported = true
	d := visibility.NewDetector(obs)
	fired := false
	d.OnVisible(func() { fired = true })
	d.Attach(badge())
	obs.Emit(1)

	if fired || d.HasBeenVisible() {
		t.Error("unsupported observer should never fire")
	}
	if len(reported) != 1 || reported[0].Kind != muverrors.KindVisibility {
		t.Fatalf("reported = %v, want one visibility error", reported)
	}
	if !muverrors.Is(reported[0], visibility.ErrUnsupported) {
		t.Errorf("reported error %v should wrap ErrUnsupported", reported[0])
	}
}

func TestDetectorNilObserver(t *testing.T) {
	old := muverrors.DefaultHandler
	muverrors.SetHandler(&captureHandler{errs: new([]*muverrors.Error)})
	defer muverrors.SetHandler(old)

	d := visibility.NewDetector(nil)
	d.Attach(badge())
	if d.HasBeenVisible() || d.Observing() {
		t.Error("nil observer should leave the detector idle")
	}
	d.Dispose()
}

type captureHandler struct {
	errs *[]*muverrors.Error
}

func (h *captureHandler) HandleError(err *muverrors.Error) { *h.errs = append(*h.errs, err) }

func (h *captureHandler) HandlePanic(*muverrors.PanicError) {}
