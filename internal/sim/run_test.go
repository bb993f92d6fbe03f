package sim

import (
	"testing"

	"github.com/avasko/s2orbit/internal/orbit"
)

func TestPropagateSampleCount(t *testing.T) {
	ctrl := testController(t)
	res, err := Propagate(ctrl.Orbiter(), 10*86400, 86400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Steps() != 11 {
		t.Errorf("expected 11 samples, got %d", res.Steps())
	}
	if res.Times[0] != 0 {
		t.Errorf("first sample should be at t=0, got %g", res.Times[0])
	}
	if res.Times[10] != 10*86400 {
		t.Errorf("last sample at %g, want %g", res.Times[10], 10*86400.0)
	}
}

func TestPropagateRadiiWithinApsides(t *testing.T) {
	ctrl := testController(t)
	o := ctrl.Orbiter()
	el := o.Elements()
	res, err := Propagate(o, el.Period, el.Period/500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	peri, apo := el.Perihelion(), el.Aphelion()
	for i, r := range res.Radii {
		if r < peri*(1-1e-9) || r > apo*(1+1e-9) {
			t.Fatalf("sample %d radius %g outside [%g, %g]", i, r, peri, apo)
		}
	}
}

func TestPropagateMatchesOrbiter(t *testing.T) {
	consts := orbit.Physical()
	el, err := orbit.NewElements(120*consts.AU, 0.884, 16*365.25*86400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := orbit.NewCentralBody(orbit.SagAStarMass, consts)

	res, err := Propagate(orbit.NewOrbiter(el, body), 5*86400, 86400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref := orbit.NewOrbiter(el, body)
	ref.Update(5 * 86400)
	last := res.Positions[res.Steps()-1]
	if last != ref.Position() {
		t.Errorf("final position %+v differs from direct update %+v", last, ref.Position())
	}
}

func TestPropagateRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name           string
		duration, step float64
	}{
		{"zero step", 86400, 0},
		{"negative step", 86400, -3600},
		{"negative duration", -86400, 3600},
	}
	for _, tt := range tests {
		ctrl := testController(t)
		if _, err := Propagate(ctrl.Orbiter(), tt.duration, tt.step); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
