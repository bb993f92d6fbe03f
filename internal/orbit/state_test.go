package orbit

import (
	"math"
	"testing"
)

func s2Orbiter(t *testing.T) *Orbiter {
	t.Helper()
	c := Physical()
	el, err := NewElements(120*c.AU, 0.884, s2Period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewOrbiter(el, NewCentralBody(SagAStarMass, c))
}

func TestOrbiterStartsAtPerihelion(t *testing.T) {
	c := Physical()
	o := s2Orbiter(t)

	// At t=0: M=0, E=0, nu=0, r=a(1-e) on the +x axis.
	wantR := 120 * c.AU * (1 - 0.884)
	pos := o.Position()

	if math.Abs(pos.X-wantR) > 1 {
		t.Errorf("expected x=%g at perihelion, got %g", wantR, pos.X)
	}
	if math.Abs(pos.Y) > 1 {
		t.Errorf("expected y=0 at perihelion, got %g", pos.Y)
	}

	// About 13.9 AU from the focus.
	rAU := o.Radius() / c.AU
	if math.Abs(rAU-13.92) > 0.01 {
		t.Errorf("perihelion radius: got %.3f AU, want ~13.92 AU", rAU)
	}
}

func TestOrbiterRadiusBounds(t *testing.T) {
	o := s2Orbiter(t)
	el := o.Elements()

	// Sweep more than a full orbit in uneven steps; the focus distance must
	// stay between perihelion and aphelion throughout. Allow a relative
	// epsilon for float roundoff at the apsides.
	step := el.Period / 733
	for i := 0; i < 1500; i++ {
		o.Update(step)
		r := o.Radius()
		if r < el.Perihelion()*(1-1e-9) || r > el.Aphelion()*(1+1e-9) {
			t.Fatalf("step %d: radius %g outside [%g, %g]", i, r, el.Perihelion(), el.Aphelion())
		}
	}
}

func TestOrbiterPeriodicity(t *testing.T) {
	o := s2Orbiter(t)
	start := o.Position()

	// Advance exactly one period in 360 equal steps.
	step := o.Elements().Period / 360
	for i := 0; i < 360; i++ {
		o.Update(step)
	}

	end := o.Position()
	tol := o.Elements().SemiMajor * 1e-6
	if math.Abs(end.X-start.X) > tol || math.Abs(end.Y-start.Y) > tol {
		t.Errorf("position not periodic: start (%g, %g), end (%g, %g)",
			start.X, start.Y, end.X, end.Y)
	}
}

func TestOrbiterZeroDtIdempotent(t *testing.T) {
	o := s2Orbiter(t)
	o.Update(1e6)

	pos, speed, elapsed := o.Position(), o.Speed(), o.Elapsed()
	o.Update(0)

	if o.Position() != pos {
		t.Error("position changed on dt=0 update")
	}
	if o.Speed() != speed {
		t.Error("speed changed on dt=0 update")
	}
	if o.Elapsed() != elapsed {
		t.Error("elapsed time changed on dt=0 update")
	}
}

func TestOrbiterTrailCapacity(t *testing.T) {
	o := s2Orbiter(t)

	step := o.Elements().Period / 1000
	for i := 0; i < 700; i++ {
		o.Update(step)
	}

	if o.Trail().Len() != TrailCapacity {
		t.Errorf("expected trail len %d, got %d", TrailCapacity, o.Trail().Len())
	}

	// The newest trail entry must be the current position.
	pts := o.Trail().Points()
	if pts[len(pts)-1] != o.Position() {
		t.Error("last trail point does not match current position")
	}
}

func TestOrbiterSpeedVisViva(t *testing.T) {
	o := s2Orbiter(t)
	el := o.Elements()
	mu := o.Central().Mu()

	// Speed at perihelion (t=0) from vis-viva directly.
	rp := el.Perihelion()
	want := math.Sqrt(mu * (2/rp - 1/el.SemiMajor))
	if math.Abs(o.Speed()-want)/want > 1e-9 {
		t.Errorf("perihelion speed: got %g, want %g", o.Speed(), want)
	}

	// S2 peaks at a few thousand km/s near perihelion; sanity bounds.
	kms := o.Speed() / 1000
	if kms < 1000 || kms > 10000 {
		t.Errorf("perihelion speed %.0f km/s outside plausible range", kms)
	}

	// Aphelion is the slowest point on the orbit.
	o.Update(el.Period / 2)
	if o.Speed() >= want {
		t.Errorf("aphelion speed %g not below perihelion speed %g", o.Speed(), want)
	}
}

func TestOrbiterReset(t *testing.T) {
	o := s2Orbiter(t)
	start := o.Position()

	for i := 0; i < 10; i++ {
		o.Update(1e7)
	}
	o.Reset()

	if o.Elapsed() != 0 {
		t.Errorf("expected elapsed 0 after reset, got %g", o.Elapsed())
	}
	if o.Position() != start {
		t.Error("position not restored after reset")
	}
	if o.Trail().Len() != 1 {
		t.Errorf("expected trail reseeded with one point, got %d", o.Trail().Len())
	}
}
