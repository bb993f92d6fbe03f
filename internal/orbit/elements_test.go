package orbit

import (
	"math"
	"testing"
)

const s2Period = 16 * 365.25 * 86400

func s2Elements(t *testing.T) Elements {
	t.Helper()
	c := Physical()
	el, err := NewElements(120*c.AU, 0.884, s2Period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return el
}

func TestNewElementsDerived(t *testing.T) {
	el := s2Elements(t)
	a := el.SemiMajor

	wantB := a * math.Sqrt(1-0.884*0.884)
	if math.Abs(el.SemiMinor()-wantB) > 1 {
		t.Errorf("semi-minor: got %g, want %g", el.SemiMinor(), wantB)
	}
	if el.SemiMinor() > el.SemiMajor {
		t.Error("semi-minor axis exceeds semi-major axis")
	}

	wantF := math.Sqrt(a*a - wantB*wantB)
	if math.Abs(el.FocalDistance()-wantF) > 1 {
		t.Errorf("focal distance: got %g, want %g", el.FocalDistance(), wantF)
	}
}

func TestNewElementsValidation(t *testing.T) {
	tests := []struct {
		name      string
		a, e, per float64
	}{
		{"zero semi-major", 0, 0.5, s2Period},
		{"negative semi-major", -1, 0.5, s2Period},
		{"negative eccentricity", 1e12, -0.1, s2Period},
		{"parabolic", 1e12, 1.0, s2Period},
		{"hyperbolic", 1e12, 1.5, s2Period},
		{"zero period", 1e12, 0.5, 0},
	}
	for _, tt := range tests {
		if _, err := NewElements(tt.a, tt.e, tt.per); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestElementsApsides(t *testing.T) {
	el := s2Elements(t)

	// Meter-level agreement is plenty at 1e13 m scales.
	if math.Abs(el.Perihelion()-el.SemiMajor*0.116) > 1 {
		t.Errorf("perihelion: got %g", el.Perihelion())
	}
	if math.Abs(el.Aphelion()-el.SemiMajor*1.884) > 1 {
		t.Errorf("aphelion: got %g", el.Aphelion())
	}

	// Radius at nu=0 and nu=pi must hit the apsides.
	if math.Abs(el.Radius(0)-el.Perihelion()) > 1 {
		t.Errorf("radius at nu=0: got %g, want %g", el.Radius(0), el.Perihelion())
	}
	if math.Abs(el.Radius(math.Pi)-el.Aphelion()) > 1 {
		t.Errorf("radius at nu=pi: got %g, want %g", el.Radius(math.Pi), el.Aphelion())
	}
}

func TestCentralBodyDerived(t *testing.T) {
	c := Physical()
	bh := NewCentralBody(SagAStarMass, c)

	wantMu := c.G * SagAStarMass
	if math.Abs(bh.Mu()-wantMu)/wantMu > 1e-12 {
		t.Errorf("mu: got %g, want %g", bh.Mu(), wantMu)
	}

	wantRs := 2 * c.G * SagAStarMass / (c.C * c.C)
	if math.Abs(bh.SchwarzschildRadius()-wantRs)/wantRs > 1e-12 {
		t.Errorf("schwarzschild radius: got %g, want %g", bh.SchwarzschildRadius(), wantRs)
	}

	// Sgr A* horizon is roughly 0.08 AU; sanity-check the order of magnitude.
	rsAU := bh.SchwarzschildRadius() / c.AU
	if rsAU < 0.05 || rsAU > 0.15 {
		t.Errorf("schwarzschild radius %g AU outside expected range", rsAU)
	}
}
