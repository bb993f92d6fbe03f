package orbit

import (
	"fmt"
	"math"
)

// Elements describes the shape and timing of a closed Keplerian orbit.
// Immutable after construction; derived quantities are computed once.
type Elements struct {
	SemiMajor    float64 // a, meters
	Eccentricity float64 // e, unitless, 0 <= e < 1
	Period       float64 // P, seconds

	semiMinor float64
	focalDist float64
}

// NewElements validates and constructs an element set. Violations are
// configuration errors: a non-elliptical eccentricity or a non-positive
// axis/period cannot produce a bound orbit.
func NewElements(semiMajor, eccentricity, period float64) (Elements, error) {
	if semiMajor <= 0 {
		return Elements{}, fmt.Errorf("semi-major axis must be positive, got %g", semiMajor)
	}
	if eccentricity < 0 || eccentricity >= 1 {
		return Elements{}, fmt.Errorf("eccentricity must be in [0, 1), got %g", eccentricity)
	}
	if period <= 0 {
		return Elements{}, fmt.Errorf("period must be positive, got %g", period)
	}

	el := Elements{
		SemiMajor:    semiMajor,
		Eccentricity: eccentricity,
		Period:       period,
	}
	el.semiMinor = semiMajor * math.Sqrt(1-eccentricity*eccentricity)
	el.focalDist = math.Sqrt(semiMajor*semiMajor - el.semiMinor*el.semiMinor)
	return el, nil
}

// SemiMinor returns b = a*sqrt(1-e^2).
func (el Elements) SemiMinor() float64 { return el.semiMinor }

// FocalDistance returns the center-to-focus distance sqrt(a^2 - b^2).
func (el Elements) FocalDistance() float64 { return el.focalDist }

// Perihelion returns the minimum focus distance a(1-e).
func (el Elements) Perihelion() float64 { return el.SemiMajor * (1 - el.Eccentricity) }

// Aphelion returns the maximum focus distance a(1+e).
func (el Elements) Aphelion() float64 { return el.SemiMajor * (1 + el.Eccentricity) }

// Radius returns the focus distance at true anomaly nu.
func (el Elements) Radius(nu float64) float64 {
	e := el.Eccentricity
	return el.SemiMajor * (1 - e*e) / (1 + e*math.Cos(nu))
}
