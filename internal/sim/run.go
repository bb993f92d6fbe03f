package sim

import (
	"fmt"

	"github.com/avasko/s2orbit/internal/orbit"
)

// Result holds the sampled output of a headless propagation.
type Result struct {
	Times     []float64
	Positions []orbit.Point
	Radii     []float64
	Speeds    []float64
}

// Steps returns the number of samples in the result.
func (r *Result) Steps() int { return len(r.Times) }

// Propagate advances the orbiter over the given duration in fixed steps and
// samples the state after every step, plus the initial state. Both arguments
// are simulated seconds; a non-positive step or a negative duration is a
// configuration error.
func Propagate(o *orbit.Orbiter, duration, step float64) (*Result, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %g", step)
	}
	if duration < 0 {
		return nil, fmt.Errorf("duration must be non-negative, got %g", duration)
	}

	n := int(duration / step)
	res := &Result{
		Times:     make([]float64, 0, n+1),
		Positions: make([]orbit.Point, 0, n+1),
		Radii:     make([]float64, 0, n+1),
		Speeds:    make([]float64, 0, n+1),
	}
	res.sample(o)
	for i := 0; i < n; i++ {
		o.Update(step)
		res.sample(o)
	}
	return res, nil
}

func (r *Result) sample(o *orbit.Orbiter) {
	r.Times = append(r.Times, o.Elapsed())
	r.Positions = append(r.Positions, o.Position())
	r.Radii = append(r.Radii, o.Radius())
	r.Speeds = append(r.Speeds, o.Speed())
}
