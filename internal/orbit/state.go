package orbit

import "math"

// TrailCapacity bounds the position history kept for drawing the orbit path.
const TrailCapacity = 500

// Orbiter advances a body along a Keplerian orbit. Position and speed are
// always derived from elapsed time through Kepler's equation, never set
// directly, so the kinematic state stays self-consistent between frames.
type Orbiter struct {
	elements Elements
	central  CentralBody

	elapsed  float64
	position Point
	speed    float64
	trail    *Trail
}

// NewOrbiter starts a body at elapsed time zero. The initial recompute puts
// it at perihelion on the +x axis.
func NewOrbiter(el Elements, central CentralBody) *Orbiter {
	o := &Orbiter{
		elements: el,
		central:  central,
		trail:    NewTrail(TrailCapacity),
	}
	o.recompute()
	o.trail.Push(o.position)
	return o
}

// Update advances simulated time by dt seconds and recomputes position and
// speed. dt = 0 recomputes in place without changing state.
func (o *Orbiter) Update(dt float64) {
	o.elapsed += dt
	o.recompute()
	o.trail.Push(o.position)
}

// recompute maps elapsed time to kinematic state. Elapsed time is wrapped by
// the period before the mean anomaly is formed, keeping M in [0, 2pi) no
// matter how long the simulation has run.
func (o *Orbiter) recompute() {
	el := o.elements
	M := 2 * math.Pi * math.Mod(o.elapsed, el.Period) / el.Period
	E, _ := SolveKepler(M, el.Eccentricity)
	nu := TrueAnomaly(E, el.Eccentricity)
	r := el.Radius(nu)

	o.position = Point{X: r * math.Cos(nu), Y: r * math.Sin(nu)}
	// vis-viva
	o.speed = math.Sqrt(o.central.Mu() * (2/r - 1/el.SemiMajor))
}

// Reset returns the body to elapsed time zero and clears the trail.
func (o *Orbiter) Reset() {
	o.elapsed = 0
	o.trail.Reset()
	o.recompute()
	o.trail.Push(o.position)
}

// Elapsed returns simulated seconds since the start of the run.
func (o *Orbiter) Elapsed() float64 { return o.elapsed }

// Position returns the current position, meters, focus at the origin.
func (o *Orbiter) Position() Point { return o.position }

// Radius returns the current distance from the central body in meters.
func (o *Orbiter) Radius() float64 {
	return math.Hypot(o.position.X, o.position.Y)
}

// Speed returns the current scalar orbital speed in m/s.
func (o *Orbiter) Speed() float64 { return o.speed }

// Trail returns the recent position history.
func (o *Orbiter) Trail() *Trail { return o.trail }

// Elements returns the orbit's element set.
func (o *Orbiter) Elements() Elements { return o.elements }

// Central returns the central body.
func (o *Orbiter) Central() CentralBody { return o.central }
