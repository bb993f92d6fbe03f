package orbit

// CentralBody is the mass at the coordinate origin. For Sagittarius A* the
// Schwarzschild radius gives the event-horizon size used by the display.
type CentralBody struct {
	Mass float64 // kg

	consts Constants
	mu     float64
	rs     float64
}

// NewCentralBody derives the gravitational parameter and Schwarzschild radius
// from the injected constants.
func NewCentralBody(mass float64, c Constants) CentralBody {
	return CentralBody{
		Mass:   mass,
		consts: c,
		mu:     c.G * mass,
		rs:     2 * c.G * mass / (c.C * c.C),
	}
}

// Constants returns the constant set the body was built with.
func (b CentralBody) Constants() Constants { return b.consts }

// Mu returns the standard gravitational parameter G*M in m^3/s^2.
func (b CentralBody) Mu() float64 { return b.mu }

// SchwarzschildRadius returns 2GM/c^2 in meters.
func (b CentralBody) SchwarzschildRadius() float64 { return b.rs }
