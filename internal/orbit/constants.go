package orbit

// Constants holds the physical constants the engine depends on. They are
// injected into constructors rather than read from package globals so tests
// can run with synthetic bodies at arbitrary scales.
type Constants struct {
	G  float64 // gravitational constant, m^3 kg^-1 s^-2
	C  float64 // speed of light, m/s
	AU float64 // astronomical unit, m
}

// Physical returns the real-world constant values.
func Physical() Constants {
	return Constants{
		G:  6.67430e-11,
		C:  3e8,
		AU: 1.496e11,
	}
}

// SolarMass is the mass of the Sun in kg.
const SolarMass = 1.989e30

// SagAStarMass is the mass of Sagittarius A* in kg (4.154 million solar masses).
const SagAStarMass = 4.154e6 * SolarMass
