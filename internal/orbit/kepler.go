package orbit

import "math"

const (
	keplerTolerance = 1e-8
	keplerMaxIter   = 100
)

// SolveKepler solves Kepler's equation E - e*sin(E) = M for the eccentric
// anomaly using Newton-Raphson iteration seeded with E0 = M.
//
// The boolean reports whether the iteration converged to within the
// tolerance before hitting the iteration cap. On non-convergence the last
// iterate is still returned.
func SolveKepler(meanAnomaly, eccentricity float64) (float64, bool) {
	E := meanAnomaly
	for i := 0; i < keplerMaxIter; i++ {
		next := E - (E-eccentricity*math.Sin(E)-meanAnomaly)/(1-eccentricity*math.Cos(E))
		if math.Abs(next-E) < keplerTolerance {
			return next, true
		}
		E = next
	}
	return E, false
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly using the
// half-angle form, which stays on the correct branch as E crosses pi.
func TrueAnomaly(eccentricAnomaly, eccentricity float64) float64 {
	half := eccentricAnomaly / 2
	return 2 * math.Atan2(
		math.Sqrt(1+eccentricity)*math.Sin(half),
		math.Sqrt(1-eccentricity)*math.Cos(half),
	)
}
