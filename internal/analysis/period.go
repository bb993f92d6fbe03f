package analysis

// EstimatePeriod recovers the dominant period of a uniformly sampled signal,
// in the same time unit as dt. The signal is truncated to a power-of-2 length
// and mean-centered before the transform so the DC bin stays empty. Returns 0
// when no periodic component stands out.
func EstimatePeriod(signal []float64, dt float64) float64 {
	n := 1
	for n*2 <= len(signal) {
		n *= 2
	}
	if n < 4 {
		return 0
	}

	mean := 0.0
	for i := 0; i < n; i++ {
		mean += signal[i]
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i := 0; i < n; i++ {
		centered[i] = signal[i] - mean
	}

	ps := PowerSpectrum(centered)

	maxPower, maxIdx := 0.0, 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > maxPower {
			maxPower, maxIdx = ps[k], k
		}
	}
	if maxIdx == 0 {
		return 0
	}

	return float64(n) * dt / float64(maxIdx)
}
