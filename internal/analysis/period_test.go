package analysis

import (
	"math"
	"testing"
)

func TestEstimatePeriodSine(t *testing.T) {
	// 4 full cycles over 1024 samples, period = 256 samples
	n, dt := 1024, 0.5
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = 3 + math.Sin(2*math.Pi*4*float64(i)/float64(n))
	}

	got := EstimatePeriod(signal, dt)
	want := 256 * dt
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected period %g, got %g", want, got)
	}
}

func TestEstimatePeriodIgnoresOffset(t *testing.T) {
	n := 512
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		v := math.Cos(2 * math.Pi * 8 * float64(i) / float64(n))
		a[i] = v
		b[i] = v + 1e6
	}

	if pa, pb := EstimatePeriod(a, 1), EstimatePeriod(b, 1); pa != pb {
		t.Errorf("offset changed the estimate: %g vs %g", pa, pb)
	}
}

func TestEstimatePeriodTooShort(t *testing.T) {
	if got := EstimatePeriod([]float64{1, 2, 3}, 1); got != 0 {
		t.Errorf("expected 0 for short signal, got %g", got)
	}
}

func TestPowerSpectrumPeakBin(t *testing.T) {
	n := 256
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 16 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(signal)
	maxIdx := 0
	for k := range ps {
		if ps[k] > ps[maxIdx] {
			maxIdx = k
		}
	}
	if maxIdx != 16 {
		t.Errorf("expected peak at bin 16, got %d", maxIdx)
	}
}
