package analysis

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of a real signal using an
// iterative radix-2 Cooley-Tukey pass. len(data) must be a power of 2.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n == 0 {
		return nil
	}
	if n&(n-1) != 0 {
		panic("fft requires power of 2 length")
	}

	shift := 64 - uint(bits.TrailingZeros(uint(n)))
	out := make([]complex128, n)
	for i, v := range data {
		out[bits.Reverse(uint(i))>>shift] = complex(v, 0)
	}

	for size := 2; size <= n; size *= 2 {
		half := size / 2
		step := cmplx.Exp(complex(0, -2*math.Pi/float64(size)))
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				a := out[start+k]
				b := w * out[start+k+half]
				out[start+k] = a + b
				out[start+k+half] = a - b
				w *= step
			}
		}
	}

	return out
}

// PowerSpectrum returns the magnitude of each frequency bin up to the Nyquist
// limit.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}
