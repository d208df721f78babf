package simdfft

import (
	"math"
	"math/cmplx"
)

// Window selects an analysis window applied before a forward transform, to
// reduce spectral leakage from a finite, non-periodic sample buffer.
type Window int

const (
	Rectangular Window = iota
	Hanning
	Hamming
	Blackman
)

// windowCoefficients returns the n gain samples for window, shared by both
// the complex128 and complex64 appliers so the per-sample formula lives in
// exactly one place.
func windowCoefficients(n int, window Window) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1.0
		return w
	}
	for i := 0; i < n; i++ {
		switch window {
		case Rectangular:
			w[i] = 1.0
		case Hanning:
			w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		case Hamming:
			w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		case Blackman:
			w[i] = 0.42 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1)) +
				0.08*math.Cos(4*math.Pi*float64(i)/float64(n-1))
		default:
			w[i] = 1.0
		}
	}
	return w
}

// ApplyWindow multiplies x in place by the named window and returns x.
func ApplyWindow(x []complex128, window Window) []complex128 {
	for i, w := range windowCoefficients(len(x), window) {
		x[i] = complex(real(x[i])*w, imag(x[i])*w)
	}
	return x
}

// ApplyWindow64 is ApplyWindow for an Instance's single-precision buffer.
func ApplyWindow64(x []complex64, window Window) []complex64 {
	for i, w := range windowCoefficients(len(x), window) {
		wf := float32(w)
		x[i] = complex(real(x[i])*wf, imag(x[i])*wf)
	}
	return x
}

// PowerSpectrumPrecision returns |X[k]|^2 for each bin of a double-precision
// forward-transform result.
func PowerSpectrumPrecision(x []complex128) []float64 {
	result := make([]float64, len(x))
	for i, v := range x {
		m := cmplx.Abs(v)
		result[i] = m * m
	}
	return result
}

// PowerSpectrum is PowerSpectrumPrecision for a single-precision result.
func PowerSpectrum(x []complex64) []float32 {
	result := make([]float32, len(x))
	for i, v := range x {
		result[i] = real(v)*real(v) + imag(v)*imag(v)
	}
	return result
}
