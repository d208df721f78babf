package simdfft

import (
	"fmt"
	"math"
	"math/cmplx"
)

// TwiddleTable64 holds the size-N complex twiddle factors W_N^k =
// exp(-2pi*i*k/N) for double-precision transforms. An Instance owns one,
// sized at Create for its MaxN and repopulated in place by Precompute so
// no allocation happens after Create (spec.md S5).
type TwiddleTable64 struct {
	n int
	w []complex128 // capacity maxN, valid prefix [0, n)
}

// TwiddleTable32 is the single-precision counterpart of TwiddleTable64. It
// additionally carries the rotation table the real-FFT pack/unpack layer
// (rfft.go) needs for whatever N PrecomputeRfft last set up.
type TwiddleTable32 struct {
	n       int
	w       []complex64 // capacity maxN, valid prefix [0, n)
	rfftN   int
	rfftRot []complex64 // capacity maxN/2, valid prefix [0, rfftN/2)
}

func newTwiddleTable64(maxN int) *TwiddleTable64 {
	return &TwiddleTable64{w: make([]complex128, maxN)}
}

func newTwiddleTable32(maxN int) *TwiddleTable32 {
	return &TwiddleTable32{w: make([]complex64, maxN), rfftRot: make([]complex64, maxN/2)}
}

// set repopulates the table for size n (n <= cap(t.w)).
func (t *TwiddleTable64) set(n int) {
	for k := 0; k < n; k++ {
		s, c := math.Sincos(-2.0 * math.Pi * float64(k) / float64(n))
		t.w[k] = complex(c, s)
	}
	t.n = n
}

func (t *TwiddleTable32) set(n int) {
	for k := 0; k < n; k++ {
		s, c := math.Sincos(-2.0 * math.Pi * float64(k) / float64(n))
		t.w[k] = complex(float32(c), float32(s))
	}
	t.n = n
}

// setRfft repopulates the rfft rotation table for rfft size n.
func (t *TwiddleTable32) setRfft(n int) {
	for k := 0; k < n/2; k++ {
		s, c := math.Sincos(-math.Pi * float64(k) / float64(n/2))
		t.rfftRot[k] = complex(float32(c), float32(s))
	}
	t.rfftN = n
}

// precomputeComplexTwiddles64 fills w[0:N) with W_N^k = exp(-2*pi*i*k/N).
// Exact trigonometric evaluation (host math library) per spec.md S4.1;
// entry 0 is guaranteed to be exactly (1, 0).
func precomputeComplexTwiddles64(n int) []complex128 {
	w := make([]complex128, n)
	w[0] = complex(1, 0)
	for k := 1; k < n; k++ {
		s, c := math.Sincos(-2.0 * math.Pi * float64(k) / float64(n))
		w[k] = complex(c, s)
	}
	return w
}

func precomputeComplexTwiddles32(n int) []complex64 {
	w := make([]complex64, n)
	w[0] = complex(float32(1), float32(0))
	for k := 1; k < n; k++ {
		s, c := math.Sincos(-2.0 * math.Pi * float64(k) / float64(n))
		w[k] = complex(float32(c), float32(s))
	}
	return w
}

// precomputeRfftTwiddles64 fills rot[0:N/2) with (cos(-pi*k/(N/2)), sin(-pi*k/(N/2))),
// used by the real-FFT pack/unpack layer (C6, C8).
func precomputeRfftTwiddles64(n int) []complex128 {
	half := n / 2
	rot := make([]complex128, half)
	rot[0] = complex(1, 0)
	for k := 1; k < half; k++ {
		s, c := math.Sincos(-math.Pi * float64(k) / float64(half))
		rot[k] = complex(c, s)
	}
	return rot
}

func precomputeRfftTwiddles32(n int) []complex64 {
	half := n / 2
	rot := make([]complex64, half)
	rot[0] = complex(float32(1), float32(0))
	for k := 1; k < half; k++ {
		s, c := math.Sincos(-math.Pi * float64(k) / float64(half))
		rot[k] = complex(float32(c), float32(s))
	}
	return rot
}

// Twiddle returns the k-th entry of the currently precomputed size-N
// twiddle table, W_N^k. Used by tests (spec.md S8 property 8) and by
// callers that want to inspect the table directly.
func (t *TwiddleTable64) Twiddle(k int) complex128 { return t.w[k] }

// N returns the size this table was last precomputed for.
func (t *TwiddleTable64) N() int { return t.n }

// Validate recomputes every entry from scratch and reports the first one
// that diverges from the stored value by more than tol, or nil if the
// table is internally consistent.
func (t *TwiddleTable64) Validate(tol float64) error {
	want := precomputeComplexTwiddles64(t.n)
	for k := range want {
		if e := cmplx.Abs(want[k] - t.w[k]); e > tol {
			return fmt.Errorf("twiddle table (N=%d) diverges at k=%d: got %v, want %v (diff=%v)", t.n, k, t.w[k], want[k], e)
		}
	}
	return nil
}

// Twiddle returns the k-th entry of the single-precision twiddle table.
func (t *TwiddleTable32) Twiddle(k int) complex64 { return t.w[k] }

// N returns the size this table was last precomputed for.
func (t *TwiddleTable32) N() int { return t.n }

// RfftRotation returns the k-th entry of the rfft rotation table.
func (t *TwiddleTable32) RfftRotation(k int) complex64 { return t.rfftRot[k] }

// RfftN returns the rfft size the rotation table was last precomputed for,
// or 0 if PrecomputeRfft has never been called.
func (t *TwiddleTable32) RfftN() int { return t.rfftN }

// Validate is Validate for the single-precision table, additionally
// checking the rfft rotation table when one has been populated.
func (t *TwiddleTable32) Validate(tol float64) error {
	want := precomputeComplexTwiddles32(t.n)
	for k := range want {
		if e := cmplx.Abs(complex128(want[k] - t.w[k])); e > tol {
			return fmt.Errorf("twiddle table (N=%d) diverges at k=%d: got %v, want %v (diff=%v)", t.n, k, t.w[k], want[k], e)
		}
	}
	if t.rfftN == 0 {
		return nil
	}
	wantRot := precomputeRfftTwiddles32(t.rfftN)
	for k := range wantRot {
		if e := cmplx.Abs(complex128(wantRot[k] - t.rfftRot[k])); e > tol {
			return fmt.Errorf("rfft rotation table (N=%d) diverges at k=%d: got %v, want %v (diff=%v)", t.rfftN, k, t.rfftRot[k], wantRot[k], e)
		}
	}
	return nil
}
