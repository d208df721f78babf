package simdfft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

func slowConvolve(x, y []complex128) []complex128 {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}
	r := make([]complex128, len(x)+len(y)-1)
	for i := 0; i < len(x); i++ {
		for j := 0; j < len(y); j++ {
			r[i+j] += x[i] * y[j]
		}
	}
	return r
}

func TestConvolve(t *testing.T) {
	for i := 0; i < 20; i++ {
		x := complexRand(i)
		for j := 0; j < 20; j++ {
			y := complexRand(j)
			r1 := slowConvolve(x, y)
			r2, err := Convolve(x, y)
			if err != nil {
				t.Fatalf("Convolve(%d, %d): %v", i, j, err)
			}
			if len(r1) != len(r2) {
				t.Fatalf("Convolve length: got %d, want %d", len(r2), len(r1))
			}
			for k := range r1 {
				if e := cmplx.Abs(r1[k] - r2[k]); e > 1e-7 {
					t.Errorf("Convolve(%d,%d)[%d]: got %v, want %v (diff=%v)", i, j, k, r2[k], r1[k], e)
				}
			}
		}
	}
}

func TestFastConvolve(t *testing.T) {
	if err := FastConvolve(nil, nil); err != nil {
		t.Errorf("FastConvolve(nil, nil) returned error: %v", err)
	}

	x := complexRand(4)
	y := complexRand(8)
	if err := FastConvolve(x, y); err == nil {
		t.Errorf("FastConvolve of mismatched lengths didn't return error")
	}

	for i := 1; i < 64; i++ {
		n := NextPow2(2 * i)
		if n < minN {
			n = minN
		}
		x := ZeroPad(complexRand(i), n)
		y := ZeroPad(complexRand(i), n)
		want := slowConvolve(x, y)
		if err := FastConvolve(x, y); err != nil {
			t.Fatalf("FastConvolve: %v", err)
		}
		for j := 0; j < 2*i-1; j++ {
			if e := cmplx.Abs(want[j] - x[j]); e > 1e-7 {
				t.Errorf("FastConvolve[%d]: got %v, want %v (diff=%v)", j, x[j], want[j], e)
			}
		}
		for _, v := range y {
			if v != 0 {
				t.Errorf("FastConvolve failed to erase y: got %v, want 0", v)
			}
		}
	}
}

func slowMultiConvolve(X [][]complex128) []complex128 {
	m := []complex128{1.0}
	for _, x := range X {
		m = slowConvolve(m, x)
	}
	return m
}

func TestMultiConvolve(t *testing.T) {
	x, err := MultiConvolve()
	if err != nil || len(x) != 0 {
		t.Errorf("MultiConvolve(): got %v, %v, want nil, nil", x, err)
	}

	for i := 1; i < 6; i++ {
		X := make([][]complex128, i)
		for j := 1; j < 6; j++ {
			errorThreshold := math.Pow(float64(j), float64(i-1)) * 1e-8
			for k := 0; k < i; k++ {
				X[k] = complexRand(rand.Intn(j) + 1)
			}
			r1 := slowMultiConvolve(X)
			r2, err := MultiConvolve(X...)
			if err != nil {
				t.Fatalf("MultiConvolve: %v", err)
			}
			if len(r1) != len(r2) {
				t.Fatalf("MultiConvolve length: got %d, want %d", len(r2), len(r1))
			}
			for k := range r1 {
				if e := cmplx.Abs(r1[k] - r2[k]); e > errorThreshold {
					t.Errorf("MultiConvolve[%d] i=%d j=%d: got %v, want %v (diff=%v)", k, i, j, r2[k], r1[k], e)
				}
			}
		}
	}
}

func TestFastMultiConvolve(t *testing.T) {
	if err := FastMultiConvolve(make([]complex128, 5), 4, false); err == nil {
		t.Errorf("FastMultiConvolve with N%%n != 0 didn't return error")
	}
	if err := FastMultiConvolve(make([]complex128, 4), 3, false); err == nil {
		t.Errorf("FastMultiConvolve with non-power-of-2 n didn't return error")
	}
	if err := FastMultiConvolve(make([]complex128, 12), 4, false); err == nil {
		t.Errorf("FastMultiConvolve with non-power-of-2 array count didn't return error")
	}

	for i := 1; i < 6; i++ {
		X1 := make([][]complex128, i)
		n := NextPow2(i)
		for j := 1; j < 6; j++ {
			errorThreshold := math.Pow(float64(j), float64(i-1)) * 1e-8
			m := NextPow2(2 * j)
			if m < minN {
				m = minN
			}
			X2 := make([]complex128, n*m)
			for k := 0; k < i; k++ {
				X1[k] = complexRand(j)
				copy(X2[m*k:m*(k+1)], X1[k])
			}
			for k := i; k < n; k++ {
				X2[m*k] = 1.0
			}
			X3 := make([]complex128, n*m)
			copy(X3, X2)

			r1 := slowMultiConvolve(X1)
			if err := FastMultiConvolve(X2, m, false); err != nil {
				t.Fatalf("FastMultiConvolve: %v", err)
			}
			if err := FastMultiConvolve(X3, m, true); err != nil {
				t.Fatalf("FastMultiConvolve (multithreaded): %v", err)
			}
			r2 := X2[:i*(j-1)+1]
			r3 := X3[:i*(j-1)+1]
			for k := range r1 {
				if e := cmplx.Abs(r1[k] - r2[k]); e > errorThreshold {
					t.Errorf("FastMultiConvolve[%d] i=%d j=%d: got %v, want %v (diff=%v)", k, i, j, r2[k], r1[k], e)
				}
				if e := cmplx.Abs(r2[k] - r3[k]); e > errorThreshold {
					t.Errorf("FastMultiConvolve multithread mismatch[%d]: got %v, want %v (diff=%v)", k, r3[k], r2[k], e)
				}
			}
		}
	}
}
