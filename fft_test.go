package simdfft

import (
	"math"
	"math/cmplx"
	"testing"

	ktyefft "github.com/ktye/fft"
	dspfft "github.com/mjibson/go-dsp/fft"
	gonumfft "gonum.org/v1/gonum/dsp/fourier"
	scientificfft "scientificgo.org/fft"
)

// slowFFT is the simplest and slowest FFT transform, used as an
// independent oracle for the round-trip and reference-comparison tests.
func slowFFT(x []complex128) []complex128 {
	n := len(x)
	y := make([]complex128, n)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			phi := -2.0 * math.Pi * float64(k*i) / float64(n)
			s, c := math.Sincos(phi)
			y[k] += x[i] * complex(c, s)
		}
	}
	return y
}

func newPrecomputed(t *testing.T, n int) *Instance {
	t.Helper()
	inst, err := Create(Float64, n)
	if err != nil {
		t.Fatalf("Create(Float64, %d): %v", n, err)
	}
	if err := inst.Precompute(n); err != nil {
		t.Fatalf("Precompute(%d): %v", n, err)
	}
	return inst
}

func TestCreateRejectsBadConfiguration(t *testing.T) {
	_, err := Create(Precision(99), 64)
	checkIsConfigurationError(t, "Create(bad precision)", err)
	_, err = Create(Float64, 17)
	checkIsConfigurationError(t, "Create(Float64, 17)", err)
	_, err = Create(Float64, 2)
	checkIsConfigurationError(t, "Create(Float64, 2)", err)
}

func TestFFTRejectsUnprecomputedSize(t *testing.T) {
	inst, err := Create(Float64, 64)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := inst.Precompute(32); err != nil {
		t.Fatalf("Precompute(32): %v", err)
	}
	checkIsNotPrecomputedError(t, "FFT(64) without Precompute(64)", inst.FFT(64))
}

func TestFFTRejectsNonPow2(t *testing.T) {
	inst := newPrecomputed(t, 64)
	checkIsInvalidSizeError(t, "FFT(17)", inst.FFT(17))
}

// TestFFTAgainstSlowFFT is the reference-comparison property of spec.md
// S8: FFT(x) must agree with an independently-derived DFT for every power
// of two from 4 to 1024.
func TestFFTAgainstSlowFFT(t *testing.T) {
	for n := minN; n <= 1024; n <<= 1 {
		inst := newPrecomputed(t, n)
		x := complexRand(n)
		y1 := slowFFT(copyVector(x))
		copy(inst.Buffer64()[:n], x)
		if err := inst.FFT(n); err != nil {
			t.Fatalf("FFT(%d): %v", n, err)
		}
		y2 := inst.Buffer64()[:n]
		for i := 0; i < n; i++ {
			if e := cmplx.Abs(y1[i] - y2[i]); e > 1e-8 {
				t.Errorf("N=%d: slowFFT and FFT differ at %d: %v vs %v (diff=%v)", n, i, y1[i], y2[i], e)
			}
		}
	}
}

// TestFFTIFFTRoundTrip is the round-trip property of spec.md S8.1.
func TestFFTIFFTRoundTrip(t *testing.T) {
	for n := minN; n <= 2048; n <<= 1 {
		inst := newPrecomputed(t, n)
		x := complexRand(n)
		copy(inst.Buffer64()[:n], x)
		if err := inst.FFT(n); err != nil {
			t.Fatalf("FFT(%d): %v", n, err)
		}
		if err := inst.IFFT(n); err != nil {
			t.Fatalf("IFFT(%d): %v", n, err)
		}
		y := inst.Buffer64()[:n]
		for i := range x {
			if e := cmplx.Abs(x[i] - y[i]); e > 1e-8 {
				t.Errorf("N=%d: round trip differs at %d: %v vs %v", n, i, x[i], y[i])
			}
		}
	}
}

// TestLinearity is spec.md S8's linearity property: FFT(a*x+b*y) ==
// a*FFT(x) + b*FFT(y).
func TestLinearity(t *testing.T) {
	const n = 256
	inst := newPrecomputed(t, n)
	x := complexRand(n)
	y := complexRand(n)
	a, b := complex(1.5, -0.5), complex(-2.0, 1.0)

	combined := make([]complex128, n)
	for i := range x {
		combined[i] = a*x[i] + b*y[i]
	}
	copy(inst.Buffer64()[:n], combined)
	if err := inst.FFT(n); err != nil {
		t.Fatal(err)
	}
	fCombined := copyVector(inst.Buffer64()[:n])

	copy(inst.Buffer64()[:n], x)
	if err := inst.FFT(n); err != nil {
		t.Fatal(err)
	}
	fx := copyVector(inst.Buffer64()[:n])

	copy(inst.Buffer64()[:n], y)
	if err := inst.FFT(n); err != nil {
		t.Fatal(err)
	}
	fy := copyVector(inst.Buffer64()[:n])

	for i := 0; i < n; i++ {
		want := a*fx[i] + b*fy[i]
		if e := cmplx.Abs(want - fCombined[i]); e > 1e-8 {
			t.Errorf("linearity violated at %d: want %v, got %v (diff=%v)", i, want, fCombined[i], e)
		}
	}
}

// TestParseval checks Parseval's theorem: sum|x|^2 == (1/N) sum|X|^2.
func TestParseval(t *testing.T) {
	const n = 512
	inst := newPrecomputed(t, n)
	x := complexRand(n)
	var timeEnergy float64
	for _, v := range x {
		timeEnergy += cmplx.Abs(v) * cmplx.Abs(v)
	}
	copy(inst.Buffer64()[:n], x)
	if err := inst.FFT(n); err != nil {
		t.Fatal(err)
	}
	var freqEnergy float64
	for _, v := range inst.Buffer64()[:n] {
		freqEnergy += cmplx.Abs(v) * cmplx.Abs(v)
	}
	freqEnergy /= float64(n)
	if e := math.Abs(timeEnergy - freqEnergy); e > 1e-6*timeEnergy {
		t.Errorf("Parseval violated: time energy=%v, freq energy=%v, diff=%v", timeEnergy, freqEnergy, e)
	}
}

// TestShiftTheorem: a circular shift in time multiplies the spectrum by a
// linear phase ramp.
func TestShiftTheorem(t *testing.T) {
	const n = 128
	inst := newPrecomputed(t, n)
	x := complexRand(n)
	shifted := make([]complex128, n)
	for i := range x {
		shifted[(i+1)%n] = x[i]
	}

	copy(inst.Buffer64()[:n], x)
	if err := inst.FFT(n); err != nil {
		t.Fatal(err)
	}
	fx := copyVector(inst.Buffer64()[:n])

	copy(inst.Buffer64()[:n], shifted)
	if err := inst.FFT(n); err != nil {
		t.Fatal(err)
	}
	fShifted := inst.Buffer64()[:n]

	for k := 0; k < n; k++ {
		phase := -2.0 * math.Pi * float64(k) / float64(n)
		s, c := math.Sincos(phase)
		want := fx[k] * complex(c, s)
		if e := cmplx.Abs(want - fShifted[k]); e > 1e-8 {
			t.Errorf("shift theorem violated at bin %d: want %v, got %v (diff=%v)", k, want, fShifted[k], e)
		}
	}
}

func TestImpulseResponse(t *testing.T) {
	const n = 64
	inst := newPrecomputed(t, n)
	x := inst.Buffer64()[:n]
	for i := range x {
		x[i] = 0
	}
	x[0] = 1
	if err := inst.FFT(n); err != nil {
		t.Fatal(err)
	}
	for i, v := range x {
		if e := cmplx.Abs(v - 1); e > 1e-9 {
			t.Errorf("impulse FFT[%d] = %v, want 1 (diff=%v)", i, v, e)
		}
	}
}

func TestDCResponse(t *testing.T) {
	const n = 64
	inst := newPrecomputed(t, n)
	x := inst.Buffer64()[:n]
	for i := range x {
		x[i] = 1
	}
	if err := inst.FFT(n); err != nil {
		t.Fatal(err)
	}
	if e := cmplx.Abs(x[0] - complex(float64(n), 0)); e > 1e-7 {
		t.Errorf("DC FFT[0] = %v, want %v", x[0], n)
	}
	for i := 1; i < n; i++ {
		if e := cmplx.Abs(x[i]); e > 1e-7 {
			t.Errorf("DC FFT[%d] = %v, want 0", i, x[i])
		}
	}
}

// TestAgainstReferenceLibraries is spec.md S8's reference-comparison
// property: the output must agree with established independent FFT
// implementations (property 6).
func TestAgainstReferenceLibraries(t *testing.T) {
	for _, n := range []int{64, 256, 1024} {
		inst := newPrecomputed(t, n)
		x := complexRand(n)

		ktyeResult := copyVector(x)
		f, err := ktyefft.New(n)
		if err != nil {
			t.Fatalf("ktyefft.New(%d): %v", n, err)
		}
		f.Transform(ktyeResult)

		dspResult := dspfft.FFT(copyVector(x))

		gfft := gonumfft.NewCmplxFFT(n)
		gonumCoef := gfft.Coefficients(nil, copyVector(x))

		scientificResult := copyVector(x)
		scientificfft.Fft(scientificResult, false)

		copy(inst.Buffer64()[:n], x)
		if err := inst.FFT(n); err != nil {
			t.Fatalf("FFT(%d): %v", n, err)
		}
		ours := inst.Buffer64()[:n]

		for i := 0; i < n; i++ {
			if e := cmplx.Abs(ours[i] - ktyeResult[i]); e > 1e-6 {
				t.Errorf("N=%d vs ktye/fft differ at %d: diff=%v", n, i, e)
			}
			if e := cmplx.Abs(ours[i] - dspResult[i]); e > 1e-6 {
				t.Errorf("N=%d vs go-dsp differ at %d: diff=%v", n, i, e)
			}
			if e := cmplx.Abs(ours[i] - gonumCoef[i]); e > 1e-6 {
				t.Errorf("N=%d vs gonum differ at %d: diff=%v", n, i, e)
			}
			if e := cmplx.Abs(ours[i] - scientificResult[i]); e > 1e-6 {
				t.Errorf("N=%d vs scientificgo differ at %d: diff=%v", n, i, e)
			}
		}
	}
}

func TestBitReversePermute(t *testing.T) {
	for n := minN; n <= 2048; n <<= 1 {
		perm := permutationIndex(n)
		x := complexRand(n)
		y := copyVector(x)
		bitReversePermute64(x, perm)
		for i := 0; i < n; i++ {
			if x[i] != y[perm[i]] {
				t.Errorf("N=%d: bit-reverse permute mismatch at %d", n, i)
			}
		}
	}
}
