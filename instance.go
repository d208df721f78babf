package simdfft

// instance.go implements the lifecycle and buffer-access surface of
// spec.md S3/S6: a single Instance owns every buffer a transform touches,
// allocated once at Create and never again (spec.md S5 "Allocation").
// This re-expresses the source's "one flat memory, four documented
// offsets" calling convention (spec.md S9) as four separately owned,
// disjoint slices.

// Precision selects which concrete numeric type an Instance operates on.
type Precision int

const (
	Float64 Precision = iota
	Float32
)

func (p Precision) String() string {
	if p == Float32 {
		return "float32"
	}
	return "float64"
}

const (
	minN = 4
	maxSupportedN = 4096
)

// Instance is a single-precision-typed FFT engine sized for transforms up
// to maxN. It is not safe for concurrent use: per spec.md S5, one Instance
// owns its buffers exclusively for the duration of every transform, and
// callers wanting concurrency must use separate Instances.
type Instance struct {
	precision Precision
	maxN      int

	// Double-precision complex path.
	c128primary   []complex128
	c128secondary []complex128
	twiddle64     *TwiddleTable64

	// Single-precision complex path.
	c64primary   []complex64
	c64secondary []complex64
	twiddle32    *TwiddleTable32 // also carries the rfft rotation table

	// Single-precision real-FFT pack/unpack scratch (spec.md S1: rfft is
	// single-precision only).
	rfftPack32 []complex64 // pair-packed scratch, size maxN/2

	// Bit-reversal permutations for every power-of-two size in [4, maxN],
	// built once here so Precompute never allocates.
	perms map[int][]int
}

// Create allocates a new Instance for the given precision and maximum
// transform size. maxN must be a power of two in [4, 4096].
func Create(precision Precision, maxN int) (*Instance, error) {
	if precision != Float32 && precision != Float64 {
		return nil, &ConfigurationError{Field: "precision", Got: int(precision), Min: int(Float64), Max: int(Float32)}
	}
	if !IsPow2(maxN) || maxN < minN || maxN > maxSupportedN {
		return nil, &ConfigurationError{Field: "maxN", Got: maxN, Min: minN, Max: maxSupportedN}
	}

	inst := &Instance{precision: precision, maxN: maxN}

	inst.perms = make(map[int][]int)
	for n := minN; n <= maxN; n <<= 1 {
		inst.perms[n] = permutationIndex(n)
	}

	switch precision {
	case Float64:
		inst.c128primary = make([]complex128, maxN)
		inst.c128secondary = make([]complex128, maxN)
		inst.twiddle64 = newTwiddleTable64(maxN)
	case Float32:
		inst.c64primary = make([]complex64, maxN)
		inst.c64secondary = make([]complex64, maxN)
		inst.twiddle32 = newTwiddleTable32(maxN)
		inst.rfftPack32 = make([]complex64, maxN/2)
	}
	return inst, nil
}

// Precision returns the precision this Instance was created with.
func (inst *Instance) Precision() Precision { return inst.precision }

// MaxN returns the maximum transform size this Instance supports.
func (inst *Instance) MaxN() int { return inst.maxN }

// SIMDLevel reports the widest vector capability detected for this
// process (spec.md S4.2/S4.4), e.g. "avx2", "avx", "sse2" or "scalar".
// Every level currently drives the same portable kernel (DESIGN.md); this
// is informational, for callers reporting what a build is running on.
func (inst *Instance) SIMDLevel() string { return detectedSIMDLevel.String() }

// Buffer64 returns the primary complex128 sample buffer, a contiguous run
// of MaxN complex samples. Valid only for a Float64 Instance.
func (inst *Instance) Buffer64() []complex128 {
	return inst.c128primary
}

// Buffer32 returns the primary complex64 sample buffer, a contiguous run
// of MaxN complex samples. Valid only for a Float32 Instance.
func (inst *Instance) Buffer32() []complex64 {
	return inst.c64primary
}

// GetReal32 and SetReal32 access scalar position i (0 <= i < MaxN) of the
// primary buffer reinterpreted as real float32 samples, for use with
// RFFT/IRFFT. They alias the same storage as Buffer32 (re, im, re, im,
// ...): scalar i lives in the real lane of complex entry i/2 when i is
// even, the imaginary lane when i is odd. Callers should use the real
// view or the complex view per call, never both at once, exactly as
// spec.md S3 describes the sample buffer.
func (inst *Instance) GetReal32(i int) float32 {
	c := inst.c64primary[i/2]
	if i%2 == 0 {
		return real(c)
	}
	return imag(c)
}

func (inst *Instance) SetReal32(i int, v float32) {
	c := inst.c64primary[i/2]
	if i%2 == 0 {
		inst.c64primary[i/2] = complex(v, imag(c))
	} else {
		inst.c64primary[i/2] = complex(real(c), v)
	}
}

// CopyRealIn32 writes x (length <= MaxN) into the real view of the
// primary buffer starting at scalar 0.
func (inst *Instance) CopyRealIn32(x []float32) {
	for i, v := range x {
		inst.SetReal32(i, v)
	}
}

// CopyRealOut32 reads n scalars back out of the real view of the primary
// buffer into dst.
func (inst *Instance) CopyRealOut32(dst []float32, n int) {
	for i := 0; i < n; i++ {
		dst[i] = inst.GetReal32(i)
	}
}

func validatePow2Size(op string, n, lo, hi int) error {
	if !IsPow2(n) || n < lo || n > hi {
		return &InvalidSizeError{Op: op, N: n, Min: lo, Max: hi}
	}
	return nil
}

// Precompute fills the twiddle table for size N (spec.md S6
// precompute_twiddles). N must be a power of two in [4, MaxN]. Must be
// called before any FFT/IFFT call for that N, and before RFFT/IRFFT of
// size 2N.
func (inst *Instance) Precompute(n int) error {
	if err := validatePow2Size("Precompute", n, minN, inst.maxN); err != nil {
		return err
	}
	switch inst.precision {
	case Float64:
		inst.twiddle64.set(n)
	case Float32:
		inst.twiddle32.set(n)
	}
	return nil
}

// PrecomputeRfft fills the rfft rotation table for size N (spec.md S6
// precompute_rfft_twiddles). N must be a power of two in [8, MaxN] with
// N/2 also a power of two >= 4. Must be called before RFFT/IRFFT(N), in
// addition to Precompute(N/2) for the inner complex transform.
func (inst *Instance) PrecomputeRfft(n int) error {
	if !IsPow2(n) || n < 8 || n > inst.maxN || !IsPow2(n/2) || n/2 < 4 {
		return &InvalidSizeError{Op: "PrecomputeRfft", N: n, Min: 8, Max: inst.maxN, Note: "N/2 must be a power of two >= 4"}
	}
	if inst.precision != Float32 {
		return &ConfigurationError{Field: "precision", Got: int(inst.precision), Min: int(Float32), Max: int(Float32)}
	}
	inst.twiddle32.setRfft(n)
	return nil
}
