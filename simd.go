package simdfft

// simd.go implements the vector complex-arithmetic primitives of spec.md
// S4.2 (C2): CMUL, ADD, SUB, CONJ and DEINTERLEAVE. On real SIMD-capable
// hardware these lower to a handful of vector instructions (multiply,
// shuffle, sign-mask XOR, fused multiply-add); here they are written as
// small, branch-free functions over fixed-width value types so that the
// Go compiler's own vectorizer/inliner has the best chance of doing the
// same, and so every call site states its intent (CMUL vs. a bare `*`)
// the way the codelet and Stockham layers need to reason about register
// pressure (spec.md S4.3's 16-live-value rule).
//
// Dual32 carries two complex64 lanes packed the way a 128-bit register
// would hold them: (re0, im0, re1, im1). It is the "dual-complex" unit
// spec.md S4.2 describes for single-precision stages.
type Dual32 struct {
	A, B complex64
}

// cmul64 multiplies two double-precision complex lanes: one complex per
// vector, matching the f64x2 register layout.
func cmul64(a, b complex128) complex128 {
	ar, ai := real(a), imag(a)
	br, bi := real(b), imag(b)
	return complex(ar*br-ai*bi, ar*bi+ai*br)
}

// cmul32 multiplies two single-precision complex lanes.
func cmul32(a, b complex64) complex64 {
	ar, ai := real(a), imag(a)
	br, bi := real(b), imag(b)
	return complex(ar*br-ai*bi, ar*bi+ai*br)
}

// cmulDual multiplies two dual-complex (f32x2) vectors lane-wise: one CMUL
// performs both butterflies' twiddle multiply, as spec.md S4.4's r=1 stage
// requires.
func cmulDual(a, b Dual32) Dual32 {
	return Dual32{A: cmul32(a.A, b.A), B: cmul32(a.B, b.B)}
}

func add64(a, b complex128) complex128 { return a + b }
func sub64(a, b complex128) complex128 { return a - b }
func add32(a, b complex64) complex64   { return a + b }
func sub32(a, b complex64) complex64   { return a - b }

func addDual(a, b Dual32) Dual32 { return Dual32{A: a.A + b.A, B: a.B + b.B} }
func subDual(a, b Dual32) Dual32 { return Dual32{A: a.A - b.A, B: a.B - b.B} }

// conj64/conj32 implement CONJ: XOR of the imaginary lane with the sign-bit
// mask, expressed here as scalar negation (identical result, no mask
// register needed in a pure-Go fallback).
func conj64(a complex128) complex128 { return complex(real(a), -imag(a)) }
func conj32(a complex64) complex64   { return complex(real(a), -imag(a)) }
func conjDual(a Dual32) Dual32       { return Dual32{A: conj32(a.A), B: conj32(a.B)} }

// mulJ64/mulJ32 multiply by +j (90 degree rotation), used by the N=4
// codelet and the ifft_4 specialization (spec.md S4.3, S4.7). Implemented
// as a lane swap + sign flip, never a general complex multiply.
func mulJ64(a complex128) complex128  { return complex(-imag(a), real(a)) }
func mulNegJ64(a complex128) complex128 { return complex(imag(a), -real(a)) }
func mulJ32(a complex64) complex64    { return complex(-imag(a), real(a)) }
func mulNegJ32(a complex64) complex64 { return complex(imag(a), -real(a)) }

// deinterleave64 implements DEINTERLEAVE for the split-format engine (S4.2):
// given v0=[a0,b0] and v1=[a1,b1] (one complex per vector, f64 layout) it
// returns ([a0,a1], [b0,b1]) as two pairs, i.e. it separates real and
// imaginary streams across a 2-wide window.
func deinterleave64(v0, v1 complex128) (reals, imags [2]float64) {
	reals = [2]float64{real(v0), real(v1)}
	imags = [2]float64{imag(v0), imag(v1)}
	return
}

// deinterleave32 is the dual-complex (4-wide) form: given two Dual32
// vectors holding [a0,b0,a1,b1] and [a2,b2,a3,b3], it returns
// [a0,a1,a2,a3] and [b0,b1,b2,b3].
func deinterleave32(v0, v1 Dual32) (reals, imags [4]float32) {
	reals = [4]float32{real(v0.A), real(v0.B), real(v1.A), real(v1.B)}
	imags = [4]float32{imag(v0.A), imag(v0.B), imag(v1.A), imag(v1.B)}
	return
}
