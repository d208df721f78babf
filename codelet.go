package simdfft

// codelet.go implements the small-N codelet layer (spec.md S4.3, C3): fully
// self-contained transforms for N in {4, 8, 16, 32, 64, 128}, in both DIT
// (natural-order in, natural-order out) and DIF (natural-order in,
// bit-reversed order out) forms.
//
// N=4 is the literal closed-form butterfly spec.md S4.3 gives:
//
//	y0 = x0+x1+x2+x3
//	y1 = x0 - j*x1 - x2 + j*x3
//	y2 = x0 - x1 + x2 - x3
//	y3 = x0 + j*x1 - x2 - j*x3
//
// N in {8,16,32,64,128} compose hierarchically out of the N=4 base case via
// the standard radix-2 Cooley-Tukey split (spec.md S4.3's "composed
// hierarchically, e.g. N=64 as four N=16 groups"), using fixed-size stack
// arrays rather than heap scratch so the codelet layer allocates nothing on
// the hot path. A real codeletgen run (cmd/codeletgen) would instead emit
// this same recursion fully inlined with literal twiddle constants; see
// DESIGN.md for why that output isn't hand-transcribed here.
const maxCodeletHalf = 64 // half of the largest codelet size, N=128

var codeletSizes = [5]int{8, 16, 32, 64, 128}

var codeletTwiddles64 = buildCodeletTwiddles64()
var codeletTwiddles32 = buildCodeletTwiddles32()

func buildCodeletTwiddles64() map[int][]complex128 {
	m := make(map[int][]complex128, len(codeletSizes))
	for _, n := range codeletSizes {
		full := precomputeComplexTwiddles64(n)
		m[n] = full[:n/2]
	}
	return m
}

func buildCodeletTwiddles32() map[int][]complex64 {
	m := make(map[int][]complex64, len(codeletSizes))
	for _, n := range codeletSizes {
		full := precomputeComplexTwiddles32(n)
		m[n] = full[:n/2]
	}
	return m
}

// --- N=4 base case --------------------------------------------------------

func codelet4DIT64(x []complex128) {
	x0, x1, x2, x3 := x[0], x[1], x[2], x[3]
	x[0] = x0 + x1 + x2 + x3
	x[1] = x0 - mulJ64(x1) - x2 + mulJ64(x3)
	x[2] = x0 - x1 + x2 - x3
	x[3] = x0 + mulJ64(x1) - x2 - mulJ64(x3)
}

// codelet4DIF64 runs the same butterfly as codelet4DIT64 but leaves the
// outputs in bit-reversed order (y0, y2, y1, y3), the order the DIF
// composition below relies on from its base case.
func codelet4DIF64(x []complex128) {
	codelet4DIT64(x)
	x[1], x[2] = x[2], x[1]
}

func codelet4DIT32(x []complex64) {
	x0, x1, x2, x3 := x[0], x[1], x[2], x[3]
	x[0] = x0 + x1 + x2 + x3
	x[1] = x0 - mulJ32(x1) - x2 + mulJ32(x3)
	x[2] = x0 - x1 + x2 - x3
	x[3] = x0 + mulJ32(x1) - x2 - mulJ32(x3)
}

func codelet4DIF32(x []complex64) {
	codelet4DIT32(x)
	x[1], x[2] = x[2], x[1]
}

// --- DIT composition (natural in, natural out), N in {8,16,32,64,128} ----

func ditCodelet64(n int, x []complex128) {
	if n == 4 {
		codelet4DIT64(x)
		return
	}
	half := n / 2
	var evenArr, oddArr [maxCodeletHalf]complex128
	even, odd := evenArr[:half], oddArr[:half]
	for k := 0; k < half; k++ {
		even[k] = x[2*k]
		odd[k] = x[2*k+1]
	}
	ditCodelet64(half, even)
	ditCodelet64(half, odd)
	w := codeletTwiddles64[n]
	for k := 0; k < half; k++ {
		t := cmul64(w[k], odd[k])
		x[k] = even[k] + t
		x[k+half] = even[k] - t
	}
}

func ditCodelet32(n int, x []complex64) {
	if n == 4 {
		codelet4DIT32(x)
		return
	}
	half := n / 2
	var evenArr, oddArr [maxCodeletHalf]complex64
	even, odd := evenArr[:half], oddArr[:half]
	for k := 0; k < half; k++ {
		even[k] = x[2*k]
		odd[k] = x[2*k+1]
	}
	ditCodelet32(half, even)
	ditCodelet32(half, odd)
	w := codeletTwiddles32[n]
	for k := 0; k < half; k++ {
		t := cmul32(w[k], odd[k])
		x[k] = even[k] + t
		x[k+half] = even[k] - t
	}
}

// --- DIF composition (natural in, permuted out), N in {8,16,32,64,128} ---

func difCodelet64(n int, x []complex128) {
	if n == 4 {
		codelet4DIF64(x)
		return
	}
	half := n / 2
	w := codeletTwiddles64[n]
	for k := 0; k < half; k++ {
		a := x[k] + x[k+half]
		b := cmul64(w[k], x[k]-x[k+half])
		x[k] = a
		x[k+half] = b
	}
	difCodelet64(half, x[:half])
	difCodelet64(half, x[half:])
}

func difCodelet32(n int, x []complex64) {
	if n == 4 {
		codelet4DIF32(x)
		return
	}
	half := n / 2
	w := codeletTwiddles32[n]
	for k := 0; k < half; k++ {
		a := x[k] + x[k+half]
		b := cmul32(w[k], x[k]-x[k+half])
		x[k] = a
		x[k+half] = b
	}
	difCodelet32(half, x[:half])
	difCodelet32(half, x[half:])
}

// runCodeletDIT64/32 are the dispatcher's entry points (dispatch.go);
// runCodeletDIF64/32 are their DIF counterparts, which dispatch.go does not
// call. N must already be one of codeletSizes or 4.
func runCodeletDIT64(n int, x []complex128) {
	if n == 4 {
		codelet4DIT64(x)
		return
	}
	ditCodelet64(n, x)
}

func runCodeletDIF64(n int, x []complex128) {
	if n == 4 {
		codelet4DIF64(x)
		return
	}
	difCodelet64(n, x)
}

func runCodeletDIT32(n int, x []complex64) {
	if n == 4 {
		codelet4DIT32(x)
		return
	}
	ditCodelet32(n, x)
}

func runCodeletDIF32(n int, x []complex64) {
	if n == 4 {
		codelet4DIF32(x)
		return
	}
	difCodelet32(n, x)
}

// isCodeletSize reports whether N has a dedicated small-N codelet.
func isCodeletSize(n int) bool {
	if n == 4 {
		return true
	}
	for _, s := range codeletSizes {
		if s == n {
			return true
		}
	}
	return false
}
