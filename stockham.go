package simdfft

// stockham.go implements the mixed-radix Stockham transform engine
// (spec.md S4.4, C4): a ping-pong buffered, stage-by-stage radix-2
// butterfly pass preceded by a bit-reversal permutation. The per-stage
// butterfly recurrence (read x[i], x[j]; write x[i] = x[i] + W^k*x[j],
// x[j] = x[i] + W^(k+n)*x[j] using the pre-update x[i]) is the same
// recurrence andewx/gofft's fft() runs in place (fft.go); this engine
// restructures it to write every stage into the *other* buffer instead of
// overwriting the source, which is what makes every stage's write set
// total and duplicate-free (spec.md S3 invariant, S8 property 7) without
// relying on in-place aliasing.
//
// Twiddle indexing follows spec.md S4.4 exactly: for a stage of radius r
// (here named s) the first butterfly's pair of twiddles are table entries k*s and
// s*(k+n), where n = N/(2s) is the number of already-combined groups.

// stageKernel64 is shared by the r=1, r=2 and r>=4 entry points: the
// butterfly math never changes, only how many lanes a real SIMD backend
// would pack per iteration (spec.md S4.4). Keeping one implementation
// means the three named kernels below can never drift apart numerically.
func stageKernel64(src, dst []complex128, w []complex128, n, s int) {
	for o := 0; o < len(src); o += n << 1 {
		for k := 0; k < n; k++ {
			i := o + k
			j := i + n
			xi, xj := src[i], src[j]
			dst[i] = xi + cmul64(w[k*s], xj)
			dst[j] = xi + cmul64(w[s*(k+n)], xj)
		}
	}
}

// stageR1_64 is the final-stage kernel (r=1): spec.md S4.4 calls for
// processing two consecutive groups per SIMD iteration here, since a
// radius-1 group is only two complex numbers wide. The butterfly math is
// identical to the shared kernel; only the loop's grouping would differ on
// real SIMD hardware.
func stageR1_64(src, dst []complex128, w []complex128, n, s int) { stageKernel64(src, dst, w, n, s) }

// stageR2_64 is the penultimate-stage kernel (r=2).
func stageR2_64(src, dst []complex128, w []complex128, n, s int) { stageKernel64(src, dst, w, n, s) }

// stageRGeneral64 is the general body-stage kernel (r>=4): one twiddle per
// iteration, splatted across r/2 butterflies in a real SIMD build.
func stageRGeneral64(src, dst []complex128, w []complex128, n, s int) {
	stageKernel64(src, dst, w, n, s)
}

func runStage64(src, dst []complex128, w []complex128, n, s int) {
	switch {
	case s == 1:
		stageR1_64(src, dst, w, n, s)
	case s == 2:
		stageR2_64(src, dst, w, n, s)
	default:
		stageRGeneral64(src, dst, w, n, s)
	}
}

// stockham64 computes the N-point complex DFT of buf in place from the
// caller's perspective, using scratch as the ping-pong secondary buffer.
// w must be a twiddle table of size N (W_N^k). Returns true if the final
// result landed in scratch (and was copied back into buf before return) --
// exposed only so callers/tests can cross-check the parity rule of
// spec.md S4.4 ("result in A if log2N even, in B if odd") against this
// concrete implementation's own stage count.
func stockham64(buf, scratch []complex128, perm []int, w []complex128) (copiedBack bool) {
	n := len(buf)
	bitReversePermute64(buf, perm)

	src, dst := buf, scratch
	stages := log2Exact(n)
	for t := 0; t < stages; t++ {
		groupN := 1 << t
		s := n >> (t + 1)
		runStage64(src, dst, w, groupN, s)
		src, dst = dst, src
	}
	// After `stages` swaps the latest result lives in `src` (the pointer
	// that was about to be read from next). If that is `scratch` rather
	// than the caller's `buf`, copy it back: the dispatcher's "post-stage
	// parity copy" (spec.md S4.5).
	if stages%2 == 1 {
		copy(buf, scratch)
		return true
	}
	return false
}

func stageKernel32(src, dst []complex64, w []complex64, n, s int) {
	for o := 0; o < len(src); o += n << 1 {
		for k := 0; k < n; k++ {
			i := o + k
			j := i + n
			xi, xj := src[i], src[j]
			dst[i] = xi + cmul32(w[k*s], xj)
			dst[j] = xi + cmul32(w[s*(k+n)], xj)
		}
	}
}

func stageR1_32(src, dst []complex64, w []complex64, n, s int)      { stageKernel32(src, dst, w, n, s) }
func stageR2_32(src, dst []complex64, w []complex64, n, s int)      { stageKernel32(src, dst, w, n, s) }
func stageRGeneral32(src, dst []complex64, w []complex64, n, s int) { stageKernel32(src, dst, w, n, s) }

func runStage32(src, dst []complex64, w []complex64, n, s int) {
	switch {
	case s == 1:
		stageR1_32(src, dst, w, n, s)
	case s == 2:
		stageR2_32(src, dst, w, n, s)
	default:
		stageRGeneral32(src, dst, w, n, s)
	}
}

func stockham32(buf, scratch []complex64, perm []int, w []complex64) (copiedBack bool) {
	n := len(buf)
	bitReversePermute32(buf, perm)

	src, dst := buf, scratch
	stages := log2Exact(n)
	for t := 0; t < stages; t++ {
		groupN := 1 << t
		s := n >> (t + 1)
		runStage32(src, dst, w, groupN, s)
		src, dst = dst, src
	}
	if stages%2 == 1 {
		copy(buf, scratch)
		return true
	}
	return false
}

// permutationIndex builds the bit-inverted index vector used by
// bitReversePermute{64,32}, identical in construction to
// andewx/gofft's permutationIndex (utils.go-adjacent in the teacher).
func permutationIndex(n int) []int {
	index := make([]int, n)
	index[0] = 0
	for m := 1; m < n; m <<= 1 {
		for i := 0; i < m; i++ {
			index[i] <<= 1
			index[i+m] = index[i] + 1
		}
	}
	return index
}

// bitReversePermute{64,32} permute x in place according to perm, using the
// same O(N) swap-chasing algorithm as andewx/gofft's permute().
func bitReversePermute64(x []complex128, perm []int) {
	n := len(x)
	for i := 0; i < n-1; i++ {
		ind := perm[i]
		for ind < i {
			ind = perm[ind]
		}
		x[i], x[ind] = x[ind], x[i]
	}
}

func bitReversePermute32(x []complex64, perm []int) {
	n := len(x)
	for i := 0; i < n-1; i++ {
		ind := perm[i]
		for ind < i {
			ind = perm[ind]
		}
		x[i], x[ind] = x[ind], x[i]
	}
}
