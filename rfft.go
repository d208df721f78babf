package simdfft

// rfft.go implements the real-FFT pack/unpack layer (spec.md S4.6, C6):
// an N-point real DFT computed by packing N reals into N/2 complex
// samples, driving an (N/2)-point complex FFT, and post-processing the
// result into N/2+1 complex output bins (and the mirror-image
// pre-processing for the inverse).
//
// Both halves need two precomputed tables: the ordinary twiddle table for
// the inner N/2-point complex transform (Precompute(N/2)) and the rfft
// rotation table for N itself (PrecomputeRfft(N)) -- spec.md S6 documents
// this as PrecomputeRfft being "additionally required".

// rfftPostProcessForward32 turns the packed complex spectrum z (length half)
// into the N/2+1-bin real spectrum, written into out (length >= half+1).
// rot is the rfft rotation table (length half, rot[k] = W_N^k).
func rfftPostProcessForward32(z []complex64, out []complex64, rot []complex64, half int) {
	z0 := z[0]
	out0 := complex(real(z0)+imag(z0), float32(0))
	outHalf := complex(real(z0)-imag(z0), float32(0))

	half32 := complex(float32(0.5), float32(0))
	for k := 1; k < half; k++ {
		zk := z[k]
		zMirror := conj32(z[half-k])
		sum := (zk + zMirror) * half32
		diff := zk - zMirror
		t := cmul32(rot[k], diff)
		out[k] = sum + half32*mulNegJ32(t)
	}
	out[0] = out0
	out[half] = outHalf
}

// rfftPreProcessInverse32 is the mirror image: given the N/2+1-bin real
// spectrum x (length half+1), it fills z (length half) with the packed
// complex time-domain samples ready for an inverse (N/2)-point complex
// FFT. rot is the same rotation table PrecomputeRfft built for N.
func rfftPreProcessInverse32(x []complex64, z []complex64, rot []complex64, half int) {
	x0 := real(x[0])
	xHalf := real(x[half])
	z[0] = complex(float32(0.5)*(x0+xHalf), float32(0.5)*(x0-xHalf))

	half32 := complex(float32(0.5), float32(0))
	for k := 1; k < half; k++ {
		if half%2 == 0 && k == half/2 {
			z[k] = conj32(x[k])
			continue
		}
		xk := x[k]
		xMirror := conj32(x[half-k])
		sum := (xk + xMirror) * half32
		diff := xk - xMirror
		t := cmul32(conj32(rot[k]), diff)
		z[k] = sum + half32*mulJ32(t)
	}
}

// RFFT computes the forward real-input FFT of size N (spec.md S6). N must
// be a power of two in [8, MaxN] with N/2 also a power of two >= 4.
// Precompute(N/2) and PrecomputeRfft(N) must both have been called first.
// Reads N real samples from the real view of the primary buffer and
// writes N/2+1 interleaved complex bins back over it.
func (inst *Instance) RFFT(n int) error {
	if inst.precision != Float32 {
		return &ConfigurationError{Field: "precision", Got: int(inst.precision), Min: int(Float32), Max: int(Float32)}
	}
	if !IsPow2(n) || n < 8 || n > inst.maxN || !IsPow2(n/2) || n/2 < 4 {
		return &InvalidSizeError{Op: "RFFT", N: n, Min: 8, Max: inst.maxN, Note: "N/2 must be a power of two >= 4"}
	}
	half := n / 2
	if inst.twiddle32.N() != half {
		return &NotPrecomputedError{Op: "RFFT (inner FFT)", N: half}
	}
	if inst.twiddle32.RfftN() != n {
		return &NotPrecomputedError{Op: "RFFT", N: n}
	}

	pack := inst.rfftPack32[:half]
	for k := 0; k < half; k++ {
		pack[k] = complex(inst.GetReal32(2*k), inst.GetReal32(2*k+1))
	}
	forwardComplex32(half, pack, inst.c64secondary[:half], inst.twiddle32.w[:half], inst.perms[half])

	out := inst.c64primary[:half+1]
	rfftPostProcessForward32(pack, out, inst.twiddle32.rfftRot[:half], half)
	return nil
}

// IRFFT computes the inverse real-input FFT of size N: the mirror image
// of RFFT. Reads N/2+1 interleaved complex bins from the primary buffer
// and writes N real samples back over it.
func (inst *Instance) IRFFT(n int) error {
	if inst.precision != Float32 {
		return &ConfigurationError{Field: "precision", Got: int(inst.precision), Min: int(Float32), Max: int(Float32)}
	}
	if !IsPow2(n) || n < 8 || n > inst.maxN || !IsPow2(n/2) || n/2 < 4 {
		return &InvalidSizeError{Op: "IRFFT", N: n, Min: 8, Max: inst.maxN, Note: "N/2 must be a power of two >= 4"}
	}
	half := n / 2
	if inst.twiddle32.N() != half {
		return &NotPrecomputedError{Op: "IRFFT (inner FFT)", N: half}
	}
	if inst.twiddle32.RfftN() != n {
		return &NotPrecomputedError{Op: "IRFFT", N: n}
	}

	x := inst.c64primary[:half+1]
	z := inst.rfftPack32[:half]
	rfftPreProcessInverse32(x, z, inst.twiddle32.rfftRot[:half], half)

	inverseComplex32(half, z, inst.c64secondary[:half], inst.twiddle32.w[:half], inst.perms[half])

	for k := 0; k < half; k++ {
		inst.SetReal32(2*k, real(z[k]))
		inst.SetReal32(2*k+1, imag(z[k]))
	}
	return nil
}
