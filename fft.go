// fft.go is the public transform surface of spec.md S6: FFT and IFFT over
// interleaved complex buffers, for whichever precision the Instance was
// created with. The permutation/butterfly math this package runs is
// adapted from andewx/gofft's fft()/ifft() (restructured into the
// ping-pong Stockham form in stockham.go); this file only wires it behind
// the Instance lifecycle and error taxonomy of spec.md S6-S7.
package simdfft

// FFT computes the forward complex DFT of size N in place on Buffer64 (for
// a Float64 Instance) or Buffer32 (for a Float32 Instance). N must be a
// power of two in [4, MaxN], and Precompute(N) must have been called.
func (inst *Instance) FFT(n int) error {
	if err := validatePow2Size("FFT", n, minN, inst.maxN); err != nil {
		return err
	}
	switch inst.precision {
	case Float64:
		if inst.twiddle64.N() != n {
			return &NotPrecomputedError{Op: "FFT", N: n}
		}
		forwardComplex64(n, inst.c128primary, inst.c128secondary, inst.twiddle64.w[:n], inst.perms[n])
	case Float32:
		if inst.twiddle32.N() != n {
			return &NotPrecomputedError{Op: "FFT", N: n}
		}
		forwardComplex32(n, inst.c64primary, inst.c64secondary, inst.twiddle32.w[:n], inst.perms[n])
	}
	return nil
}

// IFFT computes the inverse complex DFT of size N in place, including the
// 1/N scaling factor. Same preconditions as FFT.
func (inst *Instance) IFFT(n int) error {
	if err := validatePow2Size("IFFT", n, minN, inst.maxN); err != nil {
		return err
	}
	switch inst.precision {
	case Float64:
		if inst.twiddle64.N() != n {
			return &NotPrecomputedError{Op: "IFFT", N: n}
		}
		inverseComplex64(n, inst.c128primary, inst.c128secondary, inst.twiddle64.w[:n], inst.perms[n])
	case Float32:
		if inst.twiddle32.N() != n {
			return &NotPrecomputedError{Op: "IFFT", N: n}
		}
		inverseComplex32(n, inst.c64primary, inst.c64secondary, inst.twiddle32.w[:n], inst.perms[n])
	}
	return nil
}
