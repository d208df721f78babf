package simdfft

// inverse.go implements the inverse-transform wrapper (spec.md S4.7, C7):
// IFFT(X) = (1/N) * conj(FFT(conj(X))), plus the one specialized inverse
// kernel spec.md calls out, ifft_4, which substitutes +j twiddles directly
// rather than paying for two vector-wide conjugate passes around the N=4
// forward codelet.

func ifft4_64(x []complex128) {
	x0, x1, x2, x3 := x[0], x[1], x[2], x[3]
	inv4 := complex(0.25, 0.0)
	x[0] = (x0 + x1 + x2 + x3) * inv4
	x[1] = (x0 + mulJ64(x1) - x2 - mulJ64(x3)) * inv4
	x[2] = (x0 - x1 + x2 - x3) * inv4
	x[3] = (x0 - mulJ64(x1) - x2 + mulJ64(x3)) * inv4
}

func ifft4_32(x []complex64) {
	x0, x1, x2, x3 := x[0], x[1], x[2], x[3]
	inv4 := complex(float32(0.25), float32(0.0))
	x[0] = (x0 + x1 + x2 + x3) * inv4
	x[1] = (x0 + mulJ32(x1) - x2 - mulJ32(x3)) * inv4
	x[2] = (x0 - x1 + x2 - x3) * inv4
	x[3] = (x0 - mulJ32(x1) - x2 + mulJ32(x3)) * inv4
}

// inverseComplex64 computes the N-point inverse DFT of x[:n] in place.
func inverseComplex64(n int, x, scratch []complex128, w []complex128, perm []int) {
	if n == 4 {
		ifft4_64(x[:4])
		return
	}
	for i := 0; i < n; i++ {
		x[i] = conj64(x[i])
	}
	forwardComplex64(n, x, scratch, w, perm)
	invN := complex(1.0/float64(n), 0.0)
	for i := 0; i < n; i++ {
		x[i] = conj64(x[i]) * invN
	}
}

func inverseComplex32(n int, x, scratch []complex64, w []complex64, perm []int) {
	if n == 4 {
		ifft4_32(x[:4])
		return
	}
	for i := 0; i < n; i++ {
		x[i] = conj32(x[i])
	}
	forwardComplex32(n, x, scratch, w, perm)
	invN := complex(float32(1.0/float64(n)), float32(0.0))
	for i := 0; i < n; i++ {
		x[i] = conj32(x[i]) * invN
	}
}
