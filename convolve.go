package simdfft

import (
	"fmt"
	"runtime"
	"sync"
)

// convolve.go is not named by spec.md, but is the single most common
// consumer of a forward/inverse FFT pair (as andewx/gofft itself
// demonstrates) and costs no extra invariants the spec excludes. It is
// re-grounded on the new Instance-based FFT/IFFT rather than gofft's
// package-level functions; convolveInstances pools one Instance per size
// so repeated calls don't pay Create's allocation every time, while still
// tolerating concurrent callers (FastMultiConvolve below dispatches
// goroutines, and an Instance itself is not safe for concurrent use).

var convolveInstances sync.Map // map[int]*sync.Pool of *Instance, keyed by size

func getConvolveInstance(n int) (*Instance, error) {
	v, _ := convolveInstances.LoadOrStore(n, &sync.Pool{
		New: func() any {
			inst, err := Create(Float64, n)
			if err != nil {
				return err
			}
			if err := inst.Precompute(n); err != nil {
				return err
			}
			return inst
		},
	})
	switch item := v.(*sync.Pool).Get().(type) {
	case *Instance:
		return item, nil
	case error:
		return nil, item
	default:
		return nil, fmt.Errorf("simdfft: unexpected convolve pool item %T", item)
	}
}

func putConvolveInstance(n int, inst *Instance) {
	if v, ok := convolveInstances.Load(n); ok {
		v.(*sync.Pool).Put(inst)
	}
}

// Convolve computes the discrete (linear) convolution of x and y using
// FFT. Pads x and y to the next power of 2 >= len(x)+len(y)-1 (and up to
// the minimum supported transform size).
func Convolve(x, y []complex128) ([]complex128, error) {
	if len(x) == 0 && len(y) == 0 {
		return nil, nil
	}
	n := len(x) + len(y) - 1
	N := NextPow2(n)
	if N < minN {
		N = minN
	}
	x = ZeroPad(x, N)
	y = ZeroPad(y, N)
	err := FastConvolve(x, y)
	return x[:n], err
}

// FastConvolve computes the discrete convolution of x and y using FFT and
// stores the result in x, while erasing y (setting it to 0s). x and y
// must already be the same power-of-two length, 0-padded for at least
// half their length.
func FastConvolve(x, y []complex128) error {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}
	if len(x) != len(y) {
		return fmt.Errorf("simdfft: x and y must have the same length, given: %d, %d", len(x), len(y))
	}
	return convolve(x, y)
}

// MultiConvolve computes the discrete convolution of many arrays using a
// hierarchical FFT algorithm that successively builds up larger
// convolutions. Slower and more allocation-heavy than FastMultiConvolve,
// but handles disproportionate array sizes well.
func MultiConvolve(X ...[]complex128) ([]complex128, error) {
	arraysByLength := map[int][][]complex128{}
	mx := 1
	returnLength := 1
	for _, x := range X {
		n := NextPow2(2 * len(x))
		if n < minN {
			n = minN
		}
		arraysByLength[n] = append(arraysByLength[n], ZeroPad(x, n))
		if n > mx {
			mx = n
		}
		returnLength += len(x) - 1
	}
	if len(X) == 0 || returnLength <= 0 {
		return nil, nil
	}
	for i := minN; i <= mx; i *= 2 {
		arrays := arraysByLength[i]
		if len(arrays) > 0 {
			if len(arraysByLength) == 1 {
				return multiConvolveSingleLevel(arrays, returnLength)
			}
			for j := 0; j < len(arrays); j += 2 {
				if j+1 < len(arrays) {
					if err := convolve(arrays[j], arrays[j+1]); err != nil {
						return nil, err
					}
				}
				arraysByLength[2*i] = append(arraysByLength[2*i], ZeroPad(arrays[j], 2*i))
				if 2*i > mx {
					mx = 2 * i
				}
			}
		}
		arraysByLength[i] = nil
		delete(arraysByLength, i)
	}
	return arraysByLength[mx][0][:returnLength], nil
}

func multiConvolveSingleLevel(arrays [][]complex128, returnLength int) ([]complex128, error) {
	if len(arrays) == 2 {
		if err := convolve(arrays[0], arrays[1]); err != nil {
			return nil, err
		}
		return arrays[0][:returnLength], nil
	}
	if len(arrays) == 1 {
		return arrays[0][:returnLength], nil
	}
	N := len(arrays[0])
	n2 := NextPow2(len(arrays))
	data := make([]complex128, n2*N)
	for j, array := range arrays {
		copy(data[N*j:], array)
	}
	for j := len(arrays); j < n2; j++ {
		data[N*j] = 1.0
	}
	err := FastMultiConvolve(data, N, false)
	return data[:returnLength], err
}

// FastMultiConvolve computes the discrete convolution of many arrays using
// a hierarchical FFT algorithm, storing the result in the first section of
// X and writing 0s to the remainder. X is arrays.length/n concatenated
// power-of-two-length arrays of length n; n and X/n must both be powers
// of two. multithread dispatches goroutines across pairs, which can slow
// things down for small N.
func FastMultiConvolve(X []complex128, n int, multithread bool) error {
	N := len(X)
	if N%n != 0 {
		return fmt.Errorf("simdfft: X must be array of arrays each of length n, instead have len(X) %d not divisible by n (%d)", N, n)
	}
	if !IsPow2(n) {
		return fmt.Errorf("simdfft: X must be array of arrays each of a power of 2 length, instead have length %d not a power of 2", n)
	}
	if !IsPow2(N / n) {
		return fmt.Errorf("simdfft: X must be array of arrays of a power of 2 length, instead have length %d not a power of 2", N/n)
	}
	for ; n != N; n <<= 1 {
		n2 := n << 1
		if multithread {
			var wg sync.WaitGroup
			var firstErr error
			var errMu sync.Mutex
			numCPU := runtime.NumCPU()
			for j := 0; j < numCPU; j++ {
				wg.Add(1)
				go func(j int) {
					defer wg.Done()
					s := (j * (N / n2)) / numCPU
					e := ((j + 1) * (N / n2)) / numCPU
					for i := s; i < e; i++ {
						if err := convolve(X[i*n2:i*n2+n], X[i*n2+n:i*n2+n2]); err != nil {
							errMu.Lock()
							if firstErr == nil {
								firstErr = err
							}
							errMu.Unlock()
						}
					}
				}(j)
			}
			wg.Wait()
			if firstErr != nil {
				return firstErr
			}
		} else {
			for i := 0; i < N; i += n2 {
				if err := convolve(X[i:i+n], X[i+n:i+n2]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// convolve does the actual work of convolutions: forward-transform x and
// y, multiply bin-wise, inverse-transform back into x, and zero y.
func convolve(x, y []complex128) error {
	n := len(x)
	inst, err := getConvolveInstance(n)
	if err != nil {
		return err
	}
	defer putConvolveInstance(n, inst)

	copy(inst.Buffer64(), x)
	if err := inst.FFT(n); err != nil {
		return err
	}
	fx := make([]complex128, n)
	copy(fx, inst.Buffer64())

	copy(inst.Buffer64(), y)
	if err := inst.FFT(n); err != nil {
		return err
	}
	fy := inst.Buffer64()
	for i := range fx {
		fx[i] *= fy[i]
	}

	copy(inst.Buffer64(), fx)
	if err := inst.IFFT(n); err != nil {
		return err
	}
	copy(x, inst.Buffer64())
	for i := range y {
		y[i] = 0
	}
	return nil
}
