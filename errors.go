package simdfft

import "fmt"

// ConfigurationError reports an invalid argument to Create (an unsupported
// precision or a maxN outside [minN, maxSupportedN]), or a PrecomputeRfft,
// RFFT or IRFFT call on an Instance whose precision is not Float32.
type ConfigurationError struct {
	Field string // "precision" or "maxN"
	Got   int
	Min   int
	Max   int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("simdfft: invalid configuration for %s: got %d, must be in [%d, %d]", e.Field, e.Got, e.Min, e.Max)
}

// InvalidSizeError reports an N that is out of the supported domain for the
// operation being invoked (Precompute, PrecomputeRfft, FFT, IFFT, RFFT,
// IRFFT).
type InvalidSizeError struct {
	Op   string
	N    int
	Min  int
	Max  int
	Note string // extra context, e.g. "N/2 must also be a power of two"
}

func (e *InvalidSizeError) Error() string {
	if e.Note != "" {
		return fmt.Sprintf("simdfft: %s: invalid size %d, must be a power of two in [%d, %d] (%s)", e.Op, e.N, e.Min, e.Max, e.Note)
	}
	return fmt.Sprintf("simdfft: %s: invalid size %d, must be a power of two in [%d, %d]", e.Op, e.N, e.Min, e.Max)
}

// NotPrecomputedError reports that a transform was invoked for a size N
// whose twiddle tables were never (or no longer) precomputed.
type NotPrecomputedError struct {
	Op string
	N  int
}

func (e *NotPrecomputedError) Error() string {
	call := "Precompute"
	if e.Op == "RFFT" || e.Op == "IRFFT" {
		call = "PrecomputeRfft"
	}
	return fmt.Sprintf("simdfft: %s: size %d has not been precomputed, call %s(%d) first", e.Op, e.N, call, e.N)
}
