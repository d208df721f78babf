package simdfft

import "testing"

func TestConfigurationError(t *testing.T) {
	e := &ConfigurationError{Field: "maxN", Got: 17, Min: 4, Max: 4096}
	if e.Error() == "" {
		t.Errorf("ConfigurationError.Error() returned empty string")
	}
}

func TestInvalidSizeError(t *testing.T) {
	e := &InvalidSizeError{Op: "FFT", N: 17, Min: 4, Max: 4096}
	if e.Error() == "" {
		t.Errorf("InvalidSizeError.Error() returned empty string")
	}
	withNote := &InvalidSizeError{Op: "RFFT", N: 6, Min: 8, Max: 4096, Note: "N/2 must be a power of two >= 4"}
	if withNote.Error() == e.Error() {
		t.Errorf("InvalidSizeError with Note should format differently than without")
	}
}

func TestNotPrecomputedError(t *testing.T) {
	e := &NotPrecomputedError{Op: "FFT", N: 64}
	if e.Error() == "" {
		t.Errorf("NotPrecomputedError.Error() returned empty string")
	}
}

func checkIsInvalidSizeError(t *testing.T, context string, err error) {
	t.Helper()
	if err == nil {
		t.Errorf("%s didn't return error", context)
		return
	}
	switch e := err.(type) {
	case *InvalidSizeError:
	default:
		t.Errorf("%s returned incorrect error type: %T (%v)", context, e, e)
	}
}

func checkIsConfigurationError(t *testing.T, context string, err error) {
	t.Helper()
	if err == nil {
		t.Errorf("%s didn't return error", context)
		return
	}
	switch e := err.(type) {
	case *ConfigurationError:
	default:
		t.Errorf("%s returned incorrect error type: %T (%v)", context, e, e)
	}
}

func checkIsNotPrecomputedError(t *testing.T, context string, err error) {
	t.Helper()
	if err == nil {
		t.Errorf("%s didn't return error", context)
		return
	}
	switch e := err.(type) {
	case *NotPrecomputedError:
	default:
		t.Errorf("%s returned incorrect error type: %T (%v)", context, e, e)
	}
}
