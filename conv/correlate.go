package conv

import "github.com/cwbudde/algo-kernels/algebra"

// Correlate computes the full cross-correlation of a and b:
//
//	c[k] = sum_i a[i+lag] · conj(b[i]),  lag = k - (len(b)-1)
//
// conj is applied when r implements [algebra.Conjugate] and is the identity
// otherwise. The result has length len(a) + len(b) - 1.
func Correlate[T any](r algebra.Ring[T], a, b []T) ([]T, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	return Convolve(r, a, reversed(r, b))
}

// CorrelateDirect computes cross-correlation with direct convolution only.
func CorrelateDirect[T any](r algebra.Ring[T], a, b []T) ([]T, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	return Direct(r, a, reversed(r, b))
}

// CorrelateMode computes cross-correlation with the given output mode.
func CorrelateMode[T any](r algebra.Ring[T], a, b []T, mode Mode) ([]T, error) {
	full, err := Correlate(r, a, b)
	if err != nil {
		return nil, err
	}
	return trimToMode(full, len(a), len(b), mode), nil
}

// AutoCorrelate computes the auto-correlation of a. The result has length
// 2*len(a)-1 and the zero lag sits at index len(a)-1.
func AutoCorrelate[T any](r algebra.Ring[T], a []T) ([]T, error) {
	return Correlate(r, a, a)
}

// reversed returns b time-reversed and, where available, conjugated.
func reversed[T any](r algebra.Ring[T], b []T) []T {
	out := make([]T, len(b))
	c, conj := r.(algebra.Conjugate[T])
	for i, v := range b {
		if conj {
			v = c.Conj(v)
		}
		out[len(b)-1-i] = v
	}
	return out
}

// FindPeak finds the index and value of the maximum in a real correlation
// result. Returns -1 for an empty input.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]
	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}
	return index, value
}

// LagFromIndex converts a correlation result index to a lag value.
// For a correlation against a second input of length lenB, the lag at index
// i is i - (lenB - 1).
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag value to a correlation result index.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}
