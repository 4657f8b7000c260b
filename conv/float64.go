package conv

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-kernels/core"
)

// simdThreshold is the shortest kernel that uses the vectorised inner loop.
const simdThreshold = 4

// DirectFloat64 performs direct convolution of float64 signals with
// vectorised accumulation. The result has length len(a) + len(b) - 1.
func DirectFloat64(a, b []float64) ([]float64, error) {
	if err := checkInputs(len(a), len(b)); err != nil {
		return nil, err
	}
	dst := make([]float64, len(a)+len(b)-1)
	DirectFloat64To(dst, a, b)
	return dst, nil
}

// DirectFloat64To performs direct convolution into dst, which must have
// length len(a) + len(b) - 1.
func DirectFloat64To(dst, a, b []float64) {
	if len(dst) != len(a)+len(b)-1 {
		panic("conv: dst length mismatch")
	}
	core.Zero(dst)

	m := len(b)
	if m < simdThreshold {
		for i, x := range a {
			for j, y := range b {
				dst[i+j] += x * y
			}
		}
		return
	}

	temp := make([]float64, m)
	for i, x := range a {
		vecmath.ScaleBlock(temp, b, x)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// ConvolveFloat64 performs linear convolution of float64 signals, directly
// for short kernels and with overlap-add otherwise.
func ConvolveFloat64(a, b []float64) ([]float64, error) {
	if err := checkInputs(len(a), len(b)); err != nil {
		return nil, err
	}
	if len(b) > len(a) {
		a, b = b, a
	}
	if len(b) <= directThreshold {
		return DirectFloat64(a, b)
	}
	return OverlapAddConvolve(a, b)
}

// ConvolveFloat64Mode performs float64 convolution with the given output mode.
func ConvolveFloat64Mode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := ConvolveFloat64(a, b)
	if err != nil {
		return nil, err
	}
	return trimToMode(full, len(a), len(b), mode), nil
}

// CorrelateFloat64 computes the full cross-correlation of real signals.
func CorrelateFloat64(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	rev := make([]float64, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}
	return ConvolveFloat64(a, rev)
}
