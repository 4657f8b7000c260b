package resample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-kernels/core"
)

func checkSize(m, n int) error {
	if m == 0 || n <= 0 {
		return fmt.Errorf("%w: input %d, output %d", ErrInvalidSize, m, n)
	}
	return nil
}

// Nearest resizes src to n samples by nearest-neighbour selection.
func Nearest[T any](src []T, n int) ([]T, error) {
	m := len(src)
	if err := checkSize(m, n); err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		idx, t := position(i, m, n)
		out[i] = src[min(idx+int(math.Round(t)), m-1)]
	}
	return out, nil
}

// Linear resizes src to n samples by linear interpolation.
func Linear[T any](a Interpolant[T], src []T, n int) ([]T, error) {
	m := len(src)
	if err := checkSize(m, n); err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		idx, t := position(i, m, n)
		out[i] = lerp(a, t, src[idx], src[min(idx+1, m-1)])
	}
	return out, nil
}

// Cubic resizes src to n samples with 4-point cubic Hermite (Catmull-Rom)
// interpolation.
func Cubic[T any](a Interpolant[T], src []T, n int) ([]T, error) {
	m := len(src)
	if err := checkSize(m, n); err != nil {
		return nil, err
	}
	at := func(i int) T { return src[core.Clamp(i, 0, m-1)] }

	out := make([]T, n)
	for i := range out {
		idx, t := position(i, m, n)
		out[i] = Hermite4(a, t, at(idx-1), at(idx), at(idx+1), at(idx+2))
	}
	return out, nil
}
