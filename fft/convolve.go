package fft

import (
	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/core"
)

// FieldAlgebra is an algebra whose transforms can be inverted.
type FieldAlgebra[T any] interface {
	algebra.Field[T]
	algebra.RootsOfUnity[T]
}

// Convolve returns the linear convolution of x and y, of length
// len(x)+len(y)-1, computed with zero-padded transforms. The algebra must be
// commutative for the convolution theorem to hold. Over a ModInt algebra the
// result is exact (number-theoretic transform).
func Convolve[T any](a FieldAlgebra[T], x, y []T) ([]T, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrEmpty
	}

	outLen := len(x) + len(y) - 1
	n := NextPowerOfTwo(outLen)
	plan, err := NewPlan[T](a, n)
	if err != nil {
		return nil, err
	}

	fx := padded[T](a, x, n)
	fy := padded[T](a, y, n)
	if err := plan.Forward(fx); err != nil {
		return nil, err
	}
	if err := plan.Forward(fy); err != nil {
		return nil, err
	}
	for i := range fx {
		fx[i] = a.Mul(fx[i], fy[i])
	}
	if err := plan.Inverse(fx); err != nil {
		return nil, err
	}
	return fx[:outLen], nil
}

func padded[T any](a algebra.Additive[T], x []T, n int) []T {
	out := make([]T, n)
	m := core.CopyInto(out, x)
	core.Fill(out[m:], a.Zero())
	return out
}
