package fft

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-kernels/parallel"
	"github.com/cwbudde/algo-kernels/seq"
)

// FFT2D transforms a row-major rows×cols array in place.
func FFT2D[T any](a Algebra[T], x []T, rows, cols int, opts ...parallel.Option) error {
	return transformND(a, x, []int{rows, cols}, false, opts)
}

// InvFFT2D inverts [FFT2D].
func InvFFT2D[T any](a Algebra[T], x []T, rows, cols int, opts ...parallel.Option) error {
	return transformND(a, x, []int{rows, cols}, true, opts)
}

// FFT3D transforms a row-major d0×d1×d2 array in place (d2 varies fastest).
func FFT3D[T any](a Algebra[T], x []T, d0, d1, d2 int, opts ...parallel.Option) error {
	return transformND(a, x, []int{d0, d1, d2}, false, opts)
}

// InvFFT3D inverts [FFT3D].
func InvFFT3D[T any](a Algebra[T], x []T, d0, d1, d2 int, opts ...parallel.Option) error {
	return transformND(a, x, []int{d0, d1, d2}, true, opts)
}

// FFTND transforms a row-major array with the given dimensions in place.
func FFTND[T any](a Algebra[T], x []T, dims []int, opts ...parallel.Option) error {
	return transformND(a, x, dims, false, opts)
}

// InvFFTND inverts [FFTND].
func InvFFTND[T any](a Algebra[T], x []T, dims []int, opts ...parallel.Option) error {
	return transformND(a, x, dims, true, opts)
}

func checkShape(n int, dims []int) error {
	if len(dims) == 0 {
		return fmt.Errorf("%w: no dimensions", ErrShape)
	}
	total := 1
	for i, d := range dims {
		if d <= 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrShape, i, d)
		}
		if !IsPowerOfTwo(d) {
			return fmt.Errorf("%w: dimension %d is %d", ErrNotPowerOfTwo, i, d)
		}
		total *= d
	}
	if total != n {
		return fmt.Errorf("%w: dims %v hold %d elements, data has %d", ErrShape, dims, total, n)
	}
	return nil
}

// transformND applies the 1-D transform along every axis. Axis k of a
// row-major array has stride prod(dims[k+1:]); its lines are independent.
func transformND[T any](a Algebra[T], x []T, dims []int, inverse bool, opts []parallel.Option) error {
	if err := checkShape(len(x), dims); err != nil {
		return err
	}

	stride := 1
	for axis := len(dims) - 1; axis >= 0; axis-- {
		n := dims[axis]
		if n > 1 {
			if err := transformAxis(a, x, n, stride, inverse, opts); err != nil {
				return fmt.Errorf("fft: axis %d: %w", axis, err)
			}
		}
		stride *= n
	}
	return nil
}

func transformAxis[T any](a Algebra[T], x []T, n, stride int, inverse bool, opts []parallel.Option) error {
	plan, err := NewPlan(a, n)
	if err != nil {
		return err
	}
	if inverse && !plan.hasInv {
		return ErrNoInverse
	}

	lines := len(x) / n
	block := n * stride

	return parallel.ForErr(context.Background(), lines, func(ctx context.Context, lo, hi int) error {
		for l := lo; l < hi; l++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			offset := (l/stride)*block + l%stride

			var line seq.Sequence[T]
			if stride == 1 {
				line = seq.Slice[T](x[offset : offset+n])
			} else {
				v, err := seq.NewStrided(x, offset, stride, n)
				if err != nil {
					return err
				}
				line = v
			}

			var lineErr error
			if inverse {
				lineErr = plan.InverseSeq(line)
			} else {
				lineErr = plan.ForwardSeq(line)
			}
			if lineErr != nil {
				return lineErr
			}
		}
		return nil
	}, opts...)
}
