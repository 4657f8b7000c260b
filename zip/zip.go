package zip

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-kernels/parallel"
)

// Errors returned by the zip helpers.
var (
	ErrLengthMismatch = errors.New("zip: length mismatch")
	ErrChannels       = errors.New("zip: invalid channel count")
)

// minParallel is the default grain for the parallel paths.
const minParallel = 4096

// Pair holds the elements at one index of two zipped slices.
type Pair[A, B any] struct {
	First  A
	Second B
}

func withGrain(opts []parallel.Option) []parallel.Option {
	return append([]parallel.Option{parallel.WithGrain(minParallel)}, opts...)
}

// Zip returns the pairs (a[i], b[i]). The slices must have equal length.
func Zip[A, B any](a []A, b []B, opts ...parallel.Option) ([]Pair[A, B], error) {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{First: x, Second: y} }, opts...)
}

// ZipWith returns fn(a[i], b[i]) for every index. fn may be called
// concurrently. The slices must have equal length.
func ZipWith[A, B, C any](a []A, b []B, fn func(A, B) C, opts ...parallel.Option) ([]C, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]C, len(a))
	parallel.For(len(a), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = fn(a[i], b[i])
		}
	}, withGrain(opts)...)
	return out, nil
}

// Unzip splits pairs into their first and second elements.
func Unzip[A, B any](pairs []Pair[A, B], opts ...parallel.Option) ([]A, []B) {
	a := make([]A, len(pairs))
	b := make([]B, len(pairs))
	parallel.For(len(pairs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			a[i], b[i] = pairs[i].First, pairs[i].Second
		}
	}, withGrain(opts)...)
	return a, b
}
