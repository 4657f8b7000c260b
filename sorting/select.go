package sorting

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-kernels/algebra"
)

// ErrIndexOutOfRange is returned by Select for k outside [0, len(xs)).
var ErrIndexOutOfRange = errors.New("sorting: index out of range")

// Select partially reorders xs so that xs[k] holds the element that would be
// there after sorting, with no larger element before it and no smaller one
// after it (quickselect, expected O(n)). It returns xs[k].
func Select[T any](o algebra.Ordered[T], xs []T, k int) (T, error) {
	return SelectFunc(xs, k, o.Compare)
}

// SelectFunc is [Select] with an explicit comparator.
func SelectFunc[T any](xs []T, k int, cmp func(a, b T) int) (T, error) {
	if k < 0 || k >= len(xs) {
		var zero T
		return zero, fmt.Errorf("%w: k=%d, len=%d", ErrIndexOutOfRange, k, len(xs))
	}

	lo, hi := 0, len(xs)
	for hi-lo > insertionThreshold {
		p := lo + partition(xs[lo:hi], cmp)
		if k <= p {
			hi = p + 1
		} else {
			lo = p + 1
		}
	}
	InsertionFunc(xs[lo:hi], cmp)
	return xs[k], nil
}
