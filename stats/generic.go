package stats

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/sorting"
)

// OrderedField is a field with a total order, enough for an averaging median.
type OrderedField[T any] interface {
	algebra.Field[T]
	algebra.Ordered[T]
}

// Sum returns the sum of xs (Zero when empty).
func Sum[T any](a algebra.Additive[T], xs []T) T {
	return algebra.Sum(a, xs)
}

func scaleByCount[T any](f algebra.Field[T], v T, n int) (T, error) {
	inv, err := f.Inv(f.FromInt(int64(n)))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("stats: count %d: %w", n, err)
	}
	return f.Mul(v, inv), nil
}

// Mean returns the arithmetic mean of xs.
func Mean[T any](f algebra.Field[T], xs []T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return scaleByCount(f, algebra.Sum[T](f, xs), len(xs))
}

// sumSquaredDeviations returns sum |x - mean|^2. Algebras with a conjugate
// use d*conj(d) so that complex and quaternion data give real results.
func sumSquaredDeviations[T any](f algebra.Field[T], xs []T, mean T) T {
	conj, hasConj := f.(algebra.Conjugate[T])
	acc := f.Zero()
	for _, x := range xs {
		d := f.Sub(x, mean)
		if hasConj {
			acc = f.Add(acc, f.Mul(d, conj.Conj(d)))
		} else {
			acc = f.Add(acc, f.Mul(d, d))
		}
	}
	return acc
}

// Variance returns the population variance of xs, computed around the mean.
func Variance[T any](f algebra.Field[T], xs []T) (T, error) {
	mean, err := Mean(f, xs)
	if err != nil {
		return mean, err
	}
	return scaleByCount(f, sumSquaredDeviations(f, xs, mean), len(xs))
}

// SampleVariance returns the unbiased (n-1) variance of xs. It needs at
// least two elements.
func SampleVariance[T any](f algebra.Field[T], xs []T) (T, error) {
	if len(xs) < 2 {
		var zero T
		return zero, fmt.Errorf("%w: sample variance needs 2 elements, got %d", ErrEmpty, len(xs))
	}
	mean, err := Mean(f, xs)
	if err != nil {
		return mean, err
	}
	return scaleByCount(f, sumSquaredDeviations(f, xs, mean), len(xs)-1)
}

// Central holds the mean and the population central moments of a sample.
type Central[T any] struct {
	Mean T
	M2   T // E[(x-mean)^2]
	M3   T // E[(x-mean)^3]
	M4   T // E[(x-mean)^4]
}

// CentralMoments computes the mean and second to fourth central moments with
// Welford's online update, over any commutative field.
func CentralMoments[T any](f algebra.Field[T], xs []T) (Central[T], error) {
	if len(xs) == 0 {
		return Central[T]{}, ErrEmpty
	}

	mean, m2, m3, m4 := f.Zero(), f.Zero(), f.Zero(), f.Zero()
	c := func(k int) T { return f.FromInt(int64(k)) }

	for i, x := range xs {
		n := i + 1
		invN, err := f.Inv(c(n))
		if err != nil {
			return Central[T]{}, fmt.Errorf("stats: count %d: %w", n, err)
		}
		delta := f.Sub(x, mean)
		deltaN := f.Mul(delta, invN)
		deltaN2 := f.Mul(deltaN, deltaN)
		term1 := f.Mul(f.Mul(delta, deltaN), c(n-1))

		// M4 before M3 before M2, each using the previous values.
		t4 := f.Mul(f.Mul(term1, deltaN2), c(n*n-3*n+3))
		t4 = f.Add(t4, f.Mul(f.Mul(c(6), deltaN2), m2))
		t4 = f.Sub(t4, f.Mul(f.Mul(c(4), deltaN), m3))
		m4 = f.Add(m4, t4)

		t3 := f.Mul(f.Mul(term1, deltaN), c(n-2))
		t3 = f.Sub(t3, f.Mul(f.Mul(c(3), deltaN), m2))
		m3 = f.Add(m3, t3)

		m2 = f.Add(m2, term1)
		mean = f.Add(mean, deltaN)
	}

	n := len(xs)
	out := Central[T]{Mean: mean}
	var err error
	if out.M2, err = scaleByCount(f, m2, n); err != nil {
		return Central[T]{}, err
	}
	if out.M3, err = scaleByCount(f, m3, n); err != nil {
		return Central[T]{}, err
	}
	if out.M4, err = scaleByCount(f, m4, n); err != nil {
		return Central[T]{}, err
	}
	return out, nil
}

// Min returns the smallest element of xs.
func Min[T any](o algebra.Ordered[T], xs []T) (T, error) {
	lo, _, err := MinMax(o, xs)
	return lo, err
}

// Max returns the largest element of xs.
func Max[T any](o algebra.Ordered[T], xs []T) (T, error) {
	_, hi, err := MinMax(o, xs)
	return hi, err
}

// MinMax returns the smallest and largest element of xs in one pass.
func MinMax[T any](o algebra.Ordered[T], xs []T) (lo, hi T, err error) {
	if len(xs) == 0 {
		return lo, hi, ErrEmpty
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if o.Compare(x, lo) < 0 {
			lo = x
		}
		if o.Compare(x, hi) > 0 {
			hi = x
		}
	}
	return lo, hi, nil
}

// LowMedian returns the lower middle element, xs[(n-1)/2] after sorting.
// It works for any ordered type, including integers. xs is not modified.
func LowMedian[T any](o algebra.Ordered[T], xs []T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return sorting.Select(o, slices.Clone(xs), (len(xs)-1)/2)
}

// Median returns the middle element of xs, or the mean of the two middle
// elements when len(xs) is even. xs is not modified.
func Median[T any](f OrderedField[T], xs []T) (T, error) {
	n := len(xs)
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	work := slices.Clone(xs)
	hi, err := sorting.Select[T](f, work, n/2)
	if err != nil || n%2 == 1 {
		return hi, err
	}
	// After selection every element left of n/2 is <= hi; the lower middle
	// is their maximum.
	lo, err := Max[T](f, work[:n/2])
	if err != nil {
		return hi, err
	}
	return scaleByCount[T](f, f.Add(lo, hi), 2)
}

// Mode returns the most frequent value of xs and its count. Ties go to the
// smallest value.
func Mode[T any](o algebra.Ordered[T], xs []T) (T, int, error) {
	if len(xs) == 0 {
		var zero T
		return zero, 0, ErrEmpty
	}
	work := slices.Clone(xs)
	sorting.Intro(o, work)

	best, bestCount := work[0], 0
	for i := 0; i < len(work); {
		j := i + 1
		for j < len(work) && o.Compare(work[j], work[i]) == 0 {
			j++
		}
		if j-i > bestCount {
			best, bestCount = work[i], j-i
		}
		i = j
	}
	return best, bestCount, nil
}
