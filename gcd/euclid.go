package gcd

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/parallel"
)

// Errors returned by the modular helpers.
var (
	ErrZeroModulus   = errors.New("gcd: zero modulus")
	ErrNotInvertible = errors.New("gcd: element is not invertible")
)

// normalize flips the sign of v (and of the companions) when r is ordered
// and v is negative.
func normalize[T any](r algebra.Euclidean[T], v T, companions ...*T) T {
	o, ok := r.(algebra.Ordered[T])
	if !ok || o.Compare(v, r.Zero()) >= 0 {
		return v
	}
	for _, c := range companions {
		*c = r.Neg(*c)
	}
	return r.Neg(v)
}

// Euclid returns gcd(a, b) by repeated division with remainder.
func Euclid[T any](r algebra.Euclidean[T], a, b T) (T, error) {
	for !r.IsZero(b) {
		_, rem, err := r.DivMod(a, b)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("gcd: %w", err)
		}
		a, b = b, rem
	}
	return normalize(r, a), nil
}

// Extended returns g = gcd(a, b) together with Bezout coefficients x, y such
// that a·x + b·y = g.
func Extended[T any](r algebra.Euclidean[T], a, b T) (g, x, y T, err error) {
	oldR, curR := a, b
	oldS, curS := r.One(), r.Zero()
	oldT, curT := r.Zero(), r.One()

	for !r.IsZero(curR) {
		q, rem, err := r.DivMod(oldR, curR)
		if err != nil {
			var zero T
			return zero, zero, zero, fmt.Errorf("gcd: %w", err)
		}
		oldR, curR = curR, rem
		oldS, curS = curS, r.Sub(oldS, r.Mul(q, curS))
		oldT, curT = curT, r.Sub(oldT, r.Mul(q, curT))
	}

	g = normalize(r, oldR, &oldS, &oldT)
	return g, oldS, oldT, nil
}

// LCM returns the least common multiple of a and b. LCM with zero is zero.
func LCM[T any](r algebra.Euclidean[T], a, b T) (T, error) {
	if r.IsZero(a) || r.IsZero(b) {
		return r.Zero(), nil
	}
	g, err := Euclid(r, a, b)
	if err != nil {
		var zero T
		return zero, err
	}
	q, _, err := r.DivMod(a, g)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("gcd: %w", err)
	}
	return normalize(r, r.Mul(q, b)), nil
}

// AllEuclid returns the GCD of every element of xs over r, reducing chunks
// in parallel. The GCD of an empty slice is zero.
func AllEuclid[T any](r algebra.Euclidean[T], xs []T, opts ...parallel.Option) (T, error) {
	chunks := parallel.Plan(len(xs), opts...)
	partial := make([]T, len(chunks))

	err := parallel.ForErr(context.Background(), len(chunks), func(_ context.Context, lo, hi int) error {
		for c := lo; c < hi; c++ {
			acc := r.Zero()
			for _, x := range xs[chunks[c].Lo:chunks[c].Hi] {
				var err error
				if acc, err = Euclid(r, acc, x); err != nil {
					return err
				}
			}
			partial[c] = acc
		}
		return nil
	}, parallel.WithWorkers(len(chunks)))
	if err != nil {
		var zero T
		return zero, err
	}

	acc := r.Zero()
	for _, p := range partial {
		if acc, err = Euclid(r, acc, p); err != nil {
			var zero T
			return zero, err
		}
	}
	return acc, nil
}

// ModInverse returns the x in [0, |m|) with a·x ≡ 1 (mod m).
func ModInverse(a, m int64) (int64, error) {
	if m == 0 {
		return 0, ErrZeroModulus
	}

	var r algebra.Int64
	_, a, _ = r.DivMod(a, m)
	g, x, _, err := Extended[int64](r, a, m)
	if err != nil {
		return 0, err
	}
	if g != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNotInvertible, a, m, g)
	}
	_, x, _ = r.DivMod(x, m)
	return x, nil
}
