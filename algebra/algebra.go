package algebra

import (
	"errors"
	"fmt"
)

// Errors returned by algebra operations.
var (
	ErrDivisionByZero = errors.New("algebra: division by zero")
	ErrNotInvertible  = errors.New("algebra: element is not invertible")
	ErrNoRootOfUnity  = errors.New("algebra: no root of unity of requested order")
	ErrLengthMismatch = errors.New("algebra: length mismatch")
)

// Additive is an abelian group under addition.
type Additive[T any] interface {
	Zero() T
	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
	Equal(a, b T) bool
}

// Ring is an additive group with an associative (or at least alternative)
// multiplication and a unit.
type Ring[T any] interface {
	Additive[T]
	One() T
	Mul(a, b T) T
	// FromInt embeds an integer into the ring.
	FromInt(n int64) T
}

// Field is a ring in which every non-zero element has an inverse.
// Multiplication is not required to commute.
type Field[T any] interface {
	Ring[T]
	// Inv returns the multiplicative inverse of a or ErrDivisionByZero.
	Inv(a T) (T, error)
}

// Euclidean is a ring with division with remainder.
type Euclidean[T any] interface {
	Ring[T]
	DivMod(a, b T) (q, r T, err error)
	IsZero(a T) bool
}

// Ordered provides a total order over the elements.
type Ordered[T any] interface {
	// Compare returns -1, 0 or +1.
	Compare(a, b T) int
}

// Normed reports the absolute value (Euclidean norm) of an element.
type Normed[T any] interface {
	Abs(a T) float64
}

// Conjugate provides the algebra involution.
type Conjugate[T any] interface {
	Conj(a T) T
}

// RealScaler multiplies elements by real weights.
type RealScaler[T any] interface {
	Scale(a T, s float64) T
	FromFloat(f float64) T
}

// RootsOfUnity provides the twiddle factors of a discrete Fourier transform.
type RootsOfUnity[T any] interface {
	// RootOfUnity returns w^k where w is the primitive n-th root of unity used
	// by the forward transform. Negative k selects inverse powers.
	RootOfUnity(n, k int) (T, error)
}

// Div returns a * b^-1.
func Div[T any](f Field[T], a, b T) (T, error) {
	inv, err := f.Inv(b)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.Mul(a, inv), nil
}

// Sum adds all elements of xs. The empty sum is Zero.
func Sum[T any](a Additive[T], xs []T) T {
	acc := a.Zero()
	for _, x := range xs {
		acc = a.Add(acc, x)
	}
	return acc
}

// Product multiplies all elements of xs left to right. The empty product is One.
func Product[T any](r Ring[T], xs []T) T {
	acc := r.One()
	for _, x := range xs {
		acc = r.Mul(acc, x)
	}
	return acc
}

// Pow computes x^n by square-and-multiply.
func Pow[T any](r Ring[T], x T, n uint64) T {
	result := r.One()
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = r.Mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base = r.Mul(base, base)
		}
	}
	return result
}

// DotProduct returns sum(a[i] * b[i]).
func DotProduct[T any](r Ring[T], a, b []T) (T, error) {
	if len(a) != len(b) {
		var zero T
		return zero, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	acc := r.Zero()
	for i := range a {
		acc = r.Add(acc, r.Mul(a[i], b[i]))
	}
	return acc, nil
}

// Max returns the larger of a and b under o.
func Max[T any](o Ordered[T], a, b T) T {
	if o.Compare(a, b) < 0 {
		return b
	}
	return a
}

// Min returns the smaller of a and b under o.
func Min[T any](o Ordered[T], a, b T) T {
	if o.Compare(b, a) < 0 {
		return b
	}
	return a
}

// reduceIndex maps k into [0, n).
func reduceIndex(k, n int) int {
	k %= n
	if k < 0 {
		k += n
	}
	return k
}
