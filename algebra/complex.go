package algebra

import (
	"math"
	"math/cmplx"
)

// Complex128 is the field of double precision complex numbers.
type Complex128 struct{}

func (Complex128) Zero() complex128                         { return 0 }
func (Complex128) One() complex128                          { return 1 }
func (Complex128) Add(a, b complex128) complex128           { return a + b }
func (Complex128) Sub(a, b complex128) complex128           { return a - b }
func (Complex128) Neg(a complex128) complex128              { return -a }
func (Complex128) Mul(a, b complex128) complex128           { return a * b }
func (Complex128) Equal(a, b complex128) bool               { return a == b }
func (Complex128) FromInt(n int64) complex128               { return complex(float64(n), 0) }
func (Complex128) FromFloat(f float64) complex128           { return complex(f, 0) }
func (Complex128) Scale(a complex128, s float64) complex128 { return a * complex(s, 0) }
func (Complex128) Abs(a complex128) float64                 { return cmplx.Abs(a) }
func (Complex128) Conj(a complex128) complex128             { return cmplx.Conj(a) }

// Inv returns 1/a.
func (Complex128) Inv(a complex128) (complex128, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return 1 / a, nil
}

// RootOfUnity returns exp(-2πik/n).
func (Complex128) RootOfUnity(n, k int) (complex128, error) {
	c, s, err := unitRoot(n, k)
	if err != nil {
		return 0, err
	}
	return complex(c, s), nil
}

// unitRoot returns cos and sin of -2πk/n. Quarter turns are exact so that
// small transforms carry no rounding noise.
func unitRoot(n, k int) (float64, float64, error) {
	if n <= 0 {
		return 0, 0, ErrNoRootOfUnity
	}
	k = reduceIndex(k, n)
	if (4*k)%n == 0 {
		switch 4 * k / n {
		case 0:
			return 1, 0, nil
		case 1:
			return 0, -1, nil
		case 2:
			return -1, 0, nil
		default:
			return 0, 1, nil
		}
	}
	theta := -2 * math.Pi * float64(k) / float64(n)
	s, c := math.Sincos(theta)
	return c, s, nil
}
