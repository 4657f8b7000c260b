package algebra

import (
	"cmp"
	"math"
)

// Float64 is the field of IEEE-754 double precision reals.
type Float64 struct{}

func (Float64) Zero() float64               { return 0 }
func (Float64) One() float64                { return 1 }
func (Float64) Add(a, b float64) float64    { return a + b }
func (Float64) Sub(a, b float64) float64    { return a - b }
func (Float64) Neg(a float64) float64       { return -a }
func (Float64) Mul(a, b float64) float64    { return a * b }
func (Float64) Equal(a, b float64) bool     { return a == b }
func (Float64) FromInt(n int64) float64     { return float64(n) }
func (Float64) FromFloat(f float64) float64 { return f }
func (Float64) Scale(a, s float64) float64  { return a * s }
func (Float64) Abs(a float64) float64       { return math.Abs(a) }
func (Float64) Compare(a, b float64) int    { return cmp.Compare(a, b) }

// Inv returns 1/a.
func (Float64) Inv(a float64) (float64, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return 1 / a, nil
}

// Float32 is the field of IEEE-754 single precision reals.
type Float32 struct{}

func (Float32) Zero() float32                      { return 0 }
func (Float32) One() float32                       { return 1 }
func (Float32) Add(a, b float32) float32           { return a + b }
func (Float32) Sub(a, b float32) float32           { return a - b }
func (Float32) Neg(a float32) float32              { return -a }
func (Float32) Mul(a, b float32) float32           { return a * b }
func (Float32) Equal(a, b float32) bool            { return a == b }
func (Float32) FromInt(n int64) float32            { return float32(n) }
func (Float32) FromFloat(f float64) float32        { return float32(f) }
func (Float32) Scale(a float32, s float64) float32 { return float32(float64(a) * s) }
func (Float32) Abs(a float32) float64              { return math.Abs(float64(a)) }
func (Float32) Compare(a, b float32) int           { return cmp.Compare(a, b) }

// Inv returns 1/a.
func (Float32) Inv(a float32) (float32, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return 1 / a, nil
}

// Int64 is the Euclidean ring of 64-bit integers. Arithmetic wraps on overflow.
type Int64 struct{}

func (Int64) Zero() int64            { return 0 }
func (Int64) One() int64             { return 1 }
func (Int64) Add(a, b int64) int64   { return a + b }
func (Int64) Sub(a, b int64) int64   { return a - b }
func (Int64) Neg(a int64) int64      { return -a }
func (Int64) Mul(a, b int64) int64   { return a * b }
func (Int64) Equal(a, b int64) bool  { return a == b }
func (Int64) FromInt(n int64) int64  { return n }
func (Int64) IsZero(a int64) bool    { return a == 0 }
func (Int64) Compare(a, b int64) int { return cmp.Compare(a, b) }
func (Int64) Abs(a int64) float64    { return math.Abs(float64(a)) }

// DivMod returns the Euclidean quotient and remainder with 0 <= r < |b|.
func (Int64) DivMod(a, b int64) (int64, int64, error) {
	if b == 0 {
		return 0, 0, ErrDivisionByZero
	}
	q, r := a/b, a%b
	if r < 0 {
		if b > 0 {
			q--
			r += b
		} else {
			q++
			r -= b
		}
	}
	return q, r, nil
}
