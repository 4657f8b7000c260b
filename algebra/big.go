package algebra

import (
	"math"
	"math/big"

	"github.com/cwbudde/algo-kernels/internal/bigmath"
)

// DefaultPrec is the mantissa precision used by BigFloat and BigComplexes when
// Prec is zero.
const DefaultPrec = 256

func precOrDefault(p uint) uint {
	if p == 0 {
		return DefaultPrec
	}
	return p
}

// BigFloat is the field of arbitrary-precision reals. Every result is rounded
// to Prec bits.
type BigFloat struct {
	Prec uint
}

func (b BigFloat) newFloat() *big.Float {
	return new(big.Float).SetPrec(precOrDefault(b.Prec))
}

func (b BigFloat) Zero() *big.Float               { return b.newFloat() }
func (b BigFloat) One() *big.Float                { return b.newFloat().SetInt64(1) }
func (b BigFloat) FromInt(n int64) *big.Float     { return b.newFloat().SetInt64(n) }
func (b BigFloat) FromFloat(f float64) *big.Float { return b.newFloat().SetFloat64(f) }
func (b BigFloat) Add(x, y *big.Float) *big.Float { return b.newFloat().Add(x, y) }
func (b BigFloat) Sub(x, y *big.Float) *big.Float { return b.newFloat().Sub(x, y) }
func (b BigFloat) Neg(x *big.Float) *big.Float    { return b.newFloat().Neg(x) }
func (b BigFloat) Mul(x, y *big.Float) *big.Float { return b.newFloat().Mul(x, y) }
func (b BigFloat) Equal(x, y *big.Float) bool     { return x.Cmp(y) == 0 }
func (b BigFloat) Compare(x, y *big.Float) int    { return x.Cmp(y) }

// Scale multiplies x by the real s.
func (b BigFloat) Scale(x *big.Float, s float64) *big.Float {
	return b.newFloat().Mul(x, big.NewFloat(s))
}

// Abs returns |x| rounded to float64.
func (b BigFloat) Abs(x *big.Float) float64 {
	f, _ := new(big.Float).Abs(x).Float64()
	return f
}

// Inv returns 1/x.
func (b BigFloat) Inv(x *big.Float) (*big.Float, error) {
	if x.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return b.newFloat().Quo(b.One(), x), nil
}

// BigComplex is an arbitrary-precision complex number. Re and Im are never
// mutated by BigComplexes operations.
type BigComplex struct {
	Re, Im *big.Float
}

// Complex128 rounds z to double precision.
func (z BigComplex) Complex128() complex128 {
	re, _ := z.Re.Float64()
	im, _ := z.Im.Float64()
	return complex(re, im)
}

// BigComplexes is the field of arbitrary-precision complex numbers.
type BigComplexes struct {
	Prec uint
}

func (c BigComplexes) reals() BigFloat { return BigFloat{Prec: c.Prec} }

// FromComplex converts a complex128 into a BigComplex.
func (c BigComplexes) FromComplex(v complex128) BigComplex {
	r := c.reals()
	return BigComplex{Re: r.FromFloat(real(v)), Im: r.FromFloat(imag(v))}
}

func (c BigComplexes) Zero() BigComplex {
	r := c.reals()
	return BigComplex{Re: r.Zero(), Im: r.Zero()}
}

func (c BigComplexes) One() BigComplex {
	r := c.reals()
	return BigComplex{Re: r.One(), Im: r.Zero()}
}

func (c BigComplexes) FromInt(n int64) BigComplex {
	r := c.reals()
	return BigComplex{Re: r.FromInt(n), Im: r.Zero()}
}

func (c BigComplexes) FromFloat(f float64) BigComplex {
	r := c.reals()
	return BigComplex{Re: r.FromFloat(f), Im: r.Zero()}
}

func (c BigComplexes) Add(a, b BigComplex) BigComplex {
	r := c.reals()
	return BigComplex{Re: r.Add(a.Re, b.Re), Im: r.Add(a.Im, b.Im)}
}

func (c BigComplexes) Sub(a, b BigComplex) BigComplex {
	r := c.reals()
	return BigComplex{Re: r.Sub(a.Re, b.Re), Im: r.Sub(a.Im, b.Im)}
}

func (c BigComplexes) Neg(a BigComplex) BigComplex {
	r := c.reals()
	return BigComplex{Re: r.Neg(a.Re), Im: r.Neg(a.Im)}
}

func (c BigComplexes) Conj(a BigComplex) BigComplex {
	r := c.reals()
	return BigComplex{Re: r.Add(a.Re, r.Zero()), Im: r.Neg(a.Im)}
}

func (c BigComplexes) Equal(a, b BigComplex) bool {
	return a.Re.Cmp(b.Re) == 0 && a.Im.Cmp(b.Im) == 0
}

func (c BigComplexes) Scale(a BigComplex, s float64) BigComplex {
	r := c.reals()
	return BigComplex{Re: r.Scale(a.Re, s), Im: r.Scale(a.Im, s)}
}

// Mul returns (ac - bd) + (ad + bc)i.
func (c BigComplexes) Mul(a, b BigComplex) BigComplex {
	r := c.reals()
	return BigComplex{
		Re: r.Sub(r.Mul(a.Re, b.Re), r.Mul(a.Im, b.Im)),
		Im: r.Add(r.Mul(a.Re, b.Im), r.Mul(a.Im, b.Re)),
	}
}

func (c BigComplexes) norm2(a BigComplex) *big.Float {
	r := c.reals()
	return r.Add(r.Mul(a.Re, a.Re), r.Mul(a.Im, a.Im))
}

// Abs returns |a| rounded to float64.
func (c BigComplexes) Abs(a BigComplex) float64 {
	n2, _ := c.norm2(a).Float64()
	return math.Sqrt(n2)
}

// Inv returns conj(a)/|a|^2.
func (c BigComplexes) Inv(a BigComplex) (BigComplex, error) {
	n2 := c.norm2(a)
	if n2.Sign() == 0 {
		return BigComplex{}, ErrDivisionByZero
	}
	r := c.reals()
	inv, _ := r.Inv(n2)
	conj := c.Conj(a)
	return BigComplex{Re: r.Mul(conj.Re, inv), Im: r.Mul(conj.Im, inv)}, nil
}

// RootOfUnity returns exp(-2πik/n) evaluated at full precision.
func (c BigComplexes) RootOfUnity(n, k int) (BigComplex, error) {
	if n <= 0 {
		return BigComplex{}, ErrNoRootOfUnity
	}
	k = reduceIndex(k, n)
	r := c.reals()
	if (4*k)%n == 0 {
		cs, sn, _ := unitRoot(n, k)
		return BigComplex{Re: r.FromFloat(cs), Im: r.FromFloat(sn)}, nil
	}

	prec := precOrDefault(c.Prec)
	theta := new(big.Float).SetPrec(prec + 64).Set(bigmath.Pi(prec + 64))
	theta.Mul(theta, big.NewFloat(float64(-2*k)))
	theta.Quo(theta, new(big.Float).SetInt64(int64(n)))
	sin, cos := bigmath.SinCos(theta, prec)
	return BigComplex{Re: cos, Im: sin}, nil
}

// BigInt is the Euclidean ring of arbitrary-precision integers.
type BigInt struct{}

func (BigInt) Zero() *big.Int             { return new(big.Int) }
func (BigInt) One() *big.Int              { return big.NewInt(1) }
func (BigInt) FromInt(n int64) *big.Int   { return big.NewInt(n) }
func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigInt) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(a) }
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (BigInt) Equal(a, b *big.Int) bool   { return a.Cmp(b) == 0 }
func (BigInt) Compare(a, b *big.Int) int  { return a.Cmp(b) }
func (BigInt) IsZero(a *big.Int) bool     { return a.Sign() == 0 }

// Abs returns |a| rounded to float64.
func (BigInt) Abs(a *big.Int) float64 {
	f, _ := new(big.Float).SetInt(a).Float64()
	return math.Abs(f)
}

// DivMod returns the Euclidean quotient and remainder with 0 <= r < |b|.
func (BigInt) DivMod(a, b *big.Int) (*big.Int, *big.Int, error) {
	if b.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}
	q, r := new(big.Int).DivMod(a, b, new(big.Int))
	return q, r, nil
}

// Rational is the field of arbitrary-precision fractions.
type Rational struct{}

func (Rational) Zero() *big.Rat             { return new(big.Rat) }
func (Rational) One() *big.Rat              { return big.NewRat(1, 1) }
func (Rational) FromInt(n int64) *big.Rat   { return big.NewRat(n, 1) }
func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rational) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rational) Equal(a, b *big.Rat) bool   { return a.Cmp(b) == 0 }
func (Rational) Compare(a, b *big.Rat) int  { return a.Cmp(b) }

// Abs returns |a| rounded to float64.
func (Rational) Abs(a *big.Rat) float64 {
	f, _ := a.Float64()
	return math.Abs(f)
}

// Inv returns 1/a.
func (Rational) Inv(a *big.Rat) (*big.Rat, error) {
	if a.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Rat).Inv(a), nil
}
