// Package bigmath provides the transcendental constants and functions that
// math/big lacks, evaluated to a requested binary precision.
package bigmath

import (
	"math/big"
	"sync"
)

// guardBits are carried through intermediate sums and rounded away at the end.
const guardBits = 64

var piCache sync.Map // uint -> *big.Float

// Pi returns π rounded to prec bits using Machin's formula
// π = 16·atan(1/5) − 4·atan(1/239). Results are cached per precision; the
// returned value must not be modified.
func Pi(prec uint) *big.Float {
	if v, ok := piCache.Load(prec); ok {
		return v.(*big.Float)
	}

	wp := prec + guardBits
	a := arctanInv(5, wp)
	a.Mul(a, big.NewFloat(16).SetPrec(wp))
	b := arctanInv(239, wp)
	b.Mul(b, big.NewFloat(4).SetPrec(wp))
	pi := new(big.Float).SetPrec(wp).Sub(a, b)
	pi.SetPrec(prec)

	v, _ := piCache.LoadOrStore(prec, pi)
	return v.(*big.Float)
}

// arctanInv returns atan(1/x) by its alternating Taylor series.
func arctanInv(x int64, wp uint) *big.Float {
	xf := new(big.Float).SetPrec(wp).SetInt64(x)
	x2 := new(big.Float).SetPrec(wp).Mul(xf, xf)

	// power = 1/x^(2k+1)
	power := new(big.Float).SetPrec(wp).Quo(big.NewFloat(1).SetPrec(wp), xf)
	sum := new(big.Float).SetPrec(wp).Set(power)
	term := new(big.Float).SetPrec(wp)
	limit := -int(wp)

	for k := int64(1); ; k++ {
		power.Quo(power, x2)
		if power.Sign() == 0 || power.MantExp(nil) < limit {
			break
		}
		term.Quo(power, new(big.Float).SetPrec(wp).SetInt64(2*k+1))
		if k%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}
	return sum
}

// SinCos returns sin(x) and cos(x) rounded to prec bits. The argument is
// reduced into [-π, π] before the Taylor series is summed.
func SinCos(x *big.Float, prec uint) (sin, cos *big.Float) {
	wp := prec + guardBits
	r := reduce(x, wp)

	r2 := new(big.Float).SetPrec(wp).Mul(r, r)
	sin = new(big.Float).SetPrec(wp).Set(r)
	cos = big.NewFloat(1).SetPrec(wp)

	sinTerm := new(big.Float).SetPrec(wp).Set(r)
	cosTerm := big.NewFloat(1).SetPrec(wp)
	limit := -int(wp)
	div := new(big.Float).SetPrec(wp)

	for j := int64(1); ; j++ {
		// cosTerm_j = -cosTerm_{j-1} * r^2 / ((2j-1)(2j))
		div.SetInt64((2*j - 1) * (2 * j))
		cosTerm.Mul(cosTerm, r2)
		cosTerm.Quo(cosTerm, div)
		cosTerm.Neg(cosTerm)
		cos.Add(cos, cosTerm)

		// sinTerm_j = -sinTerm_{j-1} * r^2 / ((2j)(2j+1))
		div.SetInt64((2 * j) * (2*j + 1))
		sinTerm.Mul(sinTerm, r2)
		sinTerm.Quo(sinTerm, div)
		sinTerm.Neg(sinTerm)
		sin.Add(sin, sinTerm)

		if small(sinTerm, limit) && small(cosTerm, limit) {
			break
		}
	}

	return sin.SetPrec(prec), cos.SetPrec(prec)
}

func small(v *big.Float, limit int) bool {
	return v.Sign() == 0 || v.MantExp(nil) < limit
}

// reduce maps x into [-π, π].
func reduce(x *big.Float, wp uint) *big.Float {
	pi := Pi(wp)
	twoPi := new(big.Float).SetPrec(wp).Mul(pi, big.NewFloat(2))
	r := new(big.Float).SetPrec(wp).Set(x)

	if r.Cmp(pi) <= 0 && r.Cmp(new(big.Float).Neg(pi)) >= 0 {
		return r
	}

	q := new(big.Float).SetPrec(wp).Quo(r, twoPi)
	n, _ := q.Int(nil)
	r.Sub(r, new(big.Float).SetPrec(wp).Mul(twoPi, new(big.Float).SetPrec(wp).SetInt(n)))
	if r.Cmp(pi) > 0 {
		r.Sub(r, twoPi)
	} else if r.Cmp(new(big.Float).Neg(pi)) < 0 {
		r.Add(r, twoPi)
	}
	return r
}
