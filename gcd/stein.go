package gcd

import (
	"math/big"
	"math/bits"

	"github.com/cwbudde/algo-kernels/parallel"
)

// Integer is any Go integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// magnitude returns |x| without overflowing for the most negative value.
func magnitude[T Integer](x T) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

// Stein returns gcd(|a|, |b|) by the binary GCD algorithm.
// Stein(0, 0) is 0. For signed types the result of gcd(MinInt, 0) or
// gcd(MinInt, MinInt) does not fit and wraps like the negation it implies.
func Stein[T Integer](a, b T) T {
	return T(stein(magnitude(a), magnitude(b)))
}

func stein(u, v uint64) uint64 {
	if u == 0 {
		return v
	}
	if v == 0 {
		return u
	}

	shift := bits.TrailingZeros64(u | v)
	u >>= bits.TrailingZeros64(u)
	for v != 0 {
		v >>= bits.TrailingZeros64(v)
		if u > v {
			u, v = v, u
		}
		v -= u
	}
	return u << shift
}

// SteinBig returns gcd(|a|, |b|) as a new big.Int. The inputs are not modified.
func SteinBig(a, b *big.Int) *big.Int {
	u := new(big.Int).Abs(a)
	v := new(big.Int).Abs(b)
	if u.Sign() == 0 {
		return v
	}
	if v.Sign() == 0 {
		return u
	}

	shift := min(u.TrailingZeroBits(), v.TrailingZeroBits())
	u.Rsh(u, u.TrailingZeroBits())
	for v.Sign() != 0 {
		v.Rsh(v, v.TrailingZeroBits())
		if u.Cmp(v) > 0 {
			u, v = v, u
		}
		v.Sub(v, u)
	}
	return u.Lsh(u, shift)
}

// All returns the GCD of every element of xs, reducing chunks in parallel.
// The GCD of an empty slice is 0.
func All[T Integer](xs []T, opts ...parallel.Option) T {
	return parallel.Reduce(xs, 0, Stein[T], opts...)
}
