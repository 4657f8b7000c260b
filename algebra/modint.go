package algebra

import (
	"cmp"
	"math/big"
	"math/bits"
)

// ModInt is the ring of integers modulo Modulus, with residues stored as
// uint64 in [0, Modulus). It is a field when Modulus is prime.
//
// Generator is a primitive root of the multiplicative group. It is only
// required for RootOfUnity; a transform of length n needs n | Modulus-1.
type ModInt struct {
	Modulus   uint64
	Generator uint64
}

// NTT998244353 is the classic number-theoretic transform prime 119·2^23+1
// with primitive root 3. It supports power-of-two transforms up to 2^23.
var NTT998244353 = ModInt{Modulus: 998244353, Generator: 3}

func (m ModInt) Zero() uint64            { return 0 }
func (m ModInt) Equal(a, b uint64) bool  { return a == b }
func (m ModInt) Compare(a, b uint64) int { return cmp.Compare(a, b) }

// One returns 1 mod m.
func (m ModInt) One() uint64 {
	if m.Modulus == 1 {
		return 0
	}
	return 1
}

// Reduce maps an arbitrary uint64 into [0, Modulus).
func (m ModInt) Reduce(v uint64) uint64 {
	return v % m.Modulus
}

// FromInt maps n to its non-negative residue.
func (m ModInt) FromInt(n int64) uint64 {
	if n >= 0 {
		return uint64(n) % m.Modulus
	}
	r := uint64(-(n + 1)) % m.Modulus // avoids overflow on MinInt64
	return m.Modulus - 1 - r
}

func (m ModInt) Add(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= m.Modulus {
		s -= m.Modulus
	}
	return s
}

func (m ModInt) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return m.Modulus - (b - a)
}

func (m ModInt) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return m.Modulus - a
}

// Mul uses a 128-bit intermediate product.
func (m ModInt) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m.Modulus)
}

// Inv returns the inverse of a, or ErrDivisionByZero for 0 and
// ErrNotInvertible when gcd(a, Modulus) != 1.
func (m ModInt) Inv(a uint64) (uint64, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	mod := new(big.Int).SetUint64(m.Modulus)
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(a), mod)
	if inv == nil {
		return 0, ErrNotInvertible
	}
	return inv.Uint64(), nil
}

// RootOfUnity returns w^k for w = Generator^((Modulus-1)/n).
func (m ModInt) RootOfUnity(n, k int) (uint64, error) {
	if n <= 0 || m.Generator == 0 || m.Modulus < 2 || (m.Modulus-1)%uint64(n) != 0 {
		return 0, ErrNoRootOfUnity
	}
	w := Pow[uint64](m, m.Generator%m.Modulus, (m.Modulus-1)/uint64(n))
	return Pow[uint64](m, w, uint64(reduceIndex(k, n))), nil
}
