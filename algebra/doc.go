// Package algebra defines the abstract type hierarchy every kernel in this
// module is written against.
//
// An algebra is a value that carries the operations of a number system. The
// elements themselves stay plain Go values (float64, complex128, *big.Float,
// a Quaternion struct, a residue uint64), so the same algorithm code runs over
// any of them:
//
//	var a algebra.Complex128
//	w, err := a.RootOfUnity(8, 1) // exp(-2πi/8)
//	y := a.Mul(w, x)
//
// The hierarchy is built from small interfaces that kernels combine in their
// own constraints:
//
//   - [Additive]: zero, addition, subtraction, negation, equality
//   - [Ring]: adds one, multiplication and integer embedding
//   - [Field]: adds multiplicative inverses (division rings such as the
//     quaternions and alternative algebras such as the octonions qualify)
//   - [Euclidean]: a ring with division with remainder (GCD)
//   - [Ordered], [Normed], [Conjugate], [RealScaler], [RootsOfUnity]: capabilities
//
// # Implementations
//
//	algebra        element        capabilities
//	Float64        float64        Field Ordered Normed RealScaler
//	Float32        float32        Field Ordered Normed RealScaler
//	Int64          int64          Euclidean Ordered Normed
//	Complex128     complex128     Field Normed Conjugate RealScaler RootsOfUnity
//	Quaternions    Quaternion     Field Normed Conjugate RealScaler RootsOfUnity
//	Octonions      Octonion       Field Normed Conjugate RealScaler RootsOfUnity
//	BigFloat       *big.Float     Field Ordered Normed RealScaler
//	BigComplexes   BigComplex     Field Normed Conjugate RealScaler RootsOfUnity
//	BigInt         *big.Int       Euclidean Ordered Normed
//	Rational       *big.Rat       Field Ordered Normed
//	ModInt         uint64         Field (prime modulus) Ordered RootsOfUnity
//
// Operations never mutate their arguments. Arbitrary-precision algebras return
// freshly allocated values.
package algebra
