// Package gcd computes greatest common divisors.
//
// [Stein] is the binary GCD for Go integer types and [SteinBig] its
// arbitrary-precision counterpart. [Euclid], [Extended] and [LCM] work over
// any Euclidean ring of the algebra package, such as algebra.Int64 or
// algebra.BigInt. Results are normalised to be non-negative whenever the ring
// is ordered.
//
//	g := gcd.Stein(48, -18)                        // 6
//	g, x, y, err := gcd.Extended[int64](algebra.Int64{}, 240, 46)
//	// 240*x + 46*y == g == 2
package gcd
