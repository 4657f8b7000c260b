// Package matrix provides a dense row-major matrix over any algebra and the
// textbook kernels on it: naive, row-parallel and Strassen multiplication,
// elementwise arithmetic, powers, determinants and Gauss-Jordan inversion.
//
// Products keep operand order (a[i][k] * b[k][j]), so multiplication is
// correct over non-commutative rings such as the quaternions. Determinant is
// only meaningful for commutative fields. Inverse needs an associative
// division ring.
//
// Float64 matrices additionally have BLAS-backed and SIMD-backed fast paths
// ([MulFloat64], [HadamardFloat64]).
package matrix
