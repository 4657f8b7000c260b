// Package conv provides convolution and correlation routines over any ring
// of the algebra package.
//
// The package offers two strategies:
//
//   - Direct convolution: O(N*M) ring arithmetic, exact for exact algebras and
//     correct for non-commutative ones (the left operand always comes from a)
//   - Transform convolution: O(N log N) through the fft package, used for long
//     inputs when the algebra is commutative and has roots of unity
//
// # Usage
//
//	r := algebra.Int64{}
//	y, err := conv.Direct[int64](r, signal, kernel)
//	y, err := conv.Convolve[complex128](algebra.Complex128{}, x, h) // auto-selects
//	c, err := conv.Correlate[complex128](algebra.Complex128{}, a, b)
//
// For float64 signals the package also wraps an algo-fft backed overlap-add
// block convolver:
//
//	oa, err := conv.NewOverlapAdd(kernel, blockSize)
//	y, err := oa.Process(signal)
//
// # Algorithm Selection
//
// [Convolve] and [ConvolveFloat64] use direct convolution when the shorter
// input has at most 64 samples and a transform method otherwise. Algebras
// without a usable transform (integers, quaternions, octonions, rings with no
// root of unity of the required order) always take the direct path.
//
// # Correlation lags
//
// Correlation results have length len(a)+len(b)-1 and index k holds lag
// k-(len(b)-1). Use [LagFromIndex] and [IndexFromLag] to convert.
package conv
