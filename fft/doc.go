// Package fft provides radix-2 Cooley-Tukey fast Fourier transforms over any
// algebra with roots of unity.
//
// The same kernel (bit-reversal permutation followed by a decimation-in-time
// butterfly network) transforms complex numbers, quaternions, octonions,
// arbitrary-precision complex numbers and residues modulo an NTT prime:
//
//	x := []complex128{1, 2, 3, 4}
//	err := fft.FFT(algebra.Complex128{}, x)
//	err = fft.InvFFT(algebra.Complex128{}, x) // x is back to 1, 2, 3, 4
//
// # Conventions
//
//   - Forward: X[k] = sum_j w^(jk) x[j] with w the algebra's primitive n-th root
//     (exp(-2πi/n) for complex-like algebras).
//   - Inverse uses w^-1 and scales by 1/n, so InvFFT(FFT(x)) == x.
//   - Twiddles multiply from the left. In non-commutative algebras this is the
//     left-sided transform; it is still exactly inverted by InvFFT.
//   - Lengths must be powers of two.
//
// # Multi-dimensional transforms
//
// [FFT2D], [FFT3D] and [FFTND] operate on row-major data. They apply the 1-D
// kernel along every axis in turn. Lines of an axis are independent and are
// fanned out with package parallel; non-contiguous lines are accessed through
// [seq.Strided] views, so no transposition or copying is needed.
//
// # complex128 fast path
//
// [Plan128] wraps an algo-fft plan for plain complex128 data. [Magnitude] and
// [Power] reduce complex spectra with algo-vecmath block kernels.
package fft
