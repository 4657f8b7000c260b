package fft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/internal/testutil"
	"github.com/cwbudde/algo-kernels/parallel"
)

func naiveDFT2D(x []complex128, rows, cols int) []complex128 {
	out := make([]complex128, len(x))
	for u := 0; u < rows; u++ {
		for v := 0; v < cols; v++ {
			var sum complex128
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					angle := -2 * math.Pi * (float64(u*r)/float64(rows) + float64(v*c)/float64(cols))
					sum += x[r*cols+c] * cmplx.Exp(complex(0, angle))
				}
			}
			out[u*cols+v] = sum
		}
	}
	return out
}

func TestFFT2DMatchesNaive(t *testing.T) {
	var c algebra.Complex128
	for _, shape := range [][2]int{{1, 8}, {8, 1}, {4, 4}, {2, 8}, {16, 4}} {
		rows, cols := shape[0], shape[1]
		x := testutil.ComplexNoise(int64(rows*31+cols), rows*cols)
		want := naiveDFT2D(x, rows, cols)

		require.NoError(t, FFT2D[complex128](c, x, rows, cols))
		testutil.RequireComplexNearlyEqual(t, x, want, 1e-9)
	}
}

func TestFFT2DRoundTrip(t *testing.T) {
	var c algebra.Complex128
	x := testutil.ComplexNoise(3, 32*64)
	orig := append([]complex128(nil), x...)

	require.NoError(t, FFT2D[complex128](c, x, 32, 64, parallel.WithWorkers(4)))
	require.NoError(t, InvFFT2D[complex128](c, x, 32, 64, parallel.WithWorkers(4)))
	testutil.RequireComplexNearlyEqual(t, x, orig, 1e-12)
}

func TestFFT3DSeparable(t *testing.T) {
	var c algebra.Complex128
	const d0, d1, d2 = 4, 2, 8

	x := testutil.ComplexNoise(17, d0*d1*d2)
	want := append([]complex128(nil), x...)

	// Reference: transform each axis with explicit line copies.
	line := func(get func(i int) *complex128, n int) {
		buf := make([]complex128, n)
		for i := range buf {
			buf[i] = *get(i)
		}
		require.NoError(t, FFT[complex128](c, buf))
		for i := range buf {
			*get(i) = buf[i]
		}
	}
	idx := func(i, j, k int) int { return (i*d1+j)*d2 + k }
	for i := 0; i < d0; i++ {
		for j := 0; j < d1; j++ {
			line(func(k int) *complex128 { return &want[idx(i, j, k)] }, d2)
		}
	}
	for i := 0; i < d0; i++ {
		for k := 0; k < d2; k++ {
			line(func(j int) *complex128 { return &want[idx(i, j, k)] }, d1)
		}
	}
	for j := 0; j < d1; j++ {
		for k := 0; k < d2; k++ {
			line(func(i int) *complex128 { return &want[idx(i, j, k)] }, d0)
		}
	}

	got := append([]complex128(nil), x...)
	require.NoError(t, FFT3D[complex128](c, got, d0, d1, d2))
	testutil.RequireComplexNearlyEqual(t, got, want, 1e-12)

	nd := append([]complex128(nil), x...)
	require.NoError(t, FFTND[complex128](c, nd, []int{d0, d1, d2}))
	testutil.RequireComplexNearlyEqual(t, nd, got, 0)

	require.NoError(t, InvFFT3D[complex128](c, got, d0, d1, d2))
	testutil.RequireComplexNearlyEqual(t, got, x, 1e-12)
}

func TestFFTNDExactOverModInt(t *testing.T) {
	m := algebra.NTT998244353
	dims := []int{2, 4, 2, 4}
	x := make([]uint64, 64)
	for i := range x {
		x[i] = uint64(i * 7919)
	}
	orig := append([]uint64(nil), x...)

	require.NoError(t, FFTND[uint64](m, x, dims))
	require.NoError(t, InvFFTND[uint64](m, x, dims))
	assert.Equal(t, orig, x)
}

func TestFFTNDQuaternionRoundTrip(t *testing.T) {
	var q algebra.Quaternions
	x := make([]algebra.Quaternion, 8*8)
	for i := range x {
		f := float64(i)
		x[i] = algebra.Quaternion{W: f, X: -f / 2, Y: math.Sin(f), Z: 1}
	}
	orig := append([]algebra.Quaternion(nil), x...)

	require.NoError(t, FFT2D[algebra.Quaternion](q, x, 8, 8))
	require.NoError(t, InvFFT2D[algebra.Quaternion](q, x, 8, 8))
	testutil.RequireNear[algebra.Quaternion](t, q, x, orig, 1e-10)
}

func TestFFTNDShapeErrors(t *testing.T) {
	var c algebra.Complex128
	x := make([]complex128, 16)

	assert.ErrorIs(t, FFT2D[complex128](c, x, 4, 8), ErrShape)
	assert.ErrorIs(t, FFT2D[complex128](c, x, 0, 16), ErrShape)
	assert.ErrorIs(t, FFTND[complex128](c, x, nil), ErrShape)
	assert.ErrorIs(t, FFT3D[complex128](c, make([]complex128, 24), 2, 3, 4), ErrNotPowerOfTwo)
}
