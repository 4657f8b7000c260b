package fft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func TestForward128MatchesGenericPlan(t *testing.T) {
	var c algebra.Complex128
	for _, n := range []int{2, 8, 64, 512} {
		x := testutil.ComplexNoise(int64(n)+100, n)

		want := append([]complex128(nil), x...)
		require.NoError(t, FFT[complex128](c, want))

		got, err := Forward128(x)
		require.NoError(t, err)
		testutil.RequireComplexNearlyEqual(t, got, want, 1e-9)

		back, err := Inverse128(got)
		require.NoError(t, err)
		testutil.RequireComplexNearlyEqual(t, back, x, 1e-12)
	}
}

func TestPlan128InPlace(t *testing.T) {
	p, err := NewPlan128(16)
	require.NoError(t, err)
	assert.Equal(t, 16, p.Len())

	x := testutil.ComplexNoise(8, 16)
	orig := append([]complex128(nil), x...)
	require.NoError(t, p.Forward(x, x))
	require.NoError(t, p.Inverse(x, x))
	testutil.RequireComplexNearlyEqual(t, x, orig, 1e-12)
}

func TestPlan128Errors(t *testing.T) {
	_, err := NewPlan128(0)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = NewPlan128(12)
	assert.ErrorIs(t, err, ErrNotPowerOfTwo)

	p, err := NewPlan128(8)
	require.NoError(t, err)
	assert.ErrorIs(t, p.Forward(make([]complex128, 8), make([]complex128, 4)), ErrShape)
}

func TestMagnitudeAndPower(t *testing.T) {
	in := []complex128{3 + 4i, -1, 2i, 0}
	testutil.RequireSliceNearlyEqual(t, Magnitude(in), []float64{5, 1, 2, 0}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, Power(in), []float64{25, 1, 4, 0}, 1e-12)

	assert.Nil(t, Magnitude(nil))
	assert.Nil(t, Power(nil))
}
