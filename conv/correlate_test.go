package conv

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func TestCorrelateLags(t *testing.T) {
	var r algebra.Int64
	a := []int64{1, 2, 3}
	b := []int64{1, 2}

	got, err := Correlate[int64](r, a, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 5, 8, 3}, got)

	// Zero lag is sum(a[i]*b[i]).
	assert.Equal(t, int64(5), got[IndexFromLag(0, len(b))])
	assert.Equal(t, -1, LagFromIndex(0, len(b)))
	assert.Equal(t, 2, LagFromIndex(3, len(b)))

	direct, err := CorrelateDirect[int64](r, a, b)
	require.NoError(t, err)
	assert.Equal(t, got, direct)

	valid, err := CorrelateMode[int64](r, a, b, ModeValid)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 8}, valid)
}

func TestCorrelateConjugates(t *testing.T) {
	var c algebra.Complex128
	got, err := Correlate[complex128](c, []complex128{1i}, []complex128{1i})
	require.NoError(t, err)
	assert.Equal(t, []complex128{1}, got)

	x := testutil.ComplexNoise(12, 40)
	auto, err := AutoCorrelate[complex128](c, x)
	require.NoError(t, err)
	require.Len(t, auto, 2*len(x)-1)

	var energy float64
	for _, v := range x {
		energy += real(v)*real(v) + imag(v)*imag(v)
	}
	zero := auto[len(x)-1]
	assert.InDelta(t, energy, real(zero), 1e-12)
	assert.InDelta(t, 0, imag(zero), 1e-12)

	// Autocorrelation is Hermitian: c[-k] = conj(c[k]).
	for k := 1; k < len(x); k++ {
		d := auto[len(x)-1-k] - cmplx.Conj(auto[len(x)-1+k])
		assert.InDelta(t, 0, cmplx.Abs(d), 1e-12)
	}
}

func TestCorrelateFindsDelay(t *testing.T) {
	const delay = 7
	x := testutil.DeterministicNoise(21, 1, 256)
	b := x[delay:]

	corr, err := CorrelateFloat64(x, b)
	require.NoError(t, err)
	idx, _ := FindPeak(corr)
	assert.Equal(t, delay, LagFromIndex(idx, len(b)))

	generic, err := Correlate[float64](algebra.Float64{}, x, b)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, corr, generic, 1e-9)
}

func TestCorrelateErrors(t *testing.T) {
	var r algebra.Int64
	_, err := Correlate[int64](r, nil, []int64{1})
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = CorrelateDirect[int64](r, []int64{1}, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = CorrelateFloat64([]float64{1}, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestFindPeak(t *testing.T) {
	idx, v := FindPeak([]float64{0.5, 3, -4, 3})
	assert.Equal(t, 1, idx)
	assert.Equal(t, 3.0, v)

	idx, v = FindPeak(nil)
	assert.Equal(t, -1, idx)
	assert.Zero(t, v)

	for _, lag := range []int{-3, 0, 5} {
		assert.Equal(t, lag, LagFromIndex(IndexFromLag(lag, 4), 4))
	}
}
