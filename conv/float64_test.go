package conv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func TestDirectFloat64MatchesGeneric(t *testing.T) {
	var f algebra.Float64
	for _, m := range []int{1, 3, 4, 17} {
		a := testutil.DeterministicNoise(int64(m), 1, 50)
		b := testutil.DeterministicNoise(int64(m)+1, 1, m)

		want, err := Direct[float64](f, a, b)
		require.NoError(t, err)
		got, err := DirectFloat64(a, b)
		require.NoError(t, err)
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
	}

	assert.Panics(t, func() { DirectFloat64To(make([]float64, 3), []float64{1, 2}, []float64{1, 2, 3}) })
}

func TestOverlapAddMatchesDirect(t *testing.T) {
	signal := testutil.DeterministicNoise(1, 1, 1000)
	for _, kernelLen := range []int{1, 5, 65, 300} {
		kernel := testutil.DeterministicNoise(int64(kernelLen), 1, kernelLen)
		want, err := DirectFloat64(signal, kernel)
		require.NoError(t, err)

		for _, blockSize := range []int{0, 16, 100, 1000} {
			t.Run(fmt.Sprintf("kernel=%d/block=%d", kernelLen, blockSize), func(t *testing.T) {
				oa, err := NewOverlapAdd(kernel, blockSize)
				require.NoError(t, err)

				got, err := oa.Process(signal)
				require.NoError(t, err)
				testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)

				out := make([]float64, len(want))
				out[0] = 42 // must be cleared
				require.NoError(t, oa.ProcessTo(out, signal))
				testutil.RequireSliceNearlyEqual(t, out, want, 1e-9)
			})
		}
	}
}

func TestOverlapAddSizes(t *testing.T) {
	oa, err := NewOverlapAdd(make([]float64, 65), 0)
	require.NoError(t, err)
	assert.Equal(t, 256, oa.BlockSize())
	assert.Equal(t, 512, oa.FFTSize())
	assert.Equal(t, 65, oa.KernelLen())

	oa, err = NewOverlapAdd(make([]float64, 1000), 0)
	require.NoError(t, err)
	assert.Equal(t, 1024, oa.BlockSize())
	assert.Equal(t, 2048, oa.FFTSize())
}

func TestOverlapAddErrors(t *testing.T) {
	_, err := NewOverlapAdd(nil, 0)
	assert.ErrorIs(t, err, ErrEmptyKernel)

	_, err = NewOverlapAdd([]float64{1}, -4)
	assert.ErrorIs(t, err, ErrInvalidBlockSize)

	oa, err := NewOverlapAdd([]float64{1, 2, 3}, 8)
	require.NoError(t, err)

	_, err = oa.Process(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	err = oa.ProcessTo(make([]float64, 4), []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestConvolveFloat64(t *testing.T) {
	var f algebra.Float64
	long := testutil.DeterministicNoise(8, 1, 400)
	short := testutil.DeterministicNoise(9, 1, 10)
	medium := testutil.DeterministicNoise(10, 1, 120)

	for _, pair := range [][2][]float64{{long, short}, {short, long}, {long, medium}, {medium, long}} {
		want, err := Direct[float64](f, pair[0], pair[1])
		require.NoError(t, err)
		got, err := ConvolveFloat64(pair[0], pair[1])
		require.NoError(t, err)
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}

	same, err := ConvolveFloat64Mode([]float64{1, 2, 3, 4, 5}, []float64{1, 1, 1}, ModeSame)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, same, []float64{3, 6, 9, 12, 9}, 1e-12)

	_, err = ConvolveFloat64(nil, short)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = ConvolveFloat64Mode(short, nil, ModeFull)
	assert.ErrorIs(t, err, ErrEmptyKernel)
}
