package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/internal/testutil"
	"github.com/cwbudde/algo-kernels/parallel"
)

func plane(rows, cols int, fn func(y, x float64) float64) []float64 {
	out := make([]float64, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out[y*cols+x] = fn(float64(y), float64(x))
		}
	}
	return out
}

func TestGridIdentity(t *testing.T) {
	var f algebra.Float64
	src := testutil.DeterministicNoise(3, 1, 6*5)

	nn, err := Nearest2D(src, 6, 5, 6, 5)
	require.NoError(t, err)
	assert.Equal(t, src, nn)

	bl, err := Bilinear2D[float64](f, src, 6, 5, 6, 5)
	require.NoError(t, err)
	assert.Equal(t, src, bl)

	bc, err := Bicubic2D[float64](f, src, 6, 5, 6, 5)
	require.NoError(t, err)
	assert.Equal(t, src, bc)
}

func TestBilinearReproducesAffine(t *testing.T) {
	var f algebra.Float64
	affine := func(y, x float64) float64 { return 2*x - 3*y + 1 }
	src := plane(5, 4, affine)

	got, err := Bilinear2D[float64](f, src, 5, 4, 9, 7, parallel.WithWorkers(3))
	require.NoError(t, err)

	want := plane(9, 7, func(y, x float64) float64 {
		return affine(y*4/8, x*3/6)
	})
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestBicubicConstantAndInterior(t *testing.T) {
	var f algebra.Float64

	flat, err := Bicubic2D[float64](f, testutil.DC(2.5, 16), 4, 4, 7, 9)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, flat, testutil.DC(2.5, 63), 1e-12)

	affine := func(y, x float64) float64 { return x + 2*y }
	src := plane(9, 9, affine)
	got, err := Bicubic2D[float64](f, src, 9, 9, 17, 17)
	require.NoError(t, err)
	for y := 2; y < 15; y++ {
		for x := 2; x < 15; x++ {
			assert.InDelta(t, affine(float64(y)/2, float64(x)/2), got[y*17+x], 1e-12, "(%d,%d)", y, x)
		}
	}
}

func TestBicubicMatchesSeparableCubic(t *testing.T) {
	var f algebra.Float64
	const rows, cols, outRows, outCols = 5, 6, 8, 11
	src := testutil.DeterministicNoise(4, 1, rows*cols)

	// Resize every row, then every column, with the 1-D cubic.
	tmp := make([]float64, rows*outCols)
	for y := 0; y < rows; y++ {
		r, err := Cubic[float64](f, src[y*cols:(y+1)*cols], outCols)
		require.NoError(t, err)
		copy(tmp[y*outCols:], r)
	}
	want := make([]float64, outRows*outCols)
	col := make([]float64, rows)
	for x := 0; x < outCols; x++ {
		for y := range col {
			col[y] = tmp[y*outCols+x]
		}
		c, err := Cubic[float64](f, col, outRows)
		require.NoError(t, err)
		for y, v := range c {
			want[y*outCols+x] = v
		}
	}

	got, err := Bicubic2D[float64](f, src, rows, cols, outRows, outCols)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestNearest2D(t *testing.T) {
	src := []int{
		1, 2,
		3, 4,
	}
	got, err := Nearest2D(src, 2, 2, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{
		1, 2, 2,
		3, 4, 4,
		3, 4, 4,
	}, got)
}

func TestGridErrors(t *testing.T) {
	var f algebra.Float64
	_, err := Bilinear2D[float64](f, make([]float64, 5), 2, 3, 4, 4)
	assert.ErrorIs(t, err, ErrShape)
	_, err = Bicubic2D[float64](f, make([]float64, 6), 2, 3, 0, 4)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = Nearest2D(make([]float64, 6), 2, 3, 4, -1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
