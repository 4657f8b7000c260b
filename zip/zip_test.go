package zip

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-kernels/internal/testutil"
	"github.com/cwbudde/algo-kernels/parallel"
)

func TestZipUnzip(t *testing.T) {
	pairs, err := Zip([]int{1, 2, 3}, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []Pair[int, string]{{1, "a"}, {2, "b"}, {3, "c"}}, pairs)

	a, b := Unzip(pairs)
	assert.Equal(t, []int{1, 2, 3}, a)
	assert.Equal(t, []string{"a", "b", "c"}, b)

	_, err = Zip([]int{1}, []string{})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	empty, err := Zip([]int(nil), []int(nil))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestZipWithLargeInputIsWorkerIndependent(t *testing.T) {
	a := testutil.Ints(1, 1000, 50000)
	b := testutil.Ints(2, 1000, 50000)

	mul := func(x, y int) int { return x * y }
	one, err := ZipWith(a, b, mul, parallel.WithWorkers(1))
	require.NoError(t, err)
	many, err := ZipWith(a, b, mul, parallel.WithWorkers(8), parallel.WithGrain(100))
	require.NoError(t, err)
	assert.Equal(t, one, many)
	for _, i := range []int{0, 12345, 49999} {
		assert.Equal(t, a[i]*b[i], many[i])
	}

	pairs, err := Zip(a, b, parallel.WithGrain(64))
	require.NoError(t, err)
	ua, ub := Unzip(pairs, parallel.WithGrain(64))
	assert.Equal(t, a, ua)
	assert.Equal(t, b, ub)
}

func TestInterleave(t *testing.T) {
	out, err := Interleave([]float64{1, 2, 3}, []float64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10, 2, 20, 3, 30}, out)

	mono, err := Interleave([]int{4, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, mono)

	_, err = Interleave[int]()
	assert.ErrorIs(t, err, ErrChannels)

	_, err = Interleave([]int{1, 2}, []int{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestDeinterleave(t *testing.T) {
	chans, err := Deinterleave([]string{"l0", "r0", "l1", "r1"}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"l0", "l1"}, {"r0", "r1"}}, chans)

	_, err = Deinterleave([]int{1, 2, 3}, 2)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Deinterleave([]int{1, 2}, 0)
	assert.ErrorIs(t, err, ErrChannels)
}

func TestInterleaveRoundTrip(t *testing.T) {
	const channels, frames = 5, 10000
	in := make([][]string, channels)
	for c := range in {
		in[c] = make([]string, frames)
		for f := range in[c] {
			in[c][f] = strconv.Itoa(c*frames + f)
		}
	}

	buf, err := Interleave(in...)
	require.NoError(t, err)
	require.Len(t, buf, channels*frames)
	assert.Equal(t, in[3][777], buf[777*channels+3])

	back, err := Deinterleave(buf, channels)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestComplexParts(t *testing.T) {
	z, err := ComplexFromParts([]float64{1, -2}, []float64{3, 0.5})
	require.NoError(t, err)
	assert.Equal(t, []complex128{complex(1, 3), complex(-2, 0.5)}, z)

	re, im := ComplexToParts(z)
	assert.Equal(t, []float64{1, -2}, re)
	assert.Equal(t, []float64{3, 0.5}, im)

	_, err = ComplexFromParts([]float64{1}, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
