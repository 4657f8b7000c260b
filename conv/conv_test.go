package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []int64
		b        []int64
		expected []int64
	}{
		{
			name:     "simple 3x3",
			a:        []int64{1, 2, 3},
			b:        []int64{1, 1, 1},
			expected: []int64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []int64{1, 2, 3, 4, 5},
			b:        []int64{1},
			expected: []int64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []int64{1, 2, 3, 4, 5},
			b:        []int64{0, 0, 1},
			expected: []int64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []int64{1, 2, 1},
			b:        []int64{1, 2, 1},
			expected: []int64{1, 4, 6, 4, 1},
		},
		{
			name:     "negative",
			a:        []int64{2, -1},
			b:        []int64{-3, 4},
			expected: []int64{-6, 11, -4},
		},
	}

	var r algebra.Int64
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct[int64](r, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	var r algebra.Int64

	_, err := Direct[int64](r, nil, []int64{1, 2})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Direct[int64](r, []int64{1, 2}, nil)
	assert.ErrorIs(t, err, ErrEmptyKernel)

	_, err = Convolve[int64](r, []int64{1}, nil)
	assert.ErrorIs(t, err, ErrEmptyKernel)

	assert.Panics(t, func() {
		DirectTo[int64](r, make([]int64, 2), []int64{1, 2}, []int64{3, 4})
	})
}

func TestDirectKeepsOperandOrder(t *testing.T) {
	var q algebra.Quaternions
	i := algebra.Quaternion{X: 1}
	j := algebra.Quaternion{Y: 1}

	ij, err := Direct[algebra.Quaternion](q, []algebra.Quaternion{i}, []algebra.Quaternion{j})
	require.NoError(t, err)
	assert.Equal(t, []algebra.Quaternion{{Z: 1}}, ij)

	ji, err := Direct[algebra.Quaternion](q, []algebra.Quaternion{j}, []algebra.Quaternion{i})
	require.NoError(t, err)
	assert.Equal(t, []algebra.Quaternion{{Z: -1}}, ji)
}

func TestDirectCircular(t *testing.T) {
	var r algebra.Int64
	a := []int64{1, 2, 3, 4}

	got, err := DirectCircular[int64](r, a, []int64{1, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, a, got)

	got, err = DirectCircular[int64](r, a, []int64{0, 1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 1, 2, 3}, got)

	_, err = DirectCircular[int64](r, a, []int64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = DirectCircular[int64](r, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestConvolveTransformPathMatchesDirect(t *testing.T) {
	var c algebra.Complex128
	a := testutil.ComplexNoise(1, 300)
	b := testutil.ComplexNoise(2, 100)

	want, err := Direct[complex128](c, a, b)
	require.NoError(t, err)
	got, err := Convolve[complex128](c, a, b)
	require.NoError(t, err)
	testutil.RequireComplexNearlyEqual(t, got, want, 1e-9)
}

func TestConvolveNTTIsExact(t *testing.T) {
	m := algebra.NTT998244353
	a := make([]uint64, 200)
	b := make([]uint64, 90)
	for i, v := range testutil.Ints(3, int(m.Modulus), len(a)) {
		a[i] = uint64(v)
	}
	for i, v := range testutil.Ints(4, int(m.Modulus), len(b)) {
		b[i] = uint64(v)
	}

	want, err := Direct[uint64](m, a, b)
	require.NoError(t, err)
	got, err := Convolve[uint64](m, a, b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvolveFallsBackToDirect(t *testing.T) {
	// Integers modulo 5 only have roots of unity of order dividing 4.
	m := algebra.ModInt{Modulus: 5, Generator: 2}
	a := make([]uint64, 70)
	b := make([]uint64, 70)
	for i, v := range testutil.Ints(5, 5, len(a)) {
		a[i] = uint64(v)
	}
	for i, v := range testutil.Ints(6, 5, len(b)) {
		b[i] = uint64(v)
	}
	want, err := Direct[uint64](m, a, b)
	require.NoError(t, err)
	got, err := Convolve[uint64](m, a, b)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Quaternions are not commutative and never use the transform path.
	var q algebra.Quaternions
	qa := make([]algebra.Quaternion, 80)
	qb := make([]algebra.Quaternion, 80)
	for i := range qa {
		f := float64(i)
		qa[i] = algebra.Quaternion{W: f, X: 1, Y: -f, Z: 2}
		qb[i] = algebra.Quaternion{W: 1, X: f, Y: 3, Z: -f}
	}
	wantQ, err := Direct[algebra.Quaternion](q, qa, qb)
	require.NoError(t, err)
	gotQ, err := Convolve[algebra.Quaternion](q, qa, qb)
	require.NoError(t, err)
	assert.Equal(t, wantQ, gotQ)
}

func TestConvolveMode(t *testing.T) {
	var r algebra.Int64
	tests := []struct {
		name string
		a, b []int64
		mode Mode
		want []int64
	}{
		{"full", []int64{1, 2, 3, 4, 5}, []int64{1, 1, 1}, ModeFull, []int64{1, 3, 6, 9, 12, 9, 5}},
		{"same", []int64{1, 2, 3, 4, 5}, []int64{1, 1, 1}, ModeSame, []int64{3, 6, 9, 12, 9}},
		{"valid", []int64{1, 2, 3, 4, 5}, []int64{1, 1, 1}, ModeValid, []int64{6, 9, 12}},
		{"valid swapped", []int64{1, 1, 1}, []int64{1, 2, 3, 4, 5}, ModeValid, []int64{6, 9, 12}},
		{"same swapped", []int64{1, 1, 1}, []int64{1, 2, 3, 4, 5}, ModeSame, []int64{6, 9, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvolveMode[int64](r, tt.a, tt.b, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "full", ModeFull.String())
	assert.Equal(t, "same", ModeSame.String())
	assert.Equal(t, "valid", ModeValid.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
