package fft

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/internal/testutil"
	"github.com/cwbudde/algo-kernels/parallel"
	"github.com/cwbudde/algo-kernels/seq"
)

// naiveDFT is the O(n^2) reference transform.
func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range x {
			angle := -2 * math.Pi * float64(j*k) / float64(n)
			sum += v * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

func TestFFTMatchesNaiveDFT(t *testing.T) {
	var c algebra.Complex128
	for _, n := range []int{1, 2, 4, 8, 16, 64} {
		x := testutil.ComplexNoise(int64(n), n)
		want := naiveDFT(x)

		got := append([]complex128(nil), x...)
		require.NoError(t, FFT[complex128](c, got))
		testutil.RequireComplexNearlyEqual(t, got, want, 1e-9)
	}
}

func TestFFTImpulseAndConstant(t *testing.T) {
	var c algebra.Complex128

	// Transform of a unit impulse is all ones.
	x := make([]complex128, 8)
	x[0] = 1
	require.NoError(t, FFT[complex128](c, x))
	for i, v := range x {
		assert.Equal(t, complex(1, 0), v, "bin %d", i)
	}

	// Transform of a constant concentrates in bin 0.
	y := []complex128{2, 2, 2, 2}
	require.NoError(t, FFT[complex128](c, y))
	assert.Equal(t, []complex128{8, 0, 0, 0}, y)
}

func TestInvFFTRoundTripComplex(t *testing.T) {
	var c algebra.Complex128
	x := testutil.ComplexNoise(11, 256)
	orig := append([]complex128(nil), x...)

	require.NoError(t, FFT[complex128](c, x))
	require.NoError(t, InvFFT[complex128](c, x))
	testutil.RequireComplexNearlyEqual(t, x, orig, 1e-12)
}

func TestRoundTripQuaternion(t *testing.T) {
	var q algebra.Quaternions
	x := make([]algebra.Quaternion, 32)
	for i := range x {
		f := float64(i)
		x[i] = algebra.Quaternion{W: math.Sin(f), X: f / 7, Y: -f / 3, Z: math.Cos(f)}
	}
	orig := append([]algebra.Quaternion(nil), x...)

	require.NoError(t, FFT[algebra.Quaternion](q, x))
	require.NoError(t, InvFFT[algebra.Quaternion](q, x))
	testutil.RequireNear[algebra.Quaternion](t, q, x, orig, 1e-12)
}

func TestQuaternionTransformOfComplexPlaneMatchesComplex(t *testing.T) {
	var q algebra.Quaternions
	var c algebra.Complex128

	cx := testutil.ComplexNoise(5, 16)
	qx := make([]algebra.Quaternion, len(cx))
	for i, v := range cx {
		qx[i] = algebra.Quaternion{W: real(v), X: imag(v)}
	}

	require.NoError(t, FFT[complex128](c, cx))
	require.NoError(t, FFT[algebra.Quaternion](q, qx))
	for i := range cx {
		assert.InDelta(t, real(cx[i]), qx[i].W, 1e-12)
		assert.InDelta(t, imag(cx[i]), qx[i].X, 1e-12)
		assert.Zero(t, qx[i].Y)
		assert.Zero(t, qx[i].Z)
	}
}

func TestRoundTripOctonion(t *testing.T) {
	var o algebra.Octonions
	x := make([]algebra.Octonion, 16)
	for i := range x {
		for j := range x[i] {
			x[i][j] = math.Sin(float64(i*8 + j))
		}
	}
	orig := append([]algebra.Octonion(nil), x...)

	require.NoError(t, FFT[algebra.Octonion](o, x))
	require.NoError(t, InvFFT[algebra.Octonion](o, x))
	testutil.RequireNear[algebra.Octonion](t, o, x, orig, 1e-12)
}

func TestRoundTripBigComplex(t *testing.T) {
	bc := algebra.BigComplexes{Prec: 192}
	x := make([]algebra.BigComplex, 8)
	for i := range x {
		x[i] = bc.FromComplex(complex(float64(i)+0.5, -float64(i)/3))
	}
	orig := append([]algebra.BigComplex(nil), x...)

	require.NoError(t, FFT[algebra.BigComplex](bc, x))
	require.NoError(t, InvFFT[algebra.BigComplex](bc, x))
	for i := range x {
		diff := bc.Sub(x[i], orig[i])
		re, _ := diff.Re.Float64()
		im, _ := diff.Im.Float64()
		assert.InDelta(t, 0, re, 1e-50, "index %d", i)
		assert.InDelta(t, 0, im, 1e-50, "index %d", i)
	}
}

func TestNTTRoundTripIsExact(t *testing.T) {
	m := algebra.NTT998244353
	x := make([]uint64, 64)
	for i := range x {
		x[i] = uint64(i*i*31+7) % m.Modulus
	}
	orig := append([]uint64(nil), x...)

	require.NoError(t, FFT[uint64](m, x))
	assert.NotEqual(t, orig, x)
	require.NoError(t, InvFFT[uint64](m, x))
	assert.Equal(t, orig, x)
}

func TestConvolveNTTIsExactPolynomialProduct(t *testing.T) {
	m := algebra.NTT998244353
	p := []uint64{1, 2, 3, 4, 5}
	q := []uint64{6, 7, 8}

	got, err := Convolve[uint64](m, p, q)
	require.NoError(t, err)

	want := make([]uint64, len(p)+len(q)-1)
	for i := range p {
		for j := range q {
			want[i+j] = m.Add(want[i+j], m.Mul(p[i], q[j]))
		}
	}
	assert.Equal(t, want, got)
}

func TestConvolveComplex(t *testing.T) {
	var c algebra.Complex128
	got, err := Convolve[complex128](c, []complex128{1, 2, 3}, []complex128{1, 1})
	require.NoError(t, err)
	testutil.RequireComplexNearlyEqual(t, got, []complex128{1, 3, 5, 3}, 1e-12)

	_, err = Convolve[complex128](c, nil, []complex128{1})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestFFTRejectsInvalidLengths(t *testing.T) {
	var c algebra.Complex128
	err := FFT[complex128](c, make([]complex128, 6))
	assert.ErrorIs(t, err, ErrNotPowerOfTwo)

	err = FFT[complex128](c, nil)
	assert.ErrorIs(t, err, ErrEmpty)

	// 2^24 has no root of unity modulo 998244353.
	_, err = NewPlan[uint64](algebra.NTT998244353, 1<<24)
	assert.ErrorIs(t, err, algebra.ErrNoRootOfUnity)
}

// ringOnly exposes ModInt arithmetic without Inv, so plans cannot invert.
type ringOnly struct{ m algebra.ModInt }

func (r ringOnly) Zero() uint64                         { return r.m.Zero() }
func (r ringOnly) One() uint64                          { return r.m.One() }
func (r ringOnly) Add(a, b uint64) uint64               { return r.m.Add(a, b) }
func (r ringOnly) Sub(a, b uint64) uint64               { return r.m.Sub(a, b) }
func (r ringOnly) Neg(a uint64) uint64                  { return r.m.Neg(a) }
func (r ringOnly) Mul(a, b uint64) uint64               { return r.m.Mul(a, b) }
func (r ringOnly) Equal(a, b uint64) bool               { return a == b }
func (r ringOnly) FromInt(n int64) uint64               { return r.m.FromInt(n) }
func (r ringOnly) RootOfUnity(n, k int) (uint64, error) { return r.m.RootOfUnity(n, k) }

func TestInverseRequiresField(t *testing.T) {
	r := ringOnly{m: algebra.NTT998244353}
	x := []uint64{1, 2, 3, 4}
	require.NoError(t, FFT[uint64](r, x))
	assert.ErrorIs(t, InvFFT[uint64](r, x), ErrNoInverse)
	assert.ErrorIs(t, InvFFT2D[uint64](r, make([]uint64, 4), 2, 2), ErrNoInverse)
}

func TestSmallModulusRoundTrip(t *testing.T) {
	m := algebra.ModInt{Modulus: 5, Generator: 2}
	p, err := NewPlan[uint64](m, 4)
	require.NoError(t, err)

	x := []uint64{1, 2, 3, 4}
	require.NoError(t, p.Forward(x))
	require.NoError(t, p.Inverse(x))
	assert.Equal(t, []uint64{1, 2, 3, 4}, x)

	err = p.Forward([]uint64{1, 2})
	assert.ErrorIs(t, err, ErrShape)
}

func TestBitReverse(t *testing.T) {
	x := []int{0, 1, 2, 3, 4, 5, 6, 7}
	require.NoError(t, BitReverse(x))
	assert.Equal(t, []int{0, 4, 2, 6, 1, 5, 3, 7}, x)

	assert.ErrorIs(t, BitReverse([]int{1, 2, 3}), ErrNotPowerOfTwo)
	assert.NoError(t, BitReverse([]int{}))
}

func TestPowerOfTwoHelpers(t *testing.T) {
	assert.True(t, IsPowerOfTwo(1))
	assert.True(t, IsPowerOfTwo(1024))
	assert.False(t, IsPowerOfTwo(0))
	assert.False(t, IsPowerOfTwo(12))

	assert.Equal(t, 1, NextPowerOfTwo(0))
	assert.Equal(t, 8, NextPowerOfTwo(5))
	assert.Equal(t, 8, NextPowerOfTwo(8))
	assert.Equal(t, 1024, NextPowerOfTwo(1000))
}

func TestFFTSeqOnStridedView(t *testing.T) {
	var c algebra.Complex128
	// Interleaved storage: transform only the even positions.
	data := testutil.ComplexNoise(9, 16)
	evens := make([]complex128, 8)
	for i := range evens {
		evens[i] = data[2*i]
	}
	odds := make([]complex128, 8)
	for i := range odds {
		odds[i] = data[2*i+1]
	}

	view, err := seq.NewStrided(data, 0, 2, 8)
	require.NoError(t, err)
	require.NoError(t, FFTSeq[complex128](c, view))
	require.NoError(t, FFT[complex128](c, evens))

	for i := range evens {
		assert.InDelta(t, 0, cmplx.Abs(data[2*i]-evens[i]), 1e-12)
		assert.Equal(t, odds[i], data[2*i+1], "odd positions must be untouched")
	}
}

func TestErrorsAreWrapped(t *testing.T) {
	err := FFT2D[complex128](algebra.Complex128{}, make([]complex128, 12), 3, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotPowerOfTwo))
}

func TestParallelOptionsDoNotChangeResult(t *testing.T) {
	var c algebra.Complex128
	a := testutil.ComplexNoise(21, 32*16)
	b := append([]complex128(nil), a...)

	require.NoError(t, FFT2D[complex128](c, a, 32, 16, parallel.WithWorkers(1)))
	require.NoError(t, FFT2D[complex128](c, b, 32, 16, parallel.WithWorkers(8)))
	assert.Equal(t, a, b)
}
