package resample

import "math"

// KeysA is the Keys cubic parameter that makes the kernel match Catmull-Rom
// (and [Hermite4]).
const KeysA = -0.5

// KeysWeight evaluates the Keys cubic convolution kernel with parameter a at
// distance x. The kernel is 1 at 0, 0 at the other integers and vanishes for
// |x| >= 2.
func KeysWeight(x, a float64) float64 {
	x = math.Abs(x)
	switch {
	case x <= 1:
		return ((a+2)*x-(a+3))*x*x + 1
	case x < 2:
		return ((a*x-5*a)*x+8*a)*x - 4*a
	default:
		return 0
	}
}

// Hermite4 computes cubic 4-point interpolation. It interpolates from x0
// (t = 0) to x1 (t = 1) using the neighbours xm1 and x2.
func Hermite4[T any](a Interpolant[T], t float64, xm1, x0, x1, x2 T) T {
	c0 := x0
	c1 := a.Scale(a.Sub(x1, xm1), 0.5)
	// xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c2 := a.Add(a.Sub(xm1, a.Scale(x0, 2.5)), a.Sub(a.Scale(x1, 2), a.Scale(x2, 0.5)))
	// 0.5*(x2-xm1) + 1.5*(x0-x1)
	c3 := a.Add(a.Scale(a.Sub(x2, xm1), 0.5), a.Scale(a.Sub(x0, x1), 1.5))

	return a.Add(a.Scale(a.Add(a.Scale(a.Add(a.Scale(c3, t), c2), t), c1), t), c0)
}

// lerp returns (1-t)*x0 + t*x1.
func lerp[T any](a Interpolant[T], t float64, x0, x1 T) T {
	return a.Add(a.Scale(x0, 1-t), a.Scale(x1, t))
}

// position maps output index i of n onto the input axis of length m and
// returns the integer cell and the fraction inside it.
func position(i, m, n int) (int, float64) {
	if n <= 1 || m <= 1 {
		return 0, 0
	}
	pos := float64(i) * float64(m-1) / float64(n-1)
	idx := int(math.Floor(pos))
	if idx >= m-1 {
		return m - 1, 0
	}
	return idx, pos - float64(idx)
}
