package core

import (
	"cmp"
	"math"
)

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [lo, hi]. Swapped bounds are
// reordered.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(value, lo), hi)
}

// NearlyEqual reports whether a and b are equal within eps, absolutely or
// relative to the larger magnitude. eps <= 0 selects 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 || math.IsInf(largest, 0) {
		return false
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Lerp returns a + t*(b-a).
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
