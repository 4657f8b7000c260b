package stats

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/sorting"
)

// KahanSum returns the compensated sum of xs.
func KahanSum(xs []float64) float64 {
	var sum, c float64
	for _, x := range xs {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

// StdDev returns the population standard deviation of xs (0 when empty).
func StdDev(xs []float64) float64 {
	return Calculate(xs).StdDev
}

// Quantile returns the empirical p-quantile of xs (the smallest element
// with cumulative frequency >= p). xs is not modified.
func Quantile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidQuantile, p)
	}
	sorted := slices.Clone(xs)
	sorting.Intro[float64](algebra.Float64{}, sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil), nil
}

func checkPair(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("%w: need at least 2 pairs, got %d", ErrEmpty, len(x))
	}
	return nil
}

// Covariance returns the unbiased sample covariance of x and y.
func Covariance(x, y []float64) (float64, error) {
	if err := checkPair(x, y); err != nil {
		return 0, err
	}
	return stat.Covariance(x, y, nil), nil
}

// Correlation returns the Pearson correlation coefficient of x and y. It is
// NaN when either input is constant.
func Correlation(x, y []float64) (float64, error) {
	if err := checkPair(x, y); err != nil {
		return 0, err
	}
	return stat.Correlation(x, y, nil), nil
}

// ZScores returns (x - mean) / stddev for every element, using the population
// standard deviation. A constant sample maps to all zeros.
func ZScores(xs []float64) []float64 {
	s := Calculate(xs)
	out := make([]float64, len(xs))
	if s.StdDev == 0 {
		return out
	}
	for i, x := range xs {
		out[i] = (x - s.Mean) / s.StdDev
	}
	return out
}

// Histogram counts xs into the bins [edges[i], edges[i+1]). The last bin also
// includes its upper edge. Values outside [edges[0], edges[n-1]] and NaNs are
// not counted.
func Histogram(xs, edges []float64) ([]int, error) {
	if len(edges) < 2 {
		return nil, ErrInvalidEdges
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return nil, fmt.Errorf("%w: edges[%d]=%v after %v", ErrInvalidEdges, i, edges[i], edges[i-1])
		}
	}

	var f algebra.Float64
	bins := len(edges) - 1
	counts := make([]int, bins)
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		i, found := sorting.Search[float64](f, edges, x)
		switch {
		case found && i == bins:
			counts[bins-1]++
		case found:
			counts[i]++
		case i > 0 && i <= bins:
			counts[i-1]++
		}
	}
	return counts, nil
}
