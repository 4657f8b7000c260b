// Package stats provides descriptive statistics: generic reductions over any
// algebra (sum, mean, variance, order statistics, central moments) and a
// float64 single-pass summary built on Welford's online algorithm.
//
// The float64 summary can be computed sequentially ([Calculate]), over
// parallel chunks merged with the pairwise update of Chan et al.
// ([CalculateParallel]), or incrementally across blocks ([Accumulator]).
package stats

import "errors"

// Errors returned by the statistics functions.
var (
	ErrEmpty           = errors.New("stats: empty input")
	ErrLengthMismatch  = errors.New("stats: length mismatch")
	ErrInvalidQuantile = errors.New("stats: quantile outside [0, 1]")
	ErrInvalidEdges    = errors.New("stats: histogram edges must be at least two ascending values")
)
