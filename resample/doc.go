// Package resample resizes 1-D sequences and row-major 2-D grids by
// nearest-neighbour, linear and cubic interpolation.
//
// Sample positions are corner-aligned: output index i of n maps to input
// position i*(m-1)/(n-1), so the first and last samples are preserved.
// Out-of-range neighbours are clamped to the edge.
//
// Values only need to be added and scaled by real weights, so the same code
// resizes real, complex and quaternion data:
//
//	up, err := resample.Cubic[complex128](algebra.Complex128{}, src, 4*len(src))
package resample

import (
	"errors"

	"github.com/cwbudde/algo-kernels/algebra"
)

var (
	// ErrInvalidSize indicates an empty input or a non-positive output size.
	ErrInvalidSize = errors.New("resample: invalid size")
	// ErrShape indicates that a grid's data length does not match rows*cols.
	ErrShape = errors.New("resample: shape does not match data length")
)

// Interpolant is what interpolation needs from a value type: addition and
// scaling by real weights.
type Interpolant[T any] interface {
	algebra.Additive[T]
	algebra.RealScaler[T]
}
