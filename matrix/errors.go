package matrix

import "errors"

// Errors returned by the matrix kernels. Callers match them with errors.Is.
var (
	// ErrBadShape is returned for non-positive dimensions or ragged input.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch is returned for incompatible operands, e.g.
	// a.Cols() != b.Rows() in a product.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare is returned when a square matrix is required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when elimination meets a column without a pivot.
	ErrSingular = errors.New("matrix: matrix is singular")
)
