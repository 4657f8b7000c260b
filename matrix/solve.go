package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/algebra"
)

// pivotRow returns the row in [from, n) to pivot on in column col, or -1 if
// the column is zero there. Normed algebras pick the largest magnitude
// (partial pivoting); others take the first non-zero entry.
func pivotRow[T any](f algebra.Field[T], w []T, stride, n, col, from int) int {
	if nm, ok := f.(algebra.Normed[T]); ok {
		best, bestAbs := -1, 0.0
		for i := from; i < n; i++ {
			if v := nm.Abs(w[i*stride+col]); v > bestAbs {
				best, bestAbs = i, v
			}
		}
		return best
	}
	zero := f.Zero()
	for i := from; i < n; i++ {
		if !f.Equal(w[i*stride+col], zero) {
			return i
		}
	}
	return -1
}

func swapRows[T any](w []T, stride, i, j int) {
	if i == j {
		return
	}
	ri := w[i*stride : (i+1)*stride]
	rj := w[j*stride : (j+1)*stride]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// Determinant returns det(m) by Gaussian elimination. A singular matrix has
// determinant Zero and no error.
func Determinant[T any](f algebra.Field[T], m *Dense[T]) (T, error) {
	if m.rows != m.cols {
		var zero T
		return zero, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.rows, m.cols)
	}
	n := m.rows
	w := append([]T(nil), m.data...)
	det := f.One()

	for col := 0; col < n; col++ {
		p := pivotRow(f, w, n, n, col, col)
		if p < 0 {
			return f.Zero(), nil
		}
		if p != col {
			swapRows(w, n, p, col)
			det = f.Neg(det)
		}

		pivot := w[col*n+col]
		det = f.Mul(det, pivot)
		inv, err := f.Inv(pivot)
		if err != nil {
			return f.Zero(), nil
		}
		for i := col + 1; i < n; i++ {
			factor := f.Mul(w[i*n+col], inv)
			for j := col; j < n; j++ {
				w[i*n+j] = f.Sub(w[i*n+j], f.Mul(factor, w[col*n+j]))
			}
		}
	}
	return det, nil
}

// Inverse returns m⁻¹ by Gauss-Jordan elimination on [m | I].
func Inverse[T any](f algebra.Field[T], m *Dense[T]) (*Dense[T], error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.rows, m.cols)
	}
	n := m.rows
	stride := 2 * n
	w := make([]T, n*stride)
	for i := 0; i < n; i++ {
		copy(w[i*stride:i*stride+n], m.data[i*n:(i+1)*n])
		for j := n; j < stride; j++ {
			w[i*stride+j] = f.Zero()
		}
		w[i*stride+n+i] = f.One()
	}

	if err := gaussJordan(f, w, n, stride); err != nil {
		return nil, err
	}

	out := &Dense[T]{rows: n, cols: n, data: make([]T, n*n)}
	for i := 0; i < n; i++ {
		copy(out.data[i*n:(i+1)*n], w[i*stride+n:(i+1)*stride])
	}
	return out, nil
}

// Solve returns x with m·x = b.
func Solve[T any](f algebra.Field[T], m *Dense[T], b []T) ([]T, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.rows, m.cols)
	}
	n := m.rows
	if len(b) != n {
		return nil, fmt.Errorf("%w: %dx%d with right-hand side of %d", ErrDimensionMismatch, n, n, len(b))
	}
	stride := n + 1
	w := make([]T, n*stride)
	for i := 0; i < n; i++ {
		copy(w[i*stride:i*stride+n], m.data[i*n:(i+1)*n])
		w[i*stride+n] = b[i]
	}

	if err := gaussJordan(f, w, n, stride); err != nil {
		return nil, err
	}

	x := make([]T, n)
	for i := range x {
		x[i] = w[i*stride+n]
	}
	return x, nil
}

// gaussJordan reduces the left n×n block of the augmented n×stride matrix w
// to the identity. Row operations multiply from the left.
func gaussJordan[T any](f algebra.Field[T], w []T, n, stride int) error {
	for col := 0; col < n; col++ {
		p := pivotRow(f, w, stride, n, col, col)
		if p < 0 {
			return fmt.Errorf("%w: no pivot in column %d", ErrSingular, col)
		}
		swapRows(w, stride, p, col)

		inv, err := f.Inv(w[col*stride+col])
		if err != nil {
			return fmt.Errorf("%w: column %d: %v", ErrSingular, col, err)
		}
		pr := w[col*stride : (col+1)*stride]
		for j := range pr {
			pr[j] = f.Mul(inv, pr[j])
		}

		for i := 0; i < n; i++ {
			if i == col {
				continue
			}
			row := w[i*stride : (i+1)*stride]
			factor := row[col]
			for j := range row {
				row[j] = f.Sub(row[j], f.Mul(factor, pr[j]))
			}
		}
	}
	return nil
}
