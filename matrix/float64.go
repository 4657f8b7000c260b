package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// MulFloat64 returns a·b computed by gonum's BLAS-backed product.
func MulFloat64(a, b *Dense[float64]) (*Dense[float64], error) {
	if err := checkProduct(a, b); err != nil {
		return nil, err
	}
	out := &Dense[float64]{rows: a.rows, cols: b.cols, data: make([]float64, a.rows*b.cols)}
	dst := mat.NewDense(out.rows, out.cols, out.data)
	dst.Mul(mat.NewDense(a.rows, a.cols, a.data), mat.NewDense(b.rows, b.cols, b.data))
	return out, nil
}

// InverseFloat64 returns m⁻¹ computed by gonum's LU-based inverse.
func InverseFloat64(m *Dense[float64]) (*Dense[float64], error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.rows, m.cols)
	}
	out := &Dense[float64]{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	dst := mat.NewDense(m.rows, m.cols, out.data)
	if err := dst.Inverse(mat.NewDense(m.rows, m.cols, m.data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return out, nil
}

// HadamardFloat64 returns the elementwise product x ∘ y using the
// vectorised block multiply.
func HadamardFloat64(x, y *Dense[float64]) (*Dense[float64], error) {
	if err := sameShape(x, y); err != nil {
		return nil, err
	}
	out := &Dense[float64]{rows: x.rows, cols: x.cols, data: make([]float64, len(x.data))}
	vecmath.MulBlock(out.data, x.data, y.data)
	return out, nil
}
