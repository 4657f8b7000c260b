package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/algebra"
)

func sameShape[T any](x, y *Dense[T]) error {
	if x.rows != y.rows || x.cols != y.cols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, x.rows, x.cols, y.rows, y.cols)
	}
	return nil
}

func elementwise[T any](x, y *Dense[T], fn func(a, b T) T) (*Dense[T], error) {
	if err := sameShape(x, y); err != nil {
		return nil, err
	}
	out := &Dense[T]{rows: x.rows, cols: x.cols, data: make([]T, len(x.data))}
	for i := range out.data {
		out.data[i] = fn(x.data[i], y.data[i])
	}
	return out, nil
}

// Add returns x + y.
func Add[T any](a algebra.Additive[T], x, y *Dense[T]) (*Dense[T], error) {
	return elementwise(x, y, a.Add)
}

// Sub returns x - y.
func Sub[T any](a algebra.Additive[T], x, y *Dense[T]) (*Dense[T], error) {
	return elementwise(x, y, a.Sub)
}

// Hadamard returns the elementwise product x ∘ y.
func Hadamard[T any](r algebra.Ring[T], x, y *Dense[T]) (*Dense[T], error) {
	return elementwise(x, y, r.Mul)
}

// Scale returns s·m, multiplying every element by s from the left.
func Scale[T any](r algebra.Ring[T], s T, m *Dense[T]) *Dense[T] {
	out := &Dense[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	for i, v := range m.data {
		out.data[i] = r.Mul(s, v)
	}
	return out
}

// Transpose returns mᵀ.
func Transpose[T any](m *Dense[T]) *Dense[T] {
	out := &Dense[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// ConjTranspose returns the conjugate transpose m*.
func ConjTranspose[T any](c algebra.Conjugate[T], m *Dense[T]) *Dense[T] {
	out := Transpose(m)
	for i, v := range out.data {
		out.data[i] = c.Conj(v)
	}
	return out
}

// Trace returns the sum of the diagonal of a square matrix.
func Trace[T any](a algebra.Additive[T], m *Dense[T]) (T, error) {
	if m.rows != m.cols {
		var zero T
		return zero, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.rows, m.cols)
	}
	acc := a.Zero()
	for i := 0; i < m.rows; i++ {
		acc = a.Add(acc, m.data[i*m.cols+i])
	}
	return acc, nil
}

// MulVec returns m·v.
func MulVec[T any](r algebra.Ring[T], m *Dense[T], v []T) ([]T, error) {
	if len(v) != m.cols {
		return nil, fmt.Errorf("%w: %dx%d times vector of %d", ErrDimensionMismatch, m.rows, m.cols, len(v))
	}
	out := make([]T, m.rows)
	for i := range out {
		acc := r.Zero()
		row := m.data[i*m.cols : (i+1)*m.cols]
		for k, x := range row {
			acc = r.Add(acc, r.Mul(x, v[k]))
		}
		out[i] = acc
	}
	return out, nil
}
