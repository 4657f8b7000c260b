package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/algebra"
)

// Dense is a rows×cols matrix stored row-major.
type Dense[T any] struct {
	rows, cols int
	data       []T
}

// New returns a rows×cols matrix filled with a.Zero().
func New[T any](a algebra.Additive[T], rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	m := &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	for i := range m.data {
		m.data[i] = a.Zero()
	}
	return m, nil
}

// FromSlice wraps data (row-major, len rows*cols) without copying.
func FromSlice[T any](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d needs %d elements, got %d", ErrBadShape, rows, cols, rows*cols, len(data))
	}
	return &Dense[T]{rows: rows, cols: cols, data: data}, nil
}

// FromRows copies a rectangular [][]T into a new matrix.
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrBadShape)
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadShape, i, len(r), cols)
		}
		data = append(data, r...)
	}
	return &Dense[T]{rows: len(rows), cols: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
func Identity[T any](r algebra.Ring[T], n int) (*Dense[T], error) {
	m, err := New[T](r, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = r.One()
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.cols }

// At returns m[i][j]. It panics if the index is out of range.
func (m *Dense[T]) At(i, j int) T {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set assigns m[i][j] = v. It panics if the index is out of range.
func (m *Dense[T]) Set(i, j int, v T) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Dense[T]) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
}

// Data returns the row-major backing slice.
func (m *Dense[T]) Data() []T { return m.data }

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) []T {
	m.checkIndex(i, 0)
	return append([]T(nil), m.data[i*m.cols:(i+1)*m.cols]...)
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) []T {
	m.checkIndex(0, j)
	out := make([]T, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// Clone returns a copy of m. Element values are copied shallowly.
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{rows: m.rows, cols: m.cols, data: append([]T(nil), m.data...)}
}

// ToRows returns the matrix as a freshly allocated [][]T.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Equal reports whether x and y have the same shape and equal elements.
func Equal[T any](a algebra.Additive[T], x, y *Dense[T]) bool {
	if x.rows != y.rows || x.cols != y.cols {
		return false
	}
	for i := range x.data {
		if !a.Equal(x.data[i], y.data[i]) {
			return false
		}
	}
	return true
}
