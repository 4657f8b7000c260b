package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/parallel"
)

// Below this order Strassen recursion switches to the naive product.
const strassenCutoff = 64

func checkProduct[T any](a, b *Dense[T]) error {
	if a.cols != b.rows {
		return fmt.Errorf("%w: %dx%d times %dx%d", ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	return nil
}

// Mul returns a·b using the i-k-j loop order.
func Mul[T any](r algebra.Ring[T], a, b *Dense[T]) (*Dense[T], error) {
	if err := checkProduct(a, b); err != nil {
		return nil, err
	}
	out, err := New[T](r, a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	mulRows(r, a, b, out, 0, a.rows)
	return out, nil
}

// MulParallel is [Mul] with the output rows split across goroutines.
func MulParallel[T any](r algebra.Ring[T], a, b *Dense[T], opts ...parallel.Option) (*Dense[T], error) {
	if err := checkProduct(a, b); err != nil {
		return nil, err
	}
	out, err := New[T](r, a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	parallel.For(a.rows, func(lo, hi int) {
		mulRows(r, a, b, out, lo, hi)
	}, opts...)
	return out, nil
}

func mulRows[T any](r algebra.Ring[T], a, b, out *Dense[T], lo, hi int) {
	n := b.cols
	for i := lo; i < hi; i++ {
		dst := out.data[i*n : (i+1)*n]
		for k := 0; k < a.cols; k++ {
			aik := a.data[i*a.cols+k]
			src := b.data[k*n : (k+1)*n]
			for j, bkj := range src {
				dst[j] = r.Add(dst[j], r.Mul(aik, bkj))
			}
		}
	}
}

// Strassen returns a·b using Strassen's seven-product recursion. Operands are
// zero-padded to a power-of-two order; small blocks use the naive product.
// No commutativity is assumed.
func Strassen[T any](r algebra.Ring[T], a, b *Dense[T]) (*Dense[T], error) {
	return strassenMul(r, a, b, strassenCutoff)
}

func strassenMul[T any](r algebra.Ring[T], a, b *Dense[T], cutoff int) (*Dense[T], error) {
	if err := checkProduct(a, b); err != nil {
		return nil, err
	}
	cutoff = max(cutoff, 1)
	n := nextPow2(max(a.rows, a.cols, b.cols))
	if n <= cutoff {
		return Mul(r, a, b)
	}

	pc := strassen(r, pad(r, a, n), pad(r, b, n), n, cutoff)

	out := &Dense[T]{rows: a.rows, cols: b.cols, data: make([]T, a.rows*b.cols)}
	for i := 0; i < a.rows; i++ {
		copy(out.data[i*b.cols:(i+1)*b.cols], pc[i*n:i*n+b.cols])
	}
	return out, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// pad copies m into the top-left corner of a zero n×n block.
func pad[T any](r algebra.Ring[T], m *Dense[T], n int) []T {
	out := make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i < m.rows && j < m.cols {
				out[i*n+j] = m.data[i*m.cols+j]
			} else {
				out[i*n+j] = r.Zero()
			}
		}
	}
	return out
}

func strassen[T any](r algebra.Ring[T], a, b []T, n, cutoff int) []T {
	if n <= cutoff {
		return mulSquare(r, a, b, n)
	}

	h := n / 2
	a11, a12, a21, a22 := quadrants(a, n)
	b11, b12, b21, b22 := quadrants(b, n)

	add := func(x, y []T) []T { return combine(x, y, r.Add) }
	sub := func(x, y []T) []T { return combine(x, y, r.Sub) }

	m1 := strassen(r, add(a11, a22), add(b11, b22), h, cutoff)
	m2 := strassen(r, add(a21, a22), b11, h, cutoff)
	m3 := strassen(r, a11, sub(b12, b22), h, cutoff)
	m4 := strassen(r, a22, sub(b21, b11), h, cutoff)
	m5 := strassen(r, add(a11, a12), b22, h, cutoff)
	m6 := strassen(r, sub(a21, a11), add(b11, b12), h, cutoff)
	m7 := strassen(r, sub(a12, a22), add(b21, b22), h, cutoff)

	c11 := add(sub(add(m1, m4), m5), m7)
	c12 := add(m3, m5)
	c21 := add(m2, m4)
	c22 := add(add(sub(m1, m2), m3), m6)

	out := make([]T, n*n)
	for i := 0; i < h; i++ {
		copy(out[i*n:i*n+h], c11[i*h:(i+1)*h])
		copy(out[i*n+h:(i+1)*n], c12[i*h:(i+1)*h])
		copy(out[(i+h)*n:(i+h)*n+h], c21[i*h:(i+1)*h])
		copy(out[(i+h)*n+h:(i+h+1)*n], c22[i*h:(i+1)*h])
	}
	return out
}

func quadrants[T any](m []T, n int) (q11, q12, q21, q22 []T) {
	h := n / 2
	q11, q12, q21, q22 = make([]T, h*h), make([]T, h*h), make([]T, h*h), make([]T, h*h)
	for i := 0; i < h; i++ {
		copy(q11[i*h:(i+1)*h], m[i*n:i*n+h])
		copy(q12[i*h:(i+1)*h], m[i*n+h:(i+1)*n])
		copy(q21[i*h:(i+1)*h], m[(i+h)*n:(i+h)*n+h])
		copy(q22[i*h:(i+1)*h], m[(i+h)*n+h:(i+h+1)*n])
	}
	return q11, q12, q21, q22
}

func combine[T any](x, y []T, fn func(a, b T) T) []T {
	out := make([]T, len(x))
	for i := range out {
		out[i] = fn(x[i], y[i])
	}
	return out
}

func mulSquare[T any](r algebra.Ring[T], a, b []T, n int) []T {
	out := make([]T, n*n)
	for i := range out {
		out[i] = r.Zero()
	}
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := a[i*n+k]
			for j := 0; j < n; j++ {
				out[i*n+j] = r.Add(out[i*n+j], r.Mul(aik, b[k*n+j]))
			}
		}
	}
	return out
}

// Pow returns m^e for a square matrix by repeated squaring. m^0 is the identity.
func Pow[T any](r algebra.Ring[T], m *Dense[T], e uint64) (*Dense[T], error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.rows, m.cols)
	}
	result, err := Identity(r, m.rows)
	if err != nil {
		return nil, err
	}
	base := m
	for e > 0 {
		if e&1 == 1 {
			if result, err = Mul(r, result, base); err != nil {
				return nil, err
			}
		}
		e >>= 1
		if e > 0 {
			if base, err = Mul(r, base, base); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}
