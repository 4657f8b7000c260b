// Package seq provides the indexable-sequence abstraction shared by the
// kernels: anything with a length that can be read and written by index.
//
// [Slice] adapts a plain Go slice. [Strided] views every stride-th element of a
// backing slice, which lets multi-dimensional kernels run a 1-D algorithm along
// a column or a depth line without copying.
package seq

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a view does not fit its backing slice.
var ErrOutOfRange = errors.New("seq: view out of range")

// Sequence is an indexable, mutable sequence of values.
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
}

// Slice adapts a []T as a [Sequence].
type Slice[T any] []T

// Len returns the element count.
func (s Slice[T]) Len() int { return len(s) }

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }

// Set assigns s[i] = v.
func (s Slice[T]) Set(i int, v T) { s[i] = v }

// Strided is a view of n elements data[offset], data[offset+stride], ...
type Strided[T any] struct {
	data   []T
	offset int
	stride int
	n      int
}

// NewStrided returns a strided view. stride must be positive and the last
// element must lie inside data.
func NewStrided[T any](data []T, offset, stride, n int) (Strided[T], error) {
	if offset < 0 || stride <= 0 || n < 0 {
		return Strided[T]{}, fmt.Errorf("%w: offset=%d stride=%d n=%d", ErrOutOfRange, offset, stride, n)
	}
	if n > 0 && offset+(n-1)*stride >= len(data) {
		return Strided[T]{}, fmt.Errorf("%w: last index %d >= len %d", ErrOutOfRange, offset+(n-1)*stride, len(data))
	}
	return Strided[T]{data: data, offset: offset, stride: stride, n: n}, nil
}

// Len returns the number of viewed elements.
func (s Strided[T]) Len() int { return s.n }

// At returns the i-th viewed element.
func (s Strided[T]) At(i int) T { return s.data[s.offset+i*s.stride] }

// Set assigns the i-th viewed element.
func (s Strided[T]) Set(i int, v T) { s.data[s.offset+i*s.stride] = v }

// Collect copies a sequence into a new slice.
func Collect[T any](s Sequence[T]) []T {
	out := make([]T, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// CopyFrom writes src into dst element by element and returns the number of
// copied elements.
func CopyFrom[T any](dst Sequence[T], src []T) int {
	n := min(dst.Len(), len(src))
	for i := 0; i < n; i++ {
		dst.Set(i, src[i])
	}
	return n
}

// Swap exchanges elements i and j.
func Swap[T any](s Sequence[T], i, j int) {
	a, b := s.At(i), s.At(j)
	s.Set(i, b)
	s.Set(j, a)
}

// Reverse reverses s in place.
func Reverse[T any](s Sequence[T]) {
	for i, j := 0, s.Len()-1; i < j; i, j = i+1, j-1 {
		Swap(s, i, j)
	}
}
