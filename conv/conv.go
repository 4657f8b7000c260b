package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/core"
	"github.com/cwbudde/algo-kernels/fft"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

// Mode specifies the output mode for convolution and correlation.
type Mode int

const (
	// ModeFull returns the full result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input,
	// centred on the full result.
	ModeSame

	// ModeValid returns only the portion where the inputs fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// directThreshold is the longest shorter-input length convolved directly.
const directThreshold = 64

func checkInputs(a, b int) error {
	if a == 0 {
		return ErrEmptyInput
	}
	if b == 0 {
		return ErrEmptyKernel
	}
	return nil
}

// Direct performs direct linear convolution of a and b over r.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct[T any](r algebra.Ring[T], a, b []T) ([]T, error) {
	if err := checkInputs(len(a), len(b)); err != nil {
		return nil, err
	}
	dst := make([]T, len(a)+len(b)-1)
	DirectTo(r, dst, a, b)
	return dst, nil
}

// DirectTo performs direct convolution into dst, which must have length
// len(a) + len(b) - 1. Products are formed as a[i]·b[j].
func DirectTo[T any](r algebra.Ring[T], dst, a, b []T) {
	if len(dst) != len(a)+len(b)-1 {
		panic("conv: dst length mismatch")
	}
	core.Fill(dst, r.Zero())
	for i, x := range a {
		for j, y := range b {
			dst[i+j] = r.Add(dst[i+j], r.Mul(x, y))
		}
	}
}

// DirectCircular performs circular convolution of two sequences of equal
// length N. The result has length N.
func DirectCircular[T any](r algebra.Ring[T], a, b []T) ([]T, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	n := len(a)
	dst := make([]T, n)
	core.Fill(dst, r.Zero())
	for i, x := range a {
		for j, y := range b {
			k := (i + j) % n
			dst[k] = r.Add(dst[k], r.Mul(x, y))
		}
	}
	return dst, nil
}

// Convolve performs linear convolution with automatic algorithm selection.
// Long inputs over a commutative algebra with roots of unity go through
// [fft.Convolve]; everything else is convolved directly.
func Convolve[T any](r algebra.Ring[T], a, b []T) ([]T, error) {
	if err := checkInputs(len(a), len(b)); err != nil {
		return nil, err
	}
	if min(len(a), len(b)) > directThreshold {
		if fa, ok := transformAlgebra(r); ok {
			out, err := fft.Convolve(fa, a, b)
			switch {
			case err == nil:
				return out, nil
			case !errors.Is(err, algebra.ErrNoRootOfUnity):
				return nil, err
			}
		}
	}
	return Direct(r, a, b)
}

// ConvolveMode performs convolution with the given output mode.
func ConvolveMode[T any](r algebra.Ring[T], a, b []T, mode Mode) ([]T, error) {
	full, err := Convolve(r, a, b)
	if err != nil {
		return nil, err
	}
	return trimToMode(full, len(a), len(b), mode), nil
}

// transformAlgebra returns r as a transform algebra when its multiplication
// commutes, which the convolution theorem requires.
func transformAlgebra[T any](r algebra.Ring[T]) (fft.FieldAlgebra[T], bool) {
	switch any(r).(type) {
	case algebra.Complex128, algebra.BigComplexes, algebra.ModInt:
		fa, ok := r.(fft.FieldAlgebra[T])
		return fa, ok
	}
	return nil, false
}

// trimToMode extracts the appropriate portion of a full result.
func trimToMode[T any](full []T, lenA, lenB int, mode Mode) []T {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}
