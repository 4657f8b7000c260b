package zip

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/parallel"
)

// Interleave merges equally long channels into one frame-major buffer:
// out[f*n+c] = channels[c][f].
func Interleave[T any](channels ...[]T) ([]T, error) {
	n := len(channels)
	if n == 0 {
		return nil, ErrChannels
	}
	frames := len(channels[0])
	for c, ch := range channels {
		if len(ch) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d samples, want %d", ErrLengthMismatch, c, len(ch), frames)
		}
	}

	out := make([]T, frames*n)
	parallel.For(frames, func(lo, hi int) {
		for f := lo; f < hi; f++ {
			frame := out[f*n : (f+1)*n]
			for c, ch := range channels {
				frame[c] = ch[f]
			}
		}
	}, parallel.WithGrain(minParallel))
	return out, nil
}

// Deinterleave splits a frame-major buffer into n channels. len(x) must be
// a multiple of n.
func Deinterleave[T any](x []T, n int) ([][]T, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrChannels, n)
	}
	if len(x)%n != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a multiple of %d channels", ErrLengthMismatch, len(x), n)
	}

	frames := len(x) / n
	out := make([][]T, n)
	for c := range out {
		out[c] = make([]T, frames)
	}
	parallel.For(frames, func(lo, hi int) {
		for f := lo; f < hi; f++ {
			for c, v := range x[f*n : (f+1)*n] {
				out[c][f] = v
			}
		}
	}, parallel.WithGrain(minParallel))
	return out, nil
}

// ComplexFromParts zips real and imaginary parts into complex values.
func ComplexFromParts(re, im []float64) ([]complex128, error) {
	return ZipWith(re, im, func(r, i float64) complex128 { return complex(r, i) })
}

// ComplexToParts splits complex values into real and imaginary parts.
func ComplexToParts(z []complex128) (re, im []float64) {
	re = make([]float64, len(z))
	im = make([]float64, len(z))
	parallel.For(len(z), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			re[i], im[i] = real(z[i]), imag(z[i])
		}
	}, parallel.WithGrain(minParallel))
	return re, im
}
