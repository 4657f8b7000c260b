package resample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-kernels/core"
	"github.com/cwbudde/algo-kernels/parallel"
)

func checkGrid(n, rows, cols, outRows, outCols int) error {
	if rows <= 0 || cols <= 0 || outRows <= 0 || outCols <= 0 {
		return fmt.Errorf("%w: %dx%d to %dx%d", ErrInvalidSize, rows, cols, outRows, outCols)
	}
	if n != rows*cols {
		return fmt.Errorf("%w: %dx%d needs %d values, got %d", ErrShape, rows, cols, rows*cols, n)
	}
	return nil
}

// axis holds the source cell and fraction for every output coordinate.
type axis struct {
	idx  []int
	frac []float64
}

func newAxis(m, n int) axis {
	ax := axis{idx: make([]int, n), frac: make([]float64, n)}
	for i := 0; i < n; i++ {
		ax.idx[i], ax.frac[i] = position(i, m, n)
	}
	return ax
}

// Nearest2D resizes a row-major rows×cols grid to outRows×outCols by
// nearest-neighbour selection.
func Nearest2D[T any](src []T, rows, cols, outRows, outCols int, opts ...parallel.Option) ([]T, error) {
	if err := checkGrid(len(src), rows, cols, outRows, outCols); err != nil {
		return nil, err
	}
	ys, xs := newAxis(rows, outRows), newAxis(cols, outCols)
	round := func(ax axis, i, m int) int {
		return min(ax.idx[i]+int(math.Round(ax.frac[i])), m-1)
	}

	out := make([]T, outRows*outCols)
	parallel.For(outRows, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := src[round(ys, y, rows)*cols:]
			dst := out[y*outCols : (y+1)*outCols]
			for x := range dst {
				dst[x] = row[round(xs, x, cols)]
			}
		}
	}, opts...)
	return out, nil
}

// Bilinear2D resizes a row-major rows×cols grid to outRows×outCols by
// bilinear interpolation.
func Bilinear2D[T any](a Interpolant[T], src []T, rows, cols, outRows, outCols int, opts ...parallel.Option) ([]T, error) {
	if err := checkGrid(len(src), rows, cols, outRows, outCols); err != nil {
		return nil, err
	}
	ys, xs := newAxis(rows, outRows), newAxis(cols, outCols)

	out := make([]T, outRows*outCols)
	parallel.For(outRows, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			r0 := src[ys.idx[y]*cols : (ys.idx[y]+1)*cols]
			r1 := src[min(ys.idx[y]+1, rows-1)*cols:][:cols]
			ty := ys.frac[y]
			dst := out[y*outCols : (y+1)*outCols]
			for x := range dst {
				x0, x1 := xs.idx[x], min(xs.idx[x]+1, cols-1)
				top := lerp(a, xs.frac[x], r0[x0], r0[x1])
				bottom := lerp(a, xs.frac[x], r1[x0], r1[x1])
				dst[x] = lerp(a, ty, top, bottom)
			}
		}
	}, opts...)
	return out, nil
}

// taps holds the four clamped source indices and Keys weights of one output
// coordinate.
type taps struct {
	idx [4]int
	w   [4]float64
}

func newTaps(m, n int) []taps {
	out := make([]taps, n)
	for i := range out {
		idx, t := position(i, m, n)
		for k := 0; k < 4; k++ {
			out[i].idx[k] = core.Clamp(idx+k-1, 0, m-1)
			out[i].w[k] = KeysWeight(t-float64(k-1), KeysA)
		}
	}
	return out
}

// Bicubic2D resizes a row-major rows×cols grid to outRows×outCols with the
// separable Keys cubic kernel (a = -0.5) over a clamped 4×4 neighbourhood.
func Bicubic2D[T any](a Interpolant[T], src []T, rows, cols, outRows, outCols int, opts ...parallel.Option) ([]T, error) {
	if err := checkGrid(len(src), rows, cols, outRows, outCols); err != nil {
		return nil, err
	}
	ys, xs := newTaps(rows, outRows), newTaps(cols, outCols)

	out := make([]T, outRows*outCols)
	parallel.For(outRows, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			ty := ys[y]
			dst := out[y*outCols : (y+1)*outCols]
			for x := range dst {
				tx := xs[x]
				acc := a.Zero()
				for k := 0; k < 4; k++ {
					row := src[ty.idx[k]*cols:]
					var line T
					for l := 0; l < 4; l++ {
						term := a.Scale(row[tx.idx[l]], tx.w[l])
						if l == 0 {
							line = term
						} else {
							line = a.Add(line, term)
						}
					}
					acc = a.Add(acc, a.Scale(line, ty.w[k]))
				}
				dst[x] = acc
			}
		}
	}, opts...)
	return out, nil
}
