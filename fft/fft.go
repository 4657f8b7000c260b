package fft

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/seq"
)

// Errors returned by the transforms.
var (
	ErrEmpty         = errors.New("fft: empty input")
	ErrNotPowerOfTwo = errors.New("fft: length is not a power of two")
	ErrShape         = errors.New("fft: shape does not match data length")
	ErrNoInverse     = errors.New("fft: algebra has no multiplicative inverse")
)

// Algebra is what a forward transform needs: a ring with roots of unity.
type Algebra[T any] interface {
	algebra.Ring[T]
	algebra.RootsOfUnity[T]
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Plan holds the twiddle factors for transforms of one length. A Plan is
// immutable after creation and safe for concurrent use.
type Plan[T any] struct {
	a       Algebra[T]
	n       int
	forward []T // w^k, k < n/2
	inverse []T // w^-k, k < n/2
	invN    T
	hasInv  bool
}

// NewPlan precomputes the twiddles for length n. The inverse transform is
// available when a also implements [algebra.Field] and n is invertible in it.
func NewPlan[T any](a Algebra[T], n int) (*Plan[T], error) {
	if n == 0 {
		return nil, ErrEmpty
	}
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	p := &Plan[T]{
		a:       a,
		n:       n,
		forward: make([]T, n/2),
		inverse: make([]T, n/2),
	}
	for k := range p.forward {
		w, err := a.RootOfUnity(n, k)
		if err != nil {
			return nil, fmt.Errorf("fft: root of unity %d/%d: %w", k, n, err)
		}
		wi, err := a.RootOfUnity(n, -k)
		if err != nil {
			return nil, fmt.Errorf("fft: root of unity %d/%d: %w", -k, n, err)
		}
		p.forward[k] = w
		p.inverse[k] = wi
	}

	if f, ok := a.(algebra.Field[T]); ok {
		if inv, err := f.Inv(f.FromInt(int64(n))); err == nil {
			p.invN = inv
			p.hasInv = true
		}
	}
	return p, nil
}

// Len returns the transform length.
func (p *Plan[T]) Len() int { return p.n }

// Forward transforms x in place.
func (p *Plan[T]) Forward(x []T) error {
	return p.ForwardSeq(seq.Slice[T](x))
}

// Inverse inverse-transforms x in place, including the 1/n scaling.
func (p *Plan[T]) Inverse(x []T) error {
	return p.InverseSeq(seq.Slice[T](x))
}

// ForwardSeq transforms any sequence of length Len in place.
func (p *Plan[T]) ForwardSeq(x seq.Sequence[T]) error {
	if err := p.check(x); err != nil {
		return err
	}
	p.butterflies(x, p.forward)
	return nil
}

// InverseSeq inverse-transforms any sequence of length Len in place.
func (p *Plan[T]) InverseSeq(x seq.Sequence[T]) error {
	if !p.hasInv {
		return ErrNoInverse
	}
	if err := p.check(x); err != nil {
		return err
	}
	p.butterflies(x, p.inverse)
	for i := 0; i < p.n; i++ {
		x.Set(i, p.a.Mul(p.invN, x.At(i)))
	}
	return nil
}

func (p *Plan[T]) check(x seq.Sequence[T]) error {
	if x.Len() != p.n {
		return fmt.Errorf("%w: plan length %d, data length %d", ErrShape, p.n, x.Len())
	}
	return nil
}

// butterflies runs the decimation-in-time network with the given twiddles.
func (p *Plan[T]) butterflies(x seq.Sequence[T], tw []T) {
	n := p.n
	bitReverse(x)

	a := p.a
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size
		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				lo, hi := start+j, start+j+half
				u := x.At(lo)
				t := a.Mul(tw[j*step], x.At(hi))
				x.Set(lo, a.Add(u, t))
				x.Set(hi, a.Sub(u, t))
			}
		}
	}
}

// BitReverse permutes x so that element i moves to the bit-reversed index of i.
// len(x) must be a power of two.
func BitReverse[T any](x []T) error {
	if len(x) == 0 {
		return nil
	}
	if !IsPowerOfTwo(len(x)) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, len(x))
	}
	bitReverse(seq.Sequence[T](seq.Slice[T](x)))
	return nil
}

func bitReverse[T any](x seq.Sequence[T]) {
	n := x.Len()
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			seq.Swap(x, i, j)
		}
	}
}

// FFT computes the forward transform of x in place.
func FFT[T any](a Algebra[T], x []T) error {
	return FFTSeq(a, seq.Slice[T](x))
}

// InvFFT computes the inverse transform of x in place.
func InvFFT[T any](a Algebra[T], x []T) error {
	return InvFFTSeq(a, seq.Slice[T](x))
}

// FFTSeq computes the forward transform of an arbitrary sequence in place.
func FFTSeq[T any](a Algebra[T], x seq.Sequence[T]) error {
	p, err := NewPlan(a, x.Len())
	if err != nil {
		return err
	}
	return p.ForwardSeq(x)
}

// InvFFTSeq computes the inverse transform of an arbitrary sequence in place.
func InvFFTSeq[T any](a Algebra[T], x seq.Sequence[T]) error {
	p, err := NewPlan(a, x.Len())
	if err != nil {
		return err
	}
	return p.InverseSeq(x)
}
