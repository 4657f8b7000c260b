package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Plan128 is a complex128 transform backed by an algo-fft plan. It follows the
// same sign and scaling conventions as [Plan].
type Plan128 struct {
	plan *algofft.Plan[complex128]
	n    int
}

// NewPlan128 creates a complex128 plan of power-of-two length n.
func NewPlan128(n int) (*Plan128, error) {
	if n == 0 {
		return nil, ErrEmpty
	}
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create FFT plan: %w", err)
	}
	return &Plan128{plan: plan, n: n}, nil
}

// Len returns the transform length.
func (p *Plan128) Len() int { return p.n }

// Forward writes the transform of src into dst. dst and src may alias.
func (p *Plan128) Forward(dst, src []complex128) error {
	if err := p.check(dst, src); err != nil {
		return err
	}
	if err := p.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("fft: forward FFT failed: %w", err)
	}
	return nil
}

// Inverse writes the normalised inverse transform of src into dst.
func (p *Plan128) Inverse(dst, src []complex128) error {
	if err := p.check(dst, src); err != nil {
		return err
	}
	if err := p.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("fft: inverse FFT failed: %w", err)
	}
	return nil
}

func (p *Plan128) check(dst, src []complex128) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: plan length %d, dst %d, src %d", ErrShape, p.n, len(dst), len(src))
	}
	return nil
}

// Forward128 returns the transform of x using the algo-fft backend.
func Forward128(x []complex128) ([]complex128, error) {
	p, err := NewPlan128(len(x))
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(x))
	if err := p.Forward(out, x); err != nil {
		return nil, err
	}
	return out, nil
}

// Inverse128 returns the normalised inverse transform of x using the
// algo-fft backend.
func Inverse128(x []complex128) ([]complex128, error) {
	p, err := NewPlan128(len(x))
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(x))
	if err := p.Inverse(out, x); err != nil {
		return nil, err
	}
	return out, nil
}
