// Package parallel implements the fork/join work splitting used by the
// kernels that fan out over an index range.
//
// Every helper partitions [0, n) into contiguous chunks, runs one goroutine per
// chunk and joins all of them before returning. Chunks never share mutable
// state; callers write disjoint output ranges.
//
//	parallel.For(len(dst), func(lo, hi int) {
//		for i := lo; i < hi; i++ {
//			dst[i] = f(src[i])
//		}
//	})
//
// The number of chunks is min(workers, ceil(n/grain)). A single chunk runs on
// the calling goroutine.
package parallel

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrLengthMismatch is returned when source and destination lengths differ.
var ErrLengthMismatch = errors.New("parallel: length mismatch")

// Range is the half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns Hi - Lo.
func (r Range) Len() int { return r.Hi - r.Lo }

type config struct {
	workers int
	grain   int
}

// Option configures work splitting.
type Option func(*config)

// WithWorkers caps the number of concurrent chunks. Values <= 0 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithGrain sets the minimum chunk length. Values <= 0 are ignored.
func WithGrain(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.grain = n
		}
	}
}

func defaultConfig() config {
	return config{
		workers: runtime.GOMAXPROCS(0),
		grain:   1,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Chunks splits [0, n) into at most parts contiguous ranges whose lengths
// differ by at most one. It returns nil for n <= 0.
func Chunks(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	out := make([]Range, parts)
	base, extra := n/parts, n%parts
	lo := 0
	for i := range out {
		size := base
		if i < extra {
			size++
		}
		out[i] = Range{Lo: lo, Hi: lo + size}
		lo += size
	}
	return out
}

// Plan returns the chunks For would use for n items.
func Plan(n int, opts ...Option) []Range {
	cfg := applyOptions(opts)
	parts := (n + cfg.grain - 1) / cfg.grain
	if parts > cfg.workers {
		parts = cfg.workers
	}
	return Chunks(n, parts)
}

// For calls fn once per chunk of [0, n) and waits for all chunks.
func For(n int, fn func(lo, hi int), opts ...Option) {
	chunks := Plan(n, opts...)
	switch len(chunks) {
	case 0:
		return
	case 1:
		fn(chunks[0].Lo, chunks[0].Hi)
		return
	}

	var g errgroup.Group
	for _, c := range chunks {
		g.Go(func() error {
			fn(c.Lo, c.Hi)
			return nil
		})
	}
	_ = g.Wait()
}

// ForErr is For with error propagation. The first error cancels ctx for the
// remaining chunks and is returned after all chunks have finished.
func ForErr(ctx context.Context, n int, fn func(ctx context.Context, lo, hi int) error, opts ...Option) error {
	chunks := Plan(n, opts...)
	if len(chunks) == 0 {
		return nil
	}
	if len(chunks) == 1 {
		return fn(ctx, chunks[0].Lo, chunks[0].Hi)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, c.Lo, c.Hi)
		})
	}
	return g.Wait()
}

// Transform writes dst[i] = fn(src[i]) in parallel.
func Transform[T, U any](dst []U, src []T, fn func(T) U, opts ...Option) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}
	For(len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = fn(src[i])
		}
	}, opts...)
	return nil
}

// Map returns a new slice holding fn applied to every element of src.
func Map[T, U any](src []T, fn func(T) U, opts ...Option) []U {
	out := make([]U, len(src))
	_ = Transform(out, src, fn, opts...)
	return out
}

// Fill writes dst[i] = fn(i) in parallel.
func Fill[T any](dst []T, fn func(i int) T, opts ...Option) {
	For(len(dst), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = fn(i)
		}
	}, opts...)
}

// Reduce folds xs with combine. Each chunk is folded from identity, then the
// partial results are combined in chunk order, so the result is deterministic
// for any associative combine.
func Reduce[T any](xs []T, identity T, combine func(a, b T) T, opts ...Option) T {
	chunks := Plan(len(xs), opts...)
	partial := make([]T, len(chunks))

	For(len(chunks), func(lo, hi int) {
		for c := lo; c < hi; c++ {
			acc := identity
			for i := chunks[c].Lo; i < chunks[c].Hi; i++ {
				acc = combine(acc, xs[i])
			}
			partial[c] = acc
		}
	}, WithWorkers(len(chunks)))

	acc := identity
	for _, p := range partial {
		acc = combine(acc, p)
	}
	return acc
}
