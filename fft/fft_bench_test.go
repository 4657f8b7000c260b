package fft

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func BenchmarkPlanForward(b *testing.B) {
	var c algebra.Complex128
	for _, n := range []int{256, 4096, 65536} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			p, err := NewPlan[complex128](c, n)
			if err != nil {
				b.Fatal(err)
			}
			x := testutil.ComplexNoise(1, n)
			b.SetBytes(int64(n * 16))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := p.Forward(x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPlan128Forward(b *testing.B) {
	for _, n := range []int{256, 4096, 65536} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			p, err := NewPlan128(n)
			if err != nil {
				b.Fatal(err)
			}
			x := testutil.ComplexNoise(1, n)
			out := make([]complex128, n)
			b.SetBytes(int64(n * 16))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := p.Forward(out, x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNTT(b *testing.B) {
	m := algebra.NTT998244353
	const n = 4096
	p, err := NewPlan[uint64](m, n)
	if err != nil {
		b.Fatal(err)
	}
	x := make([]uint64, n)
	for i := range x {
		x[i] = uint64(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Forward(x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFFT2D(b *testing.B) {
	var c algebra.Complex128
	const rows, cols = 256, 256
	x := testutil.ComplexNoise(2, rows*cols)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := FFT2D[complex128](c, x, rows, cols); err != nil {
			b.Fatal(err)
		}
	}
}
