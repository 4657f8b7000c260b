package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func BenchmarkDirectFloat64(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1, 4096)
	for _, m := range []int{8, 64} {
		kernel := testutil.DeterministicNoise(2, 1, m)
		b.Run(fmt.Sprintf("kernel=%d", m), func(b *testing.B) {
			dst := make([]float64, len(signal)+m-1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				DirectFloat64To(dst, signal, kernel)
			}
		})
	}
}

func BenchmarkOverlapAdd(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1, 1<<15)
	for _, m := range []int{128, 1024} {
		kernel := testutil.DeterministicNoise(3, 1, m)
		b.Run(fmt.Sprintf("kernel=%d", m), func(b *testing.B) {
			oa, err := NewOverlapAdd(kernel, 0)
			if err != nil {
				b.Fatal(err)
			}
			out := make([]float64, len(signal)+m-1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := oa.ProcessTo(out, signal); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkConvolveNTT(b *testing.B) {
	m := algebra.NTT998244353
	x := make([]uint64, 2048)
	for i := range x {
		x[i] = uint64(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Convolve[uint64](m, x, x); err != nil {
			b.Fatal(err)
		}
	}
}
