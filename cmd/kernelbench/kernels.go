package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/cluster"
	"github.com/cwbudde/algo-kernels/conv"
	"github.com/cwbudde/algo-kernels/fft"
	"github.com/cwbudde/algo-kernels/gcd"
	"github.com/cwbudde/algo-kernels/matrix"
	"github.com/cwbudde/algo-kernels/parallel"
	"github.com/cwbudde/algo-kernels/resample"
	"github.com/cwbudde/algo-kernels/sorting"
	"github.com/cwbudde/algo-kernels/stats"
	"github.com/cwbudde/algo-kernels/zip"
)

// prepareFunc builds the inputs for one size and returns the timed body.
type prepareFunc func(size int, popts []parallel.Option) (func() error, error)

type kernelEntry struct {
	name    string
	desc    string
	prepare prepareFunc
}

var registry = []kernelEntry{
	{"fft", "generic radix-2 complex FFT", prepareFFT},
	{"fft-algofft", "algo-fft complex128 plan", prepareFFT128},
	{"ntt", "number-theoretic transform mod 998244353", prepareNTT},
	{"fft2d", "2-D complex FFT on a square grid", prepareFFT2D},
	{"sort-intro", "introsort of int64", prepareIntro},
	{"sort-parallel", "parallel merge sort of int64", prepareParallelSort},
	{"matmul", "row-parallel float64 matrix product", prepareMatMul},
	{"matmul-strassen", "Strassen float64 matrix product", prepareStrassen},
	{"matmul-gonum", "gonum BLAS matrix product", prepareGonum},
	{"stats", "parallel summary statistics", prepareStats},
	{"resample-cubic", "1-D cubic upsampling by 2", prepareCubic},
	{"bicubic", "2-D bicubic upsampling by 2", prepareBicubic},
	{"conv-direct", "direct convolution with a 64-tap kernel", prepareDirectConv},
	{"conv-overlap-add", "overlap-add convolution with a 257-tap kernel", prepareOverlapAdd},
	{"gcd", "parallel GCD of a slice", prepareGCD},
	{"zip", "stereo interleave", prepareZip},
	{"kmeans", "k-means with 8 clusters on 2-D points", prepareKMeans},
}

func kernelNames() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	return names
}

// resolveKernels maps names to registry entries. Unknown names are returned
// separately; no names selects every kernel.
func resolveKernels(names []string) (found []kernelEntry, unknown []string) {
	if len(names) == 0 {
		return registry, nil
	}
	byName := make(map[string]kernelEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		found = append(found, e)
	}
	return found, unknown
}

// side returns the edge length of a square grid with about size cells.
func side(size int) int {
	return max(2, int(math.Sqrt(float64(size))))
}

func squareMatrix(seed int64, n int) (*matrix.Dense[float64], error) {
	return matrix.FromSlice(n, n, noise(seed, 1, n*n))
}

func prepareFFT(size int, _ []parallel.Option) (func() error, error) {
	n := fft.NextPowerOfTwo(size)
	plan, err := fft.NewPlan[complex128](algebra.Complex128{}, n)
	if err != nil {
		return nil, err
	}
	src := complexNoise(1, n)
	buf := make([]complex128, n)
	return func() error {
		copy(buf, src)
		return plan.Forward(buf)
	}, nil
}

func prepareFFT128(size int, _ []parallel.Option) (func() error, error) {
	n := fft.NextPowerOfTwo(size)
	plan, err := fft.NewPlan128(n)
	if err != nil {
		return nil, err
	}
	src := complexNoise(1, n)
	dst := make([]complex128, n)
	return func() error { return plan.Forward(dst, src) }, nil
}

func prepareNTT(size int, _ []parallel.Option) (func() error, error) {
	m := algebra.NTT998244353
	n := fft.NextPowerOfTwo(size)
	plan, err := fft.NewPlan[uint64](m, n)
	if err != nil {
		return nil, err
	}
	src := make([]uint64, n)
	for i, v := range int64s(2, int64(m.Modulus), n) {
		src[i] = uint64(v)
	}
	buf := make([]uint64, n)
	return func() error {
		copy(buf, src)
		return plan.Forward(buf)
	}, nil
}

func prepareFFT2D(size int, popts []parallel.Option) (func() error, error) {
	n := fft.NextPowerOfTwo(side(size))
	src := complexNoise(3, n*n)
	buf := make([]complex128, n*n)
	return func() error {
		copy(buf, src)
		return fft.FFT2D[complex128](algebra.Complex128{}, buf, n, n, popts...)
	}, nil
}

func prepareIntro(size int, _ []parallel.Option) (func() error, error) {
	src := int64s(4, 1<<30, size)
	buf := make([]int64, size)
	return func() error {
		copy(buf, src)
		sorting.Intro[int64](algebra.Int64{}, buf)
		return nil
	}, nil
}

func prepareParallelSort(size int, popts []parallel.Option) (func() error, error) {
	src := int64s(4, 1<<30, size)
	buf := make([]int64, size)
	return func() error {
		copy(buf, src)
		sorting.Parallel[int64](algebra.Int64{}, buf, popts...)
		return nil
	}, nil
}

func prepareMatMul(size int, popts []parallel.Option) (func() error, error) {
	n := side(size)
	a, err := squareMatrix(5, n)
	if err != nil {
		return nil, err
	}
	b, err := squareMatrix(6, n)
	if err != nil {
		return nil, err
	}
	return func() error {
		_, err := matrix.MulParallel[float64](algebra.Float64{}, a, b, popts...)
		return err
	}, nil
}

func prepareStrassen(size int, _ []parallel.Option) (func() error, error) {
	n := side(size)
	a, err := squareMatrix(5, n)
	if err != nil {
		return nil, err
	}
	b, err := squareMatrix(6, n)
	if err != nil {
		return nil, err
	}
	return func() error {
		_, err := matrix.Strassen[float64](algebra.Float64{}, a, b)
		return err
	}, nil
}

func prepareGonum(size int, _ []parallel.Option) (func() error, error) {
	n := side(size)
	a, err := squareMatrix(5, n)
	if err != nil {
		return nil, err
	}
	b, err := squareMatrix(6, n)
	if err != nil {
		return nil, err
	}
	return func() error {
		_, err := matrix.MulFloat64(a, b)
		return err
	}, nil
}

func prepareStats(size int, popts []parallel.Option) (func() error, error) {
	xs := noise(7, 1, size)
	return func() error {
		if s := stats.CalculateParallel(xs, popts...); s.Length != size {
			return fmt.Errorf("stats: summarised %d of %d samples", s.Length, size)
		}
		return nil
	}, nil
}

func prepareCubic(size int, _ []parallel.Option) (func() error, error) {
	xs := sine(4, size)
	return func() error {
		_, err := resample.Cubic[float64](algebra.Float64{}, xs, 2*size)
		return err
	}, nil
}

func prepareBicubic(size int, popts []parallel.Option) (func() error, error) {
	n := side(size)
	img := noise(8, 1, n*n)
	return func() error {
		_, err := resample.Bicubic2D[float64](algebra.Float64{}, img, n, n, 2*n, 2*n, popts...)
		return err
	}, nil
}

func prepareDirectConv(size int, _ []parallel.Option) (func() error, error) {
	signal := noise(9, 1, size)
	kernel := noise(10, 1, 64)
	dst := make([]float64, size+len(kernel)-1)
	return func() error {
		conv.DirectFloat64To(dst, signal, kernel)
		return nil
	}, nil
}

func prepareOverlapAdd(size int, _ []parallel.Option) (func() error, error) {
	signal := noise(9, 1, size)
	oa, err := conv.NewOverlapAdd(noise(11, 1, 257), 0)
	if err != nil {
		return nil, err
	}
	dst := make([]float64, size+oa.KernelLen()-1)
	return func() error { return oa.ProcessTo(dst, signal) }, nil
}

func prepareGCD(size int, popts []parallel.Option) (func() error, error) {
	xs := int64s(12, 1<<20, size)
	for i := range xs {
		xs[i] = 6 * (xs[i] + 1)
	}
	return func() error {
		if g := gcd.All(xs, popts...); g%6 != 0 {
			return fmt.Errorf("gcd: %d is not a multiple of 6", g)
		}
		return nil
	}, nil
}

func prepareZip(size int, _ []parallel.Option) (func() error, error) {
	left := noise(13, 1, size)
	right := noise(14, 1, size)
	return func() error {
		_, err := zip.Interleave(left, right)
		return err
	}, nil
}

func prepareKMeans(size int, popts []parallel.Option) (func() error, error) {
	const k = 8
	n := max(size/2, k)
	xs := noise(15, 10, n)
	ys := noise(16, 10, n)
	points := make([][]float64, n)
	for i := range points {
		points[i] = []float64{xs[i], ys[i]}
	}
	return func() error {
		_, err := cluster.KMeansFloat64(points, k,
			cluster.WithMaxIterations(20),
			cluster.WithParallel(popts...))
		return err
	}, nil
}
