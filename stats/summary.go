package stats

import (
	"math"

	"github.com/cwbudde/algo-kernels/parallel"
)

// Summary holds single-pass statistics of a float64 sample.
type Summary struct {
	Length   int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Skewness float64
	Kurtosis float64 // excess kurtosis
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Range    float64 // Max - Min
	RMS      float64
	Energy   float64 // sum of squares
}

// moments is the Welford state: count, mean and the central sums
// M2..M4, plus the running extrema.
type moments struct {
	n              int
	mean           float64
	m2, m3, m4     float64
	sumSq          float64
	minVal, maxVal float64
	minPos, maxPos int
}

// push adds sample x found at index pos.
func (s *moments) push(x float64, pos int) {
	s.n++
	ni := float64(s.n)
	delta := x - s.mean
	deltaN := delta / ni
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * float64(s.n-1)

	// M4 must be updated before M3, and M3 before M2.
	s.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
	s.m3 += term1*deltaN*(ni-2) - 3*deltaN*s.m2
	s.m2 += term1
	s.mean += deltaN

	s.sumSq += x * x

	if s.n == 1 {
		s.minVal, s.minPos = x, pos
		s.maxVal, s.maxPos = x, pos
		return
	}
	if x > s.maxVal {
		s.maxVal, s.maxPos = x, pos
	}
	if x < s.minVal {
		s.minVal, s.minPos = x, pos
	}
}

// merge folds o into s. o must describe samples that come after those of s,
// so that ties in the extrema keep the earliest position.
func (s *moments) merge(o moments) {
	if o.n == 0 {
		return
	}
	if s.n == 0 {
		*s = o
		return
	}

	na, nb := float64(s.n), float64(o.n)
	n := na + nb
	delta := o.mean - s.mean
	delta2 := delta * delta

	m4 := s.m4 + o.m4 +
		delta2*delta2*na*nb*(na*na-na*nb+nb*nb)/(n*n*n) +
		6*delta2*(na*na*o.m2+nb*nb*s.m2)/(n*n) +
		4*delta*(na*o.m3-nb*s.m3)/n
	m3 := s.m3 + o.m3 +
		delta2*delta*na*nb*(na-nb)/(n*n) +
		3*delta*(na*o.m2-nb*s.m2)/n
	m2 := s.m2 + o.m2 + delta2*na*nb/n

	s.mean += delta * nb / n
	s.m2, s.m3, s.m4 = m2, m3, m4
	s.n += o.n
	s.sumSq += o.sumSq

	if o.maxVal > s.maxVal {
		s.maxVal, s.maxPos = o.maxVal, o.maxPos
	}
	if o.minVal < s.minVal {
		s.minVal, s.minPos = o.minVal, o.minPos
	}
}

func (s *moments) summary() Summary {
	if s.n == 0 {
		return Summary{}
	}
	nf := float64(s.n)
	variance := s.m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (s.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (s.m4/nf)/(variance*variance) - 3
	}

	return Summary{
		Length:   s.n,
		Mean:     s.mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Skewness: skewness,
		Kurtosis: kurtosis,
		Min:      s.minVal,
		MinPos:   s.minPos,
		Max:      s.maxVal,
		MaxPos:   s.maxPos,
		Range:    s.maxVal - s.minVal,
		RMS:      math.Sqrt(s.sumSq / nf),
		Energy:   s.sumSq,
	}
}

// Calculate computes all summary statistics in a single pass using
// Welford's online algorithm for numerical stability on higher-order moments.
// An empty sample yields the zero Summary.
func Calculate(xs []float64) Summary {
	var m moments
	for i, x := range xs {
		m.push(x, i)
	}
	return m.summary()
}

// CalculateParallel is [Calculate] with the sample split into chunks whose
// partial moments are merged in chunk order. Results agree with Calculate up
// to rounding.
func CalculateParallel(xs []float64, opts ...parallel.Option) Summary {
	chunks := parallel.Plan(len(xs), opts...)
	partial := make([]moments, len(chunks))

	parallel.For(len(chunks), func(lo, hi int) {
		for c := lo; c < hi; c++ {
			for i := chunks[c].Lo; i < chunks[c].Hi; i++ {
				partial[c].push(xs[i], i)
			}
		}
	}, parallel.WithWorkers(len(chunks)))

	var m moments
	for _, p := range partial {
		m.merge(p)
	}
	return m.summary()
}

// Moments returns the mean, population variance, skewness, and excess kurtosis
// of xs.
func Moments(xs []float64) (mean, variance, skewness, kurtosis float64) {
	s := Calculate(xs)
	return s.Mean, s.Variance, s.Skewness, s.Kurtosis
}

// Accumulator collects summary statistics incrementally across blocks of
// samples. Feeding the same samples block by block gives bit-for-bit the
// same result as [Calculate].
type Accumulator struct {
	m moments
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Update adds a block of samples.
func (a *Accumulator) Update(xs []float64) {
	for _, x := range xs {
		a.m.push(x, a.m.n)
	}
}

// Merge appends the samples seen by o, as if they had been passed to Update
// after those already seen by a.
func (a *Accumulator) Merge(o *Accumulator) {
	shifted := o.m
	shifted.minPos += a.m.n
	shifted.maxPos += a.m.n
	a.m.merge(shifted)
}

// Result returns the statistics of everything seen so far.
func (a *Accumulator) Result() Summary {
	return a.m.summary()
}

// Reset clears all accumulated data.
func (a *Accumulator) Reset() {
	a.m = moments{}
}
