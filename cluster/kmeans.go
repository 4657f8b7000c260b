package cluster

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/parallel"
)

// Errors returned by KMeans.
var (
	ErrInvalidK          = errors.New("cluster: invalid number of clusters")
	ErrEmpty             = errors.New("cluster: no points")
	ErrDimensionMismatch = errors.New("cluster: point dimension mismatch")
)

// Algebra is what k-means needs from the coordinate type: division by the
// cluster size and a norm for distances.
type Algebra[T any] interface {
	algebra.Field[T]
	algebra.Normed[T]
}

// Result is the outcome of a k-means run.
type Result[T any] struct {
	// Centroids holds k cluster centres.
	Centroids [][]T
	// Labels[i] is the index of the centroid nearest to point i.
	Labels []int
	// Iterations is the number of Lloyd iterations performed.
	Iterations int
	// Inertia is the sum of squared distances from each point to its centroid.
	Inertia float64
	// Converged reports whether the tolerance was met before MaxIterations.
	Converged bool
}

// KMeans clusters points into k groups. Every point must have the same,
// non-zero dimension and 1 <= k <= len(points).
//
// Clusters that lose all their points keep their previous centroid.
func KMeans[T any](a Algebra[T], points [][]T, k int, opts ...Option) (*Result[T], error) {
	dim, err := validate(points, k)
	if err != nil {
		return nil, err
	}
	cfg := ApplyOptions(opts...)

	rng := rand.New(rand.NewSource(cfg.Seed))
	centroids := seedPlusPlus(a, points, k, rng, cfg.Parallel)

	labels := make([]int, len(points))
	dist := make([]float64, len(points))
	res := &Result[T]{}

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		assign(a, points, centroids, labels, dist, cfg.Parallel)
		next := update(a, points, labels, centroids, dim)

		shift := 0.0
		for c := range centroids {
			shift = max(shift, math.Sqrt(sqDist(a, centroids[c], next[c])))
		}
		centroids = next
		res.Iterations = iter
		if shift <= cfg.Tolerance {
			res.Converged = true
			break
		}
	}

	assign(a, points, centroids, labels, dist, cfg.Parallel)
	for _, d := range dist {
		res.Inertia += d
	}
	res.Centroids = centroids
	res.Labels = labels
	return res, nil
}

// KMeansFloat64 clusters real vectors.
func KMeansFloat64(points [][]float64, k int, opts ...Option) (*Result[float64], error) {
	return KMeans[float64](algebra.Float64{}, points, k, opts...)
}

func validate[T any](points [][]T, k int) (int, error) {
	if len(points) == 0 {
		return 0, ErrEmpty
	}
	if k <= 0 || k > len(points) {
		return 0, fmt.Errorf("%w: k=%d with %d points", ErrInvalidK, k, len(points))
	}
	dim := len(points[0])
	if dim == 0 {
		return 0, fmt.Errorf("%w: zero-dimensional points", ErrEmpty)
	}
	for i, p := range points {
		if len(p) != dim {
			return 0, fmt.Errorf("%w: point %d has dimension %d, want %d", ErrDimensionMismatch, i, len(p), dim)
		}
	}
	return dim, nil
}

// sqDist returns sum |x_i - y_i|^2.
func sqDist[T any](a Algebra[T], x, y []T) float64 {
	var sum float64
	for i := range x {
		d := a.Abs(a.Sub(x[i], y[i]))
		sum += d * d
	}
	return sum
}

// seedPlusPlus picks k initial centroids, each subsequent one with
// probability proportional to its squared distance from the nearest
// centroid chosen so far.
func seedPlusPlus[T any](a Algebra[T], points [][]T, k int, rng *rand.Rand, popts []parallel.Option) [][]T {
	centroids := make([][]T, 0, k)
	centroids = append(centroids, clonePoint(points[rng.Intn(len(points))]))

	nearest := make([]float64, len(points))
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}

	for len(centroids) < k {
		last := centroids[len(centroids)-1]
		parallel.For(len(points), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				nearest[i] = min(nearest[i], sqDist(a, points[i], last))
			}
		}, popts...)

		var total float64
		for _, d := range nearest {
			total += d
		}

		pick := -1
		if total > 0 {
			target := rng.Float64() * total
			var acc float64
			for i, d := range nearest {
				if d == 0 {
					continue
				}
				acc += d
				pick = i
				if acc > target {
					break
				}
			}
		} else {
			pick = rng.Intn(len(points))
		}
		centroids = append(centroids, clonePoint(points[pick]))
	}
	return centroids
}

// assign labels every point with its nearest centroid; ties go to the
// lower index.
func assign[T any](a Algebra[T], points, centroids [][]T, labels []int, dist []float64, popts []parallel.Option) {
	parallel.For(len(points), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			best, bestD := 0, math.Inf(1)
			for c, centroid := range centroids {
				if d := sqDist(a, points[i], centroid); d < bestD {
					best, bestD = c, d
				}
			}
			labels[i], dist[i] = best, bestD
		}
	}, popts...)
}

// update returns the mean of every cluster.
func update[T any](a Algebra[T], points [][]T, labels []int, prev [][]T, dim int) [][]T {
	k := len(prev)
	sums := make([][]T, k)
	counts := make([]int64, k)
	for c := range sums {
		sums[c] = make([]T, dim)
		for j := range sums[c] {
			sums[c][j] = a.Zero()
		}
	}
	for i, p := range points {
		c := labels[i]
		counts[c]++
		for j, v := range p {
			sums[c][j] = a.Add(sums[c][j], v)
		}
	}

	for c := range sums {
		if counts[c] == 0 {
			sums[c] = clonePoint(prev[c])
			continue
		}
		inv, err := a.Inv(a.FromInt(counts[c]))
		if err != nil {
			// The count is not invertible in this algebra; keep the old centre.
			sums[c] = clonePoint(prev[c])
			continue
		}
		for j := range sums[c] {
			sums[c][j] = a.Mul(sums[c][j], inv)
		}
	}
	return sums
}

func clonePoint[T any](p []T) []T {
	return append([]T(nil), p...)
}
