package sorting

import (
	"math/bits"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/parallel"
)

// Below this length the recursive sorts finish with insertion sort.
const insertionThreshold = 12

// Insertion sorts xs with insertion sort. Stable, O(n^2).
func Insertion[T any](o algebra.Ordered[T], xs []T) { InsertionFunc(xs, o.Compare) }

// InsertionFunc is [Insertion] with an explicit comparator.
func InsertionFunc[T any](xs []T, cmp func(a, b T) int) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i
		for ; j > 0 && cmp(v, xs[j-1]) < 0; j-- {
			xs[j] = xs[j-1]
		}
		xs[j] = v
	}
}

// Heap sorts xs with heapsort. O(n log n) worst case, not stable.
func Heap[T any](o algebra.Ordered[T], xs []T) { HeapFunc(xs, o.Compare) }

// HeapFunc is [Heap] with an explicit comparator.
func HeapFunc[T any](xs []T, cmp func(a, b T) int) {
	n := len(xs)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(xs, i, n, cmp)
	}
	for end := n - 1; end > 0; end-- {
		xs[0], xs[end] = xs[end], xs[0]
		siftDown(xs, 0, end, cmp)
	}
}

func siftDown[T any](xs []T, root, end int, cmp func(a, b T) int) {
	for {
		child := 2*root + 1
		if child >= end {
			return
		}
		if child+1 < end && cmp(xs[child], xs[child+1]) < 0 {
			child++
		}
		if cmp(xs[root], xs[child]) >= 0 {
			return
		}
		xs[root], xs[child] = xs[child], xs[root]
		root = child
	}
}

// Quick sorts xs with quicksort using a median-of-three pivot and Hoare
// partitioning. Recursion is on the smaller side, so stack depth is
// O(log n); time is O(n^2) in the worst case.
func Quick[T any](o algebra.Ordered[T], xs []T) { QuickFunc(xs, o.Compare) }

// QuickFunc is [Quick] with an explicit comparator.
func QuickFunc[T any](xs []T, cmp func(a, b T) int) {
	quick(xs, cmp, -1)
}

// Intro sorts xs with introsort: quicksort that falls back to heapsort once
// the recursion depth exceeds 2*log2(n), finishing short runs with insertion
// sort. O(n log n) worst case, not stable.
func Intro[T any](o algebra.Ordered[T], xs []T) { IntroFunc(xs, o.Compare) }

// IntroFunc is [Intro] with an explicit comparator.
func IntroFunc[T any](xs []T, cmp func(a, b T) int) {
	if len(xs) < 2 {
		return
	}
	quick(xs, cmp, 2*bits.Len(uint(len(xs))))
}

// quick runs the quicksort loop. depth < 0 means unlimited.
func quick[T any](xs []T, cmp func(a, b T) int, depth int) {
	for len(xs) > insertionThreshold {
		if depth == 0 {
			HeapFunc(xs, cmp)
			return
		}
		if depth > 0 {
			depth--
		}

		p := partition(xs, cmp)
		left, right := xs[:p+1], xs[p+1:]
		if len(left) < len(right) {
			quick(left, cmp, depth)
			xs = right
		} else {
			quick(right, cmp, depth)
			xs = left
		}
	}
	InsertionFunc(xs, cmp)
}

// partition orders the first, middle and last element, then runs Hoare's
// scheme around the middle value. It returns j with xs[:j+1] <= pivot <=
// xs[j+1:] and 0 <= j < len(xs)-1.
func partition[T any](xs []T, cmp func(a, b T) int) int {
	lo, mid, hi := 0, (len(xs)-1)/2, len(xs)-1
	if cmp(xs[mid], xs[lo]) < 0 {
		xs[mid], xs[lo] = xs[lo], xs[mid]
	}
	if cmp(xs[hi], xs[lo]) < 0 {
		xs[hi], xs[lo] = xs[lo], xs[hi]
	}
	if cmp(xs[hi], xs[mid]) < 0 {
		xs[hi], xs[mid] = xs[mid], xs[hi]
	}
	pivot := xs[mid]

	i, j := -1, len(xs)
	for {
		for i++; cmp(xs[i], pivot) < 0; i++ {
		}
		for j--; cmp(xs[j], pivot) > 0; j-- {
		}
		if i >= j {
			return j
		}
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Merge sorts xs with a bottom-up merge sort. Stable, O(n log n) time and
// O(n) extra space.
func Merge[T any](o algebra.Ordered[T], xs []T) { MergeFunc(xs, o.Compare) }

// MergeFunc is [Merge] with an explicit comparator.
func MergeFunc[T any](xs []T, cmp func(a, b T) int) {
	n := len(xs)
	if n < 2 {
		return
	}

	// Presort short runs in place; insertion sort is stable.
	for lo := 0; lo < n; lo += insertionThreshold {
		InsertionFunc(xs[lo:min(lo+insertionThreshold, n)], cmp)
	}

	src, dst := xs, make([]T, n)
	for width := insertionThreshold; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			merge(dst[lo:hi], src[lo:mid], src[mid:hi], cmp)
		}
		src, dst = dst, src
	}
	if &src[0] != &xs[0] {
		copy(xs, src)
	}
}

// merge merges the sorted runs a and b into dst, taking from a on ties.
func merge[T any](dst, a, b []T, cmp func(a, b T) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}

// Parallel sorts xs stably, sorting contiguous chunks concurrently and
// merging them pairwise.
func Parallel[T any](o algebra.Ordered[T], xs []T, opts ...parallel.Option) {
	parallel.Sort(xs, o.Compare, opts...)
}

// ParallelFunc is [Parallel] with an explicit comparator.
func ParallelFunc[T any](xs []T, cmp func(a, b T) int, opts ...parallel.Option) {
	parallel.Sort(xs, cmp, opts...)
}

// IsSorted reports whether xs is in non-decreasing order.
func IsSorted[T any](o algebra.Ordered[T], xs []T) bool { return IsSortedFunc(xs, o.Compare) }

// IsSortedFunc is [IsSorted] with an explicit comparator.
func IsSortedFunc[T any](xs []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(xs); i++ {
		if cmp(xs[i], xs[i-1]) < 0 {
			return false
		}
	}
	return true
}

// Search returns the smallest index i with xs[i] >= target in the sorted
// slice xs, or len(xs) when every element is smaller. found reports whether
// xs[i] equals target.
func Search[T any](o algebra.Ordered[T], xs []T, target T) (i int, found bool) {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if o.Compare(xs[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(xs) && o.Compare(xs[lo], target) == 0
}
