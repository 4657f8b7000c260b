package parallel

import "slices"

// Sort sorts xs stably by cmp. Chunks are sorted concurrently, then merged
// pairwise round by round with every merge of a round running concurrently.
func Sort[T any](xs []T, cmp func(a, b T) int, opts ...Option) {
	chunks := Plan(len(xs), opts...)
	if len(chunks) <= 1 {
		slices.SortStableFunc(xs, cmp)
		return
	}

	For(len(chunks), func(lo, hi int) {
		for c := lo; c < hi; c++ {
			slices.SortStableFunc(xs[chunks[c].Lo:chunks[c].Hi], cmp)
		}
	}, WithWorkers(len(chunks)))

	src := xs
	dst := make([]T, len(xs))
	runs := chunks

	for len(runs) > 1 {
		next := make([]Range, (len(runs)+1)/2)
		pairs := len(runs) / 2

		For(len(next), func(lo, hi int) {
			for p := lo; p < hi; p++ {
				a := runs[2*p]
				if p >= pairs {
					// odd run out: carry over unchanged
					copy(dst[a.Lo:a.Hi], src[a.Lo:a.Hi])
					continue
				}
				b := runs[2*p+1]
				mergeInto(dst[a.Lo:b.Hi], src[a.Lo:a.Hi], src[b.Lo:b.Hi], cmp)
			}
		}, WithWorkers(len(next)))

		for p := range next {
			if p < pairs {
				next[p] = Range{Lo: runs[2*p].Lo, Hi: runs[2*p+1].Hi}
			} else {
				next[p] = runs[2*p]
			}
		}

		runs = next
		src, dst = dst, src
	}

	if &src[0] != &xs[0] {
		copy(xs, src)
	}
}

// mergeInto merges the sorted runs a and b into dst, taking from a on ties.
func mergeInto[T any](dst, a, b []T, cmp func(a, b T) int) {
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
