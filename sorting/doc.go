// Package sorting implements the classic comparison sorts over any element
// type with an [algebra.Ordered] comparator.
//
// Each algorithm comes in two forms: one taking an Ordered algebra and a Func
// variant taking a plain three-way comparator, mirroring the standard library's
// slices.SortFunc convention:
//
//	sorting.Intro[int64](algebra.Int64{}, xs)
//	sorting.IntroFunc(xs, func(a, b point) int { return cmp.Compare(a.x, b.x) })
//
// Merge and Parallel are stable; the others are not.
package sorting
