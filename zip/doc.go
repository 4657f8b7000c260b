// Package zip pairs, interleaves and splits slices element by element.
//
// [Zip] and [Unzip] convert between two parallel slices and a slice of
// [Pair]s. [Interleave] and [Deinterleave] convert between per-channel
// slices and one interleaved buffer (L, R, L, R, ...). Long inputs are
// processed in parallel chunks; every output element depends on exactly one
// input position, so results do not depend on the worker count.
package zip
