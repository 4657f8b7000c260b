// Package cluster partitions vectors with Lloyd's k-means algorithm.
//
// Points are slices of any algebra element that supports field arithmetic
// and a norm, so the same code clusters real vectors, complex vectors or
// quaternion vectors. The distance between two points is the Euclidean norm
// of their difference, sqrt(sum |a_i - b_i|^2).
//
// Initial centroids are chosen with k-means++ seeding driven by a seeded
// generator, so results are reproducible for a given [WithSeed] value and do
// not depend on the worker count.
//
//	res, err := cluster.KMeans[float64](algebra.Float64{}, points, 3,
//		cluster.WithSeed(7), cluster.WithTolerance(1e-9))
package cluster
