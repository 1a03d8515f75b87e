// Package cluster implements the distance matrix and DBSCAN clustering of
// spec.md §4.9 (L4): a symmetric zero-diagonal DistanceMatrix over N
// series (Euclidean-on-resampled-grid, DTW, or 1-Pearson correlation on the
// resampled grid), backed by matrix.Dense for
// storage, and a region-query/expand-cluster DBSCAN over a precomputed
// distance matrix.
package cluster
