// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, with optional alignment path and memory optimizations.
//
// DTW finds the best match between two sequences by warping the time
// axis to minimize cumulative distance. Within this module it backs the
// pairwise distance matrix consumed by the cluster package, as an
// alternative to Euclidean distance for series of unequal length or phase.
//
// Key features:
//   - full-matrix mode: exact O(N*M) time & memory
//   - rolling mode: O(M) memory, M=len(b) (choose via MemoryMode)
//   - optional Sakoe-Chiba window (|i-j| <= w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//   - on-demand alignment path (ReturnPath=true)
//
// Usage:
//
//	import "github.com/DataZooDE/anofox-forecast-sub014/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10       // Sakoe-Chiba band +-10
//	opts.SlopePenalty = 0.5
//	opts.MemoryMode = dtw.TwoRows
//
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N*M)
//   - Memory: O(N*M) (FullMatrix) or O(M) (TwoRows, NoMemory)
package dtw
