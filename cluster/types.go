package cluster

import "github.com/DataZooDE/anofox-forecast-sub014/dtw"

// DistanceMetric selects how BuildDistanceMatrix compares two series.
type DistanceMetric int

const (
	// Euclidean resamples both series onto a common-length grid by linear
	// interpolation, then takes the Euclidean norm of the difference.
	Euclidean DistanceMetric = iota
	// DTWDistance uses dynamic time warping (package dtw), tolerating
	// series of different lengths and local misalignment directly.
	DTWDistance
	// CorrelationDistance resamples every series onto a common grid,
	// computes their Pearson correlation matrix in one shot via
	// matrix.Correlation, and reports 1-corr so perfectly co-moving
	// series land at distance 0 and perfectly anti-correlated ones at 2.
	CorrelationDistance
)

// DistanceConfig configures BuildDistanceMatrix.
type DistanceConfig struct {
	Metric DistanceMetric
	// GridSize is the common resampling length for Euclidean and
	// CorrelationDistance; zero
	// selects the shortest input series' length.
	GridSize int
	// DTWOptions configures the DTW metric; nil selects dtw.DefaultOptions().
	DTWOptions *dtw.Options
}

// Noise is the DBSCAN label assigned to a point that belongs to no
// cluster.
const Noise = -1
