package cluster

import (
	"math"

	"github.com/DataZooDE/anofox-forecast-sub014/dtw"
	"github.com/DataZooDE/anofox-forecast-sub014/matrix"
)

// BuildDistanceMatrix computes a symmetric, zero-diagonal N x N distance
// matrix over series, backed by matrix.Dense, per spec.md §3's
// DistanceMatrix data model.
func BuildDistanceMatrix(series [][]float64, cfg DistanceConfig) (*matrix.Dense, error) {
	n := len(series)
	if n == 0 {
		return nil, invalidParamf("BuildDistanceMatrix: no series supplied")
	}
	for i, s := range series {
		if len(s) == 0 {
			return nil, invalidParamf("BuildDistanceMatrix: series %d is empty", i)
		}
	}

	var resampled [][]float64
	if cfg.Metric == Euclidean || cfg.Metric == CorrelationDistance {
		grid := cfg.GridSize
		if grid <= 0 {
			grid = shortestLength(series)
		}
		resampled = make([][]float64, n)
		for i, s := range series {
			resampled[i] = resampleLinear(s, grid)
		}
	}

	if cfg.Metric == CorrelationDistance {
		return correlationDistanceMatrix(resampled)
	}

	// A strict DTW window relative to two series' length difference makes
	// every warping path invalid, in which case dtw.NormalizedDistance
	// reports +Inf (see dtw.DTW's window-infeasibility case). Allow that
	// sentinel through rather than rejecting it as non-finite input.
	dist, err := matrix.NewPreparedDense(n, n, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, err
	}

	opts := cfg.DTWOptions
	if opts == nil {
		d := dtw.DefaultOptions()
		opts = &d
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var d float64
			var err error
			switch cfg.Metric {
			case DTWDistance:
				d, err = dtw.NormalizedDistance(series[i], series[j], opts)
			default:
				d = euclidean(resampled[i], resampled[j])
			}
			if err != nil {
				return nil, err
			}
			if setErr := dist.Set(i, j, d); setErr != nil {
				return nil, setErr
			}
			if setErr := dist.Set(j, i, d); setErr != nil {
				return nil, setErr
			}
		}
	}
	return dist, nil
}

// correlationDistanceMatrix lays the resampled series out as columns of a
// grid-rows x n-series observation matrix and hands it to matrix.Correlation
// in one call, rather than computing n*(n-1)/2 pairwise correlations by hand.
func correlationDistanceMatrix(resampled [][]float64) (*matrix.Dense, error) {
	n := len(resampled)
	grid := len(resampled[0])

	obs, err := matrix.NewDense(grid, n)
	if err != nil {
		return nil, err
	}
	for j, s := range resampled {
		for i, v := range s {
			if setErr := obs.Set(i, j, v); setErr != nil {
				return nil, setErr
			}
		}
	}

	corr, _, _, err := matrix.Correlation(obs)
	if err != nil {
		return nil, err
	}

	dist, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c, atErr := corr.At(i, j)
			if atErr != nil {
				return nil, atErr
			}
			d := 1 - c
			if setErr := dist.Set(i, j, d); setErr != nil {
				return nil, setErr
			}
			if setErr := dist.Set(j, i, d); setErr != nil {
				return nil, setErr
			}
		}
	}
	return dist, nil
}

func shortestLength(series [][]float64) int {
	min := len(series[0])
	for _, s := range series[1:] {
		if len(s) < min {
			min = len(s)
		}
	}
	return min
}

// resampleLinear resamples xs onto a grid of gridSize equally-spaced
// points spanning [0, len(xs)-1] via linear interpolation.
func resampleLinear(xs []float64, gridSize int) []float64 {
	n := len(xs)
	if gridSize <= 1 || n == 1 {
		out := make([]float64, gridSize)
		for i := range out {
			out[i] = xs[0]
		}
		return out
	}
	out := make([]float64, gridSize)
	step := float64(n-1) / float64(gridSize-1)
	for i := 0; i < gridSize; i++ {
		pos := float64(i) * step
		lo := int(math.Floor(pos))
		if lo >= n-1 {
			out[i] = xs[n-1]
			continue
		}
		frac := pos - float64(lo)
		out[i] = xs[lo] + frac*(xs[lo+1]-xs[lo])
	}
	return out
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
