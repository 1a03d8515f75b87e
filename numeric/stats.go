package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// Variance returns the sample variance (divisor n-1) of xs. For n<2 it
// returns 0.
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.Variance(xs, nil)
}

// PopVariance returns the population variance (divisor n) of xs.
func PopVariance(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	mean := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return ss / float64(n)
}

// MAD returns the median absolute deviation of xs about their median:
// median(|x_i - median(xs)|).
func MAD(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	center := MedianCopy(xs)
	dev := make([]float64, len(xs))
	for i, x := range xs {
		dev[i] = math.Abs(x - center)
	}
	return Median(dev)
}

// ACF returns the sample autocorrelation function of xs at lags
// 0..maxLag inclusive, normalized so ACF[0] == 1 (for a non-constant
// series). Uses the biased (divide-by-n) covariance estimator, unlike
// Periodogram, which divides each lag-p sum by n-p.
func ACF(xs []float64, maxLag int) []float64 {
	n := len(xs)
	out := make([]float64, maxLag+1)
	if n == 0 {
		return out
	}
	mean := Mean(xs)
	centered := make([]float64, n)
	for i, x := range xs {
		centered[i] = x - mean
	}
	var0 := floats.Dot(centered, centered) / float64(n)
	if var0 == 0 {
		out[0] = 1
		return out
	}
	for lag := 0; lag <= maxLag && lag < n; lag++ {
		var cov float64
		for t := lag; t < n; t++ {
			cov += centered[t] * centered[t-lag]
		}
		cov /= float64(n)
		out[lag] = cov / var0
	}
	return out
}
