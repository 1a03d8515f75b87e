package decompose

import (
	"math"

	"github.com/DataZooDE/anofox-forecast-sub014/numeric"
)

// STL decomposes values into trend, seasonal and remainder components for
// a single period p, following the classical inner-loop algorithm:
// detrend, compute seasonal means per position (centered to sum to zero),
// re-smooth the trend by LOESS on the deseasonalized series, and derive
// the remainder. In robust mode, bisquare weights from the prior pass's
// remainder weight the next pass's per-position seasonal means; the trend
// LOESS is always fit unweighted.
func STL(values []float64, period int, cfg STLConfig) (STLResult, error) {
	n := len(values)
	if period < 2 {
		return STLResult{}, invalidParamf("period %d must be >= 2", period)
	}
	if n < 2*period {
		return STLResult{}, insufficientDataf("series length %d < 2*period (%d)", n, 2*period)
	}

	trendSpan := cfg.TrendSpan
	if trendSpan == 0 {
		trendSpan = ensureOdd(maxInt(3*period, 7))
	} else {
		trendSpan = ensureOdd(trendSpan)
	}
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = 2
	}

	trend := make([]float64, n)
	seasonal := make([]float64, n)
	remainder := make([]float64, n)
	robustWeights := make([]float64, n)
	for i := range robustWeights {
		robustWeights[i] = 1
	}

	detrended := make([]float64, n)
	deseasonalized := make([]float64, n)
	xIdx := make([]float64, n)
	for i := range xIdx {
		xIdx[i] = float64(i)
	}
	trendLoessCfg := numeric.LOESSConfig{Span: clampSpanFraction(trendSpan, n), Robust: 0, Degree: 1}

	robustPasses := 1
	if cfg.Robust {
		robustPasses = 3
	}

	for outer := 0; outer < robustPasses; outer++ {
		for it := 0; it < iterations; it++ {
			for i := 0; i < n; i++ {
				detrended[i] = values[i] - trend[i]
			}

			seasonalMeans := make([]float64, period)
			counts := make([]float64, period)
			for i := 0; i < n; i++ {
				j := i % period
				w := robustWeights[i]
				seasonalMeans[j] += detrended[i] * w
				counts[j] += w
			}
			var grandMean float64
			for j := 0; j < period; j++ {
				if counts[j] > 0 {
					seasonalMeans[j] /= counts[j]
				}
				grandMean += seasonalMeans[j]
			}
			grandMean /= float64(period)
			for j := range seasonalMeans {
				seasonalMeans[j] -= grandMean
			}
			for i := 0; i < n; i++ {
				seasonal[i] = seasonalMeans[i%period]
			}

			for i := 0; i < n; i++ {
				deseasonalized[i] = values[i] - seasonal[i]
			}
			trend = numeric.LOESS(xIdx, deseasonalized, trendLoessCfg, nil)
		}

		for i := 0; i < n; i++ {
			remainder[i] = values[i] - trend[i] - seasonal[i]
		}
		if outer+1 < robustPasses {
			updateRobustWeightsFromRemainder(remainder, robustWeights)
		}
	}
	return STLResult{Trend: trend, Seasonal: seasonal, Remainder: remainder}, nil
}

func updateRobustWeightsFromRemainder(remainder, weights []float64) {
	absRes := make([]float64, len(remainder))
	for i, r := range remainder {
		absRes[i] = math.Abs(r)
	}
	scale := 6 * numeric.MedianCopy(absRes)
	if scale <= 0 {
		for i := range weights {
			weights[i] = 1
		}
		return
	}
	for i, r := range remainder {
		u := r / scale
		if math.Abs(u) >= 1 {
			weights[i] = 0
			continue
		}
		weights[i] = (1 - u*u) * (1 - u*u)
	}
}

func ensureOdd(x int) int {
	if x%2 == 0 {
		return x + 1
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// clampSpanFraction converts an absolute window width into the [0,1] span
// fraction numeric.LOESS expects, clamped to a sane minimum.
func clampSpanFraction(span, n int) float64 {
	if n == 0 {
		return 0.3
	}
	f := float64(span) / float64(n)
	if f <= 0 {
		f = 0.1
	}
	if f > 1 {
		f = 1
	}
	return f
}
