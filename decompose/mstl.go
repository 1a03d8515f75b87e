package decompose

import (
	"sort"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
	"github.com/DataZooDE/anofox-forecast-sub014/numeric"
)

// MSTL decomposes values against multiple periods, ascending, by running a
// single-iteration STL against the running residual for each period in
// turn and subtracting its seasonal component. The trend is a moving
// average of the final residual with window ensure_odd(2*max(periods)).
// Each period's STLConfig is built once before the outer passes; every
// pass then calls STL afresh for each period, and STL allocates its own
// working buffers on each call, so no decomposer or scratch buffer is
// reused across periods or outer iterations.
func MSTL(values []float64, periods []int, cfg MSTLConfig) (tsforecast.Decomposition, error) {
	n := len(values)
	if len(periods) == 0 {
		return tsforecast.Decomposition{}, errEmptyCandidateSet
	}
	sorted := append([]int(nil), periods...)
	sort.Ints(sorted)
	maxPeriod := sorted[len(sorted)-1]
	if n < 2*maxPeriod {
		return tsforecast.Decomposition{}, insufficientDataf("series length %d < 2*max(periods) (%d)", n, 2*maxPeriod)
	}

	outer := cfg.OuterIterations
	if outer <= 0 {
		outer = 2
	}

	residual := append([]float64(nil), values...)
	seasonals := make([][]float64, len(sorted))
	for i := range seasonals {
		seasonals[i] = make([]float64, n)
	}

	stlCfgs := make([]STLConfig, len(sorted))
	for i := range stlCfgs {
		stlCfgs[i] = STLConfig{Iterations: 1, TrendSpan: 0, Robust: false}
		if cfg.SeasonalSpans != nil && i < len(cfg.SeasonalSpans) {
			stlCfgs[i].SeasonalSpan = cfg.SeasonalSpans[i]
		}
	}

	for pass := 0; pass < outer; pass++ {
		for i, p := range sorted {
			// Restore this period's own seasonal estimate from the previous
			// pass before refitting, so later periods in this pass see a
			// residual that still reflects it; only the freshly-refit
			// seasonal is removed again afterward.
			for t := 0; t < n; t++ {
				residual[t] += seasonals[i][t]
			}
			result, err := STL(residual, p, stlCfgs[i])
			if err != nil {
				return tsforecast.Decomposition{}, err
			}
			seasonals[i] = result.Seasonal
			for t := 0; t < n; t++ {
				residual[t] -= seasonals[i][t]
			}
		}
		if cfg.Robust && pass+1 < outer {
			clipRemainderAtMAD(residual, 6)
		}
	}

	trendWindow := ensureOdd(2 * maxPeriod)
	trend := movingAverage(residual, trendWindow)

	remainder := make([]float64, n)
	for t := 0; t < n; t++ {
		sumSeasonal := 0.0
		for _, s := range seasonals {
			sumSeasonal += s[t]
		}
		remainder[t] = values[t] - trend[t] - sumSeasonal
	}

	return tsforecast.Decomposition{
		Trend:     trend,
		Seasonals: seasonals,
		Periods:   sorted,
		Remainder: remainder,
	}, nil
}

// movingAverage returns a centered moving average of window w (forced
// odd), with edges shrinking the window rather than padding with zeros.
func movingAverage(xs []float64, w int) []float64 {
	n := len(xs)
	out := make([]float64, n)
	half := w / 2
	for i := 0; i < n; i++ {
		lo := i - half
		hi := i + half
		if lo < 0 {
			lo = 0
		}
		if hi >= n {
			hi = n - 1
		}
		var sum float64
		for k := lo; k <= hi; k++ {
			sum += xs[k]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}

func clipRemainderAtMAD(residual []float64, k float64) {
	bound := k * numeric.MAD(residual)
	if bound <= 0 {
		return
	}
	for i, r := range residual {
		if r > bound {
			residual[i] = bound
		} else if r < -bound {
			residual[i] = -bound
		}
	}
}
