package tsforecast

import "time"

// Series is an ordered sequence of (timestamp, value) pairs sharing a
// single observation frequency. Timestamps are monotonically
// non-decreasing when present; a nil Timestamps slice means an implicit
// integer index. Missing values are represented as math.NaN() entries in
// Values, never a parallel bool/null-marker slice.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Freq       time.Duration
	// Meta is inert pass-through data (group key, unit, tenant, ...) never
	// interpreted by the core itself.
	Meta map[string]string
}

// Len returns the number of observations in the series.
func (s Series) Len() int { return len(s.Values) }

// Forecast is a horizon-h point forecast with parallel lower/upper
// prediction-interval bands at a stated coverage level, plus optional
// in-sample fitted values and residuals of length len(series).
type Forecast struct {
	Horizon  int
	Point    []float64
	Lower    []float64
	Upper    []float64
	Coverage float64

	Fitted    []float64
	Residuals []float64
}

// Decomposition holds a trend array, one seasonal-component array per
// declared period (ordered ascending by period), and a remainder array,
// all of length n. In additive mode the additivity invariant holds:
// value[i] = trend[i] + sum_k seasonal_k[i] + remainder[i], up to
// numerical tolerance.
type Decomposition struct {
	Trend     []float64
	Seasonals [][]float64
	Periods   []int
	Remainder []float64
}
