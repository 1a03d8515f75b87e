package decompose

// STLConfig configures a single-period STL decomposition.
type STLConfig struct {
	// SeasonalSpan is a seasonal window width carried in the config. STL
	// does not read it: the seasonal component is the per-position mean
	// (robust-weighted in robust mode) of the detrended series, with no
	// seasonal LOESS smoothing.
	SeasonalSpan int
	// TrendSpan is the odd-width window for the trend LOESS smoother;
	// zero selects ensure_odd(max(3*period, 7)).
	TrendSpan int
	// Iterations is the number of inner (detrend/seasonal/trend) passes,
	// default 2.
	Iterations int
	// Robust enables bisquare reweighting between iterations.
	Robust bool
}

// DefaultSTLConfig returns SeasonalSpan=7, TrendSpan=0 (auto), Iterations=2,
// Robust=false.
func DefaultSTLConfig() STLConfig {
	return STLConfig{SeasonalSpan: 7, TrendSpan: 0, Iterations: 2, Robust: false}
}

// STLResult is the output of a single-period STL decomposition.
type STLResult struct {
	Trend     []float64
	Seasonal  []float64
	Remainder []float64
}

// MSTLConfig configures a multi-period decomposition.
type MSTLConfig struct {
	// OuterIterations is the number of outer passes over all periods,
	// default 2.
	OuterIterations int
	// Robust clips remainders at 6*MAD between outer iterations.
	Robust bool
	// SeasonalSpans, if non-nil, is copied into each period's
	// STLConfig.SeasonalSpan, indexed in ascending period order; nil leaves
	// every SeasonalSpan at zero. STL does not read SeasonalSpan, so this
	// field does not change the decomposition.
	SeasonalSpans []int
}

// DefaultMSTLConfig returns OuterIterations=2, Robust=false.
func DefaultMSTLConfig() MSTLConfig {
	return MSTLConfig{OuterIterations: 2, Robust: false}
}

// DetrendMethod selects the polynomial degree for Detrend.
type DetrendMethod int

const (
	DetrendLinear DetrendMethod = iota
	DetrendQuadratic
	DetrendCubic
	DetrendAuto
)

// DetrendResult is the output of Detrend.
type DetrendResult struct {
	Trend     []float64
	Detrended []float64
	Method    DetrendMethod
	Coeffs    []float64
	RSS       float64
	NParams   int
}

// PeriodCandidate is one detected period with a confidence/power score in
// [0, 1] (exact normalization depends on which detector produced it).
type PeriodCandidate struct {
	Period     int
	Confidence float64
}
