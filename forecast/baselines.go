package forecast

import (
	"math"

	"github.com/DataZooDE/anofox-forecast-sub014/numeric"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
)

// fittedState is the common bookkeeping every baseline shares: in-sample
// fitted values/residuals and the one-step innovation sigma they derive
// the interval width from.
type fittedState struct {
	fitted    []float64
	residuals []float64
	sigma     float64
}

func (f fittedState) Fitted() ([]float64, bool) {
	if f.fitted == nil {
		return nil, false
	}
	return f.fitted, true
}

func (f fittedState) Residuals() ([]float64, bool) {
	if f.residuals == nil {
		return nil, false
	}
	return f.residuals, true
}

func residualSigma(residuals []float64) float64 {
	var finite []float64
	for _, r := range residuals {
		if !math.IsNaN(r) {
			finite = append(finite, r)
		}
	}
	if len(finite) < 2 {
		return 0
	}
	return math.Sqrt(numeric.Variance(finite))
}

// Naive forecasts the last observed value for every horizon step.
type Naive struct {
	fittedState
	last float64
	n    int
}

func (m *Naive) Fit(series tsforecast.Series) error {
	v := series.Values
	if len(v) < 2 {
		return insufficientDataf("Naive requires n>=2, got %d", len(v))
	}
	fitted := make([]float64, len(v))
	residuals := make([]float64, len(v))
	fitted[0] = math.NaN()
	residuals[0] = math.NaN()
	for t := 1; t < len(v); t++ {
		fitted[t] = v[t-1]
		residuals[t] = v[t] - fitted[t]
	}
	m.fittedState = fittedState{fitted: fitted, residuals: residuals, sigma: residualSigma(residuals)}
	m.last = v[len(v)-1]
	m.n = len(v)
	return nil
}

func (m *Naive) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	point := make([]float64, h)
	for k := range point {
		point[k] = m.last
	}
	lower, upper := intervalsFromSigma(point, zValue(coverage), m.sigma, sqrtGrowth(h))
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: m.fitted, Residuals: m.residuals}, nil
}

// SeasonalNaive forecasts point[k] = value at the same seasonal position p
// steps back as the last full cycle.
type SeasonalNaive struct {
	fittedState
	values []float64
	period int
}

func NewSeasonalNaive(period int) *SeasonalNaive { return &SeasonalNaive{period: period} }

func (m *SeasonalNaive) Fit(series tsforecast.Series) error {
	p := m.period
	if p < 2 {
		return invalidParamf("SeasonalNaive period must be >= 2, got %d", p)
	}
	v := series.Values
	if len(v) < p+1 {
		return insufficientDataf("SeasonalNaive requires n>=period+1, got %d for period %d", len(v), p)
	}
	fitted := make([]float64, len(v))
	residuals := make([]float64, len(v))
	for t := 0; t < len(v); t++ {
		if t < p {
			fitted[t] = math.NaN()
			residuals[t] = math.NaN()
			continue
		}
		fitted[t] = v[t-p]
		residuals[t] = v[t] - fitted[t]
	}
	m.fittedState = fittedState{fitted: fitted, residuals: residuals, sigma: residualSigma(residuals)}
	m.values = v
	return nil
}

func (m *SeasonalNaive) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	n := len(m.values)
	p := m.period
	point := make([]float64, h)
	growth := make([]float64, h)
	for k := 0; k < h; k++ {
		point[k] = m.values[n-p+(k%p)]
		growth[k] = math.Sqrt(math.Ceil(float64(k+1) / float64(p)))
	}
	lower, upper := intervalsFromSigma(point, zValue(coverage), m.sigma, growth)
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: m.fitted, Residuals: m.residuals}, nil
}

// RandomWalkDrift extrapolates the average first difference (drift) of
// the whole series forward.
type RandomWalkDrift struct {
	fittedState
	last, drift float64
	n           int
}

func (m *RandomWalkDrift) Fit(series tsforecast.Series) error {
	v := series.Values
	n := len(v)
	if n < 2 {
		return insufficientDataf("RandomWalkDrift requires n>=2, got %d", n)
	}
	drift := (v[n-1] - v[0]) / float64(n-1)
	fitted := make([]float64, n)
	residuals := make([]float64, n)
	fitted[0] = math.NaN()
	residuals[0] = math.NaN()
	for t := 1; t < n; t++ {
		fitted[t] = v[t-1] + drift
		residuals[t] = v[t] - fitted[t]
	}
	m.fittedState = fittedState{fitted: fitted, residuals: residuals, sigma: residualSigma(residuals)}
	m.last, m.drift, m.n = v[n-1], drift, n
	return nil
}

func (m *RandomWalkDrift) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	point := make([]float64, h)
	growth := make([]float64, h)
	for k := 0; k < h; k++ {
		hk := float64(k + 1)
		point[k] = m.last + hk*m.drift
		growth[k] = math.Sqrt(hk * (1 + hk/float64(m.n)))
	}
	lower, upper := intervalsFromSigma(point, zValue(coverage), m.sigma, growth)
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: m.fitted, Residuals: m.residuals}, nil
}

// SMA forecasts the mean of the last Window observations, held constant
// across the horizon.
type SMA struct {
	fittedState
	mean   float64
	Window int
}

func NewSMA(window int) *SMA { return &SMA{Window: window} }

func (m *SMA) Fit(series tsforecast.Series) error {
	w := m.Window
	if w < 1 {
		return invalidParamf("SMA window must be >= 1, got %d", w)
	}
	v := series.Values
	if len(v) < w {
		return insufficientDataf("SMA requires n>=window, got %d for window %d", len(v), w)
	}
	fitted := make([]float64, len(v))
	residuals := make([]float64, len(v))
	for t := range v {
		if t+1 < w {
			fitted[t] = math.NaN()
			residuals[t] = math.NaN()
			continue
		}
		fitted[t] = numeric.Mean(v[t-w+1 : t+1])
		residuals[t] = v[t] - fitted[t]
	}
	m.fittedState = fittedState{fitted: fitted, residuals: residuals, sigma: residualSigma(residuals)}
	m.mean = numeric.Mean(v[len(v)-w:])
	return nil
}

func (m *SMA) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	point := make([]float64, h)
	growth := make([]float64, h)
	for k := range point {
		point[k] = m.mean
		growth[k] = 1
	}
	lower, upper := intervalsFromSigma(point, zValue(coverage), m.sigma, growth)
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: m.fitted, Residuals: m.residuals}, nil
}

// SeasonalWindowAverage forecasts, at each seasonal position, the mean of
// the last Window observations at that position.
type SeasonalWindowAverage struct {
	fittedState
	values         []float64
	Period, Window int
}

func NewSeasonalWindowAverage(period, window int) *SeasonalWindowAverage {
	return &SeasonalWindowAverage{Period: period, Window: window}
}

func (m *SeasonalWindowAverage) Fit(series tsforecast.Series) error {
	p, w := m.Period, m.Window
	if p < 2 {
		return invalidParamf("SeasonalWindowAverage period must be >= 2, got %d", p)
	}
	if w < 1 {
		return invalidParamf("SeasonalWindowAverage window must be >= 1, got %d", w)
	}
	v := series.Values
	if len(v) < p*w {
		return insufficientDataf("SeasonalWindowAverage requires n>=period*window, got %d for %d*%d", len(v), p, w)
	}
	fitted := make([]float64, len(v))
	residuals := make([]float64, len(v))
	for t := range v {
		vals := samePositionWindow(v, t, p, w)
		if vals == nil {
			fitted[t] = math.NaN()
			residuals[t] = math.NaN()
			continue
		}
		fitted[t] = numeric.Mean(vals)
		residuals[t] = v[t] - fitted[t]
	}
	m.fittedState = fittedState{fitted: fitted, residuals: residuals, sigma: residualSigma(residuals)}
	m.values = v
	return nil
}

// samePositionWindow collects the w observations ending strictly before t,
// spaced p apart (t-p, t-2p, ..., t-w*p), or nil if fewer than w exist.
func samePositionWindow(v []float64, t, p, w int) []float64 {
	out := make([]float64, 0, w)
	for i := 1; i <= w; i++ {
		idx := t - i*p
		if idx < 0 {
			return nil
		}
		out = append(out, v[idx])
	}
	return out
}

func (m *SeasonalWindowAverage) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	n := len(m.values)
	p, w := m.Period, m.Window
	point := make([]float64, h)
	growth := make([]float64, h)
	for k := 0; k < h; k++ {
		pos := n - p + (k % p)
		vals := make([]float64, 0, w)
		for i := 0; i < w; i++ {
			idx := pos - i*p
			if idx >= 0 {
				vals = append(vals, m.values[idx])
			}
		}
		point[k] = numeric.Mean(vals)
		growth[k] = math.Sqrt(math.Ceil(float64(k+1) / float64(p)))
	}
	lower, upper := intervalsFromSigma(point, zValue(coverage), m.sigma, growth)
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: m.fitted, Residuals: m.residuals}, nil
}
