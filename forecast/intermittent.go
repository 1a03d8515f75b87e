package forecast

import (
	"github.com/DataZooDE/anofox-forecast-sub014/optimize"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
)

// defaultCrostonAlpha is Croston's classic fixed smoothing parameter.
const defaultCrostonAlpha = 0.1

// splitIntermittent separates a series into its non-zero demand values and
// the inter-arrival intervals (in steps) between them. intervals[i] is the
// gap ending at the i-th demand occurrence; the first interval is counted
// from the series start.
func splitIntermittent(v []float64) (demand []float64, intervals []float64) {
	last := -1
	for i, x := range v {
		if x == 0 {
			continue
		}
		demand = append(demand, x)
		intervals = append(intervals, float64(i-last))
		last = i
	}
	return demand, intervals
}

func sesFinalLevel(xs []float64, alpha float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	level := xs[0]
	for i := 1; i < len(xs); i++ {
		level = alpha*xs[i] + (1-alpha)*level
	}
	return level
}

// croston implements the shared Croston-family recursion: SES over demand
// sizes and SES over inter-arrival intervals, combined as demand/interval
// (the long-run average non-zero rate), optionally bias-corrected.
type croston struct {
	variant Kind // KindCrostonClassic, KindCrostonOptimized, or KindCrostonSBA

	n            int
	demandLevel  float64
	intervalLvl  float64
	alpha        float64
	biasCorrect  bool
	fitted       []float64
	resids       []float64
}

func (c *croston) fit(v []float64) error {
	n := len(v)
	if n < 2 {
		return insufficientDataf("Croston requires n>=2, got %d", n)
	}
	demand, intervals := splitIntermittent(v)
	if len(demand) == 0 {
		return degeneratef("Croston requires at least one non-zero demand observation")
	}

	alpha := defaultCrostonAlpha
	if c.variant == KindCrostonOptimized || c.variant == KindCrostonSBA {
		alpha = optimizeCrostonAlpha(demand, intervals)
	}

	c.n = n
	c.alpha = alpha
	c.demandLevel = sesFinalLevel(demand, alpha)
	c.intervalLvl = sesFinalLevel(intervals, alpha)
	c.biasCorrect = c.variant == KindCrostonSBA

	rate := c.forecastRate()
	fitted := make([]float64, n)
	resids := make([]float64, n)
	for i, x := range v {
		fitted[i] = rate
		resids[i] = x - rate
	}
	c.fitted = fitted
	c.resids = resids
	return nil
}

func (c *croston) forecastRate() float64 {
	if c.intervalLvl <= 0 {
		return 0
	}
	rate := c.demandLevel / c.intervalLvl
	if c.biasCorrect {
		rate *= 1 - c.alpha/2
	}
	return rate
}

// optimizeCrostonAlpha searches alpha in [0.01,0.3] (spec.md's "tight
// interval") via Nelder-Mead, minimizing combined in-sample SSE of the
// demand and interval SES fits.
func optimizeCrostonAlpha(demand, intervals []float64) float64 {
	obj := func(x []float64) float64 {
		alpha := x[0]
		return sesSSE(demand, alpha) + sesSSE(intervals, alpha)
	}
	res := optimize.NelderMead(obj, []float64{0.1}, []float64{0.01}, []float64{0.3}, optimize.DefaultNelderMeadOptions())
	return res.X[0]
}

func sesSSE(xs []float64, alpha float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	level := xs[0]
	var sse float64
	for i := 1; i < len(xs); i++ {
		e := xs[i] - level
		sse += e * e
		level = alpha*xs[i] + (1-alpha)*level
	}
	return sse
}

func (c *croston) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	rate := c.forecastRate()
	point := make([]float64, h)
	for k := range point {
		point[k] = rate
	}
	sigma := residualSigma(c.resids)
	lower, upper := intervalsFromSigma(point, zValue(coverage), sigma, sqrtGrowth(h))
	for k := range lower {
		if lower[k] < 0 {
			lower[k] = 0
		}
	}
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: c.fitted, Residuals: c.resids}, nil
}

func (c *croston) Fitted() ([]float64, bool) {
	if c.fitted == nil {
		return nil, false
	}
	return c.fitted, true
}

func (c *croston) Residuals() ([]float64, bool) {
	if c.resids == nil {
		return nil, false
	}
	return c.resids, true
}

// CrostonClassic forecasts intermittent demand with Croston's original
// fixed-alpha recursion over demand sizes and inter-arrival intervals.
type CrostonClassic struct{ croston }

func NewCrostonClassic() *CrostonClassic {
	c := &CrostonClassic{}
	c.variant = KindCrostonClassic
	return c
}
func (m *CrostonClassic) Fit(series tsforecast.Series) error { return m.fit(series.Values) }

// CrostonOptimized searches for the SES alpha that minimizes in-sample SSE
// instead of using Croston's fixed default.
type CrostonOptimized struct{ croston }

func NewCrostonOptimized() *CrostonOptimized {
	c := &CrostonOptimized{}
	c.variant = KindCrostonOptimized
	return c
}
func (m *CrostonOptimized) Fit(series tsforecast.Series) error { return m.fit(series.Values) }

// CrostonSBA applies the Syntetos-Boylan bias-correction factor
// (1 - alpha/2) on top of the optimized alpha search.
type CrostonSBA struct{ croston }

func NewCrostonSBA() *CrostonSBA {
	c := &CrostonSBA{}
	c.variant = KindCrostonSBA
	return c
}
func (m *CrostonSBA) Fit(series tsforecast.Series) error { return m.fit(series.Values) }

// TSB (Teunter-Syntetos-Babai) smooths the demand-occurrence probability
// directly each period (rather than the inter-arrival interval), combined
// multiplicatively with the demand-size SES level: forecast = prob*size.
type TSB struct {
	alphaDemand float64
	alphaProb   float64

	n           int
	demandLevel float64
	probLevel   float64
	fitted      []float64
	resids      []float64
}

func NewTSB(alphaDemand, alphaProb float64) *TSB {
	return &TSB{alphaDemand: alphaDemand, alphaProb: alphaProb}
}

func (m *TSB) Fit(series tsforecast.Series) error {
	v := series.Values
	n := len(v)
	if n < 2 {
		return insufficientDataf("TSB requires n>=2, got %d", n)
	}
	alphaD := m.alphaDemand
	if alphaD <= 0 {
		alphaD = defaultCrostonAlpha
	}
	alphaP := m.alphaProb
	if alphaP <= 0 {
		alphaP = defaultCrostonAlpha
	}

	demandLevel := v[0]
	probLevel := indicator(v[0])
	fitted := make([]float64, n)
	resids := make([]float64, n)
	fitted[0] = demandLevel * probLevel
	resids[0] = v[0] - fitted[0]
	for i := 1; i < n; i++ {
		fitted[i] = demandLevel * probLevel
		resids[i] = v[i] - fitted[i]
		occurred := indicator(v[i])
		probLevel = alphaP*occurred + (1-alphaP)*probLevel
		if v[i] != 0 {
			demandLevel = alphaD*v[i] + (1-alphaD)*demandLevel
		}
	}
	m.n = n
	m.alphaDemand, m.alphaProb = alphaD, alphaP
	m.demandLevel, m.probLevel = demandLevel, probLevel
	m.fitted = fitted
	m.resids = resids
	return nil
}

func indicator(x float64) float64 {
	if x != 0 {
		return 1
	}
	return 0
}

func (m *TSB) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	rate := m.demandLevel * m.probLevel
	point := make([]float64, h)
	for k := range point {
		point[k] = rate
	}
	sigma := residualSigma(m.resids)
	lower, upper := intervalsFromSigma(point, zValue(coverage), sigma, sqrtGrowth(h))
	for k := range lower {
		if lower[k] < 0 {
			lower[k] = 0
		}
	}
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: m.fitted, Residuals: m.resids}, nil
}

func (m *TSB) Fitted() ([]float64, bool) {
	if m.fitted == nil {
		return nil, false
	}
	return m.fitted, true
}

func (m *TSB) Residuals() ([]float64, bool) {
	if m.resids == nil {
		return nil, false
	}
	return m.resids, true
}

// ADIDA (Aggregate-Disaggregate Intermittent Demand Approach) aggregates
// the series into non-overlapping chunks of length K, forecasts the
// aggregated (typically much less intermittent) series by SES, and
// disaggregates by spreading the aggregated forecast evenly over the K
// steps it covers.
type ADIDA struct {
	k int

	n           int
	aggLevel    float64
	alpha       float64
	lastAggSize int
	fitted      []float64
	resids      []float64
}

// NewADIDA builds an ADIDA forecaster aggregating to chunks of length k.
func NewADIDA(k int) *ADIDA { return &ADIDA{k: k} }

func (m *ADIDA) Fit(series tsforecast.Series) error {
	v := series.Values
	n := len(v)
	if m.k < 2 {
		return invalidParamf("ADIDA aggregation length must be >= 2, got %d", m.k)
	}
	if n < 2*m.k {
		return insufficientDataf("ADIDA requires n>=2*k, got %d for k=%d", n, m.k)
	}
	agg := aggregateChunks(v, m.k)
	alpha := 0.3
	level := sesFinalLevel(agg, alpha)

	m.n = n
	m.alpha = alpha
	m.aggLevel = level
	m.lastAggSize = len(agg)

	perStep := level / float64(m.k)
	fitted := make([]float64, n)
	resids := make([]float64, n)
	for i := range fitted {
		fitted[i] = perStep
		resids[i] = v[i] - perStep
	}
	m.fitted = fitted
	m.resids = resids
	return nil
}

func aggregateChunks(v []float64, k int) []float64 {
	var out []float64
	for i := 0; i+k <= len(v); i += k {
		var sum float64
		for j := i; j < i+k; j++ {
			sum += v[j]
		}
		out = append(out, sum)
	}
	return out
}

func (m *ADIDA) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	perStep := m.aggLevel / float64(m.k)
	point := make([]float64, h)
	for k := range point {
		point[k] = perStep
	}
	sigma := residualSigma(m.resids)
	lower, upper := intervalsFromSigma(point, zValue(coverage), sigma, sqrtGrowth(h))
	for k := range lower {
		if lower[k] < 0 {
			lower[k] = 0
		}
	}
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: m.fitted, Residuals: m.resids}, nil
}

func (m *ADIDA) Fitted() ([]float64, bool) {
	if m.fitted == nil {
		return nil, false
	}
	return m.fitted, true
}

func (m *ADIDA) Residuals() ([]float64, bool) {
	if m.resids == nil {
		return nil, false
	}
	return m.resids, true
}

// IMAPA (Intermittent Multiple Aggregation Prediction Algorithm) ensembles
// ADIDA across several aggregation levels, averaging their disaggregated
// per-step forecasts.
type IMAPA struct {
	ks []int

	models []*ADIDA
	n      int
}

// NewIMAPA builds an IMAPA ensemble over the given aggregation levels
// (e.g. []int{2,4,6,12}); levels too large for the series are skipped.
func NewIMAPA(ks []int) *IMAPA { return &IMAPA{ks: ks} }

func (m *IMAPA) Fit(series tsforecast.Series) error {
	if len(m.ks) == 0 {
		return invalidParamf("IMAPA requires at least one aggregation level")
	}
	var models []*ADIDA
	var lastErr error
	for _, k := range m.ks {
		a := NewADIDA(k)
		if err := a.Fit(series); err != nil {
			lastErr = err
			continue
		}
		models = append(models, a)
	}
	if len(models) == 0 {
		if lastErr == nil {
			lastErr = insufficientDataf("IMAPA: no aggregation level could be fit")
		}
		return lastErr
	}
	m.models = models
	m.n = len(series.Values)
	return nil
}

func (m *IMAPA) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if len(m.models) == 0 {
		return tsforecast.Forecast{}, insufficientDataf("IMAPA: Forecast called before a successful Fit")
	}
	point := make([]float64, h)
	for _, model := range m.models {
		f, err := model.Forecast(h, coverage)
		if err != nil {
			return tsforecast.Forecast{}, err
		}
		for k := range point {
			point[k] += f.Point[k]
		}
	}
	for k := range point {
		point[k] /= float64(len(m.models))
	}
	fitted := make([]float64, m.n)
	for _, model := range m.models {
		mf, _ := model.Fitted()
		for i := range fitted {
			fitted[i] += mf[i]
		}
	}
	for i := range fitted {
		fitted[i] /= float64(len(m.models))
	}
	resids := make([]float64, m.n)
	for _, model := range m.models {
		mr, _ := model.Residuals()
		for i := range resids {
			resids[i] += mr[i]
		}
	}
	for i := range resids {
		resids[i] /= float64(len(m.models))
	}

	sigma := residualSigma(resids)
	lower, upper := intervalsFromSigma(point, zValue(coverage), sigma, sqrtGrowth(h))
	for k := range lower {
		if lower[k] < 0 {
			lower[k] = 0
		}
	}
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: fitted, Residuals: resids}, nil
}

func (m *IMAPA) Fitted() ([]float64, bool) {
	if len(m.models) == 0 {
		return nil, false
	}
	fitted := make([]float64, m.n)
	for _, model := range m.models {
		mf, _ := model.Fitted()
		for i := range fitted {
			fitted[i] += mf[i]
		}
	}
	for i := range fitted {
		fitted[i] /= float64(len(m.models))
	}
	return fitted, true
}

func (m *IMAPA) Residuals() ([]float64, bool) {
	if len(m.models) == 0 {
		return nil, false
	}
	resids := make([]float64, m.n)
	for _, model := range m.models {
		mr, _ := model.Residuals()
		for i := range resids {
			resids[i] += mr[i]
		}
	}
	for i := range resids {
		resids[i] /= float64(len(m.models))
	}
	return resids, true
}
