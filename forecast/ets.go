package forecast

import (
	"math"

	"github.com/DataZooDE/anofox-forecast-sub014/numeric"
	"github.com/DataZooDE/anofox-forecast-sub014/optimize"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
)

// ErrorType selects the ETS observation-equation error form.
type ErrorType int

const (
	ErrorAdditive ErrorType = iota
	ErrorMultiplicative
)

// TrendType selects the ETS trend component form.
type TrendType int

const (
	TrendNone TrendType = iota
	TrendAdditive
	TrendMultiplicative
	TrendDampedAdditive
	TrendDampedMultiplicative
)

func (t TrendType) damped() bool {
	return t == TrendDampedAdditive || t == TrendDampedMultiplicative
}

func (t TrendType) multiplicative() bool {
	return t == TrendMultiplicative || t == TrendDampedMultiplicative
}

func (t TrendType) none() bool { return t == TrendNone }

// SeasonalType selects the ETS seasonal component form.
type SeasonalType int

const (
	SeasonalNone SeasonalType = iota
	SeasonalAdditive
	SeasonalMultiplicative
)

// ETSConfig configures one ETS(error,trend,seasonal) model.
type ETSConfig struct {
	Error    ErrorType
	Trend    TrendType
	Seasonal SeasonalType
	// Period is the seasonal cycle length m; required (>=2) when
	// Seasonal != SeasonalNone, ignored otherwise.
	Period int
	// FixedParams, if non-nil, skips the L-BFGS search entirely and uses
	// these smoothing parameters as-is (same [alpha, beta?, gamma?, phi?]
	// layout as paramBoundsAndStart). Used by the restricted-grid wrappers
	// (SES, SeasonalES) that trade optimality for a closed-form, O(n) fit.
	FixedParams []float64
}

// nFreeParams returns the count of free smoothing parameters (alpha, plus
// beta/gamma/phi as applicable) and +1 for the estimated innovation
// variance, matching AIC's "k = number of free parameters including sigma^2".
func (c ETSConfig) nFreeParams() int {
	k := 1 // alpha
	if !c.Trend.none() {
		k++ // beta
	}
	if c.Trend.damped() {
		k++ // phi
	}
	if c.Seasonal != SeasonalNone {
		k++ // gamma
	}
	return k + 1 // + sigma^2
}

func (c ETSConfig) requiresPositive() bool {
	return c.Error == ErrorMultiplicative || c.Seasonal == SeasonalMultiplicative || c.Trend.multiplicative()
}

// ETS implements the Hyndman-form state-space exponential smoothing
// recurrences. Parameters (alpha, beta, gamma, phi as applicable) are
// estimated by bounded L-BFGS; initial level/trend/seasonal state comes
// from a classical-decomposition-style heuristic and is held fixed during
// optimization (spec.md §3 describes the heuristic as an acceptable
// initialization, not a joint-optimization requirement).
type ETS struct {
	cfg ETSConfig

	alpha, beta, gamma, phi float64
	level0, trend0          float64
	season0                 []float64

	values []float64
	n      int

	finalLevel  float64
	finalTrend  float64
	finalSeason []float64 // length m, final cyclic seasonal buffer

	sigma2  float64
	negLL   float64
	fitted  []float64
	resids  []float64
	aicVal  float64
	conv    bool
}

// NewETS constructs an unfit ETS model for the given configuration.
func NewETS(cfg ETSConfig) *ETS { return &ETS{cfg: cfg} }

func (m *ETS) Fit(series tsforecast.Series) error {
	v := series.Values
	n := len(v)
	if n < 3 {
		return insufficientDataf("ETS requires n>=3, got %d", n)
	}
	p := m.cfg.Period
	if m.cfg.Seasonal != SeasonalNone {
		if p < 2 {
			return invalidParamf("ETS seasonal period must be >= 2, got %d", p)
		}
		if n < 2*p {
			return insufficientDataf("ETS seasonal requires n>=2*period, got %d for period %d", n, p)
		}
	} else {
		p = 1
	}
	if m.cfg.requiresPositive() {
		if minOf(v) <= 0 {
			return degeneratef("ETS multiplicative form requires strictly positive values")
		}
	}

	m.initHeuristic(v, p)
	m.values = v
	m.n = n

	var fitX []float64
	if m.cfg.FixedParams != nil {
		fitX = m.cfg.FixedParams
		m.setParams(fitX)
		m.conv = true
	} else {
		lower, upper, x0 := m.paramBoundsAndStart()
		obj := etsObjective{model: m}
		res := optimize.LBFGSB(obj, x0, lower, upper, optimize.DefaultLBFGSBOptions())
		m.setParams(res.X)
		m.conv = res.Converged
		fitX = res.X
	}

	negLL, fitted, resids, finalLevel, finalTrend, finalSeason := m.forwardPass(fitX)
	m.negLL = negLL
	m.fitted = fitted
	m.resids = resids
	m.finalLevel = finalLevel
	m.finalTrend = finalTrend
	m.finalSeason = finalSeason

	var sse float64
	for _, r := range resids {
		if !math.IsNaN(r) {
			sse += r * r
		}
	}
	m.sigma2 = sse / float64(n)
	m.aicVal = 2*float64(m.cfg.nFreeParams()) + 2*negLL
	return nil
}

func minOf(xs []float64) float64 {
	m := math.Inf(1)
	for _, x := range xs {
		if x < m {
			m = x
		}
	}
	return m
}

// initHeuristic sets level0/trend0/season0 per spec.md §3's fallback:
// level = first observation, trend = mean first-differences, seasonals =
// mean-subtracted per-position averages.
func (m *ETS) initHeuristic(v []float64, p int) {
	m.level0 = v[0]
	var meanDiff float64
	for i := 1; i < len(v); i++ {
		meanDiff += v[i] - v[i-1]
	}
	if len(v) > 1 {
		meanDiff /= float64(len(v) - 1)
	}
	m.trend0 = meanDiff
	if m.cfg.Trend.multiplicative() {
		m.trend0 = 1 + meanDiff/math.Max(math.Abs(v[0]), 1e-8)
	}

	if m.cfg.Seasonal == SeasonalNone {
		m.season0 = nil
		return
	}
	sums := make([]float64, p)
	counts := make([]float64, p)
	for i, x := range v {
		sums[i%p] += x
		counts[i%p]++
	}
	grand := numeric.Mean(v)
	season := make([]float64, p)
	for j := range season {
		avg := sums[j] / counts[j]
		if m.cfg.Seasonal == SeasonalMultiplicative {
			if grand == 0 {
				season[j] = 1
			} else {
				season[j] = avg / grand
			}
		} else {
			season[j] = avg - grand
		}
	}
	m.season0 = season
}

// paramBoundsAndStart lays params out as [alpha, beta?, gamma?, phi?] in
// that fixed order, only including the optional slots this config uses.
func (m *ETS) paramBoundsAndStart() (lower, upper, x0 []float64) {
	lower = []float64{0.01}
	upper = []float64{0.99}
	x0 = []float64{0.3}
	if !m.cfg.Trend.none() {
		lower = append(lower, 0.01)
		upper = append(upper, 0.99)
		x0 = append(x0, 0.1)
	}
	if m.cfg.Seasonal != SeasonalNone {
		lower = append(lower, 0.01)
		upper = append(upper, 0.99)
		x0 = append(x0, 0.1)
	}
	if m.cfg.Trend.damped() {
		lower = append(lower, 0.8)
		upper = append(upper, 0.99)
		x0 = append(x0, 0.9)
	}
	return lower, upper, x0
}

func (m *ETS) setParams(x []float64) {
	i := 0
	m.alpha = x[i]
	i++
	if !m.cfg.Trend.none() {
		m.beta = x[i]
		i++
	}
	if m.cfg.Seasonal != SeasonalNone {
		m.gamma = x[i]
		i++
	}
	if m.cfg.Trend.damped() {
		m.phi = x[i]
		i++
	} else if !m.cfg.Trend.none() {
		m.phi = 1
	}
}

// forwardPass runs the state recurrence over the whole series, returning
// the negative log-likelihood, fitted values, residuals, and the final
// level/trend/seasonal state for use by Forecast.
func (m *ETS) forwardPass(x []float64) (negLL float64, fitted, resids []float64, finalLevel, finalTrend float64, finalSeason []float64) {
	saved := struct{ alpha, beta, gamma, phi float64 }{m.alpha, m.beta, m.gamma, m.phi}
	m.setParams(x)
	defer func() { m.alpha, m.beta, m.gamma, m.phi = saved.alpha, saved.beta, saved.gamma, saved.phi }()

	p := m.cfg.Period
	if m.cfg.Seasonal == SeasonalNone {
		p = 1
	}
	level := m.level0
	trend := m.trend0
	season := append([]float64(nil), m.season0...)
	if season == nil {
		season = make([]float64, p)
		for i := range season {
			if m.cfg.Seasonal == SeasonalMultiplicative {
				season[i] = 1
			}
		}
	}

	n := len(m.values)
	fitted = make([]float64, n)
	resids = make([]float64, n)
	var logDet float64

	for t := 0; t < n; t++ {
		seasonIdx := t % p
		levelTrend := m.combineLevelTrend(level, trend)
		mu := m.combineSeasonal(levelTrend, season[seasonIdx])
		y := m.values[t]

		var e float64
		switch m.cfg.Error {
		case ErrorAdditive:
			e = y - mu
		default:
			if mu == 0 {
				mu = 1e-8
			}
			e = (y - mu) / mu
			logDet += math.Log(math.Abs(mu))
		}
		fitted[t] = mu
		resids[t] = y - mu

		level, trend, season[seasonIdx] = m.updateState(level, trend, season[seasonIdx], levelTrend, mu, e)
	}

	var sse float64
	for _, e := range resids {
		sse += e * e
	}
	nf := float64(n)
	sigma2 := sse / nf
	if sigma2 <= 0 {
		sigma2 = 1e-12
	}
	negLL = 0.5*nf*(math.Log(2*math.Pi)+math.Log(sigma2)+1) + logDet

	return negLL, fitted, resids, level, trend, season
}

func (m *ETS) combineLevelTrend(level, trend float64) float64 {
	switch {
	case m.cfg.Trend.none():
		return level
	case m.cfg.Trend.multiplicative():
		phi := m.phi
		if phi == 0 {
			phi = 1
		}
		return level * math.Pow(trend, phi)
	default:
		phi := m.phi
		if phi == 0 {
			phi = 1
		}
		return level + phi*trend
	}
}

func (m *ETS) combineSeasonal(levelTrend, season float64) float64 {
	switch m.cfg.Seasonal {
	case SeasonalNone:
		return levelTrend
	case SeasonalMultiplicative:
		return levelTrend * season
	default:
		return levelTrend + season
	}
}

// updateState applies the smoothing recursion for one step, given the
// innovation e (observation-equation error) already computed by the
// caller.
func (m *ETS) updateState(level, trend, season, levelTrend, mu, e float64) (newLevel, newTrend, newSeason float64) {
	switch m.cfg.Error {
	case ErrorAdditive:
		newLevel = levelTrend + m.alpha*e
		if !m.cfg.Trend.none() {
			if m.cfg.Trend.multiplicative() {
				denom := level
				if denom == 0 {
					denom = 1e-8
				}
				newTrend = trend + m.beta*e/denom
			} else {
				newTrend = m.dampedTrend(trend) + m.beta*e
			}
		}
		if m.cfg.Seasonal != SeasonalNone {
			if m.cfg.Seasonal == SeasonalMultiplicative {
				denom := levelTrend
				if denom == 0 {
					denom = 1e-8
				}
				newSeason = season + m.gamma*e/denom
			} else {
				newSeason = season + m.gamma*e
			}
		}
	default: // multiplicative error
		newLevel = levelTrend * (1 + m.alpha*e)
		if !m.cfg.Trend.none() {
			if m.cfg.Trend.multiplicative() {
				newTrend = trend * (1 + m.beta*e)
			} else {
				newTrend = m.dampedTrend(trend) + m.beta*mu*e
			}
		}
		if m.cfg.Seasonal != SeasonalNone {
			if m.cfg.Seasonal == SeasonalMultiplicative {
				newSeason = season * (1 + m.gamma*e)
			} else {
				newSeason = season + m.gamma*mu*e
			}
		}
	}
	return newLevel, newTrend, newSeason
}

func (m *ETS) dampedTrend(trend float64) float64 {
	phi := m.phi
	if phi == 0 {
		phi = 1
	}
	return phi * trend
}

func (m *ETS) Fitted() ([]float64, bool) {
	if m.fitted == nil {
		return nil, false
	}
	return m.fitted, true
}

func (m *ETS) Residuals() ([]float64, bool) {
	if m.resids == nil {
		return nil, false
	}
	return m.resids, true
}

// AIC returns the fitted model's Akaike information criterion,
// 2k - 2*logLik = 2k + 2*negLogLik.
func (m *ETS) AIC() float64 { return m.aicVal }

// Converged reports whether the underlying L-BFGS run declared
// convergence (rather than exhausting its iteration budget).
func (m *ETS) Converged() bool { return m.conv }

func (m *ETS) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	p := m.cfg.Period
	if m.cfg.Seasonal == SeasonalNone {
		p = 1
	}
	level := m.finalLevel
	trend := m.finalTrend
	season := append([]float64(nil), m.finalSeason...)

	point := make([]float64, h)
	n := m.n
	for k := 0; k < h; k++ {
		t := n + k
		seasonIdx := t % p
		levelTrend := m.combineLevelTrend(level, trend)
		mu := m.combineSeasonal(levelTrend, season[seasonIdx])
		point[k] = mu
		level = levelTrend
		if !m.cfg.Trend.none() && !m.cfg.Trend.multiplicative() {
			// Additive (possibly damped) trend: decaying trend by phi each
			// step makes repeated levelTrend combination accumulate the
			// phi+phi^2+...+phi^k damped-trend series; phi=1 for
			// non-damped trend leaves it linear.
			trend = m.dampedTrend(trend)
		}
	}

	sigma := math.Sqrt(m.sigma2)
	lower, upper := intervalsFromSigma(point, zValue(coverage), sigma, sqrtGrowth(h))
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: m.fitted, Residuals: m.resids}, nil
}

// etsObjective adapts ETS.forwardPass's scalar negative-log-likelihood to
// optimize.Objective, with the gradient computed by central finite
// differences over the full recursion. A hand-derived analytical Jacobian
// across all 30 (error,trend,seasonal) combinations was judged too easy to
// get silently wrong without the ability to run the test suite; see
// DESIGN.md.
type etsObjective struct{ model *ETS }

func (o etsObjective) Value(x []float64) float64 {
	negLL, _, _, _, _, _ := o.model.forwardPass(x)
	return negLL
}

func (o etsObjective) Gradient(x []float64, dst []float64) []float64 {
	if dst == nil || len(dst) != len(x) {
		dst = make([]float64, len(x))
	}
	for i := range x {
		h := math.Max(1e-6, 1e-4*math.Abs(x[i]))
		xp := append([]float64(nil), x...)
		xm := append([]float64(nil), x...)
		xp[i] += h
		xm[i] -= h
		fp := o.Value(xp)
		fm := o.Value(xm)
		dst[i] = (fp - fm) / (2 * h)
	}
	return dst
}
