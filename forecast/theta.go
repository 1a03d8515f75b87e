package forecast

import (
	"math"

	"github.com/DataZooDE/anofox-forecast-sub014/decompose"
	"github.com/DataZooDE/anofox-forecast-sub014/optimize"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
)

// ThetaVariant selects which member of the Theta family to fit.
type ThetaVariant int

const (
	// ThetaSTM fixes theta=2 and optimizes only alpha (Nelder-Mead).
	ThetaSTM ThetaVariant = iota
	// ThetaOTM optimizes theta jointly with alpha.
	ThetaOTM
	// ThetaDSTM fixes the base theta at 2 (alpha optimized) but lets the
	// effective theta decay with horizon, theta_h = theta_base*f(h).
	ThetaDSTM
	// ThetaDOTM optimizes the base theta jointly with alpha, and also
	// lets the effective theta decay with horizon.
	ThetaDOTM
)

// DecompositionType selects how Theta handles seasonality before fitting.
type DecompositionType int

const (
	DecompositionAuto DecompositionType = iota
	DecompositionAdditive
	DecompositionMultiplicative
)

// ThetaConfig configures one Theta-family forecaster.
type ThetaConfig struct {
	Variant ThetaVariant
	// Period, if >= 2, deseasonalizes the series (via a single-period STL)
	// before fitting the Theta lines, and reseasonalizes the forecast.
	Period         int
	Decomposition  DecompositionType
}

// Theta implements the Theta method: y is decomposed into a linear trend
// line (theta0) and a generalized local line Z_theta = theta*y -
// (theta-1)*theta0; theta0 is extrapolated linearly, Z_theta by SES, and
// the two are recombined as y_hat = (1/theta)*Z_hat + ((theta-1)/theta)*
// theta0_hat, which reduces to the textbook equal-weight STM combination
// when theta=2.
type Theta struct {
	cfg ThetaConfig

	n            int
	trendCoeffs  []float64 // [intercept, slope] of the linear theta-0 line
	alpha        float64
	theta        float64
	sesLevel     float64
	seasonal     []float64 // length Period, nil if not seasonal
	seasonalMode DecompositionType
	fitted       []float64
	resids       []float64
}

func NewTheta(cfg ThetaConfig) *Theta { return &Theta{cfg: cfg} }

func (m *Theta) Fit(series tsforecast.Series) error {
	v := series.Values
	n := len(v)
	if n < 4 {
		return insufficientDataf("Theta requires n>=4, got %d", n)
	}

	deseasonalized := v
	var seasonal []float64
	mode := m.cfg.Decomposition
	if m.cfg.Period >= 2 {
		if n < 2*m.cfg.Period {
			return insufficientDataf("Theta seasonal requires n>=2*period, got %d for period %d", n, m.cfg.Period)
		}
		if mode == DecompositionAuto {
			mode = m.chooseDecompositionMode(v)
		}
		stlRes, err := decompose.STL(v, m.cfg.Period, decompose.DefaultSTLConfig())
		if err != nil {
			return err
		}
		seasonal = stlRes.Seasonal
		deseasonalized = make([]float64, n)
		for i := range deseasonalized {
			if mode == DecompositionMultiplicative && seasonal[i] != 0 {
				deseasonalized[i] = v[i] / (1 + seasonal[i]/math.Max(1, math.Abs(v[i]-seasonal[i])))
			} else {
				deseasonalized[i] = v[i] - seasonal[i]
			}
		}
	}

	trend, err := decompose.Detrend(deseasonalized, decompose.DetrendLinear)
	if err != nil {
		return err
	}

	x0, lower, upper := m.thetaStartAndBounds()
	obj := func(x []float64) float64 { return m.inSampleMSE(deseasonalized, trend.Trend, x) }
	res := optimize.NelderMead(obj, x0, lower, upper, optimize.DefaultNelderMeadOptions())

	alpha, theta := m.unpackParams(res.X)
	m.alpha, m.theta = alpha, theta
	m.trendCoeffs = trend.Coeffs
	m.n = n
	m.seasonal = seasonal
	m.seasonalMode = mode

	z := thetaLine(deseasonalized, trend.Trend, theta)
	level := sesLevels(z, alpha)
	m.sesLevel = level[len(level)-1]

	fitted := make([]float64, n)
	resids := make([]float64, n)
	prevLevel := z[0]
	for i := 0; i < n; i++ {
		thetaHat := weightedCombine(prevLevel, evalPoly(trend.Coeffs, float64(i)), theta)
		val := v[i]
		if seasonal != nil {
			thetaHat = reseasonalize(thetaHat, seasonal[i%m.cfg.Period], mode)
		}
		fitted[i] = thetaHat
		resids[i] = val - thetaHat
		if i+1 < n {
			prevLevel = alpha*z[i+1] + (1-alpha)*prevLevel
		}
	}
	m.fitted = fitted
	m.resids = resids
	return nil
}

func (m *Theta) chooseDecompositionMode(v []float64) DecompositionType {
	for _, x := range v {
		if x <= 0 {
			return DecompositionAdditive
		}
	}
	return DecompositionMultiplicative
}

func (m *Theta) thetaStartAndBounds() (x0, lower, upper []float64) {
	switch m.cfg.Variant {
	case ThetaOTM, ThetaDOTM:
		return []float64{0.3, 2.0}, []float64{0.01, 0.1}, []float64{0.99, 4.0}
	default:
		return []float64{0.3}, []float64{0.01}, []float64{0.99}
	}
}

func (m *Theta) unpackParams(x []float64) (alpha, theta float64) {
	alpha = x[0]
	if len(x) > 1 {
		theta = x[1]
	} else {
		theta = 2.0
	}
	return alpha, theta
}

// inSampleMSE is the Nelder-Mead objective: mean squared error of the
// in-sample one-step combined Theta forecast.
func (m *Theta) inSampleMSE(values, trend, x []float64) float64 {
	alpha, theta := m.unpackParams(x)
	if theta <= 0.05 {
		return math.Inf(1)
	}
	z := thetaLine(values, trend, theta)
	n := len(values)
	level := z[0]
	var sse float64
	for i := 0; i < n; i++ {
		hat := weightedCombine(level, trend[i], theta)
		d := values[i] - hat
		sse += d * d
		if i+1 < n {
			level = alpha*z[i+1] + (1-alpha)*level
		}
	}
	return sse / float64(n)
}

// evalPoly evaluates a decompose.Detrend coefficient vector [c0, c1, ...]
// at time t: c0 + c1*t + c2*t^2 + ...
func evalPoly(coeffs []float64, t float64) float64 {
	var v, pow float64 = 0, 1
	for _, c := range coeffs {
		v += c * pow
		pow *= t
	}
	return v
}

// thetaLine returns Z_theta[i] = theta*values[i] - (theta-1)*trend[i].
func thetaLine(values, trend []float64, theta float64) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		out[i] = theta*values[i] - (theta-1)*trend[i]
	}
	return out
}

// sesLevels runs simple exponential smoothing over z, returning the level
// at every step (level[0]=z[0]).
func sesLevels(z []float64, alpha float64) []float64 {
	levels := make([]float64, len(z))
	if len(z) == 0 {
		return levels
	}
	levels[0] = z[0]
	for i := 1; i < len(z); i++ {
		levels[i] = alpha*z[i] + (1-alpha)*levels[i-1]
	}
	return levels
}

// weightedCombine reconstructs y_hat from a Z_theta level and the trend
// line's value at the same step: y = (1/theta)*Z + ((theta-1)/theta)*trend.
func weightedCombine(zLevel, trendVal, theta float64) float64 {
	if theta == 0 {
		theta = 0.05
	}
	return zLevel/theta + (theta-1)/theta*trendVal
}

func reseasonalize(value, seasonal float64, mode DecompositionType) float64 {
	if mode == DecompositionMultiplicative {
		return value * (1 + seasonal/math.Max(1, math.Abs(value)))
	}
	return value + seasonal
}

// thetaAtHorizon implements theta_h = theta_base * f(h) for the dynamic
// variants, with f(h) = 1/h: the short-term line's influence decays with
// horizon, converging toward pure linear-trend extrapolation. Clipped away
// from 0 to avoid a singular combination weight.
func thetaAtHorizon(thetaBase float64, h int) float64 {
	t := thetaBase / float64(h)
	if t < 0.1 {
		t = 0.1
	}
	return t
}

func (m *Theta) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	point := make([]float64, h)
	for k := 0; k < h; k++ {
		hk := k + 1
		theta := m.theta
		if m.cfg.Variant == ThetaDSTM || m.cfg.Variant == ThetaDOTM {
			theta = thetaAtHorizon(m.theta, hk)
		}
		trendVal := evalPoly(m.trendCoeffs, float64(m.n+k))
		hat := weightedCombine(m.sesLevel, trendVal, theta)
		if m.seasonal != nil {
			idx := (m.n + k) % m.cfg.Period
			hat = reseasonalize(hat, m.seasonal[idx], m.seasonalMode)
		}
		point[k] = hat
	}
	sigma := residualSigma(m.resids)
	lower, upper := intervalsFromSigma(point, zValue(coverage), sigma, sqrtGrowth(h))
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: m.fitted, Residuals: m.resids}, nil
}

func (m *Theta) Fitted() ([]float64, bool) {
	if m.fitted == nil {
		return nil, false
	}
	return m.fitted, true
}

func (m *Theta) Residuals() ([]float64, bool) {
	if m.resids == nil {
		return nil, false
	}
	return m.resids, true
}
