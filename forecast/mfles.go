package forecast

import (
	"math"

	"github.com/DataZooDE/anofox-forecast-sub014/matrix"
	"github.com/DataZooDE/anofox-forecast-sub014/numeric"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
)

// TrendMethod selects the robust-regression family MFLES uses for its
// per-round trend component.
type TrendMethod int

const (
	TrendOLS TrendMethod = iota
	TrendSiegel
	TrendPiecewiseLinear
)

// MFLESConfig configures one MFLES fit.
type MFLESConfig struct {
	TrendMethod TrendMethod
	// Period, if >= 2, enables the per-round Fourier seasonal component.
	Period int
	// FourierOrder is the number of sin/cos harmonic pairs (spec.md's
	// "order 3-7"); clamped into that range.
	FourierOrder int
	// MaxBoostingRounds bounds the gradient-boosting loop.
	MaxBoostingRounds int
	// SESAlphas is the multi-alpha ensemble averaged each round.
	SESAlphas []float64
}

func DefaultMFLESConfig() MFLESConfig {
	return MFLESConfig{
		TrendMethod:       TrendOLS,
		FourierOrder:      5,
		MaxBoostingRounds: 10,
		SESAlphas:         []float64{0.1, 0.3, 0.5},
	}
}

// MFLES implements a gradient-boosted decomposition: a median baseline is
// peeled off, then each boosting round fits a trend line (OLS by default,
// Siegel or piecewise per TrendMethod), an unweighted least-squares
// Fourier seasonal expansion, and a multi-alpha SES ensemble
// against the running residual, accumulating all three into the fitted
// total. Boosting stops early once a round fails to reduce the residual
// sum of squares.
type MFLES struct {
	cfg MFLESConfig

	n         int
	baseline  float64
	trendCoef []float64 // OLS/intercept+slope form regardless of method
	fourier   []float64 // [a1,b1,a2,b2,...] amplitude coefficients, nil if no seasonal
	sesLevel  float64

	fitted []float64
	resids []float64
}

func NewMFLES(cfg MFLESConfig) *MFLES { return &MFLES{cfg: cfg} }

func (m *MFLES) Fit(series tsforecast.Series) error {
	v := series.Values
	n := len(v)
	if n < 6 {
		return insufficientDataf("MFLES requires n>=6, got %d", n)
	}
	order := m.cfg.FourierOrder
	if order < 3 {
		order = 3
	}
	if order > 7 {
		order = 7
	}
	rounds := m.cfg.MaxBoostingRounds
	if rounds <= 0 {
		rounds = 10
	}
	alphas := m.cfg.SESAlphas
	if len(alphas) == 0 {
		alphas = []float64{0.1, 0.3, 0.5}
	}

	baseline := numeric.MedianCopy(append([]float64(nil), v...))
	total := make([]float64, n)
	for i := range total {
		total[i] = baseline
	}
	residual := make([]float64, n)
	for i := range residual {
		residual[i] = v[i] - baseline
	}

	var trendCoef []float64
	var fourier []float64
	var sesLevel float64
	prevSSE := math.Inf(1)

	for round := 0; round < rounds; round++ {
		trendCoef = m.fitTrend(residual)
		for i := range residual {
			t := evalPoly(trendCoef, float64(i))
			total[i] += t
			residual[i] -= t
		}

		if m.cfg.Period >= 2 && n >= 2*m.cfg.Period {
			fourier = fitFourier(residual, m.cfg.Period, order)
			for i := range residual {
				s := evalFourier(fourier, i, m.cfg.Period, order)
				total[i] += s
				residual[i] -= s
			}
		}

		sesLevel = ensembleSESLevel(residual, alphas)
		for i := range residual {
			total[i] += sesLevel
			residual[i] -= sesLevel
		}

		sse := numeric.Dot(residual, residual)
		if sse >= prevSSE {
			break
		}
		prevSSE = sse
	}

	m.n = n
	m.baseline = baseline
	m.trendCoef = trendCoef
	m.fourier = fourier
	m.sesLevel = sesLevel
	m.fitted = total
	resids := make([]float64, n)
	for i := range resids {
		resids[i] = v[i] - total[i]
	}
	m.resids = resids
	return nil
}

func (m *MFLES) fitTrend(residual []float64) []float64 {
	n := len(residual)
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	switch m.cfg.TrendMethod {
	case TrendSiegel:
		intercept, slope, ok := numeric.SiegelRegression(x, residual)
		if !ok {
			return []float64{0, 0}
		}
		return []float64{intercept, slope}
	case TrendPiecewiseLinear:
		return m.fitPiecewiseLinear(residual)
	default:
		coeffs, err := olsFit(residual, 1)
		if err != nil {
			return []float64{0, 0}
		}
		return coeffs
	}
}

// fitPiecewiseLinear fits two OLS lines (first half, second half) and
// returns a single line whose intercept and slope are the averages of the
// two lines' (both expressed against the full series' index), a
// lightweight approximation of a true breakpoint search.
func (m *MFLES) fitPiecewiseLinear(residual []float64) []float64 {
	n := len(residual)
	mid := n / 2
	if mid < 2 || n-mid < 2 {
		coeffs, err := olsFit(residual, 1)
		if err != nil {
			return []float64{0, 0}
		}
		return coeffs
	}
	first, err1 := olsFit(residual[:mid], 1)
	second, err2 := olsFit(residual[mid:], 1)
	if err1 != nil || err2 != nil {
		coeffs, err := olsFit(residual, 1)
		if err != nil {
			return []float64{0, 0}
		}
		return coeffs
	}
	secondAtOrigin := second[0] - second[1]*float64(mid)
	intercept := (first[0] + secondAtOrigin) / 2
	slope := (first[1] + second[1]) / 2
	return []float64{intercept, slope}
}

// olsFit fits a degree-1 polynomial (intercept, slope) to values against
// an implicit 0..n-1 time axis via normal equations.
func olsFit(values []float64, degree int) ([]float64, error) {
	n := len(values)
	p := degree + 1
	design, err := matrix.NewDense(n, p)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t := float64(i)
		pow := 1.0
		for j := 0; j < p; j++ {
			_ = design.Set(i, j, pow)
			pow *= t
		}
	}
	designT, err := matrix.Transpose(design)
	if err != nil {
		return nil, err
	}
	xtx, err := matrix.Mul(designT, design)
	if err != nil {
		return nil, err
	}
	xtxInv, err := matrix.Inverse(xtx)
	if err != nil {
		return nil, err
	}
	xty, err := matrix.MatVec(designT, values)
	if err != nil {
		return nil, err
	}
	return matrix.MatVec(xtxInv, xty)
}

// fitFourier regresses residual on [sin(2*pi*k*t/period), cos(...)] for
// k=1..order via OLS, returning the flattened [a1,b1,...,aOrder,bOrder]
// amplitude vector.
func fitFourier(residual []float64, period, order int) []float64 {
	n := len(residual)
	p := 2 * order
	design, err := matrix.NewDense(n, p)
	if err != nil {
		return nil
	}
	for i := 0; i < n; i++ {
		for k := 1; k <= order; k++ {
			angle := 2 * math.Pi * float64(k) * float64(i) / float64(period)
			_ = design.Set(i, 2*(k-1), math.Sin(angle))
			_ = design.Set(i, 2*(k-1)+1, math.Cos(angle))
		}
	}
	designT, err := matrix.Transpose(design)
	if err != nil {
		return nil
	}
	xtx, err := matrix.Mul(designT, design)
	if err != nil {
		return nil
	}
	xtxInv, err := matrix.Inverse(xtx)
	if err != nil {
		return nil
	}
	xty, err := matrix.MatVec(designT, residual)
	if err != nil {
		return nil
	}
	coeffs, err := matrix.MatVec(xtxInv, xty)
	if err != nil {
		return nil
	}
	return coeffs
}

func evalFourier(coeffs []float64, t, period, order int) float64 {
	if coeffs == nil {
		return 0
	}
	var v float64
	for k := 1; k <= order; k++ {
		angle := 2 * math.Pi * float64(k) * float64(t) / float64(period)
		v += coeffs[2*(k-1)]*math.Sin(angle) + coeffs[2*(k-1)+1]*math.Cos(angle)
	}
	return v
}

// ensembleSESLevel averages the final SES level across several fixed
// alphas (spec.md's "multi-alpha SES ensemble average").
func ensembleSESLevel(residual []float64, alphas []float64) float64 {
	if len(residual) == 0 {
		return 0
	}
	var sum float64
	for _, alpha := range alphas {
		level := residual[0]
		for i := 1; i < len(residual); i++ {
			level = alpha*residual[i] + (1-alpha)*level
		}
		sum += level
	}
	return sum / float64(len(alphas))
}

func (m *MFLES) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	if m.fitted == nil {
		return tsforecast.Forecast{}, insufficientDataf("MFLES: Forecast called before a successful Fit")
	}
	point := make([]float64, h)
	for k := 0; k < h; k++ {
		t := m.n + k
		val := evalPoly(m.trendCoef, float64(t)) + m.sesLevel
		if m.fourier != nil {
			order := len(m.fourier) / 2
			val += evalFourier(m.fourier, t, m.cfg.Period, order)
		}
		point[k] = val
	}
	sigma := residualSigma(m.resids)
	lower, upper := intervalsFromSigma(point, zValue(coverage), sigma, sqrtGrowth(h))
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: m.fitted, Residuals: m.resids}, nil
}

func (m *MFLES) Fitted() ([]float64, bool) {
	if m.fitted == nil {
		return nil, false
	}
	return m.fitted, true
}

func (m *MFLES) Residuals() ([]float64, bool) {
	if m.resids == nil {
		return nil, false
	}
	return m.resids, true
}

// AutoMFLES grid-searches trend method x Fourier order x max boosting
// rounds, selecting by rolling-origin CV MSE (a lightweight last-fold
// holdout rather than a full multi-fold backtest, since the full
// validate.Backtester composes with any Forecaster including this one).
type AutoMFLES struct {
	Period int

	best    *MFLES
	bestCfg MFLESConfig
}

func NewAutoMFLES(period int) *AutoMFLES { return &AutoMFLES{Period: period} }

func (a *AutoMFLES) Fit(series tsforecast.Series) error {
	v := series.Values
	n := len(v)
	if n < 10 {
		return insufficientDataf("AutoMFLES requires n>=10, got %d", n)
	}
	holdout := n / 5
	if holdout < 1 {
		holdout = 1
	}
	trainN := n - holdout
	train := tsforecast.Series{Values: v[:trainN]}
	valid := v[trainN:]

	trendMethods := []TrendMethod{TrendOLS, TrendSiegel, TrendPiecewiseLinear}
	orders := []int{3, 5, 7}
	rounds := []int{5, 10}

	bestMSE := math.Inf(1)
	var best *MFLES
	var bestCfg MFLESConfig
	var lastErr error

	for _, tm := range trendMethods {
		for _, order := range orders {
			for _, r := range rounds {
				cfg := MFLESConfig{TrendMethod: tm, Period: a.Period, FourierOrder: order, MaxBoostingRounds: r,
					SESAlphas: DefaultMFLESConfig().SESAlphas}
				model := NewMFLES(cfg)
				if err := model.Fit(train); err != nil {
					lastErr = err
					continue
				}
				f, err := model.Forecast(len(valid), 0.95)
				if err != nil {
					lastErr = err
					continue
				}
				mse := meanSquaredDiff(f.Point, valid)
				if mse < bestMSE {
					bestMSE = mse
					bestCfg = cfg
					best = model
				}
			}
		}
	}

	if best == nil {
		if lastErr == nil {
			lastErr = insufficientDataf("AutoMFLES: no candidate could be fit")
		}
		return lastErr
	}

	// Refit the winning configuration on the full series so the returned
	// model's Fitted/Residuals/Forecast reflect all available data.
	final := NewMFLES(bestCfg)
	if err := final.Fit(series); err != nil {
		return err
	}
	a.best = final
	a.bestCfg = bestCfg
	return nil
}

func meanSquaredDiff(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return math.Inf(1)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum / float64(n)
}

// BestConfig returns the trend-method/Fourier-order/boosting-round
// combination AutoMFLES selected.
func (a *AutoMFLES) BestConfig() MFLESConfig { return a.bestCfg }

func (a *AutoMFLES) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if a.best == nil {
		return tsforecast.Forecast{}, insufficientDataf("AutoMFLES: Forecast called before a successful Fit")
	}
	return a.best.Forecast(h, coverage)
}

func (a *AutoMFLES) Fitted() ([]float64, bool) {
	if a.best == nil {
		return nil, false
	}
	return a.best.Fitted()
}

func (a *AutoMFLES) Residuals() ([]float64, bool) {
	if a.best == nil {
		return nil, false
	}
	return a.best.Residuals()
}
