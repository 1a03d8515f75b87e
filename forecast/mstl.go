package forecast

import (
	"github.com/DataZooDE/anofox-forecast-sub014/decompose"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
)

// DeseasonalizedMethod selects how MSTL forecasts the trend+remainder
// component once the seasonal parts have been stripped out.
type DeseasonalizedMethod int

const (
	// DeseasonalizedETS fits ETS(A,A,N) to the deseasonalized series: the
	// default, fastest option.
	DeseasonalizedETS DeseasonalizedMethod = iota
	// DeseasonalizedLinear extrapolates an OLS line through the
	// deseasonalized series.
	DeseasonalizedLinear
	// DeseasonalizedAutoETS grid-searches the full ETS family on the
	// deseasonalized series: most accurate, slowest.
	DeseasonalizedAutoETS
)

// MSTLConfig configures the MSTL forecaster.
type MSTLConfig struct {
	Periods   []int
	Method    DeseasonalizedMethod
	MSTLInner decompose.MSTLConfig
}

func DefaultMSTLConfig(periods []int) MSTLConfig {
	return MSTLConfig{Periods: periods, Method: DeseasonalizedETS, MSTLInner: decompose.DefaultMSTLConfig()}
}

// MSTL forecasts a multi-seasonal series by decomposing it (decompose.MSTL),
// forecasting each seasonal component by cycling its last full period, and
// forecasting the deseasonalized trend+remainder by cfg.Method. The pieces
// are recombined additively.
type MSTL struct {
	cfg MSTLConfig

	n        int
	periods  []int
	seasonal [][]float64
	deseas   []float64 // trend + remainder, length n

	trendModel Forecaster
	linCoeffs  []float64 // used only when Method == DeseasonalizedLinear

	fitted []float64
	resids []float64
}

func NewMSTL(cfg MSTLConfig) *MSTL { return &MSTL{cfg: cfg} }

func (m *MSTL) Fit(series tsforecast.Series) error {
	v := series.Values
	if len(m.cfg.Periods) == 0 {
		return invalidParamf("MSTL requires at least one period")
	}
	decomp, err := decompose.MSTL(v, m.cfg.Periods, m.cfg.MSTLInner)
	if err != nil {
		return err
	}
	n := len(v)
	m.n = n
	m.periods = decomp.Periods
	m.seasonal = decomp.Seasonals

	deseas := make([]float64, n)
	for i := range deseas {
		deseas[i] = decomp.Trend[i] + decomp.Remainder[i]
	}
	m.deseas = deseas

	switch m.cfg.Method {
	case DeseasonalizedLinear:
		trend, err := decompose.Detrend(deseas, decompose.DetrendLinear)
		if err != nil {
			return err
		}
		m.linCoeffs = trend.Coeffs
	case DeseasonalizedAutoETS:
		auto := NewAutoETS(0)
		if err := auto.Fit(tsforecast.Series{Values: deseas}); err != nil {
			return err
		}
		m.trendModel = auto
	default:
		ets := NewETS(ETSConfig{Error: ErrorAdditive, Trend: TrendAdditive, Seasonal: SeasonalNone})
		if err := ets.Fit(tsforecast.Series{Values: deseas}); err != nil {
			return err
		}
		m.trendModel = ets
	}

	fitted := make([]float64, n)
	switch m.cfg.Method {
	case DeseasonalizedLinear:
		for i := range fitted {
			fitted[i] = evalPoly(m.linCoeffs, float64(i))
		}
	default:
		tf, _ := m.trendModel.Fitted()
		copy(fitted, tf)
	}
	for i := range fitted {
		for pi, period := range m.periods {
			fitted[i] += m.seasonal[pi][i%period]
		}
	}
	resids := make([]float64, n)
	for i := range resids {
		resids[i] = v[i] - fitted[i]
	}
	m.fitted = fitted
	m.resids = resids
	return nil
}

func (m *MSTL) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if h < 1 {
		return tsforecast.Forecast{}, invalidParamf("horizon must be >= 1, got %d", h)
	}
	if m.deseas == nil {
		return tsforecast.Forecast{}, insufficientDataf("MSTL: Forecast called before a successful Fit")
	}

	var point []float64
	switch m.cfg.Method {
	case DeseasonalizedLinear:
		point = make([]float64, h)
		for k := range point {
			point[k] = evalPoly(m.linCoeffs, float64(m.n+k))
		}
	default:
		base, err := m.trendModel.Forecast(h, coverage)
		if err != nil {
			return tsforecast.Forecast{}, err
		}
		point = base.Point
	}

	for k := 0; k < h; k++ {
		for pi, period := range m.periods {
			point[k] += m.seasonal[pi][(m.n+k)%period]
		}
	}

	sigma := residualSigma(m.resids)
	lower, upper := intervalsFromSigma(point, zValue(coverage), sigma, sqrtGrowth(h))
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: m.fitted, Residuals: m.resids}, nil
}

func (m *MSTL) Fitted() ([]float64, bool) {
	if m.fitted == nil {
		return nil, false
	}
	return m.fitted, true
}

func (m *MSTL) Residuals() ([]float64, bool) {
	if m.resids == nil {
		return nil, false
	}
	return m.resids, true
}
