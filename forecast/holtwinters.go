package forecast

import (
	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
	"github.com/DataZooDE/anofox-forecast-sub014/decompose"
)

// Holt is ETS(A,A,N) exposed directly: optimized level and trend smoothing,
// no seasonal component. A restricted-grid special case of ETS, kept as a
// thin wrapper rather than re-deriving the two-parameter recursion.
type Holt struct{ ets *ETS }

func NewHolt() *Holt { return &Holt{ets: NewETS(ETSConfig{Error: ErrorAdditive, Trend: TrendAdditive, Seasonal: SeasonalNone})} }

func (m *Holt) Fit(series tsforecast.Series) error       { return m.ets.Fit(series) }
func (m *Holt) Forecast(h int, c float64) (tsforecast.Forecast, error) { return m.ets.Forecast(h, c) }
func (m *Holt) Fitted() ([]float64, bool)                { return m.ets.Fitted() }
func (m *Holt) Residuals() ([]float64, bool)             { return m.ets.Residuals() }

// HoltWinters is ETS(A,A,{A,M}) exposed directly, the three-parameter
// (alpha, beta, gamma) seasonal special case.
type HoltWinters struct{ ets *ETS }

// NewHoltWinters builds a Holt-Winters model. seasonalMultiplicative
// selects a multiplicative seasonal component instead of additive.
func NewHoltWinters(period int, seasonalMultiplicative bool) *HoltWinters {
	seasonal := SeasonalAdditive
	if seasonalMultiplicative {
		seasonal = SeasonalMultiplicative
	}
	return &HoltWinters{ets: NewETS(ETSConfig{Error: ErrorAdditive, Trend: TrendAdditive, Seasonal: seasonal, Period: period})}
}

func (m *HoltWinters) Fit(series tsforecast.Series) error       { return m.ets.Fit(series) }
func (m *HoltWinters) Forecast(h int, c float64) (tsforecast.Forecast, error) { return m.ets.Forecast(h, c) }
func (m *HoltWinters) Fitted() ([]float64, bool)                { return m.ets.Fitted() }
func (m *HoltWinters) Residuals() ([]float64, bool)             { return m.ets.Residuals() }

// defaultSESAlpha is the fixed smoothing parameter used by the
// non-optimized SES/SeasonalES variants; 0.2 is the conventional default
// starting point quoted for simple exponential smoothing.
const defaultSESAlpha = 0.2
const defaultSESGamma = 0.1

// SES is ETS(A,N,N) with alpha fixed at defaultSESAlpha rather than
// optimized, trading optimality for an O(n) fit with no search.
type SES struct{ ets *ETS }

func NewSES() *SES {
	return &SES{ets: NewETS(ETSConfig{Error: ErrorAdditive, Trend: TrendNone, Seasonal: SeasonalNone, FixedParams: []float64{defaultSESAlpha}})}
}

func (m *SES) Fit(series tsforecast.Series) error       { return m.ets.Fit(series) }
func (m *SES) Forecast(h int, c float64) (tsforecast.Forecast, error) { return m.ets.Forecast(h, c) }
func (m *SES) Fitted() ([]float64, bool)                { return m.ets.Fitted() }
func (m *SES) Residuals() ([]float64, bool)             { return m.ets.Residuals() }

// SESOptimized is ETS(A,N,N) with alpha found by L-BFGS, i.e. plain ETS
// restricted to the no-trend, no-seasonal cell of the AutoETS grid.
type SESOptimized struct{ ets *ETS }

func NewSESOptimized() *SESOptimized {
	return &SESOptimized{ets: NewETS(ETSConfig{Error: ErrorAdditive, Trend: TrendNone, Seasonal: SeasonalNone})}
}

func (m *SESOptimized) Fit(series tsforecast.Series) error { return m.ets.Fit(series) }
func (m *SESOptimized) Forecast(h int, c float64) (tsforecast.Forecast, error) {
	return m.ets.Forecast(h, c)
}
func (m *SESOptimized) Fitted() ([]float64, bool)    { return m.ets.Fitted() }
func (m *SESOptimized) Residuals() ([]float64, bool) { return m.ets.Residuals() }

// SeasonalES is ETS(A,N,A) with alpha/gamma fixed at defaults: level and
// seasonal smoothing but no trend, the "seasonal exponential smoothing"
// special case.
type SeasonalES struct{ ets *ETS }

func NewSeasonalES(period int) *SeasonalES {
	return &SeasonalES{ets: NewETS(ETSConfig{
		Error: ErrorAdditive, Trend: TrendNone, Seasonal: SeasonalAdditive, Period: period,
		FixedParams: []float64{defaultSESAlpha, defaultSESGamma},
	})}
}

func (m *SeasonalES) Fit(series tsforecast.Series) error { return m.ets.Fit(series) }
func (m *SeasonalES) Forecast(h int, c float64) (tsforecast.Forecast, error) {
	return m.ets.Forecast(h, c)
}
func (m *SeasonalES) Fitted() ([]float64, bool)    { return m.ets.Fitted() }
func (m *SeasonalES) Residuals() ([]float64, bool) { return m.ets.Residuals() }

// SeasonalESOptimized is ETS(A,N,A) with alpha and gamma found by L-BFGS.
type SeasonalESOptimized struct{ ets *ETS }

func NewSeasonalESOptimized(period int) *SeasonalESOptimized {
	return &SeasonalESOptimized{ets: NewETS(ETSConfig{Error: ErrorAdditive, Trend: TrendNone, Seasonal: SeasonalAdditive, Period: period})}
}

func (m *SeasonalESOptimized) Fit(series tsforecast.Series) error { return m.ets.Fit(series) }
func (m *SeasonalESOptimized) Forecast(h int, c float64) (tsforecast.Forecast, error) {
	return m.ets.Forecast(h, c)
}
func (m *SeasonalESOptimized) Fitted() ([]float64, bool)    { return m.ets.Fitted() }
func (m *SeasonalESOptimized) Residuals() ([]float64, bool) { return m.ets.Residuals() }

// MultiSeasonal is the pragmatic "TBATS-shape" wrapper: decompose.MSTL
// strips every seasonal period out via one single-iteration STL pass per
// period (per-position seasonal means), and an ETS(A,A,N) level/trend
// model fits the deseasonalized
// remainder. Forecasts re-add each period's last seasonal cycle, which
// approximates MSTL's "assume seasonal shape repeats" convention rather
// than modeling seasonal evolution through a full trigonometric
// state-space system.
type MultiSeasonal struct {
	periods []int

	n        int
	seasonal [][]float64 // one slice per period, length n (the fitted series length)
	trendETS *ETS
}

func NewMultiSeasonal(periods []int) *MultiSeasonal {
	return &MultiSeasonal{periods: periods}
}

func (m *MultiSeasonal) Fit(series tsforecast.Series) error {
	v := series.Values
	if len(v) < 4 {
		return insufficientDataf("MultiSeasonal requires n>=4, got %d", len(v))
	}
	mstl, err := decompose.MSTL(v, m.periods, decompose.DefaultMSTLConfig())
	if err != nil {
		return err
	}
	m.n = len(v)
	m.periods = mstl.Periods // MSTL returns periods sorted ascending; seasonal[i] lines up with periods[i]
	m.seasonal = mstl.Seasonals

	remainder := make([]float64, len(v))
	copy(remainder, mstl.Trend)
	for i := range remainder {
		remainder[i] += mstl.Remainder[i]
	}

	m.trendETS = NewETS(ETSConfig{Error: ErrorAdditive, Trend: TrendAdditive, Seasonal: SeasonalNone})
	return m.trendETS.Fit(tsforecast.Series{Values: remainder})
}

func (m *MultiSeasonal) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if m.trendETS == nil {
		return tsforecast.Forecast{}, insufficientDataf("MultiSeasonal: Forecast called before a successful Fit")
	}
	base, err := m.trendETS.Forecast(h, coverage)
	if err != nil {
		return tsforecast.Forecast{}, err
	}
	point := append([]float64(nil), base.Point...)
	lower := append([]float64(nil), base.Lower...)
	upper := append([]float64(nil), base.Upper...)
	for pi, period := range m.periods {
		seasonal := m.seasonal[pi]
		if len(seasonal) == 0 {
			continue
		}
		for k := 0; k < h; k++ {
			idx := (m.n + k) % period
			s := seasonal[idx%len(seasonal)]
			point[k] += s
			lower[k] += s
			upper[k] += s
		}
	}
	fitted, _ := m.Fitted()
	resids, _ := m.Residuals()
	return tsforecast.Forecast{Horizon: h, Point: point, Lower: lower, Upper: upper, Coverage: coverage,
		Fitted: fitted, Residuals: resids}, nil
}

func (m *MultiSeasonal) Fitted() ([]float64, bool) {
	base, ok := m.trendETS.Fitted()
	if !ok {
		return nil, false
	}
	fitted := append([]float64(nil), base...)
	for pi, period := range m.periods {
		seasonal := m.seasonal[pi]
		for i := range fitted {
			fitted[i] += seasonal[i%period]
		}
	}
	return fitted, true
}

func (m *MultiSeasonal) Residuals() ([]float64, bool) {
	fitted, ok := m.Fitted()
	if !ok {
		return nil, false
	}
	resids := make([]float64, len(fitted))
	baseResids, _ := m.trendETS.Residuals()
	for i := range resids {
		resids[i] = baseResids[i]
	}
	return resids, true
}
