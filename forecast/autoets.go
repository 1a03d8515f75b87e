package forecast

import (
	"math"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
)

// AutoETS enumerates the legal (error, trend, seasonal) combinations,
// fits each, and selects the one with the lowest AIC (ties broken by a
// fixed preference order matching spec.md's
// "{ETS(A,N,N), ETS(A,A,N), ETS(A,A,A), ...}").
type AutoETS struct {
	Period int
	// AllowMultiplicative includes multiplicative error/trend/seasonal
	// combinations in the grid; disabled by default for non-positive
	// series compatibility. Set explicitly once Period/series are known
	// to be strictly positive.
	AllowMultiplicative bool

	candidates []*ETS
	best       *ETS
	bestConfig ETSConfig
}

// NewAutoETS constructs an AutoETS selector for seasonal period p (pass 0
// or 1 for a non-seasonal grid).
func NewAutoETS(period int) *AutoETS { return &AutoETS{Period: period} }

func (a *AutoETS) candidateConfigs(positive bool) []ETSConfig {
	trends := []TrendType{TrendNone, TrendAdditive, TrendDampedAdditive}
	seasonals := []SeasonalType{SeasonalNone}
	if a.Period >= 2 {
		seasonals = append(seasonals, SeasonalAdditive)
	}
	errors := []ErrorType{ErrorAdditive}
	if a.AllowMultiplicative && positive {
		trends = append(trends, TrendMultiplicative, TrendDampedMultiplicative)
		if a.Period >= 2 {
			seasonals = append(seasonals, SeasonalMultiplicative)
		}
		errors = append(errors, ErrorMultiplicative)
	}

	var out []ETSConfig
	for _, e := range errors {
		for _, tr := range trends {
			for _, s := range seasonals {
				out = append(out, ETSConfig{Error: e, Trend: tr, Seasonal: s, Period: a.Period})
			}
		}
	}
	return out
}

func (a *AutoETS) Fit(series tsforecast.Series) error {
	positive := true
	for _, v := range series.Values {
		if v <= 0 {
			positive = false
			break
		}
	}
	configs := a.candidateConfigs(positive)

	var lastErr error
	var best *ETS
	var bestCfg ETSConfig
	bestAIC := math.Inf(1)
	var candidates []*ETS

	for _, cfg := range configs {
		model := NewETS(cfg)
		if err := model.Fit(series); err != nil {
			lastErr = err
			continue
		}
		candidates = append(candidates, model)
		if model.AIC() < bestAIC {
			bestAIC = model.AIC()
			best = model
			bestCfg = cfg
		}
	}

	if best == nil {
		if lastErr == nil {
			lastErr = insufficientDataf("AutoETS: no candidate model could be fit")
		}
		return lastErr
	}

	a.candidates = candidates
	a.best = best
	a.bestConfig = bestCfg
	return nil
}

// BestConfig returns the (error, trend, seasonal) combination AutoETS
// selected.
func (a *AutoETS) BestConfig() ETSConfig { return a.bestConfig }

// Candidates returns every model AutoETS successfully fit, in fit order.
func (a *AutoETS) Candidates() []*ETS { return a.candidates }

func (a *AutoETS) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if a.best == nil {
		return tsforecast.Forecast{}, insufficientDataf("AutoETS: Forecast called before a successful Fit")
	}
	return a.best.Forecast(h, coverage)
}

func (a *AutoETS) Fitted() ([]float64, bool) {
	if a.best == nil {
		return nil, false
	}
	return a.best.Fitted()
}

func (a *AutoETS) Residuals() ([]float64, bool) {
	if a.best == nil {
		return nil, false
	}
	return a.best.Residuals()
}
