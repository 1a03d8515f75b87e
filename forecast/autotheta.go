package forecast

import (
	"math"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
)

// AutoTheta selects among the four Theta variants. The default behavior
// (FitAll=false) fits only DOTM, matching spec.md's "AutoTheta: default
// selects DOTM". Setting FitAll=true fits all four and keeps whichever
// has the lowest in-sample MSE (spec.md's "model='all'" mode).
type AutoTheta struct {
	Period  int
	FitAll  bool

	best       *Theta
	bestVariant ThetaVariant
}

func NewAutoTheta(period int) *AutoTheta { return &AutoTheta{Period: period} }

func (a *AutoTheta) Fit(series tsforecast.Series) error {
	variants := []ThetaVariant{ThetaDOTM}
	if a.FitAll {
		variants = []ThetaVariant{ThetaSTM, ThetaOTM, ThetaDSTM, ThetaDOTM}
	}

	var best *Theta
	var bestVariant ThetaVariant
	bestMSE := math.Inf(1)
	var lastErr error

	for _, variant := range variants {
		m := NewTheta(ThetaConfig{Variant: variant, Period: a.Period})
		if err := m.Fit(series); err != nil {
			lastErr = err
			continue
		}
		resids, _ := m.Residuals()
		mse := meanSquared(resids)
		if mse < bestMSE {
			bestMSE = mse
			best = m
			bestVariant = variant
		}
	}

	if best == nil {
		if lastErr == nil {
			lastErr = insufficientDataf("AutoTheta: no variant could be fit")
		}
		return lastErr
	}
	a.best = best
	a.bestVariant = bestVariant
	return nil
}

func meanSquared(xs []float64) float64 {
	var sum float64
	var n int
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		sum += x * x
		n++
	}
	if n == 0 {
		return math.Inf(1)
	}
	return sum / float64(n)
}

// BestVariant returns which Theta variant AutoTheta selected.
func (a *AutoTheta) BestVariant() ThetaVariant { return a.bestVariant }

func (a *AutoTheta) Forecast(h int, coverage float64) (tsforecast.Forecast, error) {
	if a.best == nil {
		return tsforecast.Forecast{}, insufficientDataf("AutoTheta: Forecast called before a successful Fit")
	}
	return a.best.Forecast(h, coverage)
}

func (a *AutoTheta) Fitted() ([]float64, bool) {
	if a.best == nil {
		return nil, false
	}
	return a.best.Fitted()
}

func (a *AutoTheta) Residuals() ([]float64, bool) {
	if a.best == nil {
		return nil, false
	}
	return a.best.Residuals()
}
