package validate

import (
	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
	"github.com/DataZooDE/anofox-forecast-sub014/forecast"
	"github.com/DataZooDE/anofox-forecast-sub014/metrics"
)

// ModelFactory produces a fresh, unfitted forecaster for one fold. A new
// instance is requested per fold so fold N's fit never leaks state into
// fold N+1's.
type ModelFactory func() forecast.Forecaster

// FoldMetrics holds the per-fold error measures computed against that
// fold's own held-out slice; MAPE/sMAPE carry an Ok flag since they can be
// undefined (spec.md §4.7). MASE is not computed per fold.
type FoldMetrics struct {
	Fold Fold
	MAE  float64
	MSE  float64
	RMSE float64
	MAPE  float64
	MAPEOk bool
	SMAPE   float64
	SMAPEOk bool
}

// CVResult is the output of Backtest: per-fold metrics plus the aggregate
// metrics computed once against the concatenation of every fold's actual
// and predicted vectors, per spec.md §4.6's documented contract (scenario
// D in §8: aggregated MAE equals the MAE of concatenated predictions
// against concatenated held-out values, not the mean of per-fold MAEs).
type CVResult struct {
	Folds       []FoldMetrics
	AggregateMAE  float64
	AggregateMSE  float64
	AggregateRMSE float64
}

// Backtest fits a fresh model (from factory) per fold on that fold's
// training slice, forecasts the fold's horizon, and records both
// per-fold and series-wide aggregate metrics.
func Backtest(series tsforecast.Series, factory ModelFactory, cfg CVConfig) (CVResult, error) {
	splitter, err := NewSplitter(cfg)
	if err != nil {
		return CVResult{}, err
	}
	folds, err := splitter.GenerateFolds(series.Len())
	if err != nil {
		return CVResult{}, err
	}

	var allActual, allPred []float64
	result := CVResult{Folds: make([]FoldMetrics, 0, len(folds))}

	for _, fold := range folds {
		trainValues := series.Values[fold.TrainStart:fold.TrainEnd]
		train := tsforecast.Series{Values: trainValues, Freq: series.Freq}
		model := factory()
		if err := model.Fit(train); err != nil {
			return CVResult{}, err
		}
		h := fold.TestEnd - fold.TestStart
		fc, err := model.Forecast(h, 0.95)
		if err != nil {
			return CVResult{}, err
		}
		actual := series.Values[fold.TestStart:fold.TestEnd]
		predicted := fc.Point

		fm := FoldMetrics{Fold: fold}
		fm.MAE, _ = metrics.MAE(actual, predicted)
		fm.MSE, _ = metrics.MSE(actual, predicted)
		fm.RMSE, _ = metrics.RMSE(actual, predicted)
		fm.MAPE, fm.MAPEOk, _ = metrics.MAPE(actual, predicted)
		fm.SMAPE, fm.SMAPEOk, _ = metrics.SMAPE(actual, predicted)
		result.Folds = append(result.Folds, fm)

		allActual = append(allActual, actual...)
		allPred = append(allPred, predicted...)
	}

	result.AggregateMAE, _ = metrics.MAE(allActual, allPred)
	result.AggregateMSE, _ = metrics.MSE(allActual, allPred)
	result.AggregateRMSE, _ = metrics.RMSE(allActual, allPred)
	return result, nil
}
