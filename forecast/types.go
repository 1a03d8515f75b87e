package forecast

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
)

// Forecaster is the capability every model family implements: fit mutates
// internal state from a series, forecast is then a pure function of that
// state. A forecaster owns its fitted state exclusively from Fit to drop.
type Forecaster interface {
	// Fit estimates model state from series. Returns ErrInsufficientData,
	// ErrInvalidParameter or ErrDegenerate on unfittable input.
	Fit(series tsforecast.Series) error
	// Forecast returns h point forecasts and prediction-interval bands at
	// the given coverage level (e.g. 0.95). Must be called after Fit.
	Forecast(h int, coverage float64) (tsforecast.Forecast, error)
	// Fitted returns in-sample one-step-ahead fitted values, if available.
	Fitted() ([]float64, bool)
	// Residuals returns value-fitted, if available.
	Residuals() ([]float64, bool)
}

// Kind names a concrete model/variant; kept as a public string identifier
// per DESIGN NOTES ("model naming strings as the public API") rather than
// normalized or validated against a closed enum at this layer.
type Kind string

const (
	KindNaive                   Kind = "Naive"
	KindSeasonalNaive           Kind = "SeasonalNaive"
	KindRandomWalkDrift         Kind = "RandomWalkDrift"
	KindSMA                     Kind = "SMA"
	KindSeasonalWindowAverage   Kind = "SeasonalWindowAverage"
	KindETS                     Kind = "ETS"
	KindAutoETS                 Kind = "AutoETS"
	KindThetaSTM                Kind = "STM"
	KindThetaOTM                Kind = "OTM"
	KindThetaDSTM               Kind = "DSTM"
	KindThetaDOTM               Kind = "DOTM"
	KindAutoTheta               Kind = "AutoTheta"
	KindMSTLForecaster          Kind = "MSTL"
	KindMFLES                   Kind = "MFLES"
	KindAutoMFLES               Kind = "AutoMFLES"
	KindCrostonClassic          Kind = "CrostonClassic"
	KindCrostonOptimized        Kind = "CrostonOptimized"
	KindCrostonSBA              Kind = "CrostonSBA"
	KindTSB                     Kind = "TSB"
	KindADIDA                   Kind = "ADIDA"
	KindIMAPA                   Kind = "IMAPA"
	KindHolt                    Kind = "Holt"
	KindHoltWinters             Kind = "HoltWinters"
	KindSES                     Kind = "SES"
	KindSESOptimized            Kind = "SESOptimized"
	KindSeasonalES              Kind = "SeasonalES"
	KindSeasonalESOptimized     Kind = "SeasonalESOptimized"
	KindMultiSeasonal           Kind = "MultiSeasonal"
)

// zValue returns the two-sided normal quantile for the given coverage
// level (e.g. coverage=0.95 -> 1.959964...), used to scale innovation
// variance into a symmetric prediction interval half-width.
func zValue(coverage float64) float64 {
	if coverage <= 0 {
		coverage = 1e-6
	}
	if coverage >= 1 {
		coverage = 1 - 1e-6
	}
	alpha := (1 - coverage) / 2
	n := distuv.Normal{Mu: 0, Sigma: 1}
	return n.Quantile(1 - alpha)
}

// intervalsFromSigma fills lower/upper bands symmetrically around point,
// with half-width z*sigma*growth[k] at horizon step k (0-indexed).
func intervalsFromSigma(point []float64, z, sigma float64, growth []float64) (lower, upper []float64) {
	h := len(point)
	lower = make([]float64, h)
	upper = make([]float64, h)
	for k := 0; k < h; k++ {
		hw := z * sigma * growth[k]
		lower[k] = point[k] - hw
		upper[k] = point[k] + hw
	}
	return lower, upper
}

// sqrtGrowth returns [sqrt(1), sqrt(2), ..., sqrt(h)], the standard
// random-walk-family interval growth factor.
func sqrtGrowth(h int) []float64 {
	out := make([]float64, h)
	for k := range out {
		out[k] = math.Sqrt(float64(k + 1))
	}
	return out
}
