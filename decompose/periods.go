package decompose

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/DataZooDE/anofox-forecast-sub014/numeric"
)

// PeriodDetectionConfig configures DetectPeriods.
type PeriodDetectionConfig struct {
	// MinPeriod is the smallest candidate period considered, default 2.
	MinPeriod int
	// MaxPeriod is the largest candidate period considered (exclusive,
	// clamped to n/2); zero selects n/2.
	MaxPeriod int
	// Threshold is the fraction of the maximum power a local peak must
	// clear to be reported, default 0.2.
	Threshold float64
	// MaxPeaks caps the number of periods returned, default 5.
	MaxPeaks int
}

// DefaultPeriodDetectionConfig returns MinPeriod=2, MaxPeriod=0 (auto),
// Threshold=0.2, MaxPeaks=5.
func DefaultPeriodDetectionConfig() PeriodDetectionConfig {
	return PeriodDetectionConfig{MinPeriod: 2, MaxPeriod: 0, Threshold: 0.2, MaxPeaks: 5}
}

// PeriodDetectionResult is the output of DetectPeriods.
type PeriodDetectionResult struct {
	Periods       []int
	PrimaryPeriod int
	Powers        []float64
}

// DetectPeriods finds candidate seasonal periods via the autocorrelation-
// based periodogram (spec's primary method): normalized autocovariance at
// each lag in [MinPeriod, MaxPeriod), local maxima above
// Threshold*maxPower, returned sorted by period ascending for output
// stability. PrimaryPeriod is the period with the single highest power.
func DetectPeriods(values []float64, cfg PeriodDetectionConfig) (PeriodDetectionResult, error) {
	minP := cfg.MinPeriod
	if minP < 2 {
		minP = 2
	}
	maxP := cfg.MaxPeriod
	if maxP <= 0 {
		maxP = len(values) / 2
	}
	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = 0.2
	}
	maxPeaks := cfg.MaxPeaks
	if maxPeaks <= 0 {
		maxPeaks = 5
	}

	periods, powers := numeric.Periodogram(values, minP, maxP, threshold)
	if len(periods) == 0 {
		return PeriodDetectionResult{}, insufficientDataf("no periodogram peaks found in [%d,%d)", minP, maxP)
	}

	type pp struct {
		period int
		power  float64
	}
	pairs := make([]pp, len(periods))
	for i := range periods {
		pairs[i] = pp{periods[i], powers[i]}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].power > pairs[b].power })
	if len(pairs) > maxPeaks {
		pairs = pairs[:maxPeaks]
	}
	primary := pairs[0].period

	sort.Slice(pairs, func(a, b int) bool { return pairs[a].period < pairs[b].period })
	outPeriods := make([]int, len(pairs))
	outPowers := make([]float64, len(pairs))
	for i, p := range pairs {
		outPeriods[i] = p.period
		outPowers[i] = p.power
	}

	return PeriodDetectionResult{Periods: outPeriods, PrimaryPeriod: primary, Powers: outPowers}, nil
}

// DetectPeriodsFFT is an alternate spectral estimator: it computes the
// real FFT of values via gonum/dsp/fourier, converts each candidate period
// p in [minPeriod, maxPeriod) to its nearest frequency bin n/p, and scores
// it by that bin's squared magnitude. Offers a second, independent
// confidence signal alongside DetectPeriods' autocovariance estimate.
func DetectPeriodsFFT(values []float64, minPeriod, maxPeriod int) ([]PeriodCandidate, error) {
	n := len(values)
	if n < 4 {
		return nil, insufficientDataf("series length %d too short for FFT period detection", n)
	}
	if maxPeriod <= 0 || maxPeriod > n/2 {
		maxPeriod = n / 2
	}
	if minPeriod < 2 {
		minPeriod = 2
	}
	if maxPeriod <= minPeriod {
		return nil, invalidParamf("empty FFT period range [%d,%d)", minPeriod, maxPeriod)
	}

	mean := numeric.Mean(values)
	centered := make([]float64, n)
	for i, v := range values {
		centered[i] = v - mean
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, centered)

	power := make([]float64, len(coeffs))
	var maxPower float64
	for i, c := range coeffs {
		p := real(c)*real(c) + imag(c)*imag(c)
		power[i] = p
		if p > maxPower {
			maxPower = p
		}
	}
	if maxPower == 0 {
		return nil, nil
	}

	var out []PeriodCandidate
	for p := minPeriod; p < maxPeriod; p++ {
		bin := int(math.Round(float64(n) / float64(p)))
		if bin <= 0 || bin >= len(power) {
			continue
		}
		confidence := power[bin] / maxPower
		if confidence <= 0 {
			continue
		}
		out = append(out, PeriodCandidate{Period: p, Confidence: confidence})
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Confidence > out[b].Confidence })
	return out, nil
}

// DetectPeriodsACF is a third, simpler estimator built directly on
// numeric.ACF: candidate periods are lags whose autocorrelation is a local
// maximum and exceeds threshold.
func DetectPeriodsACF(values []float64, minPeriod, maxPeriod int, threshold float64) []PeriodCandidate {
	n := len(values)
	if maxPeriod <= 0 || maxPeriod > n/2 {
		maxPeriod = n / 2
	}
	if maxPeriod < 3 {
		return nil
	}
	acf := numeric.ACF(values, maxPeriod)

	var out []PeriodCandidate
	for lag := minPeriod; lag < maxPeriod && lag < len(acf)-1; lag++ {
		if lag <= 0 {
			continue
		}
		v := acf[lag]
		if v < threshold {
			continue
		}
		if v > acf[lag-1] && v > acf[lag+1] {
			out = append(out, PeriodCandidate{Period: lag, Confidence: v})
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Confidence > out[b].Confidence })
	return out
}

// SeasonalStrength returns max(0, 1 - Var(remainder)/Var(seasonal+remainder))
// for a single seasonal component, clamped to [0, 1].
func SeasonalStrength(seasonal, remainder []float64) float64 {
	return strengthOf(seasonal, remainder)
}

// TrendStrength returns max(0, 1 - Var(remainder)/Var(trend+remainder)),
// analogous to SeasonalStrength but against the detrended-minus-seasonal
// remainder.
func TrendStrength(trend, remainder []float64) float64 {
	return strengthOf(trend, remainder)
}

func strengthOf(component, remainder []float64) float64 {
	n := len(remainder)
	if n == 0 || len(component) != n {
		return 0
	}
	sum := make([]float64, n)
	for i := range sum {
		sum[i] = component[i] + remainder[i]
	}
	denom := numeric.Variance(sum)
	if denom <= 0 {
		return 0
	}
	s := 1 - numeric.Variance(remainder)/denom
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
