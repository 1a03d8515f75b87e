package features

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"

	"github.com/DataZooDE/anofox-forecast-sub014/decompose"
	"github.com/DataZooDE/anofox-forecast-sub014/numeric"
)

func buildRegistry() map[string]entry {
	tbl := make(map[string]entry)

	tbl["mean"] = entry{calc: calcMean}
	tbl["variance"] = entry{calc: calcVariance}
	tbl["skewness"] = entry{calc: calcSkewness}
	tbl["kurtosis"] = entry{calc: calcKurtosis}
	tbl["spectral_entropy"] = entry{calc: calcSpectralEntropy}
	tbl["approximate_entropy"] = entry{calc: calcApproximateEntropy, defaults: FeatureParams{"m": 2, "r": 0.2}}
	tbl["trend_strength"] = entry{calc: calcTrendStrength}
	tbl["seasonal_strength"] = entry{calc: calcSeasonalStrength}
	tbl["zero_crossings"] = entry{calc: calcZeroCrossings}
	tbl["mean_crossings"] = entry{calc: calcMeanCrossings}
	tbl["linearity"] = entry{calc: calcLinearity}
	tbl["curvature"] = entry{calc: calcCurvature}
	tbl["intermittency_ratio"] = entry{calc: calcIntermittencyRatio, defaults: FeatureParams{"eps": 1e-8}}
	tbl["acf1"] = entry{calc: acfAtLag(1)}
	tbl["acf10"] = entry{calc: acfAtLag(10)}
	tbl["pacf5"] = entry{calc: pacfAtLag(5)}

	for lag := 1; lag <= 10; lag++ {
		tbl[fmt.Sprintf("acf_lag_%d", lag)] = entry{calc: acfAtLag(lag)}
	}
	for lag := 1; lag <= 5; lag++ {
		tbl[fmt.Sprintf("pacf_lag_%d", lag)] = entry{calc: pacfAtLag(lag)}
	}
	for _, w := range []int{5, 10, 20} {
		tbl[fmt.Sprintf("stability_w%d", w)] = entry{calc: windowedStatistic(w, false)}
		tbl[fmt.Sprintf("lumpiness_w%d", w)] = entry{calc: windowedStatistic(w, true)}
	}

	return tbl
}

func calcMean(values []float64, _ FeatureParams) (float64, bool) {
	if len(values) == 0 {
		return 0, true
	}
	return numeric.Mean(values), false
}

func calcVariance(values []float64, _ FeatureParams) (float64, bool) {
	if len(values) < 2 {
		return 0, true
	}
	return numeric.Variance(values), false
}

func calcSkewness(values []float64, _ FeatureParams) (float64, bool) {
	if len(values) < 3 {
		return 0, true
	}
	v := stat.Skewness(values, nil)
	if math.IsNaN(v) {
		return 0, true
	}
	return v, false
}

func calcKurtosis(values []float64, _ FeatureParams) (float64, bool) {
	if len(values) < 4 {
		return 0, true
	}
	v := stat.ExKurtosis(values, nil)
	if math.IsNaN(v) {
		return 0, true
	}
	return v, false
}

// acfAtLag returns a calculator reporting numeric.ACF(values, lag)[lag],
// the correlation between the series and itself shifted by lag; the
// "params" argument may override "lag" at call time.
func acfAtLag(defaultLag int) Calculator {
	return func(values []float64, params FeatureParams) (float64, bool) {
		lag := params.intOr("lag", defaultLag)
		if lag < 1 || len(values) <= lag {
			return 0, true
		}
		acf := numeric.ACF(values, lag)
		if len(acf) <= lag {
			return 0, true
		}
		v := acf[lag]
		if math.IsNaN(v) {
			return 0, true
		}
		return v, false
	}
}

// pacfAtLag computes the partial autocorrelation at the given order via
// the Durbin-Levinson recursion over the raw autocorrelation sequence.
func pacfAtLag(defaultLag int) Calculator {
	return func(values []float64, params FeatureParams) (float64, bool) {
		order := params.intOr("lag", defaultLag)
		if order < 1 || len(values) <= order+1 {
			return 0, true
		}
		acf := numeric.ACF(values, order)
		if len(acf) <= order {
			return 0, true
		}
		phi, ok := durbinLevinson(acf, order)
		if !ok {
			return 0, true
		}
		return phi, false
	}
}

// durbinLevinson returns the order-th partial autocorrelation coefficient
// given acf[0..order] (acf[0]=1). Returns ok=false on a singular recursion
// (e.g. a perfectly periodic or degenerate series).
func durbinLevinson(acf []float64, order int) (float64, bool) {
	phi := make([]float64, order+1)
	prevPhi := make([]float64, order+1)
	phi[1] = acf[1]
	for k := 2; k <= order; k++ {
		copy(prevPhi, phi)
		var num, den float64 = acf[k], 1
		for j := 1; j < k; j++ {
			num -= prevPhi[j] * acf[k-j]
			den -= prevPhi[j] * acf[j]
		}
		if den == 0 {
			return 0, false
		}
		phi[k] = num / den
		for j := 1; j < k; j++ {
			phi[j] = prevPhi[j] - phi[k]*prevPhi[k-j]
		}
	}
	return phi[order], true
}

// calcSpectralEntropy is the Shannon entropy of the normalized FFT power
// spectrum, scaled to [0,1] by dividing by the log of the number of
// spectrum bins, n/2+1 (a flat spectrum, i.e.
// white noise, scores near 1; a single dominant frequency scores near 0).
func calcSpectralEntropy(values []float64, _ FeatureParams) (float64, bool) {
	n := len(values)
	if n < 8 {
		return 0, true
	}
	mean := numeric.Mean(values)
	centered := make([]float64, n)
	for i, v := range values {
		centered[i] = v - mean
	}
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, centered)

	power := make([]float64, len(coeffs))
	var total float64
	for i, c := range coeffs {
		p := real(c)*real(c) + imag(c)*imag(c)
		power[i] = p
		total += p
	}
	if total == 0 {
		return 0, true
	}
	var entropy float64
	for _, p := range power {
		if p == 0 {
			continue
		}
		prob := p / total
		entropy -= prob * math.Log(prob)
	}
	return entropy / math.Log(float64(len(power))), false
}

// calcApproximateEntropy is ApEn(m,r): a measure of series regularity/
// unpredictability, per Pincus (1991). r is expressed as a fraction of the
// series' standard deviation.
func calcApproximateEntropy(values []float64, params FeatureParams) (float64, bool) {
	n := len(values)
	m := params.intOr("m", 2)
	rFrac := params.floatOr("r", 0.2)
	if n < m+2 {
		return 0, true
	}
	sd := math.Sqrt(numeric.Variance(values))
	if sd == 0 {
		return 0, true
	}
	r := rFrac * sd

	phi := func(mm int) float64 {
		count := n - mm + 1
		logSum := 0.0
		for i := 0; i < count; i++ {
			matches := 0
			for j := 0; j < count; j++ {
				if maxAbsDiff(values[i:i+mm], values[j:j+mm]) <= r {
					matches++
				}
			}
			logSum += math.Log(float64(matches) / float64(count))
		}
		return logSum / float64(count)
	}
	return phi(m) - phi(m+1), false
}

func maxAbsDiff(a, b []float64) float64 {
	var maxD float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxD {
			maxD = d
		}
	}
	return maxD
}

// calcTrendStrength/calcSeasonalStrength delegate to decompose.STL: the
// "period" parameter (default 0, meaning "auto-detect") selects the
// seasonal period to decompose against.
func calcTrendStrength(values []float64, params FeatureParams) (float64, bool) {
	res, ok := stlForFeature(values, params)
	if !ok {
		return 0, true
	}
	return decompose.TrendStrength(res.Trend, res.Remainder), false
}

func calcSeasonalStrength(values []float64, params FeatureParams) (float64, bool) {
	res, ok := stlForFeature(values, params)
	if !ok {
		return 0, true
	}
	return decompose.SeasonalStrength(res.Seasonal, res.Remainder), false
}

func stlForFeature(values []float64, params FeatureParams) (decompose.STLResult, bool) {
	period := params.intOr("period", 0)
	if period < 2 {
		detected, err := decompose.DetectPeriods(values, decompose.DefaultPeriodDetectionConfig())
		if err != nil || detected.PrimaryPeriod < 2 {
			return decompose.STLResult{}, false
		}
		period = detected.PrimaryPeriod
	}
	res, err := decompose.STL(values, period, decompose.DefaultSTLConfig())
	if err != nil {
		return decompose.STLResult{}, false
	}
	return res, true
}

func calcZeroCrossings(values []float64, _ FeatureParams) (float64, bool) {
	return float64(countCrossings(values, 0)), false
}

func calcMeanCrossings(values []float64, _ FeatureParams) (float64, bool) {
	if len(values) == 0 {
		return 0, true
	}
	return float64(countCrossings(values, numeric.Mean(values))), false
}

func countCrossings(values []float64, threshold float64) int {
	count := 0
	for i := 1; i < len(values); i++ {
		a, b := values[i-1]-threshold, values[i]-threshold
		if (a < 0 && b >= 0) || (a >= 0 && b < 0) {
			count++
		}
	}
	return count
}

// calcLinearity/calcCurvature report the linear and quadratic coefficients
// of a quadratic detrend fit, an approximation of the tsfeatures
// "linearity"/"curvature" pair (the orthogonal-polynomial coefficients of
// an STL trend component, scaled).
func calcLinearity(values []float64, _ FeatureParams) (float64, bool) {
	res, err := decompose.Detrend(values, decompose.DetrendQuadratic)
	if err != nil || len(res.Coeffs) < 2 {
		return 0, true
	}
	return res.Coeffs[1], false
}

func calcCurvature(values []float64, _ FeatureParams) (float64, bool) {
	res, err := decompose.Detrend(values, decompose.DetrendQuadratic)
	if err != nil || len(res.Coeffs) < 3 {
		return 0, true
	}
	return res.Coeffs[2], false
}

func calcIntermittencyRatio(values []float64, params FeatureParams) (float64, bool) {
	if len(values) == 0 {
		return 0, true
	}
	eps := params.floatOr("eps", 1e-8)
	var zeros int
	for _, v := range values {
		if math.Abs(v) <= eps {
			zeros++
		}
	}
	return float64(zeros) / float64(len(values)), false
}

// windowedStatistic splits values into numWindows equal tiles and reports
// either the variance of per-tile means (stability) or the variance of
// per-tile variances (lumpiness), both standard tsfeatures measures of a
// series' local consistency.
func windowedStatistic(numWindows int, lumpiness bool) Calculator {
	return func(values []float64, _ FeatureParams) (float64, bool) {
		n := len(values)
		if numWindows < 2 || n < numWindows*2 {
			return 0, true
		}
		tile := n / numWindows
		stats := make([]float64, 0, numWindows)
		for w := 0; w < numWindows; w++ {
			start := w * tile
			end := start + tile
			if w == numWindows-1 {
				end = n
			}
			chunk := values[start:end]
			if lumpiness {
				stats = append(stats, numeric.Variance(chunk))
			} else {
				stats = append(stats, numeric.Mean(chunk))
			}
		}
		return numeric.Variance(stats), false
	}
}
