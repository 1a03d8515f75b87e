package numeric

import "math"

// Periodogram computes, for each candidate period p in [pMin, pMax), the
// normalized autocovariance power |sum_t (x_t-xbar)(x_{t-p}-xbar) /
// ((n-p)*Var(x))| and returns the subset of candidates that are local
// maxima (both neighbors lower) and whose power exceeds
// threshold*maxPower, sorted by power descending.
//
// pMax is exclusive and is clamped to n/2. Returns empty slices if fewer
// than 3 candidate periods are available (a local-maximum test needs at
// least one neighbor on each side).
func Periodogram(xs []float64, pMin, pMax int, threshold float64) (periods []int, powers []float64) {
	n := len(xs)
	if pMax > n/2 {
		pMax = n / 2
	}
	if pMin < 1 {
		pMin = 1
	}
	if pMax-pMin < 3 {
		return nil, nil
	}

	mean := Mean(xs)
	variance := PopVariance(xs)
	if variance == 0 {
		return nil, nil
	}

	power := make([]float64, pMax-pMin)
	for idx, p := 0, pMin; p < pMax; idx, p = idx+1, p+1 {
		var cov float64
		for t := p; t < n; t++ {
			cov += (xs[t] - mean) * (xs[t-p] - mean)
		}
		cov /= float64(n - p)
		power[idx] = math.Abs(cov / variance)
	}

	maxPower := 0.0
	for _, v := range power {
		if v > maxPower {
			maxPower = v
		}
	}
	if maxPower == 0 {
		return nil, nil
	}
	cutoff := threshold * maxPower

	for i := 1; i < len(power)-1; i++ {
		if power[i] < cutoff {
			continue
		}
		if power[i] > power[i-1] && power[i] > power[i+1] {
			periods = append(periods, pMin+i)
			powers = append(powers, power[i])
		}
	}

	// Sort by power descending (simple insertion sort; candidate counts are
	// small relative to series length).
	for i := 1; i < len(powers); i++ {
		for j := i; j > 0 && powers[j] > powers[j-1]; j-- {
			powers[j], powers[j-1] = powers[j-1], powers[j]
			periods[j], periods[j-1] = periods[j-1], periods[j]
		}
	}

	return periods, powers
}
