package numeric

import "math"

// SiegelRegression fits a robust repeated-median regression line
// y = intercept + slope*x: for each i, take the median over j != i of the
// pairwise slope (y_j-y_i)/(x_j-x_i), then take the median of those n
// per-point slopes; the intercept is the median over i of y_i - slope*x_i.
// O(n^2 log n) time; resists up to 50% outliers.
//
// len(x) and len(y) must be equal and at least 2; otherwise returns
// (0, 0, false).
func SiegelRegression(x, y []float64) (intercept, slope float64, ok bool) {
	n := len(x)
	if n != len(y) || n < 2 {
		return 0, 0, false
	}

	pairSlopes := make([]float64, 0, n-1)
	perPoint := make([]float64, n)
	for i := 0; i < n; i++ {
		pairSlopes = pairSlopes[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dx := x[j] - x[i]
			if dx == 0 {
				continue
			}
			pairSlopes = append(pairSlopes, (y[j]-y[i])/dx)
		}
		if len(pairSlopes) == 0 {
			perPoint[i] = math.NaN()
			continue
		}
		buf := make([]float64, len(pairSlopes))
		copy(buf, pairSlopes)
		perPoint[i] = Median(buf)
	}

	finite := perPoint[:0:0]
	for _, v := range perPoint {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	slope = MedianCopy(finite)

	intercepts := make([]float64, n)
	for i := range intercepts {
		intercepts[i] = y[i] - slope*x[i]
	}
	intercept = Median(intercepts)

	return intercept, slope, true
}
