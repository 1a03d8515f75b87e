package decompose

import (
	"math"

	"github.com/DataZooDE/anofox-forecast-sub014/matrix"
)

// Detrend fits a polynomial trend of the requested method to values against
// an implicit 0..n-1 time axis, by ordinary least squares solved via the
// normal equations (X^T X)^-1 X^T y, using matrix.Mul/Transpose/Inverse.
// DetrendAuto fits linear, quadratic and cubic and keeps whichever has the
// lowest BIC-adjusted residual sum of squares.
func Detrend(values []float64, method DetrendMethod) (DetrendResult, error) {
	n := len(values)
	if n < 3 {
		return DetrendResult{}, insufficientDataf("series length %d < 3", n)
	}

	if method == DetrendAuto {
		best := DetrendResult{}
		bestBIC := math.Inf(1)
		for _, m := range []DetrendMethod{DetrendLinear, DetrendQuadratic, DetrendCubic} {
			r, err := Detrend(values, m)
			if err != nil {
				continue
			}
			bic := bicScore(r.RSS, n, r.NParams)
			if bic < bestBIC {
				bestBIC = bic
				best = r
			}
		}
		if best.Trend == nil {
			return DetrendResult{}, invalidParamf("no detrend method converged")
		}
		return best, nil
	}

	degree, err := degreeOf(method)
	if err != nil {
		return DetrendResult{}, err
	}
	nParams := degree + 1
	if n <= nParams {
		return DetrendResult{}, insufficientDataf("series length %d too short for degree %d", n, degree)
	}

	coeffs, err := polyFitOLS(values, degree)
	if err != nil {
		return DetrendResult{}, err
	}

	trend := make([]float64, n)
	detrended := make([]float64, n)
	var rss float64
	for i := 0; i < n; i++ {
		t := evalPoly(coeffs, float64(i))
		trend[i] = t
		d := values[i] - t
		detrended[i] = d
		rss += d * d
	}

	return DetrendResult{
		Trend:     trend,
		Detrended: detrended,
		Method:    method,
		Coeffs:    coeffs,
		RSS:       rss,
		NParams:   nParams,
	}, nil
}

func degreeOf(method DetrendMethod) (int, error) {
	switch method {
	case DetrendLinear:
		return 1, nil
	case DetrendQuadratic:
		return 2, nil
	case DetrendCubic:
		return 3, nil
	default:
		return 0, invalidParamf("unknown detrend method %d", method)
	}
}

// polyFitOLS returns coeffs [c0, c1, ..., cDegree] such that the fitted
// value at time t is c0 + c1*t + ... + cDegree*t^degree, solved by normal
// equations over the design matrix with columns t^0..t^degree.
func polyFitOLS(values []float64, degree int) ([]float64, error) {
	n := len(values)
	p := degree + 1

	design, err := matrix.NewDense(n, p)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t := float64(i)
		pow := 1.0
		for j := 0; j < p; j++ {
			_ = design.Set(i, j, pow)
			pow *= t
		}
	}

	designT, err := matrix.Transpose(design)
	if err != nil {
		return nil, err
	}
	xtx, err := matrix.Mul(designT, design)
	if err != nil {
		return nil, err
	}
	xtxInv, err := matrix.Inverse(xtx)
	if err != nil {
		return nil, invalidParamf("singular normal-equations system: %v", err)
	}
	xty, err := matrix.MatVec(designT, values)
	if err != nil {
		return nil, err
	}
	coeffs, err := matrix.MatVec(xtxInv, xty)
	if err != nil {
		return nil, err
	}
	return coeffs, nil
}

func evalPoly(coeffs []float64, t float64) float64 {
	var v, pow float64 = 0, 1
	for _, c := range coeffs {
		v += c * pow
		pow *= t
	}
	return v
}

// bicScore returns n*log(RSS/n) + k*log(n), the BIC-adjusted residual sum
// of squares used to pick among DetrendAuto's candidate degrees.
func bicScore(rss float64, n, k int) float64 {
	if rss <= 0 {
		rss = 1e-12
	}
	return float64(n)*math.Log(rss/float64(n)) + float64(k)*math.Log(float64(n))
}
