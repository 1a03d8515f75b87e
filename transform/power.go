package transform

import (
	"math"

	"github.com/DataZooDE/anofox-forecast-sub014/optimize"
)

// LogTransform is y = log(x); Fit only validates that every finite value
// is strictly positive (x<=0 has no real logarithm). IgnoreNaNs, when
// true, passes NaN entries through unchanged instead of failing on them.
type LogTransform struct {
	fitted     bool
	IgnoreNaNs bool
}

func (t *LogTransform) Fit(values []float64) error {
	if t.fitted {
		return misusef("LogTransform: already fitted")
	}
	for _, v := range values {
		if math.IsNaN(v) {
			if t.IgnoreNaNs {
				continue
			}
			return invalidParamf("LogTransform: NaN present and IgnoreNaNs is false")
		}
		if v <= 0 {
			return invalidParamf("LogTransform: value %v is not strictly positive", v)
		}
	}
	t.fitted = true
	return nil
}

func (t *LogTransform) Transform(values []float64) ([]float64, error) {
	if !t.fitted {
		return nil, misusef("LogTransform: Transform before Fit")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = math.Log(v)
	}
	return out, nil
}

func (t *LogTransform) InverseTransform(values []float64) ([]float64, error) {
	if !t.fitted {
		return nil, misusef("LogTransform: InverseTransform before Fit")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = math.Exp(v)
	}
	return out, nil
}

// LogitTransform is y = log(x/(1-x)) for x in (0,1), the inverse-sigmoid
// link; useful for bounded-rate series.
type LogitTransform struct {
	fitted     bool
	IgnoreNaNs bool
}

func (t *LogitTransform) Fit(values []float64) error {
	if t.fitted {
		return misusef("LogitTransform: already fitted")
	}
	for _, v := range values {
		if math.IsNaN(v) {
			if t.IgnoreNaNs {
				continue
			}
			return invalidParamf("LogitTransform: NaN present and IgnoreNaNs is false")
		}
		if v <= 0 || v >= 1 {
			return invalidParamf("LogitTransform: value %v outside (0,1)", v)
		}
	}
	t.fitted = true
	return nil
}

func (t *LogitTransform) Transform(values []float64) ([]float64, error) {
	if !t.fitted {
		return nil, misusef("LogitTransform: Transform before Fit")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = math.Log(v / (1 - v))
	}
	return out, nil
}

func (t *LogitTransform) InverseTransform(values []float64) ([]float64, error) {
	if !t.fitted {
		return nil, misusef("LogitTransform: InverseTransform before Fit")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = 1 / (1 + math.Exp(-v))
	}
	return out, nil
}

// BoxCox applies the one-parameter Box-Cox power transform. Lambda is
// either supplied manually (ManualLambda=true) or estimated by maximizing
// the Box-Cox profile log-likelihood via Nelder-Mead, per spec.md §4.8.
// Requires strictly positive values (the classical Box-Cox domain).
type BoxCox struct {
	Lambda       float64
	ManualLambda bool
	IgnoreNaNs   bool

	fitted bool
}

func boxCoxForward(x, lambda float64) float64 {
	if math.Abs(lambda) < 1e-8 {
		return math.Log(x)
	}
	return (math.Pow(x, lambda) - 1) / lambda
}

func boxCoxInverse(y, lambda float64) float64 {
	if math.Abs(lambda) < 1e-8 {
		return math.Exp(y)
	}
	base := y*lambda + 1
	if base <= 0 {
		return math.NaN()
	}
	return math.Pow(base, 1/lambda)
}

// boxCoxLogLik is the profile log-likelihood (up to an additive constant)
// for lambda given strictly positive, finite values.
func boxCoxLogLik(values []float64, lambda float64) float64 {
	n := float64(len(values))
	transformed := make([]float64, len(values))
	var sumLogX float64
	for i, v := range values {
		transformed[i] = boxCoxForward(v, lambda)
		sumLogX += math.Log(v)
	}
	var mean float64
	for _, y := range transformed {
		mean += y
	}
	mean /= n
	var ss float64
	for _, y := range transformed {
		d := y - mean
		ss += d * d
	}
	variance := ss / n
	if variance <= 0 {
		return math.Inf(-1)
	}
	return -0.5*n*math.Log(variance) + (lambda-1)*sumLogX
}

func (t *BoxCox) Fit(values []float64) error {
	if t.fitted {
		return misusef("BoxCox: already fitted")
	}
	finite := finiteValues(values, t.IgnoreNaNs)
	if finite == nil {
		return invalidParamf("BoxCox: NaN present and IgnoreNaNs is false")
	}
	for _, v := range finite {
		if v <= 0 {
			return invalidParamf("BoxCox: value %v is not strictly positive", v)
		}
	}
	if !t.ManualLambda {
		opts := optimize.DefaultNelderMeadOptions()
		res := optimize.NelderMead(func(x []float64) float64 {
			return -boxCoxLogLik(finite, x[0])
		}, []float64{0.5}, []float64{-2}, []float64{2}, opts)
		t.Lambda = res.X[0]
	}
	t.fitted = true
	return nil
}

func (t *BoxCox) Transform(values []float64) ([]float64, error) {
	if !t.fitted {
		return nil, misusef("BoxCox: Transform before Fit")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = boxCoxForward(v, t.Lambda)
	}
	return out, nil
}

func (t *BoxCox) InverseTransform(values []float64) ([]float64, error) {
	if !t.fitted {
		return nil, misusef("BoxCox: InverseTransform before Fit")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = boxCoxInverse(v, t.Lambda)
	}
	return out, nil
}

// YeoJohnson is the Box-Cox generalization that tolerates zero and
// negative values, per spec.md §4.8.
type YeoJohnson struct {
	Lambda       float64
	ManualLambda bool
	IgnoreNaNs   bool

	fitted bool
}

func yeoJohnsonForward(x, lambda float64) float64 {
	switch {
	case x >= 0 && math.Abs(lambda) > 1e-8:
		return (math.Pow(x+1, lambda) - 1) / lambda
	case x >= 0:
		return math.Log(x + 1)
	case x < 0 && math.Abs(lambda-2) > 1e-8:
		return -(math.Pow(-x+1, 2-lambda) - 1) / (2 - lambda)
	default:
		return -math.Log(-x + 1)
	}
}

func yeoJohnsonInverse(y, lambda float64) float64 {
	switch {
	case y >= 0 && math.Abs(lambda) > 1e-8:
		base := y*lambda + 1
		if base <= 0 {
			return math.NaN()
		}
		return math.Pow(base, 1/lambda) - 1
	case y >= 0:
		return math.Exp(y) - 1
	case y < 0 && math.Abs(lambda-2) > 1e-8:
		base := -(2-lambda)*y + 1
		if base <= 0 {
			return math.NaN()
		}
		return 1 - math.Pow(base, 1/(2-lambda))
	default:
		return 1 - math.Exp(-y)
	}
}

func yeoJohnsonLogLik(values []float64, lambda float64) float64 {
	n := float64(len(values))
	transformed := make([]float64, len(values))
	var signLogTerm float64
	for i, v := range values {
		transformed[i] = yeoJohnsonForward(v, lambda)
		signLogTerm += math.Copysign(1, v) * math.Log(math.Abs(v)+1)
	}
	var mean float64
	for _, y := range transformed {
		mean += y
	}
	mean /= n
	var ss float64
	for _, y := range transformed {
		d := y - mean
		ss += d * d
	}
	variance := ss / n
	if variance <= 0 {
		return math.Inf(-1)
	}
	return -0.5*n*math.Log(variance) + (lambda-1)*signLogTerm
}

func (t *YeoJohnson) Fit(values []float64) error {
	if t.fitted {
		return misusef("YeoJohnson: already fitted")
	}
	finite := finiteValues(values, t.IgnoreNaNs)
	if finite == nil {
		return invalidParamf("YeoJohnson: NaN present and IgnoreNaNs is false")
	}
	if !t.ManualLambda {
		opts := optimize.DefaultNelderMeadOptions()
		res := optimize.NelderMead(func(x []float64) float64 {
			return -yeoJohnsonLogLik(finite, x[0])
		}, []float64{1.0}, []float64{-2}, []float64{2}, opts)
		t.Lambda = res.X[0]
	}
	t.fitted = true
	return nil
}

func (t *YeoJohnson) Transform(values []float64) ([]float64, error) {
	if !t.fitted {
		return nil, misusef("YeoJohnson: Transform before Fit")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = yeoJohnsonForward(v, t.Lambda)
	}
	return out, nil
}

func (t *YeoJohnson) InverseTransform(values []float64) ([]float64, error) {
	if !t.fitted {
		return nil, misusef("YeoJohnson: InverseTransform before Fit")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = yeoJohnsonInverse(v, t.Lambda)
	}
	return out, nil
}

// finiteValues returns the non-NaN subset of values for fitting
// statistics, or nil if a NaN is present and ignoreNaNs is false.
func finiteValues(values []float64, ignoreNaNs bool) []float64 {
	hasNaN := false
	for _, v := range values {
		if math.IsNaN(v) {
			hasNaN = true
			break
		}
	}
	if !hasNaN {
		return values
	}
	if !ignoreNaNs {
		return nil
	}
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
