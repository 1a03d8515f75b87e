package features

// FeatureParams is a string-keyed numeric parameter map for one feature
// request (e.g. {"lag": 5} for an ACF-derived feature), mirroring the
// Params convention used by forecast.Params.
type FeatureParams map[string]float64

func (p FeatureParams) floatOr(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

func (p FeatureParams) intOr(key string, def int) int {
	if v, ok := p[key]; ok {
		return int(v)
	}
	return def
}

// FeatureRequest names one catalog entry plus its parameter overrides.
type FeatureRequest struct {
	Name   string
	Params FeatureParams
}

// FeatureConfig is an ordered list of feature requests.
type FeatureConfig []FeatureRequest

// FeatureResult is one computed feature: its name, value, and whether the
// value is undefined (IsNaN=true means the value field should be ignored,
// e.g. acf1 on a constant series).
type FeatureResult struct {
	Name  string
	Value float64
	IsNaN bool
}

// Calculator computes one named feature from a value series and its
// parameters, returning (value, isNaN).
type Calculator func(values []float64, params FeatureParams) (float64, bool)

// entry pairs a calculator with its default parameters, applied whenever a
// FeatureRequest omits a key the calculator looks for.
type entry struct {
	calc     Calculator
	defaults FeatureParams
}
