package transform

import "math"

// LinearInterpolator fills interior NaN runs by linear interpolation
// between the nearest finite neighbors on either side. It never
// extrapolates: a leading or trailing NaN run (no finite neighbor on one
// side) is left as NaN, per spec.md §4.8. InverseTransform is the
// identity, since interpolation is not invertible; it exists only so
// LinearInterpolator satisfies Transformer and can sit in a Pipeline.
type LinearInterpolator struct {
	fitted bool
}

func (t *LinearInterpolator) Fit(values []float64) error {
	if t.fitted {
		return misusef("LinearInterpolator: already fitted")
	}
	t.fitted = true
	return nil
}

func (t *LinearInterpolator) Transform(values []float64) ([]float64, error) {
	if !t.fitted {
		return nil, misusef("LinearInterpolator: Transform before Fit")
	}
	out := append([]float64(nil), values...)
	n := len(out)
	i := 0
	for i < n {
		if !math.IsNaN(out[i]) {
			i++
			continue
		}
		// out[i] is NaN; find the run [i, j) of NaNs.
		j := i
		for j < n && math.IsNaN(out[j]) {
			j++
		}
		if i == 0 || j == n {
			// Leading or trailing NaN run: no extrapolation.
			i = j
			continue
		}
		left, right := out[i-1], out[j]
		span := float64(j - i + 1)
		for k := i; k < j; k++ {
			frac := float64(k-i+1) / span
			out[k] = left + frac*(right-left)
		}
		i = j
	}
	return out, nil
}

func (t *LinearInterpolator) InverseTransform(values []float64) ([]float64, error) {
	if !t.fitted {
		return nil, misusef("LinearInterpolator: InverseTransform before Fit")
	}
	return append([]float64(nil), values...), nil
}
