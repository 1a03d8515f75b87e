package numeric

import "gonum.org/v1/gonum/floats"

// Dot returns the dot product of a and b via gonum's vectorized
// implementation. Panics if len(a) != len(b), matching floats.Dot.
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// AddScaled computes dst[i] += alpha*src[i] in place, reusing dst as the
// accumulation buffer (no new allocation).
func AddScaled(dst []float64, alpha float64, src []float64) {
	floats.AddScaled(dst, alpha, src)
}

// Scale multiplies every element of dst by alpha in place.
func Scale(alpha float64, dst []float64) {
	floats.Scale(alpha, dst)
}

// Sum returns the sum of xs via gonum's vectorized implementation.
func Sum(xs []float64) float64 {
	return floats.Sum(xs)
}
