package numeric

import "math"

// LOESSConfig configures the local regression smoother.
type LOESSConfig struct {
	// Span is the fraction of points (0,1] used in each local window.
	Span float64
	// Robust is the number of bisquare-reweighting passes after the
	// initial fit (0 = non-robust, 2 = standard robust LOESS).
	Robust int
	// Degree is the local polynomial degree; only 1 (linear) is supported.
	Degree int
}

// DefaultLOESSConfig returns Span=0.3, Robust=0, Degree=1.
func DefaultLOESSConfig() LOESSConfig {
	return LOESSConfig{Span: 0.3, Robust: 0, Degree: 1}
}

// LOESS smooths y at the points x using a tricube-kernel local linear
// regression. weights is a caller-owned scratch buffer of length len(x),
// reused across calls to avoid per-call allocation; pass nil to have one
// allocated internally. Delta skip (interpolating between anchor fits) is
// not applied; every point gets its own local fit, matching the
// specification's O(n) "windows slide by one" description exactly.
func LOESS(x, y []float64, cfg LOESSConfig, weights []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if weights == nil || len(weights) != n {
		weights = make([]float64, n)
	}
	robustW := make([]float64, n)
	for i := range robustW {
		robustW[i] = 1
	}

	windowSize := int(math.Ceil(cfg.Span * float64(n)))
	if windowSize < cfg.Degree+2 {
		windowSize = cfg.Degree + 2
	}
	if windowSize > n {
		windowSize = n
	}

	residuals := make([]float64, n)

	passes := cfg.Robust + 1
	for pass := 0; pass < passes; pass++ {
		for i := 0; i < n; i++ {
			lo, hi := localWindow(x, i, windowSize)
			maxDist := tricubeMaxDist(x, i, lo, hi)

			var sw, swx, swy, swxx, swxy float64
			for k := lo; k < hi; k++ {
				d := math.Abs(x[k] - x[i])
				tw := tricube(d, maxDist)
				w := tw * robustW[k]
				weights[k] = w
				sw += w
				swx += w * x[k]
				swy += w * y[k]
				swxx += w * x[k] * x[k]
				swxy += w * x[k] * y[k]
			}

			// Weighted linear regression closed form for slope/intercept.
			denom := sw*swxx - swx*swx
			var a, b float64
			if math.Abs(denom) < 1e-12 || sw == 0 {
				if sw > 0 {
					a = swy / sw
				}
				b = 0
			} else {
				b = (sw*swxy - swx*swy) / denom
				a = (swy - b*swx) / sw
			}
			out[i] = a + b*x[i]
			residuals[i] = y[i] - out[i]
		}

		if pass+1 < passes {
			updateBisquareWeights(residuals, robustW)
		}
	}

	return out
}

func localWindow(x []float64, center, size int) (lo, hi int) {
	n := len(x)
	lo = center - size/2
	hi = lo + size
	if lo < 0 {
		hi -= lo
		lo = 0
	}
	if hi > n {
		lo -= hi - n
		hi = n
	}
	if lo < 0 {
		lo = 0
	}
	return lo, hi
}

func tricubeMaxDist(x []float64, center, lo, hi int) float64 {
	maxDist := 0.0
	for k := lo; k < hi; k++ {
		d := math.Abs(x[k] - x[center])
		if d > maxDist {
			maxDist = d
		}
	}
	if maxDist == 0 {
		maxDist = 1
	}
	return maxDist
}

// tricube evaluates the tricube kernel (1-(d/maxDist)^3)^3 for d<=maxDist.
func tricube(d, maxDist float64) float64 {
	u := d / maxDist
	if u >= 1 {
		return 0
	}
	t := 1 - u*u*u
	return t * t * t
}

// updateBisquareWeights recomputes robust weights from residuals using the
// bisquare function with scale = 6*median(|residuals|).
func updateBisquareWeights(residuals, robustW []float64) {
	absRes := make([]float64, len(residuals))
	for i, r := range residuals {
		absRes[i] = math.Abs(r)
	}
	s := 6 * MedianCopy(absRes)
	if s <= 0 {
		for i := range robustW {
			robustW[i] = 1
		}
		return
	}
	for i, r := range residuals {
		u := r / s
		if math.Abs(u) >= 1 {
			robustW[i] = 0
			continue
		}
		w := 1 - u*u
		robustW[i] = w * w
	}
}
