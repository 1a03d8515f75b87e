package optimize

import (
	"math"
	"sort"
)

// NelderMead minimizes a scalar function (no gradient required) over
// [lower, upper], starting from a simplex built by perturbing x0 by
// opts.Step along each axis. Every candidate vertex is clamped into bounds
// before evaluation. Convergence is declared once
// max_i |f_i - mean(f)| < opts.Tol or MaxIterations is reached.
func NelderMead(value func(x []float64) float64, x0, lower, upper []float64, opts NelderMeadOptions) Result {
	n := len(x0)
	alpha, gamma, rho, sigma := opts.Alpha, opts.Gamma, opts.Rho, opts.Sigma
	if alpha == 0 {
		alpha = 1
	}
	if gamma == 0 {
		gamma = 2
	}
	if rho == 0 {
		rho = 0.5
	}
	if sigma == 0 {
		sigma = 0.5
	}

	simplex := make([][]float64, n+1)
	fvals := make([]float64, n+1)
	for i := range simplex {
		v := make([]float64, n)
		copy(v, x0)
		if i > 0 {
			v[i-1] += opts.Step
		}
		clampInto(v, lower, upper)
		simplex[i] = v
	}
	for i, v := range simplex {
		fvals[i] = value(v)
		if math.IsNaN(fvals[i]) || math.IsInf(fvals[i], 0) {
			return Result{X: simplex[i], F: fvals[i], Message: ErrNonFinite.Error()}
		}
	}

	order := make([]int, n+1)
	iter := 0
	for ; iter < opts.MaxIterations; iter++ {
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return fvals[order[a]] < fvals[order[b]] })
		reordered := make([][]float64, n+1)
		reorderedF := make([]float64, n+1)
		for i, idx := range order {
			reordered[i] = simplex[idx]
			reorderedF[i] = fvals[idx]
		}
		simplex, fvals = reordered, reorderedF

		if converged(fvals, opts.Tol) {
			return Result{X: simplex[0], F: fvals[0], Iters: iter, Converged: true, Message: "converged: simplex spread"}
		}

		centroid := make([]float64, n)
		for i := 0; i < n; i++ { // all but the worst vertex
			for j := 0; j < n; j++ {
				centroid[j] += simplex[i][j]
			}
		}
		for j := range centroid {
			centroid[j] /= float64(n)
		}

		worst := simplex[n]
		fWorst := fvals[n]
		fBest := fvals[0]
		fSecondWorst := fvals[n-1]

		reflected := pointAt(centroid, worst, alpha, lower, upper)
		fReflected := value(reflected)
		if math.IsNaN(fReflected) || math.IsInf(fReflected, 0) {
			return Result{X: simplex[0], F: fvals[0], Iters: iter, Message: ErrNonFinite.Error()}
		}

		switch {
		case fReflected < fBest:
			expanded := pointAt(centroid, worst, alpha*gamma, lower, upper)
			fExpanded := value(expanded)
			if !math.IsNaN(fExpanded) && fExpanded < fReflected {
				simplex[n], fvals[n] = expanded, fExpanded
			} else {
				simplex[n], fvals[n] = reflected, fReflected
			}
		case fReflected < fSecondWorst:
			simplex[n], fvals[n] = reflected, fReflected
		default:
			var contracted []float64
			var fContracted float64
			if fReflected < fWorst {
				contracted = pointAt(centroid, worst, -rho*alpha, lower, upper)
				fContracted = value(contracted)
				if fContracted <= fReflected {
					simplex[n], fvals[n] = contracted, fContracted
					continue
				}
			} else {
				contracted = pointAt(centroid, worst, rho, lower, upper)
				fContracted = value(contracted)
				if fContracted < fWorst {
					simplex[n], fvals[n] = contracted, fContracted
					continue
				}
			}
			shrinkSimplex(simplex, fvals, sigma, lower, upper, value)
		}
	}

	best := 0
	for i, f := range fvals {
		if f < fvals[best] {
			best = i
		}
	}
	return Result{X: simplex[best], F: fvals[best], Iters: iter, Message: "max iterations reached"}
}

// pointAt returns centroid + coeff*(centroid-worst), clamped into bounds.
// Passing coeff=alpha gives the reflection point, coeff=alpha*gamma the
// expansion point, and a negative or sub-unity coeff a contraction point.
func pointAt(centroid, worst []float64, coeff float64, lower, upper []float64) []float64 {
	out := make([]float64, len(centroid))
	for i := range out {
		out[i] = centroid[i] + coeff*(centroid[i]-worst[i])
	}
	clampInto(out, lower, upper)
	return out
}

func shrinkSimplex(simplex [][]float64, fvals []float64, sigma float64, lower, upper []float64, value func([]float64) float64) {
	best := simplex[0]
	for i := 1; i < len(simplex); i++ {
		for j := range simplex[i] {
			simplex[i][j] = best[j] + sigma*(simplex[i][j]-best[j])
		}
		clampInto(simplex[i], lower, upper)
		fvals[i] = value(simplex[i])
	}
}

func clampInto(v, lower, upper []float64) {
	if lower == nil || upper == nil {
		return
	}
	for i := range v {
		if v[i] < lower[i] {
			v[i] = lower[i]
		} else if v[i] > upper[i] {
			v[i] = upper[i]
		}
	}
}

func converged(fvals []float64, tol float64) bool {
	var mean float64
	for _, f := range fvals {
		mean += f
	}
	mean /= float64(len(fvals))
	for _, f := range fvals {
		if math.Abs(f-mean) >= tol {
			return false
		}
	}
	return true
}
