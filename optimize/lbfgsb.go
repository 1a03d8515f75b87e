package optimize

import (
	"fmt"
	"math"
)

// LBFGSB minimizes obj over [lower, upper] (element-wise box constraints)
// starting at x0, using a limited-memory BFGS two-loop recursion with
// gradient projection for active bounds and a backtracking line search.
//
// x0, lower and upper must have equal, non-zero length; bounds are applied
// by clamping x0 into range before the first evaluation.
func LBFGSB(obj Objective, x0, lower, upper []float64, opts LBFGSBOptions) Result {
	n := len(x0)
	x := make([]float64, n)
	copy(x, x0)
	project(x, lower, upper)

	grad := make([]float64, n)
	projGrad := make([]float64, n)

	history := make([]correctionPair, 0, opts.Memory)

	f := obj.Value(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Result{X: x, F: f, Message: ErrNonFinite.Error()}
	}
	obj.Gradient(x, grad)

	prevF := f
	for iter := 0; iter < opts.MaxIterations; iter++ {
		projectedGradientNorm(x, grad, lower, upper, projGrad)
		if infNorm(projGrad) < opts.GradTol {
			return Result{X: x, F: f, Iters: iter, Converged: true, Message: "converged: gradient tolerance"}
		}

		direction := twoLoopRecursion(grad, history)
		zeroActiveBoundDirections(direction, x, lower, upper, grad)

		step, newX, newF, ok := backtrackingLineSearch(obj, x, f, grad, direction, lower, upper)
		if !ok {
			return Result{X: x, F: f, Iters: iter, Message: ErrNoProgress.Error()}
		}
		if math.IsNaN(newF) || math.IsInf(newF, 0) {
			return Result{X: x, F: f, Iters: iter, Message: ErrNonFinite.Error()}
		}

		newGrad := make([]float64, n)
		obj.Gradient(newX, newGrad)
		for _, g := range newGrad {
			if math.IsNaN(g) || math.IsInf(g, 0) {
				return Result{X: x, F: f, Iters: iter, Message: ErrNonFinite.Error()}
			}
		}

		s := make([]float64, n)
		y := make([]float64, n)
		for i := 0; i < n; i++ {
			s[i] = newX[i] - x[i]
			y[i] = newGrad[i] - grad[i]
		}
		if curvatureOK(s, y) {
			history = append(history, correctionPair{s, y})
			if len(history) > opts.Memory {
				history = history[1:]
			}
		}

		x, grad = newX, newGrad
		if math.Abs(f-newF) < opts.FuncTol*math.Max(1, math.Abs(f)) {
			f = newF
			return Result{X: x, F: f, Iters: iter + 1, Converged: true, Message: "converged: function tolerance"}
		}
		prevF, f = f, newF
		_ = prevF
		_ = step
	}

	return Result{X: x, F: f, Iters: opts.MaxIterations, Message: "max iterations reached"}
}

func project(x, lower, upper []float64) {
	for i := range x {
		if x[i] < lower[i] {
			x[i] = lower[i]
		} else if x[i] > upper[i] {
			x[i] = upper[i]
		}
	}
}

// projectedGradientNorm writes, into dst, the component of grad that would
// actually move x (zero where x sits on a bound and grad points further
// outward).
func projectedGradientNorm(x, grad, lower, upper, dst []float64) {
	for i := range x {
		g := grad[i]
		if x[i] <= lower[i] && g > 0 {
			g = 0
		} else if x[i] >= upper[i] && g < 0 {
			g = 0
		}
		dst[i] = g
	}
}

func infNorm(v []float64) float64 {
	var m float64
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}

// correctionPair holds one (s, y) curvature pair for the L-BFGS two-loop
// recursion: s is the step taken, y is the resulting gradient change.
type correctionPair struct{ s, y []float64 }

// twoLoopRecursion computes the descent direction -H*grad via the standard
// L-BFGS two-loop recursion, falling back to steepest descent when no
// curvature pairs have been accepted yet.
func twoLoopRecursion(grad []float64, history []correctionPair) []float64 {
	n := len(grad)
	q := make([]float64, n)
	copy(q, grad)

	m := len(history)
	alpha := make([]float64, m)
	rho := make([]float64, m)

	for i := m - 1; i >= 0; i-- {
		s, y := history[i].s, history[i].y
		sy := dot(s, y)
		if sy == 0 {
			rho[i] = 0
			continue
		}
		rho[i] = 1 / sy
		alpha[i] = rho[i] * dot(s, q)
		for j := range q {
			q[j] -= alpha[i] * y[j]
		}
	}

	gamma := 1.0
	if m > 0 {
		s, y := history[m-1].s, history[m-1].y
		yy := dot(y, y)
		if yy != 0 {
			gamma = dot(s, y) / yy
		}
	}
	for j := range q {
		q[j] *= gamma
	}

	for i := 0; i < m; i++ {
		s, y := history[i].s, history[i].y
		if rho[i] == 0 {
			continue
		}
		beta := rho[i] * dot(y, q)
		for j := range q {
			q[j] += s[j] * (alpha[i] - beta)
		}
	}

	direction := make([]float64, n)
	for i := range direction {
		direction[i] = -q[i]
	}
	return direction
}

func zeroActiveBoundDirections(direction, x, lower, upper, grad []float64) {
	for i := range direction {
		if x[i] <= lower[i] && grad[i] > 0 {
			direction[i] = 0
		} else if x[i] >= upper[i] && grad[i] < 0 {
			direction[i] = 0
		}
	}
}

func curvatureOK(s, y []float64) bool {
	return dot(s, y) > 1e-12
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// backtrackingLineSearch performs an Armijo backtracking search along
// direction, clamping every trial point into bounds before evaluation.
func backtrackingLineSearch(obj Objective, x []float64, f0 float64, grad, direction, lower, upper []float64) (step float64, newX []float64, newF float64, ok bool) {
	const (
		c1       = 1e-4
		shrink   = 0.5
		minStep  = 1e-16
		maxTries = 50
	)
	n := len(x)
	slope := dot(grad, direction)
	step = 1.0
	trial := make([]float64, n)

	for try := 0; try < maxTries; try++ {
		for i := 0; i < n; i++ {
			trial[i] = x[i] + step*direction[i]
		}
		project(trial, lower, upper)
		fTrial := obj.Value(trial)
		if !math.IsNaN(fTrial) && !math.IsInf(fTrial, 0) && fTrial <= f0+c1*step*slope {
			return step, trial, fTrial, true
		}
		step *= shrink
		if step < minStep {
			break
		}
	}
	return 0, nil, 0, false
}

// String implements fmt.Stringer for Result, useful in log lines.
func (r Result) String() string {
	return fmt.Sprintf("Result{F=%g, Iters=%d, Converged=%v, Message=%q}", r.F, r.Iters, r.Converged, r.Message)
}
