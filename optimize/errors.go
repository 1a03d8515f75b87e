package optimize

import "errors"

// ErrNoProgress is returned when the line search cannot find a step that
// reduces the objective value, typically signalling a flat or ill-scaled
// objective near the current point.
var ErrNoProgress = errors.New("optimize: line search made no progress")

// ErrNonFinite is reported when the objective at the starting point, a
// reflected simplex vertex, or an accepted L-BFGS step's value or gradient
// is NaN or Inf; the solver stops there. Non-finite trial points inside
// LBFGSB's line search only shrink the step, and a NaN NelderMead
// expansion falls back to the reflected point.
var ErrNonFinite = errors.New("optimize: objective or gradient is non-finite")
