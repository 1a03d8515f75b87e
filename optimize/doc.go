// Package optimize provides the two local-search routines used to fit
// model parameters throughout the forecasting engine: a bounds-constrained
// L-BFGS for objectives with analytical or numerical gradients (ETS), and a
// derivative-free Nelder-Mead simplex for non-smooth objectives (Theta MSE,
// SES alpha search).
//
// Both routines are pure functions over a caller-supplied Objective; neither
// keeps package-level state, so concurrent fits of independent series never
// interfere with each other.
package optimize
