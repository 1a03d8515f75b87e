// Package numeric provides the shared numerical primitives used by every
// higher layer of the forecasting engine: stable reductions (log-sum-exp,
// Student-t log-pdf), descriptive statistics (mean, variance, MAD, ACF),
// a partial-sort median, Siegel repeated-median robust regression, a
// tricube-kernel LOESS smoother, and an autocovariance-based periodogram.
//
// Every function here is pure. LOESS accepts a caller-owned weights buffer
// for reuse across calls; Periodogram allocates its power array per call.
// Nothing in this package retains state between calls.
package numeric
