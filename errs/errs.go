// Package errs defines the sentinel error kinds shared by every layer of
// the forecasting engine, so a host can errors.Is(err, errs.ErrX)
// regardless of which package produced it.
package errs

import "errors"

var (
	// ErrInvalidParameter marks an out-of-range smoothing coefficient, a
	// period < 2, an unknown model name, an unknown parameter key, or a
	// negative horizon.
	ErrInvalidParameter = errors.New("tsforecast: invalid parameter")

	// ErrInsufficientData marks n too small for the requested model (e.g.
	// n < 2p for seasonal models, n < 3 for any fit).
	ErrInsufficientData = errors.New("tsforecast: insufficient data")

	// ErrDegenerate marks a constant series for a multiplicative form, all-zero
	// innovations, or a singular linear system.
	ErrDegenerate = errors.New("tsforecast: degenerate input")

	// ErrNumericalFailure marks NaN/Inf produced mid-fit, a failed line
	// search, or an optimizer that exceeded its iteration budget without
	// converging beyond a minimal improvement threshold.
	ErrNumericalFailure = errors.New("tsforecast: numerical failure")
)
