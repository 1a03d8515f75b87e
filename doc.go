// Package tsforecast is a time-series forecasting and analysis engine:
// given one or many equally-spaced univariate numeric series, it produces
// probabilistic forecasts, seasonal decompositions, changepoint
// probabilities, feature vectors, and accuracy metrics.
//
// The engine is designed to run embedded inside a host that dispatches
// work per group (one series at a time); every exported type here takes
// plain []float64/[]time.Time slices and returns owned result slices, with
// no shared mutable state between calls.
//
// Layering, bottom-up (higher layers depend only on lower ones):
//
//	numeric/    — vector math, robust median/regression, LOESS, periodogram
//	optimize/   — bounded L-BFGS, Nelder-Mead, ETS/Theta objectives
//	decompose/  — STL, MSTL, detrending, seasonal period detection
//	forecast/   — baselines, ETS/AutoETS, Theta/AutoTheta, MSTL, MFLES,
//	              intermittent-demand models, Holt/Holt-Winters/SES
//	changepoint/ — Bayesian online changepoint detection (BOCPD)
//	features/   — named time-series feature registry
//	cluster/    — distance matrices (Euclidean/DTW/correlation) + DBSCAN
//	validate/   — rolling/expanding CV splitter, backtester, AutoSelector
//	metrics/    — MAE, RMSE, MAPE, sMAPE, MASE, coverage, quantile loss, ...
//	transform/  — scalers, BoxCox, YeoJohnson, log/logit, interpolation
//
// matrix/ and dtw/ are shared, domain-agnostic numerical primitives: dense
// linear algebra (used by detrending and MFLES least-squares fits) and dynamic
// time warping distance (used as an alternative metric in cluster/).
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full
// component-by-component design and grounding notes.
package tsforecast
