// Package metrics implements the stateless accuracy functions of spec.md
// §4.7: point-forecast error measures (MAE, MSE, RMSE, MAPE, sMAPE, MASE,
// R², bias), interval measures (coverage, quantile loss, interval width),
// and the ratio metric RMAE. Every function takes equal-length actual/
// predicted vectors and returns either a float64 or, where the metric's
// definition has an undefined case (a zero denominator), an (float64, ok)
// pair with ok=false meaning "undefined" rather than NaN — spec.md §4.7
// is explicit that undefined is a distinct outcome from a numeric zero.
package metrics
