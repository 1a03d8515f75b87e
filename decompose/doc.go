// Package decompose splits a series into trend, seasonal and remainder
// components (STL, MSTL), fits polynomial trends (Detrend), and estimates
// dominant periods via a family of period-detection heuristics.
//
// All functions here are pure: callers own their input and output slices.
// MSTL calls STL afresh for every period on every outer pass; no
// decomposer state is kept between calls.
package decompose
