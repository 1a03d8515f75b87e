// Package changepoint implements a Bayesian online changepoint detector
// (BOCPD) over a Normal-Gamma conjugate prior, following Adams & MacKay's
// run-length posterior recursion. The detector is immutable configuration;
// each Detect call owns a fresh working buffer, so one Detector value can
// be shared across concurrent calls.
package changepoint
