// Package forecast implements the family of univariate forecasters named
// in the specification: baselines, ETS/AutoETS, the Theta family and
// AutoTheta, MSTL- and MFLES-based forecasters, intermittent-demand
// models, and the Holt/Holt-Winters/SES speed variants. Every model
// implements the same Forecaster capability (fit/forecast/fitted/
// residuals) as a concrete type rather than through an inheritance
// hierarchy; a Kind tag exists, and only the Croston variants branch on
// it. AutoX selectors hold a slice of concrete candidates they
// constructed themselves.
package forecast
