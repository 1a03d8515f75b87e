// Package features implements the named time-series feature registry of
// spec.md §4.9 (a lazily-initialized, read-after-init-immutable catalog
// mapping a feature name to a calculator and default parameters) plus the
// public ComputeFeatures entry point. Calculators cover statistical
// moments, autocorrelation- and entropy-derived signals, trend/seasonal
// strength (delegating to decompose), stability/crossing counts, and
// intermittency ratio; parameterized variants (multiple lags, multiple
// window sizes) multiply a smaller set of calculators out to the
// catalog's full name list, matching spec.md §3's "(feature name, optional
// parameter map)" request shape.
package features
