// Package validate implements the rolling/expanding window splitter,
// model-agnostic backtester, and AutoSelector ranking of spec.md §4.6. The
// backtester's documented contract (§4.6, testable property/scenario D in
// §8) is that aggregate metrics are computed once against the
// concatenation of every fold's actual/predicted vectors, not as a mean of
// per-fold metrics.
package validate
