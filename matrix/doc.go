// Package matrix provides a dense, row-major linear algebra primitive
// (Dense) and the small set of numeric kernels the forecasting engine
// actually needs on top of it: LU decomposition, inversion, multiply,
// transpose and scale for normal-equations regression, elementwise
// transforms, and descriptive statistics (covariance, correlation).
//
// The matrix package provides:
//
//   - Dense, a bounds-checked, policy-configurable 2-D float64 array with
//     O(1) At/Set and O(rows*cols) Clone.
//   - Mul, Transpose, Scale, MatVec, LU and Inverse as free functions over
//     the Matrix interface, backing ordinary least-squares fits via the
//     normal equations.
//   - Elementwise kernels (broadcast subtract, scale, clip, replace
//     NaN/Inf, AllClose) with Dense fast paths and a generic Matrix
//     fallback.
//   - Statistics (mean, covariance, correlation); the correlation distance
//     in the cluster package uses Correlation.
//
// Dense matrices back the unweighted least-squares fits in decompose.Detrend
// and forecast.MFLES, correlation and distance-matrix storage in
// clustering; the numeric policy (WithAllowInfDistances) lets a distance
// matrix use +Inf as an explicit "unreachable" sentinel.
package matrix
