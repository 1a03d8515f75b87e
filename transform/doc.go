// Package transform implements the preprocessing transformers of spec.md
// §4.8: scalers (MinMax, Standard), power transforms (BoxCox, YeoJohnson,
// Log, Logit), LinearInterpolator, and a Pipeline that composes
// transformers in order and applies their inverse to forecasts (point and
// interval bands alike) in reverse order.
package transform
