package metrics

import "math"

func checkEqualLen(name string, actual, predicted []float64) error {
	if len(actual) == 0 || len(predicted) == 0 {
		return invalidInputf("%s: empty input", name)
	}
	if len(actual) != len(predicted) {
		return invalidInputf("%s: length mismatch (%d actual vs %d predicted)", name, len(actual), len(predicted))
	}
	return nil
}

// MAE is the mean absolute error.
func MAE(actual, predicted []float64) (float64, error) {
	if err := checkEqualLen("MAE", actual, predicted); err != nil {
		return 0, err
	}
	var sum float64
	for i := range actual {
		sum += math.Abs(actual[i] - predicted[i])
	}
	return sum / float64(len(actual)), nil
}

// MSE is the mean squared error.
func MSE(actual, predicted []float64) (float64, error) {
	if err := checkEqualLen("MSE", actual, predicted); err != nil {
		return 0, err
	}
	var sum float64
	for i := range actual {
		d := actual[i] - predicted[i]
		sum += d * d
	}
	return sum / float64(len(actual)), nil
}

// RMSE is the square root of MSE.
func RMSE(actual, predicted []float64) (float64, error) {
	mse, err := MSE(actual, predicted)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAPE is the mean absolute percentage error, expressed as a fraction
// (0.10 = 10%). Returns ok=false ("undefined") when any actual value is
// zero, per spec.md §4.7.
func MAPE(actual, predicted []float64) (value float64, ok bool, err error) {
	if err = checkEqualLen("MAPE", actual, predicted); err != nil {
		return 0, false, err
	}
	var sum float64
	for i := range actual {
		if actual[i] == 0 {
			return 0, false, nil
		}
		sum += math.Abs((actual[i] - predicted[i]) / actual[i])
	}
	return sum / float64(len(actual)), true, nil
}

// SMAPE is the symmetric mean absolute percentage error, expressed as a
// percentage (0-200 scale). A step where actual and predicted are both
// exactly zero contributes no error (a correct prediction of zero) and is
// excluded from the averaging count rather than forced to 0/0; SMAPE is
// undefined only when every step is such a zero/zero pair, leaving nothing
// to average.
func SMAPE(actual, predicted []float64) (value float64, ok bool, err error) {
	if err = checkEqualLen("sMAPE", actual, predicted); err != nil {
		return 0, false, err
	}
	var sum float64
	var count int
	for i := range actual {
		denom := math.Abs(actual[i]) + math.Abs(predicted[i])
		if denom == 0 {
			continue
		}
		sum += math.Abs(actual[i]-predicted[i]) / denom
		count++
	}
	if count == 0 {
		return 0, false, nil
	}
	return 200 * sum / float64(count), true, nil
}

// MASE is the mean absolute scaled error: MAE(actual, predicted) divided
// by the mean absolute error of a baseline vector (e.g. a naive in-sample
// forecast). Returns ok=false when the baseline's mean absolute error is
// zero (no nonzero baseline error to scale against).
func MASE(actual, predicted, baselineErrors []float64) (value float64, ok bool, err error) {
	if err = checkEqualLen("MASE", actual, predicted); err != nil {
		return 0, false, err
	}
	if len(baselineErrors) == 0 {
		return 0, false, invalidInputf("MASE: empty baseline")
	}
	var scale float64
	for _, e := range baselineErrors {
		scale += math.Abs(e)
	}
	scale /= float64(len(baselineErrors))
	if scale == 0 {
		return 0, false, nil
	}
	mae, err := MAE(actual, predicted)
	if err != nil {
		return 0, false, err
	}
	return mae / scale, true, nil
}

// R2 is the coefficient of determination. Returns ok=false when actual has
// zero variance (undefined, not a division-by-zero NaN).
func R2(actual, predicted []float64) (value float64, ok bool, err error) {
	if err = checkEqualLen("R2", actual, predicted); err != nil {
		return 0, false, err
	}
	n := float64(len(actual))
	var mean float64
	for _, a := range actual {
		mean += a
	}
	mean /= n

	var ssTot, ssRes float64
	for i := range actual {
		ssTot += (actual[i] - mean) * (actual[i] - mean)
		ssRes += (actual[i] - predicted[i]) * (actual[i] - predicted[i])
	}
	if ssTot == 0 {
		return 0, false, nil
	}
	return 1 - ssRes/ssTot, true, nil
}

// Bias is the mean signed error (predicted - actual); positive means the
// forecaster over-predicts on average.
func Bias(actual, predicted []float64) (float64, error) {
	if err := checkEqualLen("Bias", actual, predicted); err != nil {
		return 0, err
	}
	var sum float64
	for i := range actual {
		sum += predicted[i] - actual[i]
	}
	return sum / float64(len(actual)), nil
}

// Coverage is the fraction of actuals falling within [lower, upper]
// inclusive.
func Coverage(actual, lower, upper []float64) (float64, error) {
	if err := checkEqualLen("Coverage", actual, lower); err != nil {
		return 0, err
	}
	if len(upper) != len(actual) {
		return 0, invalidInputf("Coverage: length mismatch (%d actual vs %d upper)", len(actual), len(upper))
	}
	var hits int
	for i := range actual {
		if actual[i] >= lower[i] && actual[i] <= upper[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(actual)), nil
}

// IntervalWidth is the mean of (upper - lower).
func IntervalWidth(lower, upper []float64) (float64, error) {
	if err := checkEqualLen("IntervalWidth", lower, upper); err != nil {
		return 0, err
	}
	var sum float64
	for i := range lower {
		sum += upper[i] - lower[i]
	}
	return sum / float64(len(lower)), nil
}

// QuantileLoss is the pinball loss at quantile level q in (0,1):
// mean[max(q*(actual-pred), (q-1)*(actual-pred))].
func QuantileLoss(actual, predicted []float64, q float64) (float64, error) {
	if err := checkEqualLen("QuantileLoss", actual, predicted); err != nil {
		return 0, err
	}
	if q <= 0 || q >= 1 {
		return 0, invalidInputf("QuantileLoss: quantile level must be in (0,1), got %v", q)
	}
	var sum float64
	for i := range actual {
		diff := actual[i] - predicted[i]
		sum += math.Max(q*diff, (q-1)*diff)
	}
	return sum / float64(len(actual)), nil
}

// RMAE is MAE(actual,predicted1)/MAE(actual,predicted2), the ratio metric
// named in spec.md §4.7's body text. Returns ok=false when the denominator
// MAE is zero.
func RMAE(actual, predicted1, predicted2 []float64) (value float64, ok bool, err error) {
	mae1, err := MAE(actual, predicted1)
	if err != nil {
		return 0, false, err
	}
	mae2, err := MAE(actual, predicted2)
	if err != nil {
		return 0, false, err
	}
	if mae2 == 0 {
		return 0, false, nil
	}
	return mae1 / mae2, true, nil
}
