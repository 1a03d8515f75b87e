package transform

// Transformer is the capability every preprocessing step implements:
// Fit derives parameters from a series (mean/std, min/max, a BoxCox
// lambda, ...); Transform and InverseTransform are then pure functions of
// those fitted parameters. Calling Fit a second time on an already-fitted
// transformer is a misuse error, matching §3's "Pipelines own their
// fitted transformers; attempting to fit twice is a misuse error."
type Transformer interface {
	Fit(values []float64) error
	Transform(values []float64) ([]float64, error)
	InverseTransform(values []float64) ([]float64, error)
}

// FitTransform is a convenience wrapper: Fit(values) then Transform(values).
func FitTransform(t Transformer, values []float64) ([]float64, error) {
	if err := t.Fit(values); err != nil {
		return nil, err
	}
	return t.Transform(values)
}
