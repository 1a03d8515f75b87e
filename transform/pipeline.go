package transform

// Pipeline composes Transformers in order. Fit runs each transformer's Fit
// against the output of the previous one's Transform and locks the
// pipeline: AddTransformer fails once Fit has been called, matching §3's
// Pipeline lifecycle rule.
type Pipeline struct {
	transformers []Transformer
	fitted       bool
}

// NewPipeline returns an empty, unfitted Pipeline.
func NewPipeline() *Pipeline { return &Pipeline{} }

// AddTransformer appends t to the pipeline. Fails once the pipeline has
// been fitted.
func (p *Pipeline) AddTransformer(t Transformer) error {
	if p.fitted {
		return misusef("Pipeline: AddTransformer after Fit")
	}
	p.transformers = append(p.transformers, t)
	return nil
}

// Fit fits each transformer in order against the running transform of
// values, then locks the pipeline against further AddTransformer calls.
func (p *Pipeline) Fit(values []float64) error {
	if p.fitted {
		return misusef("Pipeline: already fitted")
	}
	cur := values
	for _, t := range p.transformers {
		if err := t.Fit(cur); err != nil {
			return err
		}
		out, err := t.Transform(cur)
		if err != nil {
			return err
		}
		cur = out
	}
	p.fitted = true
	return nil
}

// Transform applies every fitted transformer in order.
func (p *Pipeline) Transform(values []float64) ([]float64, error) {
	if !p.fitted {
		return nil, misusef("Pipeline: Transform before Fit")
	}
	cur := values
	for _, t := range p.transformers {
		out, err := t.Transform(cur)
		if err != nil {
			return nil, err
		}
		cur = out
	}
	return cur, nil
}

// InverseTransform applies every fitted transformer's inverse in reverse
// order.
func (p *Pipeline) InverseTransform(values []float64) ([]float64, error) {
	if !p.fitted {
		return nil, misusef("Pipeline: InverseTransform before Fit")
	}
	cur := values
	for i := len(p.transformers) - 1; i >= 0; i-- {
		out, err := p.transformers[i].InverseTransform(cur)
		if err != nil {
			return nil, err
		}
		cur = out
	}
	return cur, nil
}

// InverseTransformForecast applies InverseTransform identically to a point
// forecast and its lower/upper interval bands, per spec.md §4.8:
// "Inverse-transform of forecasts applies each transformer's inverse in
// reverse order across point forecast and interval bands identically."
func (p *Pipeline) InverseTransformForecast(point, lower, upper []float64) (invPoint, invLower, invUpper []float64, err error) {
	invPoint, err = p.InverseTransform(point)
	if err != nil {
		return nil, nil, nil, err
	}
	invLower, err = p.InverseTransform(lower)
	if err != nil {
		return nil, nil, nil, err
	}
	invUpper, err = p.InverseTransform(upper)
	if err != nil {
		return nil, nil, nil, err
	}
	return invPoint, invLower, invUpper, nil
}
