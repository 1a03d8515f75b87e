package forecast

// Params is a string-keyed parameter map (spec.md §6), with typed accessors
// and an unknown-key check (allowedKeys) that reports an InvalidParameter
// error. The forecasters in this package are configured through their
// typed config structs and constructors; none of them reads a Params, so
// no model-level key check runs.
type Params map[string]any

// allowedKeys fails with ErrInvalidParameter on the first key in p that is
// not present in allowed.
func allowedKeys(p Params, allowed ...string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		set[k] = struct{}{}
	}
	for k := range p {
		if _, ok := set[k]; !ok {
			return invalidParamf("unknown parameter key %q", k)
		}
	}
	return nil
}

func (p Params) float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	default:
		return 0, invalidParamf("parameter %q must be numeric", key)
	}
}

func (p Params) int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case float64:
		return int(x), nil
	default:
		return 0, invalidParamf("parameter %q must be an integer", key)
	}
}

func (p Params) str(key, def string) (string, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidParamf("parameter %q must be a string", key)
	}
	return s, nil
}

func (p Params) boolean(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, invalidParamf("parameter %q must be a boolean", key)
	}
	return b, nil
}
