package features

import "sync"

// Registry is a lazily-built, read-after-init-immutable catalog mapping
// feature name to calculator + default parameters, per spec.md §5
// ("Feature registry is a lazily-initialized, read-after-init-immutable
// catalog of feature definitions. Threads must not mutate registry after
// first use."). The catalog is built once behind a sync.Once; after that
// first build it is read-only, so concurrent ComputeFeatures calls across
// series never take a lock.
var (
	registryOnce  sync.Once
	registryTable map[string]entry
)

func registry() map[string]entry {
	registryOnce.Do(func() {
		registryTable = buildRegistry()
	})
	return registryTable
}

// Names returns every registered feature name, for host-side introspection
// (e.g. listing available features to a query planner).
func Names() []string {
	tbl := registry()
	out := make([]string, 0, len(tbl))
	for name := range tbl {
		out = append(out, name)
	}
	return out
}

// ComputeFeatures evaluates every request in cfg in order against values,
// applying each calculator's default parameters for any key the request
// omits. Fails with ErrInvalidParameter on an unregistered feature name.
func ComputeFeatures(values []float64, timeAxis []float64, cfg FeatureConfig) ([]FeatureResult, error) {
	tbl := registry()
	out := make([]FeatureResult, 0, len(cfg))
	for _, req := range cfg {
		e, ok := tbl[req.Name]
		if !ok {
			return nil, invalidParamf("unregistered feature name %q", req.Name)
		}
		params := mergeParams(e.defaults, req.Params)
		value, isNaN := e.calc(values, params)
		out = append(out, FeatureResult{Name: req.Name, Value: value, IsNaN: isNaN})
	}
	return out, nil
}

// mergeParams overlays overrides on top of defaults without mutating
// either input map.
func mergeParams(defaults, overrides FeatureParams) FeatureParams {
	merged := make(FeatureParams, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
