// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense's numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Numeric policy is the only concern here: validateNaNInf controls whether
// Set()/ingestion rejects NaN/Inf at all, and allowInfDistances is a narrow
// exception for +Inf as "unreachable" in distance matrices (used by
// cluster.BuildDistanceMatrix).
package matrix

// Numeric policy defaults.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (symmetry, zero-diagonal, near-equality).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultAllowInfDistances permits +Inf values to represent "unreachable" in
	// distance-policy matrices (e.g. a DTW distance between two unrelated
	// series groups, or an explicit sentinel in cluster.BuildDistanceMatrix).
	//
	// IMPORTANT: this is not a "dirty-data" mode. When ValidateNaNInf is
	// enabled, NaN and -Inf are still rejected; only +Inf is allowed.
	DefaultAllowInfDistances = false
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Its fields are unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps               float64 // >= 0; DefaultEpsilon
	validateNaNInf    bool    // DefaultValidateNaNInf
	allowInfDistances bool    // DefaultAllowInfDistances (+Inf as "unreachable")
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Panics if eps is not finite or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if eps < 0 || eps != eps || eps > maxFiniteEpsilon() {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on Set/ingestion.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInfDistances permits +Inf entries to represent "unreachable" in
// distance-policy matrices. NaN and -Inf remain rejected when
// ValidateNaNInf is enabled.
// Complexity: O(1).
func WithAllowInfDistances() Option {
	return func(o *Options) { o.allowInfDistances = true }
}

// WithDisallowInfDistances reverts WithAllowInfDistances (the default).
// Complexity: O(1).
func WithDisallowInfDistances() Option {
	return func(o *Options) { o.allowInfDistances = false }
}

// maxFiniteEpsilon guards WithEpsilon against +Inf without importing math
// just for this one comparison; any value failing eps == eps (NaN) or a
// subtraction-from-itself check indicates non-finite input.
func maxFiniteEpsilon() float64 {
	const hugeButFinite = 1e300
	return hugeButFinite
}

// defaultOptions returns the documented defaults (single source of truth).
// Complexity: O(1).
func defaultOptions() Options {
	return Options{
		eps:               DefaultEpsilon,
		validateNaNInf:    DefaultValidateNaNInf,
		allowInfDistances: DefaultAllowInfDistances,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// NewPreparedDense allocates an r x c zero Dense matrix with the given
// numeric policy applied (validateNaNInf, allowInfDistances). Most callers
// that do not need a custom policy should use NewDense directly.
// Complexity: O(r*c) time and memory.
func NewPreparedDense(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	m, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, err
	}
	m.allowInfDistances = o.allowInfDistances

	return m, nil
}
