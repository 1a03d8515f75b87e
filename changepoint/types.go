package changepoint

import "math"

// HazardKind selects the hazard function family (spec.md §4.5).
type HazardKind int

const (
	// HazardConstant uses h_r = clamp(1/Lambda, 1e-6, 0.999) for every run
	// length r, the memoryless "geometric run length" hazard.
	HazardConstant HazardKind = iota
	// HazardLogistic uses h_r = sigmoid(H0 + A*(r-B)), letting the
	// changepoint probability grow or shrink with run length.
	HazardLogistic
)

// HazardModel configures the per-run-length changepoint probability.
type HazardModel struct {
	Kind HazardKind
	// Lambda is the expected run length under HazardConstant.
	Lambda float64
	// H0, A, B parameterize HazardLogistic: sigmoid(H0 + A*(r-B)).
	H0, A, B float64
}

// ConstantHazard builds a HazardConstant model with the given expected run
// length lambda.
func ConstantHazard(lambda float64) HazardModel {
	return HazardModel{Kind: HazardConstant, Lambda: lambda}
}

// LogisticHazard builds a HazardLogistic model.
func LogisticHazard(h0, a, b float64) HazardModel {
	return HazardModel{Kind: HazardLogistic, H0: h0, A: a, B: b}
}

const (
	minHazard = 1e-6
	maxHazard = 0.999
)

func clampHazard(h float64) float64 {
	if h < minHazard {
		return minHazard
	}
	if h > maxHazard {
		return maxHazard
	}
	return h
}

func (h HazardModel) at(r int) float64 {
	switch h.Kind {
	case HazardLogistic:
		z := h.H0 + h.A*(float64(r)-h.B)
		return clampHazard(1 / (1 + math.Exp(-z)))
	default:
		lambda := h.Lambda
		if lambda <= 0 {
			lambda = 100
		}
		return clampHazard(1 / lambda)
	}
}

// NormalGammaPrior is the conjugate prior over (mean, precision) for an
// assumed-Normal observation model: (mu0, kappa0, alpha0, beta0).
// spec.md §3's documented default is (0,1,1,1).
type NormalGammaPrior struct {
	Mu0, Kappa0, Alpha0, Beta0 float64
}

// DefaultNormalGammaPrior returns the (0,1,1,1) default named in spec.md §3.
func DefaultNormalGammaPrior() NormalGammaPrior {
	return NormalGammaPrior{Mu0: 0, Kappa0: 1, Alpha0: 1, Beta0: 1}
}

// normalGammaUpdate applies the standard Normal-Gamma conjugate posterior
// update given one new observation x.
func normalGammaUpdate(mu, kappa, alpha, beta, x float64) (newMu, newKappa, newAlpha, newBeta float64) {
	newKappa = kappa + 1
	newMu = (kappa*mu + x) / newKappa
	newAlpha = alpha + 0.5
	newBeta = beta + kappa*(x-mu)*(x-mu)/(2*newKappa)
	return newMu, newKappa, newAlpha, newBeta
}

// predictiveParams derives the Student-t posterior-predictive location,
// scale^2, and degrees of freedom from one run's sufficient statistics
// (spec.md §4.1: "scale^2 = beta(kappa+1)/(alpha*kappa)").
func predictiveParams(mu, kappa, alpha, beta float64) (loc, scale2, nu float64) {
	return mu, beta * (kappa + 1) / (alpha * kappa), 2 * alpha
}

// Config configures one BOCPD detector.
type Config struct {
	Hazard HazardModel
	Prior  NormalGammaPrior
	// MaxRunLength is a hard memory cap on the run-length posterior
	// vector; growth mass beyond it is discarded.
	MaxRunLength int
	// IncludeProbabilities, if true, has Detect populate Result.Probabilities
	// with exp(new_log[0]) at every timestep.
	IncludeProbabilities bool
}

// DefaultConfig returns Constant(lambda=100) hazard, the (0,1,1,1) prior,
// MaxRunLength=500, and probabilities disabled.
func DefaultConfig() Config {
	return Config{
		Hazard:       ConstantHazard(100),
		Prior:        DefaultNormalGammaPrior(),
		MaxRunLength: 500,
	}
}

func (c Config) validate() error {
	if c.MaxRunLength < 1 {
		return invalidParamf("MaxRunLength must be >= 1, got %d", c.MaxRunLength)
	}
	if c.Prior.Kappa0 <= 0 || c.Prior.Alpha0 <= 0 || c.Prior.Beta0 <= 0 {
		return invalidParamf("NormalGammaPrior kappa0/alpha0/beta0 must be > 0")
	}
	return nil
}

// Result is the output of a Detect call: sorted unique changepoint
// indices (with index 0 and n-1 appended per spec.md §4.5), and optional
// per-index changepoint probabilities.
type Result struct {
	Indices       []int
	Probabilities []float64 // nil unless Config.IncludeProbabilities
}
