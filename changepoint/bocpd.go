package changepoint

import (
	"math"
	"sort"

	"github.com/DataZooDE/anofox-forecast-sub014/numeric"
)

// Detector runs Bayesian online changepoint detection under fixed,
// immutable configuration. Detect owns a fresh working buffer per call, so
// one Detector can be shared across concurrent Detect calls.
type Detector struct {
	cfg Config
}

// NewDetector validates cfg and returns a Detector.
func NewDetector(cfg Config) (*Detector, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Detector{cfg: cfg}, nil
}

type runStats struct {
	mu, kappa, alpha, beta float64
}

// Detect runs the BOCPD recursion over values, returning sorted unique
// changepoint indices (always including 0 and n-1) and, if configured,
// per-index changepoint probabilities.
func (d *Detector) Detect(values []float64) (Result, error) {
	n := len(values)
	if n == 0 {
		return Result{}, nil
	}
	if n == 1 {
		return Result{Indices: []int{0}}, nil
	}
	if allZeroOrNonFinite(values) {
		return Result{Indices: []int{0, n - 1}}, nil
	}

	rMax := d.cfg.MaxRunLength
	prior := d.cfg.Prior

	logRun := []float64{0} // log(1) for r=0
	stats := []runStats{{mu: prior.Mu0, kappa: prior.Kappa0, alpha: prior.Alpha0, beta: prior.Beta0}}
	mapPrev := 0

	var changepoints []int
	var probs []float64
	if d.cfg.IncludeProbabilities {
		probs = make([]float64, n)
	}

	for t := 0; t < n; t++ {
		x := values[t]
		m := len(logRun)

		logPred := make([]float64, m)
		hazard := make([]float64, m)
		for r := 0; r < m; r++ {
			s := stats[r]
			loc, scale2, nu := predictiveParams(s.mu, s.kappa, s.alpha, s.beta)
			logPred[r] = numeric.StudentTLogPDF(x, loc, scale2, nu)
			hazard[r] = d.cfg.Hazard.at(r)
		}

		newSize := m + 1
		if newSize > rMax+1 {
			newSize = rMax + 1
		}
		newLog := make([]float64, newSize)
		for i := range newLog {
			newLog[i] = math.Inf(-1)
		}
		newStats := make([]runStats, newSize)

		var cpTerms []float64
		for r := 0; r < m; r++ {
			growthLogProb := logRun[r] + logPred[r] + math.Log1p(-hazard[r])
			cpTerms = append(cpTerms, logRun[r]+logPred[r]+math.Log(hazard[r]))

			if r+1 < newSize {
				newLog[r+1] = numeric.LogSumExp(newLog[r+1], growthLogProb)
				s := stats[r]
				mu, kappa, alpha, beta := normalGammaUpdate(s.mu, s.kappa, s.alpha, s.beta, x)
				newStats[r+1] = runStats{mu: mu, kappa: kappa, alpha: alpha, beta: beta}
			}
		}

		newLog[0] = numeric.LogSumExpVec(cpTerms)
		mu0, kappa0, alpha0, beta0 := normalGammaUpdate(prior.Mu0, prior.Kappa0, prior.Alpha0, prior.Beta0, x)
		newStats[0] = runStats{mu: mu0, kappa: kappa0, alpha: alpha0, beta: beta0}

		total := numeric.LogSumExpVec(newLog)
		if !math.IsInf(total, -1) {
			for i := range newLog {
				newLog[i] -= total
			}
		}

		mapT := argmax(newLog)
		if mapT < mapPrev {
			idx := t - mapT
			if idx < 0 {
				idx = 0
			}
			changepoints = append(changepoints, idx)
		}
		mapPrev = mapT

		if probs != nil {
			probs[t] = math.Exp(newLog[0])
		}

		logRun = newLog
		stats = newStats
	}

	changepoints = append(changepoints, 0, n-1)
	indices := dedupSorted(changepoints)

	return Result{Indices: indices, Probabilities: probs}, nil
}

func argmax(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}

func allZeroOrNonFinite(xs []float64) bool {
	allZero := true
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
		if x != 0 {
			allZero = false
		}
	}
	return allZero
}

func dedupSorted(xs []int) []int {
	sort.Ints(xs)
	out := xs[:0:0]
	for i, x := range xs {
		if i == 0 || x != xs[i-1] {
			out = append(out, x)
		}
	}
	return out
}
