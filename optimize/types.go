package optimize

// Objective evaluates a scalar function and, for gradient-based solvers,
// its gradient at x. NelderMead only ever calls Value; LBFGSB requires
// both.
type Objective interface {
	// Value returns f(x).
	Value(x []float64) float64
	// Gradient returns grad f(x), written into (and returned as) dst when
	// dst is non-nil and long enough, avoiding an allocation per call.
	Gradient(x []float64, dst []float64) []float64
}

// LBFGSBOptions configures the bounded L-BFGS solver.
type LBFGSBOptions struct {
	// MaxIterations caps the number of outer iterations.
	MaxIterations int
	// GradTol stops the search once ||proj_grad||_inf < GradTol.
	GradTol float64
	// FuncTol stops the search once successive objective values differ by
	// less than FuncTol (relative).
	FuncTol float64
	// Memory is the number of (s, y) correction pairs retained for the
	// two-loop recursion (L-BFGS memory depth m).
	Memory int
}

// DefaultLBFGSBOptions returns MaxIterations=200, GradTol=1e-5,
// FuncTol=1e-10, Memory=10.
func DefaultLBFGSBOptions() LBFGSBOptions {
	return LBFGSBOptions{
		MaxIterations: 200,
		GradTol:       1e-5,
		FuncTol:       1e-10,
		Memory:        10,
	}
}

// Result is the common outcome of either solver.
type Result struct {
	X         []float64
	F         float64
	Iters     int
	Converged bool
	Message   string
}

// NelderMeadOptions configures the derivative-free simplex solver.
type NelderMeadOptions struct {
	// MaxIterations caps the number of simplex transformations.
	MaxIterations int
	// Tol stops the search once max(|f_i - mean(f)|) < Tol across the
	// simplex vertices.
	Tol float64
	// Step is the per-axis perturbation used to build the initial simplex
	// around x0.
	Step float64
	// Alpha, Gamma, Rho, Sigma are the reflection, expansion, contraction
	// and shrink coefficients. Zero values fall back to the standard
	// 1, 2, 0.5, 0.5.
	Alpha, Gamma, Rho, Sigma float64
}

// DefaultNelderMeadOptions returns the standard coefficients
// (alpha=1, gamma=2, rho=0.5, sigma=0.5), MaxIterations=500, Tol=1e-8,
// Step=0.1.
func DefaultNelderMeadOptions() NelderMeadOptions {
	return NelderMeadOptions{
		MaxIterations: 500,
		Tol:           1e-8,
		Step:          0.1,
		Alpha:         1,
		Gamma:         2,
		Rho:           0.5,
		Sigma:         0.5,
	}
}
