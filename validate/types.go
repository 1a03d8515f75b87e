package validate

// WindowMode selects whether the training window is fixed-size and slides
// (Rolling) or starts at 0 and grows (Expanding).
type WindowMode int

const (
	Rolling WindowMode = iota
	Expanding
)

// CVConfig configures fold generation. Mode selects rolling vs. expanding
// training windows; Gap lets the caller leave a buffer between training
// and test slices (e.g. to model reporting lag); MaxWindow truncates the
// oldest end of a rolling training window so it never exceeds a cap.
type CVConfig struct {
	InitialWindow int
	Horizon       int
	Step          int
	MaxFolds      int
	Gap           int
	MaxWindow     int
	Mode          WindowMode
}

// Validate checks field ranges, matching spec.md §4.6's "Parameters:
// initial_window>=1, horizon>=1, step>=1, max_folds>=1, optional gap,
// optional max_window".
func (c CVConfig) Validate() error {
	if c.InitialWindow < 1 {
		return invalidParamf("InitialWindow must be >= 1, got %d", c.InitialWindow)
	}
	if c.Horizon < 1 {
		return invalidParamf("Horizon must be >= 1, got %d", c.Horizon)
	}
	if c.Step < 1 {
		return invalidParamf("Step must be >= 1, got %d", c.Step)
	}
	if c.MaxFolds < 1 {
		return invalidParamf("MaxFolds must be >= 1, got %d", c.MaxFolds)
	}
	if c.Gap < 0 {
		return invalidParamf("Gap must be >= 0, got %d", c.Gap)
	}
	if c.MaxWindow < 0 {
		return invalidParamf("MaxWindow must be >= 0, got %d", c.MaxWindow)
	}
	return nil
}

// Fold is one train/test slice boundary, all indices half-open [start,end)
// into the original series.
type Fold struct {
	TrainStart, TrainEnd int
	TestStart, TestEnd   int
}
