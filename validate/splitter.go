package validate

// Splitter generates fold boundaries for cross-validation against a
// series of length n, without touching the series' values — GenerateFolds
// is a pure function of n and the config, so callers can inspect the fold
// plan before running any model.
type Splitter struct {
	Config CVConfig
}

// NewSplitter validates cfg and returns a Splitter.
func NewSplitter(cfg CVConfig) (Splitter, error) {
	if err := cfg.Validate(); err != nil {
		return Splitter{}, err
	}
	return Splitter{Config: cfg}, nil
}

// GenerateFolds returns up to Config.MaxFolds folds over a series of
// length n. Rolling mode keeps the training window at InitialWindow
// observations (or Config.MaxWindow when that is smaller) sliding
// forward by Step; Expanding mode keeps TrainStart at 0
// and grows TrainEnd by Step each fold. Fails with ErrInsufficientData
// when n < InitialWindow+Horizon, i.e. not even one fold fits.
func (s Splitter) GenerateFolds(n int) ([]Fold, error) {
	cfg := s.Config
	if n < cfg.InitialWindow+cfg.Horizon {
		return nil, insufficientDataf("series length %d < initial_window(%d)+horizon(%d)", n, cfg.InitialWindow, cfg.Horizon)
	}

	var folds []Fold
	trainEnd := cfg.InitialWindow
	for len(folds) < cfg.MaxFolds {
		testStart := trainEnd + cfg.Gap
		testEnd := testStart + cfg.Horizon
		if testEnd > n {
			break
		}
		trainStart := 0
		if cfg.Mode == Rolling {
			windowSize := cfg.InitialWindow
			if cfg.MaxWindow > 0 && cfg.MaxWindow < windowSize {
				windowSize = cfg.MaxWindow
			}
			if trainEnd-windowSize > 0 {
				trainStart = trainEnd - windowSize
			}
		}
		folds = append(folds, Fold{TrainStart: trainStart, TrainEnd: trainEnd, TestStart: testStart, TestEnd: testEnd})
		trainEnd += cfg.Step
	}
	if len(folds) == 0 {
		return nil, insufficientDataf("no fold fits series length %d under the given config", n)
	}
	return folds, nil
}
