package decompose

import (
	"errors"
	"fmt"

	"github.com/DataZooDE/anofox-forecast-sub014/errs"
)

// ErrInsufficientData wraps errs.ErrInsufficientData with the specific
// shortfall (series too short for the requested period or polynomial
// degree).
var ErrInsufficientData = errs.ErrInsufficientData

// ErrInvalidParameter wraps errs.ErrInvalidParameter for bad period,
// smoother-span, or method arguments.
var ErrInvalidParameter = errs.ErrInvalidParameter

func insufficientDataf(format string, args ...any) error {
	return fmt.Errorf("decompose: "+format+": %w", append(args, errs.ErrInsufficientData)...)
}

func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("decompose: "+format+": %w", append(args, errs.ErrInvalidParameter)...)
}

var errEmptyCandidateSet = errors.New("decompose: no candidate periods supplied")
