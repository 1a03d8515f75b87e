package transform

import (
	"fmt"

	"github.com/DataZooDE/anofox-forecast-sub014/errs"
)

// ErrInvalidParameter wraps errs.ErrInvalidParameter for out-of-domain
// inputs (e.g. Log of a non-positive value, Logit outside (0,1)).
var ErrInvalidParameter = errs.ErrInvalidParameter

// ErrMisuse wraps errs.ErrInvalidParameter for lifecycle violations: fitting
// a transformer or Pipeline twice, or transforming before fitting.
var ErrMisuse = errs.ErrInvalidParameter

func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("transform: "+format+": %w", append(args, errs.ErrInvalidParameter)...)
}

func misusef(format string, args ...any) error {
	return fmt.Errorf("transform: "+format+": %w", append(args, errs.ErrInvalidParameter)...)
}
