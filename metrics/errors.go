package metrics

import (
	"fmt"

	"github.com/DataZooDE/anofox-forecast-sub014/errs"
)

// ErrInvalidInput wraps errs.ErrInvalidParameter for mismatched lengths or
// empty inputs, matching spec.md §4.7's "all require equal-length vectors;
// else InvalidInput".
var ErrInvalidInput = errs.ErrInvalidParameter

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("metrics: "+format+": %w", append(args, errs.ErrInvalidParameter)...)
}
