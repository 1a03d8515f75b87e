package forecast

import (
	"fmt"

	"github.com/DataZooDE/anofox-forecast-sub014/errs"
)

// Re-exported sentinels so callers can errors.Is(err, forecast.ErrX)
// without importing errs directly.
var (
	ErrInvalidParameter = errs.ErrInvalidParameter
	ErrInsufficientData = errs.ErrInsufficientData
	ErrDegenerate       = errs.ErrDegenerate
	ErrNumericalFailure = errs.ErrNumericalFailure
)

func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("forecast: "+format+": %w", append(args, errs.ErrInvalidParameter)...)
}

func insufficientDataf(format string, args ...any) error {
	return fmt.Errorf("forecast: "+format+": %w", append(args, errs.ErrInsufficientData)...)
}

func degeneratef(format string, args ...any) error {
	return fmt.Errorf("forecast: "+format+": %w", append(args, errs.ErrDegenerate)...)
}

func numericalFailuref(format string, args ...any) error {
	return fmt.Errorf("forecast: "+format+": %w", append(args, errs.ErrNumericalFailure)...)
}
