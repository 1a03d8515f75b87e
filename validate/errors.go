package validate

import (
	"fmt"

	"github.com/DataZooDE/anofox-forecast-sub014/errs"
)

// ErrInsufficientData wraps errs.ErrInsufficientData, returned when
// n < InitialWindow + Horizon.
var ErrInsufficientData = errs.ErrInsufficientData

// ErrInvalidParameter wraps errs.ErrInvalidParameter for malformed
// CVConfig fields.
var ErrInvalidParameter = errs.ErrInvalidParameter

func insufficientDataf(format string, args ...any) error {
	return fmt.Errorf("validate: "+format+": %w", append(args, errs.ErrInsufficientData)...)
}

func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("validate: "+format+": %w", append(args, errs.ErrInvalidParameter)...)
}
