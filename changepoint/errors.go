package changepoint

import (
	"fmt"

	"github.com/DataZooDE/anofox-forecast-sub014/errs"
)

var (
	ErrInvalidParameter = errs.ErrInvalidParameter
	ErrInsufficientData = errs.ErrInsufficientData
	ErrDegenerate       = errs.ErrDegenerate
)

func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("changepoint: "+format+": %w", append(args, errs.ErrInvalidParameter)...)
}
