package features

import (
	"fmt"

	"github.com/DataZooDE/anofox-forecast-sub014/errs"
)

// ErrInvalidParameter wraps errs.ErrInvalidParameter for an unregistered
// feature name or a malformed parameter within a FeatureRequest.
var ErrInvalidParameter = errs.ErrInvalidParameter

func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("features: "+format+": %w", append(args, errs.ErrInvalidParameter)...)
}
