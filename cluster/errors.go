package cluster

import (
	"fmt"

	"github.com/DataZooDE/anofox-forecast-sub014/errs"
)

// ErrInvalidParameter wraps errs.ErrInvalidParameter for bad eps/minPts or
// an empty/mismatched series set.
var ErrInvalidParameter = errs.ErrInvalidParameter

func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("cluster: "+format+": %w", append(args, errs.ErrInvalidParameter)...)
}
