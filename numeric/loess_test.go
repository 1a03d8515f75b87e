package numeric_test

import (
	"testing"

	"github.com/DataZooDE/anofox-forecast-sub014/numeric"
	"github.com/stretchr/testify/assert"
)

func TestLOESS_EmptyInput(t *testing.T) {
	out := numeric.LOESS(nil, nil, numeric.DefaultLOESSConfig(), nil)
	assert.Empty(t, out)
}

func TestLOESS_LinearDataRecoversLine(t *testing.T) {
	n := 50
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = 2 + 3*float64(i)
	}
	cfg := numeric.LOESSConfig{Span: 0.5, Robust: 0, Degree: 1}
	out := numeric.LOESS(x, y, cfg, nil)
	require := assert.New(t)
	require.Len(out, n)
	for i := 5; i < n-5; i++ {
		require.InDelta(y[i], out[i], 1e-6)
	}
}

func TestLOESS_RobustPassesDownweightOutliers(t *testing.T) {
	n := 40
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = 5.0
	}
	y[20] = 500 // gross outlier

	nonRobust := numeric.LOESS(x, y, numeric.LOESSConfig{Span: 0.5, Robust: 0, Degree: 1}, nil)
	robust := numeric.LOESS(x, y, numeric.LOESSConfig{Span: 0.5, Robust: 2, Degree: 1}, nil)

	// The robust fit at the outlier's neighborhood should track the bulk of
	// the data (near 5) far more closely than the non-robust fit.
	assert.Less(t, robust[20]-5, nonRobust[20]-5)
}

func TestLOESS_ReusesWeightsBuffer(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 4, 9, 16}
	weights := make([]float64, len(x))
	out := numeric.LOESS(x, y, numeric.DefaultLOESSConfig(), weights)
	assert.Len(t, out, len(x))
	assert.NotEqual(t, make([]float64, len(x)), weights, "LOESS writes its kernel weights into the supplied buffer")
}
