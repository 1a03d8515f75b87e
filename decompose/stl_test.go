package decompose_test

import (
	"math"
	"testing"

	"github.com/DataZooDE/anofox-forecast-sub014/decompose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSTL_InvalidPeriod(t *testing.T) {
	_, err := decompose.STL([]float64{1, 2, 3}, 1, decompose.DefaultSTLConfig())
	assert.Error(t, err)
}

func TestSTL_InsufficientData(t *testing.T) {
	_, err := decompose.STL([]float64{1, 2, 3}, 12, decompose.DefaultSTLConfig())
	assert.Error(t, err)
}

func TestSTL_RecoversSeasonalShape(t *testing.T) {
	values := sineSeries(96, 12)
	res, err := decompose.STL(values, 12, decompose.DefaultSTLConfig())
	require.NoError(t, err)
	require.Len(t, res.Seasonal, 96)

	// Seasonal centering: mean over a full period window is ~0.
	var sum float64
	for i := 0; i < 12; i++ {
		sum += res.Seasonal[i]
	}
	assert.InDelta(t, 0.0, sum/12, 1e-6)
}

func TestSTL_Robust(t *testing.T) {
	values := sineSeries(96, 12)
	values[50] += 100 // outlier
	cfg := decompose.DefaultSTLConfig()
	cfg.Robust = true
	res, err := decompose.STL(values, 12, cfg)
	require.NoError(t, err)
	assert.Len(t, res.Trend, 96)
	assert.False(t, math.IsNaN(res.Remainder[50]))
}
