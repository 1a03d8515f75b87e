package decompose_test

import (
	"math"
	"testing"

	"github.com/DataZooDE/anofox-forecast-sub014/decompose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMSTL_EmptyPeriods(t *testing.T) {
	_, err := decompose.MSTL([]float64{1, 2, 3}, nil, decompose.DefaultMSTLConfig())
	assert.Error(t, err)
}

func TestMSTL_InsufficientData(t *testing.T) {
	_, err := decompose.MSTL([]float64{1, 2, 3}, []int{12}, decompose.DefaultMSTLConfig())
	assert.Error(t, err)
}

func TestMSTL_Additivity(t *testing.T) {
	n := 144
	values := make([]float64, n)
	for i := range values {
		values[i] = 100 + 0.2*float64(i) + 5*math.Sin(2*math.Pi*float64(i)/12) + 2*math.Sin(2*math.Pi*float64(i)/24)
	}
	decomp, err := decompose.MSTL(values, []int{12, 24}, decompose.DefaultMSTLConfig())
	require.NoError(t, err)
	require.Equal(t, []int{12, 24}, decomp.Periods)
	require.Len(t, decomp.Seasonals, 2)

	var maxAbs float64
	for i := 0; i < n; i++ {
		sum := decomp.Trend[i] + decomp.Seasonals[0][i] + decomp.Seasonals[1][i] + decomp.Remainder[i]
		d := math.Abs(values[i] - sum)
		if d > maxAbs {
			maxAbs = d
		}
	}
	assert.LessOrEqual(t, maxAbs, 1e-5*(1+floatsInfNorm(values)))
}

func floatsInfNorm(xs []float64) float64 {
	var m float64
	for _, x := range xs {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}

func TestMSTL_StrengthsInBounds(t *testing.T) {
	n := 96
	values := sineSeries(n, 12)
	decomp, err := decompose.MSTL(values, []int{12}, decompose.DefaultMSTLConfig())
	require.NoError(t, err)
	s := decompose.SeasonalStrength(decomp.Seasonals[0], decomp.Remainder)
	tr := decompose.TrendStrength(decomp.Trend, decomp.Remainder)
	assert.GreaterOrEqual(t, s, 0.0)
	assert.LessOrEqual(t, s, 1.0)
	assert.GreaterOrEqual(t, tr, 0.0)
	assert.LessOrEqual(t, tr, 1.0)
}
