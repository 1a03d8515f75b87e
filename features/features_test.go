package features_test

import (
	"math"
	"testing"

	"github.com/DataZooDE/anofox-forecast-sub014/features"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seasonalSeries(n, period int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100 + 0.1*float64(i) + 10*math.Sin(2*math.Pi*float64(i)/float64(period))
	}
	return out
}

func TestComputeFeatures_BasicMoments(t *testing.T) {
	cfg := features.FeatureConfig{
		{Name: "mean"},
		{Name: "variance"},
	}
	values := []float64{1, 2, 3, 4, 5}
	out, err := features.ComputeFeatures(values, nil, cfg)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "mean", out[0].Name)
	assert.InDelta(t, 3.0, out[0].Value, 1e-9)
	assert.False(t, out[0].IsNaN)
}

func TestComputeFeatures_UnknownNameFails(t *testing.T) {
	_, err := features.ComputeFeatures([]float64{1, 2, 3}, nil, features.FeatureConfig{{Name: "not_a_feature"}})
	assert.Error(t, err)
}

func TestACF1_RecoversHighAutocorrelationOnSmoothTrend(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i)
	}
	out, err := features.ComputeFeatures(values, nil, features.FeatureConfig{{Name: "acf1"}})
	require.NoError(t, err)
	require.False(t, out[0].IsNaN)
	assert.Greater(t, out[0].Value, 0.8)
}

func TestSeasonalStrength_HighOnCleanSeasonalSeries(t *testing.T) {
	values := seasonalSeries(120, 12)
	out, err := features.ComputeFeatures(values, nil, features.FeatureConfig{
		{Name: "seasonal_strength", Params: features.FeatureParams{"period": 12}},
	})
	require.NoError(t, err)
	require.False(t, out[0].IsNaN)
	assert.Greater(t, out[0].Value, 0.5)
	assert.LessOrEqual(t, out[0].Value, 1.0)
}

func TestIntermittencyRatio_CountsZeros(t *testing.T) {
	values := make([]float64, 20)
	values[5] = 7
	out, err := features.ComputeFeatures(values, nil, features.FeatureConfig{{Name: "intermittency_ratio"}})
	require.NoError(t, err)
	assert.InDelta(t, 19.0/20.0, out[0].Value, 1e-9)
}

func TestZeroCrossings_CountsSignChanges(t *testing.T) {
	values := []float64{-1, 1, -1, 1, -1}
	out, err := features.ComputeFeatures(values, nil, features.FeatureConfig{{Name: "zero_crossings"}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, out[0].Value)
}

func TestParameterOverrideChangesLag(t *testing.T) {
	values := seasonalSeries(100, 10)
	out, err := features.ComputeFeatures(values, nil, features.FeatureConfig{
		{Name: "acf_lag_1", Params: features.FeatureParams{"lag": 10}},
	})
	require.NoError(t, err)
	require.False(t, out[0].IsNaN)
	assert.Greater(t, out[0].Value, 0.5)
}

func TestNames_IncludesCoreFeatures(t *testing.T) {
	names := features.Names()
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	for _, want := range []string{"mean", "variance", "acf1", "pacf5", "trend_strength", "seasonal_strength"} {
		assert.True(t, set[want], "expected %q in registry", want)
	}
	assert.GreaterOrEqual(t, len(names), 25)
}
