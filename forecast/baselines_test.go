package forecast_test

import (
	"testing"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
	"github.com/DataZooDE/anofox-forecast-sub014/forecast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantSeries(n int, c float64) tsforecast.Series {
	v := make([]float64, n)
	for i := range v {
		v[i] = c
	}
	return tsforecast.Series{Values: v}
}

func assertForecastShape(t *testing.T, f tsforecast.Forecast, h int) {
	t.Helper()
	require.Len(t, f.Point, h)
	require.Len(t, f.Lower, h)
	require.Len(t, f.Upper, h)
	for k := 0; k < h; k++ {
		assert.LessOrEqual(t, f.Lower[k], f.Point[k])
		assert.LessOrEqual(t, f.Point[k], f.Upper[k])
	}
}

func TestNaive_ConstantSeries(t *testing.T) {
	s := constantSeries(20, 7)
	m := &forecast.Naive{}
	require.NoError(t, m.Fit(s))
	f, err := m.Forecast(5, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 5)
	for _, p := range f.Point {
		assert.Equal(t, 7.0, p)
	}
}

func TestNaive_InsufficientData(t *testing.T) {
	m := &forecast.Naive{}
	err := m.Fit(tsforecast.Series{Values: []float64{1}})
	assert.ErrorIs(t, err, forecast.ErrInsufficientData)
}

func TestSeasonalNaive_ConstantSeries(t *testing.T) {
	s := constantSeries(24, 3)
	m := forecast.NewSeasonalNaive(12)
	require.NoError(t, m.Fit(s))
	f, err := m.Forecast(12, 0.9)
	require.NoError(t, err)
	assertForecastShape(t, f, 12)
	for _, p := range f.Point {
		assert.Equal(t, 3.0, p)
	}
}

func TestSeasonalNaive_InvalidPeriod(t *testing.T) {
	m := forecast.NewSeasonalNaive(1)
	err := m.Fit(constantSeries(10, 1))
	assert.ErrorIs(t, err, forecast.ErrInvalidParameter)
}

func TestRandomWalkDrift_Shape(t *testing.T) {
	v := make([]float64, 20)
	for i := range v {
		v[i] = float64(i)
	}
	m := &forecast.RandomWalkDrift{}
	require.NoError(t, m.Fit(tsforecast.Series{Values: v}))
	f, err := m.Forecast(4, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 4)
	assert.InDelta(t, 20.0, f.Point[0], 1e-9)
}

func TestSMA_ConstantSeries(t *testing.T) {
	s := constantSeries(10, 2)
	m := forecast.NewSMA(3)
	require.NoError(t, m.Fit(s))
	f, err := m.Forecast(6, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 6)
	for _, p := range f.Point {
		assert.Equal(t, 2.0, p)
	}
}

func TestSMA_InsufficientData(t *testing.T) {
	m := forecast.NewSMA(5)
	err := m.Fit(tsforecast.Series{Values: []float64{1, 2}})
	assert.ErrorIs(t, err, forecast.ErrInsufficientData)
}

func TestSeasonalWindowAverage_ConstantSeries(t *testing.T) {
	s := constantSeries(24, 9)
	m := forecast.NewSeasonalWindowAverage(12, 2)
	require.NoError(t, m.Fit(s))
	f, err := m.Forecast(12, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 12)
	for _, p := range f.Point {
		assert.Equal(t, 9.0, p)
	}
}

func TestForecast_VariesHorizon(t *testing.T) {
	s := constantSeries(30, 1)
	for _, h := range []int{1, 2, 5, 10} {
		m := &forecast.Naive{}
		require.NoError(t, m.Fit(s))
		f, err := m.Forecast(h, 0.95)
		require.NoError(t, err)
		assertForecastShape(t, f, h)
	}
}
