package forecast_test

import (
	"testing"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
	"github.com/DataZooDE/anofox-forecast-sub014/forecast"
	"github.com/stretchr/testify/require"
)

func seasonalTrendSeries(n, period int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 100 + 0.5*float64(i) + seasonalBump(i, period)
	}
	return v
}

func seasonalBump(i, period int) float64 {
	pos := i % period
	if pos < period/2 {
		return 10
	}
	return -10
}

func TestMSTL_DefaultETSMethod(t *testing.T) {
	values := seasonalTrendSeries(60, 12)
	m := forecast.NewMSTL(forecast.DefaultMSTLConfig([]int{12}))
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(12, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 12)
}

func TestMSTL_LinearMethod(t *testing.T) {
	values := seasonalTrendSeries(60, 12)
	cfg := forecast.DefaultMSTLConfig([]int{12})
	cfg.Method = forecast.DeseasonalizedLinear
	m := forecast.NewMSTL(cfg)
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(6, 0.9)
	require.NoError(t, err)
	assertForecastShape(t, f, 6)
}

func TestMSTL_AutoETSMethod(t *testing.T) {
	values := seasonalTrendSeries(60, 12)
	cfg := forecast.DefaultMSTLConfig([]int{12})
	cfg.Method = forecast.DeseasonalizedAutoETS
	m := forecast.NewMSTL(cfg)
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(12, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 12)
}

func TestMSTL_RequiresAtLeastOnePeriod(t *testing.T) {
	m := forecast.NewMSTL(forecast.DefaultMSTLConfig(nil))
	err := m.Fit(tsforecast.Series{Values: seasonalTrendSeries(40, 12)})
	require.ErrorIs(t, err, forecast.ErrInvalidParameter)
}

func TestMultiSeasonal_Fits(t *testing.T) {
	values := seasonalTrendSeries(72, 12)
	m := forecast.NewMultiSeasonal([]int{12})
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(12, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 12)
}

func TestHoltWinters_Fits(t *testing.T) {
	values := seasonalTrendSeries(48, 12)
	m := forecast.NewHoltWinters(12, false)
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(12, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 12)
}

func TestHolt_Fits(t *testing.T) {
	values := linearSeries(20, 5, 1)
	m := forecast.NewHolt()
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(4, 0.9)
	require.NoError(t, err)
	assertForecastShape(t, f, 4)
}

func TestSES_FixedAlpha_MatchesConstant(t *testing.T) {
	s := constantSeries(15, 4)
	m := forecast.NewSES()
	require.NoError(t, m.Fit(s))
	f, err := m.Forecast(3, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 3)
	for _, p := range f.Point {
		require.InDelta(t, 4.0, p, 1e-9)
	}
}

func TestSESOptimized_Fits(t *testing.T) {
	values := linearSeries(20, 10, 0)
	m := forecast.NewSESOptimized()
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(5, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 5)
}

func TestSeasonalES_Fits(t *testing.T) {
	values := seasonalTrendSeries(36, 12)
	m := forecast.NewSeasonalES(12)
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(12, 0.9)
	require.NoError(t, err)
	assertForecastShape(t, f, 12)
}

func TestSeasonalESOptimized_Fits(t *testing.T) {
	values := seasonalTrendSeries(36, 12)
	m := forecast.NewSeasonalESOptimized(12)
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(12, 0.9)
	require.NoError(t, err)
	assertForecastShape(t, f, 12)
}
