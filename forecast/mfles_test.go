package forecast_test

import (
	"testing"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
	"github.com/DataZooDE/anofox-forecast-sub014/forecast"
	"github.com/stretchr/testify/require"
)

func TestMFLES_OLSTrend_Linear(t *testing.T) {
	values := linearSeries(30, 5, 2)
	m := forecast.NewMFLES(forecast.DefaultMFLESConfig())
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(5, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 5)
}

func TestMFLES_SiegelTrend(t *testing.T) {
	values := linearSeries(30, 5, 2)
	values[15] = 1000 // outlier
	cfg := forecast.DefaultMFLESConfig()
	cfg.TrendMethod = forecast.TrendSiegel
	m := forecast.NewMFLES(cfg)
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(5, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 5)
}

func TestMFLES_PiecewiseLinearTrend(t *testing.T) {
	values := linearSeries(30, 5, 2)
	cfg := forecast.DefaultMFLESConfig()
	cfg.TrendMethod = forecast.TrendPiecewiseLinear
	m := forecast.NewMFLES(cfg)
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(5, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 5)
}

func TestMFLES_Seasonal(t *testing.T) {
	values := seasonalTrendSeries(48, 12)
	cfg := forecast.DefaultMFLESConfig()
	cfg.Period = 12
	m := forecast.NewMFLES(cfg)
	require.NoError(t, m.Fit(tsforecast.Series{Values: values}))
	f, err := m.Forecast(12, 0.9)
	require.NoError(t, err)
	assertForecastShape(t, f, 12)
}

func TestMFLES_InsufficientData(t *testing.T) {
	m := forecast.NewMFLES(forecast.DefaultMFLESConfig())
	err := m.Fit(tsforecast.Series{Values: []float64{1, 2, 3}})
	require.ErrorIs(t, err, forecast.ErrInsufficientData)
}

func TestAutoMFLES_SelectsByHoldoutMSE(t *testing.T) {
	values := linearSeries(40, 10, 1.2)
	a := forecast.NewAutoMFLES(0)
	require.NoError(t, a.Fit(tsforecast.Series{Values: values}))
	f, err := a.Forecast(6, 0.95)
	require.NoError(t, err)
	assertForecastShape(t, f, 6)

	fitted, ok := a.Fitted()
	require.True(t, ok)
	require.Len(t, fitted, 40)
}
