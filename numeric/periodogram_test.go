package numeric_test

import (
	"math"
	"testing"

	"github.com/DataZooDE/anofox-forecast-sub014/numeric"
	"github.com/stretchr/testify/assert"
)

func TestPeriodogram_DetectsKnownPeriod(t *testing.T) {
	const period = 7
	n := period * 20
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = math.Sin(2 * math.Pi * float64(i) / float64(period))
	}

	periods, powers := numeric.Periodogram(xs, 2, 30, 0.5)
	require := assert.New(t)
	require.NotEmpty(periods)
	require.Equal(period, periods[0], "strongest peak should be at the true period")
	require.Len(powers, len(periods))

	for i := 1; i < len(powers); i++ {
		require.GreaterOrEqual(powers[i-1], powers[i], "powers must be sorted descending")
	}
}

func TestPeriodogram_ConstantSeriesReturnsEmpty(t *testing.T) {
	xs := make([]float64, 60)
	for i := range xs {
		xs[i] = 3.0
	}
	periods, powers := numeric.Periodogram(xs, 2, 20, 0.5)
	assert.Empty(t, periods)
	assert.Empty(t, powers)
}

func TestPeriodogram_TooFewCandidates(t *testing.T) {
	xs := make([]float64, 10)
	periods, powers := numeric.Periodogram(xs, 4, 6, 0.5)
	assert.Empty(t, periods)
	assert.Empty(t, powers)
}

func TestPeriodogram_PMaxClampedToHalfLength(t *testing.T) {
	n := 40
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = math.Sin(2 * math.Pi * float64(i) / 5)
	}
	periods, _ := numeric.Periodogram(xs, 2, 1000, 0.5)
	for _, p := range periods {
		assert.Less(t, p, n/2)
	}
}
