package changepoint_test

import (
	"math"
	"testing"

	"github.com/DataZooDE/anofox-forecast-sub014/changepoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBOCPD_LevelShiftRecovery(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		if i < 50 {
			values[i] = 10
		} else {
			values[i] = 20
		}
	}
	for i := range values {
		values[i] += 0.01 * float64((i*37)%7-3)
	}

	d, err := changepoint.NewDetector(changepoint.Config{
		Hazard:       changepoint.ConstantHazard(100),
		Prior:        changepoint.DefaultNormalGammaPrior(),
		MaxRunLength: 200,
	})
	require.NoError(t, err)

	res, err := d.Detect(values)
	require.NoError(t, err)

	found := false
	for _, idx := range res.Indices {
		if idx >= 48 && idx <= 52 {
			found = true
		}
	}
	assert.True(t, found, "expected a changepoint near index 50, got %v", res.Indices)
}

func TestBOCPD_ScenarioB_StepFunction(t *testing.T) {
	values := make([]float64, 55)
	for i := 0; i < 5; i++ {
		values[i] = 1
	}
	for i := 5; i < 55; i++ {
		values[i] = 10
	}

	d, err := changepoint.NewDetector(changepoint.Config{
		Hazard:       changepoint.ConstantHazard(100),
		Prior:        changepoint.DefaultNormalGammaPrior(),
		MaxRunLength: 100,
	})
	require.NoError(t, err)

	res, err := d.Detect(values)
	require.NoError(t, err)

	count := 0
	for _, idx := range res.Indices {
		if idx >= 4 && idx <= 6 {
			count++
		}
	}
	assert.Equal(t, 1, count, "expected exactly one changepoint in [4,6], got %v", res.Indices)
}

func TestBOCPD_EmptyInput(t *testing.T) {
	d, err := changepoint.NewDetector(changepoint.DefaultConfig())
	require.NoError(t, err)
	res, err := d.Detect(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Indices)
}

func TestBOCPD_SingleElement(t *testing.T) {
	d, err := changepoint.NewDetector(changepoint.DefaultConfig())
	require.NoError(t, err)
	res, err := d.Detect([]float64{42})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Indices)
}

func TestBOCPD_AllZero(t *testing.T) {
	d, err := changepoint.NewDetector(changepoint.DefaultConfig())
	require.NoError(t, err)
	res, err := d.Detect(make([]float64, 10))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 9}, res.Indices)
}

func TestBOCPD_NonFiniteInput(t *testing.T) {
	d, err := changepoint.NewDetector(changepoint.DefaultConfig())
	require.NoError(t, err)
	values := []float64{1, 2, 3, 0, 5}
	values[2] = math.Inf(1)
	res, err := d.Detect(values)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, res.Indices)
}

func TestBOCPD_IncludeProbabilities(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = float64(i % 3)
	}
	d, err := changepoint.NewDetector(changepoint.Config{
		Hazard: changepoint.ConstantHazard(50), Prior: changepoint.DefaultNormalGammaPrior(),
		MaxRunLength: 50, IncludeProbabilities: true,
	})
	require.NoError(t, err)
	res, err := d.Detect(values)
	require.NoError(t, err)
	require.Len(t, res.Probabilities, 20)
	for _, p := range res.Probabilities {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0+1e-9)
	}
}

func TestBOCPD_InvalidMaxRunLength(t *testing.T) {
	_, err := changepoint.NewDetector(changepoint.Config{MaxRunLength: 0, Prior: changepoint.DefaultNormalGammaPrior()})
	assert.ErrorIs(t, err, changepoint.ErrInvalidParameter)
}

func TestBOCPD_LogisticHazard_Fits(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		if i < 20 {
			values[i] = 1
		} else {
			values[i] = 9
		}
	}
	d, err := changepoint.NewDetector(changepoint.Config{
		Hazard: changepoint.LogisticHazard(-2, 0.1, 50), Prior: changepoint.DefaultNormalGammaPrior(),
		MaxRunLength: 60,
	})
	require.NoError(t, err)
	res, err := d.Detect(values)
	require.NoError(t, err)
	assert.Contains(t, res.Indices, 0)
	assert.Contains(t, res.Indices, 39)
}
