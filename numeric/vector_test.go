package numeric_test

import (
	"testing"

	"github.com/DataZooDE/anofox-forecast-sub014/numeric"
	"github.com/stretchr/testify/assert"
)

func TestDot_Basic(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	assert.InDelta(t, 32.0, numeric.Dot(a, b), 1e-12)
}

func TestAddScaled_InPlaceAccumulation(t *testing.T) {
	dst := []float64{1, 1, 1}
	src := []float64{2, 3, 4}
	numeric.AddScaled(dst, 2.0, src)
	assert.Equal(t, []float64{5, 7, 9}, dst)
}

func TestScale_InPlace(t *testing.T) {
	dst := []float64{1, 2, 3}
	numeric.Scale(3.0, dst)
	assert.Equal(t, []float64{3, 6, 9}, dst)
}

func TestSum_Basic(t *testing.T) {
	assert.InDelta(t, 15.0, numeric.Sum([]float64{1, 2, 3, 4, 5}), 1e-12)
}

func TestSum_Empty(t *testing.T) {
	assert.Equal(t, 0.0, numeric.Sum(nil))
}
