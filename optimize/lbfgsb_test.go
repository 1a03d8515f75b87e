package optimize_test

import (
	"math"
	"testing"

	"github.com/DataZooDE/anofox-forecast-sub014/optimize"
	"github.com/stretchr/testify/assert"
)

func TestLBFGSB_UnconstrainedQuadraticFindsExactMinimum(t *testing.T) {
	obj := quadraticObjective{target: []float64{3, -2, 0.5}}
	x0 := []float64{0, 0, 0}
	lower := []float64{-100, -100, -100}
	upper := []float64{100, 100, 100}

	res := optimize.LBFGSB(obj, x0, lower, upper, optimize.DefaultLBFGSBOptions())

	assert.True(t, res.Converged, res.Message)
	for i, want := range obj.target {
		assert.InDelta(t, want, res.X[i], 1e-4)
	}
}

func TestLBFGSB_BoundsClampMinimumWhenUnreachable(t *testing.T) {
	obj := quadraticObjective{target: []float64{10}}
	x0 := []float64{0}
	lower := []float64{-1}
	upper := []float64{1}

	res := optimize.LBFGSB(obj, x0, lower, upper, optimize.DefaultLBFGSBOptions())

	assert.InDelta(t, 1.0, res.X[0], 1e-6)
}

func TestLBFGSB_InitialPointOutsideBoundsIsProjected(t *testing.T) {
	obj := quadraticObjective{target: []float64{0}}
	x0 := []float64{50}
	lower := []float64{-5}
	upper := []float64{5}

	res := optimize.LBFGSB(obj, x0, lower, upper, optimize.DefaultLBFGSBOptions())

	assert.LessOrEqual(t, res.X[0], 5.0)
}

func TestLBFGSB_NonFiniteObjectiveReportsFailure(t *testing.T) {
	nanObj := nanObjective{}
	x0 := []float64{0}
	lower := []float64{-10}
	upper := []float64{10}

	res := optimize.LBFGSB(nanObj, x0, lower, upper, optimize.DefaultLBFGSBOptions())

	assert.False(t, res.Converged)
	assert.Equal(t, optimize.ErrNonFinite.Error(), res.Message)
}

type nanObjective struct{}

func (nanObjective) Value(x []float64) float64 {
	return math.NaN()
}

func (nanObjective) Gradient(x []float64, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(x))
	}
	return dst
}
