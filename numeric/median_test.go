package numeric_test

import (
	"testing"

	"github.com/DataZooDE/anofox-forecast-sub014/numeric"
	"github.com/stretchr/testify/assert"
)

func TestMedian_EmptyReturnsZero(t *testing.T) {
	assert.Equal(t, 0.0, numeric.Median(nil))
}

func TestMedian_OddLength(t *testing.T) {
	buf := []float64{5, 1, 3, 2, 4}
	assert.Equal(t, 3.0, numeric.Median(buf))
}

func TestMedian_EvenLength(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	assert.Equal(t, 2.5, numeric.Median(buf))
}

func TestMedian_SingleElement(t *testing.T) {
	assert.Equal(t, 7.0, numeric.Median([]float64{7}))
}

func TestMedian_AllEqual(t *testing.T) {
	buf := []float64{4, 4, 4, 4, 4}
	assert.Equal(t, 4.0, numeric.Median(buf))
}

func TestMedianCopy_DoesNotMutateInput(t *testing.T) {
	xs := []float64{9, 1, 5, 3, 7}
	original := append([]float64(nil), xs...)
	got := numeric.MedianCopy(xs)
	assert.Equal(t, 5.0, got)
	assert.Equal(t, original, xs)
}

func TestMedian_UnsortedLargeSlice(t *testing.T) {
	buf := []float64{9, 3, 7, 1, 8, 2, 6, 4, 5}
	assert.Equal(t, 5.0, numeric.Median(buf))
}
