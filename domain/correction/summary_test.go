package correction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	assert.Nil(t, Summarize(nil))

	s := Summarize([]float64{0.04, 0.001, 0.3, 0.02})
	require.NotNil(t, s)
	assert.Equal(t, 0.001, s.Min)
	assert.InDelta(t, 0.03, s.Median, 1e-12)
	assert.Equal(t, 0.3, s.Max)
}

func TestSummarizeDoesNotMutate(t *testing.T) {
	pv := []float64{0.5, 0.1, 0.2}
	Summarize(pv)
	assert.Equal(t, []float64{0.5, 0.1, 0.2}, pv)
}
