package app

import (
	"context"
	"io"
	"testing"

	"github.com/AlexandreDecan/pcorr/domain/core"
	"github.com/AlexandreDecan/pcorr/domain/correction"
	"github.com/AlexandreDecan/pcorr/internal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBatchService(workers int) *BatchService {
	return NewBatchService(newTestReportService(), workers, internal.NewLoggerTo(internal.LogLevelError, io.Discard))
}

func TestBatchKeepsRequestOrder(t *testing.T) {
	families := make([]correction.Family, 0, 20)
	for i := 0; i < 20; i++ {
		pv := []float64{0.001 * float64(i+1), 0.5}
		families = append(families, correction.Family{Name: core.FamilyName(string(rune('a' + i))), PValues: pv})
	}

	result, err := newTestBatchService(3).Run(context.Background(), BatchRequest{
		Families: families,
		Alpha:    0.05,
		Sort:     true,
	})
	require.NoError(t, err)
	require.Len(t, result.Reports, len(families))

	for i, r := range result.Reports {
		assert.Equal(t, families[i].Name, r.Family)
		row, ok := r.Row(correction.NameNone)
		require.True(t, ok)
		assert.Equal(t, correction.At(families[i].PValues[0]), row.Threshold)
	}
}

func TestBatchRejectsEmptyFamily(t *testing.T) {
	_, err := newTestBatchService(2).Run(context.Background(), BatchRequest{
		Families: []correction.Family{
			{Name: "ok", PValues: []float64{0.01}},
			{Name: "empty"},
		},
		Alpha: 0.05,
		Sort:  true,
	})
	assert.ErrorIs(t, err, core.ErrEmptyFamily)
}

func TestBatchRejectsNoFamilies(t *testing.T) {
	_, err := newTestBatchService(2).Run(context.Background(), BatchRequest{Alpha: 0.05})
	assert.ErrorIs(t, err, core.ErrEmptyFamily)
}

func TestBatchHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestBatchService(1).Run(ctx, BatchRequest{
		Families: []correction.Family{{Name: "a", PValues: []float64{0.01}}},
		Alpha:    0.05,
	})
	assert.ErrorIs(t, err, context.Canceled)
}
