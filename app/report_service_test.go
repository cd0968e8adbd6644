package app

import (
	"bytes"
	"io"
	"testing"

	"github.com/AlexandreDecan/pcorr/adapters/report"
	"github.com/AlexandreDecan/pcorr/domain/core"
	"github.com/AlexandreDecan/pcorr/domain/correction"
	"github.com/AlexandreDecan/pcorr/internal"
	"github.com/AlexandreDecan/pcorr/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportService() *ReportService {
	return NewReportService(report.Text{}, internal.NewLoggerTo(internal.LogLevelError, io.Discard))
}

func TestMaximalPValueOutput(t *testing.T) {
	svc := newTestReportService()

	var buf bytes.Buffer
	err := svc.MaximalPValue(&buf, []float64{0.5, 0.04, 0.001, 0.03, 0.02, 0.01}, 0.05, true)
	require.NoError(t, err)

	want := "Context: alpha=0.05, 6 p-values\n" +
		"None                \tp-value=0.040000\t  5 significant p-values\n" +
		"Bonferroni          \tp-value=0.001000\t  1 significant p-values\n" +
		"Holm                \tp-value=0.010000\t  2 significant p-values\n" +
		"Hochberg            \tp-value=0.010000\t  2 significant p-values\n" +
		"Benjamini-Hochberg  \tp-value=0.040000\t  5 significant p-values\n"
	assert.Equal(t, want, buf.String())
}

func TestMaximalPValueNothingSignificant(t *testing.T) {
	svc := newTestReportService()

	var buf bytes.Buffer
	require.NoError(t, svc.MaximalPValue(&buf, []float64{0.25}, 0.05, true))

	want := "Context: alpha=0.05, 1 p-values\n" +
		"None                \tp-value=none\t  0 significant p-values\n" +
		"Bonferroni          \tp-value=none\t  0 significant p-values\n" +
		"Holm                \tp-value=none\t  0 significant p-values\n" +
		"Hochberg            \tp-value=none\t  0 significant p-values\n" +
		"Benjamini-Hochberg  \tp-value=none\t  0 significant p-values\n"
	assert.Equal(t, want, buf.String())
}

func TestMaximalPValueEmptyFamily(t *testing.T) {
	svc := newTestReportService()

	var buf bytes.Buffer
	require.NoError(t, svc.MaximalPValue(&buf, nil, 1, true))
	assert.Contains(t, buf.String(), "Context: alpha=1.0, 0 p-values\n")
	assert.Contains(t, buf.String(), "Holm                \tp-value=none\t  0 significant p-values\n")
}

func TestEvaluateRejectsInvalidAlpha(t *testing.T) {
	svc := newTestReportService()

	_, err := svc.Evaluate([]float64{0.01}, 0, true)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	assert.ErrorIs(t, err, core.ErrInvalidAlpha)
}

func TestEvaluateIsOrderInvariant(t *testing.T) {
	svc := newTestReportService()

	a, err := svc.Evaluate([]float64{0.005, 0.011, 0.02, 0.04, 0.13}, 0.05, true)
	require.NoError(t, err)
	b, err := svc.Evaluate([]float64{0.13, 0.02, 0.005, 0.04, 0.011}, 0.05, true)
	require.NoError(t, err)

	assert.Equal(t, a.Rows, b.Rows)
	assert.Equal(t, a.Fingerprint, b.Fingerprint)
	assert.Equal(t, a.Summary, b.Summary)
	assert.NotEqual(t, a.ID, b.ID)
	require.NotNil(t, a.Summary)
	assert.Equal(t, 0.02, a.Summary.Median)

	row, ok := a.Row(correction.NameBenjaminiHochberg)
	require.True(t, ok)
	assert.Equal(t, correction.At(0.04), row.Threshold)
	assert.Equal(t, 4, row.Significant)
}

func TestEvaluateFamilyCarriesName(t *testing.T) {
	svc := newTestReportService()

	r, err := svc.EvaluateFamily(correction.Family{Name: "cohort-a", PValues: []float64{0.01}}, 0.05, true)
	require.NoError(t, err)
	assert.Equal(t, core.FamilyName("cohort-a"), r.Family)
}

func TestThresholdByName(t *testing.T) {
	svc := newTestReportService()

	row, err := svc.Threshold("holm", []float64{0.04, 0.01, 0.02, 0.03, 0.05}, 0.05, true)
	require.NoError(t, err)
	assert.Equal(t, correction.NameHolm, row.Method)
	assert.Equal(t, correction.At(0.01), row.Threshold)
	assert.Equal(t, 1, row.Significant)

	_, err = svc.Threshold("sidak", []float64{0.01}, 0.05, true)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	_, err = svc.Threshold("holm", []float64{0.01}, 2, true)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestAdjustByName(t *testing.T) {
	svc := newTestReportService()

	name, adjusted, err := svc.Adjust("fdr", []float64{0.04, 0.01})
	require.NoError(t, err)
	assert.Equal(t, correction.NameBenjaminiHochberg, name)
	assert.InDeltaSlice(t, []float64{0.04, 0.02}, adjusted, 1e-12)
}
