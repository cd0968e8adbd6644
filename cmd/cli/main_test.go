package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"PCORR_ALPHA", "PCORR_SORT", "PCORR_FORMAT", "PCORR_WORKERS"} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "ERROR")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	out, err := execute(t, "report", "0.001", "0.01", "0.02", "0.03", "0.04", "0.5")
	require.NoError(t, err)

	want := "Context: alpha=0.05, 6 p-values\n" +
		"None                \tp-value=0.040000\t  5 significant p-values\n" +
		"Bonferroni          \tp-value=0.001000\t  1 significant p-values\n" +
		"Holm                \tp-value=0.010000\t  2 significant p-values\n" +
		"Hochberg            \tp-value=0.010000\t  2 significant p-values\n" +
		"Benjamini-Hochberg  \tp-value=0.040000\t  5 significant p-values\n"
	assert.Equal(t, want, out)
}

func TestReportCommandMarkdown(t *testing.T) {
	out, err := execute(t, "report", "--format", "markdown", "--alpha", "0.1", "0.05", "0.2")
	require.NoError(t, err)
	assert.Contains(t, out, "alpha = 0.1, 2 p-values")
	assert.Contains(t, out, "| None | 0.050000 | 1 |")
}

func TestReportCommandRejectsText(t *testing.T) {
	_, err := execute(t, "report", "0.01", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 2")
}

func TestThresholdCommand(t *testing.T) {
	out, err := execute(t, "threshold", "--method", "holm", "0.01", "0.02", "0.03", "0.04", "0.05")
	require.NoError(t, err)
	assert.Equal(t, "Holm\tp-value=0.010000\t1 significant p-values\n", out)
}

func TestAdjustCommand(t *testing.T) {
	out, err := execute(t, "adjust", "--method", "bonferroni", "0.01", "0.3")
	require.NoError(t, err)
	assert.Equal(t, "0.01\t0.020000\n0.3\t0.600000\n", out)
}

func TestBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "families.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n0.01,0.3\n0.02,0.6\n"), 0o644))

	out, err := execute(t, "batch", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "== a ==\nContext: alpha=0.05, 2 p-values\n")
	assert.Contains(t, out, "== b ==\nContext: alpha=0.05, 2 p-values\n")
}

func TestReportFromFileColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "families.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n0.01,0.3\n0.02,0.6\n"), 0o644))

	out, err := execute(t, "threshold", "--method", "none", "--file", path, "--column", "a")
	require.NoError(t, err)
	assert.Equal(t, "None\tp-value=0.020000\t2 significant p-values\n", out)

	_, err = execute(t, "report", "--file", path)
	assert.Error(t, err)
}
