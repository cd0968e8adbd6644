package config

import (
	"testing"

	"github.com/AlexandreDecan/pcorr/internal"
	"github.com/AlexandreDecan/pcorr/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PCORR_ALPHA", "PCORR_SORT", "PCORR_FORMAT", "PCORR_WORKERS", "PORT", "GIN_MODE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.Report.Alpha)
	assert.True(t, cfg.Report.Sort)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, internal.LogLevelInfo, cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PCORR_ALPHA", "0.01")
	t.Setenv("PCORR_SORT", "false")
	t.Setenv("PCORR_FORMAT", "Markdown")
	t.Setenv("PCORR_WORKERS", "8")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.Report.Alpha)
	assert.False(t, cfg.Report.Sort)
	assert.Equal(t, "markdown", cfg.Report.Format)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, internal.LogLevelDebug, cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"PCORR_ALPHA", "abc"},
		{"PCORR_ALPHA", "1.5"},
		{"PCORR_ALPHA", "0"},
		{"PCORR_SORT", "maybe"},
		{"PCORR_FORMAT", "xml"},
		{"PCORR_WORKERS", "0"},
		{"PCORR_WORKERS", "many"},
		{"LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
