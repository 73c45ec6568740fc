package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "APP_DEBUG", "APP_VERSION",
		"CONSOLE_CANCEL_SENTINEL", "CONSOLE_MISSING_AVERAGE", "CONSOLE_AVERAGE_PRECISION",
		"LOG_LEVEL", "LOG_OUTPUT",
	} {
		t.Setenv(EnvPrefix+key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, -1, cfg.Console.CancelSentinel)
	assert.Equal(t, "N/A", cfg.Console.MissingAverage)
	assert.Equal(t, 2, cfg.Console.AveragePrecision)
	assert.Equal(t, "warn", cfg.EffectiveLogLevel())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvPrefix+"CONSOLE_CANCEL_SENTINEL", "0")
	t.Setenv(EnvPrefix+"CONSOLE_MISSING_AVERAGE", "0.00")
	t.Setenv(EnvPrefix+"CONSOLE_AVERAGE_PRECISION", "1")
	t.Setenv(EnvPrefix+"LOG_OUTPUT", "discard")
	t.Setenv(EnvPrefix+"APP_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Console.CancelSentinel)
	assert.Equal(t, "0.00", cfg.Console.MissingAverage)
	assert.Equal(t, 1, cfg.Console.AveragePrecision)
	assert.Equal(t, "debug", cfg.EffectiveLogLevel())
}

func TestLoad_MalformedIntKeepsDefault(t *testing.T) {
	t.Setenv(EnvPrefix+"CONSOLE_CANCEL_SENTINEL", "minus one")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.Console.CancelSentinel)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.App.Environment = "staging"
	cfg.Console.AveragePrecision = 9
	cfg.Console.MissingAverage = "  "
	cfg.Observability.LogOutput = "syslog"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_ENV")
	assert.Contains(t, err.Error(), "CONSOLE_AVERAGE_PRECISION")
	assert.Contains(t, err.Error(), "CONSOLE_MISSING_AVERAGE")
	assert.Contains(t, err.Error(), "LOG_OUTPUT")
}

func TestLoad_IgnoresUnprefixedVariables(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("LOG_OUTPUT", "syslog")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv(EnvPrefix+"APP_ENV", "")
	t.Setenv(EnvPrefix+"LOG_OUTPUT", "")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, "stderr", cfg.Observability.LogOutput)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
}
