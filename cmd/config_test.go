package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "verdict", configBaseName)
	assert.Equal(t, "verdict.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "run.name", runNameConfigKey)
	assert.Equal(t, "run.timestamp_suffix", timestampSuffixConfigKey)
	assert.Equal(t, "run.timeout", runTimeoutConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "test-results", defaultReportsDir)
	assert.Equal(t, "test_results", defaultRunName)
	assert.Equal(t, "VERDICT", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, defaultGoBinary, viper.GetString(goBinaryConfigKey))
	assert.Empty(t, viper.GetStringSlice(extraArgsConfigKey))
	assert.Equal(t, time.Duration(0), viper.GetDuration(runTimeoutConfigKey))
	assert.Equal(t, defaultLogFilename, viper.GetString(logFilenameKey))
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("VERDICT_RUN_GO_BINARY", "/opt/go/bin/go")

	assert.Equal(t, "/opt/go/bin/go", viper.GetString(goBinaryConfigKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "verdict.log")

	configureLogger(logPath, true)

	require.NotNil(t, globalLogger)
	assert.Same(t, globalLogger, slog.Default())
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))

	configureLogger(logPath, false)
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}
