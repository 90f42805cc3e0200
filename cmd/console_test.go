package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkt.systems/pslog"
)

func TestOpenConsoleLogWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".bella", consoleLogFile)

	logger, closer, err := openConsoleLog(path, "")
	require.NoError(t, err)
	logger.Debug("hidden detail")
	logger.Info("stream opened", "stream", "s-1")
	logger.Warn("poll tick failed", "poll", "tail")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "stream opened")
	assert.Contains(t, string(data), "poll tick failed")
	assert.NotContains(t, string(data), "hidden detail")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(consoleLogMode), info.Mode().Perm())
}

func TestOpenConsoleLogHonoursLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), consoleLogFile)

	logger, closer, err := openConsoleLog(path, "warn")
	require.NoError(t, err)
	logger.Info("stream opened")
	logger.Warn("poll tick failed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stream opened")
	assert.Contains(t, string(data), "poll tick failed")
}

func TestLoggerOptionsLevels(t *testing.T) {
	tests := []struct {
		level string
		want  pslog.Level
		ok    bool
	}{
		{level: "trace", want: pslog.TraceLevel, ok: true},
		{level: "debug", want: pslog.DebugLevel, ok: true},
		{level: "INFO", want: pslog.InfoLevel, ok: true},
		{level: "warn", want: pslog.WarnLevel, ok: true},
		{level: "warning", want: pslog.WarnLevel, ok: true},
		{level: "error", want: pslog.ErrorLevel, ok: true},
		{level: "", ok: false},
		{level: "loud", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			opts, ok := loggerOptions(tt.level)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, opts.MinLevel)
			}
		})
	}
}
