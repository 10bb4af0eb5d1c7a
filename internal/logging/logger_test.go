package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func getenvFrom(env map[string]string) func(string) string {
	return func(name string) string { return env[name] }
}

func TestNewDisabledWhenUnset(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, getenvFrom(map[string]string{}))
	require.False(t, logger.Enabled(context.Background(), slog.LevelError))

	logger.Error("should vanish")
	require.Empty(t, buf.String())
}

func TestNewDisabledOnUnknownLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, getenvFrom(map[string]string{"DEWPOINT_LOG": "verbose"}))
	require.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestNewDebugWritesToWriter(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, getenvFrom(map[string]string{"DEWPOINT_LOG": "debug"}))
	require.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	logger.Debug("locale resolved", "locale", "en_US.UTF-8")
	require.Contains(t, buf.String(), "locale resolved")
	require.Contains(t, buf.String(), "en_US.UTF-8")
}

func TestNewLevelThreshold(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, getenvFrom(map[string]string{"DEWPOINT_LOG": "warn"}))
	require.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	require.True(t, logger.Enabled(context.Background(), slog.LevelWarn))

	logger.Info("below threshold")
	require.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		value  string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"  INFO ", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", 0, false},
		{"trace", 0, false},
	}

	for _, tc := range tests {
		level, ok := parseLevel(tc.value)
		require.Equal(t, tc.wantOK, ok, "value %q", tc.value)
		if ok {
			require.Equal(t, tc.want, level, "value %q", tc.value)
		}
	}
}
