package logger

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/randomairborne/google-classroom/pkg/config"
)

func TestNewHonoursLevel(t *testing.T) {
	cfg := &config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn", Format: "console"}}
	l, err := New(cfg)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNewFallsBackToInfo(t *testing.T) {
	cfg := &config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Level: "loud"}}
	l, err := New(cfg)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewWritesJSONEntries(t *testing.T) {
	buf := &zaptest.Buffer{}
	cfg := &config.Config{
		Env:       config.EnvProduction,
		Classroom: config.ClassroomConfig{APIVersion: 1},
		Log:       config.LogConfig{Level: "info", Format: "json"},
	}
	l, err := New(cfg, WithOutput(buf))
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("checked", zap.String("kind", "course"))
	require.NoError(t, l.Sync())

	lines := buf.Lines()
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "checked", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "course", entry["kind"])
	assert.Equal(t, 1.0, entry["api_version"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewConsoleFormat(t *testing.T) {
	buf := &zaptest.Buffer{}
	cfg := &config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Level: "debug", Format: "console"}}
	l, err := New(cfg, WithOutput(buf))
	require.NoError(t, err)

	l.Debug("verbose")
	require.NoError(t, l.Sync())
	require.Len(t, buf.Lines(), 1)
	assert.Contains(t, buf.Lines()[0], "DEBUG")
	assert.Contains(t, buf.Lines()[0], "verbose")
}

func TestFileOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	FileOutcome(l, "course.json", "course", 2, nil)
	FileOutcome(l, "bad.json", "course", 0, errors.New("name: is required"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "course.json", entries[0].ContextMap()["file"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "name: is required", entries[1].ContextMap()["error"])
}
