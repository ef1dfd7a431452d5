package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/thiele/internal/logging"
)

// TestParseLevel verifies level names and the empty default.
func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

// TestNew_JSONFile verifies that records reach the configured path as JSON
// and that the level filter applies.
func TestNew_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thiele.log")
	l, err := logging.New(logging.Config{Level: "warn", Format: "json", OutputPaths: []string{path}})
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept", zap.Int("atoms", 6))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"kept"`)
	assert.Contains(t, lines[0], `"atoms":6`)
	assert.Contains(t, lines[0], `"ts":`)
}

// TestNew_Errors verifies rejected configurations.
func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "verbose"})
	assert.Error(t, err)
	_, err = logging.New(logging.Config{Format: "xml"})
	assert.Error(t, err)
	_, err = logging.New(logging.Config{Format: "console", Level: "debug"})
	assert.NoError(t, err)
}

// TestWithRun verifies the run id field.
func TestWithRun(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.WithRun(zap.New(core), "abc").Info("start")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0].ContextMap()["run_id"])
}
