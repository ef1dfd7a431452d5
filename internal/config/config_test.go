package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thiele/internal/config"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thiele.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestLoadFromEnv_Defaults verifies the defaults without file or overrides.
func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, []string{"stderr"}, cfg.Log.OutputPaths)
	assert.True(t, cfg.Aromatize.FixTautomers)
	assert.True(t, cfg.Aromatize.FixMetalOrganics)
	assert.Zero(t, cfg.Enumerate.Limit)
	assert.Equal(t, config.DefaultWorkers(), cfg.Worker.Count)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, config.OutputText, cfg.Output.Format)
}

// TestLoad_File verifies that file values replace defaults and keep the
// rest.
func TestLoad_File(t *testing.T) {
	path := writeYAML(t, `
log:
  level: debug
aromatize:
  fix_tautomers: false
enumerate:
  limit: 10
output:
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Aromatize.FixTautomers)
	assert.True(t, cfg.Aromatize.FixMetalOrganics)
	assert.Equal(t, 10, cfg.Enumerate.Limit)
	assert.Equal(t, config.OutputJSON, cfg.Output.Format)
}

// TestLoad_EnvOverridesFile verifies THIELE_* priority over the file.
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeYAML(t, "worker:\n  count: 2\n")
	t.Setenv("THIELE_WORKER_COUNT", "3")
	t.Setenv("THIELE_AROMATIZE_FIX_METAL_ORGANICS", "false")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Worker.Count)
	assert.False(t, cfg.Aromatize.FixMetalOrganics)
}

// TestLoad_Errors verifies unreadable files and validation failures.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	for name, body := range map[string]string{
		"level":   "log:\n  level: chatty\n",
		"format":  "log:\n  format: xml\n",
		"limit":   "enumerate:\n  limit: -1\n",
		"workers": "worker:\n  count: 0\n",
		"output":  "output:\n  format: csv\n",
	} {
		_, err := config.Load(writeYAML(t, body))
		assert.Error(t, err, name)
	}
}
