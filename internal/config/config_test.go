package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotube/internal/units"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvUnits, EnvOutputDir, EnvDebug} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, units.Metric, cfg.Units)
	assert.Empty(t, cfg.OutputDir)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUnits, "US")
	t.Setenv(EnvOutputDir, "reports")
	t.Setenv(EnvDebug, "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, units.Imperial, cfg.Units)
	assert.Equal(t, "reports", cfg.OutputDir)
	assert.True(t, cfg.Debug)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, so unset
	// the ones the file provides; t.Setenv above restores them afterwards
	require.NoError(t, os.Unsetenv(EnvUnits))
	require.NoError(t, os.Unsetenv(EnvOutputDir))

	path := filepath.Join(t.TempDir(), "gotube.env")
	require.NoError(t, os.WriteFile(path, []byte("GOTUBE_UNITS=imperial\nGOTUBE_OUTPUT_DIR=/tmp/gotube\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, units.Imperial, cfg.Units)
	assert.Equal(t, "/tmp/gotube", cfg.OutputDir)

	// Load exported them into the process environment
	require.NoError(t, os.Unsetenv(EnvUnits))
	require.NoError(t, os.Unsetenv(EnvOutputDir))
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUnits, "cgs")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, units.ErrUnknownUnit)

	t.Setenv(EnvUnits, "")
	t.Setenv(EnvDebug, "maybe")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	cfg := Config{OutputDir: "out"}
	assert.Equal(t, filepath.Join("out", "run.xlsx"), cfg.OutputPath("run.xlsx"))
	assert.Equal(t, "/abs/run.xlsx", cfg.OutputPath("/abs/run.xlsx"))
	assert.Equal(t, "", cfg.OutputPath(""))
	assert.Equal(t, "run.xlsx", Config{}.OutputPath("run.xlsx"))
}
