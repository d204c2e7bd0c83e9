package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergiomgn/EasyFinance/pkg/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".", cfg.RepoDir)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.Telemetry)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "log_level: debug\ndry_run: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".efops.yaml"), []byte(content), 0o644))
	chdir(t, dir)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DryRun)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".efops.yaml"), []byte("log_level: debug\n"), 0o644))
	chdir(t, dir)
	t.Setenv("EFOPS_LOG_LEVEL", "warn")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadRejectsBadLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".efops.yaml"), []byte("log_level: loud\n"), 0o644))
	chdir(t, dir)

	_, err := config.Load()

	assert.Error(t, err)
}
