package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapcal/internal/nutrition"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)

	assert.Equal(t, defaultModel, cfg.Model)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, nutrition.DefaultGoal(), cfg.Goals)
	assert.True(t, strings.HasPrefix(cfg.DataDir, home), "DataDir = %q, want under HOME", cfg.DataDir)
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
model = "  gemini-2.5-pro  "
data_dir = "  ~/.snapcal-data  "
timeout_seconds = 45

[goals]
calories = 1800
protein = 120
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.True(t, strings.HasPrefix(cfg.DataDir, home), "DataDir = %q, want under HOME", cfg.DataDir)

	// Partial goals: explicit fields override, the rest keep defaults.
	assert.Equal(t, 1800.0, cfg.Goals.Calories)
	assert.Equal(t, 120.0, cfg.Goals.Protein)
	assert.Equal(t, nutrition.DefaultGoal().Carbs, cfg.Goals.Carbs)
	assert.Equal(t, nutrition.DefaultGoal().Fat, cfg.Goals.Fat)
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
model = "   "
data_dir = ""
timeout_seconds = 0
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, defaultModel, cfg.Model)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`model = [`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLogPath(t *testing.T) {
	cfg := Config{DataDir: "/tmp/snapcal"}
	assert.Equal(t, filepath.Join("/tmp/snapcal", "snapcal.log"), cfg.LogPath())
}

func TestAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv(APIKeyEnv, "  secret-key ")
	assert.Equal(t, "secret-key", APIKey())

	t.Setenv(APIKeyEnv, "")
	assert.Empty(t, APIKey())
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a/b"), got)
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	_, err := expandPath("   ")
	require.Error(t, err)
}
