package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chtemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chtemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "stockview", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "./data", cfg.Dataset.Dir)
	assert.Equal(t, "views", cfg.Views.Output)
	assert.False(t, cfg.Views.Pretty)
}

func TestLoadFromFile(t *testing.T) {
	chtemp(t)

	toml := `
[app]
env = "production"

[log]
level = "debug"

[dataset]
dir = "/var/lib/stockview/data"

[views]
location_usages = ["internal", "transit"]
output = "summary"
pretty = true
`
	require.NoError(t, os.WriteFile("config.toml", []byte(toml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "json", cfg.Log.Format, "production defaults to json format")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/lib/stockview/data", cfg.Dataset.Dir)
	assert.Equal(t, []string{"internal", "transit"}, cfg.Views.LocationUsages)
	assert.Equal(t, "summary", cfg.Views.Output)
	assert.True(t, cfg.Views.Pretty)
}

func TestLoadEnvOverride(t *testing.T) {
	chtemp(t)
	require.NoError(t, os.WriteFile("config.toml", []byte("[dataset]\ndir = \"/from/file\"\n"), 0o644))

	t.Setenv("STOCKVIEW_DATASET_DIR", "/from/env")
	t.Setenv("STOCKVIEW_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Dataset.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chtemp(t)

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("STOCKVIEW_LOG_LEVEL", "verbose")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("bad views output", func(t *testing.T) {
		t.Setenv("STOCKVIEW_VIEWS_OUTPUT", "csv")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad config file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(".", "config.toml"), []byte("not toml ["), 0o644))
		_, err := Load()
		assert.Error(t, err)
	})
}
