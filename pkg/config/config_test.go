package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader_EnvPrefix(t *testing.T) {
	l := NewLoader("my-app")
	assert.Equal(t, "MY_APP", l.envPrefix)
}

func TestLoader_Path(t *testing.T) {
	l := NewLoader("demo")

	t.Setenv("DEMO_CONFIG", "/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", l.Path())

	t.Setenv("DEMO_CONFIG", "")
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "demo", "config.yaml"), l.Path())
}

func TestLoader_LoadMissingFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("DEMO_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := NewLoader("demo").Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.DefaultCommand)
	assert.False(t, cfg.Verbose)
}

func TestLoader_LoadFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_command: demo\nverbose: true\ncwd: /srv\n"), 0600))
	t.Setenv("DEMO_CONFIG", path)

	cfg, err := NewLoader("demo").Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.DefaultCommand)
	assert.Equal(t, "demo", *cfg.DefaultCommand)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, "/srv", cfg.Cwd)
}

func TestLoader_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: [unclosed"), 0600))
	t.Setenv("DEMO_CONFIG", path)

	_, err := NewLoader("demo").Load()
	assert.Error(t, err)
}

func TestLoader_EnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_command: demo\nverbose: true\n"), 0600))
	t.Setenv("DEMO_CONFIG", path)
	t.Setenv("DEMO_DEFAULT_COMMAND", "")
	t.Setenv("DEMO_VERBOSE", "false")
	t.Setenv("NO_COLOR", "1")

	cfg, err := NewLoader("demo").Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.DefaultCommand)
	assert.Equal(t, "", *cfg.DefaultCommand, "an empty variable disables the fallback")
	assert.False(t, cfg.Verbose)
	assert.True(t, cfg.NoColor)
}

func TestLoader_SaveRoundTrip(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv("DEMO_CONFIG", path)

	cmd := "help"
	l := NewLoader("demo")
	require.NoError(t, l.Save(&Config{DefaultCommand: &cmd, NoColor: true}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "help", *cfg.DefaultCommand)
	assert.True(t, cfg.NoColor)
}
