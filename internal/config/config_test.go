package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "auto", cfg.Color)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultMaxSteps, cfg.Reduce.MaxSteps)
	assert.Contains(t, cfg.HistoryFile, ".fluxo_history")
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, FileUsed())
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FLUXO_COLOR", "never")
	t.Setenv("FLUXO_REDUCE_MAX_STEPS", "123")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 123, cfg.Reduce.MaxSteps)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fluxo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: always\nreduce:\n  max_steps: 42\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "always", cfg.Color)
	assert.Equal(t, 42, cfg.Reduce.MaxSteps)
	assert.Equal(t, path, FileUsed())
	// Unset keys keep their defaults.
	assert.Equal(t, Default().HistoryFile, cfg.HistoryFile)
}

func TestLoadFindsLocalFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("fluxo.yaml", []byte("color: never\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "fluxo.yaml", FileUsed())
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FLUXO_VERBOSE", "false")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Set("verbose", "true"))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
}

func TestLoadIgnoresUnchangedFlags(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FLUXO_VERBOSE", "true")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("verbose", false, "")

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose, "an unchanged flag must not mask the environment")
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fluxo.yaml")

	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = WriteDefault(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

// chdir mirrors t.Chdir, which requires Go 1.24; this toolchain is older.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
