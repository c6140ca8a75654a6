package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/blockfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveArgs(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	f, err := parseFlags(fs, args)
	require.NoError(t, err)
	return f.resolve()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolve(t *testing.T) {
	path := writeConfig(t, "seed: 9\nfrontend: window\nfield: {width: 8}\n")

	t.Run("no flags gives the defaults", func(t *testing.T) {
		cfg, err := resolveArgs(t)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("file values survive unset flags", func(t *testing.T) {
		cfg, err := resolveArgs(t, "-config", path)
		require.NoError(t, err)
		assert.Equal(t, uint64(9), cfg.Seed)
		assert.Equal(t, config.FrontendWindow, cfg.Frontend)
		assert.Equal(t, 8, cfg.Field.Width)
		assert.True(t, cfg.Audio)
		assert.False(t, cfg.Logging.Debug)
	})

	t.Run("explicit flags win over the file", func(t *testing.T) {
		cfg, err := resolveArgs(t, "-config", path, "-seed", "3", "-frontend", "terminal")
		require.NoError(t, err)
		assert.Equal(t, uint64(3), cfg.Seed)
		assert.Equal(t, config.FrontendTerminal, cfg.Frontend)
		assert.Equal(t, 8, cfg.Field.Width)
	})

	t.Run("explicit zero seed overrides the file", func(t *testing.T) {
		cfg, err := resolveArgs(t, "-config", path, "-seed", "0")
		require.NoError(t, err)
		assert.Zero(t, cfg.Seed)
	})

	t.Run("switches", func(t *testing.T) {
		cfg, err := resolveArgs(t, "-no-audio", "-debug")
		require.NoError(t, err)
		assert.False(t, cfg.Audio)
		assert.True(t, cfg.Logging.Debug)
	})

	t.Run("unknown frontend", func(t *testing.T) {
		_, err := resolveArgs(t, "-frontend", "vr")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("bad config file", func(t *testing.T) {
		_, err := resolveArgs(t, "-config", writeConfig(t, "field: {width: -1}\n"))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestParseFlagsRejectsBadValues(t *testing.T) {
	fs := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	_, err := parseFlags(fs, []string{"-seed", "minus one"})
	assert.Error(t, err)
}
