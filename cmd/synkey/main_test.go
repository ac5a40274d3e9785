package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TKMAX777/synkey/config"
)

func TestParseArgsDefaults(t *testing.T) {
	opts, err := parseArgs([]string{"client"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "client", opts.mode)
	assert.Empty(t, opts.configPath)
	assert.Equal(t, config.Default(), opts.cfg)
}

func TestParseArgsOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synkey.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n[keyboard]\nbackend = \"x11\"\n"), 0o600))

	opts, err := parseArgs([]string{"server", "-c", path, "--backend", "uinput"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "host", opts.mode)
	assert.Equal(t, path, opts.configPath)
	assert.Equal(t, "warn", opts.cfg.Log.Level)
	assert.Equal(t, config.BackendUinput, opts.cfg.Keyboard.Backend)
}

func TestParseArgsRejects(t *testing.T) {
	var stderr bytes.Buffer

	_, err := parseArgs(nil, &stderr)
	assert.ErrorIs(t, err, errUsage)

	_, err = parseArgs([]string{"relay"}, &stderr)
	assert.ErrorIs(t, err, errUsage)

	_, err = parseArgs([]string{"host", "--backend", "wayland"}, &stderr)
	assert.ErrorIs(t, err, config.ErrUnknownBackend)

	_, err = parseArgs([]string{"--help"}, &stderr)
	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, stderr.String(), "--config")
}
