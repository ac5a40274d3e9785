package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TKMAX777/synkey/keymap"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "synkey.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, BackendAuto, cfg.Keyboard.Backend)

	id, mask, err := cfg.ReleaseKey()
	require.NoError(t, err)
	assert.Equal(t, keymap.FunctionKey(8), id)
	assert.Zero(t, mask)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[log]
level = "debug"

[keyboard]
half_duplex = ["CapsLock", "NumLock"]
backend = "uinput"

[capture]
release_key = "Control+Alt+Escape"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep their default")

	mask, err := cfg.HalfDuplexMask()
	require.NoError(t, err)
	assert.Equal(t, keymap.KeyModifierCapsLock|keymap.KeyModifierNumLock, mask)

	id, mods, err := cfg.ReleaseKey()
	require.NoError(t, err)
	assert.Equal(t, keymap.KeyEscape, id)
	assert.Equal(t, keymap.KeyModifierControl|keymap.KeyModifierAlt, mods)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"backend", "[keyboard]\nbackend = \"wayland\"\n", ErrUnknownBackend},
		{"lock key", "[keyboard]\nhalf_duplex = [\"ShiftLock\"]\n", ErrUnknownLockKey},
		{"release key", "[capture]\nrelease_key = \"Control+Control+A\"\n", ErrBadReleaseKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, errors.Cause(err), tt.want)
		})
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[keyboard]\nhalf_duplex = []\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan *Config, 4)
	require.NoError(t, Watch(ctx, path, func(c *Config) { changed <- c }, func(error) {}))

	require.NoError(t, os.WriteFile(path, []byte("[keyboard]\nhalf_duplex = [\"CapsLock\"]\n"), 0o644))

	select {
	case cfg := <-changed:
		mask, err := cfg.HalfDuplexMask()
		require.NoError(t, err)
		assert.Equal(t, keymap.KeyModifierCapsLock, mask)
	case <-time.After(5 * time.Second):
		t.Fatal("config change not delivered")
	}
}
