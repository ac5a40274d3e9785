// Package config loads the TOML configuration shared by client and host.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/TKMAX777/synkey/keymap"
)

// Config is the whole configuration file.
type Config struct {
	Log       LogConfig       `toml:"log"`
	Keyboard  KeyboardConfig  `toml:"keyboard"`
	Capture   CaptureConfig   `toml:"capture"`
	Transport TransportConfig `toml:"transport"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type KeyboardConfig struct {
	// HalfDuplex lists lock keys whose hardware reports press-only:
	// "CapsLock", "NumLock", "ScrollLock".
	HalfDuplex []string `toml:"half_duplex"`

	// Backend is "auto", "x11" or "uinput".
	Backend string `toml:"backend"`

	// Devices are evdev nodes to read. Empty means every keyboard.
	Devices []string `toml:"devices"`
}

type CaptureConfig struct {
	// ReleaseKey stops capturing, e.g. "F8" or "Control+Alt+Escape".
	ReleaseKey string `toml:"release_key"`
}

type TransportConfig struct {
	// Pipe is a Windows named pipe path; empty uses stdin/stdout.
	Pipe string `toml:"pipe"`
}

const (
	BackendAuto   = "auto"
	BackendX11    = "x11"
	BackendUinput = "uinput"
)

var (
	ErrUnknownBackend = errors.New("unknown keyboard backend")
	ErrUnknownLockKey = errors.New("unknown half-duplex lock key")
	ErrBadReleaseKey  = errors.New("bad capture release key")
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:      LogConfig{Level: "info", Format: "text"},
		Keyboard: KeyboardConfig{Backend: BackendAuto},
		Capture:  CaptureConfig{ReleaseKey: "F8"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %s", path)
	}
	return cfg, nil
}

// Validate checks the values that are parsed later on.
func (c *Config) Validate() error {
	switch c.Keyboard.Backend {
	case "", BackendAuto, BackendX11, BackendUinput:
	default:
		return errors.Wrapf(ErrUnknownBackend, "%q", c.Keyboard.Backend)
	}
	if _, err := c.HalfDuplexMask(); err != nil {
		return err
	}
	if _, _, err := c.ReleaseKey(); err != nil {
		return err
	}
	return nil
}

var lockKeys = map[string]keymap.KeyModifierMask{
	"CapsLock":   keymap.KeyModifierCapsLock,
	"NumLock":    keymap.KeyModifierNumLock,
	"ScrollLock": keymap.KeyModifierScrollLock,
}

// HalfDuplexMask converts Keyboard.HalfDuplex to a modifier mask.
func (c *Config) HalfDuplexMask() (keymap.KeyModifierMask, error) {
	var mask keymap.KeyModifierMask
	for _, name := range c.Keyboard.HalfDuplex {
		m, ok := lockKeys[name]
		if !ok {
			return 0, errors.Wrapf(ErrUnknownLockKey, "%q", name)
		}
		mask |= m
	}
	return mask, nil
}

// ReleaseKey parses Capture.ReleaseKey.
func (c *Config) ReleaseKey() (keymap.KeyID, keymap.KeyModifierMask, error) {
	if c.Capture.ReleaseKey == "" {
		return keymap.KeyNone, 0, nil
	}
	id, mask, err := keymap.ParseKeyCombo(c.Capture.ReleaseKey)
	if err != nil {
		return keymap.KeyNone, 0, errors.Wrap(ErrBadReleaseKey, err.Error())
	}
	return id, mask, nil
}
