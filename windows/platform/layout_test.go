package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TKMAX777/synkey/keymap"
)

func TestButtonForScanCode(t *testing.T) {
	assert.Equal(t, keymap.KeyButton(0x2A), ButtonForScanCode(0x2A))
	assert.Equal(t, keymap.KeyButton(0x11D), ButtonForScanCode(0xE01D))
	assert.Equal(t, keymap.KeyButton(0x11D), ButtonForScanCode(0xE11D))
}

func TestButtonForRawKey(t *testing.T) {
	b, down := ButtonForRawKey(0x1D, riKeyE0)
	assert.Equal(t, keymap.KeyButton(0x11D), b)
	assert.True(t, down)

	b, down = ButtonForRawKey(0x1E, riKeyBreak)
	assert.Equal(t, keymap.KeyButton(0x1E), b)
	assert.False(t, down)
}

// a few keys of the German layout
var german = Layout{Keys: []Key{
	{VK: 'A', Button: 0x1E, Chars: [4]rune{'a', 'A'}},
	{VK: 'Q', Button: 0x10, Chars: [4]rune{'q', 'Q', '@'}},
	{VK: 0xDD, Button: 0x0D, Chars: [4]rune{0x00B4, '`'}, Dead: [4]bool{true, true}},
	{VK: keymap.VK_LSHIFT, Button: 0x2A},
	{VK: keymap.VK_RMENU, Button: 0x138},
	{VK: keymap.VK_CAPITAL, Button: 0x3A},
	{VK: keymap.VK_NUMPAD0 + 1, Button: 0x4F},
}}

func filled(t *testing.T, l Layout) *keymap.KeyMap {
	t.Helper()
	m := keymap.New()
	l.Fill(m, 0)
	m.Finish()
	return m
}

func TestLayoutFill(t *testing.T) {
	require.True(t, german.HasAltGr())
	m := filled(t, german)

	a, ok := m.Mapping(0, 'a')
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(0x1E), a.Keycode[keymap.LevelPlain])
	assert.True(t, a.CapsLockSensitive)

	at, ok := m.Mapping(0, '@')
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(0x10), at.Keycode[keymap.LevelModeSwitch])
	assert.True(t, at.ModeSwitchSensitive[keymap.LevelModeSwitch])

	acute, ok := m.Mapping(0, keymap.KeyDeadAcute)
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(0x0D), acute.Keycode[keymap.LevelPlain])
	grave, ok := m.Mapping(0, keymap.KeyDeadGrave)
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(0x0D), grave.Keycode[keymap.LevelShift])

	assert.Equal(t, keymap.KeyModifierShift, m.ModifierForButton(0x2A))
	assert.Equal(t, keymap.KeyModifierModeSwitch, m.ModifierForButton(0x138))
	assert.Equal(t, keymap.KeyModifierCapsLock, m.ModifierForButton(0x3A))
}

func TestLayoutFillKeypad(t *testing.T) {
	m := filled(t, german)

	one, ok := m.Mapping(0, keymap.KeyKP1)
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(0x4F), one.Keycode[keymap.LevelPlain])
	assert.True(t, one.NumLockSensitive)

	end, ok := m.Mapping(0, keymap.KeyKPEnd)
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(0x4F), end.Keycode[keymap.LevelShift])
}

func TestLayoutFillWithoutAltGr(t *testing.T) {
	us := Layout{Keys: []Key{
		{VK: 'A', Button: 0x1E, Chars: [4]rune{'a', 'A'}},
		{VK: keymap.VK_RMENU, Button: 0x138},
	}}
	require.False(t, us.HasAltGr())
	m := filled(t, us)

	assert.Equal(t, keymap.KeyModifierAlt, m.ModifierForButton(0x138))
	altR, ok := m.Mapping(0, keymap.KeyAltR)
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(0x138), altR.Keycode[keymap.LevelPlain])
	_, ok = m.Mapping(0, keymap.KeyAltGr)
	assert.False(t, ok)
}

func TestLayoutFillSkipsControlCharacters(t *testing.T) {
	m := filled(t, Layout{Keys: []Key{
		{VK: 0xBA, Button: 0x27, Chars: [4]rune{0x1B, 0x7f}},
	}})
	_, ok := m.Mapping(0, 0x1B)
	assert.False(t, ok)
}
