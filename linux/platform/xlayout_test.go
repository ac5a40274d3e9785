package platform

import (
	"testing"

	evdev "github.com/holoplot/go-evdev"
	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TKMAX777/synkey/keymap"
)

const testKeysymsPer = 6

// testXLayout is a pc105 mapping with both a Mode_switch and an
// ISO_Level3_Shift key on Mod5.
func testXLayout() *xLayout {
	rows := map[xproto.Keycode][]xproto.Keysym{
		10:  {'1', '!'},
		24:  {'q'},
		37:  {0xffe3},                         // Control_L
		38:  {'a', 'A', 'a', 'A', 0xe1, 0xc1}, // aacute Aacute
		50:  {0xffe1},                         // Shift_L
		62:  {0xffe2},                         // Shift_R
		64:  {0xffe9, 0xffe7},                 // Alt_L Meta_L
		66:  {0xffe5},                         // Caps_Lock
		77:  {0xff7f},                         // Num_Lock
		79:  {0xff95, 0xffb7},                 // KP_Home KP_7
		92:  {xkModeSwitch},
		108: {xkISOLevel3Shift},
	}
	l := &xLayout{
		minKeycode:          8,
		keysymsPer:          testKeysymsPer,
		keysyms:             make([]xproto.Keysym, (120-8)*testKeysymsPer),
		keycodesPerModifier: 2,
		modifierKeycodes: []xproto.Keycode{
			50, 62, // Shift
			66, 0,  // Lock
			37, 0,  // Control
			64, 0,  // Mod1
			77, 0,  // Mod2
			0, 0,
			0, 0,
			108, 92, // Mod5
		},
	}
	for kc, syms := range rows {
		copy(l.row(kc), syms)
	}
	return l
}

func TestXLayoutModifiers(t *testing.T) {
	m := keymap.New()
	mods := testXLayout().fill(m)
	m.Finish()

	assert.True(t, mods.level3)
	assert.Equal(t, [8]keymap.KeyModifierMask{
		keymap.KeyModifierShift,
		keymap.KeyModifierCapsLock,
		keymap.KeyModifierControl,
		keymap.KeyModifierAlt,
		keymap.KeyModifierNumLock,
		0,
		0,
		keymap.KeyModifierModeSwitch,
	}, mods.bits)

	assert.Equal(t, keymap.KeyModifierModeSwitch, m.ModifierForButton(108))
	assert.Zero(t, m.ModifierForButton(92), "Mode_switch loses to ISO_Level3_Shift")
	assert.Equal(t, []keymap.KeyButton{50, 62}, m.ModifierButtons(keymap.KeyModifierShift))

	altGr, ok := m.Mapping(0, keymap.KeyAltGr)
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(108), altGr.Keycode[keymap.LevelPlain])
}

func TestXLayoutLevels(t *testing.T) {
	m := keymap.New()
	testXLayout().fill(m)
	m.Finish()

	upper, ok := m.Mapping(0, 'A')
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(38), upper.Keycode[keymap.LevelShift])
	assert.True(t, upper.ShiftSensitive[keymap.LevelShift])
	assert.True(t, upper.CapsLockSensitive)

	aacute, ok := m.Mapping(0, 0xe1)
	require.True(t, ok, "level 3 comes from columns 4 and 5")
	assert.Equal(t, keymap.KeyButton(38), aacute.Keycode[keymap.LevelModeSwitch])
	assert.True(t, aacute.ModeSwitchSensitive[keymap.LevelModeSwitch])

	q, ok := m.Mapping(0, 'Q')
	require.True(t, ok, "a lone letter gets its upper case on shift")
	assert.Equal(t, keymap.KeyButton(24), q.Keycode[keymap.LevelShift])

	one, ok := m.Mapping(0, '1')
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(10), one.Keycode[keymap.LevelModeSwitch], "empty level 3 repeats the base levels")
	assert.False(t, one.ModeSwitchSensitive[keymap.LevelModeSwitch])
	assert.False(t, one.CapsLockSensitive)

	kp7, ok := m.Mapping(0, keymap.KeyKP7)
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(79), kp7.Keycode[keymap.LevelShift])
	assert.True(t, kp7.NumLockSensitive)

	shift, ok := m.Mapping(0, keymap.KeyShiftL)
	require.True(t, ok)
	assert.False(t, shift.ShiftSensitive[keymap.LevelPlain])
}

func TestXLayoutGroupTwoWithoutLevel3(t *testing.T) {
	// Mode_switch on Mod5 selects columns 2 and 3
	l := &xLayout{
		minKeycode:          8,
		keysymsPer:          4,
		keysyms:             make([]xproto.Keysym, (100-8)*4),
		keycodesPerModifier: 1,
		modifierKeycodes:    []xproto.Keycode{0, 0, 0, 0, 0, 0, 0, 92},
	}
	copy(l.row(38), []xproto.Keysym{'a', 'A', 0xe5, 0xc5}) // aring Aring
	copy(l.row(92), []xproto.Keysym{xkModeSwitch})

	m := keymap.New()
	mods := l.fill(m)
	m.Finish()

	assert.False(t, mods.level3)
	assert.Equal(t, keymap.KeyModifierModeSwitch, m.ModifierForButton(92))
	aring, ok := m.Mapping(0, 0xe5)
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(38), aring.Keycode[keymap.LevelModeSwitch])
}

func TestMaskFromXState(t *testing.T) {
	bits := testXLayout().modifiers().bits
	assert.Equal(t, keymap.KeyModifierShift|keymap.KeyModifierNumLock, maskFromXState(0x0001|0x0010, bits))
	assert.Equal(t, keymap.KeyModifierModeSwitch, maskFromXState(0x0080, bits))
	assert.Zero(t, maskFromXState(0x0020|0x0040, bits), "unused modifier bits")
}

func TestKeysFromBitmap(t *testing.T) {
	keys := make([]byte, 32)
	keys[1] = 0x04 // keycode 10
	keys[4] = 0x40 // keycode 38
	assert.Equal(t, []keymap.KeyButton{10, 38}, keysFromBitmap(keys))
	assert.Empty(t, keysFromBitmap(make([]byte, 32)))
}

func TestUSLayoutMatchesXKeycodes(t *testing.T) {
	m := keymap.New()
	usLayout(m)
	m.Finish()

	a, ok := m.Mapping(0, 'a')
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(38), a.Keycode[keymap.LevelPlain])
	assert.Equal(t, 30, CodeForButton(a.Keycode[keymap.LevelPlain]))

	at, ok := m.Mapping(0, '@')
	require.True(t, ok)
	assert.Equal(t, ButtonForCode(evdev.KEY_2), at.Keycode[keymap.LevelShift])

	f8, ok := m.Mapping(0, keymap.FunctionKey(8))
	require.True(t, ok)
	assert.Equal(t, ButtonForCode(evdev.KEY_F8), f8.Keycode[keymap.LevelPlain])

	assert.Equal(t, keymap.KeyModifierCapsLock, m.ModifierForButton(66))
	assert.Equal(t, keymap.KeyModifierShift, m.ModifierForButton(50))
}
