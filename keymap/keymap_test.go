package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buttons of the test layout, X keycodes of a pc105 keyboard
const (
	btnA       KeyButton = 38
	btnE       KeyButton = 26
	btnOne     KeyButton = 10
	btnTab     KeyButton = 23
	btnShiftL  KeyButton = 50
	btnShiftR  KeyButton = 62
	btnCaps    KeyButton = 66
	btnAltGr   KeyButton = 108
	btnDead    KeyButton = 48
	btnCompose KeyButton = 135
	btnQuote   KeyButton = 51
	btnPause   KeyButton = 127
)

type testState struct {
	mask KeyModifierMask
	down map[KeyButton]bool
}

func (s *testState) ActiveModifiers() KeyModifierMask { return s.mask }

func (s *testState) IsModifierActive(mask KeyModifierMask) bool { return s.mask&mask != 0 }

func (s *testState) IsKeyDown(b KeyButton) bool { return s.down[b] }

func idle() *testState { return &testState{down: map[KeyButton]bool{}} }

func addLetter(m *KeyMap, lower KeyID, b KeyButton) {
	m.AddKey(0, lower, LevelPlain, b, true, false)
	m.AddKey(0, ToUpper(lower), LevelShift, b, true, false)
}

func testLayout(deadKeys, compose bool) *KeyMap {
	m := New()
	addLetter(m, 'a', btnA)
	addLetter(m, 'e', btnE)
	m.AddKey(0, '1', LevelPlain, btnOne, true, false)
	m.AddKey(0, '!', LevelShift, btnOne, true, false)
	m.AddKey(0, KeyTab, LevelPlain, btnTab, false, false)
	m.AddKey(0, KeyShiftL, LevelPlain, btnShiftL, false, false)
	m.AddKey(0, KeyShiftR, LevelPlain, btnShiftR, false, false)
	m.AddKey(0, KeyCapsLock, LevelPlain, btnCaps, false, false)
	m.AddKey(0, KeyAltGr, LevelPlain, btnAltGr, false, false)
	m.AddKey(0, 0x00E6, LevelModeSwitch, btnA, false, true) // ae
	m.AddKey(0, KeyPause, LevelPlain, btnPause, false, false)
	if deadKeys {
		m.AddKey(0, KeyDeadAcute, LevelPlain, btnDead, false, false)
	}
	if compose {
		m.AddKey(0, KeyCompose, LevelPlain, btnCompose, false, false)
		m.AddKey(0, '\'', LevelPlain, btnQuote, true, false)
		m.AddKey(0, '"', LevelShift, btnQuote, true, false)
	}
	m.AddModifier(KeyModifierShift, btnShiftL, btnShiftR)
	m.AddModifier(KeyModifierCapsLock, btnCaps)
	m.AddModifier(KeyModifierModeSwitch, btnAltGr)
	m.Finish()
	return m
}

func press(b KeyButton) Keystroke   { return Keystroke{Button: b, Press: true} }
func release(b KeyButton) Keystroke { return Keystroke{Button: b} }

func TestMapKeyPlain(t *testing.T) {
	m := testLayout(false, false)
	keys, button := m.MapKey(idle(), 0, 'a', 0, false)
	assert.Equal(t, Keystrokes{press(btnA)}, keys)
	assert.Equal(t, btnA, button)
}

func TestMapKeyAddsShift(t *testing.T) {
	m := testLayout(false, false)
	keys, button := m.MapKey(idle(), 0, 'A', 0, false)
	assert.Equal(t, Keystrokes{press(btnShiftL), press(btnA), release(btnShiftL)}, keys)
	assert.Equal(t, btnA, button)
}

func TestMapKeyReleasesHeldShift(t *testing.T) {
	m := testLayout(false, false)
	state := idle()
	state.mask = KeyModifierShift
	state.down[btnShiftR] = true

	keys, _ := m.MapKey(state, 0, 'a', 0, false)
	assert.Equal(t, Keystrokes{release(btnShiftR), press(btnA), press(btnShiftR)}, keys)
}

func TestMapKeyCapsLockInvertsShift(t *testing.T) {
	m := testLayout(false, false)
	state := idle()
	state.mask = KeyModifierCapsLock

	keys, _ := m.MapKey(state, 0, 'a', 0, false)
	assert.Equal(t, Keystrokes{press(btnShiftL), press(btnA), release(btnShiftL)}, keys)

	keys, _ = m.MapKey(state, 0, 'A', 0, false)
	assert.Equal(t, Keystrokes{press(btnA)}, keys)

	// digits are not letters, caps lock leaves them alone
	keys, _ = m.MapKey(state, 0, '1', 0, false)
	assert.Equal(t, Keystrokes{press(btnOne)}, keys)
}

func TestMapKeyModeSwitch(t *testing.T) {
	m := testLayout(false, false)
	keys, button := m.MapKey(idle(), 0, 0x00E6, 0, false)
	assert.Equal(t, Keystrokes{press(btnAltGr), press(btnA), release(btnAltGr)}, keys)
	assert.Equal(t, btnA, button)
}

func TestFinishDropsModeSwitchLevelsWithoutModeSwitchKey(t *testing.T) {
	m := New()
	m.AddKey(0, 0x00E6, LevelModeSwitch, btnA, false, true)
	m.Finish()

	keys, button := m.MapKey(idle(), 0, 0x00E6, 0, false)
	assert.Empty(t, keys)
	assert.Zero(t, button)
}

func TestFinishFillsOtherHand(t *testing.T) {
	m := New()
	m.AddKey(0, KeyControlL, LevelPlain, 37, false, false)
	m.AddModifier(KeyModifierControl, 37)
	m.Finish()

	mapping, ok := m.Mapping(0, KeyControlR)
	require.True(t, ok)
	assert.Equal(t, KeyButton(37), mapping.Keycode[LevelPlain])
	assert.Equal(t, KeyModifierControl, mapping.ModifierMask)
}

func TestMapKeyLeftTab(t *testing.T) {
	m := testLayout(false, false)
	want := Keystrokes{press(btnShiftL), press(btnTab), release(btnShiftL)}

	keys, button := m.MapKey(idle(), 0, KeyLeftTab, 0, false)
	assert.Equal(t, want, keys)
	assert.Equal(t, btnTab, button)

	// shift+tab on a layout without ISO_Left_Tab is tab with shift held
	keys, _ = m.MapKey(idle(), 0, KeyTab, KeyModifierShift, false)
	assert.Equal(t, want, keys)
}

func TestMapKeyPrefersDesiredLevel(t *testing.T) {
	m := New()
	m.AddKey(0, 'x', LevelPlain, 53, true, false)
	m.AddKey(0, 'x', LevelShift, 54, true, false)
	m.AddKey(0, KeyShiftL, LevelPlain, btnShiftL, false, false)
	m.AddModifier(KeyModifierShift, btnShiftL)
	m.Finish()

	keys, button := m.MapKey(idle(), 0, 'x', 0, false)
	assert.Equal(t, Keystrokes{press(53)}, keys)
	assert.Equal(t, KeyButton(53), button)

	keys, button = m.MapKey(idle(), 0, 'x', KeyModifierShift, false)
	assert.Equal(t, Keystrokes{press(btnShiftL), press(54), release(btnShiftL)}, keys)
	assert.Equal(t, KeyButton(54), button)
}

func TestMapKeyMatchesDesiredModifiers(t *testing.T) {
	const btnControl KeyButton = 37
	m := New()
	addLetter(m, 'a', btnA)
	m.AddKey(0, KeyControlL, LevelPlain, btnControl, false, false)
	m.AddKey(0, KeyAltGr, LevelPlain, btnAltGr, false, false)
	m.AddModifier(KeyModifierControl, btnControl)
	m.AddModifier(KeyModifierModeSwitch, btnAltGr)
	m.Finish()

	keys, _ := m.MapKey(idle(), 0, 'a', KeyModifierControl, false)
	assert.Equal(t, Keystrokes{press(btnControl), press(btnA), release(btnControl)}, keys)

	held := idle()
	held.mask = KeyModifierControl
	held.down[btnControl] = true
	keys, _ = m.MapKey(held, 0, 'a', 0, false)
	assert.Equal(t, Keystrokes{release(btnControl), press(btnA), press(btnControl)}, keys)

	// no key for it, no mode switch games and the key's own modifier are left alone
	keys, _ = m.MapKey(idle(), 0, 'a', KeyModifierSuper|KeyModifierModeSwitch, false)
	assert.Equal(t, Keystrokes{press(btnA)}, keys)
	keys, _ = m.MapKey(idle(), 0, KeyControlL, 0, false)
	assert.Equal(t, Keystrokes{press(btnControl)}, keys)
}

func TestMapKeyKeypadFallback(t *testing.T) {
	m := New()
	m.AddKey(0, '1', LevelPlain, btnOne, false, false)
	m.Finish()

	keys, _ := m.MapKey(idle(), 0, KeyKP1, 0, false)
	assert.Equal(t, Keystrokes{press(btnOne)}, keys)
}

func TestMapKeyCaseFlipOnSingleCaseLayout(t *testing.T) {
	m := New()
	m.AddKey(0, 'a', LevelPlain, btnA, false, false)
	m.AddKey(0, KeyShiftL, LevelPlain, btnShiftL, false, false)
	m.AddModifier(KeyModifierShift, btnShiftL)
	m.Finish()

	keys, button := m.MapKey(idle(), 0, 'A', 0, false)
	assert.Equal(t, Keystrokes{press(btnShiftL), press(btnA), release(btnShiftL)}, keys)
	assert.Equal(t, btnA, button)
}

func TestMapKeyDeadKeyDecomposition(t *testing.T) {
	m := testLayout(true, false)
	keys, button := m.MapKey(idle(), 0, 0x00E9, 0, false) // eacute
	assert.Equal(t, Keystrokes{press(btnDead), release(btnDead), press(btnE)}, keys)
	assert.Equal(t, btnE, button)

	keys, _ = m.MapKey(idle(), 0, 0x00C9, 0, false) // Eacute
	assert.Equal(t, Keystrokes{
		press(btnDead), release(btnDead),
		press(btnShiftL), press(btnE), release(btnShiftL),
	}, keys)
}

func TestMapKeyComposeFallback(t *testing.T) {
	m := testLayout(false, true)
	keys, button := m.MapKey(idle(), 0, 0x00E9, 0, false) // eacute
	assert.Equal(t, Keystrokes{
		press(btnCompose), release(btnCompose),
		press(btnE), release(btnE),
		press(btnQuote), release(btnQuote),
	}, keys)
	assert.Zero(t, button, "a compose sequence leaves nothing held")
}

func TestMapKeyNoDecompositionOnRepeat(t *testing.T) {
	m := testLayout(true, false)
	keys, button := m.MapKey(idle(), 0, 0x00E9, 0, true)
	assert.Empty(t, keys)
	assert.Zero(t, button)
}

func TestMapKeyAutoRepeat(t *testing.T) {
	m := testLayout(false, false)
	keys, _ := m.MapKey(idle(), 0, 'a', 0, true)
	assert.Equal(t, Keystrokes{{btnA, false, true}, {btnA, true, true}}, keys)

	keys, button := m.MapKey(idle(), 0, KeyPause, 0, true)
	assert.Empty(t, keys)
	assert.Zero(t, button)
}

func TestMapKeyToggleStrikesOnce(t *testing.T) {
	m := testLayout(false, false)
	keys, button := m.MapKey(idle(), 0, KeyCapsLock, 0, false)
	assert.Equal(t, Keystrokes{press(btnCaps), release(btnCaps)}, keys)
	assert.Equal(t, btnCaps, button)
}

func TestMapKeyUnmapped(t *testing.T) {
	m := testLayout(false, false)
	keys, button := m.MapKey(idle(), 0, 0x4E2D, 0, false)
	assert.Empty(t, keys)
	assert.Zero(t, button)

	keys, _ = m.MapKey(idle(), 0, KeyNone, 0, false)
	assert.Empty(t, keys)
}

func TestMapKeyGroupOutOfRange(t *testing.T) {
	m := testLayout(false, false)
	keys, _ := m.MapKey(idle(), 7, 'a', 0, false)
	assert.Equal(t, Keystrokes{press(btnA)}, keys)
}

func TestAddKeyFirstRegistrationWins(t *testing.T) {
	m := New()
	m.AddKey(0, 'a', LevelPlain, btnA, false, false)
	m.AddKey(0, 'a', LevelPlain, btnE, false, false)
	m.Finish()

	mapping, ok := m.Mapping(0, 'a')
	require.True(t, ok)
	assert.Equal(t, btnA, mapping.Keycode[LevelPlain])
}

func TestKeyForButton(t *testing.T) {
	m := testLayout(false, false)
	assert.Equal(t, KeyID('a'), m.KeyForButton(0, btnA, LevelPlain))
	assert.Equal(t, KeyID('A'), m.KeyForButton(0, btnA, LevelShift))
	assert.Equal(t, KeyID(0x00E6), m.KeyForButton(0, btnA, LevelModeSwitch))
	assert.Equal(t, KeyTab, m.KeyForButton(0, btnTab, LevelShift), "falls back to the plain level")
	assert.Equal(t, KeyNone, m.KeyForButton(0, 200, LevelPlain))
}

func TestModifiedAfterFinishPanics(t *testing.T) {
	m := testLayout(false, false)
	assert.Panics(t, func() { m.AddKey(0, 'b', LevelPlain, 56, true, false) })
}

func TestModifierIndex(t *testing.T) {
	for i := 0; i < NumModifiers; i++ {
		assert.Equal(t, i, ModifierIndex(ModifierMaskForIndex(i)))
	}
	assert.Panics(t, func() { ModifierIndex(KeyModifierShift | KeyModifierControl) })
	assert.False(t, IsSingleModifier(KeyModifierShift|KeyModifierControl))
	assert.True(t, IsToggle(KeyModifierCapsLock|KeyModifierNumLock))
	assert.False(t, IsToggle(KeyModifierCapsLock|KeyModifierShift))
}
