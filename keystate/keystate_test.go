package keystate_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TKMAX777/synkey/keymap"
	"github.com/TKMAX777/synkey/keystate"
	kt "github.com/TKMAX777/synkey/keystate/keystatetest"
)

type harness struct {
	*keystate.KeyState
	platform *kt.Platform
	sent     []keystate.KeyEvent
}

func newHarness(t *testing.T, layout func(*keymap.KeyMap), opts ...keystate.Option) *harness {
	t.Helper()
	h := &harness{platform: &kt.Platform{Layout: layout}}
	h.KeyState = keystate.New(h.platform, func(ev keystate.KeyEvent) {
		h.sent = append(h.sent, ev)
	}, opts...)
	h.UpdateKeys()
	return h
}

// layout with 'A' on button 1 behind shift on button 57
func shiftedALayout(m *keymap.KeyMap) {
	m.AddKey(0, 'A', keymap.LevelShift, 1, true, false)
	m.AddKey(0, keymap.KeyShiftL, keymap.LevelPlain, 57, false, false)
	m.AddModifier(keymap.KeyModifierShift, 57)
}

func capsLockLayout(m *keymap.KeyMap) {
	m.AddKey(0, keymap.KeyCapsLock, keymap.LevelPlain, 57, false, false)
	m.AddModifier(keymap.KeyModifierCapsLock, 57)
}

func TestFakeKeyDownAddsAndUndoesShift(t *testing.T) {
	h := newHarness(t, shiftedALayout)

	h.FakeKeyDown('A', 0, 5)

	assert.Equal(t, []kt.Event{kt.Press(57), kt.Press(1), kt.Release(57)}, h.platform.Take())
	local, ok := h.ServerButtonFor(5)
	require.True(t, ok)
	assert.Equal(t, keymap.KeyButton(1), local)
	assert.True(t, h.IsKeyDown(1))
	assert.False(t, h.IsKeyDown(57))
	assert.Zero(t, h.ActiveModifiers())

	h.FakeKeyUp(5)
	assert.Equal(t, []kt.Event{kt.Release(1)}, h.platform.Take())
	assert.False(t, h.IsKeyDown(1))
	_, ok = h.ServerButtonFor(5)
	assert.False(t, ok)
}

func TestOnKeyTransientModifier(t *testing.T) {
	h := newHarness(t, shiftedALayout)

	h.OnKey(57, true, keymap.KeyModifierShift)
	assert.True(t, h.IsKeyDown(57))
	assert.Equal(t, keymap.KeyModifierShift, h.ActiveModifiers())

	h.OnKey(57, false, 0)
	assert.False(t, h.IsKeyDown(57))
	assert.Zero(t, h.ActiveModifiers())
}

func TestOnKeyBothShiftKeys(t *testing.T) {
	h := newHarness(t, kt.USLayout)

	h.OnKey(kt.ButtonShiftL, true, keymap.KeyModifierShift)
	h.OnKey(kt.ButtonShiftR, true, keymap.KeyModifierShift)
	h.OnKey(kt.ButtonShiftL, false, keymap.KeyModifierShift)
	assert.Equal(t, keymap.KeyModifierShift, h.ActiveModifiers(), "right shift still down")

	h.OnKey(kt.ButtonShiftR, false, 0)
	assert.Zero(t, h.ActiveModifiers())
}

func TestOnKeyToggleFlipsOnPress(t *testing.T) {
	h := newHarness(t, kt.USLayout)

	h.OnKey(kt.ButtonCapsLock, true, 0)
	assert.Equal(t, keymap.KeyModifierCapsLock, h.ActiveModifiers())
	h.OnKey(kt.ButtonCapsLock, false, 0)
	assert.Equal(t, keymap.KeyModifierCapsLock, h.ActiveModifiers())
	assert.True(t, h.IsModifierActive(keymap.KeyModifierCapsLock))

	h.OnKey(kt.ButtonCapsLock, true, 0)
	h.OnKey(kt.ButtonCapsLock, false, 0)
	assert.Zero(t, h.ActiveModifiers())
}

func TestFakeToggle(t *testing.T) {
	h := newHarness(t, capsLockLayout)

	h.FakeToggle(keymap.KeyModifierCapsLock)
	assert.Equal(t, []kt.Event{kt.Press(57), kt.Release(57)}, h.platform.Take())
	assert.Equal(t, keymap.KeyModifierCapsLock, h.ActiveModifiers())

	h.FakeToggle(keymap.KeyModifierCapsLock)
	assert.Zero(t, h.ActiveModifiers(), "two toggles restore the bit")
}

func TestFakeToggleWithoutKey(t *testing.T) {
	h := newHarness(t, shiftedALayout)
	h.FakeToggle(keymap.KeyModifierNumLock)
	assert.Empty(t, h.platform.Events)
	assert.Zero(t, h.ActiveModifiers())
}

func TestSendKeyEvent(t *testing.T) {
	h := newHarness(t, kt.USLayout)

	h.SendKeyEvent("host", true, false, 'a', 0, 1, kt.ButtonA)
	h.SendKeyEvent("host", true, true, 'a', 0, 4, kt.ButtonA)
	h.SendKeyEvent("host", false, false, 'a', 0, 1, kt.ButtonA)

	require.Len(t, h.sent, 3)
	assert.Equal(t, keystate.KeyEvent{Target: "host", Action: keystate.ActionDown, ID: 'a', Button: kt.ButtonA, Count: 1}, h.sent[0])
	assert.Equal(t, keystate.ActionRepeat, h.sent[1].Action)
	assert.Equal(t, 4, h.sent[1].Count)
	assert.Equal(t, keystate.ActionUp, h.sent[2].Action)
}

func TestSendKeyEventHalfDuplex(t *testing.T) {
	h := newHarness(t, kt.USLayout, keystate.WithHalfDuplexMask(keymap.KeyModifierCapsLock))

	for _, repeat := range []bool{false, true} {
		for _, count := range []int{0, 1, 5} {
			h.SendKeyEvent("host", false, repeat, keymap.KeyCapsLock, 0, count, kt.ButtonCapsLock)
		}
	}
	assert.Empty(t, h.sent, "a half-duplex release is never announced")

	h.SendKeyEvent("host", true, true, keymap.KeyCapsLock, 0, 3, kt.ButtonCapsLock)
	assert.Empty(t, h.sent, "a half-duplex key never repeats")

	h.SendKeyEvent("host", true, false, keymap.KeyCapsLock, 0, 1, kt.ButtonCapsLock)
	require.Len(t, h.sent, 2)
	assert.Equal(t, keystate.ActionDown, h.sent[0].Action)
	assert.Equal(t, keystate.ActionUp, h.sent[1].Action)
}

func TestHalfDuplexMaskKeepsTogglesOnly(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.SetHalfDuplexMask(keymap.KeyModifierShift | keymap.KeyModifierCapsLock)
	assert.False(t, h.IsHalfDuplex(kt.ButtonShiftL))
	assert.True(t, h.IsHalfDuplex(kt.ButtonCapsLock))
	assert.False(t, h.IsHalfDuplex(kt.ButtonNumLock))
}

func TestPlatformHalfDuplexButton(t *testing.T) {
	h := newHarness(t, func(m *keymap.KeyMap) {
		kt.USLayout(m)
		m.AddHalfDuplexButton(kt.ButtonNumLock)
	})
	assert.True(t, h.IsHalfDuplex(kt.ButtonNumLock))
	assert.False(t, h.IsHalfDuplex(kt.ButtonCapsLock))
}

func TestHalfDuplexPlayback(t *testing.T) {
	h := newHarness(t, kt.USLayout, keystate.WithHalfDuplexMask(keymap.KeyModifierCapsLock))

	h.FakeToggle(keymap.KeyModifierCapsLock)
	assert.Equal(t, []kt.Event{kt.Press(kt.ButtonCapsLock)}, h.platform.Take())
	assert.Equal(t, keymap.KeyModifierCapsLock, h.ActiveModifiers())

	// the toggle is on, so the press turns into the release that turns it off
	h.FakeToggle(keymap.KeyModifierCapsLock)
	assert.Equal(t, []kt.Event{kt.Release(kt.ButtonCapsLock)}, h.platform.Take())
	assert.Zero(t, h.ActiveModifiers())
}

func TestHalfDuplexOnKey(t *testing.T) {
	h := newHarness(t, kt.USLayout, keystate.WithHalfDuplexMask(keymap.KeyModifierCapsLock))

	h.OnKey(kt.ButtonCapsLock, true, 0)
	assert.False(t, h.IsKeyDown(kt.ButtonCapsLock))
	assert.Equal(t, keymap.KeyModifierCapsLock, h.ActiveModifiers())

	// the hardware reports turning it off as a release
	h.OnKey(kt.ButtonCapsLock, false, 0)
	assert.Zero(t, h.ActiveModifiers())
}

func TestFakeKeyDownHoldsDesiredModifiers(t *testing.T) {
	h := newHarness(t, kt.USLayout)

	h.FakeKeyDown('a', keymap.KeyModifierControl, 5)
	assert.Equal(t, []kt.Event{
		kt.Press(kt.ButtonControlL), kt.Press(kt.ButtonA), kt.Release(kt.ButtonControlL),
	}, h.platform.Take())
	assert.Zero(t, h.ActiveModifiers())

	h.FakeKeyUp(5)
	assert.Equal(t, []kt.Event{kt.Release(kt.ButtonA)}, h.platform.Take())
}

func TestFakeKeyDownWithHeldControl(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.FakeKeyDown(keymap.KeyControlL, 0, 37)
	require.Equal(t, []kt.Event{kt.Press(kt.ButtonControlL)}, h.platform.Take())

	h.FakeKeyDown('a', keymap.KeyModifierControl, 5)
	assert.Equal(t, []kt.Event{kt.Press(kt.ButtonA)}, h.platform.Take())
	assert.Equal(t, keymap.KeyModifierControl, h.ActiveModifiers())
}

func TestFakeKeyUpUnknownServerButton(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.FakeKeyDown(keymap.KeyShiftL, 0, 50)
	h.platform.Take()
	before := h.ActiveModifiers()

	h.FakeKeyUp(51)

	assert.Empty(t, h.platform.Events)
	assert.Equal(t, before, h.ActiveModifiers())
	assert.True(t, h.IsKeyDown(kt.ButtonShiftL))
}

func TestFakeKeyRepeatSameButton(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.FakeKeyDown('a', 0, 7)
	h.platform.Take()

	h.FakeKeyRepeat('a', 0, 3, 7)

	repeat := []kt.Event{
		{Button: kt.ButtonA, Press: false, Repeat: true},
		{Button: kt.ButtonA, Press: true, Repeat: true},
	}
	var want []kt.Event
	for i := 0; i < 3; i++ {
		want = append(want, repeat...)
	}
	assert.Equal(t, want, h.platform.Take())
	local, _ := h.ServerButtonFor(7)
	assert.Equal(t, kt.ButtonA, local)
	assert.True(t, h.IsKeyDown(kt.ButtonA))
}

func TestFakeKeyRepeatCountIsBounded(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.FakeKeyDown('a', 0, 7)
	h.platform.Take()

	h.FakeKeyRepeat('a', 0, keystate.MaxRepeatCount+100, 7)

	assert.Len(t, h.platform.Take(), 2*keystate.MaxRepeatCount)
	assert.True(t, h.IsKeyDown(kt.ButtonA))
}

func TestFakeKeyRepeatWithShift(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.FakeKeyDown('A', 0, 7)
	h.platform.Take()

	h.FakeKeyRepeat('A', 0, 2, 7)
	assert.Equal(t, []kt.Event{
		kt.Press(kt.ButtonShiftL),
		{Button: kt.ButtonA, Repeat: true}, {Button: kt.ButtonA, Press: true, Repeat: true},
		{Button: kt.ButtonA, Repeat: true}, {Button: kt.ButtonA, Press: true, Repeat: true},
		kt.Release(kt.ButtonShiftL),
	}, h.platform.Take())
	assert.Zero(t, h.ActiveModifiers())
}

func TestFakeKeyRepeatMovesToNewButton(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.FakeKeyDown(0x00E9, 0, 9) // eacute through the dead key
	assert.Equal(t, []kt.Event{
		kt.Press(kt.ButtonDeadKey), kt.Release(kt.ButtonDeadKey), kt.Press(kt.ButtonE),
	}, h.platform.Take())

	h.FakeKeyRepeat('a', 0, 1, 9)

	assert.Equal(t, []kt.Event{
		{Button: kt.ButtonE, Repeat: true},
		{Button: kt.ButtonA, Press: true, Repeat: true},
	}, h.platform.Take())
	local, _ := h.ServerButtonFor(9)
	assert.Equal(t, kt.ButtonA, local)
	assert.False(t, h.IsKeyDown(kt.ButtonE))
	assert.True(t, h.IsKeyDown(kt.ButtonA))
}

func TestFakeKeyRepeatNotDown(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.FakeKeyRepeat('a', 0, 2, 7)
	assert.Empty(t, h.platform.Events)
}

func TestFakeKeyDownTwiceRepeats(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.FakeKeyDown('a', 0, 7)
	h.platform.Take()

	h.FakeKeyDown('a', 0, 7)
	assert.Equal(t, []kt.Event{
		{Button: kt.ButtonA, Repeat: true},
		{Button: kt.ButtonA, Press: true, Repeat: true},
	}, h.platform.Take())
}

func TestModifiersRestoredAfterFakeKey(t *testing.T) {
	ids := []keymap.KeyID{'a', 'A', '1', '!', 0x00E1, 0x00E9, 0x00C9, keymap.KeyLeftTab, keymap.KeyEscape}
	setups := map[string]func(h *harness){
		"idle":       func(h *harness) {},
		"shift held": func(h *harness) { h.FakeKeyDown(keymap.KeyShiftL, 0, 100) },
		"right shift held": func(h *harness) {
			h.OnKey(kt.ButtonShiftR, true, keymap.KeyModifierShift)
		},
		"caps lock on": func(h *harness) { h.FakeToggle(keymap.KeyModifierCapsLock) },
		"altgr held":   func(h *harness) { h.FakeKeyDown(keymap.KeyAltGr, 0, 101) },
	}
	for name, setup := range setups {
		for _, id := range ids {
			t.Run(name+"/"+keymap.FormatKey(id, 0), func(t *testing.T) {
				h := newHarness(t, kt.USLayout)
				setup(h)
				h.platform.Take()
				before := h.ActiveModifiers()

				h.FakeKeyDown(id, 0, 5)

				assert.NotEmpty(t, h.platform.Events)
				assert.Equal(t, before, h.ActiveModifiers())
			})
		}
	}
}

func TestFakeKeyDownToggleKey(t *testing.T) {
	h := newHarness(t, kt.USLayout)

	h.FakeKeyDown(keymap.KeyCapsLock, 0, 66)
	assert.Equal(t, []kt.Event{kt.Press(kt.ButtonCapsLock), kt.Release(kt.ButtonCapsLock)}, h.platform.Take())
	assert.Equal(t, keymap.KeyModifierCapsLock, h.ActiveModifiers())
	assert.False(t, h.IsKeyDown(kt.ButtonCapsLock))

	h.FakeKeyUp(66)
	assert.Empty(t, h.platform.Take())
	assert.Equal(t, keymap.KeyModifierCapsLock, h.ActiveModifiers())
}

func TestFakeKeyDownUnmappable(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.FakeKeyDown(0x4E2D, 0, 5)
	assert.Empty(t, h.platform.Events)
	_, ok := h.ServerButtonFor(5)
	assert.False(t, ok)

	h.FakeKeyUp(5)
	assert.Empty(t, h.platform.Events)
}

func TestFakeKeyDownMediaFallback(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.platform.HandleMedia = true

	h.FakeKeyDown(keymap.KeyAudioMute, 0, 5)

	assert.Empty(t, h.platform.Events)
	assert.Equal(t, []keymap.KeyID{keymap.KeyAudioMute}, h.platform.MediaKeys)
	_, ok := h.ServerButtonFor(5)
	assert.False(t, ok)
}

func TestFakeAllKeysUp(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	h.FakeKeyDown('a', 0, 3)
	h.FakeKeyDown(keymap.KeyShiftL, 0, 4)
	h.platform.Take()
	require.Equal(t, keymap.KeyModifierShift, h.ActiveModifiers())

	h.FakeAllKeysUp()

	assert.Equal(t, []kt.Event{kt.Release(kt.ButtonA), kt.Release(kt.ButtonShiftL)}, h.platform.Take())
	assert.Zero(t, h.ActiveModifiers())
	assert.False(t, h.IsKeyDown(kt.ButtonA))
}

func TestFakeCtrlAltDel(t *testing.T) {
	h := newHarness(t, kt.USLayout)

	h.platform.HandleCtrlAltDel = true
	h.FakeCtrlAltDel()
	assert.Empty(t, h.platform.Take())

	h.platform.HandleCtrlAltDel = false
	h.FakeCtrlAltDel()
	assert.Equal(t, []kt.Event{
		kt.Press(kt.ButtonControlL), kt.Press(kt.ButtonAltL), kt.Press(kt.ButtonDelete),
		kt.Release(kt.ButtonDelete), kt.Release(kt.ButtonAltL), kt.Release(kt.ButtonControlL),
	}, h.platform.Take())
	assert.Equal(t, 2, h.platform.CtrlAltDelCalls)
	assert.Zero(t, h.ActiveModifiers())
}

func TestUpdateKeysResyncs(t *testing.T) {
	p := &kt.Platform{
		Layout:    kt.USLayout,
		Pressed:   []keymap.KeyButton{kt.ButtonShiftR},
		Modifiers: keymap.KeyModifierCapsLock | keymap.KeyModifierShift,
		Group:     0,
	}
	k := keystate.New(p, nil)
	k.UpdateKeys()

	assert.True(t, k.IsKeyDown(kt.ButtonShiftR))
	assert.Equal(t, keymap.KeyModifierShift|keymap.KeyModifierCapsLock, k.ActiveModifiers())

	// everything synthesized before a layout change is forgotten
	p.Pressed, p.Modifiers = nil, 0
	k.FakeKeyDown('a', 0, 5)
	k.UpdateKeys()
	_, ok := k.ServerButtonFor(5)
	assert.False(t, ok)
	assert.Zero(t, k.ActiveModifiers())
}

func TestUpdateKeysKeepsPartialLayout(t *testing.T) {
	p := &kt.Platform{Layout: kt.USLayout, LayoutErr: errors.New("display went away")}
	k := keystate.New(p, nil)
	k.UpdateKeys()

	k.FakeKeyDown('a', 0, 5)
	assert.Equal(t, []kt.Event{kt.Press(kt.ButtonA)}, p.Events)
}

func TestEmptyLayoutIsSilent(t *testing.T) {
	p := &kt.Platform{}
	k := keystate.New(p, nil)
	k.FakeKeyDown('a', 0, 5)
	k.FakeKeyRepeat('a', 0, 1, 5)
	k.FakeKeyUp(5)
	assert.Empty(t, p.Events)
}

func TestInvalidArgumentsPanic(t *testing.T) {
	h := newHarness(t, kt.USLayout)
	assert.Panics(t, func() { h.FakeKeyDown('a', 0, 0) })
	assert.Panics(t, func() { h.OnKey(0, true, 0) })
	assert.Panics(t, func() { h.FakeToggle(keymap.KeyModifierShift) })
	assert.Panics(t, func() { h.FakeToggle(keymap.KeyModifierCapsLock | keymap.KeyModifierNumLock) })
}
