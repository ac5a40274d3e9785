// Package keystatetest provides an in-memory keystate.Platform that records
// what it is asked to inject.
package keystatetest

import (
	"fmt"

	"github.com/TKMAX777/synkey/keymap"
)

// Event is one injected key transition.
type Event struct {
	Button keymap.KeyButton
	Press  bool
	Repeat bool
}

func (e Event) String() string {
	dir := "up"
	if e.Press {
		dir = "down"
	}
	if e.Repeat {
		dir += "(repeat)"
	}
	return fmt.Sprintf("%d %s", e.Button, dir)
}

// Press and Release build expected events.
func Press(b keymap.KeyButton) Event   { return Event{Button: b, Press: true} }
func Release(b keymap.KeyButton) Event { return Event{Button: b} }

// Platform is a fake keyboard. Its fields are read on every call, so tests
// may change them between calls.
type Platform struct {
	// Layout fills the KeyMap on UpdateKeys.
	Layout    func(m *keymap.KeyMap)
	LayoutErr error

	Modifiers keymap.KeyModifierMask
	Group     int
	Pressed   []keymap.KeyButton

	// HandleCtrlAltDel makes FakeCtrlAltDel report the sequence handled.
	HandleCtrlAltDel bool
	CtrlAltDelCalls  int

	// HandleMedia makes FakeMediaKey succeed.
	HandleMedia bool
	MediaKeys   []keymap.KeyID

	Events []Event
}

func (p *Platform) UpdateKeys(m *keymap.KeyMap) error {
	if p.Layout != nil {
		p.Layout(m)
	}
	return p.LayoutErr
}

func (p *Platform) FakeKeyEvent(button keymap.KeyButton, press, isAutoRepeat bool) error {
	p.Events = append(p.Events, Event{Button: button, Press: press, Repeat: isAutoRepeat})
	return nil
}

func (p *Platform) PollActiveModifiers() keymap.KeyModifierMask { return p.Modifiers }

func (p *Platform) PollActiveGroup() int { return p.Group }

func (p *Platform) PollPressedKeys() []keymap.KeyButton { return p.Pressed }

func (p *Platform) FakeCtrlAltDel() bool {
	p.CtrlAltDelCalls++
	return p.HandleCtrlAltDel
}

func (p *Platform) FakeMediaKey(id keymap.KeyID) bool {
	if !p.HandleMedia {
		return false
	}
	p.MediaKeys = append(p.MediaKeys, id)
	return true
}

// Take returns the recorded events and forgets them.
func (p *Platform) Take() []Event {
	ev := p.Events
	p.Events = nil
	return ev
}

// Buttons of USLayout, X keycodes of a pc105 keyboard.
const (
	ButtonEscape   keymap.KeyButton = 9
	ButtonOne      keymap.KeyButton = 10
	ButtonTab      keymap.KeyButton = 23
	ButtonE        keymap.KeyButton = 26
	ButtonControlL keymap.KeyButton = 37
	ButtonA        keymap.KeyButton = 38
	ButtonDeadKey  keymap.KeyButton = 48
	ButtonShiftL   keymap.KeyButton = 50
	ButtonShiftR   keymap.KeyButton = 62
	ButtonAltL     keymap.KeyButton = 64
	ButtonCapsLock keymap.KeyButton = 66
	ButtonNumLock  keymap.KeyButton = 77
	ButtonAltGr    keymap.KeyButton = 108
	ButtonDelete   keymap.KeyButton = 119
)

// USLayout is a small US layout with an AltGr key and a dead acute.
func USLayout(m *keymap.KeyMap) {
	letter := func(lower keymap.KeyID, b keymap.KeyButton) {
		m.AddKey(0, lower, keymap.LevelPlain, b, true, false)
		m.AddKey(0, keymap.ToUpper(lower), keymap.LevelShift, b, true, false)
	}
	plain := func(id keymap.KeyID, b keymap.KeyButton) {
		m.AddKey(0, id, keymap.LevelPlain, b, false, false)
	}

	letter('a', ButtonA)
	letter('e', ButtonE)
	m.AddKey(0, '1', keymap.LevelPlain, ButtonOne, true, false)
	m.AddKey(0, '!', keymap.LevelShift, ButtonOne, true, false)
	m.AddKey(0, 0x00E1, keymap.LevelModeSwitch, ButtonA, false, true) // aacute
	plain(keymap.KeyEscape, ButtonEscape)
	plain(keymap.KeyTab, ButtonTab)
	plain(keymap.KeyDelete, ButtonDelete)
	plain(keymap.KeyDeadAcute, ButtonDeadKey)
	plain(keymap.KeyControlL, ButtonControlL)
	plain(keymap.KeyShiftL, ButtonShiftL)
	plain(keymap.KeyShiftR, ButtonShiftR)
	plain(keymap.KeyAltL, ButtonAltL)
	plain(keymap.KeyCapsLock, ButtonCapsLock)
	plain(keymap.KeyNumLock, ButtonNumLock)
	plain(keymap.KeyAltGr, ButtonAltGr)

	m.AddModifier(keymap.KeyModifierShift, ButtonShiftL, ButtonShiftR)
	m.AddModifier(keymap.KeyModifierControl, ButtonControlL)
	m.AddModifier(keymap.KeyModifierAlt, ButtonAltL)
	m.AddModifier(keymap.KeyModifierCapsLock, ButtonCapsLock)
	m.AddModifier(keymap.KeyModifierNumLock, ButtonNumLock)
	m.AddModifier(keymap.KeyModifierModeSwitch, ButtonAltGr)
}
