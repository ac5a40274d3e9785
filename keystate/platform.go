package keystate

import "github.com/TKMAX777/synkey/keymap"

// Platform is what a KeyState needs from the operating system.
type Platform interface {
	// UpdateKeys fills m with the live keyboard layout. An error leaves
	// whatever was added so far in place.
	UpdateKeys(m *keymap.KeyMap) error

	// FakeKeyEvent injects one native key transition.
	FakeKeyEvent(button keymap.KeyButton, press, isAutoRepeat bool) error

	PollActiveModifiers() keymap.KeyModifierMask
	PollActiveGroup() int
	PollPressedKeys() []keymap.KeyButton

	// FakeCtrlAltDel sends the secure attention sequence and reports
	// whether the platform handled it. False means the keys are faked
	// like any other.
	FakeCtrlAltDel() bool
}

// MediaKeyFaker is implemented by platforms that can perform media keys
// their layout has no key for.
type MediaKeyFaker interface {
	FakeMediaKey(id keymap.KeyID) bool
}
