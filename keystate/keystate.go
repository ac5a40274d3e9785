// Package keystate tracks which keys and modifiers are down on the local
// keyboard and synthesizes remote key events on it.
//
// A KeyState is not safe for concurrent use. Screens touch it only from
// the event queue goroutine.
package keystate

import (
	"maps"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/TKMAX777/synkey/keymap"
	"github.com/TKMAX777/synkey/logging"
)

// per-button flags
const (
	keyDown    uint8 = 0x01
	keyToggled uint8 = 0x02
)

// Action is the kind of a KeyEvent.
type Action int

const (
	ActionDown Action = iota
	ActionUp
	ActionRepeat
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	case ActionRepeat:
		return "repeat"
	}
	return "unknown"
}

// KeyEvent is a key transition announced by SendKeyEvent.
type KeyEvent struct {
	Target string
	Action Action
	ID     keymap.KeyID
	Mask   keymap.KeyModifierMask
	Button keymap.KeyButton
	Count  int
}

// Sink receives the events announced by SendKeyEvent.
type Sink func(KeyEvent)

// Option configures a KeyState.
type Option func(*KeyState)

// WithHalfDuplexMask sets the initial half-duplex mask.
func WithHalfDuplexMask(mask keymap.KeyModifierMask) Option {
	return func(k *KeyState) { k.SetHalfDuplexMask(mask) }
}

// WithLogger replaces the component logger.
func WithLogger(l *logrus.Entry) Option {
	return func(k *KeyState) { k.log = l }
}

// KeyState is the key and modifier state of one screen.
type KeyState struct {
	platform Platform
	sink     Sink
	log      *logrus.Entry

	km *keymap.KeyMap

	keys       [keymap.NumButtons]uint8
	serverKeys map[keymap.KeyButton]keymap.KeyButton
	mask       keymap.KeyModifierMask
	halfDuplex keymap.KeyModifierMask
	group      int
}

// New returns a KeyState with an empty layout. Call UpdateKeys before
// faking keys.
func New(platform Platform, sink Sink, opts ...Option) *KeyState {
	if sink == nil {
		sink = func(KeyEvent) {}
	}
	km := keymap.New()
	km.Finish()
	k := &KeyState{
		platform:   platform,
		sink:       sink,
		log:        logging.For("keystate"),
		km:         km,
		serverKeys: make(map[keymap.KeyButton]keymap.KeyButton),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func checkButton(button keymap.KeyButton) {
	if button == 0 || button >= keymap.NumButtons {
		panic("keystate: invalid button")
	}
}

// KeyMap returns the current layout. It is never modified.
func (k *KeyState) KeyMap() *keymap.KeyMap {
	return k.km
}

// ActiveGroup returns the group last polled from the platform.
func (k *KeyState) ActiveGroup() int {
	return k.group
}

// SetHalfDuplexMask sets which toggles the local hardware reports as
// press-only. Only toggle bits are kept.
func (k *KeyState) SetHalfDuplexMask(mask keymap.KeyModifierMask) {
	k.halfDuplex = mask & keymap.KeyModifierToggles
}

// IsHalfDuplex reports whether button is a press-only toggle key. Screens
// treat both hardware transitions of such a key as presses.
func (k *KeyState) IsHalfDuplex(button keymap.KeyButton) bool {
	button &= keymap.ButtonMask
	if m := k.km.ModifierForButton(button); m != 0 && k.halfDuplex&m != 0 {
		return true
	}
	return k.km.IsHalfDuplexButton(button)
}

// IsKeyDown reports whether button is down.
func (k *KeyState) IsKeyDown(button keymap.KeyButton) bool {
	return k.keys[button&keymap.ButtonMask]&keyDown != 0
}

// ActiveModifiers returns the shadow modifier mask.
func (k *KeyState) ActiveModifiers() keymap.KeyModifierMask {
	return k.mask
}

// IsModifierActive reports whether the single modifier mask is active:
// for a toggle, whether it is on; otherwise whether any of its keys is
// down.
func (k *KeyState) IsModifierActive(mask keymap.KeyModifierMask) bool {
	buttons := k.km.ModifierButtons(mask)
	if keymap.IsToggle(mask) {
		if len(buttons) == 0 {
			return k.mask&mask != 0
		}
		return k.keys[buttons[0]]&keyToggled != 0
	}
	for _, b := range buttons {
		if k.keys[b]&keyDown != 0 {
			return true
		}
	}
	return false
}

// ServerButtonFor returns the local button a remote button is holding.
func (k *KeyState) ServerButtonFor(serverButton keymap.KeyButton) (keymap.KeyButton, bool) {
	b, ok := k.serverKeys[serverButton]
	return b, ok
}

// OnKey records a transition observed on the local keyboard.
// activeModifiers is what the OS reports alongside it.
func (k *KeyState) OnKey(button keymap.KeyButton, down bool, activeModifiers keymap.KeyModifierMask) {
	checkButton(button)
	k.setKeyDown(button, down)

	const transients = ^keymap.KeyModifierToggles
	if got, want := k.mask&transients, activeModifiers&transients; got != want {
		k.log.WithFields(logrus.Fields{
			"button": button,
			"shadow": got,
			"os":     want,
		}).Debug("modifier state differs from the OS")
	}
}

// setKeyDown applies one transition of button to the flags and the mask.
// A half-duplex key is never down; every transition of it is a toggle.
func (k *KeyState) setKeyDown(button keymap.KeyButton, down bool) {
	mod := k.km.ModifierForButton(button)
	if k.IsHalfDuplex(button) {
		if mod != 0 {
			k.flipToggle(mod)
		}
		k.keys[button] &^= keyDown
		return
	}

	if down {
		k.keys[button] |= keyDown
	} else {
		k.keys[button] &^= keyDown
	}
	switch {
	case mod == 0:
	case keymap.IsToggle(mod):
		if down {
			k.flipToggle(mod)
		}
	case down:
		k.mask |= mod
	case !k.IsModifierActive(mod):
		k.mask &^= mod
	}
}

func (k *KeyState) flipToggle(mod keymap.KeyModifierMask) {
	for _, b := range k.km.ModifierButtons(mod) {
		k.keys[b] ^= keyToggled
	}
	k.mask ^= mod
}

// SendKeyEvent announces a key transition to the sink. Half-duplex keys
// never repeat or release; their press is announced as down and up.
func (k *KeyState) SendKeyEvent(target string, press, isAutoRepeat bool, id keymap.KeyID, mask keymap.KeyModifierMask, count int, button keymap.KeyButton) {
	ev := KeyEvent{Target: target, ID: id, Mask: mask, Button: button, Count: 1}
	if k.IsHalfDuplex(button) {
		if isAutoRepeat || !press {
			return
		}
		ev.Action = ActionDown
		k.sink(ev)
		ev.Action = ActionUp
		k.sink(ev)
		return
	}
	switch {
	case isAutoRepeat:
		ev.Action, ev.Count = ActionRepeat, count
	case press:
		ev.Action = ActionDown
	default:
		ev.Action = ActionUp
	}
	k.sink(ev)
}

// FakeKeyDown types id for a remote key press on serverButton.
func (k *KeyState) FakeKeyDown(id keymap.KeyID, mask keymap.KeyModifierMask, serverButton keymap.KeyButton) {
	checkButton(serverButton)
	if _, held := k.serverKeys[serverButton]; held {
		// the remote missed a release, repeat instead of pressing twice
		k.log.WithField("server_button", serverButton).Debug("down for held key, repeating")
		k.FakeKeyRepeat(id, mask, 1, serverButton)
		return
	}

	k.group = k.platform.PollActiveGroup()
	keys, button := k.km.MapKey(k, k.group, id, mask, false)
	if len(keys) == 0 {
		if faker, ok := k.platform.(MediaKeyFaker); ok && keymap.IsMediaKey(id) {
			faker.FakeMediaKey(id)
		}
		return
	}
	k.play(keys, 1)
	if button != 0 {
		k.serverKeys[serverButton] = button
	}
}

// MaxRepeatCount bounds the repeats one event may ask for.
const MaxRepeatCount = 0xffff

// FakeKeyRepeat repeats a held remote key count times, at most
// MaxRepeatCount.
func (k *KeyState) FakeKeyRepeat(id keymap.KeyID, mask keymap.KeyModifierMask, count int, serverButton keymap.KeyButton) {
	checkButton(serverButton)
	count = min(count, MaxRepeatCount)
	old, held := k.serverKeys[serverButton]
	if !held {
		k.log.WithField("server_button", serverButton).Debug("repeat for key not down")
		return
	}

	k.group = k.platform.PollActiveGroup()
	keys, button := k.km.MapKey(k, k.group, id, mask, true)
	if len(keys) == 0 {
		return
	}
	if button != 0 && button != old {
		// the held key changed, e.g. after a dead key; release the old one
		for i := range keys {
			if !keys[i].Press && keys[i].Button == button {
				keys[i].Button = old
				break
			}
		}
		k.serverKeys[serverButton] = button
	}
	k.play(keys, count)
}

// FakeKeyUp releases the local key held for serverButton.
func (k *KeyState) FakeKeyUp(serverButton keymap.KeyButton) {
	checkButton(serverButton)
	button, held := k.serverKeys[serverButton]
	if !held {
		k.log.WithField("server_button", serverButton).Debug("release for key not down")
		return
	}
	delete(k.serverKeys, serverButton)

	// toggles were struck whole on the press
	if keymap.IsToggle(k.km.ModifierForButton(button)) {
		return
	}
	for _, other := range k.serverKeys {
		if other == button {
			return
		}
	}
	k.play(keymap.Keystrokes{{Button: button}}, 1)
}

// FakeToggle strikes the key of the toggle modifier once.
func (k *KeyState) FakeToggle(modifier keymap.KeyModifierMask) {
	if !keymap.IsSingleModifier(modifier) || !keymap.IsToggle(modifier) {
		panic("keystate: FakeToggle needs a single toggle modifier")
	}
	buttons := k.km.ModifierButtons(modifier)
	if len(buttons) == 0 {
		k.log.WithField("modifier", modifier).Debug("no key for toggle")
		return
	}
	b := buttons[0]
	k.play(keymap.Keystrokes{{Button: b, Press: true}, {Button: b}}, 1)
}

// FakeAllKeysUp releases every key held for the remote side.
func (k *KeyState) FakeAllKeysUp() {
	for _, sb := range slices.Sorted(maps.Keys(k.serverKeys)) {
		k.FakeKeyUp(sb)
	}
}

// FakeCtrlAltDel sends Control+Alt+Delete.
func (k *KeyState) FakeCtrlAltDel() {
	if k.platform.FakeCtrlAltDel() {
		return
	}
	k.group = k.platform.PollActiveGroup()
	var held []keymap.KeyButton
	var mask keymap.KeyModifierMask
	for _, id := range []keymap.KeyID{keymap.KeyControlL, keymap.KeyAltL, keymap.KeyDelete} {
		keys, button := k.km.MapKey(k, k.group, id, mask, false)
		k.play(keys, 1)
		if button != 0 {
			held = append(held, button)
		}
		mask |= keymap.ModifierForKey(id)
	}
	for i := len(held) - 1; i >= 0; i-- {
		k.play(keymap.Keystrokes{{Button: held[i]}}, 1)
	}
}

// UpdateKeys rebuilds the layout from the platform and resynchronizes the
// key and modifier state with what is physically down.
func (k *KeyState) UpdateKeys() {
	km := keymap.New()
	if err := k.platform.UpdateKeys(km); err != nil {
		k.log.WithError(err).Warn("reading keyboard layout failed, keeping what was read")
	}
	km.Finish()

	k.km = km
	k.keys = [keymap.NumButtons]uint8{}
	clear(k.serverKeys)
	k.mask = 0

	for _, b := range k.platform.PollPressedKeys() {
		if b != 0 && b < keymap.NumButtons {
			k.keys[b] |= keyDown
		}
	}
	active := k.platform.PollActiveModifiers()
	for i := 0; i < keymap.NumModifiers; i++ {
		m := keymap.ModifierMaskForIndex(i)
		if !keymap.IsToggle(m) || active&m == 0 {
			continue
		}
		if buttons := km.ModifierButtons(m); len(buttons) != 0 {
			for _, b := range buttons {
				k.keys[b] |= keyToggled
			}
		} else {
			k.mask |= m
		}
	}
	k.group = k.platform.PollActiveGroup()

	var mask keymap.KeyModifierMask
	for i := 0; i < keymap.NumModifiers; i++ {
		m := keymap.ModifierMaskForIndex(i)
		if k.IsModifierActive(m) {
			mask |= m
		}
	}
	k.mask = mask

	k.log.WithFields(logrus.Fields{
		"groups":    km.NumGroups(),
		"modifiers": k.mask,
	}).Debug("keyboard layout updated")
}
