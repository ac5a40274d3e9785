package keymap

import "math/bits"

// ModifierState is the live keyboard state MapKey plans against.
type ModifierState interface {
	ActiveModifiers() KeyModifierMask
	IsModifierActive(mask KeyModifierMask) bool
	IsKeyDown(button KeyButton) bool
}

// modifiers never pressed or released to match the desired mask. Mode
// switch only selects characters and toggles are synced separately.
const notDesiredModifiers = KeyModifierModeSwitch | KeyModifierToggles

type shiftRule int

const (
	shiftAsMapped shiftRule = iota
	shiftForceOn
	shiftForceOff
)

var keypadFallback = map[KeyID]KeyID{
	KeyKPSpace:     ' ',
	KeyKPTab:       KeyTab,
	KeyKPEnter:     KeyReturn,
	KeyKPHome:      KeyHome,
	KeyKPLeft:      KeyLeft,
	KeyKPUp:        KeyUp,
	KeyKPRight:     KeyRight,
	KeyKPDown:      KeyDown,
	KeyKPPageUp:    KeyPageUp,
	KeyKPPageDown:  KeyPageDown,
	KeyKPEnd:       KeyEnd,
	KeyKPBegin:     KeyBegin,
	KeyKPInsert:    KeyInsert,
	KeyKPDelete:    KeyDelete,
	KeyKPMultiply:  '*',
	KeyKPAdd:       '+',
	KeyKPSeparator: ',',
	KeyKPSubtract:  '-',
	KeyKPDecimal:   '.',
	KeyKPDivide:    '/',
	KeyKP0:         '0',
	KeyKP1:         '1',
	KeyKP2:         '2',
	KeyKP3:         '3',
	KeyKP4:         '4',
	KeyKP5:         '5',
	KeyKP6:         '6',
	KeyKP7:         '7',
	KeyKP8:         '8',
	KeyKP9:         '9',
	KeyKPEqual:     '=',
}

// MapKey plans the native keystrokes that type id in group given the live
// state. It returns the keystrokes and the button left pressed, 0 when the
// sequence leaves nothing held. Empty keystrokes mean id cannot be typed on
// this layout.
func (m *KeyMap) MapKey(state ModifierState, group int, id KeyID, desiredMask KeyModifierMask, isAutoRepeat bool) (Keystrokes, KeyButton) {
	if id == KeyNone || len(m.groups) == 0 {
		return nil, 0
	}
	grp := m.groups[m.EffectiveGroup(group)]

	// X clients expect shift+tab to arrive as ISO_Left_Tab
	if id == KeyTab && desiredMask&KeyModifierShift != 0 {
		if _, ok := grp[KeyLeftTab]; ok {
			id = KeyLeftTab
		}
	}

	var keys Keystrokes
	if mapping, ok := grp[id]; ok {
		button := m.mapToKeystrokes(&keys, state, mapping, desiredMask, isAutoRepeat, false, shiftAsMapped)
		return m.done(keys, button, id)
	}

	if id == KeyLeftTab {
		if mapping, ok := grp[KeyTab]; ok {
			button := m.mapToKeystrokes(&keys, state, mapping, desiredMask, isAutoRepeat, false, shiftForceOn)
			return m.done(keys, button, id)
		}
	}

	if alt, ok := keypadFallback[id]; ok {
		if mapping, ok := grp[alt]; ok {
			button := m.mapToKeystrokes(&keys, state, mapping, desiredMask, isAutoRepeat, false, shiftAsMapped)
			return m.done(keys, button, id)
		}
	}

	// a layout that lists only one case of a letter, the other case comes
	// from the same key with shift flipped
	if IsLetter(id) {
		flipped, rule := ToLower(id), shiftForceOn
		if flipped == id {
			flipped, rule = ToUpper(id), shiftForceOff
		}
		if mapping, ok := grp[flipped]; ok && !isShiftSensitive(mapping) {
			button := m.mapToKeystrokes(&keys, state, mapping, desiredMask, isAutoRepeat, false, rule)
			return m.done(keys, button, id)
		}
	}

	// decomposed sequences are typed whole on the press and never repeat
	if isAutoRepeat {
		return m.done(nil, 0, id)
	}
	if seq, ok := deadDecomposeTable[id]; ok {
		if keys, button, ok := m.mapSequence(state, grp, seq, desiredMask, false); ok {
			return keys, button
		}
	}
	if seq, ok := composeDecomposeTable[id]; ok {
		if keys, button, ok := m.mapSequence(state, grp, seq, desiredMask, true); ok {
			return keys, button
		}
	}
	return m.done(nil, 0, id)
}

// mapSequence types a dead-key or compose sequence. Every part but the
// last is struck and released; after Compose the last one is too, so
// nothing is left held.
func (m *KeyMap) mapSequence(state ModifierState, grp map[KeyID]*KeyMapping, seq []KeyID, desired KeyModifierMask, compose bool) (Keystrokes, KeyButton, bool) {
	var keys Keystrokes
	var button KeyButton
	for i, part := range seq {
		mapping, ok := grp[part]
		if !ok {
			return nil, 0, false
		}
		last := i == len(seq)-1
		button = m.mapToKeystrokes(&keys, state, mapping, desired, false, !last || compose, shiftAsMapped)
		if button == 0 {
			return nil, 0, false
		}
	}
	if compose {
		button = 0
	}
	return keys, button, true
}

func (m *KeyMap) done(keys Keystrokes, button KeyButton, id KeyID) (Keystrokes, KeyButton) {
	if len(keys) == 0 {
		log.Debugf("no mapping for key %s", FormatKey(id, 0))
		return nil, 0
	}
	return keys, button
}

func isShiftSensitive(mapping *KeyMapping) bool {
	for level, b := range mapping.Keycode {
		if b != 0 && mapping.ShiftSensitive[level] {
			return true
		}
	}
	return false
}

// requirement returns the modifier state a level of mapping needs and the
// modifiers it cares about, given the live modifiers.
func requirement(mapping *KeyMapping, level int, current KeyModifierMask, rule shiftRule) (required, sensitive KeyModifierMask) {
	if mapping.ModifierMask != KeyModifierShift {
		switch rule {
		case shiftAsMapped:
			if mapping.ShiftSensitive[level] {
				sensitive |= KeyModifierShift
				shift := level&LevelShift != 0
				if (mapping.CapsLockSensitive && current&KeyModifierCapsLock != 0) ||
					(mapping.NumLockSensitive && current&KeyModifierNumLock != 0) {
					shift = !shift
				}
				if shift {
					required |= KeyModifierShift
				}
			}
		default:
			sensitive |= KeyModifierShift
			shift := rule == shiftForceOn
			if IsLetter(mapping.ID) && current&KeyModifierCapsLock != 0 {
				shift = !shift
			}
			if shift {
				required |= KeyModifierShift
			}
		}
	}
	if mapping.ModifierMask != KeyModifierModeSwitch && mapping.ModeSwitchSensitive[level] {
		sensitive |= KeyModifierModeSwitch
		if level&LevelModeSwitch != 0 {
			required |= KeyModifierModeSwitch
		}
	}
	return required, sensitive
}

// mapToKeystrokes appends the keystrokes for one mapping: modifier
// adjustments, the key, then the undo of the adjustments in reverse. The
// level is the one closest to desired. A key that stays down gets the
// desired state of the modifiers it does not depend on, where the layout
// has keys for them.
func (m *KeyMap) mapToKeystrokes(keys *Keystrokes, state ModifierState, mapping *KeyMapping, desired KeyModifierMask, isAutoRepeat, pressAndRelease bool, rule shiftRule) KeyButton {
	if isAutoRepeat && !IsAutoRepeating(mapping.ID) {
		return 0
	}

	current := state.ActiveModifiers()
	best, bestCost := -1, NumModifiers+1
	var required, sensitive KeyModifierMask
	for level, b := range mapping.Keycode {
		if b == 0 {
			continue
		}
		req, sens := requirement(mapping, level, current, rule)
		cost := bits.OnesCount32(uint32((req ^ desired) & sens))
		if cost < bestCost {
			best, bestCost = level, cost
			required, sensitive = req, sens
		}
	}
	if best < 0 {
		return 0
	}
	button := mapping.Keycode[best]

	var undo Keystrokes
	if sensitive&KeyModifierModeSwitch != 0 {
		want := required&KeyModifierModeSwitch != 0
		if !m.mapModifier(keys, &undo, state, KeyModifierModeSwitch, want) {
			return 0
		}
	}
	if sensitive&KeyModifierShift != 0 {
		want := required&KeyModifierShift != 0
		if !m.mapModifier(keys, &undo, state, KeyModifierShift, want) {
			return 0
		}
	}
	if !pressAndRelease {
		for i := 0; i < NumModifiers; i++ {
			mask := ModifierMaskForIndex(i)
			if mask&(sensitive|mapping.ModifierMask|notDesiredModifiers) != 0 {
				continue
			}
			// a modifier this layout lacks is left as it is
			m.mapModifier(keys, &undo, state, mask, desired&mask != 0)
		}
	}

	switch {
	case IsToggle(mapping.ModifierMask) || pressAndRelease:
		*keys = append(*keys, Keystroke{button, true, false}, Keystroke{button, false, false})
	case isAutoRepeat:
		*keys = append(*keys, Keystroke{button, false, true}, Keystroke{button, true, true})
	default:
		*keys = append(*keys, Keystroke{button, true, false})
	}

	for i := len(undo) - 1; i >= 0; i-- {
		*keys = append(*keys, undo[i])
	}
	return button
}

// mapModifier appends the keystrokes that make the single modifier mask
// active or inactive, and the keystrokes that undo them to undo. It
// reports false when the layout has no key for mask and the state must
// change.
func (m *KeyMap) mapModifier(keys, undo *Keystrokes, state ModifierState, mask KeyModifierMask, desireActive bool) bool {
	if state.IsModifierActive(mask) == desireActive {
		return true
	}
	buttons := m.ModifierButtons(mask)
	if len(buttons) == 0 {
		return false
	}

	if IsToggle(mask) {
		b := buttons[0]
		*keys = append(*keys, Keystroke{b, true, false}, Keystroke{b, false, false})
		*undo = append(*undo, Keystroke{b, false, false}, Keystroke{b, true, false})
		return true
	}

	if desireActive {
		b := buttons[0]
		*keys = append(*keys, Keystroke{b, true, false})
		*undo = append(*undo, Keystroke{b, false, false})
		return true
	}

	for _, b := range buttons {
		if state.IsKeyDown(b) {
			*keys = append(*keys, Keystroke{b, false, false})
			*undo = append(*undo, Keystroke{b, true, false})
		}
	}
	return true
}
