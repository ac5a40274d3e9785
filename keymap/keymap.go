package keymap

import (
	"github.com/TKMAX777/synkey/logging"
)

var log = logging.For("keymap")

// Levels of a KeyMapping. Bit 0 is shift, bit 1 is mode switch.
const (
	LevelPlain = iota
	LevelShift
	LevelModeSwitch
	LevelShiftModeSwitch
	NumLevels
)

// KeyMapping describes how one KeyID is produced in one group.
type KeyMapping struct {
	ID KeyID

	// Keycode[level] produces ID with the level's shift/mode switch state,
	// 0 when no key does.
	Keycode [NumLevels]KeyButton

	// whether the output at a level changes when shift or mode switch
	// changes. An insensitive level ignores that modifier.
	ShiftSensitive      [NumLevels]bool
	ModeSwitchSensitive [NumLevels]bool

	// ModifierMask is the modifier the key itself is, or 0.
	ModifierMask KeyModifierMask

	// caps lock or num lock active inverts the effective shift state.
	CapsLockSensitive bool
	NumLockSensitive  bool
}

// KeyMap is the layout table of one keyboard. A platform fills it in,
// Finish seals it, and from then on it is only read.
type KeyMap struct {
	groups     []map[KeyID]*KeyMapping
	keyToMask  [NumButtons]KeyModifierMask
	maskToKeys [NumModifiers][]KeyButton
	halfDuplex map[KeyButton]bool
	reverse    []map[KeyButton][NumLevels]KeyID
	finished   bool
}

// New returns an empty KeyMap.
func New() *KeyMap {
	return &KeyMap{halfDuplex: make(map[KeyButton]bool)}
}

func (m *KeyMap) mustBeOpen() {
	if m.finished {
		panic("keymap: modified after Finish")
	}
}

func (m *KeyMap) group(g int) map[KeyID]*KeyMapping {
	for len(m.groups) <= g {
		m.groups = append(m.groups, make(map[KeyID]*KeyMapping))
	}
	return m.groups[g]
}

func (m *KeyMap) entry(g int, id KeyID) *KeyMapping {
	grp := m.group(g)
	mapping, ok := grp[id]
	if !ok {
		mapping = &KeyMapping{ID: id}
		grp[id] = mapping
	}
	return mapping
}

// AddKey records that button produces id at level in group. The first
// button registered for a level wins.
func (m *KeyMap) AddKey(group int, id KeyID, level int, button KeyButton, shiftSensitive, modeSwitchSensitive bool) {
	m.mustBeOpen()
	if id == KeyNone || button == 0 || level < 0 || level >= NumLevels || group < 0 {
		return
	}
	mapping := m.entry(group, id)
	if mapping.Keycode[level] != 0 {
		return
	}
	mapping.Keycode[level] = button & ButtonMask
	mapping.ShiftSensitive[level] = shiftSensitive
	mapping.ModeSwitchSensitive[level] = modeSwitchSensitive
}

// SetLockSensitivity marks id as inverted by caps lock and/or num lock.
func (m *KeyMap) SetLockSensitivity(group int, id KeyID, capsLock, numLock bool) {
	m.mustBeOpen()
	if mapping, ok := m.group(group)[id]; ok {
		mapping.CapsLockSensitive = mapping.CapsLockSensitive || capsLock
		mapping.NumLockSensitive = mapping.NumLockSensitive || numLock
	}
}

// AddModifier registers buttons that activate the single modifier mask.
func (m *KeyMap) AddModifier(mask KeyModifierMask, buttons ...KeyButton) {
	m.mustBeOpen()
	index := ModifierIndex(mask)
	for _, b := range buttons {
		b &= ButtonMask
		if b == 0 || m.keyToMask[b] == mask {
			continue
		}
		m.keyToMask[b] = mask
		m.maskToKeys[index] = append(m.maskToKeys[index], b)
	}
}

// AddHalfDuplexButton marks a button whose hardware reports press-only.
func (m *KeyMap) AddHalfDuplexButton(button KeyButton) {
	m.mustBeOpen()
	m.halfDuplex[button&ButtonMask] = true
}

var handedPairs = [][2]KeyID{
	{KeyShiftL, KeyShiftR},
	{KeyControlL, KeyControlR},
	{KeyAltL, KeyAltR},
	{KeyMetaL, KeyMetaR},
	{KeySuperL, KeySuperR},
	{KeyHyperL, KeyHyperR},
}

// Finish derives the remaining table state and seals the map.
func (m *KeyMap) Finish() {
	if m.finished {
		return
	}
	if len(m.groups) == 0 {
		m.group(0)
	}
	hasModeSwitch := len(m.maskToKeys[ModifierIndex(KeyModifierModeSwitch)]) != 0

	for _, grp := range m.groups {
		// a layout with only one hand of a modifier still needs both ids
		for _, pair := range handedPairs {
			l, lok := grp[pair[0]]
			r, rok := grp[pair[1]]
			switch {
			case lok && !rok:
				c := *l
				c.ID = pair[1]
				grp[pair[1]] = &c
			case rok && !lok:
				c := *r
				c.ID = pair[0]
				grp[pair[0]] = &c
			}
		}

		for id, mapping := range grp {
			if !hasModeSwitch {
				for level := LevelModeSwitch; level < NumLevels; level++ {
					mapping.Keycode[level] = 0
					mapping.ShiftSensitive[level] = false
					mapping.ModeSwitchSensitive[level] = false
				}
			}
			shiftSensitive := false
			for level := 0; level < NumLevels; level++ {
				b := mapping.Keycode[level]
				if b == 0 {
					continue
				}
				if mapping.ModifierMask == 0 {
					mapping.ModifierMask = m.keyToMask[b]
				}
				shiftSensitive = shiftSensitive || mapping.ShiftSensitive[level]
			}
			if shiftSensitive && IsLetter(id) {
				mapping.CapsLockSensitive = true
			}
			if shiftSensitive && IsKeypad(id) {
				mapping.NumLockSensitive = true
			}
		}
	}

	m.reverse = make([]map[KeyButton][NumLevels]KeyID, len(m.groups))
	for g, grp := range m.groups {
		rev := make(map[KeyButton][NumLevels]KeyID)
		for id, mapping := range grp {
			for level, b := range mapping.Keycode {
				if b == 0 {
					continue
				}
				ids := rev[b]
				// several ids can share a key; keep the lowest
				if ids[level] == KeyNone || id < ids[level] {
					ids[level] = id
					rev[b] = ids
				}
			}
		}
		m.reverse[g] = rev
	}
	m.finished = true
}

// NumGroups returns the number of layout groups.
func (m *KeyMap) NumGroups() int {
	return len(m.groups)
}

// EffectiveGroup clamps a platform group index into the table.
func (m *KeyMap) EffectiveGroup(group int) int {
	if group < 0 || group >= len(m.groups) {
		return 0
	}
	return group
}

// Mapping returns the entry for id in group.
func (m *KeyMap) Mapping(group int, id KeyID) (*KeyMapping, bool) {
	if len(m.groups) == 0 {
		return nil, false
	}
	mapping, ok := m.groups[m.EffectiveGroup(group)][id]
	return mapping, ok
}

// ModifierForButton returns the modifier a button activates, or 0.
func (m *KeyMap) ModifierForButton(button KeyButton) KeyModifierMask {
	return m.keyToMask[button&ButtonMask]
}

// ModifierButtons returns the buttons that activate the single modifier
// mask. The slice must not be modified.
func (m *KeyMap) ModifierButtons(mask KeyModifierMask) []KeyButton {
	return m.maskToKeys[ModifierIndex(mask)]
}

// IsHalfDuplexButton reports whether the platform declared button as
// press-only hardware.
func (m *KeyMap) IsHalfDuplexButton(button KeyButton) bool {
	return m.halfDuplex[button&ButtonMask]
}

// KeyForButton returns the id a button produces at level in group. Screens
// use it to turn observed keycodes into KeyIDs.
func (m *KeyMap) KeyForButton(group int, button KeyButton, level int) KeyID {
	if len(m.reverse) == 0 || level < 0 || level >= NumLevels {
		return KeyNone
	}
	ids := m.reverse[m.EffectiveGroup(group)][button&ButtonMask]
	if ids[level] == KeyNone {
		return ids[LevelPlain]
	}
	return ids[level]
}
