// Package platform reads and drives the Windows keyboard. Buttons are scan
// codes with 0x100 set for E0-prefixed keys, which is how both raw input
// and SendInput name a physical key.
package platform

import (
	"github.com/TKMAX777/synkey/keymap"
)

const extendedButton keymap.KeyButton = 0x100

// RAWKEYBOARD flags
const (
	riKeyBreak = 0x01
	riKeyE0    = 0x02
)

// ButtonForScanCode converts a scan code as MapVirtualKeyEx returns it,
// with 0xE0 or 0xE1 in the high byte for extended keys.
func ButtonForScanCode(sc uint32) keymap.KeyButton {
	b := keymap.KeyButton(sc & 0xff)
	if hi := sc >> 8; hi == 0xE0 || hi == 0xE1 {
		b |= extendedButton
	}
	return b
}

// ButtonForRawKey converts the make code and flags of a raw keyboard event
// and reports whether the key went down.
func ButtonForRawKey(makeCode, flags uint16) (keymap.KeyButton, bool) {
	b := keymap.KeyButton(makeCode & 0xff)
	if flags&riKeyE0 != 0 {
		b |= extendedButton
	}
	return b, flags&riKeyBreak == 0
}

// Key is what the layout walk learned about one virtual key. Chars holds
// the character typed at each level (plain, Shift, AltGr, Shift+AltGr),
// 0 for none.
type Key struct {
	VK     uint8
	Button keymap.KeyButton
	Chars  [keymap.NumLevels]rune
	Dead   [keymap.NumLevels]bool
}

// Layout is one installed keyboard layout.
type Layout struct {
	Keys []Key
}

// HasAltGr reports whether AltGr types anything on this layout. Without
// it the right Alt key is a plain Alt.
func (l Layout) HasAltGr() bool {
	for _, k := range l.Keys {
		if k.Chars[keymap.LevelModeSwitch] != 0 || k.Chars[keymap.LevelShiftModeSwitch] != 0 {
			return true
		}
	}
	return false
}

// spacing accents ToUnicodeEx reports for dead keys
var deadKeys = map[rune]keymap.KeyID{
	'`':    keymap.KeyDeadGrave,
	0x00B4: keymap.KeyDeadAcute,
	'\'':   keymap.KeyDeadAcute,
	'^':    keymap.KeyDeadCircumflex,
	'~':    keymap.KeyDeadTilde,
	0x02DC: keymap.KeyDeadTilde,
	0x00AF: keymap.KeyDeadMacron,
	0x02D8: keymap.KeyDeadBreve,
	0x02D9: keymap.KeyDeadAbovedot,
	0x00A8: keymap.KeyDeadDiaeresis,
	'"':    keymap.KeyDeadDiaeresis,
	0x00B0: keymap.KeyDeadAbovering,
	0x02DA: keymap.KeyDeadAbovering,
	0x02DD: keymap.KeyDeadDoubleacute,
	0x02C7: keymap.KeyDeadCaron,
	0x00B8: keymap.KeyDeadCedilla,
	0x02DB: keymap.KeyDeadOgonek,
}

// what the number pad types with num lock off
var keypadNavigation = map[uint8]keymap.KeyID{
	keymap.VK_NUMPAD0 + 0: keymap.KeyKPInsert,
	keymap.VK_NUMPAD0 + 1: keymap.KeyKPEnd,
	keymap.VK_NUMPAD0 + 2: keymap.KeyKPDown,
	keymap.VK_NUMPAD0 + 3: keymap.KeyKPPageDown,
	keymap.VK_NUMPAD0 + 4: keymap.KeyKPLeft,
	keymap.VK_NUMPAD0 + 5: keymap.KeyKPBegin,
	keymap.VK_NUMPAD0 + 6: keymap.KeyKPRight,
	keymap.VK_NUMPAD0 + 7: keymap.KeyKPHome,
	keymap.VK_NUMPAD0 + 8: keymap.KeyKPUp,
	keymap.VK_NUMPAD0 + 9: keymap.KeyKPPageUp,
	keymap.VK_DECIMAL:     keymap.KeyKPDelete,
}

func charID(r rune, dead bool) keymap.KeyID {
	if dead {
		if id, ok := deadKeys[r]; ok {
			return id
		}
		if keymap.IsDeadKey(keymap.KeyID(r)) {
			return keymap.KeyID(r)
		}
		return keymap.KeyNone
	}
	if r < 0x20 || r == 0x7f {
		return keymap.KeyNone
	}
	return keymap.KeyID(r)
}

// Fill adds the layout to m as group.
func (l Layout) Fill(m *keymap.KeyMap, group int) {
	altGr := l.HasAltGr()
	for _, k := range l.Keys {
		if k.Button == 0 {
			continue
		}
		if id, ok := keymap.VKToKeyID(k.VK); ok {
			l.addSpecial(m, group, k, id, altGr)
			continue
		}

		var ids [keymap.NumLevels]keymap.KeyID
		for level := range ids {
			ids[level] = charID(k.Chars[level], k.Dead[level])
		}
		if ids == [keymap.NumLevels]keymap.KeyID{} {
			continue
		}
		if ids[keymap.LevelModeSwitch] == keymap.KeyNone && ids[keymap.LevelShiftModeSwitch] == keymap.KeyNone {
			ids[keymap.LevelModeSwitch], ids[keymap.LevelShiftModeSwitch] = ids[keymap.LevelPlain], ids[keymap.LevelShift]
		}
		for level, id := range ids {
			if id == keymap.KeyNone {
				continue
			}
			m.AddKey(group, id, level, k.Button,
				id != ids[level^keymap.LevelShift],
				id != ids[level^keymap.LevelModeSwitch])
		}
	}
}

func (l Layout) addSpecial(m *keymap.KeyMap, group int, k Key, id keymap.KeyID, altGr bool) {
	if k.VK == keymap.VK_RMENU && altGr {
		id = keymap.KeyAltGr
	}

	if nav, ok := keypadNavigation[k.VK]; ok {
		for level := range keymap.NumLevels {
			plain := level&keymap.LevelShift == 0
			if plain {
				m.AddKey(group, id, level, k.Button, true, false)
			} else {
				m.AddKey(group, nav, level, k.Button, true, false)
			}
		}
		return
	}

	for level := range keymap.NumLevels {
		m.AddKey(group, id, level, k.Button, false, false)
	}
	if mask := keymap.ModifierForKey(id); mask != 0 {
		m.AddModifier(mask, k.Button)
	}
}
