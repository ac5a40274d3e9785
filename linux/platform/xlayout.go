package platform

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"

	"github.com/TKMAX777/synkey/keymap"
)

const (
	xkNoSymbol       = 0
	xkModeSwitch     = 0xff7e
	xkISOLevel3Shift = 0xfe03
)

// xLayout is the core protocol keyboard and modifier mapping of an X
// server. Buttons are X keycodes.
type xLayout struct {
	minKeycode xproto.Keycode
	keysymsPer int
	keysyms    []xproto.Keysym

	keycodesPerModifier int
	modifierKeycodes    []xproto.Keycode
}

func queryXLayout(X *xgb.Conn) (*xLayout, error) {
	setup := xproto.Setup(X)
	min, max := setup.MinKeycode, setup.MaxKeycode
	km, err := xproto.GetKeyboardMapping(X, min, byte(int(max)-int(min)+1)).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "get keyboard mapping")
	}
	mm, err := xproto.GetModifierMapping(X).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "get modifier mapping")
	}
	return &xLayout{
		minKeycode:          min,
		keysymsPer:          int(km.KeysymsPerKeycode),
		keysyms:             km.Keysyms,
		keycodesPerModifier: int(mm.KeycodesPerModifier),
		modifierKeycodes:    mm.Keycodes,
	}, nil
}

func (l *xLayout) numKeycodes() int {
	if l.keysymsPer == 0 {
		return 0
	}
	return len(l.keysyms) / l.keysymsPer
}

func (l *xLayout) row(kc xproto.Keycode) []xproto.Keysym {
	if kc < l.minKeycode {
		return nil
	}
	i := int(kc-l.minKeycode) * l.keysymsPer
	if i+l.keysymsPer > len(l.keysyms) {
		return nil
	}
	return l.keysyms[i : i+l.keysymsPer]
}

// pair returns the two keysyms of a row starting at col as KeyIDs. A
// missing second keysym is filled in the way X does it: the case pair of
// a letter, the first keysym otherwise.
func pair(row []xproto.Keysym, col int) (keymap.KeyID, keymap.KeyID) {
	sym := func(i int) uint32 {
		if i < len(row) {
			return uint32(row[i])
		}
		return xkNoSymbol
	}
	first := keymap.KeySymToKeyID(sym(col))
	if sym(col+1) == xkNoSymbol {
		if keymap.IsLetter(first) {
			return keymap.ToLower(first), keymap.ToUpper(first)
		}
		return first, first
	}
	return first, keymap.KeySymToKeyID(sym(col + 1))
}

type xModifierKey struct {
	mask   keymap.KeyModifierMask
	button keymap.KeyButton
}

// xModifiers is the modifier mapping resolved to synkey modifiers.
type xModifiers struct {
	// bits maps the eight X state bits (Shift, Lock, Control, Mod1..Mod5)
	bits [8]keymap.KeyModifierMask
	keys []xModifierKey

	// mode switch is ISO_Level3_Shift rather than Mode_switch
	level3 bool
}

func (l *xLayout) modifiers() xModifiers {
	type entry struct {
		bit int
		kc  xproto.Keycode
		sym uint32
	}
	var entries []entry
	var mods xModifiers
	per := l.keycodesPerModifier
	for bit := 0; bit < 8 && (bit+1)*per <= len(l.modifierKeycodes); bit++ {
		for _, kc := range l.modifierKeycodes[bit*per : (bit+1)*per] {
			row := l.row(kc)
			if kc == 0 || len(row) == 0 {
				continue
			}
			sym := uint32(row[0])
			if sym == xkISOLevel3Shift {
				mods.level3 = true
			}
			entries = append(entries, entry{bit, kc, sym})
		}
	}

	for _, e := range entries {
		// with both present the level 3 shift is the one layouts use
		if mods.level3 && e.sym == xkModeSwitch {
			continue
		}
		mask := keymap.ModifierForKey(keymap.KeySymToKeyID(e.sym))
		if mask == 0 {
			continue
		}
		if mods.bits[e.bit] == 0 {
			mods.bits[e.bit] = mask
		}
		mods.keys = append(mods.keys, xModifierKey{mask, keymap.KeyButton(e.kc)})
	}
	return mods
}

// fill adds every keycode of l to m.
func (l *xLayout) fill(m *keymap.KeyMap) xModifiers {
	mods := l.modifiers()

	// XKB puts level 3 and 4 in columns 4 and 5, group 2 in 2 and 3
	msCol := 2
	if mods.level3 && l.keysymsPer >= 6 {
		msCol = 4
	}

	for i := 0; i < l.numKeycodes(); i++ {
		kc := int(l.minKeycode) + i
		if kc >= keymap.NumButtons {
			break
		}
		row := l.row(xproto.Keycode(kc))
		if mods.level3 && len(row) > 0 && row[0] == xkModeSwitch {
			continue
		}

		var ids [keymap.NumLevels]keymap.KeyID
		ids[keymap.LevelPlain], ids[keymap.LevelShift] = pair(row, 0)
		ids[keymap.LevelModeSwitch], ids[keymap.LevelShiftModeSwitch] = pair(row, msCol)
		if ids[keymap.LevelModeSwitch] == keymap.KeyNone && ids[keymap.LevelShiftModeSwitch] == keymap.KeyNone {
			ids[keymap.LevelModeSwitch], ids[keymap.LevelShiftModeSwitch] = ids[keymap.LevelPlain], ids[keymap.LevelShift]
		}

		button := keymap.KeyButton(kc)
		for level, id := range ids {
			if id == keymap.KeyNone {
				continue
			}
			m.AddKey(0, id, level, button,
				id != ids[level^keymap.LevelShift],
				id != ids[level^keymap.LevelModeSwitch])
		}
	}

	for _, key := range mods.keys {
		m.AddModifier(key.mask, key.button)
	}
	return mods
}
