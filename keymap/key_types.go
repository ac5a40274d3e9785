// Package keymap holds the platform independent key identifiers, modifier
// masks and the per-layout table that turns a KeyID into native keystrokes.
package keymap

import "math/bits"

// KeyID identifies a key or character independent of any keyboard layout.
// Latin-1 characters are their own code point, special keys live in 0xEFxx
// (X keysym minus 0x1000), synthetic keys in 0xEExx and media keys in 0xE0xx.
type KeyID uint32

// KeyButton is a platform keycode on the local keyboard.
type KeyButton uint16

// KeyModifierMask is a set of modifier bits.
type KeyModifierMask uint32

const (
	NumButtons = 0x200
	ButtonMask = NumButtons - 1
)

const (
	KeyModifierShift      KeyModifierMask = 0x0001
	KeyModifierControl    KeyModifierMask = 0x0002
	KeyModifierAlt        KeyModifierMask = 0x0004
	KeyModifierMeta       KeyModifierMask = 0x0008
	KeyModifierSuper      KeyModifierMask = 0x0010
	KeyModifierModeSwitch KeyModifierMask = 0x0020
	KeyModifierCapsLock   KeyModifierMask = 0x1000
	KeyModifierNumLock    KeyModifierMask = 0x2000
	KeyModifierScrollLock KeyModifierMask = 0x4000

	KeyModifierAltGr = KeyModifierModeSwitch

	KeyModifierToggles = KeyModifierCapsLock | KeyModifierNumLock | KeyModifierScrollLock
)

// NumModifiers is the number of modifier slots tracked per layout.
const NumModifiers = 9

var modifierByIndex = [NumModifiers]KeyModifierMask{
	KeyModifierShift,
	KeyModifierControl,
	KeyModifierAlt,
	KeyModifierMeta,
	KeyModifierSuper,
	KeyModifierModeSwitch,
	KeyModifierCapsLock,
	KeyModifierNumLock,
	KeyModifierScrollLock,
}

// ModifierMaskForIndex returns the single-bit mask for modifier slot i.
func ModifierMaskForIndex(i int) KeyModifierMask {
	return modifierByIndex[i]
}

// ModifierIndex returns the slot of a single-bit modifier mask. It panics
// when mask is not exactly one known modifier.
func ModifierIndex(mask KeyModifierMask) int {
	for i, m := range modifierByIndex {
		if m == mask {
			return i
		}
	}
	panic("keymap: not a single modifier bit")
}

// IsSingleModifier reports whether mask is exactly one known modifier.
func IsSingleModifier(mask KeyModifierMask) bool {
	if bits.OnesCount32(uint32(mask)) != 1 {
		return false
	}
	for _, m := range modifierByIndex {
		if m == mask {
			return true
		}
	}
	return false
}

// IsToggle reports whether mask contains only toggle modifiers.
func IsToggle(mask KeyModifierMask) bool {
	return mask != 0 && mask&^KeyModifierToggles == 0
}

const KeyNone KeyID = 0x0000

// cursor control and motion
const (
	KeyBackSpace        KeyID = 0xEF08
	KeyTab              KeyID = 0xEF09
	KeyLinefeed         KeyID = 0xEF0A
	KeyClear            KeyID = 0xEF0B
	KeyReturn           KeyID = 0xEF0D
	KeyPause            KeyID = 0xEF13
	KeyScrollLock       KeyID = 0xEF14
	KeySysReq           KeyID = 0xEF15
	KeyEscape           KeyID = 0xEF1B
	KeyCompose          KeyID = 0xEF20
	KeyHenkan           KeyID = 0xEF23
	KeyKana             KeyID = 0xEF26
	KeyHiraganaKatakana KeyID = 0xEF27
	KeyZenkaku          KeyID = 0xEF2A
	KeyHangul           KeyID = 0xEF31
	KeyHanja            KeyID = 0xEF34
	KeyDelete           KeyID = 0xEFFF

	KeyHome     KeyID = 0xEF50
	KeyLeft     KeyID = 0xEF51
	KeyUp       KeyID = 0xEF52
	KeyRight    KeyID = 0xEF53
	KeyDown     KeyID = 0xEF54
	KeyPageUp   KeyID = 0xEF55
	KeyPageDown KeyID = 0xEF56
	KeyEnd      KeyID = 0xEF57
	KeyBegin    KeyID = 0xEF58

	KeySelect  KeyID = 0xEF60
	KeyPrint   KeyID = 0xEF61
	KeyExecute KeyID = 0xEF62
	KeyInsert  KeyID = 0xEF63
	KeyUndo    KeyID = 0xEF65
	KeyRedo    KeyID = 0xEF66
	KeyMenu    KeyID = 0xEF67
	KeyFind    KeyID = 0xEF68
	KeyCancel  KeyID = 0xEF69
	KeyHelp    KeyID = 0xEF6A
	KeyBreak   KeyID = 0xEF6B
	KeyAltGr   KeyID = 0xEF7E
	KeyNumLock KeyID = 0xEF7F
)

// keypad
const (
	KeyKPSpace     KeyID = 0xEF80
	KeyKPTab       KeyID = 0xEF89
	KeyKPEnter     KeyID = 0xEF8D
	KeyKPF1        KeyID = 0xEF91
	KeyKPF2        KeyID = 0xEF92
	KeyKPF3        KeyID = 0xEF93
	KeyKPF4        KeyID = 0xEF94
	KeyKPHome      KeyID = 0xEF95
	KeyKPLeft      KeyID = 0xEF96
	KeyKPUp        KeyID = 0xEF97
	KeyKPRight     KeyID = 0xEF98
	KeyKPDown      KeyID = 0xEF99
	KeyKPPageUp    KeyID = 0xEF9A
	KeyKPPageDown  KeyID = 0xEF9B
	KeyKPEnd       KeyID = 0xEF9C
	KeyKPBegin     KeyID = 0xEF9D
	KeyKPInsert    KeyID = 0xEF9E
	KeyKPDelete    KeyID = 0xEF9F
	KeyKPMultiply  KeyID = 0xEFAA
	KeyKPAdd       KeyID = 0xEFAB
	KeyKPSeparator KeyID = 0xEFAC
	KeyKPSubtract  KeyID = 0xEFAD
	KeyKPDecimal   KeyID = 0xEFAE
	KeyKPDivide    KeyID = 0xEFAF
	KeyKP0         KeyID = 0xEFB0
	KeyKP1         KeyID = 0xEFB1
	KeyKP2         KeyID = 0xEFB2
	KeyKP3         KeyID = 0xEFB3
	KeyKP4         KeyID = 0xEFB4
	KeyKP5         KeyID = 0xEFB5
	KeyKP6         KeyID = 0xEFB6
	KeyKP7         KeyID = 0xEFB7
	KeyKP8         KeyID = 0xEFB8
	KeyKP9         KeyID = 0xEFB9
	KeyKPEqual     KeyID = 0xEFBD
)

// function keys run contiguously from F1 (0xEFBE) to F35 (0xEFE0)
const (
	KeyF1  KeyID = 0xEFBE
	KeyF12 KeyID = 0xEFC9
	KeyF35 KeyID = 0xEFE0
)

// FunctionKey returns the KeyID of Fn for n in 1..35.
func FunctionKey(n int) KeyID {
	return KeyF1 + KeyID(n-1)
}

// modifiers
const (
	KeyShiftL    KeyID = 0xEFE1
	KeyShiftR    KeyID = 0xEFE2
	KeyControlL  KeyID = 0xEFE3
	KeyControlR  KeyID = 0xEFE4
	KeyCapsLock  KeyID = 0xEFE5
	KeyShiftLock KeyID = 0xEFE6
	KeyMetaL     KeyID = 0xEFE7
	KeyMetaR     KeyID = 0xEFE8
	KeyAltL      KeyID = 0xEFE9
	KeyAltR      KeyID = 0xEFEA
	KeySuperL    KeyID = 0xEFEB
	KeySuperR    KeyID = 0xEFEC
	KeyHyperL    KeyID = 0xEFED
	KeyHyperR    KeyID = 0xEFEE
)

// dead keys are the combining diacritics
const (
	KeyDeadGrave       KeyID = 0x0300
	KeyDeadAcute       KeyID = 0x0301
	KeyDeadCircumflex  KeyID = 0x0302
	KeyDeadTilde       KeyID = 0x0303
	KeyDeadMacron      KeyID = 0x0304
	KeyDeadBreve       KeyID = 0x0306
	KeyDeadAbovedot    KeyID = 0x0307
	KeyDeadDiaeresis   KeyID = 0x0308
	KeyDeadAbovering   KeyID = 0x030A
	KeyDeadDoubleacute KeyID = 0x030B
	KeyDeadCaron       KeyID = 0x030C
	KeyDeadCedilla     KeyID = 0x0327
	KeyDeadOgonek      KeyID = 0x0328
)

// synthetic keys
const (
	KeyLeftTab        KeyID = 0xEE20
	KeySetModifiers   KeyID = 0xEE06
	KeyClearModifiers KeyID = 0xEE07
	KeyNextGroup      KeyID = 0xEE08
	KeyPrevGroup      KeyID = 0xEE0A
)

// media and browser keys
const (
	KeyEject          KeyID = 0xE001
	KeySleep          KeyID = 0xE05F
	KeyWWWBack        KeyID = 0xE0A6
	KeyWWWForward     KeyID = 0xE0A7
	KeyWWWRefresh     KeyID = 0xE0A8
	KeyWWWStop        KeyID = 0xE0A9
	KeyWWWSearch      KeyID = 0xE0AA
	KeyWWWFavorites   KeyID = 0xE0AB
	KeyWWWHome        KeyID = 0xE0AC
	KeyAudioMute      KeyID = 0xE0AD
	KeyAudioDown      KeyID = 0xE0AE
	KeyAudioUp        KeyID = 0xE0AF
	KeyAudioNext      KeyID = 0xE0B0
	KeyAudioPrev      KeyID = 0xE0B1
	KeyAudioStop      KeyID = 0xE0B2
	KeyAudioPlay      KeyID = 0xE0B3
	KeyAppMail        KeyID = 0xE0B4
	KeyAppMedia       KeyID = 0xE0B5
	KeyAppUser1       KeyID = 0xE0B6
	KeyAppUser2       KeyID = 0xE0B7
	KeyBrightnessDown KeyID = 0xE0B8
	KeyBrightnessUp   KeyID = 0xE0B9
)

// IsMediaKey reports whether id is in the media/browser key block.
func IsMediaKey(id KeyID) bool {
	return id&0xFF00 == 0xE000
}

// IsKeypad reports whether id is a keypad key.
func IsKeypad(id KeyID) bool {
	return id >= KeyKPSpace && id <= KeyKPEqual
}

// IsDeadKey reports whether id is a combining diacritic used as a dead key.
func IsDeadKey(id KeyID) bool {
	return id >= 0x0300 && id <= 0x036F
}

// ModifierForKey returns the modifier a key id stands for, or 0.
func ModifierForKey(id KeyID) KeyModifierMask {
	switch id {
	case KeyShiftL, KeyShiftR, KeyShiftLock:
		return KeyModifierShift
	case KeyControlL, KeyControlR:
		return KeyModifierControl
	case KeyAltL, KeyAltR:
		return KeyModifierAlt
	case KeyMetaL, KeyMetaR:
		return KeyModifierMeta
	case KeySuperL, KeySuperR:
		return KeyModifierSuper
	case KeyAltGr:
		return KeyModifierModeSwitch
	case KeyCapsLock:
		return KeyModifierCapsLock
	case KeyNumLock:
		return KeyModifierNumLock
	case KeyScrollLock:
		return KeyModifierScrollLock
	}
	return 0
}

// IsModifierKey reports whether id is a modifier or lock key.
func IsModifierKey(id KeyID) bool {
	return ModifierForKey(id) != 0
}

// IsAutoRepeating reports whether holding the key should repeat it. Toggles
// and a few latching keys never repeat.
func IsAutoRepeating(id KeyID) bool {
	switch id {
	case KeyPause, KeyPrint, KeySysReq, KeyBreak, KeyZenkaku:
		return false
	}
	return !IsToggle(ModifierForKey(id))
}

// Keystroke is one native key transition.
type Keystroke struct {
	Button KeyButton
	Press  bool
	Repeat bool
}

// Keystrokes is an ordered list of native transitions.
type Keystrokes []Keystroke
