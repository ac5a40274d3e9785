package keymap

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var keyNames = map[string]KeyID{
	"AltGr":            KeyAltGr,
	"Alt_L":            KeyAltL,
	"Alt_R":            KeyAltR,
	"AppMail":          KeyAppMail,
	"AppMedia":         KeyAppMedia,
	"AppUser1":         KeyAppUser1,
	"AppUser2":         KeyAppUser2,
	"AudioDown":        KeyAudioDown,
	"AudioMute":        KeyAudioMute,
	"AudioNext":        KeyAudioNext,
	"AudioPlay":        KeyAudioPlay,
	"AudioPrev":        KeyAudioPrev,
	"AudioStop":        KeyAudioStop,
	"AudioUp":          KeyAudioUp,
	"BackSpace":        KeyBackSpace,
	"Begin":            KeyBegin,
	"Break":            KeyBreak,
	"BrightnessDown":   KeyBrightnessDown,
	"BrightnessUp":     KeyBrightnessUp,
	"Cancel":           KeyCancel,
	"CapsLock":         KeyCapsLock,
	"Clear":            KeyClear,
	"Compose":          KeyCompose,
	"Control_L":        KeyControlL,
	"Control_R":        KeyControlR,
	"Delete":           KeyDelete,
	"Down":             KeyDown,
	"Eject":            KeyEject,
	"End":              KeyEnd,
	"Escape":           KeyEscape,
	"Execute":          KeyExecute,
	"Find":             KeyFind,
	"Hangul":           KeyHangul,
	"Hanja":            KeyHanja,
	"Help":             KeyHelp,
	"Henkan":           KeyHenkan,
	"HiraganaKatakana": KeyHiraganaKatakana,
	"Home":             KeyHome,
	"Hyper_L":          KeyHyperL,
	"Hyper_R":          KeyHyperR,
	"Insert":           KeyInsert,
	"KP_Add":           KeyKPAdd,
	"KP_Begin":         KeyKPBegin,
	"KP_Decimal":       KeyKPDecimal,
	"KP_Delete":        KeyKPDelete,
	"KP_Divide":        KeyKPDivide,
	"KP_Down":          KeyKPDown,
	"KP_End":           KeyKPEnd,
	"KP_Enter":         KeyKPEnter,
	"KP_Equal":         KeyKPEqual,
	"KP_Home":          KeyKPHome,
	"KP_Insert":        KeyKPInsert,
	"KP_Left":          KeyKPLeft,
	"KP_Multiply":      KeyKPMultiply,
	"KP_PageDown":      KeyKPPageDown,
	"KP_PageUp":        KeyKPPageUp,
	"KP_Right":         KeyKPRight,
	"KP_Separator":     KeyKPSeparator,
	"KP_Space":         KeyKPSpace,
	"KP_Subtract":      KeyKPSubtract,
	"KP_Tab":           KeyKPTab,
	"KP_Up":            KeyKPUp,
	"Kana":             KeyKana,
	"Left":             KeyLeft,
	"LeftTab":          KeyLeftTab,
	"Linefeed":         KeyLinefeed,
	"Menu":             KeyMenu,
	"Meta_L":           KeyMetaL,
	"Meta_R":           KeyMetaR,
	"NumLock":          KeyNumLock,
	"PageDown":         KeyPageDown,
	"PageUp":           KeyPageUp,
	"Pause":            KeyPause,
	"Print":            KeyPrint,
	"Redo":             KeyRedo,
	"Return":           KeyReturn,
	"Right":            KeyRight,
	"ScrollLock":       KeyScrollLock,
	"Select":           KeySelect,
	"ShiftLock":        KeyShiftLock,
	"Shift_L":          KeyShiftL,
	"Shift_R":          KeyShiftR,
	"Sleep":            KeySleep,
	"Space":            ' ',
	"Super_L":          KeySuperL,
	"Super_R":          KeySuperR,
	"SysReq":           KeySysReq,
	"Tab":              KeyTab,
	"Undo":             KeyUndo,
	"Up":               KeyUp,
	"WWWBack":          KeyWWWBack,
	"WWWFavorites":     KeyWWWFavorites,
	"WWWForward":       KeyWWWForward,
	"WWWHome":          KeyWWWHome,
	"WWWRefresh":       KeyWWWRefresh,
	"WWWSearch":        KeyWWWSearch,
	"WWWStop":          KeyWWWStop,
	"Zenkaku":          KeyZenkaku,
}

// only transient modifiers have names; lock keys are keys
var modifierNames = []struct {
	name string
	mask KeyModifierMask
}{
	{"Shift", KeyModifierShift},
	{"Control", KeyModifierControl},
	{"Alt", KeyModifierAlt},
	{"Meta", KeyModifierMeta},
	{"Super", KeyModifierSuper},
	{"AltGr", KeyModifierAltGr},
}

var idToName map[KeyID]string

func init() {
	for i := 1; i <= 35; i++ {
		keyNames["F"+strconv.Itoa(i)] = FunctionKey(i)
	}
	for i := 0; i <= 9; i++ {
		keyNames["KP_"+strconv.Itoa(i)] = KeyKP0 + KeyID(i)
	}
	for i := 1; i <= 4; i++ {
		keyNames["KP_F"+strconv.Itoa(i)] = KeyKPF1 + KeyID(i-1)
	}
	idToName = make(map[KeyID]string, len(keyNames))
	for name, id := range keyNames {
		idToName[id] = name
	}
}

var (
	ErrUnknownKey      = errors.New("unknown key")
	ErrBadModifierList = errors.New("malformed modifier list")
)

// FormatKey renders a key and modifiers as "Control+Alt+Delete".
func FormatKey(id KeyID, mask KeyModifierMask) string {
	var parts []string
	for _, m := range modifierNames {
		if mask&m.mask != 0 {
			parts = append(parts, m.name)
		}
	}
	if id != KeyNone {
		switch name, ok := idToName[id]; {
		case ok:
			parts = append(parts, name)
		case id > ' ' && id < 0x7f:
			parts = append(parts, string(rune(id)))
		default:
			parts = append(parts, fmt.Sprintf("\\u%04x", uint32(id)))
		}
	}
	return strings.Join(parts, "+")
}

// ParseKey parses a key name, a single printable character or a \uXXXX
// escape. An empty string is KeyNone.
func ParseKey(s string) (KeyID, error) {
	if s == "" {
		return KeyNone, nil
	}
	if id, ok := keyNames[s]; ok {
		return id, nil
	}
	if r := []rune(s); len(r) == 1 {
		if !unicode.IsGraphic(r[0]) || unicode.IsSpace(r[0]) {
			return KeyNone, errors.Wrapf(ErrUnknownKey, "%q", s)
		}
		return KeyID(r[0]), nil
	}
	if len(s) == 6 && strings.HasPrefix(s, "\\u") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return KeyNone, errors.Wrapf(ErrUnknownKey, "%q", s)
		}
		return KeyID(v), nil
	}
	return KeyNone, errors.Wrapf(ErrUnknownKey, "%q", s)
}

// ParseModifiers consumes leading "Name+" modifier components of s and
// returns the mask and the unconsumed remainder, which is the key part.
func ParseModifiers(s string) (KeyModifierMask, string, error) {
	var mask KeyModifierMask
	rest := strings.TrimSpace(s)
	for rest != "" {
		component, tail, more := strings.Cut(rest, "+")
		component = strings.TrimSpace(component)
		if component == "" {
			// "+" on its own is the plus key, not an empty component
			if rest == "+" {
				return mask, rest, nil
			}
			return 0, "", errors.Wrapf(ErrBadModifierList, "%q", s)
		}
		mod, ok := modifierByName(component)
		if !ok {
			return mask, rest, nil
		}
		if mask&mod != 0 {
			return 0, "", errors.Wrapf(ErrBadModifierList, "%q repeats %s", s, component)
		}
		mask |= mod
		if !more {
			return mask, "", nil
		}
		rest = strings.TrimSpace(tail)
	}
	return mask, "", nil
}

// ParseKeyCombo parses "Modifiers+Key".
func ParseKeyCombo(s string) (KeyID, KeyModifierMask, error) {
	mask, rest, err := ParseModifiers(s)
	if err != nil {
		return KeyNone, 0, err
	}
	id, err := ParseKey(rest)
	if err != nil {
		return KeyNone, 0, err
	}
	return id, mask, nil
}

func modifierByName(name string) (KeyModifierMask, bool) {
	for _, m := range modifierNames {
		if m.name == name {
			return m.mask, true
		}
	}
	return 0, false
}
