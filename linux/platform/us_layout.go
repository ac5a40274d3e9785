package platform

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/TKMAX777/synkey/keymap"
)

// ButtonForCode turns an evdev key code into the X keycode of the same
// key, which is what the layout tables use.
func ButtonForCode(code evdev.EvCode) keymap.KeyButton {
	return keymap.KeyButton(code + 8)
}

// CodeForButton is the inverse of ButtonForCode.
func CodeForButton(button keymap.KeyButton) int {
	return int(button) - 8
}

type usKey struct {
	plain, shift keymap.KeyID
}

// usKeys is a pc105 US layout for sessions without an X server.
var usKeys = map[evdev.EvCode]usKey{
	evdev.KEY_A: {'a', 'A'}, evdev.KEY_B: {'b', 'B'},
	evdev.KEY_C: {'c', 'C'}, evdev.KEY_D: {'d', 'D'},
	evdev.KEY_E: {'e', 'E'}, evdev.KEY_F: {'f', 'F'},
	evdev.KEY_G: {'g', 'G'}, evdev.KEY_H: {'h', 'H'},
	evdev.KEY_I: {'i', 'I'}, evdev.KEY_J: {'j', 'J'},
	evdev.KEY_K: {'k', 'K'}, evdev.KEY_L: {'l', 'L'},
	evdev.KEY_M: {'m', 'M'}, evdev.KEY_N: {'n', 'N'},
	evdev.KEY_O: {'o', 'O'}, evdev.KEY_P: {'p', 'P'},
	evdev.KEY_Q: {'q', 'Q'}, evdev.KEY_R: {'r', 'R'},
	evdev.KEY_S: {'s', 'S'}, evdev.KEY_T: {'t', 'T'},
	evdev.KEY_U: {'u', 'U'}, evdev.KEY_V: {'v', 'V'},
	evdev.KEY_W: {'w', 'W'}, evdev.KEY_X: {'x', 'X'},
	evdev.KEY_Y: {'y', 'Y'}, evdev.KEY_Z: {'z', 'Z'},

	evdev.KEY_1: {'1', '!'}, evdev.KEY_2: {'2', '@'},
	evdev.KEY_3: {'3', '#'}, evdev.KEY_4: {'4', '$'},
	evdev.KEY_5: {'5', '%'}, evdev.KEY_6: {'6', '^'},
	evdev.KEY_7: {'7', '&'}, evdev.KEY_8: {'8', '*'},
	evdev.KEY_9: {'9', '('}, evdev.KEY_0: {'0', ')'},

	evdev.KEY_MINUS:      {'-', '_'},
	evdev.KEY_EQUAL:      {'=', '+'},
	evdev.KEY_LEFTBRACE:  {'[', '{'},
	evdev.KEY_RIGHTBRACE: {']', '}'},
	evdev.KEY_SEMICOLON:  {';', ':'},
	evdev.KEY_APOSTROPHE: {'\'', '"'},
	evdev.KEY_GRAVE:      {'`', '~'},
	evdev.KEY_BACKSLASH:  {'\\', '|'},
	evdev.KEY_COMMA:      {',', '<'},
	evdev.KEY_DOT:        {'.', '>'},
	evdev.KEY_SLASH:      {'/', '?'},
	evdev.KEY_SPACE:      {' ', ' '},

	evdev.KEY_ESC:       {keymap.KeyEscape, keymap.KeyEscape},
	evdev.KEY_BACKSPACE: {keymap.KeyBackSpace, keymap.KeyBackSpace},
	evdev.KEY_TAB:       {keymap.KeyTab, keymap.KeyLeftTab},
	evdev.KEY_ENTER:     {keymap.KeyReturn, keymap.KeyReturn},
	evdev.KEY_INSERT:    {keymap.KeyInsert, keymap.KeyInsert},
	evdev.KEY_DELETE:    {keymap.KeyDelete, keymap.KeyDelete},
	evdev.KEY_HOME:      {keymap.KeyHome, keymap.KeyHome},
	evdev.KEY_END:       {keymap.KeyEnd, keymap.KeyEnd},
	evdev.KEY_PAGEUP:    {keymap.KeyPageUp, keymap.KeyPageUp},
	evdev.KEY_PAGEDOWN:  {keymap.KeyPageDown, keymap.KeyPageDown},
	evdev.KEY_LEFT:      {keymap.KeyLeft, keymap.KeyLeft},
	evdev.KEY_RIGHT:     {keymap.KeyRight, keymap.KeyRight},
	evdev.KEY_UP:        {keymap.KeyUp, keymap.KeyUp},
	evdev.KEY_DOWN:      {keymap.KeyDown, keymap.KeyDown},
	evdev.KEY_SYSRQ:     {keymap.KeyPrint, keymap.KeyPrint},
	evdev.KEY_PAUSE:     {keymap.KeyPause, keymap.KeyPause},
	evdev.KEY_COMPOSE:   {keymap.KeyMenu, keymap.KeyMenu},

	evdev.KEY_LEFTSHIFT:  {keymap.KeyShiftL, keymap.KeyShiftL},
	evdev.KEY_RIGHTSHIFT: {keymap.KeyShiftR, keymap.KeyShiftR},
	evdev.KEY_LEFTCTRL:   {keymap.KeyControlL, keymap.KeyControlL},
	evdev.KEY_RIGHTCTRL:  {keymap.KeyControlR, keymap.KeyControlR},
	evdev.KEY_LEFTALT:    {keymap.KeyAltL, keymap.KeyAltL},
	evdev.KEY_RIGHTALT:   {keymap.KeyAltR, keymap.KeyAltR},
	evdev.KEY_LEFTMETA:   {keymap.KeySuperL, keymap.KeySuperL},
	evdev.KEY_RIGHTMETA:  {keymap.KeySuperR, keymap.KeySuperR},
	evdev.KEY_CAPSLOCK:   {keymap.KeyCapsLock, keymap.KeyCapsLock},
	evdev.KEY_NUMLOCK:    {keymap.KeyNumLock, keymap.KeyNumLock},
	evdev.KEY_SCROLLLOCK: {keymap.KeyScrollLock, keymap.KeyScrollLock},

	evdev.KEY_KP0:        {keymap.KeyKPInsert, keymap.KeyKP0},
	evdev.KEY_KP1:        {keymap.KeyKPEnd, keymap.KeyKP1},
	evdev.KEY_KP2:        {keymap.KeyKPDown, keymap.KeyKP2},
	evdev.KEY_KP3:        {keymap.KeyKPPageDown, keymap.KeyKP3},
	evdev.KEY_KP4:        {keymap.KeyKPLeft, keymap.KeyKP4},
	evdev.KEY_KP5:        {keymap.KeyKPBegin, keymap.KeyKP5},
	evdev.KEY_KP6:        {keymap.KeyKPRight, keymap.KeyKP6},
	evdev.KEY_KP7:        {keymap.KeyKPHome, keymap.KeyKP7},
	evdev.KEY_KP8:        {keymap.KeyKPUp, keymap.KeyKP8},
	evdev.KEY_KP9:        {keymap.KeyKPPageUp, keymap.KeyKP9},
	evdev.KEY_KPDOT:      {keymap.KeyKPDelete, keymap.KeyKPDecimal},
	evdev.KEY_KPENTER:    {keymap.KeyKPEnter, keymap.KeyKPEnter},
	evdev.KEY_KPPLUS:     {keymap.KeyKPAdd, keymap.KeyKPAdd},
	evdev.KEY_KPMINUS:    {keymap.KeyKPSubtract, keymap.KeyKPSubtract},
	evdev.KEY_KPASTERISK: {keymap.KeyKPMultiply, keymap.KeyKPMultiply},
	evdev.KEY_KPSLASH:    {keymap.KeyKPDivide, keymap.KeyKPDivide},

	evdev.KEY_MUTE:         {keymap.KeyAudioMute, keymap.KeyAudioMute},
	evdev.KEY_VOLUMEDOWN:   {keymap.KeyAudioDown, keymap.KeyAudioDown},
	evdev.KEY_VOLUMEUP:     {keymap.KeyAudioUp, keymap.KeyAudioUp},
	evdev.KEY_PLAYPAUSE:    {keymap.KeyAudioPlay, keymap.KeyAudioPlay},
	evdev.KEY_STOPCD:       {keymap.KeyAudioStop, keymap.KeyAudioStop},
	evdev.KEY_NEXTSONG:     {keymap.KeyAudioNext, keymap.KeyAudioNext},
	evdev.KEY_PREVIOUSSONG: {keymap.KeyAudioPrev, keymap.KeyAudioPrev},
}

var usFunctionKeys = [...]evdev.EvCode{
	evdev.KEY_F1, evdev.KEY_F2, evdev.KEY_F3, evdev.KEY_F4,
	evdev.KEY_F5, evdev.KEY_F6, evdev.KEY_F7, evdev.KEY_F8,
	evdev.KEY_F9, evdev.KEY_F10, evdev.KEY_F11, evdev.KEY_F12,
}

var usModifiers = []struct {
	mask  keymap.KeyModifierMask
	codes []evdev.EvCode
}{
	{keymap.KeyModifierShift, []evdev.EvCode{evdev.KEY_LEFTSHIFT, evdev.KEY_RIGHTSHIFT}},
	{keymap.KeyModifierControl, []evdev.EvCode{evdev.KEY_LEFTCTRL, evdev.KEY_RIGHTCTRL}},
	{keymap.KeyModifierAlt, []evdev.EvCode{evdev.KEY_LEFTALT, evdev.KEY_RIGHTALT}},
	{keymap.KeyModifierSuper, []evdev.EvCode{evdev.KEY_LEFTMETA, evdev.KEY_RIGHTMETA}},
	{keymap.KeyModifierCapsLock, []evdev.EvCode{evdev.KEY_CAPSLOCK}},
	{keymap.KeyModifierNumLock, []evdev.EvCode{evdev.KEY_NUMLOCK}},
	{keymap.KeyModifierScrollLock, []evdev.EvCode{evdev.KEY_SCROLLLOCK}},
}

// usLayout fills m with usKeys.
func usLayout(m *keymap.KeyMap) {
	for code, key := range usKeys {
		button := ButtonForCode(code)
		sensitive := key.plain != key.shift
		m.AddKey(0, key.plain, keymap.LevelPlain, button, sensitive, false)
		m.AddKey(0, key.shift, keymap.LevelShift, button, sensitive, false)
	}
	for i, code := range usFunctionKeys {
		id := keymap.FunctionKey(i + 1)
		m.AddKey(0, id, keymap.LevelPlain, ButtonForCode(code), false, false)
		m.AddKey(0, id, keymap.LevelShift, ButtonForCode(code), false, false)
	}
	for _, mod := range usModifiers {
		for _, code := range mod.codes {
			m.AddModifier(mod.mask, ButtonForCode(code))
		}
	}
}
