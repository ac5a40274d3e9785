package keymap

// Windows virtual-key codes of keys that do not produce characters. The
// character keys come from the active layout instead.
const (
	VK_BACK                = 0x08
	VK_TAB                 = 0x09
	VK_CLEAR               = 0x0C
	VK_RETURN              = 0x0D
	VK_SHIFT               = 0x10
	VK_CONTROL             = 0x11
	VK_MENU                = 0x12
	VK_PAUSE               = 0x13
	VK_CAPITAL             = 0x14
	VK_KANA                = 0x15
	VK_KANJI               = 0x19
	VK_ESCAPE              = 0x1B
	VK_CONVERT             = 0x1C
	VK_SPACE               = 0x20
	VK_PRIOR               = 0x21
	VK_NEXT                = 0x22
	VK_END                 = 0x23
	VK_HOME                = 0x24
	VK_LEFT                = 0x25
	VK_UP                  = 0x26
	VK_RIGHT               = 0x27
	VK_DOWN                = 0x28
	VK_SELECT              = 0x29
	VK_PRINT               = 0x2A
	VK_EXECUTE             = 0x2B
	VK_SNAPSHOT            = 0x2C
	VK_INSERT              = 0x2D
	VK_DELETE              = 0x2E
	VK_HELP                = 0x2F
	VK_LWIN                = 0x5B
	VK_RWIN                = 0x5C
	VK_APPS                = 0x5D
	VK_SLEEP               = 0x5F
	VK_NUMPAD0             = 0x60
	VK_MULTIPLY            = 0x6A
	VK_ADD                 = 0x6B
	VK_SEPARATOR           = 0x6C
	VK_SUBTRACT            = 0x6D
	VK_DECIMAL             = 0x6E
	VK_DIVIDE              = 0x6F
	VK_F1                  = 0x70
	VK_F24                 = 0x87
	VK_NUMLOCK             = 0x90
	VK_SCROLL              = 0x91
	VK_LSHIFT              = 0xA0
	VK_RSHIFT              = 0xA1
	VK_LCONTROL            = 0xA2
	VK_RCONTROL            = 0xA3
	VK_LMENU               = 0xA4
	VK_RMENU               = 0xA5
	VK_BROWSER_BACK        = 0xA6
	VK_BROWSER_FORWARD     = 0xA7
	VK_BROWSER_REFRESH     = 0xA8
	VK_BROWSER_STOP        = 0xA9
	VK_BROWSER_SEARCH      = 0xAA
	VK_BROWSER_FAVORITES   = 0xAB
	VK_BROWSER_HOME        = 0xAC
	VK_VOLUME_MUTE         = 0xAD
	VK_VOLUME_DOWN         = 0xAE
	VK_VOLUME_UP           = 0xAF
	VK_MEDIA_NEXT_TRACK    = 0xB0
	VK_MEDIA_PREV_TRACK    = 0xB1
	VK_MEDIA_STOP          = 0xB2
	VK_MEDIA_PLAY_PAUSE    = 0xB3
	VK_LAUNCH_MAIL         = 0xB4
	VK_LAUNCH_MEDIA_SELECT = 0xB5
	VK_LAUNCH_APP1         = 0xB6
	VK_LAUNCH_APP2         = 0xB7
)

// WindowsKeys maps virtual keys to KeyIDs. Character keys are absent.
var WindowsKeys = map[uint8]KeyID{
	VK_BACK:     KeyBackSpace,
	VK_TAB:      KeyTab,
	VK_CLEAR:    KeyClear,
	VK_RETURN:   KeyReturn,
	VK_PAUSE:    KeyPause,
	VK_CAPITAL:  KeyCapsLock,
	VK_KANA:     KeyKana,
	VK_KANJI:    KeyZenkaku,
	VK_ESCAPE:   KeyEscape,
	VK_CONVERT:  KeyHenkan,
	VK_PRIOR:    KeyPageUp,
	VK_NEXT:     KeyPageDown,
	VK_END:      KeyEnd,
	VK_HOME:     KeyHome,
	VK_LEFT:     KeyLeft,
	VK_UP:       KeyUp,
	VK_RIGHT:    KeyRight,
	VK_DOWN:     KeyDown,
	VK_SELECT:   KeySelect,
	VK_PRINT:    KeyPrint,
	VK_EXECUTE:  KeyExecute,
	VK_SNAPSHOT: KeyPrint,
	VK_INSERT:   KeyInsert,
	VK_DELETE:   KeyDelete,
	VK_HELP:     KeyHelp,
	VK_LWIN:     KeySuperL,
	VK_RWIN:     KeySuperR,
	VK_APPS:     KeyMenu,
	VK_SLEEP:    KeySleep,

	VK_MULTIPLY:  KeyKPMultiply,
	VK_ADD:       KeyKPAdd,
	VK_SEPARATOR: KeyKPSeparator,
	VK_SUBTRACT:  KeyKPSubtract,
	VK_DECIMAL:   KeyKPDecimal,
	VK_DIVIDE:    KeyKPDivide,

	VK_NUMLOCK:  KeyNumLock,
	VK_SCROLL:   KeyScrollLock,
	VK_LSHIFT:   KeyShiftL,
	VK_RSHIFT:   KeyShiftR,
	VK_LCONTROL: KeyControlL,
	VK_RCONTROL: KeyControlR,
	VK_LMENU:    KeyAltL,
	VK_RMENU:    KeyAltR,

	VK_BROWSER_BACK:        KeyWWWBack,
	VK_BROWSER_FORWARD:     KeyWWWForward,
	VK_BROWSER_REFRESH:     KeyWWWRefresh,
	VK_BROWSER_STOP:        KeyWWWStop,
	VK_BROWSER_SEARCH:      KeyWWWSearch,
	VK_BROWSER_FAVORITES:   KeyWWWFavorites,
	VK_BROWSER_HOME:        KeyWWWHome,
	VK_VOLUME_MUTE:         KeyAudioMute,
	VK_VOLUME_DOWN:         KeyAudioDown,
	VK_VOLUME_UP:           KeyAudioUp,
	VK_MEDIA_NEXT_TRACK:    KeyAudioNext,
	VK_MEDIA_PREV_TRACK:    KeyAudioPrev,
	VK_MEDIA_STOP:          KeyAudioStop,
	VK_MEDIA_PLAY_PAUSE:    KeyAudioPlay,
	VK_LAUNCH_MAIL:         KeyAppMail,
	VK_LAUNCH_MEDIA_SELECT: KeyAppMedia,
	VK_LAUNCH_APP1:         KeyAppUser1,
	VK_LAUNCH_APP2:         KeyAppUser2,
}

// keys that need KEYEVENTF_EXTENDEDKEY when injected
var extendedVKs = map[uint8]bool{
	VK_PRIOR: true, VK_NEXT: true, VK_END: true, VK_HOME: true,
	VK_LEFT: true, VK_UP: true, VK_RIGHT: true, VK_DOWN: true,
	VK_INSERT: true, VK_DELETE: true, VK_SNAPSHOT: true,
	VK_LWIN: true, VK_RWIN: true, VK_APPS: true,
	VK_DIVIDE: true, VK_NUMLOCK: true,
	VK_RCONTROL: true, VK_RMENU: true,
	VK_BROWSER_BACK: true, VK_BROWSER_FORWARD: true, VK_BROWSER_REFRESH: true,
	VK_BROWSER_STOP: true, VK_BROWSER_SEARCH: true, VK_BROWSER_FAVORITES: true,
	VK_BROWSER_HOME: true, VK_VOLUME_MUTE: true, VK_VOLUME_DOWN: true,
	VK_VOLUME_UP: true, VK_MEDIA_NEXT_TRACK: true, VK_MEDIA_PREV_TRACK: true,
	VK_MEDIA_STOP: true, VK_MEDIA_PLAY_PAUSE: true, VK_LAUNCH_MAIL: true,
	VK_LAUNCH_MEDIA_SELECT: true, VK_LAUNCH_APP1: true, VK_LAUNCH_APP2: true,
}

func init() {
	for i := 0; i <= 9; i++ {
		WindowsKeys[uint8(VK_NUMPAD0+i)] = KeyKP0 + KeyID(i)
	}
	for i := 0; i <= VK_F24-VK_F1; i++ {
		WindowsKeys[uint8(VK_F1+i)] = FunctionKey(i + 1)
	}
}

// IsExtendedVK reports whether vk is an extended key.
func IsExtendedVK(vk uint8) bool {
	return extendedVKs[vk]
}

// VKToKeyID returns the KeyID of a layout-independent virtual key.
func VKToKeyID(vk uint8) (KeyID, bool) {
	id, ok := WindowsKeys[vk]
	return id, ok
}
