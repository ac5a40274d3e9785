package keymap

// X keysyms that need more than the 0xFFxx -> 0xEFxx shift.
const (
	xkISOLevel3Shift = 0xfe03
	xkISOLeftTab     = 0xfe20
	xkModeSwitch     = 0xff7e
	xkMultiKey       = 0xff20
	xkDeadGrave      = 0xfe50
	xkDeadOgonek     = 0xfe5c
	xkUnicodeOffset  = 0x01000000
)

// dead keysyms in keysym order (dead_grave .. dead_ogonek)
var deadKeySyms = [...]KeyID{
	KeyDeadGrave,
	KeyDeadAcute,
	KeyDeadCircumflex,
	KeyDeadTilde,
	KeyDeadMacron,
	KeyDeadBreve,
	KeyDeadAbovedot,
	KeyDeadDiaeresis,
	KeyDeadAbovering,
	KeyDeadDoubleacute,
	KeyDeadCaron,
	KeyDeadCedilla,
	KeyDeadOgonek,
}

// XF86 vendor keysyms
var xf86KeySyms = map[uint32]KeyID{
	0x1008ff02: KeyBrightnessUp,
	0x1008ff03: KeyBrightnessDown,
	0x1008ff11: KeyAudioDown,
	0x1008ff12: KeyAudioMute,
	0x1008ff13: KeyAudioUp,
	0x1008ff14: KeyAudioPlay,
	0x1008ff15: KeyAudioStop,
	0x1008ff16: KeyAudioPrev,
	0x1008ff17: KeyAudioNext,
	0x1008ff18: KeyWWWHome,
	0x1008ff19: KeyAppMail,
	0x1008ff1b: KeyWWWSearch,
	0x1008ff26: KeyWWWBack,
	0x1008ff27: KeyWWWForward,
	0x1008ff28: KeyWWWStop,
	0x1008ff29: KeyWWWRefresh,
	0x1008ff2c: KeyEject,
	0x1008ff2f: KeySleep,
	0x1008ff30: KeyWWWFavorites,
	0x1008ff32: KeyAppMedia,
	0x1008ff40: KeyAppUser1,
	0x1008ff41: KeyAppUser2,
}

var (
	ucs4ToKeySym map[KeyID]uint32
	keyIDToXF86  map[KeyID]uint32
)

func init() {
	ucs4ToKeySym = make(map[KeyID]uint32, len(keySymToUCS4))
	for ks, id := range keySymToUCS4 {
		// several legacy keysyms share a code point; keep the lowest
		if old, ok := ucs4ToKeySym[id]; !ok || ks < old {
			ucs4ToKeySym[id] = ks
		}
	}
	keyIDToXF86 = make(map[KeyID]uint32, len(xf86KeySyms))
	for ks, id := range xf86KeySyms {
		keyIDToXF86[id] = ks
	}
}

func isLatin1(v uint32) bool {
	return (v >= 0x20 && v <= 0x7e) || (v >= 0xa0 && v <= 0xff)
}

// KeySymToKeyID converts an X keysym to a KeyID. It returns KeyNone for
// keysyms that have no KeyID.
func KeySymToKeyID(ks uint32) KeyID {
	switch {
	case ks == 0:
		return KeyNone
	case isLatin1(ks):
		return KeyID(ks)
	case ks >= xkDeadGrave && ks <= xkDeadOgonek:
		return deadKeySyms[ks-xkDeadGrave]
	case ks == xkISOLevel3Shift, ks == xkModeSwitch:
		return KeyAltGr
	case ks == xkISOLeftTab:
		return KeyLeftTab
	case ks >= 0xff00 && ks <= 0xffff:
		return KeyID(ks - 0x1000)
	case ks >= xkUnicodeOffset && ks < xkUnicodeOffset+0x110000:
		return KeyID(ks - xkUnicodeOffset)
	}
	if id, ok := keySymToUCS4[ks]; ok {
		return id
	}
	if id, ok := xf86KeySyms[ks]; ok {
		return id
	}
	return KeyNone
}

// KeyIDToKeySym is the inverse of KeySymToKeyID. Characters without a legacy
// keysym use the Unicode keysym range.
func KeyIDToKeySym(id KeyID) uint32 {
	v := uint32(id)
	switch {
	case id == KeyNone:
		return 0
	case isLatin1(v):
		return v
	case IsDeadKey(id):
		for i, d := range deadKeySyms {
			if d == id {
				return xkDeadGrave + uint32(i)
			}
		}
		return xkUnicodeOffset + v
	case id == KeyAltGr:
		return xkModeSwitch
	case id == KeyLeftTab:
		return xkISOLeftTab
	case v&0xff00 == 0xef00:
		return v + 0x1000
	case IsMediaKey(id):
		return keyIDToXF86[id]
	}
	if ks, ok := ucs4ToKeySym[id]; ok {
		return ks
	}
	return xkUnicodeOffset + v
}

// ToLower and ToUpper flip the case of Latin letters, including the
// accented Latin-1 ones. Other ids are returned unchanged.
func ToLower(id KeyID) KeyID {
	switch {
	case id >= 'A' && id <= 'Z':
		return id + 0x20
	case id >= 0xc0 && id <= 0xde && id != 0xd7:
		return id + 0x20
	}
	return id
}

func ToUpper(id KeyID) KeyID {
	switch {
	case id >= 'a' && id <= 'z':
		return id - 0x20
	case id >= 0xe0 && id <= 0xfe && id != 0xf7:
		return id - 0x20
	}
	return id
}

// IsLetter reports whether id has distinct upper and lower case forms.
func IsLetter(id KeyID) bool {
	return ToLower(id) != ToUpper(id)
}
