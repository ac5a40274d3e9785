package keymap

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKey(t *testing.T) {
	assert.Equal(t, "Control+Alt+Delete", FormatKey(KeyDelete, KeyModifierControl|KeyModifierAlt))
	assert.Equal(t, "Shift+a", FormatKey('a', KeyModifierShift))
	assert.Equal(t, "F8", FormatKey(FunctionKey(8), 0))
	assert.Equal(t, "\\u00e9", FormatKey(0x00E9, 0))
	assert.Equal(t, "Space", FormatKey(' ', 0))
}

func TestParseKeyCombo(t *testing.T) {
	tests := []struct {
		in   string
		id   KeyID
		mask KeyModifierMask
	}{
		{"F8", FunctionKey(8), 0},
		{"Control+Alt+Delete", KeyDelete, KeyModifierControl | KeyModifierAlt},
		{"Shift + Tab", KeyTab, KeyModifierShift},
		{"Control++", '+', KeyModifierControl},
		{"AltGr+\\u00e9", 0x00E9, KeyModifierAltGr},
		{"KP_7", KeyKP7, 0},
		{"x", 'x', 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, mask, err := ParseKeyCombo(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.mask, mask)
		})
	}
}

func TestParseKeyComboErrors(t *testing.T) {
	_, _, err := ParseKeyCombo("Shift+Shift+a")
	assert.True(t, errors.Is(err, ErrBadModifierList))

	_, _, err = ParseKeyCombo("Control+NoSuchKey")
	assert.True(t, errors.Is(err, ErrUnknownKey))

	_, _, err = ParseKeyCombo("Control++Alt")
	assert.Error(t, err)
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, id := range []KeyID{KeyEscape, KeyAudioMute, KeyLeftTab, FunctionKey(35), 'Z', 0x20AC} {
		for _, mask := range []KeyModifierMask{0, KeyModifierShift, KeyModifierSuper | KeyModifierMeta} {
			gotID, gotMask, err := ParseKeyCombo(FormatKey(id, mask))
			require.NoError(t, err)
			assert.Equal(t, id, gotID)
			assert.Equal(t, mask, gotMask)
		}
	}
}

func TestKeySymConversion(t *testing.T) {
	tests := []struct {
		name   string
		keysym uint32
		id     KeyID
	}{
		{"ascii", 0x0061, 'a'},
		{"latin1", 0x00e9, 0x00E9},
		{"return", 0xff0d, KeyReturn},
		{"keypad", 0xffb7, KeyKP7},
		{"shift", 0xffe1, KeyShiftL},
		{"dead acute", 0xfe51, KeyDeadAcute},
		{"left tab", 0xfe20, KeyLeftTab},
		{"level3 shift", 0xfe03, KeyAltGr},
		{"latin2", 0x01a1, 0x0104},
		{"euro", 0x20ac, 0x20AC},
		{"unicode", 0x01004e2d, 0x4E2D},
		{"mute", 0x1008ff12, KeyAudioMute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, KeySymToKeyID(tt.keysym))
		})
	}

	for _, id := range []KeyID{'a', 0x00E9, KeyReturn, KeyKP7, KeyDeadAcute, KeyLeftTab, 0x0104, 0x4E2D, KeyAudioMute} {
		assert.Equal(t, id, KeySymToKeyID(KeyIDToKeySym(id)), "%s", FormatKey(id, 0))
	}
}

func TestCase(t *testing.T) {
	assert.Equal(t, KeyID('a'), ToLower('A'))
	assert.Equal(t, KeyID(0x00C9), ToUpper(0x00E9))
	assert.Equal(t, KeyID(0x00F7), ToUpper(0x00F7), "division sign has no case")
	assert.True(t, IsLetter('q'))
	assert.False(t, IsLetter('1'))
}

func TestVKToKeyID(t *testing.T) {
	id, ok := VKToKeyID(VK_NUMPAD0 + 3)
	require.True(t, ok)
	assert.Equal(t, KeyKP3, id)

	id, ok = VKToKeyID(VK_F1 + 11)
	require.True(t, ok)
	assert.Equal(t, FunctionKey(12), id)

	_, ok = VKToKeyID('A')
	assert.False(t, ok)
}
