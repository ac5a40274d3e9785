package keystate

import (
	"github.com/sirupsen/logrus"

	"github.com/TKMAX777/synkey/keymap"
)

// play injects keys in order. A run of repeat keystrokes is played count
// times as a block.
func (k *KeyState) play(keys keymap.Keystrokes, count int) {
	for i := 0; i < len(keys); {
		if !keys[i].Repeat {
			k.fake(keys[i])
			i++
			continue
		}
		j := i
		for j < len(keys) && keys[j].Repeat {
			j++
		}
		for n := 0; n < count; n++ {
			for _, ks := range keys[i:j] {
				k.fake(ks)
			}
		}
		i = j
	}
}

// fake injects one keystroke and applies it to the shadow state. The
// hardware of a half-duplex toggle only knows "turn on" (press) and "turn
// off" (release), so a release is dropped and a press of a toggle that is
// on becomes a release.
func (k *KeyState) fake(ks keymap.Keystroke) {
	press := ks.Press
	if k.IsHalfDuplex(ks.Button) {
		if !ks.Press {
			return
		}
		press = !k.isToggled(ks.Button)
	}
	k.setKeyDown(ks.Button, ks.Press)

	k.log.WithFields(logrus.Fields{
		"button": ks.Button,
		"press":  press,
		"repeat": ks.Repeat,
	}).Trace("fake key")
	if err := k.platform.FakeKeyEvent(ks.Button, press, ks.Repeat); err != nil {
		k.log.WithError(err).WithField("button", ks.Button).Warn("injecting key failed")
	}
}

func (k *KeyState) isToggled(button keymap.KeyButton) bool {
	return k.keys[button&keymap.ButtonMask]&keyToggled != 0
}
