package platform

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/TKMAX777/synkey/keymap"
	"github.com/TKMAX777/synkey/logging"
)

// X11 injects keys through the XTEST extension. Buttons are X keycodes.
type X11 struct {
	X    *xgb.Conn
	root xproto.Window
	bits [8]keymap.KeyModifierMask
	log  *logrus.Entry
}

func NewX11(X *xgb.Conn) (*X11, error) {
	if err := xtest.Init(X); err != nil {
		return nil, errors.Wrap(err, "XTEST extension")
	}
	return &X11{
		X:    X,
		root: xproto.Setup(X).DefaultScreen(X).Root,
		log:  logging.For("x11"),
	}, nil
}

func (x *X11) UpdateKeys(m *keymap.KeyMap) error {
	layout, err := queryXLayout(x.X)
	if err != nil {
		return err
	}
	mods := layout.fill(m)
	x.bits = mods.bits
	x.log.WithFields(logrus.Fields{
		"keycodes": layout.numKeycodes(),
		"level3":   mods.level3,
	}).Debug("read keyboard mapping")
	return nil
}

func (x *X11) FakeKeyEvent(button keymap.KeyButton, press, isAutoRepeat bool) error {
	typ := byte(xproto.KeyRelease)
	if press {
		typ = xproto.KeyPress
	}
	if err := xtest.FakeInputChecked(x.X, typ, byte(button), 0, 0, 0, 0, 0).Check(); err != nil {
		return errors.Wrapf(err, "fake keycode %d", button)
	}
	return nil
}

func (x *X11) PollActiveModifiers() keymap.KeyModifierMask {
	reply, err := xproto.QueryPointer(x.X, x.root).Reply()
	if err != nil {
		x.log.WithError(err).Warn("query pointer failed")
		return 0
	}
	return maskFromXState(reply.Mask, x.bits)
}

func maskFromXState(state uint16, bits [8]keymap.KeyModifierMask) keymap.KeyModifierMask {
	var mask keymap.KeyModifierMask
	for i, m := range bits {
		if state&(1<<i) != 0 {
			mask |= m
		}
	}
	return mask
}

// PollActiveGroup is always 0: the core keyboard mapping has one group.
func (x *X11) PollActiveGroup() int {
	return 0
}

func (x *X11) PollPressedKeys() []keymap.KeyButton {
	reply, err := xproto.QueryKeymap(x.X).Reply()
	if err != nil {
		x.log.WithError(err).Warn("query keymap failed")
		return nil
	}
	return keysFromBitmap(reply.Keys)
}

// keysFromBitmap lists the set bits of an X key vector.
func keysFromBitmap(keys []byte) []keymap.KeyButton {
	var pressed []keymap.KeyButton
	for i, b := range keys {
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) != 0 {
				pressed = append(pressed, keymap.KeyButton(i*8+bit))
			}
		}
	}
	return pressed
}

// FakeCtrlAltDel has no special path on X.
func (x *X11) FakeCtrlAltDel() bool {
	return false
}

// MaskFromState converts the state field of an X input event.
func (x *X11) MaskFromState(state uint16) keymap.KeyModifierMask {
	return maskFromXState(state, x.bits)
}
