package platform

import (
	"github.com/bendahl/uinput"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/TKMAX777/synkey/keymap"
)

const uinputPath = "/dev/uinput"

// Uinput injects keys through a virtual kernel keyboard, which every
// compositor accepts. State is polled from the physical keyboards.
type Uinput struct {
	*Evdev
	kbd uinput.Keyboard
}

// NewUinput creates the virtual keyboard. devices are the evdev nodes whose
// state is polled; empty means every keyboard.
func NewUinput(devices []string, layout Layout) (*Uinput, error) {
	if err := unix.Access(uinputPath, unix.W_OK); err != nil {
		return nil, errors.Wrapf(err, "access %s", uinputPath)
	}
	// open the physical keyboards before ours shows up among them
	ev, err := OpenEvdev(devices, layout)
	if err != nil {
		return nil, err
	}
	kbd, err := uinput.CreateKeyboard(uinputPath, []byte(VirtualKeyboardName))
	if err != nil {
		ev.Close()
		return nil, errors.Wrap(err, "create virtual keyboard")
	}
	ev.log.WithField("keyboards", len(ev.devices)).Info("virtual keyboard ready")
	return &Uinput{Evdev: ev, kbd: kbd}, nil
}

// FakeKeyEvent sends one transition. The kernel sees a repeat as the
// release and press the key state plays for it.
func (u *Uinput) FakeKeyEvent(button keymap.KeyButton, press, isAutoRepeat bool) error {
	code := CodeForButton(button)
	if code <= 0 {
		return errors.Errorf("button %d has no evdev code", button)
	}
	var err error
	if press {
		err = u.kbd.KeyDown(code)
	} else {
		err = u.kbd.KeyUp(code)
	}
	return errors.Wrapf(err, "fake evdev code %d", code)
}

// Close removes the virtual keyboard.
func (u *Uinput) Close() error {
	u.Evdev.Close()
	return u.kbd.Close()
}
