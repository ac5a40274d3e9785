package platform

import (
	"os"
	"slices"

	evdev "github.com/holoplot/go-evdev"
	"github.com/jezek/xgb"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/TKMAX777/synkey/keymap"
	"github.com/TKMAX777/synkey/logging"
)

// VirtualKeyboardName is the name of the uinput device, which is never
// opened as a physical keyboard.
const VirtualKeyboardName = "synkey virtual keyboard"

var ledModifiers = map[evdev.EvCode]keymap.KeyModifierMask{
	evdev.LED_CAPSL:   keymap.KeyModifierCapsLock,
	evdev.LED_NUML:    keymap.KeyModifierNumLock,
	evdev.LED_SCROLLL: keymap.KeyModifierScrollLock,
}

// ErrReadOnly is returned by Evdev.FakeKeyEvent.
var ErrReadOnly = errors.New("evdev keyboards are read only")

// Layout fills a key map.
type Layout func(m *keymap.KeyMap) error

// XLayout reads the layout of the X server on X.
func XLayout(X *xgb.Conn) Layout {
	return func(m *keymap.KeyMap) error {
		l, err := queryXLayout(X)
		if err != nil {
			return err
		}
		l.fill(m)
		return nil
	}
}

// USLayout is the built-in layout for sessions without an X server.
func USLayout(m *keymap.KeyMap) error {
	usLayout(m)
	return nil
}

// Evdev reads key and LED state from the physical keyboards. Buttons are
// evdev codes + 8, the X keycodes of the same keys. On its own it is a
// platform for a capturing KeyState; Uinput adds injection.
type Evdev struct {
	devices   []*evdev.InputDevice
	layout    Layout
	modifiers map[keymap.KeyButton]keymap.KeyModifierMask
	log       *logrus.Entry
}

// OpenEvdev opens paths, or every keyboard when paths is empty.
func OpenEvdev(paths []string, layout Layout) (*Evdev, error) {
	if layout == nil {
		layout = USLayout
	}
	devices, err := openKeyboards(paths)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, errors.New("no keyboard found in /dev/input")
	}
	return &Evdev{
		devices:   devices,
		layout:    layout,
		modifiers: make(map[keymap.KeyButton]keymap.KeyModifierMask),
		log:       logging.For("evdev"),
	}, nil
}

func openKeyboards(paths []string) ([]*evdev.InputDevice, error) {
	if len(paths) == 0 {
		found, err := evdev.ListDevicePaths()
		if err != nil {
			return nil, errors.Wrap(err, "list input devices")
		}
		for _, p := range found {
			if p.Name == VirtualKeyboardName {
				continue
			}
			paths = append(paths, p.Path)
		}
	}

	var devices []*evdev.InputDevice
	for _, path := range paths {
		dev, err := evdev.OpenWithFlags(path, os.O_RDONLY)
		if err != nil {
			logging.For("evdev").WithError(err).WithField("path", path).Debug("skipping input device")
			continue
		}
		if !isKeyboard(dev) {
			dev.Close()
			continue
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

func isKeyboard(dev *evdev.InputDevice) bool {
	if !slices.Contains(dev.CapableTypes(), evdev.EV_KEY) {
		return false
	}
	return slices.Contains(dev.CapableEvents(evdev.EV_KEY), evdev.KEY_A)
}

// Devices returns the open keyboards.
func (e *Evdev) Devices() []*evdev.InputDevice {
	return e.devices
}

func (e *Evdev) UpdateKeys(m *keymap.KeyMap) error {
	err := e.layout(m)
	clear(e.modifiers)
	for i := 0; i < keymap.NumModifiers; i++ {
		mask := keymap.ModifierMaskForIndex(i)
		for _, b := range m.ModifierButtons(mask) {
			e.modifiers[b] = mask
		}
	}
	return err
}

func (e *Evdev) FakeKeyEvent(button keymap.KeyButton, press, isAutoRepeat bool) error {
	return ErrReadOnly
}

// state merges one kind of state over every keyboard.
func (e *Evdev) state(t evdev.EvType) map[evdev.EvCode]bool {
	merged := make(map[evdev.EvCode]bool)
	for _, dev := range e.devices {
		state, err := dev.State(t)
		if err != nil {
			e.log.WithError(err).WithField("path", dev.Path()).Debug("reading device state failed")
			continue
		}
		for code, on := range state {
			if on {
				merged[code] = true
			}
		}
	}
	return merged
}

func (e *Evdev) PollActiveModifiers() keymap.KeyModifierMask {
	var mask keymap.KeyModifierMask
	for code := range e.state(evdev.EV_KEY) {
		if m := e.modifiers[ButtonForCode(code)]; !keymap.IsToggle(m) {
			mask |= m
		}
	}
	for code := range e.state(evdev.EV_LED) {
		mask |= ledModifiers[code]
	}
	return mask
}

// PollActiveGroup is 0: both layout sources have a single group.
func (e *Evdev) PollActiveGroup() int {
	return 0
}

func (e *Evdev) PollPressedKeys() []keymap.KeyButton {
	var pressed []keymap.KeyButton
	for code := range e.state(evdev.EV_KEY) {
		if b := ButtonForCode(code); b < keymap.NumButtons {
			pressed = append(pressed, b)
		}
	}
	slices.Sort(pressed)
	return pressed
}

func (e *Evdev) FakeCtrlAltDel() bool {
	return false
}

// Close closes the keyboards.
func (e *Evdev) Close() error {
	var first error
	for _, dev := range e.devices {
		if err := dev.Close(); err != nil && first == nil {
			first = err
		}
	}
	e.devices = nil
	return first
}
