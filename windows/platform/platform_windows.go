package platform

import (
	"runtime"
	"slices"
	"sync/atomic"
	"unsafe"

	"github.com/lxn/win"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"

	"github.com/TKMAX777/synkey/keymap"
	"github.com/TKMAX777/synkey/logging"
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procToUnicodeEx           = user32.NewProc("ToUnicodeEx")
	procMapVirtualKeyExW      = user32.NewProc("MapVirtualKeyExW")
	procGetKeyboardLayout     = user32.NewProc("GetKeyboardLayout")
	procGetKeyboardLayoutList = user32.NewProc("GetKeyboardLayoutList")
	procGetAsyncKeyState      = user32.NewProc("GetAsyncKeyState")

	sas         = windows.NewLazySystemDLL("sas.dll")
	procSendSAS = sas.NewProc("SendSAS")
)

const (
	mapvkVKToVSCEx = 4
	// ToUnicodeEx leaves the keyboard state alone
	toUnicodeNoStateChange = 4
)

// VKs of each level's modifiers for ToUnicodeEx
var levelKeys = [keymap.NumLevels][]uint8{
	keymap.LevelPlain:           nil,
	keymap.LevelShift:           {keymap.VK_SHIFT},
	keymap.LevelModeSwitch:      {keymap.VK_CONTROL, keymap.VK_MENU},
	keymap.LevelShiftModeSwitch: {keymap.VK_SHIFT, keymap.VK_CONTROL, keymap.VK_MENU},
}

// Windows is the keyboard of the interactive desktop.
type Windows struct {
	log     *logrus.Entry
	layouts []uintptr
	// read by PollActiveModifiers on the capture window's thread
	altGr atomic.Bool
	// first virtual key seen for each button in the active layout
	vks map[keymap.KeyButton]uint8
}

func New() *Windows {
	return &Windows{
		log: logging.For("windows"),
		vks: make(map[keymap.KeyButton]uint8),
	}
}

func skipVK(vk int) bool {
	switch vk {
	case win.VK_LBUTTON, win.VK_RBUTTON, win.VK_CANCEL, win.VK_MBUTTON, win.VK_XBUTTON1, win.VK_XBUTTON2,
		keymap.VK_SHIFT, keymap.VK_CONTROL, keymap.VK_MENU:
		return true
	}
	return false
}

func keyboardLayouts() []uintptr {
	n, _, _ := procGetKeyboardLayoutList.Call(0, 0)
	if n == 0 {
		return nil
	}
	hkls := make([]uintptr, n)
	n, _, _ = procGetKeyboardLayoutList.Call(n, uintptr(unsafe.Pointer(&hkls[0])))
	return hkls[:n]
}

func activeLayout() uintptr {
	var tid uint32
	if hwnd := win.GetForegroundWindow(); hwnd != 0 {
		tid, _ = windows.GetWindowThreadProcessId(windows.HWND(hwnd), nil)
	}
	hkl, _, _ := procGetKeyboardLayout.Call(uintptr(tid))
	return hkl
}

func mapVirtualKey(vk int, hkl uintptr) uint32 {
	sc, _, _ := procMapVirtualKeyExW.Call(uintptr(vk), mapvkVKToVSCEx, hkl)
	return uint32(sc)
}

// toUnicode reports what vk types with the keys in down held. A dead key
// leaves itself pending in the layout, so it is flushed with a space.
func toUnicode(vk int, sc uint32, down []uint8, hkl uintptr) (rune, bool) {
	var state [256]byte
	for _, m := range down {
		state[m] = 0x80
	}
	var buf [8]uint16
	n, _, _ := procToUnicodeEx.Call(uintptr(vk), uintptr(sc),
		uintptr(unsafe.Pointer(&state[0])), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)),
		toUnicodeNoStateChange, hkl)
	ret := int32(n)

	if ret < 0 {
		accent := rune(buf[0])
		var empty [256]byte
		space := mapVirtualKey(keymap.VK_SPACE, hkl)
		for range 2 {
			r, _, _ := procToUnicodeEx.Call(keymap.VK_SPACE, uintptr(space),
				uintptr(unsafe.Pointer(&empty[0])), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)),
				toUnicodeNoStateChange, hkl)
			if int32(r) >= 0 {
				break
			}
		}
		return accent, true
	}
	if ret == 0 {
		return 0, false
	}
	runes := []rune(windows.UTF16ToString(buf[:ret]))
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], false
}

// readLayout walks every virtual key of hkl.
func readLayout(hkl uintptr) Layout {
	var l Layout
	for vk := 1; vk < 255; vk++ {
		if skipVK(vk) {
			continue
		}
		sc := mapVirtualKey(vk, hkl)
		if sc == 0 {
			continue
		}
		k := Key{VK: uint8(vk), Button: ButtonForScanCode(sc)}
		if _, special := keymap.VKToKeyID(k.VK); !special {
			for level, down := range levelKeys {
				k.Chars[level], k.Dead[level] = toUnicode(vk, sc, down, hkl)
			}
		}
		l.Keys = append(l.Keys, k)
	}
	return l
}

// UpdateKeys adds every installed layout, one group each, in the order
// Windows lists them.
func (w *Windows) UpdateKeys(m *keymap.KeyMap) error {
	w.layouts = keyboardLayouts()
	if len(w.layouts) == 0 {
		return errors.New("no keyboard layout installed")
	}
	active := activeLayout()
	clear(w.vks)
	for group, hkl := range w.layouts {
		l := readLayout(hkl)
		l.Fill(m, group)
		if hkl == active || (group == 0 && !slices.Contains(w.layouts, active)) {
			w.altGr.Store(l.HasAltGr())
			for _, k := range l.Keys {
				if _, ok := w.vks[k.Button]; !ok {
					w.vks[k.Button] = k.VK
				}
			}
		}
	}
	w.log.WithField("layouts", len(w.layouts)).Debug("read keyboard layouts")
	return nil
}

func (w *Windows) FakeKeyEvent(button keymap.KeyButton, press, isAutoRepeat bool) error {
	in := win.KEYBD_INPUT{Type: win.INPUT_KEYBOARD}
	in.Ki.WScan = uint16(button & 0xff)
	in.Ki.DwFlags = win.KEYEVENTF_SCANCODE
	if button&extendedButton != 0 || keymap.IsExtendedVK(w.vks[button]) {
		in.Ki.DwFlags |= win.KEYEVENTF_EXTENDEDKEY
	}
	if !press {
		in.Ki.DwFlags |= win.KEYEVENTF_KEYUP
	}
	if win.SendInput(1, unsafe.Pointer(&in), int32(unsafe.Sizeof(in))) != 1 {
		return errors.Errorf("SendInput refused button %#x", button)
	}
	return nil
}

func keyDown(vk int32) bool {
	return uint16(win.GetKeyState(vk))&0x8000 != 0
}

func toggled(vk int32) bool {
	return win.GetKeyState(vk)&1 != 0
}

func (w *Windows) PollActiveModifiers() keymap.KeyModifierMask {
	var mask keymap.KeyModifierMask
	if keyDown(keymap.VK_SHIFT) {
		mask |= keymap.KeyModifierShift
	}
	// AltGr reaches applications as Control+Alt
	altGr := w.altGr.Load() && keyDown(keymap.VK_RMENU)
	if altGr {
		mask |= keymap.KeyModifierModeSwitch
		if keyDown(keymap.VK_RCONTROL) {
			mask |= keymap.KeyModifierControl
		}
		if keyDown(keymap.VK_LMENU) {
			mask |= keymap.KeyModifierAlt
		}
	} else {
		if keyDown(keymap.VK_CONTROL) {
			mask |= keymap.KeyModifierControl
		}
		if keyDown(keymap.VK_MENU) {
			mask |= keymap.KeyModifierAlt
		}
	}
	if keyDown(keymap.VK_LWIN) || keyDown(keymap.VK_RWIN) {
		mask |= keymap.KeyModifierSuper
	}
	if toggled(keymap.VK_CAPITAL) {
		mask |= keymap.KeyModifierCapsLock
	}
	if toggled(keymap.VK_NUMLOCK) {
		mask |= keymap.KeyModifierNumLock
	}
	if toggled(keymap.VK_SCROLL) {
		mask |= keymap.KeyModifierScrollLock
	}
	return mask
}

// PollActiveGroup is the position of the foreground window's layout.
func (w *Windows) PollActiveGroup() int {
	if i := slices.Index(w.layouts, activeLayout()); i >= 0 {
		return i
	}
	return 0
}

func (w *Windows) PollPressedKeys() []keymap.KeyButton {
	var pressed []keymap.KeyButton
	for button, vk := range w.vks {
		state, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
		if uint16(state)&0x8000 != 0 {
			pressed = append(pressed, button)
		}
	}
	slices.Sort(pressed)
	return pressed
}

// FakeCtrlAltDel asks winlogon for the secure attention sequence, which
// only a service may do. Without sas.dll the keys are typed instead.
func (w *Windows) FakeCtrlAltDel() bool {
	if err := procSendSAS.Find(); err != nil {
		w.log.WithError(err).Debug("SendSAS unavailable")
		return false
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		// SendSAS checks the calling thread's desktop
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		procSendSAS.Call(0)
	}()
	<-done
	return true
}
