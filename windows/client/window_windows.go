package client

import (
	"context"
	"io"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"github.com/natefinch/npipe"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/TKMAX777/synkey/config"
	"github.com/TKMAX777/synkey/logging"
	"github.com/TKMAX777/synkey/screen"
	"github.com/TKMAX777/synkey/windows/platform"
)

var log = logging.For("client")

var (
	imm32                   = windows.NewLazySystemDLL("imm32.dll")
	procImmAssociateContext = imm32.NewProc("ImmAssociateContext")

	gdi32                = windows.NewLazySystemDLL("gdi32.dll")
	procCreateSolidBrush = gdi32.NewProc("CreateSolidBrush")
)

var (
	WindowSize = int32(200)
	BluePixel  = uint32(0xFF0000) // COLORREF is BGR
	StayOnTop  = true
)

const className = "SynkeyCapture"

// StartClient captures while the capture window has the focus, until it
// is closed or ctx is done. Events go to the configured named pipe, or to
// out without one.
func StartClient(ctx context.Context, cfg *config.Config, configPath string, out io.Writer) error {
	if cfg.Transport.Pipe != "" {
		conn, err := npipe.Dial(cfg.Transport.Pipe)
		if err != nil {
			return errors.Wrapf(err, "connect to %s", cfg.Transport.Pipe)
		}
		defer conn.Close()
		out = conn
	}

	p := platform.New()
	c, err := screen.NewCapture(p, cfg, out)
	if err != nil {
		return err
	}
	c.OnRelease(func() {
		if c.Primary().Active() {
			c.Primary().Leave()
			log.Info("capture released, click the blue window or press the release key to resume")
			return
		}
		c.Enter()
	})

	return c.Run(ctx, configPath, func(ctx context.Context) error {
		w := &captureWindow{ctx: ctx, c: c, p: p}
		return w.run()
	})
}

type captureWindow struct {
	ctx  context.Context
	c    *screen.Capture
	p    *platform.Windows
	hwnd win.HWND
}

// run creates the window and pumps its messages. A window belongs to the
// thread that created it, so all of this stays on one OS thread.
func (w *captureWindow) run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	instance := win.GetModuleHandle(nil)
	brush, _, _ := procCreateSolidBrush.Call(uintptr(BluePixel))
	wc := win.WNDCLASSEX{
		LpfnWndProc:   syscall.NewCallback(w.proc),
		HInstance:     instance,
		HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
		HbrBackground: win.HBRUSH(brush),
		LpszClassName: syscall.StringToUTF16Ptr(className),
	}
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	if win.RegisterClassEx(&wc) == 0 {
		return errors.New("RegisterClassEx failed")
	}

	var exStyle uint32
	if StayOnTop {
		exStyle = win.WS_EX_TOPMOST
	}
	w.hwnd = win.CreateWindowEx(exStyle,
		syscall.StringToUTF16Ptr(className), syscall.StringToUTF16Ptr("Key Capture"),
		win.WS_OVERLAPPEDWINDOW,
		win.CW_USEDEFAULT, win.CW_USEDEFAULT, WindowSize, WindowSize,
		0, 0, instance, nil)
	if w.hwnd == 0 {
		return errors.New("CreateWindowEx failed")
	}
	stop := context.AfterFunc(w.ctx, func() {
		win.PostMessage(w.hwnd, win.WM_CLOSE, 0, 0)
	})
	defer stop()

	win.ShowWindow(w.hwnd, win.SW_SHOW)
	win.UpdateWindow(w.hwnd)

	var msg win.MSG
	for win.GetMessage(&msg, 0, 0, 0) > 0 {
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
	log.Info("capture window closed")
	return nil
}

func (w *captureWindow) proc(hwnd win.HWND, uMsg uint32, wParam uintptr, lParam uintptr) uintptr {
	switch uMsg {
	case win.WM_CREATE:
		if err := registerRawInput(hwnd); err != nil {
			log.WithError(err).Error("raw input unavailable")
			return ^uintptr(0)
		}
		procImmAssociateContext.Call(uintptr(hwnd), 0) //avoid invoking IME
		return 0

	case win.WM_SETFOCUS, win.WM_LBUTTONDOWN:
		w.c.Post(w.ctx, w.c.Enter)
		return 0

	case win.WM_KILLFOCUS:
		// keys held now would never be released on the host
		w.c.Post(w.ctx, w.c.Primary().Leave)
		return 0

	case win.WM_INPUT:
		w.rawInput(lParam)

	case win.WM_DESTROY:
		win.PostQuitMessage(0)
		return 0
	}
	return win.DefWindowProc(hwnd, uMsg, wParam, lParam)
}

func (w *captureWindow) rawInput(lParam uintptr) {
	var size uint32
	win.GetRawInputData(
		win.HRAWINPUT(lParam),
		win.RID_INPUT,
		nil,
		&size,
		uint32(unsafe.Sizeof(win.RAWINPUTHEADER{})),
	)
	if size == 0 {
		return
	}

	buf := make([]byte, size)
	if win.GetRawInputData(
		win.HRAWINPUT(lParam),
		win.RID_INPUT,
		unsafe.Pointer(&buf[0]),
		&size,
		uint32(unsafe.Sizeof(win.RAWINPUTHEADER{})),
	) != size {
		return
	}

	hdr := (*win.RAWINPUTHEADER)(unsafe.Pointer(&buf[0]))
	if hdr.DwType != win.RIM_TYPEKEYBOARD {
		return
	}
	k := (*win.RAWINPUTKEYBOARD)(unsafe.Pointer(&buf[0])).Data
	// 0xFF is the fake prefix of Pause and some multimedia keys
	if k.MakeCode == 0 || k.VKey == 0xFF {
		return
	}

	button, down := platform.ButtonForRawKey(k.MakeCode, k.Flags)
	// the modifier state belongs to this thread's input queue
	mask := w.p.PollActiveModifiers()
	w.c.Post(w.ctx, func() { w.c.Key(button, down, false, mask) })
}

func registerRawInput(hwnd win.HWND) error {
	rids := []win.RAWINPUTDEVICE{
		{
			UsUsagePage: 0x01, // Generic Desktop
			UsUsage:     0x06, // Keyboard
			// only while the window has the focus
			DwFlags:    0,
			HwndTarget: hwnd,
		},
	}
	if !win.RegisterRawInputDevices(
		&rids[0],
		uint32(len(rids)),
		uint32(unsafe.Sizeof(rids[0])),
	) {
		return errors.New("RegisterRawInputDevices failed")
	}
	return nil
}
