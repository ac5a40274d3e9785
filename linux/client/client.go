// Package client captures the local keyboard and writes what is typed to
// the host as key events.
//
// Under X the keyboard is grabbed from a small capture window. XWayland
// cannot grab the keyboard of a Wayland session, so there the physical
// keyboards are read through evdev instead.
package client

import (
	"context"
	"io"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"

	"github.com/TKMAX777/synkey/config"
	"github.com/TKMAX777/synkey/keymap"
	"github.com/TKMAX777/synkey/linux/platform"
	"github.com/TKMAX777/synkey/logging"
	"github.com/TKMAX777/synkey/screen"
)

var log = logging.For("client")

var (
	WindowSize = uint16(200)
	BluePixel  = uint32(0x0000FF)
	StayOnTop  = true
)

// StartClient captures until the capture window is closed or ctx is done,
// writing events to out. configPath, when set, is watched for a new release
// key or half-duplex list.
func StartClient(ctx context.Context, cfg *config.Config, configPath string, out io.Writer) error {
	switch backend := cfg.Keyboard.Backend; backend {
	case "", config.BackendAuto:
		if platform.WaylandSession() {
			return captureEvdev(ctx, cfg, configPath, out)
		}
		return captureX(ctx, cfg, configPath, out)
	case config.BackendX11:
		return captureX(ctx, cfg, configPath, out)
	case config.BackendUinput:
		return captureEvdev(ctx, cfg, configPath, out)
	default:
		return errors.Wrapf(config.ErrUnknownBackend, "%q", backend)
	}
}

func captureX(ctx context.Context, cfg *config.Config, configPath string, out io.Writer) error {
	X, err := xgb.NewConn()
	if err != nil {
		return errors.Wrap(err, "connect to X")
	}
	closeX := sync.OnceFunc(X.Close)
	defer closeX()

	p, err := platform.NewX11(X)
	if err != nil {
		return err
	}
	c, err := screen.NewCapture(p, cfg, out)
	if err != nil {
		return err
	}
	w, err := newCaptureWindow(X)
	if err != nil {
		return err
	}
	c.OnRelease(func() {
		if c.Primary().Active() {
			w.ungrab()
			c.Primary().Leave()
			log.Info("capture released, click the blue window or press the release key to resume")
			return
		}
		w.capture(c)
	})

	return c.Run(ctx, configPath, func(ctx context.Context) error {
		stop := context.AfterFunc(ctx, closeX)
		defer stop()
		return w.serve(ctx, c, p)
	})
}

// autoRepeat is a key press X generated for a held key.
type autoRepeat struct {
	xproto.KeyPressEvent
}

type captureWindow struct {
	X              *xgb.Conn
	root           xproto.Window
	wid            xproto.Window
	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom

	// event read ahead while looking for a repeat
	pending xgb.Event
}

func newCaptureWindow(X *xgb.Conn) (*captureWindow, error) {
	xscreen := xproto.Setup(X).DefaultScreen(X)
	w := &captureWindow{X: X, root: xscreen.Root}

	wid, err := xproto.NewWindowId(X)
	if err != nil {
		return nil, errors.Wrap(err, "allocate window id")
	}
	w.wid = wid

	mask := uint32(xproto.CwBackPixel | xproto.CwEventMask)
	values := []uint32{
		BluePixel,
		xproto.EventMaskExposure | xproto.EventMaskButtonPress |
			xproto.EventMaskKeyPress | xproto.EventMaskKeyRelease,
	}
	err = xproto.CreateWindowChecked(X, xscreen.RootDepth, wid, w.root,
		100, 100, WindowSize, WindowSize, 0,
		xproto.WindowClassInputOutput, xscreen.RootVisual, mask, values).Check()
	if err != nil {
		return nil, errors.Wrap(err, "create capture window")
	}

	title := "Key Capture"
	xproto.ChangeProperty(X, xproto.PropModeReplace, wid, xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), []byte(title))
	w.wmProtocols = getAtom(X, "WM_PROTOCOLS")
	w.wmDeleteWindow = getAtom(X, "WM_DELETE_WINDOW")
	xproto.ChangeProperty(X, xproto.PropModeReplace, wid, w.wmProtocols, xproto.AtomAtom, 32, 1,
		[]byte{
			byte(w.wmDeleteWindow & 0xff),
			byte((w.wmDeleteWindow >> 8) & 0xff),
			byte((w.wmDeleteWindow >> 16) & 0xff),
			byte((w.wmDeleteWindow >> 24) & 0xff),
		})
	if StayOnTop {
		setAlwaysOnTop(X, w.root, wid)
	}
	xproto.MapWindow(X, wid)
	return w, nil
}

func (w *captureWindow) grab() bool {
	reply, err := xproto.GrabKeyboard(w.X, false, w.root, xproto.TimeCurrentTime,
		xproto.GrabModeAsync, xproto.GrabModeAsync).Reply()
	if err != nil {
		log.WithError(err).Warn("grabbing the keyboard failed")
		return false
	}
	if reply.Status != xproto.GrabStatusSuccess {
		log.WithField("status", reply.Status).Warn("keyboard is grabbed by another client")
		return false
	}
	return true
}

func (w *captureWindow) ungrab() {
	xproto.UngrabKeyboard(w.X, xproto.TimeCurrentTime)
}

// capture grabs the keyboard and enters the remote screen.
func (w *captureWindow) capture(c *screen.Capture) {
	if c.Primary().Active() || !w.grab() {
		return
	}
	c.Enter()
}

// next returns the next X event. A release directly followed by a press of
// the same key with the same timestamp is X repeating a held key; the pair
// comes back as one autoRepeat.
func (w *captureWindow) next() (xgb.Event, error) {
	ev := w.pending
	w.pending = nil
	if ev == nil {
		var xerr xgb.Error
		if ev, xerr = w.X.WaitForEvent(); xerr != nil {
			return nil, xerr
		}
		if ev == nil {
			return nil, io.EOF
		}
	}

	release, ok := ev.(xproto.KeyReleaseEvent)
	if !ok {
		return ev, nil
	}
	ahead, xerr := w.X.PollForEvent()
	if xerr != nil {
		log.WithError(xerr).Debug("X error")
	}
	if press, ok := ahead.(xproto.KeyPressEvent); ok && press.Detail == release.Detail && press.Time == release.Time {
		return autoRepeat{press}, nil
	}
	w.pending = ahead
	return ev, nil
}

// serve reads X events and posts them to the session until the window is
// closed or the connection goes away. The modifier bits of p change with
// the layout, so states are converted on the queue.
func (w *captureWindow) serve(ctx context.Context, c *screen.Capture, p *platform.X11) error {
	c.Post(ctx, func() { w.capture(c) })

	for {
		ev, err := w.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			log.WithError(err).Debug("X error")
			continue
		}

		switch e := ev.(type) {
		case xproto.ClientMessageEvent:
			if e.Type == w.wmProtocols {
				data := e.Data.Data32
				if len(data) > 0 && xproto.Atom(data[0]) == w.wmDeleteWindow {
					log.Info("capture window closed")
					return nil
				}
			}

		case autoRepeat:
			button, state := keymap.KeyButton(e.Detail), e.State
			c.Post(ctx, func() { c.Key(button, true, true, p.MaskFromState(state)) })

		case xproto.KeyPressEvent:
			button, state := keymap.KeyButton(e.Detail), e.State
			c.Post(ctx, func() { c.Key(button, true, false, p.MaskFromState(state)) })

		case xproto.KeyReleaseEvent:
			button, state := keymap.KeyButton(e.Detail), e.State
			c.Post(ctx, func() { c.Key(button, false, false, p.MaskFromState(state)) })

		case xproto.ButtonPressEvent:
			// resume capture on click
			if e.Event == w.wid {
				c.Post(ctx, func() { w.capture(c) })
			}

		case xproto.MappingNotifyEvent:
			if e.Request == xproto.MappingKeyboard || e.Request == xproto.MappingModifier {
				c.Post(ctx, c.KeyState().UpdateKeys)
			}
		}
	}
}

func setAlwaysOnTop(X *xgb.Conn, root xproto.Window, wid xproto.Window) {
	stateAtom := getAtom(X, "_NET_WM_STATE")
	aboveAtom := getAtom(X, "_NET_WM_STATE_ABOVE")

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: wid,
		Type:   stateAtom,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			1, // _NET_WM_STATE_ADD
			uint32(aboveAtom),
			0, 0, 0,
		}),
	}

	xproto.SendEvent(X, false, root, xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify, string(ev.Bytes()))
}

func getAtom(X *xgb.Conn, name string) xproto.Atom {
	reply, _ := xproto.InternAtom(X, false, uint16(len(name)), name).Reply()
	if reply == nil {
		return 0
	}
	return reply.Atom
}
