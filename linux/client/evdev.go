package client

import (
	"context"
	"io"
	"sync"

	evdev "github.com/holoplot/go-evdev"
	"github.com/jezek/xgb"
	"github.com/sirupsen/logrus"

	"github.com/TKMAX777/synkey/config"
	"github.com/TKMAX777/synkey/linux/platform"
	"github.com/TKMAX777/synkey/screen"
)

// evdev key event values
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

func captureEvdev(ctx context.Context, cfg *config.Config, configPath string, out io.Writer) error {
	layout := platform.USLayout
	if X, err := xgb.NewConn(); err == nil {
		defer X.Close()
		layout = platform.XLayout(X)
	} else {
		log.WithError(err).Info("no X server, using the built-in US layout")
	}

	kbd, err := platform.OpenEvdev(cfg.Keyboard.Devices, layout)
	if err != nil {
		return err
	}
	closeKbd := sync.OnceFunc(func() {
		if err := kbd.Close(); err != nil {
			log.WithError(err).Debug("closing keyboards failed")
		}
	})
	defer closeKbd()

	c, err := screen.NewCapture(kbd, cfg, out)
	if err != nil {
		return err
	}
	g := &grabber{devices: kbd.Devices()}
	c.OnRelease(func() { g.toggle(c) })

	log.WithField("keyboards", len(g.devices)).Info("press the release key to start capturing")
	return c.Run(ctx, configPath, func(ctx context.Context) error {
		stop := context.AfterFunc(ctx, closeKbd)
		defer stop()
		return readKeyboards(ctx, c, g.devices)
	})
}

// grabber takes the keyboards away from the compositor while capturing.
type grabber struct {
	devices []*evdev.InputDevice
}

// toggle grabs and enters, or ungrabs and leaves.
func (g *grabber) toggle(c *screen.Capture) {
	if c.Primary().Active() {
		g.set(false)
		c.Primary().Leave()
		return
	}
	if g.set(true) {
		c.Enter()
	}
}

// set grabs or ungrabs every keyboard. When a grab fails the ones already
// taken are given back.
func (g *grabber) set(grab bool) bool {
	for i, dev := range g.devices {
		var err error
		if grab {
			err = dev.Grab()
		} else {
			err = dev.Ungrab()
		}
		if err == nil {
			continue
		}
		log.WithError(err).WithFields(logrus.Fields{
			"path": dev.Path(),
			"grab": grab,
		}).Warn("changing keyboard grab failed")
		if grab {
			for _, taken := range g.devices[:i] {
				_ = taken.Ungrab()
			}
			return false
		}
	}
	return true
}

// readKeyboards posts the key events of every device until all of them
// fail, which closing them makes happen.
func readKeyboards(ctx context.Context, c *screen.Capture, devices []*evdev.InputDevice) error {
	var wg sync.WaitGroup
	for _, dev := range devices {
		wg.Add(1)
		go func() {
			defer wg.Done()
			readKeyboard(ctx, c, dev)
		}()
	}
	wg.Wait()
	return nil
}

func readKeyboard(ctx context.Context, c *screen.Capture, dev *evdev.InputDevice) {
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() == nil {
				log.WithError(err).WithField("path", dev.Path()).Warn("keyboard gone")
			}
			return
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}
		if !c.Post(ctx, keyEvent(c, ev)) {
			return
		}
	}
}

// keyEvent turns one EV_KEY event into a session transition. evdev does not
// report modifiers with a key, so the tracked ones stand in.
func keyEvent(c *screen.Capture, ev *evdev.InputEvent) func() {
	button := platform.ButtonForCode(ev.Code)
	repeat := ev.Value == keyRepeated
	down := ev.Value != keyReleased
	return func() {
		c.Key(button, down, repeat, c.KeyState().ActiveModifiers())
	}
}
