package screen

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/TKMAX777/synkey/config"
	"github.com/TKMAX777/synkey/event"
	"github.com/TKMAX777/synkey/keymap"
	"github.com/TKMAX777/synkey/keystate"
	"github.com/TKMAX777/synkey/logging"
	"github.com/TKMAX777/synkey/remote_send"
)

const (
	queueSize  = 256
	remoteName = "host"
)

// Capture is the client side of a session: a primary screen writing to
// the host, fed by whatever reads the local keyboard. Everything but Post
// and Run must be used from the queue goroutine.
type Capture struct {
	q       *event.Queue
	ks      *keystate.KeyState
	primary *Primary
	remote  *remote_send.Remote
	log     *logrus.Entry

	onRelease func()
}

// NewCapture returns a session reading the layout from p and writing
// events to out.
func NewCapture(p keystate.Platform, cfg *config.Config, out io.Writer) (*Capture, error) {
	c := &Capture{
		q:      event.NewQueue(queueSize),
		remote: remote_send.NewRemote(out),
		log:    logging.For("capture"),
	}
	c.ks = keystate.New(p, c.remote.SendKeyEvent)
	c.primary = NewPrimary(c.ks, c.remote, remoteName)
	if err := c.ApplyConfig(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Capture) Primary() *Primary { return c.primary }

func (c *Capture) KeyState() *keystate.KeyState { return c.ks }

// OnRelease sets what the release key does. Typically it leaves when
// active and grabs the keyboard and enters otherwise.
func (c *Capture) OnRelease(fn func()) {
	c.onRelease = fn
}

// ApplyConfig takes over the settings that may change while running. A
// configuration with errors changes nothing.
func (c *Capture) ApplyConfig(cfg *config.Config) error {
	halfDuplex, err := cfg.HalfDuplexMask()
	if err != nil {
		return err
	}
	id, mask, err := cfg.ReleaseKey()
	if err != nil {
		return err
	}
	c.ks.SetHalfDuplexMask(halfDuplex)
	c.primary.SetReleaseKey(id, mask, func() {
		if c.onRelease != nil {
			c.onRelease()
		}
	})
	c.log.WithFields(logrus.Fields{
		"release_key": keymap.FormatKey(id, mask),
		"half_duplex": halfDuplex,
	}).Debug("capture settings")
	return nil
}

// Key handles one captured transition. A press of a key that is already
// down is the keyboard repeating it.
func (c *Capture) Key(button keymap.KeyButton, down, repeat bool, osMask keymap.KeyModifierMask) {
	if button == 0 || button >= keymap.NumButtons {
		return
	}
	if down && !repeat && c.ks.IsKeyDown(button) {
		repeat = true
	}
	c.primary.Key(button, down, repeat, osMask)
}

// Enter rereads the keyboard, which may have changed while it was not
// watched, and starts forwarding.
func (c *Capture) Enter() {
	if c.primary.Active() {
		return
	}
	c.ks.UpdateKeys()
	c.primary.Enter()
}

// Post queues fn. It reports false once the session has ended.
func (c *Capture) Post(ctx context.Context, fn func()) bool {
	if err := c.q.Post(ctx, fn); err != nil {
		c.log.WithError(err).Debug("event dropped")
		return false
	}
	return true
}

// Run serves the queue, reads the layout, then blocks in capture. When
// capture returns the host is told to release everything and the session
// ends. configPath, when set, is watched for a new release key or
// half-duplex list.
func (c *Capture) Run(ctx context.Context, configPath string, capture func(ctx context.Context) error) error {
	loopCtx, stopLoop := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = c.q.Loop(loopCtx)
	}()
	defer func() {
		stopLoop()
		<-loopDone
	}()

	if err := c.q.Call(ctx, c.ks.UpdateKeys); err != nil {
		return nil
	}

	if configPath != "" {
		onChange := func(cfg *config.Config) {
			c.Post(ctx, func() {
				if err := c.ApplyConfig(cfg); err != nil {
					c.log.WithError(err).Warn("configuration not applied")
					return
				}
				c.log.Info("configuration reloaded")
			})
		}
		onError := func(err error) {
			c.log.WithError(err).Warn("configuration not reloaded")
		}
		if err := config.Watch(ctx, configPath, onChange, onError); err != nil {
			c.log.WithError(err).Warn("not watching configuration")
		}
	}

	err := capture(ctx)
	_ = c.q.Call(loopCtx, c.primary.Close)
	if ctx.Err() != nil {
		return nil
	}
	if err == nil {
		err = c.remote.Err()
	}
	return err
}
