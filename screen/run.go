package screen

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/TKMAX777/synkey/config"
	"github.com/TKMAX777/synkey/event"
	"github.com/TKMAX777/synkey/keystate"
	"github.com/TKMAX777/synkey/logging"
	"github.com/TKMAX777/synkey/remote_send"
)

// RunSecondary plays the events read from in on platform until the client
// closes the session, in ends or ctx is done. configPath, when set, is
// watched and a changed half-duplex list is applied without a restart.
func RunSecondary(ctx context.Context, platform keystate.Platform, cfg *config.Config, configPath string, in io.Reader) error {
	halfDuplex, err := cfg.HalfDuplexMask()
	if err != nil {
		return err
	}
	log := logging.For("host")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	q := event.NewQueue(queueSize)
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = q.Loop(ctx)
	}()
	defer func() {
		cancel()
		<-loopDone
	}()

	ks := keystate.New(platform, nil, keystate.WithHalfDuplexMask(halfDuplex))
	if err := q.Call(ctx, ks.UpdateKeys); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return errors.Wrap(err, "read keyboard layout")
	}

	if configPath != "" {
		onChange := func(c *config.Config) {
			mask, err := c.HalfDuplexMask()
			if err != nil {
				return
			}
			if err := q.Post(ctx, func() { ks.SetHalfDuplexMask(mask) }); err == nil {
				log.WithField("half_duplex", mask).Info("configuration reloaded")
			}
		}
		onError := func(err error) {
			log.WithError(err).Warn("configuration not reloaded")
		}
		if err := config.Watch(ctx, configPath, onChange, onError); err != nil {
			log.WithError(err).Warn("not watching configuration")
		}
	}

	secondary := NewSecondary(ks)
	err = secondary.Serve(ctx, q, remote_send.NewReader(in))

	if ctx.Err() != nil {
		return nil
	}
	// Serve queued the release of held keys; wait for it
	_ = q.Call(ctx, func() {})
	return err
}
