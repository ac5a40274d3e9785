package host

import (
	"context"
	"io"

	"github.com/natefinch/npipe"
	"github.com/pkg/errors"

	"github.com/TKMAX777/synkey/config"
	"github.com/TKMAX777/synkey/logging"
	"github.com/TKMAX777/synkey/screen"
	"github.com/TKMAX777/synkey/windows/platform"
)

var log = logging.For("host")

// StartServer plays the events read from in. With a pipe configured it
// listens there instead and serves one client after another until ctx is
// done.
func StartServer(ctx context.Context, cfg *config.Config, configPath string, in io.Reader) error {
	p := platform.New()
	if cfg.Transport.Pipe == "" {
		return screen.RunSecondary(ctx, p, cfg, configPath, in)
	}

	l, err := npipe.Listen(cfg.Transport.Pipe)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", cfg.Transport.Pipe)
	}
	stop := context.AfterFunc(ctx, func() { l.Close() })
	defer stop()
	defer l.Close()

	log.WithField("pipe", cfg.Transport.Pipe).Info("waiting for clients")
	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "accept client")
		}
		log.Info("client connected")
		err = screen.RunSecondary(ctx, p, cfg, configPath, conn)
		conn.Close()
		if err != nil {
			log.WithError(err).Warn("session failed")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
