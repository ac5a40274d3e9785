// Package host plays the key events a client sends on the local X or
// Wayland session.
package host

import (
	"context"
	"io"

	"github.com/TKMAX777/synkey/config"
	"github.com/TKMAX777/synkey/logging"
	"github.com/TKMAX777/synkey/screen"
)

var log = logging.For("host")

// StartServer reads events from in and plays them until the client closes
// the session, in ends or ctx is done.
func StartServer(ctx context.Context, cfg *config.Config, configPath string, in io.Reader) error {
	platform, closePlatform, err := OpenPlatform(cfg.Keyboard)
	if err != nil {
		return err
	}
	defer closePlatform()

	return screen.RunSecondary(ctx, platform, cfg, configPath, in)
}
