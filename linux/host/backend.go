package host

import (
	"github.com/jezek/xgb"
	"github.com/pkg/errors"

	"github.com/TKMAX777/synkey/config"
	"github.com/TKMAX777/synkey/keystate"
	"github.com/TKMAX777/synkey/linux/platform"
)

// OpenPlatform selects and opens the injection backend. The returned close
// function releases it.
func OpenPlatform(cfg config.KeyboardConfig) (keystate.Platform, func(), error) {
	backend := cfg.Backend
	if backend == "" || backend == config.BackendAuto {
		backend = config.BackendX11
		if platform.WaylandSession() {
			backend = config.BackendUinput
		}
	}

	// XWayland still serves the layout when it is running
	X, xerr := xgb.NewConn()
	closeX := func() {
		if xerr == nil {
			X.Close()
		}
	}

	switch backend {
	case config.BackendX11:
		if xerr != nil {
			return nil, nil, errors.Wrap(xerr, "connect to X")
		}
		p, err := platform.NewX11(X)
		if err != nil {
			closeX()
			return nil, nil, err
		}
		log.Info("injecting through XTEST")
		return p, closeX, nil

	case config.BackendUinput:
		layout := platform.USLayout
		if xerr == nil {
			layout = platform.XLayout(X)
		} else {
			log.WithError(xerr).Info("no X server, using the built-in US layout")
		}
		p, err := platform.NewUinput(cfg.Devices, layout)
		if err != nil {
			closeX()
			return nil, nil, err
		}
		log.Info("injecting through uinput")
		return p, func() {
			if err := p.Close(); err != nil {
				log.WithError(err).Warn("closing virtual keyboard failed")
			}
			closeX()
		}, nil
	}
	closeX()
	return nil, nil, errors.Wrapf(config.ErrUnknownBackend, "%q", backend)
}
