package platform

import (
	"os"

	"github.com/MatthiasKunnen/go-wayland/wayland/client"

	"github.com/TKMAX777/synkey/logging"
)

// WaylandSession reports whether a Wayland compositor accepts clients.
// XTEST and X grabs only reach X clients there, so keys go through evdev
// and uinput instead.
func WaylandSession() bool {
	if os.Getenv("WAYLAND_DISPLAY") == "" && os.Getenv("XDG_SESSION_TYPE") != "wayland" {
		return false
	}
	display, err := client.Connect("")
	if err != nil {
		logging.For("wayland").WithError(err).Debug("no wayland compositor")
		return false
	}
	display.Context().Close()
	return true
}
