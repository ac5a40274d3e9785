// Package screen holds the platform independent halves of a session: the
// primary screen turns captured key transitions into remote events, the
// secondary screen plays remote events on the local keyboard.
//
// Both must only be used from the event queue goroutine.
package screen

import (
	"github.com/sirupsen/logrus"

	"github.com/TKMAX777/synkey/keymap"
	"github.com/TKMAX777/synkey/keystate"
	"github.com/TKMAX777/synkey/logging"
)

// Announcer receives what the primary screen sends besides key events.
type Announcer interface {
	SendToggle(mask keymap.KeyModifierMask) error
	SendExit() error
}

// Primary forwards captured keys through a KeyState.
type Primary struct {
	ks        *keystate.KeyState
	announcer Announcer
	target    string
	log       *logrus.Entry

	releaseID   keymap.KeyID
	releaseMask keymap.KeyModifierMask
	onRelease   func()

	// forwarded buttons that are down on the remote side, with the id
	// they were sent with
	forwarded map[keymap.KeyButton]keymap.KeyID
	active    bool
}

// NewPrimary returns a primary screen sending to target. ks must have been
// created with the remote as its sink.
func NewPrimary(ks *keystate.KeyState, announcer Announcer, target string) *Primary {
	return &Primary{
		ks:        ks,
		announcer: announcer,
		target:    target,
		log:       logging.For("primary").WithField("target", target),
		forwarded: make(map[keymap.KeyButton]keymap.KeyID),
	}
}

// SetReleaseKey makes the key combination id+mask stop capturing: instead
// of being forwarded it calls fn. KeyNone disables it.
func (p *Primary) SetReleaseKey(id keymap.KeyID, mask keymap.KeyModifierMask, fn func()) {
	p.releaseID, p.releaseMask, p.onRelease = id, mask, fn
}

// Active reports whether keys are being forwarded.
func (p *Primary) Active() bool {
	return p.active
}

// Enter starts forwarding and tells the remote which toggles are on.
func (p *Primary) Enter() {
	p.active = true
	if err := p.announcer.SendToggle(p.ks.ActiveModifiers()); err != nil {
		p.log.WithError(err).Warn("sending toggle state failed")
	}
	p.log.Info("capture started")
}

// Leave releases every forwarded key on the remote side and stops
// forwarding.
func (p *Primary) Leave() {
	if !p.active {
		return
	}
	mask := p.ks.ActiveModifiers()
	for button, id := range p.forwarded {
		p.ks.SendKeyEvent(p.target, false, false, id, mask, 1, button)
	}
	clear(p.forwarded)
	p.active = false
	p.log.Info("capture released")
}

// Close leaves and ends the session.
func (p *Primary) Close() {
	p.Leave()
	if err := p.announcer.SendExit(); err != nil {
		p.log.WithError(err).Warn("sending close failed")
	}
}

// KeyID returns the id button produces with the current modifiers.
func (p *Primary) KeyID(button keymap.KeyButton) keymap.KeyID {
	km := p.ks.KeyMap()
	group := p.ks.ActiveGroup()
	mask := p.ks.ActiveModifiers()

	level := keymap.LevelPlain
	if mask&keymap.KeyModifierShift != 0 {
		level |= keymap.LevelShift
	}
	if mask&keymap.KeyModifierModeSwitch != 0 {
		level |= keymap.LevelModeSwitch
	}
	id := km.KeyForButton(group, button, level)

	// caps lock shifts letters, num lock shifts the keypad
	if mapping, ok := km.Mapping(group, id); ok {
		if (mapping.CapsLockSensitive && mask&keymap.KeyModifierCapsLock != 0) ||
			(mapping.NumLockSensitive && mask&keymap.KeyModifierNumLock != 0) {
			if flipped := km.KeyForButton(group, button, level^keymap.LevelShift); flipped != keymap.KeyNone {
				id = flipped
			}
		}
	}
	return id
}

// Key handles one captured transition of button. osMask is the modifier
// state the OS reported with it. A repeat is a key held down.
func (p *Primary) Key(button keymap.KeyButton, down, repeat bool, osMask keymap.KeyModifierMask) {
	if repeat {
		id, ok := p.forwarded[button]
		if !ok || !p.active {
			return
		}
		p.ks.SendKeyEvent(p.target, true, true, id, p.ks.ActiveModifiers(), 1, button)
		return
	}

	id := p.KeyID(button)
	if !down {
		if sent, ok := p.forwarded[button]; ok {
			id = sent
		}
	}
	p.ks.OnKey(button, down, osMask)
	mask := p.ks.ActiveModifiers()

	// press-only hardware reports turning a lock off as a release
	halfDuplex := p.ks.IsHalfDuplex(button)
	press := down || halfDuplex

	if press && p.onRelease != nil && p.releaseID != keymap.KeyNone &&
		keymap.ToLower(id) == keymap.ToLower(p.releaseID) &&
		mask&^keymap.KeyModifierToggles == p.releaseMask {
		p.onRelease()
		return
	}
	if !p.active {
		return
	}
	if !press {
		if _, ok := p.forwarded[button]; !ok {
			return
		}
		delete(p.forwarded, button)
	} else if !halfDuplex {
		p.forwarded[button] = id
	}

	p.log.WithFields(logrus.Fields{
		"key":    keymap.FormatKey(id, mask),
		"button": button,
		"down":   press,
	}).Trace("forward key")
	p.ks.SendKeyEvent(p.target, press, false, id, mask, 1, button)
}
