package screen

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/TKMAX777/synkey/event"
	"github.com/TKMAX777/synkey/keymap"
	"github.com/TKMAX777/synkey/keystate"
	"github.com/TKMAX777/synkey/logging"
	"github.com/TKMAX777/synkey/remote_send"
)

// Secondary plays remote events on the local keyboard.
type Secondary struct {
	ks  *keystate.KeyState
	log *logrus.Entry
}

func NewSecondary(ks *keystate.KeyState) *Secondary {
	return &Secondary{ks: ks, log: logging.For("secondary")}
}

// Apply plays one remote event.
func (s *Secondary) Apply(ev remote_send.Event) {
	switch ev.Type {
	case remote_send.EventTypeToggle:
		s.SetToggles(ev.Mask)
	case remote_send.EventTypeKey:
		switch ev.Input {
		case remote_send.KeyDown:
			s.ks.FakeKeyDown(ev.ID, ev.Mask, ev.Button)
		case remote_send.KeyRepeat:
			s.ks.FakeKeyRepeat(ev.ID, ev.Mask, ev.Count, ev.Button)
		case remote_send.KeyUp:
			s.ks.FakeKeyUp(ev.Button)
		}
	}
}

// SetToggles strikes the lock keys whose state differs from mask.
func (s *Secondary) SetToggles(mask keymap.KeyModifierMask) {
	diff := (mask ^ s.ks.ActiveModifiers()) & keymap.KeyModifierToggles
	for _, m := range []keymap.KeyModifierMask{
		keymap.KeyModifierCapsLock,
		keymap.KeyModifierNumLock,
		keymap.KeyModifierScrollLock,
	} {
		if diff&m != 0 {
			s.ks.FakeToggle(m)
		}
	}
}

// Serve reads events from r and posts them to q until the peer closes the
// session, r ends or ctx is done. Keys still held are released at the end.
func (s *Secondary) Serve(ctx context.Context, q *event.Queue, r *remote_send.Reader) error {
	defer func() {
		// the loop may already be gone, nothing to release then
		_ = q.Post(context.Background(), s.ks.FakeAllKeysUp)
	}()

	// the reader blocks in Scan, so it runs apart from ctx
	type result struct {
		ev  remote_send.Event
		err error
	}
	events := make(chan result)
	go func() {
		defer close(events)
		for {
			ev, err := r.Next()
			select {
			case events <- result{ev, err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-events:
			if !ok {
				return nil
			}
			switch {
			case errors.Is(res.err, remote_send.ErrClosed), errors.Is(res.err, io.EOF):
				s.log.Info("session ended by peer")
				return nil
			case res.err != nil:
				return res.err
			}
			ev := res.ev
			if err := q.Post(ctx, func() { s.Apply(ev) }); err != nil {
				return err
			}
		}
	}
}
