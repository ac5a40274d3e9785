// Package remote_send is the line protocol between a capturing client and
// an injecting host. One event per line, space separated decimals:
//
//	3 <input> <keyid> <mask> <button> <count>   key event
//	4 <mask>                                    toggle state
//	CLOSE                                       end of session
//
// input is 0 for down, 1 for up and 2 for repeat. count fits in 16 bits.
package remote_send

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/TKMAX777/synkey/keymap"
	"github.com/TKMAX777/synkey/keystate"
	"github.com/TKMAX777/synkey/logging"
)

var log = logging.For("remote_send")

type EventType uint32

// Types 0 to 2 carried mouse input in the earlier protocol and are not
// used any more.
const (
	EventTypeKey    EventType = 3
	EventTypeToggle EventType = 4
)

type InputType uint32

const (
	KeyDown InputType = iota
	KeyUp
	KeyRepeat
)

const closeLine = "CLOSE"

var (
	ErrMalformed = errors.New("malformed event line")
	ErrClosed    = errors.New("session closed by peer")
)

// Event is one decoded line.
type Event struct {
	Type   EventType
	Input  InputType
	ID     keymap.KeyID
	Mask   keymap.KeyModifierMask
	Button keymap.KeyButton
	Count  int
}

func (e Event) String() string {
	if e.Type == EventTypeToggle {
		return fmt.Sprintf("%d %d", e.Type, e.Mask)
	}
	return fmt.Sprintf("%d %d %d %d %d %d", e.Type, e.Input, e.ID, e.Mask, e.Button, e.Count)
}

// FromKeyEvent converts what a KeyState announces into a wire event.
func FromKeyEvent(ev keystate.KeyEvent) Event {
	out := Event{Type: EventTypeKey, ID: ev.ID, Mask: ev.Mask, Button: ev.Button, Count: 1}
	switch ev.Action {
	case keystate.ActionUp:
		out.Input = KeyUp
	case keystate.ActionRepeat:
		out.Input, out.Count = KeyRepeat, ev.Count
	}
	return out
}

// Parse decodes one line. CLOSE yields ErrClosed.
func Parse(line string) (Event, error) {
	line = strings.TrimSpace(line)
	if line == closeLine {
		return Event{}, ErrClosed
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Event{}, errors.Wrap(ErrMalformed, "empty line")
	}
	values := make([]uint64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return Event{}, errors.Wrapf(ErrMalformed, "field %d of %q", i, line)
		}
		values[i] = v
	}

	switch EventType(values[0]) {
	case EventTypeToggle:
		if len(values) != 2 {
			return Event{}, errors.Wrapf(ErrMalformed, "%q", line)
		}
		return Event{Type: EventTypeToggle, Mask: keymap.KeyModifierMask(values[1])}, nil
	case EventTypeKey:
		if len(values) != 6 {
			return Event{}, errors.Wrapf(ErrMalformed, "%q", line)
		}
		ev := Event{
			Type:   EventTypeKey,
			Input:  InputType(values[1]),
			ID:     keymap.KeyID(values[2]),
			Mask:   keymap.KeyModifierMask(values[3]),
			Button: keymap.KeyButton(values[4]),
			Count:  int(values[5]),
		}
		switch {
		case ev.Input > KeyRepeat:
			return Event{}, errors.Wrapf(ErrMalformed, "input %d", ev.Input)
		case values[4] == 0 || values[4] >= keymap.NumButtons:
			return Event{}, errors.Wrapf(ErrMalformed, "button %d", values[4])
		case ev.Count < 1 || ev.Count > keystate.MaxRepeatCount:
			return Event{}, errors.Wrapf(ErrMalformed, "count %d", ev.Count)
		}
		return ev, nil
	}
	return Event{}, errors.Wrapf(ErrMalformed, "event type %d", values[0])
}

// Remote writes events to the peer. It is safe for concurrent use.
type Remote struct {
	mu  sync.Mutex
	w   *bufio.Writer
	err error
}

func NewRemote(w io.Writer) *Remote {
	return &Remote{w: bufio.NewWriter(w)}
}

func (r *Remote) writeLine(line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, err := r.w.WriteString(line + "\n"); err != nil {
		r.err = errors.Wrap(err, "write event")
		return r.err
	}
	if err := r.w.Flush(); err != nil {
		r.err = errors.Wrap(err, "flush event")
	}
	return r.err
}

// Send writes one event.
func (r *Remote) Send(ev Event) error {
	return r.writeLine(ev.String())
}

// SendKeyEvent is a keystate.Sink. Write failures are logged and kept for
// Err.
func (r *Remote) SendKeyEvent(ev keystate.KeyEvent) {
	if err := r.Send(FromKeyEvent(ev)); err != nil {
		log.WithError(err).Warn("sending key event failed")
	}
}

// SendToggle announces the toggle modifiers that are on.
func (r *Remote) SendToggle(mask keymap.KeyModifierMask) error {
	return r.Send(Event{Type: EventTypeToggle, Mask: mask & keymap.KeyModifierToggles})
}

// SendExit ends the session.
func (r *Remote) SendExit() error {
	return r.writeLine(closeLine)
}

// Err returns the first write error.
func (r *Remote) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Reader decodes events from the peer.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next well-formed event. Malformed lines are logged and
// skipped. It returns ErrClosed on CLOSE and io.EOF at the end of input.
func (r *Reader) Next() (Event, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ev, err := Parse(line)
		if errors.Is(err, ErrMalformed) {
			log.WithError(err).Warn("skipping event")
			continue
		}
		return ev, err
	}
	if err := r.scanner.Err(); err != nil {
		return Event{}, errors.Wrap(err, "read events")
	}
	return Event{}, io.EOF
}
