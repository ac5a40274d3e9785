// Package event serializes work onto one goroutine. Readers of stdin, X,
// evdev or a pipe post closures; Loop runs them in order, so state that is
// only touched from posted closures needs no locking.
package event

import (
	"context"

	"github.com/pkg/errors"

	"github.com/TKMAX777/synkey/logging"
)

var log = logging.For("event")

// ErrClosed is returned by Post and Call after the loop has stopped.
var ErrClosed = errors.New("event queue closed")

// Queue is a FIFO of closures run by Loop.
type Queue struct {
	events chan func()
	done   chan struct{}
}

// NewQueue returns a queue that buffers up to size pending events.
func NewQueue(size int) *Queue {
	return &Queue{
		events: make(chan func(), size),
		done:   make(chan struct{}),
	}
}

// Post queues fn. It blocks while the buffer is full.
func (q *Queue) Post(ctx context.Context, fn func()) error {
	select {
	case <-q.done:
		return ErrClosed
	default:
	}
	select {
	case q.events <- fn:
		return nil
	case <-q.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Call queues fn and waits until it has run.
func (q *Queue) Call(ctx context.Context, fn func()) error {
	ran := make(chan struct{})
	if err := q.Post(ctx, func() {
		defer close(ran)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-ran:
		return nil
	case <-q.done:
		// Loop may have run it just before stopping
		select {
		case <-ran:
			return nil
		default:
			return ErrClosed
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Loop runs queued events until ctx ends. Events still buffered at that
// point are dropped. Loop must run at most once.
func (q *Queue) Loop(ctx context.Context) error {
	defer close(q.done)
	log.Debug("event loop started")
	for {
		select {
		case <-ctx.Done():
			log.WithField("dropped", len(q.events)).Debug("event loop stopped")
			return ctx.Err()
		case fn := <-q.events:
			fn()
		}
	}
}
