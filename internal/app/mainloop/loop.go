// Package mainloop runs host-side work on a single goroutine. Bridge calls,
// task results and database events are posted here so host state is only
// ever touched from one place.
package mainloop

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/formbridge/internal/logging"
)

// ErrStopped is returned by Run after Stop.
var ErrStopped = errors.New("main loop stopped")

// Loop is an unbounded FIFO of funcs drained by one goroutine.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	stopped bool
}

// New creates an idle loop.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post queues fn. It never blocks and reports false once the loop stopped.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Run drains the queue until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Debug().Msg("main loop started")
	defer log.Debug().Msg("main loop exited")

	for {
		l.Drain()

		l.mu.Lock()
		stopped := l.stopped
		l.mu.Unlock()
		if stopped {
			return ErrStopped
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Drain runs every queued func, including ones posted while draining, and
// returns how many ran. Tests drive the loop with it directly.
func (l *Loop) Drain() int {
	ran := 0
	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		if len(batch) == 0 {
			return ran
		}
		for _, fn := range batch {
			fn()
			ran++
		}
	}
}

// Pending returns the number of queued funcs.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Stop rejects new work. Already queued funcs still run once more if Run is
// active; Run then returns ErrStopped.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}
