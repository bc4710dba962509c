// Package tasks runs blocking work off the host loop. Every task hands its
// result back through its own 1-buffered channel and the completion is
// posted onto the loop, so callbacks run where host state lives.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/formbridge/internal/logging"
)

// ErrClosed is returned when submitting to a closed runner.
var ErrClosed = errors.New("task runner closed")

const defaultLimit = 4

// Poster schedules a func on the host loop. mainloop.Loop.Post satisfies it.
type Poster func(fn func()) bool

// Result is what a task produced.
type Result[T any] struct {
	Value T
	Err   error
}

// Runner bounds and tracks background tasks.
type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
	post   Poster

	mu     sync.Mutex
	closed bool
}

// NewRunner creates a runner whose tasks see a context derived from ctx.
// limit <= 0 uses a small default.
func NewRunner(ctx context.Context, post Poster, limit int) *Runner {
	if limit <= 0 {
		limit = defaultLimit
	}
	ctx, cancel := context.WithCancel(ctx)
	group := new(errgroup.Group)
	group.SetLimit(limit)
	return &Runner{
		ctx:    logging.WithComponent(ctx, "tasks"),
		cancel: cancel,
		group:  group,
		post:   post,
	}
}

// Go runs work in the background and posts done(result) onto the loop. A
// task failure is delivered to done; it never stops other tasks. If the loop
// no longer accepts work the result is dropped.
func Go[T any](r *Runner, name string, work func(ctx context.Context) (T, error), done func(Result[T])) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	r.mu.Unlock()

	results := make(chan Result[T], 1)
	ctx := logging.WithTask(r.ctx, name)

	r.group.Go(func() error {
		results <- run(ctx, work)
		posted := r.post(func() {
			res := <-results
			if done != nil {
				done(res)
			}
		})
		if !posted {
			logging.FromContext(ctx).Debug().Msg("loop gone, dropping task result")
		}
		return nil
	})
	return nil
}

func run[T any](ctx context.Context, work func(ctx context.Context) (T, error)) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			logging.FromContext(ctx).Error().Interface("panic", p).Msg("task panicked")
			res = Result[T]{Err: fmt.Errorf("task panicked: %v", p)}
		}
	}()
	value, err := work(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.FromContext(ctx).Warn().Err(err).Msg("task failed")
	}
	return Result[T]{Value: value, Err: err}
}

// Close cancels running tasks and waits for them to return.
func (r *Runner) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.cancel()
	return r.group.Wait()
}
