package pager

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Page represents the result of an asynchronous retrieval
type Page[T Entity] struct {
	Entities []T
	Err      error
}

// RetrieveAsync will retrieve the next page on a separate goroutine. The
// returned channel receives a single Page and is then closed
func (p *Pager[T]) RetrieveAsync(ctx context.Context) <-chan Page[T] {
	pageC := make(chan Page[T], 1)
	go func() {
		defer close(pageC)
		var page Page[T]
		page.Entities, page.Err = p.Retrieve(ctx)
		pageC <- page
	}()

	return pageC
}

// ForEachAsync will call ForEach on a separate goroutine
func (p *Pager[T]) ForEachAsync(ctx context.Context, fn ForEachFn[T]) *Task {
	return newTask(ctx, func(ctx context.Context) error {
		return p.ForEach(ctx, fn)
	})
}

// ForEachRemainingAsync will call ForEachRemaining on a separate goroutine
func (p *Pager[T]) ForEachRemainingAsync(ctx context.Context, fn ForEachFn[T]) *Task {
	return newTask(ctx, func(ctx context.Context) error {
		return p.ForEachRemaining(ctx, fn)
	})
}

func newTask(ctx context.Context, fn func(context.Context) error) *Task {
	var t Task
	ctx, t.cancel = context.WithCancel(ctx)
	t.g, ctx = errgroup.WithContext(ctx)
	t.g.Go(func() error {
		return fn(ctx)
	})

	return &t
}

// Task represents an asynchronous iteration
type Task struct {
	g      *errgroup.Group
	cancel context.CancelFunc
}

// Wait will block until the iteration has completed and return its error
func (t *Task) Wait() (err error) {
	defer t.cancel()
	return t.g.Wait()
}

// Cancel will stop the iteration, an outstanding retrieval is cancelled and leaves the anchor unchanged
func (t *Task) Cancel() {
	t.cancel()
}
