package worker

import (
	"context"
	"fmt"

	"evtxview/internal/app/errors"
	"evtxview/internal/config"
)

// Pool bounds the number of source files decoded at the same time
type Pool interface {
	Acquire(ctx context.Context) error
	Release()
	Go(ctx context.Context, fn func()) error
	Active() int
	Size() int
}

type pool struct {
	sem chan struct{}
}

// NewWorkerPool creates a pool sized by ingest.workers
func NewWorkerPool(cfg *config.Config) Pool {
	return &pool{
		sem: make(chan struct{}, max(1, cfg.Ingest.Workers)),
	}
}

// Acquire takes a slot, blocking until one is free or ctx is done
func (p *pool) Acquire(ctx context.Context) error {
	select {
	case p.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", errors.ErrFailedToAcquireWorker, ctx.Err())
	}
}

// Release frees a slot taken by Acquire
func (p *pool) Release() {
	<-p.sem
}

// Go runs fn on a new goroutine once a slot is free. The slot is held until fn returns.
// The caller is not blocked; an error is returned only when ctx is already done.
func (p *pool) Go(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToAcquireWorker, err)
	}

	go func() {
		if err := p.Acquire(ctx); err != nil {
			return
		}
		defer p.Release()

		fn()
	}()

	return nil
}

// Active returns the number of held slots
func (p *pool) Active() int {
	return len(p.sem)
}

// Size returns the slot capacity
func (p *pool) Size() int {
	return cap(p.sem)
}
