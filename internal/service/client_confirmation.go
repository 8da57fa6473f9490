package service

import (
	"context"
	"sync"
)

// Confirmation is the outcome of an optimistic mutation that the Remote
// Authority has not acknowledged yet. It resolves exactly once.
type Confirmation struct {
	once sync.Once
	done chan struct{}
	err  error
}

func newConfirmation() *Confirmation {
	return &Confirmation{done: make(chan struct{})}
}

// confirmed returns a confirmation that is already resolved with err.
func confirmed(err error) *Confirmation {
	c := newConfirmation()
	c.resolve(err)
	return c
}

func (c *Confirmation) resolve(err error) {
	c.once.Do(func() {
		c.err = err
		close(c.done)
	})
}

// Done is closed once the mutation is confirmed or dropped.
func (c *Confirmation) Done() <-chan struct{} {
	return c.done
}

// Err returns the outcome once Done is closed: nil when the Remote Authority
// accepted the mutation, [ErrRetriesExhausted], [ErrPasswordRequired] or
// [ErrOperationDiscarded] otherwise. Before that it returns nil.
func (c *Confirmation) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Wait blocks until the confirmation resolves or ctx is done.
func (c *Confirmation) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
