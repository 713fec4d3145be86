package service

import (
	"context"
	"sync"
)

// Coalescer runs fetch at most once at a time. A Trigger that arrives while
// a run is in flight is folded into a single follow-up run, started in the
// same goroutine right after the current one settles. The follow-up is
// dropped once ctx is cancelled.
type Coalescer struct {
	mu        sync.Mutex
	busy      bool
	requested bool
	closed    bool
	wg        sync.WaitGroup

	fetch  func(ctx context.Context)
	settle func()
}

// NewCoalescer wraps fetch. settle, if not nil, is called after every run,
// once the decision about a follow-up run has been made.
func NewCoalescer(fetch func(ctx context.Context), settle func()) *Coalescer {
	return &Coalescer{fetch: fetch, settle: settle}
}

// Trigger starts a run and returns true, or marks a follow-up as wanted and
// returns false when a run is already in flight. After Close it returns
// false without doing anything.
func (c *Coalescer) Trigger(ctx context.Context) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	if c.busy {
		c.requested = true
		c.mu.Unlock()
		return false
	}
	c.busy = true
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		c.loop(ctx)
	}()
	return true
}

// Close refuses further runs, drops a pending follow-up and waits for the
// run in flight to settle.
func (c *Coalescer) Close() {
	c.mu.Lock()
	c.closed = true
	c.requested = false
	c.mu.Unlock()

	c.wg.Wait()
}

// Busy reports whether a run is in flight.
func (c *Coalescer) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

func (c *Coalescer) loop(ctx context.Context) {
	for {
		c.fetch(ctx)

		c.mu.Lock()
		again := c.requested && !c.closed && ctx.Err() == nil
		c.requested = false
		if !again {
			c.busy = false
		}
		c.mu.Unlock()

		if c.settle != nil {
			c.settle()
		}
		if !again {
			return
		}
	}
}
