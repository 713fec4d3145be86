package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_TriggerWhileIdleStartsRun(t *testing.T) {
	var runs atomic.Int32
	settled := make(chan struct{}, 1)
	c := NewCoalescer(func(context.Context) { runs.Add(1) }, func() { settled <- struct{}{} })

	assert.True(t, c.Trigger(context.Background()))
	<-settled

	assert.Equal(t, int32(1), runs.Load())
	require.Eventually(t, func() bool { return !c.Busy() }, waitFor, tick)
}

func TestCoalescer_TriggersWhileBusyMergeIntoOneFollowUp(t *testing.T) {
	var runs atomic.Int32
	started := make(chan struct{}, 4)
	release := make(chan struct{})
	settled := make(chan struct{}, 4)

	c := NewCoalescer(func(context.Context) {
		runs.Add(1)
		started <- struct{}{}
		<-release
	}, func() { settled <- struct{}{} })

	require.True(t, c.Trigger(context.Background()))
	<-started

	assert.False(t, c.Trigger(context.Background()))
	assert.False(t, c.Trigger(context.Background()))
	assert.True(t, c.Busy())

	close(release)
	<-settled
	<-settled

	require.Eventually(t, func() bool { return !c.Busy() }, waitFor, tick)
	assert.Equal(t, int32(2), runs.Load())
	assert.Empty(t, settled, "one settle per run")
}

func TestCoalescer_FollowUpDecidedBeforeSettle(t *testing.T) {
	// A Trigger issued from settle must start a fresh run, not be lost.
	var runs atomic.Int32
	done := make(chan struct{})
	var c *Coalescer
	c = NewCoalescer(func(context.Context) { runs.Add(1) }, func() {
		if runs.Load() == 1 {
			c.Trigger(context.Background())
			return
		}
		close(done)
	})

	c.Trigger(context.Background())
	<-done
	assert.Equal(t, int32(2), runs.Load())
}

func TestCoalescer_NilSettle(t *testing.T) {
	var runs atomic.Int32
	c := NewCoalescer(func(context.Context) { runs.Add(1) }, nil)

	c.Trigger(context.Background())
	require.Eventually(t, func() bool { return runs.Load() == 1 && !c.Busy() }, waitFor, tick)
}

func TestCoalescer_CloseWaitsAndRefusesRuns(t *testing.T) {
	var runs atomic.Int32
	started := make(chan struct{}, 4)
	release := make(chan struct{})
	c := NewCoalescer(func(context.Context) {
		runs.Add(1)
		started <- struct{}{}
		<-release
	}, nil)

	require.True(t, c.Trigger(context.Background()))
	<-started
	assert.False(t, c.Trigger(context.Background()))

	closed := make(chan struct{})
	go func() {
		c.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned while a run was in flight")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	<-closed

	assert.Equal(t, int32(1), runs.Load(), "follow-up dropped by Close")
	assert.False(t, c.Trigger(context.Background()))
	assert.False(t, c.Busy())
	assert.Equal(t, int32(1), runs.Load())
}

func TestCoalescer_CancelledContextDropsFollowUp(t *testing.T) {
	var runs atomic.Int32
	started := make(chan struct{}, 4)
	settled := make(chan struct{}, 4)
	ctx, cancel := context.WithCancel(context.Background())
	c := NewCoalescer(func(ctx context.Context) {
		runs.Add(1)
		started <- struct{}{}
		<-ctx.Done()
	}, func() { settled <- struct{}{} })

	require.True(t, c.Trigger(ctx))
	<-started
	c.Trigger(ctx)
	cancel()
	<-settled

	require.Eventually(t, func() bool { return !c.Busy() }, waitFor, tick)
	assert.Equal(t, int32(1), runs.Load())
}
