package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStalenessWatch_ExpiresOnce(t *testing.T) {
	var fired atomic.Int32
	w := &stalenessWatch{}
	w.arm(5*time.Millisecond, func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, waitFor, tick)
	assert.False(t, w.settle(), "reply after expiry loses")
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestStalenessWatch_SettleDisarms(t *testing.T) {
	var fired atomic.Int32
	w := &stalenessWatch{}
	w.arm(20*time.Millisecond, func() { fired.Add(1) })

	assert.True(t, w.settle())
	assert.False(t, w.settle())
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestStalenessWatch_AbandonIsSilent(t *testing.T) {
	var fired atomic.Int32
	w := &stalenessWatch{}
	w.arm(10*time.Millisecond, func() { fired.Add(1) })

	w.abandon()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.False(t, w.settle())
}

func TestStalenessWatch_ArmAfterSettleIsNoop(t *testing.T) {
	var fired atomic.Int32
	w := &stalenessWatch{}
	w.abandon()
	w.arm(time.Millisecond, func() { fired.Add(1) })

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestStalenessWatch_ConcurrentSettleHasOneWinner(t *testing.T) {
	w := &stalenessWatch{}
	w.arm(time.Hour, func() {})

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if w.settle() {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
