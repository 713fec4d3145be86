package service

import (
	"sync"
	"time"
)

// stalenessWatch guards one pending status check. Exactly one of the reply
// path and the expiry path wins settle; the loser backs off.
type stalenessWatch struct {
	mu      sync.Mutex
	settled bool
	timer   *time.Timer
}

// arm starts the single-shot timer. onExpire runs only if the timer wins
// the race against settle and abandon. Arming a settled watch is a no-op.
func (w *stalenessWatch) arm(timeout time.Duration, onExpire func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.settled {
		return
	}
	w.timer = time.AfterFunc(timeout, func() {
		if w.settle() {
			onExpire()
		}
	})
}

// settle returns true the first time it is called and false afterwards.
// It disarms the timer.
func (w *stalenessWatch) settle() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.settled {
		return false
	}
	w.settled = true
	if w.timer != nil {
		w.timer.Stop()
	}
	return true
}

// abandon disarms the watch without running onExpire. A reply arriving
// afterwards loses settle and is dropped.
func (w *stalenessWatch) abandon() {
	w.settle()
}
