package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/rhsm-sync/internal/adapter"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// fakeAdapter answers the read-side calls through swappable functions and
// counts how often each one ran. Unset functions return a benign reply.
type fakeAdapter struct {
	adapter.SubscriptionAdapter

	mu           sync.Mutex
	checkStatus  func(ctx context.Context, call int32) (int32, error)
	getStatus    func(ctx context.Context, call int32) (string, error)
	listProducts func(ctx context.Context, call int32) (string, error)
	unregister   func(ctx context.Context) error
	subscribeErr error
	changes      chan adapter.ChangeSignal

	checkCalls    atomic.Int32
	statusCalls   atomic.Int32
	productCalls  atomic.Int32
	unregisterHit atomic.Int32
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{changes: make(chan adapter.ChangeSignal)}
}

func (f *fakeAdapter) CheckStatus(ctx context.Context) (int32, error) {
	n := f.checkCalls.Add(1)
	f.mu.Lock()
	fn := f.checkStatus
	f.mu.Unlock()
	if fn == nil {
		return 0, nil
	}
	return fn(ctx, n)
}

func (f *fakeAdapter) GetStatus(ctx context.Context) (string, error) {
	n := f.statusCalls.Add(1)
	f.mu.Lock()
	fn := f.getStatus
	f.mu.Unlock()
	if fn == nil {
		return `{"status": "Current"}`, nil
	}
	return fn(ctx, n)
}

func (f *fakeAdapter) ListInstalledProducts(ctx context.Context) (string, error) {
	n := f.productCalls.Add(1)
	f.mu.Lock()
	fn := f.listProducts
	f.mu.Unlock()
	if fn == nil {
		return `[]`, nil
	}
	return fn(ctx, n)
}

func (f *fakeAdapter) Unregister(ctx context.Context) error {
	f.unregisterHit.Add(1)
	if f.unregister == nil {
		return nil
	}
	return f.unregister(ctx)
}

func (f *fakeAdapter) SubscribeChanges(ctx context.Context) (<-chan adapter.ChangeSignal, error) {
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	out := make(chan adapter.ChangeSignal)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case s := <-f.changes:
				select {
				case out <- s:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (f *fakeAdapter) set(apply func(f *fakeAdapter)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	apply(f)
}

func newTestClient(t *testing.T, a adapter.SubscriptionAdapter, metrics *Metrics, timeout time.Duration) *syncClient {
	t.Helper()
	c := NewSyncClient(a, metrics, logger.Nop(), timeout).(*syncClient)
	t.Cleanup(c.Close)
	return c
}

// recorder stores a copy of the state at every notification.
type recorder struct {
	mu     sync.Mutex
	states []models.SubscriptionState
}

func record(c SyncClient) *recorder {
	r := &recorder{}
	c.Subscribe(func() {
		s := c.State()
		r.mu.Lock()
		r.states = append(r.states, s)
		r.mu.Unlock()
	})
	return r
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

func (r *recorder) last() models.SubscriptionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return models.SubscriptionState{}
	}
	return r.states[len(r.states)-1]
}

func (r *recorder) at(i int) models.SubscriptionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[i]
}

func (r *recorder) waitCount(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return r.count() >= n }, waitFor, tick,
		"expected at least %d notifications", n)
}

// idle waits until neither fetch is in flight.
func idle(t *testing.T, c *syncClient) {
	t.Helper()
	require.Eventually(t, func() bool {
		return !c.summary.Busy() && !c.products.Busy()
	}, waitFor, tick)
}
