// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/rhsm-sync/internal/adapter"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/models"
)

// DefaultStatusTimeout is used when NewSyncClient gets a non-positive
// status timeout.
const DefaultStatusTimeout = 60 * time.Second

type syncClient struct {
	adapter       adapter.SubscriptionAdapter
	metrics       *Metrics
	logger        *logger.Logger
	statusTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	summary   *Coalescer
	products  *Coalescer
	observers notifier

	mu          sync.RWMutex
	state       models.SubscriptionState
	pending     *stalenessWatch
	initialized bool
	closed      bool
	cancelSub   context.CancelFunc

	wg sync.WaitGroup
}

// NewSyncClient creates a SyncClient on top of a. The client does nothing
// until Init or one of the fetch methods is called.
func NewSyncClient(a adapter.SubscriptionAdapter, metrics *Metrics, log *logger.Logger, statusTimeout time.Duration) SyncClient {
	if statusTimeout <= 0 {
		statusTimeout = DefaultStatusTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &syncClient{
		adapter:       a,
		metrics:       metrics,
		logger:        log.Component("sync-client"),
		statusTimeout: statusTimeout,
		ctx:           ctx,
		cancel:        cancel,
	}
	c.summary = NewCoalescer(c.fetchSummary, c.summarySettled)
	c.products = NewCoalescer(c.fetchProducts, c.emit)

	return c
}

func (c *syncClient) Init(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.initialized {
		c.mu.Unlock()
		return ErrAlreadyInitialized
	}
	c.initialized = true
	subCtx, cancel := context.WithCancel(ctx)
	c.cancelSub = cancel
	c.mu.Unlock()

	changes, err := c.adapter.SubscribeChanges(subCtx)
	if err != nil {
		cancel()
		c.mu.Lock()
		c.initialized = false
		c.cancelSub = nil
		c.mu.Unlock()
		return fmt.Errorf("subscribe to entitlement changes: %w", err)
	}

	c.wg.Add(1)
	go c.watchChanges(changes)

	c.RequestStatusRefresh()
	return nil
}

func (c *syncClient) watchChanges(changes <-chan adapter.ChangeSignal) {
	defer c.wg.Done()
	for signal := range changes {
		c.logger.Debug().Stringer("signal", signal).Msg("entitlement change signal")
		c.RequestStatusRefresh()
	}
}

func (c *syncClient) RequestStatusRefresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.pending != nil {
		c.pending.abandon()
	}

	watch := &stalenessWatch{}
	watch.arm(c.statusTimeout, func() {
		c.statusExpired(watch)
	})
	c.pending = watch
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		c.checkStatus(watch)
	}()
}

// statusExpired records the timeout of the pending check. It runs on the
// timer goroutine and only after the watch has won settle.
func (c *syncClient) statusExpired(watch *stalenessWatch) {
	c.mu.Lock()
	if c.pending != watch {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.state.Err = ErrStatusTimeout
	c.mu.Unlock()

	c.metrics.RecordStatusTimeout()
	c.logger.Warn().Dur("timeout", c.statusTimeout).Msg("status check did not settle in time")
	c.emit()
}

func (c *syncClient) checkStatus(watch *stalenessWatch) {
	started := time.Now()
	code, err := c.adapter.CheckStatus(c.ctx)
	c.metrics.ObserveRemoteCall("check_status", started, err)

	if !watch.settle() {
		c.metrics.RecordLateReply()
		c.logger.Debug().Msg("discarding superseded or expired status reply")
		return
	}

	c.mu.Lock()
	if c.pending == watch {
		c.pending = nil
	}

	if err != nil {
		c.state.Err = err
		c.mu.Unlock()
		c.logger.Err(err).Msg("status check failed")
		c.emit()
		return
	}

	status, err := models.ServiceStatusFromCode(code)
	c.state.ServiceStatus = status
	if err != nil {
		c.state.Err = err
		c.mu.Unlock()
		c.metrics.SetServiceStatus(status)
		c.logger.Err(err).Int32("code", code).Msg("status check returned an unknown code")
		c.emit()
		return
	}
	c.mu.Unlock()

	c.metrics.SetServiceStatus(status)
	c.FetchStatusSummary()
}

func (c *syncClient) FetchStatusSummary() {
	if c.isClosed() {
		return
	}
	if !c.summary.Trigger(c.ctx) {
		c.metrics.RecordCoalesced("status_summary")
	}
}

func (c *syncClient) fetchSummary(ctx context.Context) {
	started := time.Now()
	raw, err := c.adapter.GetStatus(ctx)
	c.metrics.ObserveRemoteCall("get_status", started, err)

	status := models.StatusUnknown
	if err != nil {
		c.logger.Err(err).Msg("status summary fetch failed")
	} else if s, decodeErr := decodeStatus(raw); decodeErr != nil {
		c.logger.Err(decodeErr).Msg("status summary decode failed")
	} else {
		status = s
	}

	c.mu.Lock()
	c.state.Status = status
	c.mu.Unlock()
}

func (c *syncClient) summarySettled() {
	c.FetchProductList()
	c.emit()
}

func (c *syncClient) FetchProductList() {
	if c.isClosed() {
		return
	}
	if !c.products.Trigger(c.ctx) {
		c.metrics.RecordCoalesced("product_list")
	}
}

func (c *syncClient) fetchProducts(ctx context.Context) {
	started := time.Now()
	raw, err := c.adapter.ListInstalledProducts(ctx)
	c.metrics.ObserveRemoteCall("list_installed_products", started, err)
	if err != nil {
		c.logger.Err(err).Msg("product list fetch failed")
		c.setErr(err)
		return
	}

	products, err := decodeProducts(raw)
	if err != nil {
		c.logger.Err(err).Msg("product list decode failed")
		c.setErr(err)
		return
	}

	c.mu.Lock()
	c.state.Products = products
	c.state.Err = nil
	c.mu.Unlock()
}

func (c *syncClient) UnregisterSystem(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.state.Status = models.StatusUnregistering
	c.mu.Unlock()
	c.emit()

	started := time.Now()
	err := c.adapter.Unregister(ctx)
	c.metrics.ObserveRemoteCall("unregister", started, err)
	if err != nil {
		c.logger.Err(err).Msg("unregister failed")
	}

	c.RequestStatusRefresh()

	if err != nil {
		return fmt.Errorf("unregister: %w", err)
	}
	return nil
}

func (c *syncClient) State() models.SubscriptionState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

func (c *syncClient) Subscribe(fn func()) (unsubscribe func()) {
	return c.observers.subscribe(fn)
}

func (c *syncClient) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.pending != nil {
		c.pending.abandon()
		c.pending = nil
	}
	cancelSub := c.cancelSub
	c.mu.Unlock()

	if cancelSub != nil {
		cancelSub()
	}
	c.cancel()
	c.summary.Close()
	c.products.Close()
	c.wg.Wait()
}

func (c *syncClient) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

func (c *syncClient) setErr(err error) {
	c.mu.Lock()
	c.state.Err = err
	c.mu.Unlock()
}

// emit notifies observers. Runs that settle while Close is draining them
// stay silent.
func (c *syncClient) emit() {
	if c.isClosed() {
		return
	}
	c.metrics.RecordNotification()
	c.observers.notify()
}
