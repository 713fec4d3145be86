// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/rhsm-sync/internal/adapter"
	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `[["Red Hat Enterprise Linux Server", "69", "7.9", "x86_64", "subscribed"],
	["Red Hat Ansible Engine", "408", "2.9", "x86_64", "not_subscribed"]]`

// ── status refresh ───────────────────────────────────────────────────────────

func TestRequestStatusRefresh_SuccessFetchesSummaryAndProducts(t *testing.T) {
	fa := newFakeAdapter()
	fa.set(func(f *fakeAdapter) {
		f.checkStatus = func(context.Context, int32) (int32, error) { return 2, nil }
		f.listProducts = func(context.Context, int32) (string, error) { return productsJSON, nil }
	})
	c := newTestClient(t, fa, nil, time.Second)
	rec := record(c)

	c.RequestStatusRefresh()
	rec.waitCount(t, 2)

	require.Eventually(t, func() bool { return len(c.State().Products) == 2 }, waitFor, tick)
	got := c.State()
	assert.Equal(t, models.ServiceStatusWarning, got.ServiceStatus)
	assert.Equal(t, "Current", got.Status)
	assert.NoError(t, got.Err)
	assert.Equal(t, "69", got.Products[0].ProductID)
	assert.Equal(t, "not_subscribed", got.Products[1].Status)
	assert.Equal(t, int32(1), fa.checkCalls.Load())
	assert.Equal(t, int32(1), fa.statusCalls.Load())
	assert.Equal(t, int32(1), fa.productCalls.Load())
}

func TestRequestStatusRefresh_StatusTable(t *testing.T) {
	tests := []struct {
		code int32
		want models.ServiceStatus
	}{
		{0, models.ServiceStatusValid},
		{1, models.ServiceStatusExpired},
		{2, models.ServiceStatusWarning},
		{3, models.ServiceStatusClassic},
		{4, models.ServiceStatusPartiallyValid},
		{5, models.ServiceStatusRegistrationRequired},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			fa := newFakeAdapter()
			fa.set(func(f *fakeAdapter) {
				f.checkStatus = func(context.Context, int32) (int32, error) { return tt.code, nil }
			})
			c := newTestClient(t, fa, nil, time.Second)
			rec := record(c)

			c.RequestStatusRefresh()
			rec.waitCount(t, 1)

			assert.Equal(t, tt.want, c.State().ServiceStatus)
		})
	}
}

func TestRequestStatusRefresh_UnknownCodeFailsFast(t *testing.T) {
	fa := newFakeAdapter()
	fa.set(func(f *fakeAdapter) {
		f.checkStatus = func(context.Context, int32) (int32, error) { return 9, nil }
	})
	c := newTestClient(t, fa, nil, time.Second)
	c.state.ServiceStatus = models.ServiceStatusValid
	rec := record(c)

	c.RequestStatusRefresh()
	rec.waitCount(t, 1)

	got := rec.last()
	assert.Equal(t, models.ServiceStatusUnknown, got.ServiceStatus)
	assert.ErrorIs(t, got.Err, models.ErrUnknownStatusCode)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), fa.statusCalls.Load(), "summary must not be fetched")
	assert.Equal(t, 1, rec.count())
}

func TestRequestStatusRefresh_RemoteFailureRecordsErr(t *testing.T) {
	fa := newFakeAdapter()
	fa.set(func(f *fakeAdapter) {
		f.checkStatus = func(context.Context, int32) (int32, error) { return 0, adapter.ErrServiceUnavailable }
	})
	c := newTestClient(t, fa, nil, time.Second)
	rec := record(c)

	c.RequestStatusRefresh()
	rec.waitCount(t, 1)

	assert.ErrorIs(t, rec.last().Err, adapter.ErrServiceUnavailable)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), fa.checkCalls.Load(), "no retry")
	assert.Equal(t, int32(0), fa.statusCalls.Load())
}

func TestRequestStatusRefresh_TimeoutFiresOnceAndDropsLateReply(t *testing.T) {
	release := make(chan struct{})
	fa := newFakeAdapter()
	fa.set(func(f *fakeAdapter) {
		f.checkStatus = func(context.Context, int32) (int32, error) {
			<-release
			return 0, nil
		}
	})
	metrics := NewMetrics(nil)
	c := newTestClient(t, fa, metrics, 20*time.Millisecond)
	rec := record(c)

	c.RequestStatusRefresh()
	rec.waitCount(t, 1)
	assert.ErrorIs(t, rec.last().Err, ErrStatusTimeout)

	close(release)
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.lateReplies) == 1
	}, waitFor, tick)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, rec.count(), "late reply must not notify")
	assert.Equal(t, int32(0), fa.statusCalls.Load())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.statusTimeouts))
	assert.ErrorIs(t, c.State().Err, ErrStatusTimeout)
}

func TestRequestStatusRefresh_SettledCheckDisarmsTimer(t *testing.T) {
	fa := newFakeAdapter()
	metrics := NewMetrics(nil)
	c := newTestClient(t, fa, metrics, 30*time.Millisecond)
	rec := record(c)

	c.RequestStatusRefresh()
	rec.waitCount(t, 2)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.statusTimeouts))
	assert.NoError(t, c.State().Err)
	assert.Equal(t, 2, rec.count())
}

func TestRequestStatusRefresh_NewerRequestSupersedesPending(t *testing.T) {
	release := make(chan struct{})
	fa := newFakeAdapter()
	fa.set(func(f *fakeAdapter) {
		f.checkStatus = func(_ context.Context, call int32) (int32, error) {
			if call == 1 {
				<-release
				return 1, nil // EXPIRED, stale
			}
			return 0, nil
		}
	})
	metrics := NewMetrics(nil)
	c := newTestClient(t, fa, metrics, time.Second)
	rec := record(c)

	c.RequestStatusRefresh()
	require.Eventually(t, func() bool { return fa.checkCalls.Load() == 1 }, waitFor, tick)
	c.RequestStatusRefresh()

	rec.waitCount(t, 2)
	assert.Equal(t, models.ServiceStatusValid, c.State().ServiceStatus)

	close(release)
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.lateReplies) == 1
	}, waitFor, tick)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, models.ServiceStatusValid, c.State().ServiceStatus)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.statusTimeouts), "abandoned watch must not expire")
}

// ── summary ──────────────────────────────────────────────────────────────────

func TestFetchStatusSummary_CoalescesConcurrentRequests(t *testing.T) {
	started := make(chan struct{}, 4)
	release := make(chan struct{})
	fa := newFakeAdapter()
	fa.set(func(f *fakeAdapter) {
		f.getStatus = func(context.Context, int32) (string, error) {
			started <- struct{}{}
			<-release
			return `{"status": "Current"}`, nil
		}
	})
	metrics := NewMetrics(nil)
	c := newTestClient(t, fa, metrics, time.Second)

	c.FetchStatusSummary()
	<-started

	c.FetchStatusSummary()
	c.FetchStatusSummary()
	c.FetchStatusSummary()
	close(release)

	require.Eventually(t, func() bool { return fa.statusCalls.Load() == 2 }, waitFor, tick)
	require.Eventually(t, func() bool { return !c.summary.Busy() }, waitFor, tick)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, int32(2), fa.statusCalls.Load(), "merged requests run exactly one follow-up")
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.coalesced.WithLabelValues("status_summary")))
}

func TestFetchStatusSummary_FailureFallsBackToUnknown(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{name: "remote error", err: adapter.ErrNoReply},
		{name: "not json", reply: `Current`},
		{name: "no status field", reply: `{"reasons": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := newFakeAdapter()
			fa.set(func(f *fakeAdapter) {
				f.getStatus = func(context.Context, int32) (string, error) { return tt.reply, tt.err }
			})
			c := newTestClient(t, fa, nil, time.Second)
			c.state.Status = "Current"
			rec := record(c)

			c.FetchStatusSummary()
			rec.waitCount(t, 1)

			assert.Equal(t, models.StatusUnknown, c.State().Status)
			require.Eventually(t, func() bool { return fa.productCalls.Load() == 1 }, waitFor, tick,
				"product list follows the summary even on failure")
		})
	}
}

// ── products ─────────────────────────────────────────────────────────────────

func TestFetchProductList_SuccessReplacesProductsAndClearsErr(t *testing.T) {
	fa := newFakeAdapter()
	fa.set(func(f *fakeAdapter) {
		f.listProducts = func(context.Context, int32) (string, error) { return productsJSON, nil }
	})
	c := newTestClient(t, fa, nil, time.Second)
	c.state.Err = ErrStatusTimeout
	c.state.Products = []models.ProductRecord{{ProductName: "old"}}
	rec := record(c)

	c.FetchProductList()
	rec.waitCount(t, 1)

	got := rec.at(0)
	assert.NoError(t, got.Err)
	require.Len(t, got.Products, 2)
	assert.Equal(t, models.ProductRecord{
		ProductName: "Red Hat Enterprise Linux Server",
		ProductID:   "69",
		Version:     "7.9",
		Arch:        "x86_64",
		Status:      "subscribed",
	}, got.Products[0])

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, rec.count(), "exactly one notification per settle")
}

func TestFetchProductList_FailureKeepsProducts(t *testing.T) {
	previous := []models.ProductRecord{{ProductName: "RHEL", ProductID: "69"}}

	tests := []struct {
		name    string
		reply   string
		err     error
		wantErr error
	}{
		{name: "remote error", err: adapter.ErrAccessDenied, wantErr: adapter.ErrAccessDenied},
		{name: "not a list", reply: `{"a": 1}`, wantErr: ErrMalformedProducts},
		{name: "short row", reply: `[["a", "b", "c", "d"]]`, wantErr: ErrMalformedProducts},
		{name: "non-string column", reply: `[["a", 69, "c", "d", "e"]]`, wantErr: ErrMalformedProducts},
		{name: "null", reply: `null`, wantErr: ErrMalformedProducts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := newFakeAdapter()
			fa.set(func(f *fakeAdapter) {
				f.listProducts = func(context.Context, int32) (string, error) { return tt.reply, tt.err }
			})
			c := newTestClient(t, fa, nil, time.Second)
			c.state.Products = previous
			rec := record(c)

			c.FetchProductList()
			rec.waitCount(t, 1)

			got := rec.at(0)
			assert.ErrorIs(t, got.Err, tt.wantErr)
			assert.Equal(t, previous, got.Products)
		})
	}
}

func TestFetchProductList_CoalescesConcurrentRequests(t *testing.T) {
	started := make(chan struct{}, 4)
	release := make(chan struct{})
	fa := newFakeAdapter()
	fa.set(func(f *fakeAdapter) {
		f.listProducts = func(context.Context, int32) (string, error) {
			started <- struct{}{}
			<-release
			return `[]`, nil
		}
	})
	c := newTestClient(t, fa, nil, time.Second)
	rec := record(c)

	c.FetchProductList()
	<-started
	c.FetchProductList()
	c.FetchProductList()
	close(release)

	rec.waitCount(t, 2)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(2), fa.productCalls.Load())
	assert.Equal(t, 2, rec.count())
}

// ── unregister ───────────────────────────────────────────────────────────────

func TestUnregisterSystem_SetsPlaceholderAndRefreshes(t *testing.T) {
	release := make(chan struct{})
	fa := newFakeAdapter()
	fa.set(func(f *fakeAdapter) {
		f.unregister = func(context.Context) error {
			<-release
			return nil
		}
		f.checkStatus = func(context.Context, int32) (int32, error) { return 5, nil }
	})
	c := newTestClient(t, fa, nil, time.Second)
	rec := record(c)

	done := make(chan error, 1)
	go func() { done <- c.UnregisterSystem(context.Background()) }()

	// the placeholder is announced while the remote call is still running
	rec.waitCount(t, 1)
	require.Eventually(t, func() bool { return fa.unregisterHit.Load() == 1 }, waitFor, tick)
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, models.StatusUnregistering, rec.at(0).Status)
	assert.Equal(t, int32(0), fa.checkCalls.Load())

	close(release)
	require.NoError(t, <-done)

	rec.waitCount(t, 2)
	require.Eventually(t, func() bool {
		return c.State().ServiceStatus == models.ServiceStatusRegistrationRequired
	}, waitFor, tick)
	assert.Equal(t, int32(1), fa.checkCalls.Load())
}

func TestUnregisterSystem_FailureStillRefreshes(t *testing.T) {
	fa := newFakeAdapter()
	fa.unregister = func(context.Context) error { return adapter.ErrAccessDenied }
	c := newTestClient(t, fa, nil, time.Second)
	rec := record(c)

	err := c.UnregisterSystem(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrAccessDenied)
	assert.Equal(t, models.StatusUnregistering, rec.at(0).Status)
	require.Eventually(t, func() bool { return fa.checkCalls.Load() == 1 }, waitFor, tick)
}

// ── init / close / observers ─────────────────────────────────────────────────

func TestInit_SubscribesAndRefreshes(t *testing.T) {
	fa := newFakeAdapter()
	c := newTestClient(t, fa, nil, time.Second)

	require.NoError(t, c.Init(context.Background()))
	require.Eventually(t, func() bool { return fa.checkCalls.Load() == 1 }, waitFor, tick)

	fa.changes <- adapter.SignalEntitlementStatusChanged
	require.Eventually(t, func() bool { return fa.checkCalls.Load() == 2 }, waitFor, tick)

	fa.changes <- adapter.SignalPropertiesChanged
	require.Eventually(t, func() bool { return fa.checkCalls.Load() == 3 }, waitFor, tick)
}

func TestInit_Twice(t *testing.T) {
	c := newTestClient(t, newFakeAdapter(), nil, time.Second)

	require.NoError(t, c.Init(context.Background()))
	assert.ErrorIs(t, c.Init(context.Background()), ErrAlreadyInitialized)
}

func TestInit_SubscribeFailureCanBeRetried(t *testing.T) {
	fa := newFakeAdapter()
	fa.subscribeErr = adapter.ErrServiceUnavailable
	c := newTestClient(t, fa, nil, time.Second)

	err := c.Init(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)
	assert.Equal(t, int32(0), fa.checkCalls.Load())

	fa.subscribeErr = nil
	assert.NoError(t, c.Init(context.Background()))
}

func TestClose_StopsRefreshes(t *testing.T) {
	fa := newFakeAdapter()
	c := NewSyncClient(fa, nil, nil, time.Second).(*syncClient)
	require.NoError(t, c.Init(context.Background()))
	require.Eventually(t, func() bool { return fa.checkCalls.Load() == 1 }, waitFor, tick)

	c.Close()
	c.Close()

	c.RequestStatusRefresh()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), fa.checkCalls.Load())
	assert.ErrorIs(t, c.Init(context.Background()), ErrClosed)
}

func TestClose_IgnoresFetchesAndUnregister(t *testing.T) {
	fa := newFakeAdapter()
	fa.set(func(f *fakeAdapter) {
		f.getStatus = func(context.Context, int32) (string, error) {
			return `{"status": "Changed after close"}`, nil
		}
	})
	c := NewSyncClient(fa, nil, nil, time.Second).(*syncClient)
	rec := record(c)

	c.Close()

	c.FetchStatusSummary()
	c.FetchProductList()
	err := c.UnregisterSystem(context.Background())

	assert.ErrorIs(t, err, ErrClosed)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), fa.statusCalls.Load())
	assert.Equal(t, int32(0), fa.productCalls.Load())
	assert.Equal(t, int32(0), fa.unregisterHit.Load())
	assert.Equal(t, 0, rec.count())
	assert.Empty(t, c.State().Status)
}

func TestClose_WaitsForInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool
	fa := newFakeAdapter()
	fa.set(func(f *fakeAdapter) {
		f.getStatus = func(ctx context.Context, _ int32) (string, error) {
			close(started)
			<-ctx.Done()
			time.Sleep(10 * time.Millisecond)
			finished.Store(true)
			return "", ctx.Err()
		}
	})
	c := NewSyncClient(fa, nil, nil, time.Second).(*syncClient)
	rec := record(c)

	c.FetchStatusSummary()
	<-started
	c.FetchStatusSummary() // queued follow-up is dropped by Close

	c.Close()

	assert.True(t, finished.Load(), "Close returned before the fetch settled")
	assert.False(t, c.summary.Busy())
	assert.Equal(t, int32(1), fa.statusCalls.Load())
	assert.Equal(t, int32(0), fa.productCalls.Load())
	assert.Equal(t, 0, rec.count())
}

func TestSubscribe_UnsubscribeStopsNotifications(t *testing.T) {
	fa := newFakeAdapter()
	c := newTestClient(t, fa, nil, time.Second)

	var calls int
	done := make(chan struct{}, 4)
	unsubscribe := c.Subscribe(func() {
		calls++
		done <- struct{}{}
	})

	c.FetchProductList()
	<-done
	unsubscribe()
	unsubscribe()

	c.FetchProductList()
	require.Eventually(t, func() bool { return fa.productCalls.Load() == 2 }, waitFor, tick)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, calls)
}

func TestState_ReturnsCopy(t *testing.T) {
	c := newTestClient(t, newFakeAdapter(), nil, time.Second)
	c.state.Products = []models.ProductRecord{{ProductName: "RHEL"}}

	got := c.State()
	got.Products[0].ProductName = "changed"

	assert.Equal(t, "RHEL", c.State().Products[0].ProductName)
}

func TestNewSyncClient_DefaultTimeout(t *testing.T) {
	c := newTestClient(t, newFakeAdapter(), nil, 0)
	assert.Equal(t, DefaultStatusTimeout, c.statusTimeout)
}

func TestRegistrationError_Unwrap(t *testing.T) {
	err := error(&RegistrationError{Step: StepAttach, Err: adapter.ErrRemote})

	var regErr *RegistrationError
	require.True(t, errors.As(err, &regErr))
	assert.Equal(t, StepAttach, regErr.Step)
	assert.ErrorIs(t, err, adapter.ErrRemote)
	assert.Contains(t, err.Error(), "attach")
}
