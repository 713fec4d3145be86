package service

import (
	"strings"
	"time"

	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "rhsm_sync"
	maxLabelLen      = 64
)

// sanitizeLabel keeps label values short and free of spaces.
func sanitizeLabel(s string) string {
	if s == "" {
		return "unknown"
	}
	s = strings.ReplaceAll(s, " ", "_")
	if len(s) > maxLabelLen {
		s = s[:maxLabelLen]
	}
	return s
}

// Metrics is the Prometheus instrumentation of the sync client.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	remoteCalls        *prometheus.CounterVec
	remoteCallDuration *prometheus.HistogramVec
	coalesced          *prometheus.CounterVec
	statusTimeouts     prometheus.Counter
	lateReplies        prometheus.Counter
	notifications      prometheus.Counter
	registrations      *prometheus.CounterVec
	serviceStatus      *prometheus.GaugeVec
}

// NewMetrics builds the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is what tests usually want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		remoteCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "remote",
				Name:      "calls_total",
				Help:      "Total RHSM calls by method and result",
			},
			[]string{"method", "result"},
		),
		remoteCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "remote",
				Name:      "call_duration_seconds",
				Help:      "Latency of RHSM calls by method",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		coalesced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "client",
				Name:      "coalesced_requests_total",
				Help:      "Fetch requests merged into an in-flight run",
			},
			[]string{"operation"},
		),
		statusTimeouts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "client",
				Name:      "status_timeouts_total",
				Help:      "Status checks that did not settle before the staleness timer fired",
			},
		),
		lateReplies: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "client",
				Name:      "late_replies_total",
				Help:      "Status replies discarded because they were superseded or timed out",
			},
		),
		notifications: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "client",
				Name:      "notifications_total",
				Help:      "Change notifications delivered to observers",
			},
		),
		registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "client",
				Name:      "registrations_total",
				Help:      "Registration attempts by result and failed step",
			},
			[]string{"result", "step"},
		),
		serviceStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: "client",
				Name:      "service_status",
				Help:      "1 for the current entitlement verdict, 0 for the others",
			},
			[]string{"status"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.remoteCalls,
			m.remoteCallDuration,
			m.coalesced,
			m.statusTimeouts,
			m.lateReplies,
			m.notifications,
			m.registrations,
			m.serviceStatus,
		)
	}

	return m
}

// ObserveRemoteCall records one finished RHSM call.
func (m *Metrics) ObserveRemoteCall(method string, started time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	method = sanitizeLabel(method)
	m.remoteCalls.WithLabelValues(method, result).Inc()
	m.remoteCallDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
}

func (m *Metrics) RecordCoalesced(operation string) {
	if m == nil {
		return
	}
	m.coalesced.WithLabelValues(sanitizeLabel(operation)).Inc()
}

func (m *Metrics) RecordStatusTimeout() {
	if m == nil {
		return
	}
	m.statusTimeouts.Inc()
}

func (m *Metrics) RecordLateReply() {
	if m == nil {
		return
	}
	m.lateReplies.Inc()
}

func (m *Metrics) RecordNotification() {
	if m == nil {
		return
	}
	m.notifications.Inc()
}

// RecordRegistration counts a registration outcome. step is empty on success.
func (m *Metrics) RecordRegistration(step string, err error) {
	if m == nil {
		return
	}
	if err == nil {
		m.registrations.WithLabelValues("ok", "none").Inc()
		return
	}
	m.registrations.WithLabelValues("error", sanitizeLabel(step)).Inc()
}

// SetServiceStatus flips the gauge so only the current verdict reads 1.
func (m *Metrics) SetServiceStatus(current models.ServiceStatus) {
	if m == nil {
		return
	}
	for _, s := range knownServiceStatuses {
		v := 0.0
		if s == current {
			v = 1
		}
		m.serviceStatus.WithLabelValues(s.String()).Set(v)
	}
}

var knownServiceStatuses = []models.ServiceStatus{
	models.ServiceStatusUnknown,
	models.ServiceStatusValid,
	models.ServiceStatusExpired,
	models.ServiceStatusWarning,
	models.ServiceStatusClassic,
	models.ServiceStatusPartiallyValid,
	models.ServiceStatusRegistrationRequired,
}
