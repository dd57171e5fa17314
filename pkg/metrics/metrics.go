// Package metrics содержит Prometheus-коллекторы сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "court_booking"

// Metrics набор коллекторов HTTP, БД и бизнес-событий
// Все методы безопасны для nil-получателя: при выключенных метриках сервисы получают nil
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec
	DBWaitCount     prometheus.Gauge
	DBWaitDuration  prometheus.Gauge
	TxRetriesTotal  prometheus.Counter

	BookingEventsTotal    *prometheus.CounterVec
	BookingConflictsTotal *prometheus.CounterVec
	PaymentWebhooksTotal  *prometheus.CounterVec
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает и регистрирует метрики в указанном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "db_query_errors_total",
			Help:        "Database query errors by operation.",
			ConstLabels: labels,
		}, []string{"operation"}),

		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_connections",
			Help:        "Database pool connections by state.",
			ConstLabels: labels,
		}, []string{"state"}),

		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: labels,
		}),

		DBWaitDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_wait_duration_seconds",
			Help:        "Total time blocked waiting for a new connection.",
			ConstLabels: labels,
		}),

		TxRetriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "db_tx_retries_total",
			Help:        "Serializable transactions retried after a serialization failure.",
			ConstLabels: labels,
		}),

		BookingEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "booking_events_total",
			Help:        "Booking lifecycle events (created, blocked, updated, cancelled, paid).",
			ConstLabels: labels,
		}, []string{"event"}),

		BookingConflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "booking_conflicts_total",
			Help:        "Rejected booking attempts because the slot was taken.",
			ConstLabels: labels,
		}, []string{"operation"}),

		PaymentWebhooksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "payment_webhooks_total",
			Help:        "Payment webhook notifications by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBConnections,
		m.DBWaitCount,
		m.DBWaitDuration,
		m.TxRetriesTotal,
		m.BookingEventsTotal,
		m.BookingConflictsTotal,
		m.PaymentWebhooksTotal,
	)

	return m
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) ObserveDBQuery(operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(seconds)
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) SetDBPoolStats(inUse, idle, open int, waitCount int64, waitSeconds float64) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(idle))
	m.DBConnections.WithLabelValues("open").Set(float64(open))
	m.DBWaitCount.Set(float64(waitCount))
	m.DBWaitDuration.Set(waitSeconds)
}

func (m *Metrics) IncTxRetry() {
	if m == nil {
		return
	}
	m.TxRetriesTotal.Inc()
}

func (m *Metrics) IncBookingEvent(event string) {
	if m == nil {
		return
	}
	m.BookingEventsTotal.WithLabelValues(event).Inc()
}

func (m *Metrics) IncBookingConflict(operation string) {
	if m == nil {
		return
	}
	m.BookingConflictsTotal.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncPaymentWebhook(outcome string) {
	if m == nil {
		return
	}
	m.PaymentWebhooksTotal.WithLabelValues(outcome).Inc()
}
