package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics prometheus collectors of the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBOpenConns     prometheus.Gauge
	DBInUseConns    prometheus.Gauge
	DBIdleConns     prometheus.Gauge

	TestDrivesBooked     prometheus.Counter
	TestDriveBookingFail *prometheus.CounterVec
}

// New registers collectors in the default prometheus registry.
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer registers collectors in reg.
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	ns := namespace(serviceName)

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "db_query_duration_seconds",
			Help:      "Database query latency by operation.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "db_query_errors_total",
			Help:      "Database query errors by operation.",
		}, []string{"operation"}),
		DBOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_open_connections",
			Help:      "Open connections in the pool.",
		}),
		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_in_use_connections",
			Help:      "Connections currently in use.",
		}),
		DBIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_idle_connections",
			Help:      "Idle connections in the pool.",
		}),
		TestDrivesBooked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "test_drives_booked_total",
			Help:      "Test drive bookings created.",
		}),
		TestDriveBookingFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "test_drive_booking_failures_total",
			Help:      "Rejected test drive bookings by reason.",
		}, []string{"reason"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConns,
		m.DBInUseConns,
		m.DBIdleConns,
		m.TestDrivesBooked,
		m.TestDriveBookingFail,
	)

	return m
}

// ObserveQuery records a database call.
func (m *Metrics) ObserveQuery(operation string, d time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(d.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetPoolStats updates connection pool gauges.
func (m *Metrics) SetPoolStats(open, inUse, idle int) {
	m.DBOpenConns.Set(float64(open))
	m.DBInUseConns.Set(float64(inUse))
	m.DBIdleConns.Set(float64(idle))
}

// ObserveHTTP records a finished HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, statusLabel(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) IncTestDriveBooked() {
	m.TestDrivesBooked.Inc()
}

func (m *Metrics) IncTestDriveBookingFailed(reason string) {
	m.TestDriveBookingFail.WithLabelValues(reason).Inc()
}

func namespace(serviceName string) string {
	ns := strings.ToLower(serviceName)
	ns = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(ns)
	return ns
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
