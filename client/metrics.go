package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-endpoint request counts and latencies.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg when it is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "osclient",
			Name:      "requests_total",
			Help:      "Requests sent to the cluster, by endpoint and response status.",
		}, []string{"operation", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "osclient",
			Name:      "request_duration_seconds",
			Help:      "Request latency, by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "method"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "osclient",
			Name:      "requests_in_flight",
			Help:      "Requests currently waiting on the cluster.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration, m.inFlight)
	}
	return m
}

func (m *Metrics) start() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

// observe records one finished request; status 0 means no response was received.
func (m *Metrics) observe(operation, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(operation, method, label).Inc()
	m.duration.WithLabelValues(operation, method).Observe(elapsed.Seconds())
}
