// Package metrics exposes Prometheus collectors for the HTTP surface and signups.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mergington"

// Collector holds the service's Prometheus collectors.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	signupsTotal    *prometheus.CounterVec
	activitiesAdded prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		signupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "signups_total",
				Help:      "Total number of signup attempts by outcome",
			},
			[]string{"outcome"},
		),
		activitiesAdded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "activities_created_total",
				Help:      "Total number of activities created at runtime",
			},
		),
	}
}

// ObserveSignup implements domain.SignupMetrics.
func (c *Collector) ObserveSignup(outcome string) {
	c.signupsTotal.WithLabelValues(outcome).Inc()
}

// ObserveActivityCreated implements domain.SignupMetrics.
func (c *Collector) ObserveActivityCreated() {
	c.activitiesAdded.Inc()
}

// ObserveRequest records one served HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
