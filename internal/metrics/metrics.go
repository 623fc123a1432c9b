// Package metrics records request and thumbnail traffic in a private Prometheus registry.
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "sports_explorer"

// Recorder implements sportsdb.RequestObserver and imaging.ThumbnailObserver.
type Recorder struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	thumbnails *prometheus.CounterVec

	totalRequests atomic.Int64
	failed        atomic.Int64
	lastLatency   atomic.Int64
}

// Totals is a snapshot for display in the UI.
type Totals struct {
	Requests    int64
	Failed      int64
	LastLatency time.Duration
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Sports-data API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Sports-data API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		thumbnails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "thumbnail_fetches_total",
			Help:      "Player thumbnail fetches by outcome.",
		}, []string{"outcome"}),
	}

	r.registry.MustRegister(
		r.requests,
		r.latency,
		r.thumbnails,
		collectors.NewGoCollector(),
	)
	return r
}

func (r *Recorder) ObserveRequest(endpoint, outcome string, elapsed time.Duration) {
	r.requests.WithLabelValues(endpoint, outcome).Inc()
	r.latency.WithLabelValues(endpoint).Observe(elapsed.Seconds())

	r.totalRequests.Add(1)
	if outcome == OutcomeError {
		r.failed.Add(1)
	}
	r.lastLatency.Store(int64(elapsed))
}

func (r *Recorder) ObserveThumbnail(outcome string, _ time.Duration) {
	r.thumbnails.WithLabelValues(outcome).Inc()
}

func (r *Recorder) Totals() Totals {
	return Totals{
		Requests:    r.totalRequests.Load(),
		Failed:      r.failed.Load(),
		LastLatency: time.Duration(r.lastLatency.Load()),
	}
}

// Registry exposes the underlying registry for scraping and tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
