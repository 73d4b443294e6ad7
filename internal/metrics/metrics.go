// Package metrics holds the Prometheus collectors for the API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// SummarizeDuration measures calls to the summarization provider.
	SummarizeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summarizer_call_duration_seconds",
			Help:    "Duration of summarization provider calls in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"provider", "outcome"},
	)

	// SummarizerWaiting counts requests queued for the summarizer slot.
	SummarizerWaiting = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "summarizer_waiting_requests",
			Help: "Number of requests waiting for a summarizer slot",
		},
	)

	// PageFetchesTotal counts URL fetches by outcome.
	PageFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textsource_page_fetches_total",
			Help: "Total number of URL fetches",
		},
		[]string{"outcome"},
	)
)

// RecordRequest records one served HTTP request.
func RecordRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordSummarize records one provider call.
func RecordSummarize(provider string, elapsed time.Duration, err error) {
	SummarizeDuration.WithLabelValues(provider, outcome(err)).Observe(elapsed.Seconds())
}

// RecordFetch records one URL fetch.
func RecordFetch(err error) {
	PageFetchesTotal.WithLabelValues(outcome(err)).Inc()
}
