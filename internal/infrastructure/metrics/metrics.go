// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vodpipe_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vodpipe_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vodpipe_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Ingestion metrics
var (
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vodpipe_uploads_total",
			Help: "Upload attempts by outcome (accepted, rejected, error)",
		},
		[]string{"outcome"},
	)

	UploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vodpipe_upload_bytes_total",
			Help: "Bytes of accepted original uploads",
		},
	)
)

// Pipeline metrics
var (
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vodpipe_stage_duration_seconds",
			Help:    "Duration of one pipeline stage",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600, 1800},
		},
		[]string{"stage", "outcome"},
	)

	AssetsFinishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vodpipe_assets_finished_total",
			Help: "Assets that reached a terminal state",
		},
		[]string{"state"},
	)

	PipelinesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vodpipe_pipelines_in_flight",
			Help: "Orchestrations currently running",
		},
	)
)

// Delivery metrics
var (
	StateDriftTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vodpipe_state_drift_total",
			Help: "Processed assets whose recorded artifact was missing on disk",
		},
	)
)
