package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricRequests counts HTTP requests by method, route pattern and status
	MetricRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hue_http_requests_total",
		Help: "Total preview server HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// MetricDuration tracks request latency
	MetricDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hue_http_request_duration_seconds",
		Help:    "Preview server request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	// MetricErrors counts error responses by status text
	MetricErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hue_http_errors_total",
		Help: "Total preview server error responses by status",
	}, []string{"status"})

	// MetricReloads counts palette file reloads by outcome
	MetricReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hue_palette_reloads_total",
		Help: "Total palette file reloads by outcome",
	}, []string{"outcome"})

	// MetricWebSocketClients tracks connected live-reload clients
	MetricWebSocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hue_websocket_clients",
		Help: "Current connected websocket clients",
	})
)
