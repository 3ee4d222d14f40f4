package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricResolves counts palette resolutions by selector kind
	MetricResolves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hue_resolve_total",
		Help: "Total palette resolutions by selector kind",
	}, []string{"selector"})

	// MetricResolveErrors counts failed resolutions by error type
	MetricResolveErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hue_resolve_errors_total",
		Help: "Total failed palette resolutions by error type",
	}, []string{"type"})
)
