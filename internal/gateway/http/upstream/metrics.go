package upstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of upstream HTTP requests",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "status"},
	)

	GatewayFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_failures_total",
			Help: "Total number of failed upstream HTTP requests",
		},
		[]string{"service", "method", "reason"},
	)

	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_retries_total",
			Help: "Total number of upstream requests that needed a retry",
		},
		[]string{"service", "method"},
	)
)
