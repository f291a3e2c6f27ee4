package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SyncRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_sync_refresh_total",
			Help: "Total number of notification refresh cycles by result",
		},
		[]string{"result"},
	)

	SyncRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "notification_sync_refresh_duration_seconds",
			Help:    "Duration of notification refresh cycles",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	SyncSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_sync_skipped_records_total",
			Help: "Total number of feed records skipped during refresh by reason",
		},
		[]string{"reason"},
	)

	SyncMarkReadTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_sync_mark_read_total",
			Help: "Total number of mark-read calls by result",
		},
		[]string{"result"},
	)
)
