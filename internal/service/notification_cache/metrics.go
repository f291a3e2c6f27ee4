package notification_cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notification_cache_records",
			Help: "Number of notifications in the local cache",
		},
	)

	CacheUnread = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notification_cache_unread",
			Help: "Number of unread notifications in the local cache",
		},
	)

	CacheObservers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notification_cache_observers",
			Help: "Number of active live views",
		},
	)
)
