package tracker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TrackerFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_fetch_total",
			Help: "Total number of tracker position fetches by result",
		},
		[]string{"result"},
	)

	TrackerActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_active_sessions",
			Help: "Number of running tracking sessions",
		},
	)
)
