package publisher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PublishTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "position_publish_total",
		Help: "Total number of position publish attempts by result",
	},
	[]string{"result"},
)
