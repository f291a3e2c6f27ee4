package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pointsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agent_simulator_points_published_total",
		Help: "Количество опубликованных точек маршрута",
	})

	publishDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "agent_simulator_publish_duration_seconds",
		Help:    "Длительность публикации одной точки в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	})
)
