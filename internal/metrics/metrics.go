package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	InspectionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inspections_recorded_total",
			Help: "Daily inspections recorded, by overall status",
		},
		[]string{"status"},
	)

	DefectsDetected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inspection_defects_total",
			Help: "Defect checklist results recorded",
		},
	)
)
