package taxicompare

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// viewRequests counts view requests by view and HTTP status.
	viewRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxi_view_requests_total",
			Help: "Total number of view requests",
		},
		[]string{"view", "status"},
	)
	viewDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taxi_view_duration_seconds",
			Help:    "View request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"view"},
	)
	// snapshotTrips is the number of trips loaded per snapshot, before filtering.
	snapshotTrips = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "taxi_snapshot_trips",
			Help: "Trips loaded per snapshot period",
		},
		[]string{"period"},
	)
	loadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "taxi_load_duration_seconds",
			Help: "Duration of the last successful dataset load",
		},
	)
)
