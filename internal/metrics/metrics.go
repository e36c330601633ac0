package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	SheetFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sheet_fetches_total",
			Help: "Total number of sheet reads.",
		},
		[]string{"source", "status"}, // status: success, config_error, fetch_error
	)

	SheetFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sheet_fetch_duration_seconds",
			Help:    "Duration of sheet reads.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"source"},
	)

	LinksFetched = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "links_fetched",
			Help: "Number of links in the most recent fetch.",
		},
	)

	DuplicateLinks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "duplicate_links",
			Help: "Number of links flagged as duplicates in the most recent report.",
		},
	)
)
