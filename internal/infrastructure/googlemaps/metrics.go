package googlemaps

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	endpointGeocode    = "geocode"
	endpointDirections = "directions"
)

var (
	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trainmeet",
		Name:      "google_maps_requests_total",
		Help:      "Number of Google Maps API calls by endpoint and outcome",
	}, []string{"endpoint", "outcome"})
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trainmeet",
		Name:      "google_maps_request_duration_seconds",
		Help:      "Latency of Google Maps API calls",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(requestCount, requestDuration)
}

func observe(endpoint string, start time.Time, err error) {
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	requestCount.WithLabelValues(endpoint, FailureKind(err)).Inc()
}
