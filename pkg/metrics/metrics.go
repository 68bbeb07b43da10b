package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "housing"

var (
	ListingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of listings appended to the store.",
	})

	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Listing store failures by operation.",
	}, []string{"operation"})

	ImagesUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_uploaded_total",
		Help:      "Total number of photos stored.",
	})

	GeocoderRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "geocoder_request_duration_seconds",
		Help:      "Latency of geocoding provider calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	ConsumedMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "consumed_messages_total",
		Help:      "Messages handled by the notification consumer.",
	}, []string{"topic", "result"})
)
