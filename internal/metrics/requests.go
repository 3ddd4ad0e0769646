package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameAPIRequests        = "api_requests"
	NameAPIRequestDuration = "api_request_duration_seconds"
	LabelMethod            = "method"
	LabelStatus            = "status"
)

var APIRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameAPIRequests,
		Help:      "Growi API requests by method and response status",
		Namespace: Namespace,
	},
	[]string{LabelMethod, LabelStatus},
)

var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameAPIRequestDuration,
		Help:      "Growi API request duration",
		Namespace: Namespace,
		Buckets:   prometheus.DefBuckets,
	},
	[]string{LabelMethod},
)
