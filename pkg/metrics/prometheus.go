package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	SegmentsSeen     prometheus.Counter
	SegmentsAdded    prometheus.Counter
	ItinerariesSeen  prometheus.Counter
	ItinerariesAdded prometheus.Counter
	ReportsSent      prometheus.Counter
	IngestTime       prometheus.Histogram
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		SegmentsSeen: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_seen_total",
			Help:      "The total number of segments seen during ingestion",
		}),
		SegmentsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_added_total",
			Help:      "The total number of newly stored segments",
		}),
		ItinerariesSeen: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itineraries_seen_total",
			Help:      "The total number of itineraries seen during ingestion",
		}),
		ItinerariesAdded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itineraries_added_total",
			Help:      "The total number of newly stored itineraries",
		}),
		ReportsSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_sent_total",
			Help:      "The total number of price reports delivered",
		}),
		IngestTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingest_duration_seconds",
			Help:      "Time taken to ingest one batch of offers",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
