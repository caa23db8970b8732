package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var documentsUploaded = promauto.NewCounter(prometheus.CounterOpts{
	Name: "kyc_documents_uploaded_total",
	Help: "Total number of documents accepted for processing",
})

var documentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kyc_documents_processed_total",
	Help: "Total number of documents that reached a terminal state, labelled by status",
}, []string{"status"})

var extractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "kyc_extraction_duration_seconds",
	Help:    "Wall-clock duration of field extraction calls",
	Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
})

var queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "kyc_process_queue_depth",
	Help: "Number of tasks waiting in the processing queue",
})

func IncrementDocumentsUploaded() {
	documentsUploaded.Inc()
}

func IncrementDocumentsProcessed(status string) {
	documentsProcessed.WithLabelValues(status).Inc()
}

func ObserveExtractionDuration(seconds float64) {
	extractionDuration.Observe(seconds)
}

func IncrementQueueDepth() {
	queueDepth.Inc()
}

func DecrementQueueDepth() {
	queueDepth.Dec()
}
