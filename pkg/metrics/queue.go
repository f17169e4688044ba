package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	QueueProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "message_processing_duration_seconds",
			Help:      "Queue message processing duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"queue", "driver", "status"},
	)

	QueueMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "messages_processed_total",
			Help:      "Total number of queue messages processed",
		},
		[]string{"queue", "driver", "status"},
	)

	QueueMessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "messages_published_total",
			Help:      "Total number of messages published to the webhook queue",
		},
		[]string{"driver", "status"},
	)
)

func init() {
	Registry.MustRegister(QueueProcessingDuration, QueueMessagesProcessed, QueueMessagesPublished)
}
