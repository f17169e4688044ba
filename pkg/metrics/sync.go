package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SyncJobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "job_duration_seconds",
			Help:      "Duration of account sync jobs in seconds",
			Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"trigger", "status"},
	)

	SyncRecordsUpserted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "records_upserted_total",
			Help:      "Total number of records upserted by sync, by resource",
		},
		[]string{"resource"},
	)
)

func init() {
	Registry.MustRegister(SyncJobDuration, SyncRecordsUpserted)
}
