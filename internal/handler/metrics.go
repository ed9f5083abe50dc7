package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	paymentEventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ferremas_store",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_processed_total",
			Help:      "Total number of successfully processed payment events",
		},
	)

	paymentEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ferremas_store",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_failed_total",
			Help:      "Total number of failed payment event processing attempts",
		},
	)

	paymentEventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ferremas_store",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_dlq_total",
			Help:      "Total number of payment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ferremas_store",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	paymentEventDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ferremas_store",
			Subsystem: "kafka_consumer",
			Name:      "payment_event_duration_seconds",
			Help:      "Histogram of payment event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	paymentEventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ferremas_store",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_in_progress",
			Help:      "Number of payment events currently being processed",
		},
	)
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ferremas_store",
			Subsystem: "orders",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts by result",
		},
		[]string{"result"},
	)

	orderTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ferremas_store",
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Total number of order status transitions by target status",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		paymentEventsProcessed,
		paymentEventsFailed,
		paymentEventsDLQ,
		commitErrors,
		paymentEventDuration,
		paymentEventsInProgress,

		checkoutsTotal,
		orderTransitionsTotal,
	)
}
