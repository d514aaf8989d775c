package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	KafkaMessagesProduced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_produced_total",
			Help: "Number of messages written to Kafka",
		},
		[]string{"topic"},
	)
)

var (
	// PurchasesTotal — исход покупок: accepted|rejected|failed.
	PurchasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "purchases_total",
			Help:      "Purchase attempts by outcome",
		},
		[]string{"outcome"},
	)
	// QuotesTotal — предварительные расчёты без оплаты: ok|rejected.
	QuotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "quotes_total",
			Help:      "Quote requests by outcome",
		},
		[]string{"outcome"},
	)
	TicketsSold = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "sold_total",
			Help:      "Tickets sold by category",
		},
		[]string{"category"},
	)
	AmountCharged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "amount_charged_total",
			Help:      "Total amount passed to the payment service",
		},
	)
	SeatsReserved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "seats_reserved_total",
			Help:      "Total seats passed to the reservation service",
		},
	)
	ValidationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tickets",
			Name:      "validation_duration_seconds",
			Help:      "Purchase validation latency",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторный вызов ничего не делает.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, KafkaMessagesProduced,
			PurchasesTotal, QuotesTotal, TicketsSold, AmountCharged, SeatsReserved, ValidationDuration,
		)
	})
}
