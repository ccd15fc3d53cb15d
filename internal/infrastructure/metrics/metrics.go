package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransactionsExecuted prometheus.Counter
	TransactionDuration  prometheus.Histogram
	TransactionErrors    *prometheus.CounterVec
	TransactionRetries   prometheus.Counter

	// Exchange rate metrics
	RateLookups   *prometheus.CounterVec
	RateCacheHits prometheus.Counter
	RateErrors    prometheus.Counter

	// Database metrics
	DBConnections prometheus.Gauge
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransactionsExecuted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transferd_transactions_executed_total",
			Help: "Total number of transactions executed",
		}),
		TransactionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "transferd_transaction_duration_seconds",
			Help:    "Duration of transaction execution",
			Buckets: prometheus.DefBuckets,
		}),
		TransactionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transferd_transaction_errors_total",
				Help: "Total number of transaction errors by type",
			},
			[]string{"error_type"},
		),
		TransactionRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transferd_transaction_retries_total",
			Help: "Total number of transaction retries after transient storage errors",
		}),

		RateLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transferd_rate_lookups_total",
				Help: "Total exchange rate lookups by currency pair",
			},
			[]string{"from", "to"},
		),
		RateCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transferd_rate_cache_hits_total",
			Help: "Total exchange rate lookups served from cache",
		}),
		RateErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transferd_rate_errors_total",
			Help: "Total failed exchange rate lookups",
		}),

		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "transferd_db_connections",
			Help: "Current number of database connections",
		}),
	}
}
