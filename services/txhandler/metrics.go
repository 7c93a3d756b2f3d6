package txhandler

import (
	"sync"

	"github.com/bsv-blockchain/utxoledger/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusAcceptedTransactions prometheus.Counter
	prometheusInvalidTransactions  *prometheus.CounterVec
	prometheusValidateTransaction  prometheus.Histogram
	prometheusProcessEpoch         prometheus.Histogram
	prometheusEpochSize            prometheus.Histogram
	prometheusPoolSize             prometheus.Gauge
)

var prometheusMetricsInitOnce sync.Once

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusAcceptedTransactions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "utxoledger",
			Subsystem: "txhandler",
			Name:      "accepted_transactions",
			Help:      "Number of transactions accepted and applied to the utxo pool",
		},
	)

	prometheusInvalidTransactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "utxoledger",
			Subsystem: "txhandler",
			Name:      "invalid_transactions",
			Help:      "Number of transactions rejected by the handler, by reason",
		},
		[]string{"reason"},
	)

	prometheusValidateTransaction = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "utxoledger",
			Subsystem: "txhandler",
			Name:      "validate_transaction",
			Help:      "Histogram of single transaction validation",
			Buckets:   util.MetricsBucketsMicroSeconds,
		},
	)

	prometheusProcessEpoch = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "utxoledger",
			Subsystem: "txhandler",
			Name:      "process_epoch",
			Help:      "Histogram of epoch processing",
			Buckets:   util.MetricsBucketsMilliSeconds,
		},
	)

	prometheusEpochSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "utxoledger",
			Subsystem: "txhandler",
			Name:      "epoch_size",
			Help:      "Number of candidate transactions per epoch",
			Buckets:   util.MetricsBucketsSize,
		},
	)

	prometheusPoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "utxoledger",
			Subsystem: "txhandler",
			Name:      "pool_size",
			Help:      "Number of unspent outputs in the utxo pool after the last epoch",
		},
	)
}
