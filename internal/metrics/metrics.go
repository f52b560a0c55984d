package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CardOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_operations_total",
			Help: "Successful card operations",
		},
		[]string{"operation"}, // pago|consumo|bloqueo|pin|limite|renovacion
	)
	CardOpsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_operations_failed_total",
			Help: "Rejected card operations",
		},
		[]string{"operation"},
	)

	LedgerPendingDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_pending_queue_depth",
			Help: "Transactions waiting in the pending queue",
		},
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(CardOpsTotal)
	prometheus.MustRegister(CardOpsFailed)
	prometheus.MustRegister(LedgerPendingDepth)
	prometheus.MustRegister(WorkerQueueDepth)
}
