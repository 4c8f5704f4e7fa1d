package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	recomputeRuns        *prometheus.CounterVec
	recomputeRequests    *prometheus.CounterVec
	recomputeDuration    prometheus.Histogram
	recomputeTxns        *prometheus.CounterVec
	banksSkipped         *prometheus.CounterVec
	staleSnapshots       prometheus.Counter
	sharedRecomputes     prometheus.Counter
	queueDepth           *prometheus.GaugeVec
	jobsEnqueued         *prometheus.CounterVec
	retryAttempts        *prometheus.CounterVec
	circuitBreakerState  *prometheus.GaugeVec
	importRows           *prometheus.CounterVec
	importDuration       prometheus.Histogram
	tagMutations         *prometheus.CounterVec
	transactionEdits     *prometheus.CounterVec
	scheduledTaskResults *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on reg. Tests pass a fresh registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		recomputeRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tag_recompute_total",
				Help: "Total number of tag summary recomputes",
			},
			[]string{"status"},
		),
		recomputeRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tag_recompute_requests_total",
				Help: "Recompute requests received over HTTP by mode and status",
			},
			[]string{"mode", "status"},
		),
		recomputeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tag_recompute_duration_milliseconds",
				Help:    "Tag summary recompute duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 16),
			},
		),
		recomputeTxns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tag_recompute_transactions_total",
				Help: "Transactions seen by recomputes, by outcome",
			},
			[]string{"outcome"},
		),
		banksSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tag_recompute_banks_skipped_total",
				Help: "Banks skipped during recompute",
			},
			[]string{"reason"},
		),
		staleSnapshots: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "tag_summary_stale_writes_total",
				Help: "Snapshots discarded because a newer one was already stored",
			},
		),
		sharedRecomputes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "tag_recompute_shared_total",
				Help: "Recompute calls answered by a pass already running for the same user",
			},
		),
		queueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "recompute_queue_depth",
				Help: "Current number of recompute jobs by status",
			},
			[]string{"status"},
		),
		jobsEnqueued: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recompute_jobs_enqueued_total",
				Help: "Recompute requests by trigger and whether they were coalesced",
			},
			[]string{"trigger", "coalesced"},
		),
		retryAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recompute_retry_attempts_total",
				Help: "Total number of recompute retry attempts",
			},
			[]string{"trigger"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "import_rows_total",
				Help: "Imported statement rows by status",
			},
			[]string{"status"},
		),
		importDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "import_duration_milliseconds",
				Help:    "Statement import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 14),
			},
		),
		tagMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tag_mutations_total",
				Help: "Tag catalog changes by action",
			},
			[]string{"action"},
		),
		transactionEdits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_edits_total",
				Help: "Transaction edits by kind",
			},
			[]string{"kind"},
		),
		scheduledTaskResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduled_task_runs_total",
				Help: "Scheduled maintenance task runs by task and status",
			},
			[]string{"task", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "recompute.completed":
		m.recomputeRuns.WithLabelValues(tags["status"]).Inc()
	case "recompute.request":
		m.recomputeRequests.WithLabelValues(tags["mode"], tags["status"]).Inc()
	case "recompute.bank.skipped":
		m.banksSkipped.WithLabelValues(tags["reason"]).Inc()
	case "recompute.snapshot.stale":
		m.staleSnapshots.Inc()
	case "recompute.shared":
		m.sharedRecomputes.Inc()
	case "queue.enqueued":
		m.jobsEnqueued.WithLabelValues(tags["trigger"], tags["coalesced"]).Inc()
	case "recompute.retry":
		m.retryAttempts.WithLabelValues(tags["trigger"]).Inc()
	case "tag.mutation":
		if action := tags["action"]; action != "" {
			m.tagMutations.WithLabelValues(action).Inc()
		}
	case "transaction.edit":
		if kind := tags["kind"]; kind != "" {
			m.transactionEdits.WithLabelValues(kind).Inc()
		}
	case "scheduler.task":
		m.scheduledTaskResults.WithLabelValues(tags["task"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "recompute.duration":
		m.recomputeDuration.Observe(float64(duration.Milliseconds()))
	case "import.duration":
		m.importDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "recompute.transactions":
		m.recomputeTxns.WithLabelValues(tags["outcome"]).Add(value)
	case "import.rows":
		m.importRows.WithLabelValues(tags["status"]).Add(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "queue.depth":
		if status := tags["status"]; status != "" {
			m.queueDepth.WithLabelValues(status).Set(value)
		}
	}
}
