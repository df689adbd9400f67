package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/customscore/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Declaration metrics
	DeclarationsSubmitted *prometheus.CounterVec
	DeclarationsAccepted  prometheus.Counter
	Validations           *prometheus.CounterVec
	RuleFailures          *prometheus.CounterVec

	// Guarantee metrics
	GuaranteeDebits     prometheus.Counter
	GuaranteeRejections *prometheus.CounterVec
	GuaranteeReleases   prometheus.Counter
	GuaranteeCredits    prometheus.Counter
	GuaranteeAmount     prometheus.Histogram
	LedgerDuration      *prometheus.HistogramVec

	// MRN metrics
	MRNUsageRecorded   prometheus.Counter
	MRNOverConsumption prometheus.Counter

	// Traceability metrics
	TraceLinksRecorded prometheus.Counter
	TraversalLinks     *prometheus.HistogramVec
	TraversalTruncated prometheus.Counter
	DutyAllocations    prometheus.Counter
	DutyAnomalies      *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBErrors *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Outbox metrics
	EventsPublished *prometheus.CounterVec

	// Audit metrics
	AuditLogsCreated *prometheus.CounterVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates and registers all metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		DeclarationsSubmitted: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customs_declarations_submitted_total",
				Help: "Total declaration submissions by outcome",
			},
			[]string{"outcome"},
		),
		DeclarationsAccepted: f.NewCounter(prometheus.CounterOpts{
			Name: "customs_declarations_accepted_total",
			Help: "Total declarations cleared",
		}),
		Validations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customs_validations_total",
				Help: "Total validation runs by result",
			},
			[]string{"result"},
		),
		RuleFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customs_rule_failures_total",
				Help: "Total rule errors by rule code",
			},
			[]string{"rule"},
		),

		GuaranteeDebits: f.NewCounter(prometheus.CounterOpts{
			Name: "customs_guarantee_debits_total",
			Help: "Total guarantee debits posted",
		}),
		GuaranteeRejections: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customs_guarantee_rejections_total",
				Help: "Total rejected guarantee operations by reason",
			},
			[]string{"reason"},
		),
		GuaranteeReleases: f.NewCounter(prometheus.CounterOpts{
			Name: "customs_guarantee_releases_total",
			Help: "Total guarantee debits released",
		}),
		GuaranteeCredits: f.NewCounter(prometheus.CounterOpts{
			Name: "customs_guarantee_credits_total",
			Help: "Total standalone guarantee credits",
		}),
		GuaranteeAmount: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "customs_guarantee_debit_amount",
			Help:    "Guarantee debit amounts",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
		}),
		LedgerDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customs_ledger_operation_duration_seconds",
				Help:    "Duration of guarantee ledger operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		MRNUsageRecorded: f.NewCounter(prometheus.CounterOpts{
			Name: "customs_mrn_usage_recorded_total",
			Help: "Total MRN usage increments",
		}),
		MRNOverConsumption: f.NewCounter(prometheus.CounterOpts{
			Name: "customs_mrn_over_consumption_total",
			Help: "Total usage increments that pushed an MRN below zero remaining",
		}),

		TraceLinksRecorded: f.NewCounter(prometheus.CounterOpts{
			Name: "customs_trace_links_recorded_total",
			Help: "Total trace links recorded",
		}),
		TraversalLinks: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customs_trace_traversal_links",
				Help:    "Links returned by full-path traversals",
				Buckets: []float64{1, 10, 100, 1000, 10000},
			},
			[]string{"direction"},
		),
		TraversalTruncated: f.NewCounter(prometheus.CounterOpts{
			Name: "customs_trace_traversal_truncated_total",
			Help: "Total traversals stopped by the expansion limit",
		}),
		DutyAllocations: f.NewCounter(prometheus.CounterOpts{
			Name: "customs_duty_allocations_total",
			Help: "Total duty allocation reports computed",
		}),
		DutyAnomalies: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customs_duty_anomalies_total",
				Help: "Total anomalies surfaced by duty allocation",
			},
			[]string{"anomaly"},
		),

		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customs_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customs_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		DBErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customs_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		RedisOperations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customs_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customs_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		EventsPublished: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customs_outbox_events_published_total",
				Help: "Total outbox events published by type",
			},
			[]string{"event_type"},
		),

		AuditLogsCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customs_audit_logs_total",
				Help: "Total audit logs created",
			},
			[]string{"action", "status"},
		),
	}
}

// ObserveValidation records the outcome of a declaration validation run.
func (m *Metrics) ObserveValidation(result *domain.ValidationResult) {
	label := "valid"
	if !result.Valid {
		label = "invalid"
	}
	m.Validations.WithLabelValues(label).Inc()

	for _, o := range result.Outcomes {
		if !o.Passed {
			m.RuleFailures.WithLabelValues(o.RuleCode).Add(float64(o.ErrorCount))
		}
	}
}
