package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reconciliation results used as the "result" label.
const (
	ResultCreated   = "created"
	ResultUpdated   = "updated"
	ResultUnchanged = "unchanged"
	ResultRejected  = "rejected"
)

// Metrics tracks reconciliation outcomes and the audit pipeline.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Reconciliations   *prometheus.CounterVec
	ReconcileDuration *prometheus.HistogramVec
	Matches           *prometheus.CounterVec
	AuditWritten      prometheus.Counter
	AuditDropped      prometheus.Counter
}

// New registers the intake metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Reconciliations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_reconciliations_total",
			Help: "Records reconciled, by result, error kind and integration type",
		}, []string{"result", "error_kind", "integration_type"}),
		ReconcileDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "intake_reconcile_duration_seconds",
			Help:    "Duration of a single record reconciliation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"result"}),
		Matches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_matches_total",
			Help: "Matcher hits by strategy",
		}, []string{"strategy"}),
		AuditWritten: f.NewCounter(prometheus.CounterOpts{
			Name: "intake_audit_entries_written_total",
			Help: "Integration responses written to the audit log",
		}),
		AuditDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "intake_audit_entries_dropped_total",
			Help: "Integration responses dropped because the audit buffer was full or the write failed",
		}),
	}
}

// ObserveReconcile records one reconciliation. Call with time.Now() taken at
// the start of the operation.
func (m *Metrics) ObserveReconcile(result, errorKind, integrationType string, start time.Time) {
	if m == nil {
		return
	}
	m.Reconciliations.WithLabelValues(result, errorKind, integrationType).Inc()
	m.ReconcileDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}

// IncrementMatch records a matcher hit.
func (m *Metrics) IncrementMatch(strategy string) {
	if m == nil {
		return
	}
	m.Matches.WithLabelValues(strategy).Inc()
}

func (m *Metrics) IncrementAuditWritten() {
	if m == nil {
		return
	}
	m.AuditWritten.Inc()
}

func (m *Metrics) IncrementAuditDropped() {
	if m == nil {
		return
	}
	m.AuditDropped.Inc()
}
