// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const namespace = "gsc"

var (
	webhookAdmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "admissions_total",
			Help:      "Inbound webhook attempts by outcome and rejection reason",
		},
		[]string{"outcome", "reason"},
	)

	webhookAuditDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "audit_dropped_total",
			Help:      "Webhook audit entries not persisted because the write queue was full",
		},
	)

	orderTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Purchase order status transitions",
		},
		[]string{"status"},
	)

	settlementCredits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "credited_grams_total",
			Help:      "Grams credited to MPGW wallets by the settlement guard",
		},
	)

	reconciliationDivergence = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "divergence_percent",
			Help:      "Last measured divergence between claims and backing",
		},
		[]string{"check"},
	)

	reconciliationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "runs_total",
			Help:      "Reconciliation runs by trigger and result",
		},
		[]string{"trigger", "result"},
	)

	notifierDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "deliveries_total",
			Help:      "Outbound notifications by event and success",
		},
		[]string{"event", "success"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// WebhookAdmitted counts a webhook that passed the gateway.
func WebhookAdmitted(duplicate bool) {
	outcome := "allowed"
	if duplicate {
		outcome = "duplicate"
	}
	webhookAdmissions.WithLabelValues(outcome, "").Inc()
}

// WebhookRejected counts a webhook refused by the gateway.
func WebhookRejected(reason string) {
	webhookAdmissions.WithLabelValues("rejected", reason).Inc()
}

// WebhookAuditDropped counts an audit entry skipped by the persistence queue.
func WebhookAuditDropped() {
	webhookAuditDropped.Inc()
}

// OrderTransitioned counts an order entering status.
func OrderTransitioned(status string) {
	orderTransitions.WithLabelValues(status).Inc()
}

// GramsCredited adds to the settlement credit counter.
func GramsCredited(grams decimal.Decimal) {
	settlementCredits.Add(grams.InexactFloat64())
}

// ObserveDivergence records the latest divergence percentage for a check.
func ObserveDivergence(check string, pct decimal.Decimal) {
	reconciliationDivergence.WithLabelValues(check).Set(pct.InexactFloat64())
}

// ReconciliationRun counts a finished run.
func ReconciliationRun(trigger, result string) {
	reconciliationRuns.WithLabelValues(trigger, result).Inc()
}

// NotificationDelivered counts an outbound notification attempt.
func NotificationDelivered(event string, success bool) {
	notifierDeliveries.WithLabelValues(event, strconv.FormatBool(success)).Inc()
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	httpRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
