package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertType names the reconciliation check that diverged.
type AlertType string

const (
	AlertMPGWExceedsPhysical AlertType = "MPGW_EXCEEDS_PHYSICAL"
	AlertFPGWExceedsCash     AlertType = "FPGW_EXCEEDS_CASH"
)

// AlertSeverity grades a divergence.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

var hundred = decimal.NewFromInt(100)

// SeverityPolicy maps divergence percentages to severities.
type SeverityPolicy struct {
	WarningPct  decimal.Decimal
	CriticalPct decimal.Decimal
}

// DefaultSeverityPolicy is 5 % warning, 10 % critical.
func DefaultSeverityPolicy() SeverityPolicy {
	return SeverityPolicy{WarningPct: decimal.NewFromInt(5), CriticalPct: decimal.NewFromInt(10)}
}

// Classify returns critical above CriticalPct, warning above WarningPct,
// info otherwise.
func (p SeverityPolicy) Classify(pct decimal.Decimal) AlertSeverity {
	switch {
	case pct.GreaterThan(p.CriticalPct):
		return SeverityCritical
	case pct.GreaterThan(p.WarningPct):
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// Divergence compares claims (actual) against their backing (expected).
type Divergence struct {
	Expected   decimal.Decimal
	Actual     decimal.Decimal
	Difference decimal.Decimal
	Percentage decimal.Decimal
}

// Exceeds is true when claims are larger than their backing.
func (d Divergence) Exceeds() bool {
	return d.Actual.GreaterThan(d.Expected)
}

// MeasureDivergence computes the shortfall of backing relative to claims.
// The percentage is expressed against the claims, so 110 g of claims over
// 100 g of bars is a 9.09 % divergence.
func MeasureDivergence(backing, claims decimal.Decimal) Divergence {
	d := Divergence{
		Expected:   backing,
		Actual:     claims,
		Difference: claims.Sub(backing).Abs(),
		Percentage: decimal.Zero,
	}
	if claims.IsPositive() {
		d.Percentage = d.Difference.Div(claims).Mul(hundred).Round(4)
	}
	return d
}

// AlertFingerprint identifies a metric snapshot for duplicate suppression.
func AlertFingerprint(t AlertType, expected, actual decimal.Decimal) string {
	return fmt.Sprintf("%s|%s|%s", t, expected.String(), actual.String())
}

// ReconciliationAlert is one detected divergence. Only the resolution fields
// change after creation.
type ReconciliationAlert struct {
	ID              uuid.UUID       `json:"id"`
	Type            AlertType       `json:"type"`
	Severity        AlertSeverity   `json:"severity"`
	ExpectedValue   decimal.Decimal `json:"expected_value"`
	ActualValue     decimal.Decimal `json:"actual_value"`
	Difference      decimal.Decimal `json:"difference"`
	DifferencePct   decimal.Decimal `json:"difference_pct"`
	Fingerprint     string          `json:"fingerprint"`
	Resolved        bool            `json:"resolved"`
	ResolvedBy      *uuid.UUID      `json:"resolved_by,omitempty"`
	ResolutionNotes *string         `json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewAlert builds an unresolved alert from a divergence.
func NewAlert(t AlertType, d Divergence, policy SeverityPolicy, at time.Time) *ReconciliationAlert {
	return &ReconciliationAlert{
		ID:            uuid.New(),
		Type:          t,
		Severity:      policy.Classify(d.Percentage),
		ExpectedValue: d.Expected,
		ActualValue:   d.Actual,
		Difference:    d.Difference,
		DifferencePct: d.Percentage,
		Fingerprint:   AlertFingerprint(t, d.Expected, d.Actual),
		CreatedAt:     at,
	}
}
