package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BarSize is the custodian's bar category.
type BarSize string

const (
	BarSize1g   BarSize = "1g"
	BarSize10g  BarSize = "10g"
	BarSize100g BarSize = "100g"
	BarSize1kg  BarSize = "1kg"
)

var barSizeGrams = map[BarSize]int64{
	BarSize1g:   1,
	BarSize10g:  10,
	BarSize100g: 100,
	BarSize1kg:  1000,
}

// ParseBarSize accepts the enum values case-insensitively.
func ParseBarSize(s string) (BarSize, error) {
	b := BarSize(strings.ToLower(strings.TrimSpace(s)))
	if !b.Valid() {
		return "", fmt.Errorf("invalid bar size %q", s)
	}
	return b, nil
}

// Valid reports whether b is a known bar category.
func (b BarSize) Valid() bool {
	_, ok := barSizeGrams[b]
	return ok
}

// Grams returns the nominal weight of one bar of this size.
func (b BarSize) Grams() decimal.Decimal {
	return decimal.NewFromInt(barSizeGrams[b])
}

// ExpectedGrams is barCount × gramsPerBarSize.
func ExpectedGrams(size BarSize, barCount int) decimal.Decimal {
	return size.Grams().Mul(decimal.NewFromInt(int64(barCount)))
}

// OrderStatus is the purchase order lifecycle state.
type OrderStatus string

const (
	OrderStatusPending            OrderStatus = "pending"
	OrderStatusSubmitted          OrderStatus = "submitted"
	OrderStatusConfirmed          OrderStatus = "confirmed"
	OrderStatusProcessing         OrderStatus = "processing"
	OrderStatusPartiallyFulfilled OrderStatus = "partially_fulfilled"
	OrderStatusWingoldApproved    OrderStatus = "wingold_approved"
	OrderStatusFulfilled          OrderStatus = "fulfilled"
	OrderStatusCancelled          OrderStatus = "cancelled"
	OrderStatusFailed             OrderStatus = "failed"
)

// orderTransitions lists the forward edges; cancelled and failed are added
// for every non-terminal state in CanTransitionTo.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:            {OrderStatusSubmitted},
	OrderStatusSubmitted:          {OrderStatusConfirmed, OrderStatusProcessing, OrderStatusPartiallyFulfilled},
	OrderStatusConfirmed:          {OrderStatusProcessing, OrderStatusPartiallyFulfilled},
	OrderStatusProcessing:         {OrderStatusPartiallyFulfilled, OrderStatusWingoldApproved},
	OrderStatusPartiallyFulfilled: {OrderStatusProcessing, OrderStatusWingoldApproved},
	OrderStatusWingoldApproved:    {OrderStatusFulfilled},
}

// IsTerminal returns true for fulfilled, cancelled and failed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFulfilled || s == OrderStatusCancelled || s == OrderStatusFailed
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	if s.IsTerminal() {
		return true
	}
	_, ok := orderTransitions[s]
	return ok
}

// AcceptsAllocations reports whether bar allocation events may be applied.
func (s OrderStatus) AcceptsAllocations() bool {
	switch s {
	case OrderStatusSubmitted, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusPartiallyFulfilled:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled || next == OrderStatusFailed {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IllegalTransitionError is returned when a state change is not permitted.
type IllegalTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal order transition %s -> %s", e.From, e.To)
}

// OrderOrigin records how the local order record came into existence.
type OrderOrigin string

const (
	OrderOriginLocal    OrderOrigin = "local"
	OrderOriginInferred OrderOrigin = "inferred_webhook"
)

// PurchaseOrder is one custodian fulfillment request.
type PurchaseOrder struct {
	ID                     uuid.UUID       `json:"id"`
	ExternalReference      string          `json:"external_reference"`
	CustodianOrderID       *string         `json:"custodian_order_id,omitempty"`
	UserID                 uuid.UUID       `json:"user_id"`
	BarSize                BarSize         `json:"bar_size"`
	BarCount               int             `json:"bar_count"`
	TotalGrams             decimal.Decimal `json:"total_grams"`
	USDAmount              decimal.Decimal `json:"usd_amount"`
	PricePerGram           decimal.Decimal `json:"price_per_gram"`
	PreferredVaultLocation string          `json:"preferred_vault_location"`
	VaultLocation          *string         `json:"vault_location,omitempty"`
	CallbackURL            *string         `json:"callback_url,omitempty"`
	Origin                 OrderOrigin     `json:"origin"`
	Status                 OrderStatus     `json:"status"`
	AllocatedBars          int             `json:"allocated_bars"`
	CertificatesIssued     bool            `json:"certificates_issued"`
	ErrorMessage           *string         `json:"error_message,omitempty"`
	ApprovedBy             *uuid.UUID      `json:"approved_by,omitempty"`
	SubmittedAt            *time.Time      `json:"submitted_at,omitempty"`
	ConfirmedAt            *time.Time      `json:"confirmed_at,omitempty"`
	CustodianFulfilledAt   *time.Time      `json:"custodian_fulfilled_at,omitempty"`
	FulfilledAt            *time.Time      `json:"fulfilled_at,omitempty"`
	CancelledAt            *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// GramsConsistent checks totalGrams == barCount × gramsPerBarSize.
func (o *PurchaseOrder) GramsConsistent() bool {
	return o.BarSize.Valid() && o.BarCount > 0 && o.TotalGrams.Equal(ExpectedGrams(o.BarSize, o.BarCount))
}

// ValueOf prices grams at the order's price per gram, rounded to cents.
// Without a recorded price the order amount is returned unchanged.
func (o *PurchaseOrder) ValueOf(grams decimal.Decimal) decimal.Decimal {
	if !o.PricePerGram.IsPositive() {
		return o.USDAmount
	}
	return grams.Mul(o.PricePerGram).Round(2)
}

// AllocationComplete is true once every ordered bar has been allocated.
func (o *PurchaseOrder) AllocationComplete() bool {
	return o.AllocatedBars >= o.BarCount
}

// ReadyForInternalApproval is the gate into wingold_approved: all bars
// allocated, certificates issued and the custodian has reported fulfillment.
func (o *PurchaseOrder) ReadyForInternalApproval() bool {
	return o.AllocationComplete() && o.CertificatesIssued && o.CustodianFulfilledAt != nil
}

// Transition moves the order to next and stamps the lifecycle timestamps.
// Re-entering the current status is a no-op.
func (o *PurchaseOrder) Transition(next OrderStatus, at time.Time) error {
	if o.Status == next {
		return nil
	}
	if !o.Status.CanTransitionTo(next) {
		return &IllegalTransitionError{From: o.Status, To: next}
	}
	o.Status = next
	o.UpdatedAt = at
	switch next {
	case OrderStatusSubmitted:
		o.SubmittedAt = &at
	case OrderStatusConfirmed:
		o.ConfirmedAt = &at
	case OrderStatusFulfilled:
		o.FulfilledAt = &at
	case OrderStatusCancelled:
		o.CancelledAt = &at
	}
	return nil
}

// Fail moves the order to failed, capturing the cause.
func (o *PurchaseOrder) Fail(cause string, at time.Time) error {
	if err := o.Transition(OrderStatusFailed, at); err != nil {
		return err
	}
	o.ErrorMessage = &cause
	return nil
}

// NewReference builds the caller-visible order reference, e.g. WG-20261019-1A2B3C4D.
func NewReference(at time.Time) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("WG-%s-%s", at.UTC().Format("20060102"), id[:8])
}
