package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WebhookEventType is a custodian lifecycle notification.
type WebhookEventType string

const (
	EventOrderConfirmed    WebhookEventType = "order.confirmed"
	EventBarAllocated      WebhookEventType = "bar.allocated"
	EventCertificateIssued WebhookEventType = "certificate.issued"
	EventOrderFulfilled    WebhookEventType = "order.fulfilled"
	EventOrderCancelled    WebhookEventType = "order.cancelled"
)

// Valid reports whether e is one of the custodian's event types.
func (e WebhookEventType) Valid() bool {
	switch e {
	case EventOrderConfirmed, EventBarAllocated, EventCertificateIssued, EventOrderFulfilled, EventOrderCancelled:
		return true
	}
	return false
}

// BarData describes one allocated bar in an event payload.
type BarData struct {
	BarID         string           `json:"barId"`
	SerialNumber  string           `json:"serialNumber"`
	WeightGrams   *decimal.Decimal `json:"weightGrams"`
	Purity        *decimal.Decimal `json:"purity"`
	Mint          string           `json:"mint"`
	VaultLocation string           `json:"vaultLocation"`
}

// EventData is the union of fields the custodian sends across event types.
type EventData struct {
	BarData
	WingoldOrderID    string           `json:"wingoldOrderId"`
	UserID            string           `json:"userId"`
	BarSize           string           `json:"barSize"`
	BarCount          *int             `json:"barCount"`
	TotalGrams        *decimal.Decimal `json:"totalGrams"`
	GoldGrams         *decimal.Decimal `json:"goldGrams"`
	USDAmount         *decimal.Decimal `json:"usdAmount"`
	Bars              []BarData        `json:"bars"`
	CertificateNumber string           `json:"certificateNumber"`
	CertificateType   string           `json:"certificateType"`
	Reason            string           `json:"reason"`
}

// InboundEvent is the custodian webhook body.
type InboundEvent struct {
	Event     WebhookEventType `json:"event"`
	OrderID   string           `json:"orderId"`
	Timestamp json.RawMessage  `json:"timestamp,omitempty"`
	Data      EventData        `json:"data"`
}

// subject distinguishes repeated events of the same type for one order:
// each bar.allocated carries its own serial, each certificate its number.
func (e *InboundEvent) subject() string {
	switch e.Event {
	case EventBarAllocated:
		return e.Data.SerialNumber
	case EventCertificateIssued:
		return e.Data.CertificateNumber
	}
	return ""
}

// IdempotencyKey is orderReference:eventType, suffixed with the bar serial or
// certificate number for events that legitimately repeat per order.
func (e *InboundEvent) IdempotencyKey() string {
	key := e.OrderID + ":" + string(e.Event)
	if s := e.subject(); s != "" {
		key += ":" + s
	}
	return key
}

// DeclaredGrams lists every gram quantity the payload declares.
func (e *InboundEvent) DeclaredGrams() []decimal.Decimal {
	var out []decimal.Decimal
	for _, v := range []*decimal.Decimal{e.Data.GoldGrams, e.Data.TotalGrams, e.Data.WeightGrams} {
		if v != nil {
			out = append(out, *v)
		}
	}
	for _, b := range e.Data.Bars {
		if b.WeightGrams != nil {
			out = append(out, *b.WeightGrams)
		}
	}
	return out
}

// DeclaredUSD returns the USD amount, if any.
func (e *InboundEvent) DeclaredUSD() *decimal.Decimal {
	return e.Data.USDAmount
}

// AllocatedBars returns the bars carried by the event: the single bar of a
// bar.allocated, or the list of an order.fulfilled.
func (e *InboundEvent) AllocatedBars() []BarData {
	if e.Event == EventBarAllocated {
		return []BarData{e.Data.BarData}
	}
	return e.Data.Bars
}

// WebhookRejection is the gateway's refusal of an inbound webhook.
type WebhookRejection struct {
	HTTPStatus int
	Reason     string
	RetryAfter time.Duration
}

func (r *WebhookRejection) Error() string {
	return fmt.Sprintf("webhook rejected (%d): %s", r.HTTPStatus, r.Reason)
}

// WebhookAuditEntry records one inbound webhook attempt, allowed or blocked.
type WebhookAuditEntry struct {
	ID             uuid.UUID `json:"id"`
	ReceivedAt     time.Time `json:"received_at"`
	EventType      string    `json:"event_type"`
	OrderReference string    `json:"order_reference"`
	SourceIP       string    `json:"source_ip"`
	SignatureValid bool      `json:"signature_valid"`
	Blocked        bool      `json:"blocked"`
	Reason         string    `json:"reason,omitempty"`
}

// OutboundDeliveryLog records one notification attempt to a requester.
type OutboundDeliveryLog struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"order_id"`
	Event        string    `json:"event"`
	URL          string    `json:"url"`
	Payload      string    `json:"payload"`
	HTTPStatus   *int      `json:"http_status,omitempty"`
	ResponseBody *string   `json:"response_body,omitempty"`
	Success      bool      `json:"success"`
	Error        *string   `json:"error,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderSource is either a KnownOrder found locally or an InferredOrder
// reconstructed from a webhook payload.
type OrderSource interface {
	isOrderSource()
}

// KnownOrder wraps an order that exists in the local ledger.
type KnownOrder struct {
	Order *PurchaseOrder
}

// InferredOrder is a strictly validated order reconstructed from an event.
type InferredOrder struct {
	Reference        string
	CustodianOrderID string
	UserID           uuid.UUID
	BarSize          BarSize
	BarCount         int
	TotalGrams       decimal.Decimal
	USDAmount        decimal.Decimal
	VaultLocation    string
}

func (KnownOrder) isOrderSource()    {}
func (InferredOrder) isOrderSource() {}

// InferOrder validates that ev carries a complete, internally consistent
// order description. Every problem is reported; nothing is defaulted.
func InferOrder(ev *InboundEvent) (*InferredOrder, error) {
	if ev.Event != EventBarAllocated && ev.Event != EventOrderFulfilled {
		return nil, fmt.Errorf("event %s cannot create an order", ev.Event)
	}
	var problems []string
	d := ev.Data

	userID, err := uuid.Parse(d.UserID)
	if err != nil || userID == uuid.Nil || userID.String() != d.UserID {
		problems = append(problems, "userId must be a canonical UUID")
	}
	size, err := ParseBarSize(d.BarSize)
	if err != nil {
		problems = append(problems, "barSize must be one of 1g, 10g, 100g, 1kg")
	}
	if d.BarCount == nil || *d.BarCount <= 0 {
		problems = append(problems, "barCount must be positive")
	}
	if d.TotalGrams == nil || !d.TotalGrams.IsPositive() {
		problems = append(problems, "totalGrams must be positive")
	}
	if d.USDAmount == nil || !d.USDAmount.IsPositive() {
		problems = append(problems, "usdAmount must be positive")
	}
	if len(problems) == 0 && !d.TotalGrams.Equal(ExpectedGrams(size, *d.BarCount)) {
		problems = append(problems, "totalGrams does not match barCount × barSize")
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(problems, "; "))
	}

	return &InferredOrder{
		Reference:        ev.OrderID,
		CustodianOrderID: d.WingoldOrderID,
		UserID:           userID,
		BarSize:          size,
		BarCount:         *d.BarCount,
		TotalGrams:       *d.TotalGrams,
		USDAmount:        *d.USDAmount,
		VaultLocation:    d.VaultLocation,
	}, nil
}

// Materialize builds the confirmed order record for an inferred order.
func (i *InferredOrder) Materialize(at time.Time) *PurchaseOrder {
	o := &PurchaseOrder{
		ID:                     uuid.New(),
		ExternalReference:      i.Reference,
		UserID:                 i.UserID,
		BarSize:                i.BarSize,
		BarCount:               i.BarCount,
		TotalGrams:             i.TotalGrams,
		USDAmount:              i.USDAmount,
		PricePerGram:           i.USDAmount.Div(i.TotalGrams).Round(4),
		PreferredVaultLocation: i.VaultLocation,
		Origin:                 OrderOriginInferred,
		Status:                 OrderStatusConfirmed,
		SubmittedAt:            &at,
		ConfirmedAt:            &at,
		CreatedAt:              at,
		UpdatedAt:              at,
	}
	if i.CustodianOrderID != "" {
		id := i.CustodianOrderID
		o.CustodianOrderID = &id
	}
	if i.VaultLocation != "" {
		v := i.VaultLocation
		o.VaultLocation = &v
	}
	return o
}
