package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited administrative action.
type AuditAction string

const (
	AuditActionCreateOrder        AuditAction = "CREATE_ORDER"
	AuditActionApproveOrder       AuditAction = "APPROVE_ORDER"
	AuditActionRejectOrder        AuditAction = "REJECT_ORDER"
	AuditActionCancelOrder        AuditAction = "CANCEL_ORDER"
	AuditActionApproveSettlement  AuditAction = "APPROVE_SETTLEMENT"
	AuditActionRejectSettlement   AuditAction = "REJECT_SETTLEMENT"
	AuditActionRequestConversion  AuditAction = "REQUEST_CONVERSION"
	AuditActionApproveConversion  AuditAction = "APPROVE_CONVERSION"
	AuditActionRejectConversion   AuditAction = "REJECT_CONVERSION"
	AuditActionCashLedgerEntry    AuditAction = "CASH_LEDGER_ENTRY"
	AuditActionRunReconciliation  AuditAction = "RUN_RECONCILIATION"
	AuditActionResolveAlert       AuditAction = "RESOLVE_ALERT"
	AuditActionInferenceRejected  AuditAction = "ORDER_INFERENCE_REJECTED"
	AuditActionInferredOrderAdded AuditAction = "ORDER_INFERRED"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Outcome      string      `json:"outcome"`           // success, rejected
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}

// TrailStatus is the state of a cross-system settlement trail record.
type TrailStatus string

const (
	TrailOpen      TrailStatus = "open"
	TrailCompleted TrailStatus = "completed"
	TrailCancelled TrailStatus = "cancelled"
)

// TrailEvent is one step in a settlement trail.
type TrailEvent struct {
	At     time.Time `json:"at"`
	Kind   string    `json:"kind"`
	Actor  string    `json:"actor,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

// SettlementTrail is the optional cross-system audit record for an order.
type SettlementTrail struct {
	ID        uuid.UUID    `json:"id"`
	OrderID   uuid.UUID    `json:"order_id"`
	Status    TrailStatus  `json:"status"`
	Events    []TrailEvent `json:"events"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Append adds an event and bumps UpdatedAt.
func (t *SettlementTrail) Append(kind, actor, detail string, at time.Time) {
	t.Events = append(t.Events, TrailEvent{At: at, Kind: kind, Actor: actor, Detail: detail})
	t.UpdatedAt = at
}
