package ports

import (
	"context"
	"errors"
	"time"

	"gold-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks
//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// --- Adapter Ports ---

// ReplayStore remembers processed webhook idempotency keys.
type ReplayStore interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string, ttl time.Duration) error
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// RateLimiter is a fixed-window request counter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// ErrLockHeld is returned by RunLocker when another holder owns the lock.
var ErrLockHeld = errors.New("lock held by another instance")

// Releaser releases an acquired lock.
type Releaser interface {
	Release(ctx context.Context) error
}

// RunLocker provides a cross-instance mutual exclusion lock.
type RunLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (Releaser, error)
}

// CustodianOrderRequest is the fulfillment request sent to the custodian.
type CustodianOrderRequest struct {
	Reference              string
	UserID                 uuid.UUID
	BarSize                domain.BarSize
	BarCount               int
	TotalGrams             decimal.Decimal
	USDAmount              decimal.Decimal
	PreferredVaultLocation string
	CallbackURL            string
}

// CustodianOrderReceipt is the custodian's acknowledgement of a submission.
type CustodianOrderReceipt struct {
	CustodianOrderID string
	Status           string
}

// CustodianClient talks to the external vault custodian.
type CustodianClient interface {
	SubmitOrder(ctx context.Context, req CustodianOrderRequest) (*CustodianOrderReceipt, error)
	CancelOrder(ctx context.Context, custodianOrderID string, reason string) error
}

// PriceOracle provides the current gold spot price.
type PriceOracle interface {
	SpotPricePerGram(ctx context.Context) (decimal.Decimal, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	CanonicalString(timestamp string, body []byte) string
}

// CertificateSigner signs certificate payloads with a per-type key.
type CertificateSigner interface {
	Sign(certType domain.CertificateType, payload []byte) (string, error)
	Verify(certType domain.CertificateType, payload []byte, signature string) bool
}

// TokenService handles admin JWT operations.
type TokenService interface {
	Generate(actorID uuid.UUID, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	ActorID uuid.UUID
	Role    string
}

// AuditService records administrative actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// WebhookAuditService records every inbound webhook attempt.
type WebhookAuditService interface {
	Record(ctx context.Context, entry domain.WebhookAuditEntry)
	Recent(limit int) []domain.WebhookAuditEntry
}

// Notifier delivers signed lifecycle notifications to the order requester.
// Delivery failures are logged and never returned.
type Notifier interface {
	Notify(ctx context.Context, order *domain.PurchaseOrder, event domain.WebhookEventType, data any)
}

// --- Service Ports (Business Logic) ---

// AdmitRequest is one raw inbound webhook.
type AdmitRequest struct {
	RawBody   []byte
	Signature string
	Timestamp string
	SourceIP  string
}

// AdmittedPayload is a webhook that passed every gateway check.
type AdmittedPayload struct {
	Event          domain.InboundEvent
	IdempotencyKey string
	Duplicate      bool
	DevMode        bool
}

// WebhookGateway admits or rejects inbound custodian webhooks.
type WebhookGateway interface {
	// Admit returns *domain.WebhookRejection as the error on refusal.
	Admit(ctx context.Context, req AdmitRequest) (*AdmittedPayload, error)
	MarkProcessed(ctx context.Context, idempotencyKey string) error
}

// CreateOrderRequest holds validated input for a purchase intent.
type CreateOrderRequest struct {
	UserID                 uuid.UUID
	BarSize                domain.BarSize
	BarCount               int
	TotalGrams             *decimal.Decimal // optional; must equal barCount × size
	PreferredVaultLocation string
	CallbackURL            *string
	ActorID                uuid.UUID
}

// OrderDetail is an order with its physical evidence.
type OrderDetail struct {
	Order        *domain.PurchaseOrder
	Bars         []domain.BarLot
	Certificates []domain.Certificate
	Holdings     []domain.VaultHolding
}

// EventOutcome describes what the ledger did with an inbound event.
type EventOutcome struct {
	OrderID  uuid.UUID
	Status   domain.OrderStatus
	Applied  bool
	Inferred bool
}

// OrderService is the purchase order ledger.
type OrderService interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.PurchaseOrder, error)
	ApproveOrder(ctx context.Context, orderID, actorID uuid.UUID) (*domain.PurchaseOrder, error)
	RejectOrder(ctx context.Context, orderID, actorID uuid.UUID, reason string) (*domain.PurchaseOrder, error)
	CancelOrder(ctx context.Context, orderID, actorID uuid.UUID, reason string) (*domain.PurchaseOrder, error)
	HandleEvent(ctx context.Context, ev *domain.InboundEvent) (*EventOutcome, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderDetail, error)
	ListOrders(ctx context.Context, params OrderListParams) ([]domain.PurchaseOrder, int64, error)
}

// CreditResult is the outcome of a successful settlement.
type CreditResult struct {
	OrderID        uuid.UUID
	WalletID       uuid.UUID
	TransactionID  uuid.UUID
	CreditedGrams  decimal.Decimal
	AvailableGrams decimal.Decimal
	Certificates   []domain.Certificate
}

// SettlementService is the gate between physical evidence and digital credit.
type SettlementService interface {
	ApproveAndCredit(ctx context.Context, orderID, actorID uuid.UUID) (*CreditResult, error)
	RejectSettlement(ctx context.Context, orderID, actorID uuid.UUID, reason string) (*domain.PurchaseOrder, error)
}

// AppendEntryRequest is one cash ledger movement. Amount is a positive
// magnitude; Direction is required for adjustments and must match the type
// otherwise.
type AppendEntryRequest struct {
	Type         domain.CashEntryType
	Amount       decimal.Decimal
	Direction    domain.LedgerDirection
	ConversionID *uuid.UUID
	ActorID      *uuid.UUID
	Note         string
}

// CashLedgerService is the append-only cash safety ledger.
type CashLedgerService interface {
	AppendEntry(ctx context.Context, req AppendEntryRequest) (*domain.CashLedgerEntry, error)
	AppendEntryTx(ctx context.Context, tx pgx.Tx, req AppendEntryRequest) (*domain.CashLedgerEntry, error)
	PostManualEntry(ctx context.Context, req AppendEntryRequest) (*domain.CashLedgerEntry, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
	ListEntries(ctx context.Context, afterSequence int64, limit int) ([]domain.CashLedgerEntry, error)
	VerifyChain(ctx context.Context) (decimal.Decimal, error)
}

// ConversionRequest asks to move grams between wallet classes.
type ConversionRequest struct {
	UserID    uuid.UUID
	Direction domain.ConversionDirection
	Grams     decimal.Decimal
	ActorID   uuid.UUID
}

// ConversionService manages MPGW/FPGW conversions.
type ConversionService interface {
	RequestConversion(ctx context.Context, req ConversionRequest) (*domain.WalletConversion, error)
	ApproveConversion(ctx context.Context, conversionID, actorID uuid.UUID, overridePrice *decimal.Decimal) (*domain.WalletConversion, error)
	RejectConversion(ctx context.Context, conversionID, actorID uuid.UUID, reason string) (*domain.WalletConversion, error)
	ListConversions(ctx context.Context, status *domain.ConversionStatus, limit int) ([]domain.WalletConversion, error)
}

// CheckResult is one reconciliation comparison.
type CheckResult struct {
	Type       domain.AlertType
	Divergence domain.Divergence
	Severity   domain.AlertSeverity
	AlertID    *uuid.UUID
	Suppressed bool
}

// RunReport summarises a reconciliation run.
type RunReport struct {
	Trigger    string
	StartedAt  time.Time
	FinishedAt time.Time
	Checks     []CheckResult
}

// ReconciliationService compares digital claims against their backing.
type ReconciliationService interface {
	Run(ctx context.Context, trigger string) (*RunReport, error)
	ResolveAlert(ctx context.Context, alertID, actorID uuid.UUID, notes string) (*domain.ReconciliationAlert, error)
	ListAlerts(ctx context.Context, unresolvedOnly bool, limit int) ([]domain.ReconciliationAlert, error)
}
