package ports

import (
	"context"
	"time"

	"gold-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Repositories return (nil, nil) when a single record is not found.
// Methods accepting pgx.Tx run inside the caller's transaction; the ForUpdate
// variants take a row lock. A nil tx on read methods reads outside any
// transaction.

// OrderRepository persists purchase orders.
type OrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, order *domain.PurchaseOrder) error
	Update(ctx context.Context, tx pgx.Tx, order *domain.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PurchaseOrder, error)
	// GetByReferenceForUpdate matches the platform reference or the
	// custodian's order id.
	GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reference string) (*domain.PurchaseOrder, error)
	List(ctx context.Context, params OrderListParams) ([]domain.PurchaseOrder, int64, error)
}

// OrderListParams holds filter + pagination for listing orders.
type OrderListParams struct {
	Status   *domain.OrderStatus
	UserID   *uuid.UUID
	Page     int
	PageSize int
}

// BarRepository persists physical bar lots, certificates and vault holdings.
type BarRepository interface {
	CreateBar(ctx context.Context, tx pgx.Tx, bar *domain.BarLot) error
	GetBarBySerial(ctx context.Context, tx pgx.Tx, serial string) (*domain.BarLot, error)
	ListBarsByOrder(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]domain.BarLot, error)

	CreateCertificate(ctx context.Context, tx pgx.Tx, cert *domain.Certificate) error
	GetCertificateByNumber(ctx context.Context, tx pgx.Tx, number string) (*domain.Certificate, error)
	ListCertificatesByOrder(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]domain.Certificate, error)

	CreateHolding(ctx context.Context, tx pgx.Tx, holding *domain.VaultHolding) error
	ListHoldingsByOrder(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]domain.VaultHolding, error)
	LinkHoldingsToCredit(ctx context.Context, tx pgx.Tx, orderID, creditTxID uuid.UUID) error

	// SumInVaultGrams totals the weight of every bar currently in_vault.
	SumInVaultGrams(ctx context.Context) (decimal.Decimal, error)
}

// WalletRepository persists MPGW/FPGW wallets and their transactions.
type WalletRepository interface {
	// GetOrCreateForUpdate locks the user's wallet of the class, creating an
	// empty one first if none exists.
	GetOrCreateForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID, class domain.WalletClass) (*domain.Wallet, error)
	Get(ctx context.Context, userID uuid.UUID, class domain.WalletClass) (*domain.Wallet, error)
	Update(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	CreateTransaction(ctx context.Context, tx pgx.Tx, wtx *domain.WalletTransaction) error
	// SumClaims totals available+pending+locked+reserved across every wallet of the class.
	SumClaims(ctx context.Context, class domain.WalletClass) (decimal.Decimal, error)
}

// LockBatchRepository persists FPGW lock batches.
type LockBatchRepository interface {
	Create(ctx context.Context, tx pgx.Tx, batch *domain.LockBatch) error
	// ListActiveForUpdate returns the user's active batches, oldest first.
	ListActiveForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]domain.LockBatch, error)
	Update(ctx context.Context, tx pgx.Tx, batch *domain.LockBatch) error
	// SumActiveLockedValue totals remaining_grams × lock_price over active batches.
	SumActiveLockedValue(ctx context.Context) (decimal.Decimal, error)
}

// CashLedgerRepository persists the append-only cash safety ledger.
type CashLedgerRepository interface {
	// AcquireAppendLock serializes appends for the rest of tx.
	AcquireAppendLock(ctx context.Context, tx pgx.Tx) error
	Latest(ctx context.Context, tx pgx.Tx) (*domain.CashLedgerEntry, error)
	Insert(ctx context.Context, tx pgx.Tx, entry *domain.CashLedgerEntry) error
	GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CashLedgerEntry, error)
	// List returns entries with sequence > afterSequence, oldest first.
	List(ctx context.Context, afterSequence int64, limit int) ([]domain.CashLedgerEntry, error)
}

// ConversionRepository persists wallet conversion requests.
type ConversionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, conv *domain.WalletConversion) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletConversion, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletConversion, error)
	Update(ctx context.Context, tx pgx.Tx, conv *domain.WalletConversion) error
	List(ctx context.Context, status *domain.ConversionStatus, limit int) ([]domain.WalletConversion, error)
}

// AlertRepository persists reconciliation alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *domain.ReconciliationAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReconciliationAlert, error)
	FindUnresolvedByFingerprint(ctx context.Context, fingerprint string) (*domain.ReconciliationAlert, error)
	// Resolve sets the resolution fields of an unresolved alert and reports
	// whether a row changed.
	Resolve(ctx context.Context, id, resolvedBy uuid.UUID, notes string, at time.Time) (bool, error)
	List(ctx context.Context, unresolvedOnly bool, limit int) ([]domain.ReconciliationAlert, error)
}

// WebhookAuditRepository persists inbound webhook audit entries.
type WebhookAuditRepository interface {
	Create(ctx context.Context, entry *domain.WebhookAuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]domain.WebhookAuditEntry, error)
}

// DeliveryLogRepository persists outbound notification attempts.
type DeliveryLogRepository interface {
	Create(ctx context.Context, entry *domain.OutboundDeliveryLog) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.OutboundDeliveryLog, error)
}

// TrailRepository persists the optional cross-system settlement trail.
type TrailRepository interface {
	Create(ctx context.Context, tx pgx.Tx, trail *domain.SettlementTrail) error
	GetByOrderForUpdate(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.SettlementTrail, error)
	Update(ctx context.Context, tx pgx.Tx, trail *domain.SettlementTrail) error
}

// AuditRepository persists administrative audit logs.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
