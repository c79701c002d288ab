package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletClass is the kind of digital gold claim.
type WalletClass string

const (
	// WalletMPGW floats with the spot price.
	WalletMPGW WalletClass = "MPGW"
	// WalletFPGW is locked at acquisition price and backed by cash.
	WalletFPGW WalletClass = "FPGW"
)

// Wallet holds a user's grams of one class, split by state.
type Wallet struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	Class          WalletClass     `json:"class"`
	AvailableGrams decimal.Decimal `json:"available_grams"`
	PendingGrams   decimal.Decimal `json:"pending_grams"`
	LockedGrams    decimal.Decimal `json:"locked_grams"`
	ReservedGrams  decimal.Decimal `json:"reserved_grams"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TotalClaim sums every state of the wallet.
func (w *Wallet) TotalClaim() decimal.Decimal {
	return w.AvailableGrams.Add(w.PendingGrams).Add(w.LockedGrams).Add(w.ReservedGrams)
}

// NewWallet returns an empty wallet of the given class.
func NewWallet(userID uuid.UUID, class WalletClass, at time.Time) *Wallet {
	return &Wallet{
		ID:             uuid.New(),
		UserID:         userID,
		Class:          class,
		AvailableGrams: decimal.Zero,
		PendingGrams:   decimal.Zero,
		LockedGrams:    decimal.Zero,
		ReservedGrams:  decimal.Zero,
		CreatedAt:      at,
		UpdatedAt:      at,
	}
}

// WalletTransactionType classifies balance movements.
type WalletTransactionType string

const (
	WalletTxPhysicalCredit WalletTransactionType = "physical_credit"
	WalletTxConversionOut  WalletTransactionType = "conversion_out"
	WalletTxConversionIn   WalletTransactionType = "conversion_in"
)

// WalletTransaction is the ledger record of one wallet mutation.
type WalletTransaction struct {
	ID           uuid.UUID             `json:"id"`
	WalletID     uuid.UUID             `json:"wallet_id"`
	UserID       uuid.UUID             `json:"user_id"`
	Type         WalletTransactionType `json:"type"`
	Grams        decimal.Decimal       `json:"grams"`
	USDValue     decimal.Decimal       `json:"usd_value"`
	PricePerGram decimal.Decimal       `json:"price_per_gram"`
	OrderID      *uuid.UUID            `json:"order_id,omitempty"`
	ConversionID *uuid.UUID            `json:"conversion_id,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// LockBatchStatus tracks whether an FPGW batch still carries locked value.
type LockBatchStatus string

const (
	LockBatchActive   LockBatchStatus = "active"
	LockBatchConsumed LockBatchStatus = "consumed"
)

// LockBatch is one tranche of FPGW grams locked at a fixed price.
type LockBatch struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	ConversionID     uuid.UUID       `json:"conversion_id"`
	OriginalGrams    decimal.Decimal `json:"original_grams"`
	RemainingGrams   decimal.Decimal `json:"remaining_grams"`
	LockPricePerGram decimal.Decimal `json:"lock_price_per_gram"`
	Status           LockBatchStatus `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// LockedValue is the USD value still locked at the batch price.
func (b *LockBatch) LockedValue() decimal.Decimal {
	return b.RemainingGrams.Mul(b.LockPricePerGram)
}

// Consume takes up to grams from the batch and returns how much was taken.
func (b *LockBatch) Consume(grams decimal.Decimal, at time.Time) decimal.Decimal {
	taken := decimal.Min(grams, b.RemainingGrams)
	b.RemainingGrams = b.RemainingGrams.Sub(taken)
	if b.RemainingGrams.IsZero() {
		b.Status = LockBatchConsumed
	}
	b.UpdatedAt = at
	return taken
}
