package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionDirection names the source and target wallet classes.
type ConversionDirection string

const (
	ConvertMPGWToFPGW ConversionDirection = "MPGW_TO_FPGW"
	ConvertFPGWToMPGW ConversionDirection = "FPGW_TO_MPGW"
)

// Valid reports whether d is a known direction.
func (d ConversionDirection) Valid() bool {
	return d == ConvertMPGWToFPGW || d == ConvertFPGWToMPGW
}

// LedgerEntry returns the cash ledger entry type and direction produced by
// approving a conversion: locking value into FPGW credits the ledger,
// releasing it debits.
func (d ConversionDirection) LedgerEntry() (CashEntryType, LedgerDirection) {
	if d == ConvertMPGWToFPGW {
		return CashEntryLock, DirectionCredit
	}
	return CashEntryUnlock, DirectionDebit
}

// ConversionStatus is the review state of a conversion request.
type ConversionStatus string

const (
	ConversionPending   ConversionStatus = "pending"
	ConversionCompleted ConversionStatus = "completed"
	ConversionRejected  ConversionStatus = "rejected"
)

// WalletConversion moves value between the two wallet classes.
type WalletConversion struct {
	ID                    uuid.UUID           `json:"id"`
	UserID                uuid.UUID           `json:"user_id"`
	Direction             ConversionDirection `json:"direction"`
	GoldGrams             decimal.Decimal     `json:"gold_grams"`
	SpotPricePerGram      decimal.Decimal     `json:"spot_price_per_gram"`
	LockedValueUSD        decimal.Decimal     `json:"locked_value_usd"`
	FeeUSD                decimal.Decimal     `json:"fee_usd"`
	Status                ConversionStatus    `json:"status"`
	ExecutionPricePerGram *decimal.Decimal    `json:"execution_price_per_gram,omitempty"`
	ExecutionValueUSD     *decimal.Decimal    `json:"execution_value_usd,omitempty"`
	LedgerEntryID         *uuid.UUID          `json:"ledger_entry_id,omitempty"`
	ReviewedBy            *uuid.UUID          `json:"reviewed_by,omitempty"`
	RejectionReason       *string             `json:"rejection_reason,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	ReviewedAt            *time.Time          `json:"reviewed_at,omitempty"`
	CompletedAt           *time.Time          `json:"completed_at,omitempty"`
}

// LedgerPosted is true once the cash ledger entry exists; from then on the
// wallet step is resumed from that entry rather than recomputed.
func (c *WalletConversion) LedgerPosted() bool {
	return c.LedgerEntryID != nil
}

// ExecutionValue prices the conversion at override, or at the request-time
// spot price when override is nil.
func (c *WalletConversion) ExecutionValue(override *decimal.Decimal) (price, value decimal.Decimal) {
	price = c.SpotPricePerGram
	if override != nil {
		price = *override
	}
	return price, c.GoldGrams.Mul(price).Round(2)
}
