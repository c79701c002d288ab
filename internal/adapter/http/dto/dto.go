package dto

import (
	"gold-settlement/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the request body for a purchase intent created by an
// administrator on a user's behalf.
type CreateOrderRequest struct {
	UserID                 string           `json:"user_id" binding:"required,uuid"`
	BarSize                string           `json:"bar_size" binding:"required,max=8,safe_id"`
	BarCount               int              `json:"bar_count" binding:"required,gt=0,lte=10000"`
	TotalGrams             *decimal.Decimal `json:"total_grams,omitempty"`
	PreferredVaultLocation string           `json:"preferred_vault_location" binding:"omitempty,max=100"`
	CallbackURL            *string          `json:"callback_url,omitempty" binding:"omitempty,max=2048,safe_url"`
}

// ReasonRequest carries an optional free-text reason for a rejection or
// cancellation.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ConversionRequest is the request body for an MPGW/FPGW conversion.
type ConversionRequest struct {
	UserID    string          `json:"user_id" binding:"required,uuid"`
	Direction string          `json:"direction" binding:"required,oneof=MPGW_TO_FPGW FPGW_TO_MPGW"`
	Grams     decimal.Decimal `json:"grams"`
}

// ApproveConversionRequest optionally overrides the execution price.
type ApproveConversionRequest struct {
	OverridePricePerGram *decimal.Decimal `json:"override_price_per_gram,omitempty"`
}

// CashEntryRequest is the request body for a manual cash ledger entry.
type CashEntryRequest struct {
	EntryType string          `json:"entry_type" binding:"required,oneof=manual_deposit withdrawal adjustment"`
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"direction" binding:"omitempty,oneof=credit debit"`
	Note      string          `json:"note" binding:"max=500"`
}

// ResolveAlertRequest is the request body for resolving a reconciliation alert.
type ResolveAlertRequest struct {
	Notes string `json:"notes" binding:"required,max=1000"`
}

// OrderDetailResponse is an order with its physical evidence.
type OrderDetailResponse struct {
	Order        *domain.PurchaseOrder `json:"order"`
	Bars         []domain.BarLot       `json:"bars"`
	Certificates []domain.Certificate  `json:"certificates"`
	Holdings     []domain.VaultHolding `json:"holdings"`
}

// OrderListResponse wraps a paginated order list.
type OrderListResponse struct {
	Items      []domain.PurchaseOrder `json:"items"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	TotalPages int                    `json:"total_pages"`
}

// CreditResponse is the result of a settlement approval.
type CreditResponse struct {
	OrderID        string               `json:"order_id"`
	WalletID       string               `json:"wallet_id"`
	TransactionID  string               `json:"transaction_id"`
	CreditedGrams  decimal.Decimal      `json:"credited_grams"`
	AvailableGrams decimal.Decimal      `json:"available_grams"`
	Certificates   []domain.Certificate `json:"certificates"`
}

// CashLedgerResponse is a page of the cash ledger with the current balance.
type CashLedgerResponse struct {
	Balance decimal.Decimal          `json:"balance"`
	Entries []domain.CashLedgerEntry `json:"entries"`
}

// CheckResponse is one reconciliation comparison.
type CheckResponse struct {
	Type          domain.AlertType     `json:"type"`
	Severity      domain.AlertSeverity `json:"severity"`
	ExpectedValue decimal.Decimal      `json:"expected_value"`
	ActualValue   decimal.Decimal      `json:"actual_value"`
	Difference    decimal.Decimal      `json:"difference"`
	DifferencePct decimal.Decimal      `json:"difference_pct"`
	AlertID       *string              `json:"alert_id,omitempty"`
	Suppressed    bool                 `json:"suppressed,omitempty"`
}

// RunReportResponse summarises a reconciliation run.
type RunReportResponse struct {
	Trigger    string          `json:"trigger"`
	StartedAt  string          `json:"started_at"`
	FinishedAt string          `json:"finished_at"`
	Checks     []CheckResponse `json:"checks"`
}
