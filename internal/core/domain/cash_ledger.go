package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashEntryType is the reason for a cash safety ledger movement.
type CashEntryType string

const (
	CashEntryLock          CashEntryType = "lock"
	CashEntryUnlock        CashEntryType = "unlock"
	CashEntryManualDeposit CashEntryType = "manual_deposit"
	CashEntryWithdrawal    CashEntryType = "withdrawal"
	CashEntryAdjustment    CashEntryType = "adjustment"
)

// LedgerDirection is credit (adds to the balance) or debit.
type LedgerDirection string

const (
	DirectionCredit LedgerDirection = "credit"
	DirectionDebit  LedgerDirection = "debit"
)

// ErrNegativeCashBalance is returned when an entry would overdraw the ledger.
var ErrNegativeCashBalance = errors.New("cash safety ledger balance would become negative")

// FixedDirection returns the direction implied by the entry type.
// Adjustments may go either way and return false.
func (t CashEntryType) FixedDirection() (LedgerDirection, bool) {
	switch t {
	case CashEntryLock, CashEntryManualDeposit:
		return DirectionCredit, true
	case CashEntryUnlock, CashEntryWithdrawal:
		return DirectionDebit, true
	}
	return "", false
}

// Valid reports whether t is a known entry type.
func (t CashEntryType) Valid() bool {
	if _, ok := t.FixedDirection(); ok {
		return true
	}
	return t == CashEntryAdjustment
}

// CashLedgerEntry is one append-only row of the cash safety ledger.
// Amount is signed: positive for credits, negative for debits.
type CashLedgerEntry struct {
	ID             uuid.UUID       `json:"id"`
	Sequence       int64           `json:"sequence"`
	EntryType      CashEntryType   `json:"entry_type"`
	Direction      LedgerDirection `json:"direction"`
	Amount         decimal.Decimal `json:"amount"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	ConversionID   *uuid.UUID      `json:"conversion_id,omitempty"`
	ActorID        *uuid.UUID      `json:"actor_id,omitempty"`
	Note           string          `json:"note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// SignedAmount applies direction to a positive magnitude.
func SignedAmount(magnitude decimal.Decimal, dir LedgerDirection) decimal.Decimal {
	if dir == DirectionDebit {
		return magnitude.Abs().Neg()
	}
	return magnitude.Abs()
}

// NextRunningBalance returns previous ± magnitude, refusing negatives.
func NextRunningBalance(previous, magnitude decimal.Decimal, dir LedgerDirection) (decimal.Decimal, error) {
	next := previous.Add(SignedAmount(magnitude, dir))
	if next.IsNegative() {
		return previous, ErrNegativeCashBalance
	}
	return next, nil
}

// VerifyLedger folds entries (oldest first) from zero and checks each
// stored running balance.
func VerifyLedger(entries []CashLedgerEntry) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.Amount)
		if balance.IsNegative() {
			return balance, fmt.Errorf("entry %d: %w", e.Sequence, ErrNegativeCashBalance)
		}
		if !balance.Equal(e.RunningBalance) {
			return balance, fmt.Errorf("entry %d: running balance %s, folded %s", e.Sequence, e.RunningBalance, balance)
		}
	}
	return balance, nil
}
