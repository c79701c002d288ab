package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	defaultLedgerPage = 100
	maxLedgerPage     = 1000
)

// CashLedgerServiceImpl implements ports.CashLedgerService.
type CashLedgerServiceImpl struct {
	ledger     ports.CashLedgerRepository
	transactor ports.DBTransactor
	auditSvc   ports.AuditService
	log        zerolog.Logger
	now        func() time.Time
}

// NewCashLedgerService creates a new CashLedgerServiceImpl.
func NewCashLedgerService(
	ledger ports.CashLedgerRepository,
	transactor ports.DBTransactor,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *CashLedgerServiceImpl {
	return &CashLedgerServiceImpl{
		ledger:     ledger,
		transactor: transactor,
		auditSvc:   auditSvc,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// AppendEntry appends one entry in its own transaction.
func (s *CashLedgerServiceImpl) AppendEntry(ctx context.Context, req ports.AppendEntryRequest) (*domain.CashLedgerEntry, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	entry, err := s.AppendEntryTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return entry, nil
}

// AppendEntryTx appends one entry inside tx. The append lock is held until
// tx ends, so the running balance is always computed from the true latest
// entry.
func (s *CashLedgerServiceImpl) AppendEntryTx(ctx context.Context, tx pgx.Tx, req ports.AppendEntryRequest) (*domain.CashLedgerEntry, error) {
	dir, err := resolveDirection(req)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.AcquireAppendLock(ctx, tx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock cash ledger: %w", err))
	}
	latest, err := s.ledger.Latest(ctx, tx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read cash ledger: %w", err))
	}
	previous, seq := decimal.Zero, int64(0)
	if latest != nil {
		previous, seq = latest.RunningBalance, latest.Sequence
	}

	balance, err := domain.NextRunningBalance(previous, req.Amount, dir)
	if err != nil {
		if errors.Is(err, domain.ErrNegativeCashBalance) {
			s.log.Warn().
				Str("entry_type", string(req.Type)).
				Str("amount", req.Amount.String()).
				Str("balance", previous.String()).
				Msg("cash ledger entry refused")
			return nil, apperror.ErrInsufficientCashCollateral()
		}
		return nil, apperror.InternalError(err)
	}

	entry := &domain.CashLedgerEntry{
		ID:             uuid.New(),
		Sequence:       seq + 1,
		EntryType:      req.Type,
		Direction:      dir,
		Amount:         domain.SignedAmount(req.Amount, dir),
		RunningBalance: balance,
		ConversionID:   req.ConversionID,
		ActorID:        req.ActorID,
		Note:           strings.TrimSpace(req.Note),
		CreatedAt:      s.now(),
	}
	if err := s.ledger.Insert(ctx, tx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("insert cash entry: %w", err))
	}

	s.log.Info().
		Int64("sequence", entry.Sequence).
		Str("entry_type", string(entry.EntryType)).
		Str("amount", entry.Amount.String()).
		Str("balance", entry.RunningBalance.String()).
		Msg("cash ledger entry appended")
	return entry, nil
}

// PostManualEntry appends an administrator's deposit, withdrawal or
// adjustment. Lock and unlock entries only come from conversions.
func (s *CashLedgerServiceImpl) PostManualEntry(ctx context.Context, req ports.AppendEntryRequest) (*domain.CashLedgerEntry, error) {
	switch req.Type {
	case domain.CashEntryManualDeposit, domain.CashEntryWithdrawal, domain.CashEntryAdjustment:
	default:
		return nil, apperror.Validation("entry type must be manual_deposit, withdrawal or adjustment")
	}
	if req.ConversionID != nil {
		return nil, apperror.Validation("manual entries cannot reference a conversion")
	}

	entry, err := s.AppendEntry(ctx, req)
	if err != nil {
		s.auditSvc.Log(ctx, newAuditEntry(req.ActorID, domain.AuditActionCashLedgerEntry, "cash_ledger", "", "rejected", map[string]any{
			"entry_type": req.Type,
			"amount":     req.Amount.String(),
			"error":      err.Error(),
		}))
		return nil, err
	}
	s.auditSvc.Log(ctx, newAuditEntry(req.ActorID, domain.AuditActionCashLedgerEntry, "cash_ledger", entry.ID.String(), "success", map[string]any{
		"entry_type":      entry.EntryType,
		"amount":          entry.Amount.String(),
		"running_balance": entry.RunningBalance.String(),
		"note":            entry.Note,
	}))
	return entry, nil
}

// Balance returns the latest running balance.
func (s *CashLedgerServiceImpl) Balance(ctx context.Context) (decimal.Decimal, error) {
	latest, err := s.ledger.Latest(ctx, nil)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("read cash ledger: %w", err))
	}
	if latest == nil {
		return decimal.Zero, nil
	}
	return latest.RunningBalance, nil
}

// ListEntries returns entries after afterSequence, oldest first.
func (s *CashLedgerServiceImpl) ListEntries(ctx context.Context, afterSequence int64, limit int) ([]domain.CashLedgerEntry, error) {
	if limit <= 0 {
		limit = defaultLedgerPage
	}
	if limit > maxLedgerPage {
		limit = maxLedgerPage
	}
	entries, err := s.ledger.List(ctx, afterSequence, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list cash ledger: %w", err))
	}
	return entries, nil
}

// VerifyChain folds the whole ledger and checks every stored running
// balance. It returns the folded balance.
func (s *CashLedgerServiceImpl) VerifyChain(ctx context.Context) (decimal.Decimal, error) {
	var all []domain.CashLedgerEntry
	after := int64(0)
	for {
		page, err := s.ledger.List(ctx, after, maxLedgerPage)
		if err != nil {
			return decimal.Zero, apperror.InternalError(fmt.Errorf("list cash ledger: %w", err))
		}
		all = append(all, page...)
		if len(page) < maxLedgerPage {
			break
		}
		after = page[len(page)-1].Sequence
	}
	balance, err := domain.VerifyLedger(all)
	if err != nil {
		return balance, apperror.InternalError(fmt.Errorf("cash ledger chain broken: %w", err))
	}
	return balance, nil
}

// resolveDirection validates req and returns the entry's direction.
func resolveDirection(req ports.AppendEntryRequest) (domain.LedgerDirection, error) {
	if !req.Type.Valid() {
		return "", apperror.Validation(fmt.Sprintf("unknown cash entry type %q", req.Type))
	}
	if !req.Amount.IsPositive() {
		return "", apperror.Validation("amount must be positive")
	}
	if fixed, ok := req.Type.FixedDirection(); ok {
		if req.Direction != "" && req.Direction != fixed {
			return "", apperror.Validation(fmt.Sprintf("%s entries are always %s", req.Type, fixed))
		}
		return fixed, nil
	}
	switch req.Direction {
	case domain.DirectionCredit, domain.DirectionDebit:
		return req.Direction, nil
	}
	return "", apperror.Validation("adjustments require a direction of credit or debit")
}
