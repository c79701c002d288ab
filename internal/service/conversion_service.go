package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const defaultConversionLimit = 50

// ConversionServiceImpl implements ports.ConversionService.
//
// Approval runs in two transactions. The first posts the cash ledger entry
// and pins it on the conversion; the second applies the wallet movement
// using the amount recorded on that entry. If the second step fails the
// conversion stays pending with its ledger entry, and the next approval
// resumes from that entry.
type ConversionServiceImpl struct {
	conversions ports.ConversionRepository
	wallets     ports.WalletRepository
	batches     ports.LockBatchRepository
	ledger      ports.CashLedgerRepository
	cash        ports.CashLedgerService
	transactor  ports.DBTransactor
	prices      ports.PriceOracle
	auditSvc    ports.AuditService
	feePct      decimal.Decimal
	log         zerolog.Logger
	now         func() time.Time
}

// NewConversionService creates a new ConversionServiceImpl. feePct is a
// percentage of the conversion value, e.g. 0.5.
func NewConversionService(
	conversions ports.ConversionRepository,
	wallets ports.WalletRepository,
	batches ports.LockBatchRepository,
	ledger ports.CashLedgerRepository,
	cash ports.CashLedgerService,
	transactor ports.DBTransactor,
	prices ports.PriceOracle,
	auditSvc ports.AuditService,
	feePct decimal.Decimal,
	log zerolog.Logger,
) *ConversionServiceImpl {
	return &ConversionServiceImpl{
		conversions: conversions,
		wallets:     wallets,
		batches:     batches,
		ledger:      ledger,
		cash:        cash,
		transactor:  transactor,
		prices:      prices,
		auditSvc:    auditSvc,
		feePct:      feePct,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func sourceClass(d domain.ConversionDirection) (from, to domain.WalletClass) {
	if d == domain.ConvertMPGWToFPGW {
		return domain.WalletMPGW, domain.WalletFPGW
	}
	return domain.WalletFPGW, domain.WalletMPGW
}

// RequestConversion records a pending conversion at the current spot price
// and reserves the grams in the source wallet.
func (s *ConversionServiceImpl) RequestConversion(ctx context.Context, req ports.ConversionRequest) (*domain.WalletConversion, error) {
	if req.UserID == uuid.Nil {
		return nil, apperror.Validation("userId is required")
	}
	if !req.Direction.Valid() {
		return nil, apperror.Validation("direction must be MPGW_TO_FPGW or FPGW_TO_MPGW")
	}
	if !req.Grams.IsPositive() {
		return nil, apperror.Validation("grams must be positive")
	}
	price, err := s.prices.SpotPricePerGram(ctx)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.ErrPriceUnavailable(err)
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	from, _ := sourceClass(req.Direction)
	wallet, err := s.wallets.GetOrCreateForUpdate(ctx, tx, req.UserID, from)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet.AvailableGrams.LessThan(req.Grams) {
		return nil, apperror.ErrInsufficientGrams()
	}

	now := s.now()
	wallet.AvailableGrams = wallet.AvailableGrams.Sub(req.Grams)
	wallet.ReservedGrams = wallet.ReservedGrams.Add(req.Grams)
	wallet.UpdatedAt = now
	if err := s.wallets.Update(ctx, tx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	value := req.Grams.Mul(price).Round(2)
	conv := &domain.WalletConversion{
		ID:               uuid.New(),
		UserID:           req.UserID,
		Direction:        req.Direction,
		GoldGrams:        req.Grams,
		SpotPricePerGram: price,
		LockedValueUSD:   value,
		FeeUSD:           value.Mul(s.feePct).Div(decimal.NewFromInt(100)).Round(2),
		Status:           domain.ConversionPending,
		CreatedAt:        now,
	}
	if err := s.conversions.Create(ctx, tx, conv); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create conversion: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.auditSvc.Log(ctx, newAuditEntry(actorRef(req.ActorID), domain.AuditActionRequestConversion, "conversion", conv.ID.String(), "success", map[string]any{
		"direction": conv.Direction,
		"grams":     conv.GoldGrams.String(),
		"value_usd": conv.LockedValueUSD.String(),
	}))
	return conv, nil
}

// ApproveConversion posts the ledger entry (once) and applies the wallet
// movement. overridePrice only applies before the ledger entry exists.
func (s *ConversionServiceImpl) ApproveConversion(ctx context.Context, conversionID, actorID uuid.UUID, overridePrice *decimal.Decimal) (*domain.WalletConversion, error) {
	if overridePrice != nil && !overridePrice.IsPositive() {
		return nil, apperror.Validation("override price must be positive")
	}
	if err := s.postLedgerEntry(ctx, conversionID, actorID, overridePrice); err != nil {
		s.auditSvc.Log(ctx, newAuditEntry(actorRef(actorID), domain.AuditActionApproveConversion, "conversion", conversionID.String(), "rejected", map[string]any{
			"error": err.Error(),
		}))
		return nil, err
	}

	conv, err := s.applyWallets(ctx, conversionID)
	if err != nil {
		s.log.Error().Err(err).
			Str("conversion_id", conversionID.String()).
			Msg("wallet step failed after ledger entry; approval can be retried")
		return nil, err
	}

	s.auditSvc.Log(ctx, newAuditEntry(actorRef(actorID), domain.AuditActionApproveConversion, "conversion", conv.ID.String(), "success", map[string]any{
		"execution_price": conv.ExecutionPricePerGram.String(),
		"execution_value": conv.ExecutionValueUSD.String(),
		"ledger_entry_id": conv.LedgerEntryID.String(),
	}))
	return conv, nil
}

// postLedgerEntry is the first approval step. It is a no-op when the entry
// already exists.
func (s *ConversionServiceImpl) postLedgerEntry(ctx context.Context, conversionID, actorID uuid.UUID, overridePrice *decimal.Decimal) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	conv, err := s.lockConversion(ctx, tx, conversionID)
	if err != nil {
		return err
	}
	if conv.Status != domain.ConversionPending {
		return apperror.ErrConversionState("approve conversion", string(conv.Status))
	}
	if conv.LedgerPosted() {
		if overridePrice != nil && !overridePrice.Equal(*conv.ExecutionPricePerGram) {
			s.log.Warn().
				Str("conversion_id", conv.ID.String()).
				Str("override", overridePrice.String()).
				Str("execution_price", conv.ExecutionPricePerGram.String()).
				Msg("override ignored, resuming from posted ledger entry")
		}
		return nil
	}

	price, value := conv.ExecutionValue(overridePrice)
	entryType, dir := conv.Direction.LedgerEntry()
	convID := conv.ID
	entry, err := s.cash.AppendEntryTx(ctx, tx, ports.AppendEntryRequest{
		Type:         entryType,
		Amount:       value,
		Direction:    dir,
		ConversionID: &convID,
		ActorID:      actorRef(actorID),
		Note:         fmt.Sprintf("%s %s g @ %s", conv.Direction, conv.GoldGrams, price),
	})
	if err != nil {
		return err
	}

	now := s.now()
	conv.ExecutionPricePerGram = &price
	conv.ExecutionValueUSD = &value
	conv.LedgerEntryID = &entry.ID
	conv.ReviewedBy = &actorID
	conv.ReviewedAt = &now
	if err := s.conversions.Update(ctx, tx, conv); err != nil {
		return apperror.InternalError(fmt.Errorf("update conversion: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// applyWallets is the second approval step. The grams and value come from
// the conversion and its ledger entry, never from a fresh price.
func (s *ConversionServiceImpl) applyWallets(ctx context.Context, conversionID uuid.UUID) (*domain.WalletConversion, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	conv, err := s.lockConversion(ctx, tx, conversionID)
	if err != nil {
		return nil, err
	}
	if conv.Status == domain.ConversionCompleted {
		return conv, nil
	}
	if conv.Status != domain.ConversionPending || !conv.LedgerPosted() {
		return nil, apperror.ErrConversionState("complete conversion", string(conv.Status))
	}
	entry, err := s.ledger.GetByID(ctx, tx, *conv.LedgerEntryID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get ledger entry: %w", err))
	}
	if entry == nil {
		return nil, apperror.InternalError(fmt.Errorf("ledger entry %s for conversion %s is missing", conv.LedgerEntryID, conv.ID))
	}
	value := entry.Amount.Abs()
	price := *conv.ExecutionPricePerGram
	now := s.now()

	from, to := sourceClass(conv.Direction)
	source, err := s.wallets.GetOrCreateForUpdate(ctx, tx, conv.UserID, from)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	target, err := s.wallets.GetOrCreateForUpdate(ctx, tx, conv.UserID, to)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if source.ReservedGrams.LessThan(conv.GoldGrams) {
		return nil, apperror.InternalError(fmt.Errorf("conversion %s: reserved %s g below %s g", conv.ID, source.ReservedGrams, conv.GoldGrams))
	}

	source.ReservedGrams = source.ReservedGrams.Sub(conv.GoldGrams)
	source.UpdatedAt = now
	target.AvailableGrams = target.AvailableGrams.Add(conv.GoldGrams)
	target.UpdatedAt = now

	switch conv.Direction {
	case domain.ConvertMPGWToFPGW:
		if err := s.batches.Create(ctx, tx, &domain.LockBatch{
			ID:               uuid.New(),
			UserID:           conv.UserID,
			ConversionID:     conv.ID,
			OriginalGrams:    conv.GoldGrams,
			RemainingGrams:   conv.GoldGrams,
			LockPricePerGram: price,
			Status:           domain.LockBatchActive,
			CreatedAt:        now,
			UpdatedAt:        now,
		}); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create lock batch: %w", err))
		}
	case domain.ConvertFPGWToMPGW:
		if err := s.releaseBatches(ctx, tx, conv, now); err != nil {
			return nil, err
		}
	}

	if err := s.wallets.Update(ctx, tx, source); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}
	if err := s.wallets.Update(ctx, tx, target); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	convID := conv.ID
	for _, m := range []struct {
		wallet *domain.Wallet
		typ    domain.WalletTransactionType
	}{
		{source, domain.WalletTxConversionOut},
		{target, domain.WalletTxConversionIn},
	} {
		if err := s.wallets.CreateTransaction(ctx, tx, &domain.WalletTransaction{
			ID:           uuid.New(),
			WalletID:     m.wallet.ID,
			UserID:       conv.UserID,
			Type:         m.typ,
			Grams:        conv.GoldGrams,
			USDValue:     value,
			PricePerGram: price,
			ConversionID: &convID,
			CreatedAt:    now,
		}); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create wallet transaction: %w", err))
		}
	}

	conv.Status = domain.ConversionCompleted
	conv.CompletedAt = &now
	if err := s.conversions.Update(ctx, tx, conv); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update conversion: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("conversion_id", conv.ID.String()).
		Str("direction", string(conv.Direction)).
		Str("grams", conv.GoldGrams.String()).
		Str("value_usd", value.String()).
		Msg("conversion completed")
	return conv, nil
}

// releaseBatches consumes the user's active lock batches oldest first.
func (s *ConversionServiceImpl) releaseBatches(ctx context.Context, tx pgx.Tx, conv *domain.WalletConversion, now time.Time) error {
	batches, err := s.batches.ListActiveForUpdate(ctx, tx, conv.UserID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("list lock batches: %w", err))
	}
	remaining := conv.GoldGrams
	for i := range batches {
		if !remaining.IsPositive() {
			break
		}
		b := &batches[i]
		remaining = remaining.Sub(b.Consume(remaining, now))
		if err := s.batches.Update(ctx, tx, b); err != nil {
			return apperror.InternalError(fmt.Errorf("update lock batch: %w", err))
		}
	}
	if remaining.IsPositive() {
		s.log.Warn().
			Str("conversion_id", conv.ID.String()).
			Str("unbatched_grams", remaining.String()).
			Msg("released more grams than active lock batches hold")
	}
	return nil
}

// RejectConversion declines a pending conversion and returns the reserved
// grams. A conversion whose ledger entry is posted can only be completed.
func (s *ConversionServiceImpl) RejectConversion(ctx context.Context, conversionID, actorID uuid.UUID, reason string) (*domain.WalletConversion, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	conv, err := s.lockConversion(ctx, tx, conversionID)
	if err != nil {
		return nil, err
	}
	if conv.Status != domain.ConversionPending {
		return nil, apperror.ErrConversionState("reject conversion", string(conv.Status))
	}
	if conv.LedgerPosted() {
		return nil, apperror.ErrConversionState("reject conversion", "ledger_posted")
	}

	from, _ := sourceClass(conv.Direction)
	wallet, err := s.wallets.GetOrCreateForUpdate(ctx, tx, conv.UserID, from)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	now := s.now()
	release := decimal.Min(conv.GoldGrams, wallet.ReservedGrams)
	wallet.ReservedGrams = wallet.ReservedGrams.Sub(release)
	wallet.AvailableGrams = wallet.AvailableGrams.Add(release)
	wallet.UpdatedAt = now
	if err := s.wallets.Update(ctx, tx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	conv.Status = domain.ConversionRejected
	conv.ReviewedBy = &actorID
	conv.ReviewedAt = &now
	if reason != "" {
		conv.RejectionReason = &reason
	}
	if err := s.conversions.Update(ctx, tx, conv); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update conversion: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.auditSvc.Log(ctx, newAuditEntry(actorRef(actorID), domain.AuditActionRejectConversion, "conversion", conv.ID.String(), "success", map[string]any{
		"reason": reason,
	}))
	return conv, nil
}

// ListConversions returns conversions, newest first.
func (s *ConversionServiceImpl) ListConversions(ctx context.Context, status *domain.ConversionStatus, limit int) ([]domain.WalletConversion, error) {
	if limit <= 0 {
		limit = defaultConversionLimit
	}
	convs, err := s.conversions.List(ctx, status, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list conversions: %w", err))
	}
	return convs, nil
}

func (s *ConversionServiceImpl) lockConversion(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletConversion, error) {
	conv, err := s.conversions.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock conversion: %w", err))
	}
	if conv == nil {
		return nil, apperror.ErrNotFound("conversion")
	}
	return conv, nil
}
