package service

import (
	"context"
	"fmt"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/internal/metrics"
	"gold-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// SettlementServiceImpl implements ports.SettlementService. It is the only
// path that turns physical custody into a digital MPGW balance.
type SettlementServiceImpl struct {
	orders     ports.OrderRepository
	bars       ports.BarRepository
	wallets    ports.WalletRepository
	trails     ports.TrailRepository
	transactor ports.DBTransactor
	signer     ports.CertificateSigner
	notifier   ports.Notifier
	auditSvc   ports.AuditService
	log        zerolog.Logger
	now        func() time.Time
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	orders ports.OrderRepository,
	bars ports.BarRepository,
	wallets ports.WalletRepository,
	trails ports.TrailRepository,
	transactor ports.DBTransactor,
	signer ports.CertificateSigner,
	notifier ports.Notifier,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		orders:     orders,
		bars:       bars,
		wallets:    wallets,
		trails:     trails,
		transactor: transactor,
		signer:     signer,
		notifier:   notifier,
		auditSvc:   auditSvc,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ApproveAndCredit credits the order's bar weight to the user's MPGW wallet.
// Every precondition is re-read under the order row lock:
//  1. the order is wingold_approved
//  2. the allocated bars weigh more than zero
//  3. at least one bar carries a certificate or a vault holding
func (s *SettlementServiceImpl) ApproveAndCredit(ctx context.Context, orderID, actorID uuid.UUID) (*ports.CreditResult, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	order, err := s.orders.GetByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	if order.Status != domain.OrderStatusWingoldApproved {
		return nil, s.refuse(ctx, orderID, actorID, apperror.ErrInvalidState("approve settlement", string(order.Status)))
	}

	bars, err := s.bars.ListBarsByOrder(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list bars: %w", err))
	}
	certs, err := s.bars.ListCertificatesByOrder(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list certificates: %w", err))
	}
	holdings, err := s.bars.ListHoldingsByOrder(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list holdings: %w", err))
	}
	backing := domain.SummarizeBacking(bars, certs, holdings)
	if !backing.TotalGrams.IsPositive() {
		return nil, s.refuse(ctx, orderID, actorID, apperror.ErrNoPhysicalBacking("allocated bar weight is zero"))
	}
	if backing.BackedBars == 0 {
		return nil, s.refuse(ctx, orderID, actorID, apperror.ErrNoPhysicalBacking("no bar has a certificate or vault holding"))
	}

	now := s.now()
	wallet, err := s.wallets.GetOrCreateForUpdate(ctx, tx, order.UserID, domain.WalletMPGW)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	wallet.AvailableGrams = wallet.AvailableGrams.Add(backing.TotalGrams)
	wallet.UpdatedAt = now
	if err := s.wallets.Update(ctx, tx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	oid := order.ID
	credit := &domain.WalletTransaction{
		ID:           uuid.New(),
		WalletID:     wallet.ID,
		UserID:       order.UserID,
		Type:         domain.WalletTxPhysicalCredit,
		Grams:        backing.TotalGrams,
		USDValue:     order.ValueOf(backing.TotalGrams),
		PricePerGram: order.PricePerGram,
		OrderID:      &oid,
		CreatedAt:    now,
	}
	if err := s.wallets.CreateTransaction(ctx, tx, credit); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet transaction: %w", err))
	}

	issued := make([]domain.Certificate, 0, len(bars))
	for i := range bars {
		bar := bars[i]
		cert, err := issueCertificate(ctx, tx, s.bars, s.signer, domain.CertificateDigitalOwnership, order.ID, &bar.ID, map[string]any{
			"orderReference": order.ExternalReference,
			"userId":         order.UserID,
			"walletId":       wallet.ID,
			"transactionId":  credit.ID,
			"serialNumber":   bar.SerialNumber,
			"weightGrams":    bar.WeightGrams,
			"purity":         bar.Purity,
			"vaultLocation":  bar.VaultLocation,
			"issuedAt":       now,
		}, now)
		if err != nil {
			return nil, err
		}
		issued = append(issued, *cert)
	}

	if err := s.bars.LinkHoldingsToCredit(ctx, tx, order.ID, credit.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("link holdings: %w", err))
	}

	if err := order.Transition(domain.OrderStatusFulfilled, now); err != nil {
		return nil, apperror.ErrInvalidState("approve settlement", string(order.Status))
	}
	if err := s.orders.Update(ctx, tx, order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update order: %w", err))
	}
	if err := s.closeTrail(ctx, tx, order.ID, domain.TrailCompleted, actorID, fmt.Sprintf("credited %s g", backing.TotalGrams)); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	metrics.GramsCredited(backing.TotalGrams)
	metrics.OrderTransitioned(string(domain.OrderStatusFulfilled))
	for _, c := range issued {
		s.notifier.Notify(ctx, order, domain.EventCertificateIssued, map[string]any{
			"certificateNumber": c.CertificateNumber,
			"certificateType":   c.Type,
		})
	}
	s.notifier.Notify(ctx, order, domain.EventOrderFulfilled, map[string]any{
		"creditedGrams":  backing.TotalGrams,
		"walletId":       wallet.ID,
		"transactionId":  credit.ID,
		"availableGrams": wallet.AvailableGrams,
	})
	s.auditSvc.Log(ctx, newAuditEntry(actorRef(actorID), domain.AuditActionApproveSettlement, "order", orderID.String(), "success", map[string]any{
		"credited_grams": backing.TotalGrams.String(),
		"transaction_id": credit.ID.String(),
	}))
	s.log.Info().
		Str("order_id", orderID.String()).
		Str("grams", backing.TotalGrams.String()).
		Str("wallet_id", wallet.ID.String()).
		Msg("settlement credited")

	return &ports.CreditResult{
		OrderID:        order.ID,
		WalletID:       wallet.ID,
		TransactionID:  credit.ID,
		CreditedGrams:  backing.TotalGrams,
		AvailableGrams: wallet.AvailableGrams,
		Certificates:   issued,
	}, nil
}

// RejectSettlement cancels a wingold_approved order without crediting it.
func (s *SettlementServiceImpl) RejectSettlement(ctx context.Context, orderID, actorID uuid.UUID, reason string) (*domain.PurchaseOrder, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	order, err := s.orders.GetByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	if order.Status != domain.OrderStatusWingoldApproved {
		return nil, apperror.ErrInvalidState("reject settlement", string(order.Status))
	}

	now := s.now()
	if err := order.Transition(domain.OrderStatusCancelled, now); err != nil {
		return nil, apperror.ErrInvalidState("reject settlement", string(order.Status))
	}
	if reason != "" {
		order.ErrorMessage = &reason
	}
	if err := s.orders.Update(ctx, tx, order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update order: %w", err))
	}
	if err := s.closeTrail(ctx, tx, order.ID, domain.TrailCancelled, actorID, reason); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	metrics.OrderTransitioned(string(domain.OrderStatusCancelled))
	s.notifier.Notify(ctx, order, domain.EventOrderCancelled, map[string]any{"reason": reason})
	s.auditSvc.Log(ctx, newAuditEntry(actorRef(actorID), domain.AuditActionRejectSettlement, "order", orderID.String(), "success", map[string]any{
		"reason": reason,
	}))
	return order, nil
}

// refuse audits a refused settlement and returns err unchanged.
func (s *SettlementServiceImpl) refuse(ctx context.Context, orderID, actorID uuid.UUID, err *apperror.AppError) error {
	s.auditSvc.Log(ctx, newAuditEntry(actorRef(actorID), domain.AuditActionApproveSettlement, "order", orderID.String(), "rejected", map[string]any{
		"code":   err.Code,
		"reason": err.Message,
	}))
	s.log.Warn().Str("order_id", orderID.String()).Str("reason", err.Message).Msg("settlement refused")
	return err
}

func (s *SettlementServiceImpl) closeTrail(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, status domain.TrailStatus, actorID uuid.UUID, detail string) error {
	trail, err := s.trails.GetByOrderForUpdate(ctx, tx, orderID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load trail: %w", err))
	}
	if trail == nil {
		return nil
	}
	kind := "status:" + string(domain.OrderStatusFulfilled)
	if status == domain.TrailCancelled {
		kind = "status:" + string(domain.OrderStatusCancelled)
	}
	trail.Append(kind, actorID.String(), detail, s.now())
	trail.Status = status
	if err := s.trails.Update(ctx, tx, trail); err != nil {
		return apperror.InternalError(fmt.Errorf("update trail: %w", err))
	}
	return nil
}
