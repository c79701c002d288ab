package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/internal/metrics"
	"gold-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	actorCustodian = "custodian"
	actorSystem    = "system"
)

var defaultPurity = decimal.RequireFromString("0.9999")

// OrderConfig holds the ledger's deployment settings.
type OrderConfig struct {
	// CallbackURL is where the custodian delivers lifecycle events.
	CallbackURL  string
	TrailEnabled bool
}

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	orders     ports.OrderRepository
	bars       ports.BarRepository
	trails     ports.TrailRepository
	transactor ports.DBTransactor
	custodian  ports.CustodianClient
	prices     ports.PriceOracle
	signer     ports.CertificateSigner
	notifier   ports.Notifier
	auditSvc   ports.AuditService
	cfg        OrderConfig
	log        zerolog.Logger
	now        func() time.Time
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(
	orders ports.OrderRepository,
	bars ports.BarRepository,
	trails ports.TrailRepository,
	transactor ports.DBTransactor,
	custodian ports.CustodianClient,
	prices ports.PriceOracle,
	signer ports.CertificateSigner,
	notifier ports.Notifier,
	auditSvc ports.AuditService,
	cfg OrderConfig,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		orders:     orders,
		bars:       bars,
		trails:     trails,
		transactor: transactor,
		custodian:  custodian,
		prices:     prices,
		signer:     signer,
		notifier:   notifier,
		auditSvc:   auditSvc,
		cfg:        cfg,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// pendingNotification is sent once the transaction that produced it commits.
type pendingNotification struct {
	event domain.WebhookEventType
	data  any
}

// orderChange accumulates everything one unit of work does to an order.
type orderChange struct {
	order         *domain.PurchaseOrder
	trail         *domain.SettlementTrail
	at            time.Time
	transitions   []domain.OrderStatus
	notifications []pendingNotification
	dirty         bool
}

func (c *orderChange) moveTo(next domain.OrderStatus, actor, detail string) error {
	if c.order.Status == next {
		return nil
	}
	from := c.order.Status
	if err := c.order.Transition(next, c.at); err != nil {
		var illegal *domain.IllegalTransitionError
		if errors.As(err, &illegal) {
			return apperror.ErrInvalidState("move order to "+string(next), string(from))
		}
		return err
	}
	c.transitions = append(c.transitions, next)
	c.dirty = true
	if c.trail != nil {
		c.trail.Append("status:"+string(next), actor, detail, c.at)
		switch next {
		case domain.OrderStatusCancelled, domain.OrderStatusFailed:
			c.trail.Status = domain.TrailCancelled
		case domain.OrderStatusFulfilled:
			c.trail.Status = domain.TrailCompleted
		}
	}
	return nil
}

func (c *orderChange) record(kind, actor, detail string) {
	c.dirty = true
	if c.trail != nil {
		c.trail.Append(kind, actor, detail, c.at)
	}
}

func (c *orderChange) notify(event domain.WebhookEventType, data any) {
	c.notifications = append(c.notifications, pendingNotification{event: event, data: data})
}

// CreateOrder records a pending purchase intent at the current spot price.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (*domain.PurchaseOrder, error) {
	if req.UserID == uuid.Nil {
		return nil, apperror.Validation("userId is required")
	}
	if !req.BarSize.Valid() {
		return nil, apperror.Validation("barSize must be one of 1g, 10g, 100g, 1kg")
	}
	if req.BarCount <= 0 {
		return nil, apperror.Validation("barCount must be positive")
	}
	grams := domain.ExpectedGrams(req.BarSize, req.BarCount)
	if req.TotalGrams != nil && !req.TotalGrams.Equal(grams) {
		return nil, apperror.ErrGramsMismatch()
	}

	price, err := s.prices.SpotPricePerGram(ctx)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.ErrPriceUnavailable(err)
	}

	now := s.now()
	order := &domain.PurchaseOrder{
		ID:                     uuid.New(),
		ExternalReference:      domain.NewReference(now),
		UserID:                 req.UserID,
		BarSize:                req.BarSize,
		BarCount:               req.BarCount,
		TotalGrams:             grams,
		USDAmount:              grams.Mul(price).Round(2),
		PricePerGram:           price,
		PreferredVaultLocation: strings.TrimSpace(req.PreferredVaultLocation),
		CallbackURL:            req.CallbackURL,
		Origin:                 domain.OrderOriginLocal,
		Status:                 domain.OrderStatusPending,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.orders.Create(ctx, tx, order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create order: %w", err))
	}
	if err := s.openTrail(ctx, tx, order, "order_created", req.ActorID.String()); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	metrics.OrderTransitioned(string(order.Status))
	s.auditSvc.Log(ctx, newAuditEntry(actorRef(req.ActorID), domain.AuditActionCreateOrder, "order", order.ID.String(), "success", map[string]any{
		"reference":   order.ExternalReference,
		"bar_size":    order.BarSize,
		"bar_count":   order.BarCount,
		"total_grams": order.TotalGrams.String(),
		"usd_amount":  order.USDAmount.String(),
	}))
	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("reference", order.ExternalReference).
		Str("grams", order.TotalGrams.String()).
		Msg("purchase order created")

	return order, nil
}

// ApproveOrder submits a pending order to the custodian. The custodian call
// runs outside the row lock; the status is re-checked before it is applied.
func (s *OrderServiceImpl) ApproveOrder(ctx context.Context, orderID, actorID uuid.UUID) (*domain.PurchaseOrder, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	if order.Status != domain.OrderStatusPending {
		return nil, apperror.ErrInvalidState("approve order", string(order.Status))
	}

	receipt, submitErr := s.custodian.SubmitOrder(ctx, ports.CustodianOrderRequest{
		Reference:              order.ExternalReference,
		UserID:                 order.UserID,
		BarSize:                order.BarSize,
		BarCount:               order.BarCount,
		TotalGrams:             order.TotalGrams,
		USDAmount:              order.USDAmount,
		PreferredVaultLocation: order.PreferredVaultLocation,
		CallbackURL:            s.cfg.CallbackURL,
	})
	if submitErr == nil && (receipt == nil || receipt.CustodianOrderID == "") {
		submitErr = errors.New("custodian returned no order id")
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	change, err := s.lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if change.order.Status != domain.OrderStatusPending {
		if submitErr == nil {
			s.cancelAtCustodian(ctx, receipt.CustodianOrderID, "approval raced with a status change")
		}
		return nil, apperror.ErrInvalidState("approve order", string(change.order.Status))
	}

	if submitErr != nil {
		if err := change.moveTo(domain.OrderStatusFailed, actorID.String(), submitErr.Error()); err != nil {
			return nil, err
		}
		msg := submitErr.Error()
		change.order.ErrorMessage = &msg
		if err := s.persist(ctx, tx, change); err != nil {
			return nil, err
		}
		s.publish(ctx, change)
		s.auditSvc.Log(ctx, newAuditEntry(actorRef(actorID), domain.AuditActionApproveOrder, "order", orderID.String(), "rejected", map[string]any{
			"error": msg,
		}))
		s.log.Error().Err(submitErr).Str("order_id", orderID.String()).Msg("custodian submission failed")
		return nil, apperror.ErrCustodianUnavailable(submitErr)
	}

	change.order.CustodianOrderID = &receipt.CustodianOrderID
	change.order.ApprovedBy = &actorID
	if err := change.moveTo(domain.OrderStatusSubmitted, actorID.String(), "custodian order "+receipt.CustodianOrderID); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, tx, change); err != nil {
		return nil, err
	}
	s.publish(ctx, change)
	s.auditSvc.Log(ctx, newAuditEntry(actorRef(actorID), domain.AuditActionApproveOrder, "order", orderID.String(), "success", map[string]any{
		"custodian_order_id": receipt.CustodianOrderID,
	}))
	return change.order, nil
}

// RejectOrder declines a pending order before it reaches the custodian.
func (s *OrderServiceImpl) RejectOrder(ctx context.Context, orderID, actorID uuid.UUID, reason string) (*domain.PurchaseOrder, error) {
	order, err := s.closeOrder(ctx, orderID, actorID, reason, "reject order", func(st domain.OrderStatus) bool {
		return st == domain.OrderStatusPending
	})
	if err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, newAuditEntry(actorRef(actorID), domain.AuditActionRejectOrder, "order", orderID.String(), "success", map[string]any{
		"reason": reason,
	}))
	return order, nil
}

// CancelOrder cancels any non-terminal order. Orders already at the custodian
// are cancelled there on a best-effort basis after the local commit.
func (s *OrderServiceImpl) CancelOrder(ctx context.Context, orderID, actorID uuid.UUID, reason string) (*domain.PurchaseOrder, error) {
	order, err := s.closeOrder(ctx, orderID, actorID, reason, "cancel order", func(st domain.OrderStatus) bool {
		return !st.IsTerminal()
	})
	if err != nil {
		return nil, err
	}
	if order.CustodianOrderID != nil {
		s.cancelAtCustodian(ctx, *order.CustodianOrderID, reason)
	}
	s.auditSvc.Log(ctx, newAuditEntry(actorRef(actorID), domain.AuditActionCancelOrder, "order", orderID.String(), "success", map[string]any{
		"reason": reason,
	}))
	return order, nil
}

func (s *OrderServiceImpl) closeOrder(ctx context.Context, orderID, actorID uuid.UUID, reason, action string, allowed func(domain.OrderStatus) bool) (*domain.PurchaseOrder, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	change, err := s.lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if !allowed(change.order.Status) {
		return nil, apperror.ErrInvalidState(action, string(change.order.Status))
	}
	if err := change.moveTo(domain.OrderStatusCancelled, actorID.String(), reason); err != nil {
		return nil, err
	}
	if reason != "" {
		change.order.ErrorMessage = &reason
	}
	change.notify(domain.EventOrderCancelled, map[string]any{"reason": reason})
	if err := s.persist(ctx, tx, change); err != nil {
		return nil, err
	}
	s.publish(ctx, change)
	return change.order, nil
}

// HandleEvent applies one admitted custodian event to the ledger.
func (s *OrderServiceImpl) HandleEvent(ctx context.Context, ev *domain.InboundEvent) (*ports.EventOutcome, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	source, err := s.resolveOrder(ctx, tx, ev)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "DAT_001" {
			s.auditSvc.Log(ctx, newAuditEntry(nil, domain.AuditActionInferenceRejected, "order", ev.OrderID, "rejected", map[string]any{
				"event":  ev.Event,
				"detail": appErr.Message,
			}))
			s.log.Warn().Str("reference", ev.OrderID).Str("event", string(ev.Event)).Msg(appErr.Message)
		}
		return nil, err
	}

	now := s.now()
	var change *orderChange
	inferred := false

	switch src := source.(type) {
	case domain.KnownOrder:
		trail, err := s.trails.GetByOrderForUpdate(ctx, tx, src.Order.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("load trail: %w", err))
		}
		change = &orderChange{order: src.Order, trail: trail, at: now}
	case domain.InferredOrder:
		order := src.Materialize(now)
		if err := s.orders.Create(ctx, tx, order); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create inferred order: %w", err))
		}
		if err := s.openTrail(ctx, tx, order, "order_inferred", actorCustodian); err != nil {
			return nil, err
		}
		trail, err := s.trails.GetByOrderForUpdate(ctx, tx, order.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("load trail: %w", err))
		}
		change = &orderChange{order: order, trail: trail, at: now, transitions: []domain.OrderStatus{order.Status}}
		inferred = true
	}

	outcome := &ports.EventOutcome{OrderID: change.order.ID, Inferred: inferred}

	if change.order.Status.IsTerminal() {
		s.log.Info().
			Str("order_id", change.order.ID.String()).
			Str("event", string(ev.Event)).
			Str("status", string(change.order.Status)).
			Msg("event for terminal order ignored")
		outcome.Status = change.order.Status
		return outcome, nil
	}

	switch ev.Event {
	case domain.EventOrderConfirmed:
		err = s.applyConfirmed(change, ev)
	case domain.EventBarAllocated:
		err = s.applyAllocation(ctx, tx, change, ev)
	case domain.EventCertificateIssued:
		err = s.applyCertificate(ctx, tx, change, ev)
	case domain.EventOrderFulfilled:
		err = s.applyFulfilled(ctx, tx, change, ev)
	case domain.EventOrderCancelled:
		err = s.applyCancelled(change, ev)
	default:
		err = apperror.Validation("unsupported event " + string(ev.Event))
	}
	if err != nil {
		return nil, err
	}

	outcome.Applied = change.dirty || inferred
	outcome.Status = change.order.Status
	if !outcome.Applied {
		return outcome, nil
	}

	if err := s.persist(ctx, tx, change); err != nil {
		return nil, err
	}
	s.publish(ctx, change)
	if inferred {
		s.auditSvc.Log(ctx, newAuditEntry(nil, domain.AuditActionInferredOrderAdded, "order", change.order.ID.String(), "success", map[string]any{
			"reference": change.order.ExternalReference,
			"event":     ev.Event,
		}))
	}

	s.log.Info().
		Str("order_id", change.order.ID.String()).
		Str("event", string(ev.Event)).
		Str("status", string(change.order.Status)).
		Msg("custodian event applied")
	return outcome, nil
}

func (s *OrderServiceImpl) resolveOrder(ctx context.Context, tx pgx.Tx, ev *domain.InboundEvent) (domain.OrderSource, error) {
	order, err := s.orders.GetByReferenceForUpdate(ctx, tx, ev.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order != nil {
		return domain.KnownOrder{Order: order}, nil
	}
	inferred, err := domain.InferOrder(ev)
	if err != nil {
		return nil, apperror.ErrInferenceRejected(err.Error())
	}
	return *inferred, nil
}

func (s *OrderServiceImpl) applyConfirmed(c *orderChange, ev *domain.InboundEvent) error {
	o := c.order
	if id := strings.TrimSpace(ev.Data.WingoldOrderID); id != "" && o.CustodianOrderID == nil {
		o.CustodianOrderID = &id
		c.dirty = true
	}
	if v := strings.TrimSpace(ev.Data.VaultLocation); v != "" && o.VaultLocation == nil {
		o.VaultLocation = &v
		c.dirty = true
	}
	switch o.Status {
	case domain.OrderStatusPending:
		return apperror.ErrInvalidState("confirm order", string(o.Status))
	case domain.OrderStatusSubmitted:
		if err := c.moveTo(domain.OrderStatusConfirmed, actorCustodian, ""); err != nil {
			return err
		}
		c.notify(domain.EventOrderConfirmed, map[string]any{
			"custodianOrderId": o.CustodianOrderID,
			"vaultLocation":    o.VaultLocation,
		})
	}
	return nil
}

func (s *OrderServiceImpl) applyAllocation(ctx context.Context, tx pgx.Tx, c *orderChange, ev *domain.InboundEvent) error {
	if c.order.Status == domain.OrderStatusPending {
		return apperror.ErrInvalidState("allocate bar", string(c.order.Status))
	}
	if !c.order.Status.AcceptsAllocations() {
		return nil
	}
	created, err := s.allocateBars(ctx, tx, c, ev.AllocatedBars())
	if err != nil {
		return err
	}
	if created == 0 {
		return nil
	}
	return s.advance(ctx, tx, c)
}

func (s *OrderServiceImpl) applyFulfilled(ctx context.Context, tx pgx.Tx, c *orderChange, ev *domain.InboundEvent) error {
	if c.order.Status == domain.OrderStatusPending {
		return apperror.ErrInvalidState("fulfil order", string(c.order.Status))
	}
	if !c.order.Status.AcceptsAllocations() {
		return nil
	}
	if _, err := s.allocateBars(ctx, tx, c, ev.AllocatedBars()); err != nil {
		return err
	}
	if c.order.CustodianFulfilledAt == nil {
		at := c.at
		c.order.CustodianFulfilledAt = &at
		c.record("custodian_fulfilled", actorCustodian, "")
	}
	return s.advance(ctx, tx, c)
}

func (s *OrderServiceImpl) applyCancelled(c *orderChange, ev *domain.InboundEvent) error {
	reason := strings.TrimSpace(ev.Data.Reason)
	if err := c.moveTo(domain.OrderStatusCancelled, actorCustodian, reason); err != nil {
		return err
	}
	if reason != "" {
		c.order.ErrorMessage = &reason
	}
	c.notify(domain.EventOrderCancelled, map[string]any{"reason": reason})
	return nil
}

// allocateBars records every new bar in bars and reports how many were new.
// A serial already recorded for this order is skipped.
func (s *OrderServiceImpl) allocateBars(ctx context.Context, tx pgx.Tx, c *orderChange, bars []domain.BarData) (int, error) {
	o := c.order
	created := 0
	for _, b := range bars {
		serial := strings.TrimSpace(b.SerialNumber)
		if serial == "" {
			return created, apperror.Validation("bar serialNumber is required")
		}
		existing, err := s.bars.GetBarBySerial(ctx, tx, serial)
		if err != nil {
			return created, apperror.InternalError(fmt.Errorf("get bar: %w", err))
		}
		if existing != nil {
			if existing.OrderID != o.ID {
				return created, apperror.Validation(fmt.Sprintf("bar %s is allocated to another order", serial))
			}
			continue
		}
		if o.AllocationComplete() {
			s.log.Warn().
				Str("order_id", o.ID.String()).
				Str("serial", serial).
				Msg("bar allocated beyond ordered count, ignored")
			continue
		}

		weight := o.BarSize.Grams()
		if b.WeightGrams != nil {
			weight = *b.WeightGrams
		}
		if !weight.IsPositive() {
			return created, apperror.Validation(fmt.Sprintf("bar %s weight must be positive", serial))
		}
		purity := defaultPurity
		if b.Purity != nil {
			purity = *b.Purity
		}
		vault := firstNonEmpty(b.VaultLocation, deref(o.VaultLocation), o.PreferredVaultLocation)
		at := c.at
		bar := &domain.BarLot{
			ID:                uuid.New(),
			OrderID:           o.ID,
			BarID:             firstNonEmpty(b.BarID, serial),
			SerialNumber:      serial,
			WeightGrams:       weight,
			Purity:            purity,
			Mint:              b.Mint,
			VaultLocation:     vault,
			CustodyStatus:     domain.CustodyInVault,
			CustodyVerifiedAt: &at,
			CreatedAt:         at,
		}
		if err := s.bars.CreateBar(ctx, tx, bar); err != nil {
			return created, apperror.InternalError(fmt.Errorf("create bar: %w", err))
		}
		o.AllocatedBars++
		o.UpdatedAt = at
		if o.VaultLocation == nil && vault != "" {
			v := vault
			o.VaultLocation = &v
		}
		created++
		c.record("bar_allocated", actorCustodian, serial)
		c.notify(domain.EventBarAllocated, map[string]any{
			"serialNumber":  bar.SerialNumber,
			"weightGrams":   bar.WeightGrams,
			"purity":        bar.Purity,
			"vaultLocation": bar.VaultLocation,
			"allocated":     o.AllocatedBars,
			"barCount":      o.BarCount,
		})
	}
	return created, nil
}

// advance moves the order along after allocation progress: partially
// fulfilled while bars are missing, processing once all bars are in (with
// holdings and certificates issued), wingold_approved once the custodian has
// also reported fulfillment.
func (s *OrderServiceImpl) advance(ctx context.Context, tx pgx.Tx, c *orderChange) error {
	o := c.order
	if !o.AllocationComplete() {
		if o.AllocatedBars == 0 {
			return nil
		}
		return c.moveTo(domain.OrderStatusPartiallyFulfilled, actorCustodian, fmt.Sprintf("%d/%d bars", o.AllocatedBars, o.BarCount))
	}
	if !o.CertificatesIssued {
		if err := s.issueCustody(ctx, tx, c); err != nil {
			return err
		}
		o.CertificatesIssued = true
	}
	if o.Status != domain.OrderStatusProcessing && o.Status != domain.OrderStatusWingoldApproved {
		if err := c.moveTo(domain.OrderStatusProcessing, actorCustodian, "all bars allocated"); err != nil {
			return err
		}
	}
	if o.ReadyForInternalApproval() {
		return c.moveTo(domain.OrderStatusWingoldApproved, actorSystem, "awaiting settlement approval")
	}
	return nil
}

// issueCustody creates one vault holding and one bar certificate per bar,
// then a single storage certificate for the order.
func (s *OrderServiceImpl) issueCustody(ctx context.Context, tx pgx.Tx, c *orderChange) error {
	o := c.order
	bars, err := s.bars.ListBarsByOrder(ctx, tx, o.ID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("list bars: %w", err))
	}
	holdings, err := s.bars.ListHoldingsByOrder(ctx, tx, o.ID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("list holdings: %w", err))
	}
	held := make(map[uuid.UUID]bool, len(holdings))
	for _, h := range holdings {
		held[h.BarLotID] = true
	}

	serials := make([]string, 0, len(bars))
	total := decimal.Zero
	for i := range bars {
		bar := bars[i]
		serials = append(serials, bar.SerialNumber)
		total = total.Add(bar.WeightGrams)
		if !held[bar.ID] {
			if err := s.bars.CreateHolding(ctx, tx, &domain.VaultHolding{
				ID:            uuid.New(),
				BarLotID:      bar.ID,
				OrderID:       o.ID,
				UserID:        o.UserID,
				WeightGrams:   bar.WeightGrams,
				VaultLocation: bar.VaultLocation,
				CreatedAt:     c.at,
			}); err != nil {
				return apperror.InternalError(fmt.Errorf("create holding: %w", err))
			}
		}
		if _, err := s.issueCertificate(ctx, tx, c, domain.CertificateBar, &bar.ID, map[string]any{
			"orderReference": o.ExternalReference,
			"serialNumber":   bar.SerialNumber,
			"weightGrams":    bar.WeightGrams,
			"purity":         bar.Purity,
			"vaultLocation":  bar.VaultLocation,
			"issuedAt":       c.at,
		}); err != nil {
			return err
		}
	}

	_, err = s.issueCertificate(ctx, tx, c, domain.CertificateStorage, nil, map[string]any{
		"orderReference": o.ExternalReference,
		"userId":         o.UserID,
		"barCount":       len(bars),
		"totalGrams":     total,
		"vaultLocation":  deref(o.VaultLocation),
		"serialNumbers":  serials,
		"issuedAt":       c.at,
	})
	return err
}

func (s *OrderServiceImpl) issueCertificate(ctx context.Context, tx pgx.Tx, c *orderChange, certType domain.CertificateType, barID *uuid.UUID, payload map[string]any) (*domain.Certificate, error) {
	cert, err := issueCertificate(ctx, tx, s.bars, s.signer, certType, c.order.ID, barID, payload, c.at)
	if err != nil {
		return nil, err
	}
	c.record("certificate_issued", actorSystem, cert.CertificateNumber)
	c.notify(domain.EventCertificateIssued, map[string]any{
		"certificateNumber": cert.CertificateNumber,
		"certificateType":   certType,
	})
	return cert, nil
}

// applyCertificate records a certificate issued by the custodian itself.
func (s *OrderServiceImpl) applyCertificate(ctx context.Context, tx pgx.Tx, c *orderChange, ev *domain.InboundEvent) error {
	number := strings.TrimSpace(ev.Data.CertificateNumber)
	if number == "" {
		return apperror.Validation("certificateNumber is required")
	}
	existing, err := s.bars.GetCertificateByNumber(ctx, tx, number)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get certificate: %w", err))
	}
	if existing != nil {
		return nil
	}

	certType := domain.CertificateCustodian
	if t := domain.CertificateType(strings.ToLower(strings.TrimSpace(ev.Data.CertificateType))); t.Valid() {
		certType = t
	}
	var barID *uuid.UUID
	if serial := strings.TrimSpace(ev.Data.SerialNumber); serial != "" {
		bar, err := s.bars.GetBarBySerial(ctx, tx, serial)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("get bar: %w", err))
		}
		if bar != nil && bar.OrderID == c.order.ID {
			barID = &bar.ID
		}
	}
	raw, err := json.Marshal(ev.Data)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("encode certificate: %w", err))
	}
	sig, err := s.signer.Sign(certType, raw)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("sign certificate: %w", err))
	}
	if err := s.bars.CreateCertificate(ctx, tx, &domain.Certificate{
		ID:                uuid.New(),
		CertificateNumber: number,
		Type:              certType,
		OrderID:           c.order.ID,
		BarLotID:          barID,
		Signature:         sig,
		Payload:           raw,
		IssuedAt:          c.at,
	}); err != nil {
		return apperror.InternalError(fmt.Errorf("create certificate: %w", err))
	}
	c.record("certificate_received", actorCustodian, number)
	c.notify(domain.EventCertificateIssued, map[string]any{
		"certificateNumber": number,
		"certificateType":   certType,
	})
	return nil
}

// GetOrder returns an order with its bars, certificates and holdings.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, orderID uuid.UUID) (*ports.OrderDetail, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	bars, err := s.bars.ListBarsByOrder(ctx, nil, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list bars: %w", err))
	}
	certs, err := s.bars.ListCertificatesByOrder(ctx, nil, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list certificates: %w", err))
	}
	holdings, err := s.bars.ListHoldingsByOrder(ctx, nil, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list holdings: %w", err))
	}
	return &ports.OrderDetail{Order: order, Bars: bars, Certificates: certs, Holdings: holdings}, nil
}

// ListOrders returns a page of orders, newest first.
func (s *OrderServiceImpl) ListOrders(ctx context.Context, params ports.OrderListParams) ([]domain.PurchaseOrder, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}
	orders, total, err := s.orders.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list orders: %w", err))
	}
	return orders, total, nil
}

func (s *OrderServiceImpl) lockOrder(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*orderChange, error) {
	order, err := s.orders.GetByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	trail, err := s.trails.GetByOrderForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load trail: %w", err))
	}
	return &orderChange{order: order, trail: trail, at: s.now()}, nil
}

func (s *OrderServiceImpl) openTrail(ctx context.Context, tx pgx.Tx, order *domain.PurchaseOrder, kind, actor string) error {
	if !s.cfg.TrailEnabled {
		return nil
	}
	trail := &domain.SettlementTrail{
		ID:        uuid.New(),
		OrderID:   order.ID,
		Status:    domain.TrailOpen,
		CreatedAt: order.CreatedAt,
	}
	trail.Append(kind, actor, order.ExternalReference, order.CreatedAt)
	if err := s.trails.Create(ctx, tx, trail); err != nil {
		return apperror.InternalError(fmt.Errorf("create trail: %w", err))
	}
	return nil
}

// persist writes the order and its trail, then commits tx.
func (s *OrderServiceImpl) persist(ctx context.Context, tx pgx.Tx, c *orderChange) error {
	c.order.UpdatedAt = c.at
	if err := s.orders.Update(ctx, tx, c.order); err != nil {
		return apperror.InternalError(fmt.Errorf("update order: %w", err))
	}
	if c.trail != nil {
		if err := s.trails.Update(ctx, tx, c.trail); err != nil {
			return apperror.InternalError(fmt.Errorf("update trail: %w", err))
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// publish runs the post-commit side effects of c.
func (s *OrderServiceImpl) publish(ctx context.Context, c *orderChange) {
	for _, st := range c.transitions {
		metrics.OrderTransitioned(string(st))
	}
	for _, n := range c.notifications {
		s.notifier.Notify(ctx, c.order, n.event, n.data)
	}
}

func (s *OrderServiceImpl) cancelAtCustodian(ctx context.Context, custodianOrderID, reason string) {
	if err := s.custodian.CancelOrder(context.WithoutCancel(ctx), custodianOrderID, reason); err != nil {
		s.log.Warn().Err(err).Str("custodian_order_id", custodianOrderID).Msg("custodian cancellation failed")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
