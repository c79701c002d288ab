package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/internal/metrics"
	"gold-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	reconciliationLockKey = "reconciliation"
	defaultAlertLimit     = 100
)

// ReconciliationConfig holds the thresholds and lock lease of a run.
type ReconciliationConfig struct {
	Policy  domain.SeverityPolicy
	LockTTL time.Duration
}

// ReconciliationServiceImpl implements ports.ReconciliationService.
type ReconciliationServiceImpl struct {
	wallets  ports.WalletRepository
	bars     ports.BarRepository
	batches  ports.LockBatchRepository
	cash     ports.CashLedgerService
	alerts   ports.AlertRepository
	locker   ports.RunLocker
	auditSvc ports.AuditService
	cfg      ReconciliationConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewReconciliationService creates a new ReconciliationServiceImpl.
func NewReconciliationService(
	wallets ports.WalletRepository,
	bars ports.BarRepository,
	batches ports.LockBatchRepository,
	cash ports.CashLedgerService,
	alerts ports.AlertRepository,
	locker ports.RunLocker,
	auditSvc ports.AuditService,
	cfg ReconciliationConfig,
	log zerolog.Logger,
) *ReconciliationServiceImpl {
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = time.Minute
	}
	if cfg.Policy.CriticalPct.IsZero() && cfg.Policy.WarningPct.IsZero() {
		cfg.Policy = domain.DefaultSeverityPolicy()
	}
	return &ReconciliationServiceImpl{
		wallets:  wallets,
		bars:     bars,
		batches:  batches,
		cash:     cash,
		alerts:   alerts,
		locker:   locker,
		auditSvc: auditSvc,
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type snapshot struct {
	mpgwClaims  decimal.Decimal
	vaultGrams  decimal.Decimal
	lockedValue decimal.Decimal
	cashBalance decimal.Decimal
}

// Run compares MPGW claims against in-vault bar weight and active FPGW
// locked value against the cash ledger balance. Only one run executes at a
// time across instances; a concurrent run fails with SYS_002.
func (s *ReconciliationServiceImpl) Run(ctx context.Context, trigger string) (*ports.RunReport, error) {
	lock, err := s.locker.Acquire(ctx, reconciliationLockKey, s.cfg.LockTTL)
	if err != nil {
		if errors.Is(err, ports.ErrLockHeld) {
			metrics.ReconciliationRun(trigger, "skipped")
			s.log.Info().Str("trigger", trigger).Msg("reconciliation already running")
			return nil, apperror.ErrLockNotObtained(err)
		}
		metrics.ReconciliationRun(trigger, "error")
		return nil, apperror.InternalError(fmt.Errorf("acquire reconciliation lock: %w", err))
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			s.log.Warn().Err(err).Msg("failed to release reconciliation lock")
		}
	}()

	report := &ports.RunReport{Trigger: trigger, StartedAt: s.now()}
	snap, err := s.collect(ctx)
	if err != nil {
		metrics.ReconciliationRun(trigger, "error")
		return nil, err
	}

	checks := []struct {
		typ     domain.AlertType
		backing decimal.Decimal
		claims  decimal.Decimal
	}{
		{domain.AlertMPGWExceedsPhysical, snap.vaultGrams, snap.mpgwClaims},
		{domain.AlertFPGWExceedsCash, snap.cashBalance, snap.lockedValue},
	}
	for _, c := range checks {
		result, err := s.check(ctx, c.typ, c.backing, c.claims)
		if err != nil {
			metrics.ReconciliationRun(trigger, "error")
			return nil, err
		}
		report.Checks = append(report.Checks, *result)
	}
	report.FinishedAt = s.now()

	outcome := "ok"
	for _, c := range report.Checks {
		if c.Divergence.Exceeds() {
			outcome = "divergent"
			break
		}
	}
	metrics.ReconciliationRun(trigger, outcome)
	s.log.Info().
		Str("trigger", trigger).
		Str("outcome", outcome).
		Str("mpgw_claims", snap.mpgwClaims.String()).
		Str("vault_grams", snap.vaultGrams.String()).
		Str("locked_value", snap.lockedValue.String()).
		Str("cash_balance", snap.cashBalance.String()).
		Dur("elapsed", report.FinishedAt.Sub(report.StartedAt)).
		Msg("reconciliation finished")
	return report, nil
}

// collect reads the four aggregates concurrently.
func (s *ReconciliationServiceImpl) collect(ctx context.Context) (*snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.wallets.SumClaims(gctx, domain.WalletMPGW)
		if err != nil {
			return fmt.Errorf("sum MPGW claims: %w", err)
		}
		snap.mpgwClaims = v
		return nil
	})
	g.Go(func() error {
		v, err := s.bars.SumInVaultGrams(gctx)
		if err != nil {
			return fmt.Errorf("sum in-vault grams: %w", err)
		}
		snap.vaultGrams = v
		return nil
	})
	g.Go(func() error {
		v, err := s.batches.SumActiveLockedValue(gctx)
		if err != nil {
			return fmt.Errorf("sum locked value: %w", err)
		}
		snap.lockedValue = v.Round(2)
		return nil
	})
	g.Go(func() error {
		v, err := s.cash.Balance(gctx)
		if err != nil {
			return fmt.Errorf("read cash balance: %w", err)
		}
		snap.cashBalance = v
		return nil
	})
	if err := g.Wait(); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.InternalError(err)
	}
	return &snap, nil
}

func (s *ReconciliationServiceImpl) check(ctx context.Context, typ domain.AlertType, backing, claims decimal.Decimal) (*ports.CheckResult, error) {
	div := domain.MeasureDivergence(backing, claims)
	metrics.ObserveDivergence(string(typ), div.Percentage)
	result := &ports.CheckResult{Type: typ, Divergence: div, Severity: domain.SeverityInfo}
	if !div.Exceeds() {
		return result, nil
	}
	result.Severity = s.cfg.Policy.Classify(div.Percentage)

	fingerprint := domain.AlertFingerprint(typ, div.Expected, div.Actual)
	existing, err := s.alerts.FindUnresolvedByFingerprint(ctx, fingerprint)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find alert: %w", err))
	}
	if existing != nil {
		result.AlertID = &existing.ID
		result.Suppressed = true
		return result, nil
	}

	alert := domain.NewAlert(typ, div, s.cfg.Policy, s.now())
	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create alert: %w", err))
	}
	result.AlertID = &alert.ID
	s.log.Warn().
		Str("alert_id", alert.ID.String()).
		Str("type", string(typ)).
		Str("severity", string(alert.Severity)).
		Str("expected", div.Expected.String()).
		Str("actual", div.Actual.String()).
		Str("pct", div.Percentage.String()).
		Msg("reconciliation divergence")
	return result, nil
}

// ResolveAlert closes an unresolved alert. Resolving twice fails with ORD_003.
func (s *ReconciliationServiceImpl) ResolveAlert(ctx context.Context, alertID, actorID uuid.UUID, notes string) (*domain.ReconciliationAlert, error) {
	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get alert: %w", err))
	}
	if alert == nil {
		return nil, apperror.ErrNotFound("alert")
	}
	if alert.Resolved {
		return nil, apperror.ErrAlertAlreadyResolved()
	}

	now := s.now()
	changed, err := s.alerts.Resolve(ctx, alertID, actorID, notes, now)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve alert: %w", err))
	}
	if !changed {
		return nil, apperror.ErrAlertAlreadyResolved()
	}
	alert.Resolved = true
	alert.ResolvedBy = &actorID
	alert.ResolutionNotes = &notes
	alert.ResolvedAt = &now

	s.auditSvc.Log(ctx, newAuditEntry(actorRef(actorID), domain.AuditActionResolveAlert, "reconciliation_alert", alertID.String(), "success", map[string]any{
		"type":  alert.Type,
		"notes": notes,
	}))
	return alert, nil
}

// ListAlerts returns alerts, newest first.
func (s *ReconciliationServiceImpl) ListAlerts(ctx context.Context, unresolvedOnly bool, limit int) ([]domain.ReconciliationAlert, error) {
	if limit <= 0 {
		limit = defaultAlertLimit
	}
	alerts, err := s.alerts.List(ctx, unresolvedOnly, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list alerts: %w", err))
	}
	return alerts, nil
}
