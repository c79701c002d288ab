package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gold-settlement/internal/adapter/storage/cache"
	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/testutil/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reconciliationDeps struct {
	store  *memstore.Store
	cash   *CashLedgerServiceImpl
	locker *cache.LocalRunLocker
	audit  *recordingAudit
	svc    *ReconciliationServiceImpl
}

func setupReconciliation(t *testing.T) *reconciliationDeps {
	t.Helper()
	store := memstore.New()
	repos := store.Repos()
	audit := &recordingAudit{}
	cash := NewCashLedgerService(repos.CashLedger, repos.Transactor, audit, newTestLogger())
	locker := cache.NewLocalRunLocker(16, time.Minute)
	return &reconciliationDeps{
		store:  store,
		cash:   cash,
		locker: locker,
		audit:  audit,
		svc: NewReconciliationService(
			repos.Wallets, repos.Bars, repos.LockBatches, cash, repos.Alerts, locker, audit,
			ReconciliationConfig{Policy: domain.DefaultSeverityPolicy(), LockTTL: time.Minute},
			newTestLogger(),
		),
	}
}

// seed puts claims grams into one MPGW wallet and vault grams into one bar.
func (d *reconciliationDeps) seed(claims, vault string) {
	now := time.Now().UTC()
	w := domain.NewWallet(uuid.New(), domain.WalletMPGW, now)
	w.AvailableGrams = dec(claims)
	d.store.PutWallet(*w)
	d.store.PutBar(domain.BarLot{
		ID:            uuid.New(),
		OrderID:       uuid.New(),
		SerialNumber:  "SN-" + uuid.NewString()[:8],
		WeightGrams:   dec(vault),
		Purity:        dec("0.9999"),
		VaultLocation: "Dubai",
		CustodyStatus: domain.CustodyInVault,
		CreatedAt:     now,
	})
}

func TestRun_Balanced(t *testing.T) {
	d := setupReconciliation(t)
	d.seed("100", "100")

	report, err := d.svc.Run(context.Background(), "manual")

	require.NoError(t, err)
	require.Len(t, report.Checks, 2)
	for _, c := range report.Checks {
		assert.Nil(t, c.AlertID)
		assert.Equal(t, domain.SeverityInfo, c.Severity)
	}
	alerts, err := d.svc.ListAlerts(context.Background(), true, 0)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestRun_Severity(t *testing.T) {
	tests := []struct {
		name     string
		claims   string
		vault    string
		severity domain.AlertSeverity
		pct      string
	}{
		{"small drift stays info", "102", "100", domain.SeverityInfo, "1.9608"},
		{"warning", "110", "100", domain.SeverityWarning, "9.0909"},
		{"critical", "125", "100", domain.SeverityCritical, "20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupReconciliation(t)
			d.seed(tt.claims, tt.vault)

			report, err := d.svc.Run(context.Background(), "manual")

			require.NoError(t, err)
			mpgw := report.Checks[0]
			assert.Equal(t, domain.AlertMPGWExceedsPhysical, mpgw.Type)
			assert.Equal(t, tt.severity, mpgw.Severity)
			assert.True(t, mpgw.Divergence.Percentage.Equal(dec(tt.pct)), mpgw.Divergence.Percentage.String())
			require.NotNil(t, mpgw.AlertID)

			alerts, err := d.svc.ListAlerts(context.Background(), true, 0)
			require.NoError(t, err)
			require.Len(t, alerts, 1)
			assert.Equal(t, tt.severity, alerts[0].Severity)
			assert.True(t, alerts[0].ActualValue.Equal(dec(tt.claims)))
		})
	}
}

func TestRun_BackingAboveClaimsRaisesNoAlert(t *testing.T) {
	d := setupReconciliation(t)
	d.seed("50", "100")

	report, err := d.svc.Run(context.Background(), "scheduled")

	require.NoError(t, err)
	assert.Nil(t, report.Checks[0].AlertID)
	assert.False(t, report.Checks[0].Divergence.Exceeds())
}

func TestRun_SuppressesDuplicateAlert(t *testing.T) {
	d := setupReconciliation(t)
	ctx := context.Background()
	d.seed("110", "100")

	first, err := d.svc.Run(ctx, "scheduled")
	require.NoError(t, err)
	second, err := d.svc.Run(ctx, "scheduled")
	require.NoError(t, err)

	assert.False(t, first.Checks[0].Suppressed)
	assert.True(t, second.Checks[0].Suppressed)
	assert.Equal(t, *first.Checks[0].AlertID, *second.Checks[0].AlertID)
	alerts, err := d.svc.ListAlerts(ctx, false, 0)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)

	// once resolved, the same snapshot alerts again
	_, err = d.svc.ResolveAlert(ctx, *first.Checks[0].AlertID, uuid.New(), "bar in transit")
	require.NoError(t, err)
	third, err := d.svc.Run(ctx, "scheduled")
	require.NoError(t, err)
	assert.False(t, third.Checks[0].Suppressed)
	assert.NotEqual(t, *first.Checks[0].AlertID, *third.Checks[0].AlertID)
}

func TestRun_FPGWExceedsCash(t *testing.T) {
	d := setupReconciliation(t)
	ctx := context.Background()
	d.seed("0", "0")
	now := time.Now().UTC()
	d.store.PutLockBatch(domain.LockBatch{
		ID: uuid.New(), UserID: uuid.New(), ConversionID: uuid.New(),
		OriginalGrams: dec("10"), RemainingGrams: dec("10"), LockPricePerGram: dec("80"),
		Status: domain.LockBatchActive, CreatedAt: now, UpdatedAt: now,
	})
	_, err := d.cash.AppendEntry(ctx, deposit("700"))
	require.NoError(t, err)

	report, err := d.svc.Run(ctx, "manual")

	require.NoError(t, err)
	fpgw := report.Checks[1]
	assert.Equal(t, domain.AlertFPGWExceedsCash, fpgw.Type)
	assert.True(t, fpgw.Divergence.Expected.Equal(dec("700")))
	assert.True(t, fpgw.Divergence.Actual.Equal(dec("800")))
	assert.Equal(t, domain.SeverityCritical, fpgw.Severity)
	require.NotNil(t, fpgw.AlertID)
}

func TestRun_LockHeld(t *testing.T) {
	d := setupReconciliation(t)
	ctx := context.Background()
	held, err := d.locker.Acquire(ctx, reconciliationLockKey, time.Minute)
	require.NoError(t, err)

	_, err = d.svc.Run(ctx, "manual")
	assertAppError(t, err, "SYS_002")

	require.NoError(t, held.Release(ctx))
	_, err = d.svc.Run(ctx, "manual")
	require.NoError(t, err)
}

func TestRun_ReleasesLockOnError(t *testing.T) {
	d := setupReconciliation(t)
	ctx := context.Background()
	d.store.FailNext("bars.sum", errors.New("statement timeout"))

	_, err := d.svc.Run(ctx, "manual")
	assertAppError(t, err, "SYS_001")

	_, err = d.svc.Run(ctx, "manual")
	require.NoError(t, err)
}

func TestResolveAlert(t *testing.T) {
	d := setupReconciliation(t)
	ctx := context.Background()
	d.seed("110", "100")
	report, err := d.svc.Run(ctx, "manual")
	require.NoError(t, err)
	alertID := *report.Checks[0].AlertID
	actor := uuid.New()

	resolved, err := d.svc.ResolveAlert(ctx, alertID, actor, "recount done")

	require.NoError(t, err)
	assert.True(t, resolved.Resolved)
	assert.Equal(t, actor, *resolved.ResolvedBy)
	assert.Equal(t, "recount done", *resolved.ResolutionNotes)
	assert.Len(t, d.audit.find(domain.AuditActionResolveAlert), 1)

	_, err = d.svc.ResolveAlert(ctx, alertID, actor, "again")
	assertAppError(t, err, "ORD_003")

	_, err = d.svc.ResolveAlert(ctx, uuid.New(), actor, "")
	assertAppError(t, err, "DAT_002")
}
