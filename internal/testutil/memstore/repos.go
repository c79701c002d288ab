package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct{ s *Store }

func (r *OrderRepo) Create(_ context.Context, tx pgx.Tx, o *domain.PurchaseOrder) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	if err := r.s.fault("orders.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.data.orders {
		if existing.ExternalReference == o.ExternalReference {
			return fmt.Errorf("duplicate order reference %s", o.ExternalReference)
		}
	}
	r.s.data.orders[o.ID] = *o
	return nil
}

func (r *OrderRepo) Update(_ context.Context, tx pgx.Tx, o *domain.PurchaseOrder) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	if err := r.s.fault("orders.update"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.orders[o.ID]; !ok {
		return fmt.Errorf("update order %s: no rows affected", o.ID)
	}
	r.s.data.orders[o.ID] = *o
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.data.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PurchaseOrder, error) {
	if err := checkTx(tx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *OrderRepo) GetByReferenceForUpdate(_ context.Context, tx pgx.Tx, reference string) (*domain.PurchaseOrder, error) {
	if err := checkTx(tx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.data.orders {
		if o.ExternalReference == reference || (o.CustodianOrderID != nil && *o.CustodianOrderID == reference) {
			return &o, nil
		}
	}
	return nil, nil
}

func (r *OrderRepo) List(_ context.Context, params ports.OrderListParams) ([]domain.PurchaseOrder, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var matched []domain.PurchaseOrder
	for _, o := range r.s.data.orders {
		if params.Status != nil && o.Status != *params.Status {
			continue
		}
		if params.UserID != nil && o.UserID != *params.UserID {
			continue
		}
		matched = append(matched, o)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start < 0 || start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// BarRepo implements ports.BarRepository.
type BarRepo struct{ s *Store }

func (r *BarRepo) CreateBar(_ context.Context, tx pgx.Tx, b *domain.BarLot) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	if err := r.s.fault("bars.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.data.bars {
		if existing.SerialNumber == b.SerialNumber {
			return fmt.Errorf("duplicate bar serial %s", b.SerialNumber)
		}
	}
	r.s.data.bars[b.ID] = *b
	return nil
}

func (r *BarRepo) GetBarBySerial(_ context.Context, _ pgx.Tx, serial string) (*domain.BarLot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.data.bars {
		if b.SerialNumber == serial {
			return &b, nil
		}
	}
	return nil, nil
}

func (r *BarRepo) ListBarsByOrder(_ context.Context, _ pgx.Tx, orderID uuid.UUID) ([]domain.BarLot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var bars []domain.BarLot
	for _, b := range r.s.data.bars {
		if b.OrderID == orderID {
			bars = append(bars, b)
		}
	}
	sort.Slice(bars, func(i, j int) bool {
		if !bars[i].CreatedAt.Equal(bars[j].CreatedAt) {
			return bars[i].CreatedAt.Before(bars[j].CreatedAt)
		}
		return bars[i].SerialNumber < bars[j].SerialNumber
	})
	return bars, nil
}

func (r *BarRepo) CreateCertificate(_ context.Context, tx pgx.Tx, c *domain.Certificate) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.data.certs {
		if existing.CertificateNumber == c.CertificateNumber {
			return fmt.Errorf("duplicate certificate number %s", c.CertificateNumber)
		}
	}
	r.s.data.certs[c.ID] = *c
	return nil
}

func (r *BarRepo) GetCertificateByNumber(_ context.Context, _ pgx.Tx, number string) (*domain.Certificate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.data.certs {
		if c.CertificateNumber == number {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *BarRepo) ListCertificatesByOrder(_ context.Context, _ pgx.Tx, orderID uuid.UUID) ([]domain.Certificate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var certs []domain.Certificate
	for _, c := range r.s.data.certs {
		if c.OrderID == orderID {
			certs = append(certs, c)
		}
	}
	sort.Slice(certs, func(i, j int) bool {
		if !certs[i].IssuedAt.Equal(certs[j].IssuedAt) {
			return certs[i].IssuedAt.Before(certs[j].IssuedAt)
		}
		return certs[i].CertificateNumber < certs[j].CertificateNumber
	})
	return certs, nil
}

func (r *BarRepo) CreateHolding(_ context.Context, tx pgx.Tx, h *domain.VaultHolding) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.data.holdings {
		if existing.BarLotID == h.BarLotID {
			return fmt.Errorf("duplicate vault holding for bar %s", h.BarLotID)
		}
	}
	r.s.data.holdings[h.ID] = *h
	return nil
}

func (r *BarRepo) ListHoldingsByOrder(_ context.Context, _ pgx.Tx, orderID uuid.UUID) ([]domain.VaultHolding, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var holdings []domain.VaultHolding
	for _, h := range r.s.data.holdings {
		if h.OrderID == orderID {
			holdings = append(holdings, h)
		}
	}
	sort.Slice(holdings, func(i, j int) bool { return holdings[i].CreatedAt.Before(holdings[j].CreatedAt) })
	return holdings, nil
}

func (r *BarRepo) LinkHoldingsToCredit(_ context.Context, tx pgx.Tx, orderID, creditTxID uuid.UUID) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, h := range r.s.data.holdings {
		if h.OrderID == orderID && h.CreditTransactionID == nil {
			credit := creditTxID
			h.CreditTransactionID = &credit
			r.s.data.holdings[id] = h
		}
	}
	return nil
}

func (r *BarRepo) SumInVaultGrams(_ context.Context) (decimal.Decimal, error) {
	if err := r.s.fault("bars.sum"); err != nil {
		return decimal.Zero, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, b := range r.s.data.bars {
		if b.CustodyStatus == domain.CustodyInVault {
			total = total.Add(b.WeightGrams)
		}
	}
	return total, nil
}

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct{ s *Store }

func (r *WalletRepo) find(userID uuid.UUID, class domain.WalletClass) (*domain.Wallet, bool) {
	for _, w := range r.s.data.wallets {
		if w.UserID == userID && w.Class == class {
			return &w, true
		}
	}
	return nil, false
}

func (r *WalletRepo) GetOrCreateForUpdate(_ context.Context, tx pgx.Tx, userID uuid.UUID, class domain.WalletClass) (*domain.Wallet, error) {
	if err := checkTx(tx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if w, ok := r.find(userID, class); ok {
		return w, nil
	}
	w := domain.NewWallet(userID, class, time.Now().UTC())
	r.s.data.wallets[w.ID] = *w
	return w, nil
}

func (r *WalletRepo) Get(_ context.Context, userID uuid.UUID, class domain.WalletClass) (*domain.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, _ := r.find(userID, class)
	return w, nil
}

func (r *WalletRepo) Update(_ context.Context, tx pgx.Tx, w *domain.Wallet) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	if err := r.s.fault("wallets.update"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.wallets[w.ID]; !ok {
		return fmt.Errorf("update wallet %s: no rows affected", w.ID)
	}
	r.s.data.wallets[w.ID] = *w
	return nil
}

func (r *WalletRepo) CreateTransaction(_ context.Context, tx pgx.Tx, wtx *domain.WalletTransaction) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.walletTxs = append(r.s.data.walletTxs, *wtx)
	return nil
}

func (r *WalletRepo) SumClaims(_ context.Context, class domain.WalletClass) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, w := range r.s.data.wallets {
		if w.Class == class {
			total = total.Add(w.TotalClaim())
		}
	}
	return total, nil
}

// LockBatchRepo implements ports.LockBatchRepository.
type LockBatchRepo struct{ s *Store }

func (r *LockBatchRepo) Create(_ context.Context, tx pgx.Tx, b *domain.LockBatch) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.batches[b.ID] = *b
	return nil
}

func (r *LockBatchRepo) ListActiveForUpdate(_ context.Context, tx pgx.Tx, userID uuid.UUID) ([]domain.LockBatch, error) {
	if err := checkTx(tx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var batches []domain.LockBatch
	for _, b := range r.s.data.batches {
		if b.UserID == userID && b.Status == domain.LockBatchActive {
			batches = append(batches, b)
		}
	}
	sort.Slice(batches, func(i, j int) bool { return batches[i].CreatedAt.Before(batches[j].CreatedAt) })
	return batches, nil
}

func (r *LockBatchRepo) Update(_ context.Context, tx pgx.Tx, b *domain.LockBatch) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.batches[b.ID] = *b
	return nil
}

func (r *LockBatchRepo) SumActiveLockedValue(_ context.Context) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, b := range r.s.data.batches {
		if b.Status == domain.LockBatchActive {
			total = total.Add(b.LockedValue())
		}
	}
	return total, nil
}

// CashLedgerRepo implements ports.CashLedgerRepository. The append lock is
// the store-wide transaction lock already held by tx.
type CashLedgerRepo struct{ s *Store }

func (r *CashLedgerRepo) AcquireAppendLock(_ context.Context, tx pgx.Tx) error {
	return checkTx(tx)
}

func (r *CashLedgerRepo) Latest(_ context.Context, _ pgx.Tx) (*domain.CashLedgerEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if len(r.s.data.cash) == 0 {
		return nil, nil
	}
	e := r.s.data.cash[len(r.s.data.cash)-1]
	return &e, nil
}

func (r *CashLedgerRepo) Insert(_ context.Context, tx pgx.Tx, e *domain.CashLedgerEntry) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	if err := r.s.fault("cash.insert"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if n := len(r.s.data.cash); n > 0 && r.s.data.cash[n-1].Sequence >= e.Sequence {
		return fmt.Errorf("duplicate cash ledger sequence %d", e.Sequence)
	}
	r.s.data.cash = append(r.s.data.cash, *e)
	return nil
}

func (r *CashLedgerRepo) GetByID(_ context.Context, _ pgx.Tx, id uuid.UUID) (*domain.CashLedgerEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.data.cash {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (r *CashLedgerRepo) List(_ context.Context, afterSequence int64, limit int) ([]domain.CashLedgerEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var entries []domain.CashLedgerEntry
	for _, e := range r.s.data.cash {
		if e.Sequence > afterSequence {
			entries = append(entries, e)
			if len(entries) == limit {
				break
			}
		}
	}
	return entries, nil
}

// ConversionRepo implements ports.ConversionRepository.
type ConversionRepo struct{ s *Store }

func (r *ConversionRepo) Create(_ context.Context, tx pgx.Tx, c *domain.WalletConversion) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.conversions[c.ID] = *c
	return nil
}

func (r *ConversionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.WalletConversion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.data.conversions[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ConversionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletConversion, error) {
	if err := checkTx(tx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *ConversionRepo) Update(_ context.Context, tx pgx.Tx, c *domain.WalletConversion) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.conversions[c.ID] = *c
	return nil
}

func (r *ConversionRepo) List(_ context.Context, status *domain.ConversionStatus, limit int) ([]domain.WalletConversion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.WalletConversion
	for _, c := range r.s.data.conversions {
		if status == nil || c.Status == *status {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// AlertRepo implements ports.AlertRepository.
type AlertRepo struct{ s *Store }

func (r *AlertRepo) Create(_ context.Context, a *domain.ReconciliationAlert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.alerts {
		if !existing.Resolved && existing.Fingerprint == a.Fingerprint {
			return fmt.Errorf("duplicate unresolved alert %s", a.Fingerprint)
		}
	}
	r.s.alerts[a.ID] = *a
	return nil
}

func (r *AlertRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ReconciliationAlert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.alerts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AlertRepo) FindUnresolvedByFingerprint(_ context.Context, fingerprint string) (*domain.ReconciliationAlert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.alerts {
		if !a.Resolved && a.Fingerprint == fingerprint {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AlertRepo) Resolve(_ context.Context, id, resolvedBy uuid.UUID, notes string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.alerts[id]
	if !ok || a.Resolved {
		return false, nil
	}
	a.Resolved = true
	a.ResolvedBy = &resolvedBy
	a.ResolutionNotes = &notes
	a.ResolvedAt = &at
	r.s.alerts[id] = a
	return true, nil
}

func (r *AlertRepo) List(_ context.Context, unresolvedOnly bool, limit int) ([]domain.ReconciliationAlert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.ReconciliationAlert
	for _, a := range r.s.alerts {
		if unresolvedOnly && a.Resolved {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// WebhookAuditRepo implements ports.WebhookAuditRepository.
type WebhookAuditRepo struct{ s *Store }

func (r *WebhookAuditRepo) Create(_ context.Context, e *domain.WebhookAuditEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.webhookAudit = append(r.s.webhookAudit, *e)
	return nil
}

func (r *WebhookAuditRepo) ListRecent(_ context.Context, limit int) ([]domain.WebhookAuditEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.WebhookAuditEntry
	for i := len(r.s.webhookAudit) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.s.webhookAudit[i])
	}
	return out, nil
}

// DeliveryLogRepo implements ports.DeliveryLogRepository.
type DeliveryLogRepo struct{ s *Store }

func (r *DeliveryLogRepo) Create(_ context.Context, e *domain.OutboundDeliveryLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deliveries = append(r.s.deliveries, *e)
	return nil
}

func (r *DeliveryLogRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]domain.OutboundDeliveryLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.OutboundDeliveryLog
	for _, d := range r.s.deliveries {
		if d.OrderID == orderID {
			out = append(out, d)
		}
	}
	return out, nil
}

// TrailRepo implements ports.TrailRepository.
type TrailRepo struct{ s *Store }

func (r *TrailRepo) Create(_ context.Context, tx pgx.Tx, t *domain.SettlementTrail) error {
	if err := checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *t
	c.Events = append([]domain.TrailEvent(nil), t.Events...)
	r.s.data.trails[t.OrderID] = c
	return nil
}

func (r *TrailRepo) GetByOrderForUpdate(_ context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.SettlementTrail, error) {
	if err := checkTx(tx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.data.trails[orderID]
	if !ok {
		return nil, nil
	}
	t.Events = append([]domain.TrailEvent(nil), t.Events...)
	return &t, nil
}

func (r *TrailRepo) Update(ctx context.Context, tx pgx.Tx, t *domain.SettlementTrail) error {
	return r.Create(ctx, tx, t)
}

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct{ s *Store }

func (r *AuditRepo) Create(_ context.Context, e *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.auditLogs = append(r.s.auditLogs, *e)
	return nil
}
