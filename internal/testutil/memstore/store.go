// Package memstore provides in-memory implementations of the repository
// ports for service and end-to-end tests.
package memstore

import (
	"context"
	"errors"
	"sync"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// txState holds every collection written through a pgx.Tx. It is
// snapshotted on Begin and restored on Rollback.
type txState struct {
	orders      map[uuid.UUID]domain.PurchaseOrder
	bars        map[uuid.UUID]domain.BarLot
	certs       map[uuid.UUID]domain.Certificate
	holdings    map[uuid.UUID]domain.VaultHolding
	wallets     map[uuid.UUID]domain.Wallet
	walletTxs   []domain.WalletTransaction
	batches     map[uuid.UUID]domain.LockBatch
	cash        []domain.CashLedgerEntry
	conversions map[uuid.UUID]domain.WalletConversion
	trails      map[uuid.UUID]domain.SettlementTrail
}

func newTxState() *txState {
	return &txState{
		orders:      map[uuid.UUID]domain.PurchaseOrder{},
		bars:        map[uuid.UUID]domain.BarLot{},
		certs:       map[uuid.UUID]domain.Certificate{},
		holdings:    map[uuid.UUID]domain.VaultHolding{},
		wallets:     map[uuid.UUID]domain.Wallet{},
		batches:     map[uuid.UUID]domain.LockBatch{},
		conversions: map[uuid.UUID]domain.WalletConversion{},
		trails:      map[uuid.UUID]domain.SettlementTrail{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *txState) clone() *txState {
	trails := make(map[uuid.UUID]domain.SettlementTrail, len(s.trails))
	for k, t := range s.trails {
		t.Events = append([]domain.TrailEvent(nil), t.Events...)
		trails[k] = t
	}
	return &txState{
		orders:      cloneMap(s.orders),
		bars:        cloneMap(s.bars),
		certs:       cloneMap(s.certs),
		holdings:    cloneMap(s.holdings),
		wallets:     cloneMap(s.wallets),
		walletTxs:   append([]domain.WalletTransaction(nil), s.walletTxs...),
		batches:     cloneMap(s.batches),
		cash:        append([]domain.CashLedgerEntry(nil), s.cash...),
		conversions: cloneMap(s.conversions),
		trails:      trails,
	}
}

// Store is a process-local database. Transactions are serialized by a
// store-wide lock, which also stands in for row and advisory locks.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *txState

	alerts       map[uuid.UUID]domain.ReconciliationAlert
	webhookAudit []domain.WebhookAuditEntry
	deliveries   []domain.OutboundDeliveryLog
	auditLogs    []domain.AuditLog

	faultMu sync.Mutex
	faults  map[string]error
}

// New returns an empty store.
func New() *Store {
	return &Store{
		data:   newTxState(),
		alerts: map[uuid.UUID]domain.ReconciliationAlert{},
		faults: map[string]error{},
	}
}

// FailNext makes the next call of op return err once. op names are
// "<repo>.<method>", e.g. "wallets.update".
func (s *Store) FailNext(op string, err error) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	err, ok := s.faults[op]
	if ok {
		delete(s.faults, op)
	}
	return err
}

// Begin implements ports.DBTransactor.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := s.fault("tx.begin"); err != nil {
		return nil, err
	}
	s.txMu.Lock()
	s.mu.RLock()
	snap := s.data.clone()
	s.mu.RUnlock()
	return &Tx{store: s, snapshot: snap}, nil
}

// Tx is the transaction handle returned by Begin. Only Commit and Rollback
// are implemented.
type Tx struct {
	pgx.Tx
	store    *Store
	snapshot *txState
	once     sync.Once
	closed   bool
}

// Commit keeps every write made since Begin.
func (t *Tx) Commit(_ context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	if err := t.store.fault("tx.commit"); err != nil {
		t.finish(true)
		return err
	}
	t.finish(false)
	return nil
}

// Rollback discards every write made since Begin. It is a no-op after Commit.
func (t *Tx) Rollback(_ context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.finish(true)
	return nil
}

func (t *Tx) finish(restore bool) {
	t.once.Do(func() {
		t.closed = true
		if restore {
			t.store.mu.Lock()
			t.store.data = t.snapshot
			t.store.mu.Unlock()
		}
		t.store.txMu.Unlock()
	})
}

// ErrClosedTx is returned when a repository is called with a finished tx.
var ErrClosedTx = errors.New("memstore: transaction already closed")

func checkTx(tx pgx.Tx) error {
	if t, ok := tx.(*Tx); ok && t.closed {
		return ErrClosedTx
	}
	return nil
}

// Repos bundles every repository view of the store.
type Repos struct {
	Orders       ports.OrderRepository
	Bars         ports.BarRepository
	Wallets      ports.WalletRepository
	LockBatches  ports.LockBatchRepository
	CashLedger   ports.CashLedgerRepository
	Conversions  ports.ConversionRepository
	Alerts       ports.AlertRepository
	WebhookAudit ports.WebhookAuditRepository
	DeliveryLogs ports.DeliveryLogRepository
	Trails       ports.TrailRepository
	Audit        ports.AuditRepository
	Transactor   ports.DBTransactor
}

// Repos returns the repository views.
func (s *Store) Repos() Repos {
	return Repos{
		Orders:       &OrderRepo{s},
		Bars:         &BarRepo{s},
		Wallets:      &WalletRepo{s},
		LockBatches:  &LockBatchRepo{s},
		CashLedger:   &CashLedgerRepo{s},
		Conversions:  &ConversionRepo{s},
		Alerts:       &AlertRepo{s},
		WebhookAudit: &WebhookAuditRepo{s},
		DeliveryLogs: &DeliveryLogRepo{s},
		Trails:       &TrailRepo{s},
		Audit:        &AuditRepo{s},
		Transactor:   s,
	}
}

// WalletTransactions returns every recorded wallet transaction.
func (s *Store) WalletTransactions() []domain.WalletTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.WalletTransaction(nil), s.data.walletTxs...)
}

// AuditLogs returns every persisted audit entry.
func (s *Store) AuditLogs() []domain.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AuditLog(nil), s.auditLogs...)
}

// WebhookAuditEntries returns every persisted webhook audit entry.
func (s *Store) WebhookAuditEntries() []domain.WebhookAuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.WebhookAuditEntry(nil), s.webhookAudit...)
}

// Deliveries returns every outbound delivery log.
func (s *Store) Deliveries() []domain.OutboundDeliveryLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.OutboundDeliveryLog(nil), s.deliveries...)
}

// PutWallet seeds a wallet.
func (s *Store) PutWallet(w domain.Wallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.wallets[w.ID] = w
}

// PutBar seeds a bar lot.
func (s *Store) PutBar(b domain.BarLot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.bars[b.ID] = b
}

// PutOrder seeds an order.
func (s *Store) PutOrder(o domain.PurchaseOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.orders[o.ID] = o
}

// PutLockBatch seeds a lock batch.
func (s *Store) PutLockBatch(b domain.LockBatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.batches[b.ID] = b
}
