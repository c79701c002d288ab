package postgres

import (
	"context"
	"errors"
	"fmt"

	"gold-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// cashLedgerLockKey is the pg_advisory_xact_lock key serializing appends.
const cashLedgerLockKey int64 = 0x67736301

const cashLedgerColumns = `id, sequence, entry_type, direction, amount, running_balance,
	conversion_id, actor_id, note, created_at`

// CashLedgerRepo implements ports.CashLedgerRepository.
type CashLedgerRepo struct {
	pool Pool
}

// NewCashLedgerRepo creates a new CashLedgerRepo.
func NewCashLedgerRepo(pool Pool) *CashLedgerRepo {
	return &CashLedgerRepo{pool: pool}
}

func scanCashEntry(row pgx.Row) (*domain.CashLedgerEntry, error) {
	e := &domain.CashLedgerEntry{}
	err := row.Scan(&e.ID, &e.Sequence, &e.EntryType, &e.Direction, &e.Amount, &e.RunningBalance,
		&e.ConversionID, &e.ActorID, &e.Note, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// AcquireAppendLock takes a transaction-scoped advisory lock; concurrent
// appenders queue here until the holder commits or rolls back.
func (r *CashLedgerRepo) AcquireAppendLock(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, cashLedgerLockKey); err != nil {
		return fmt.Errorf("acquire cash ledger lock: %w", err)
	}
	return nil
}

// Latest returns the entry with the highest sequence, or nil for an empty ledger.
func (r *CashLedgerRepo) Latest(ctx context.Context, tx pgx.Tx) (*domain.CashLedgerEntry, error) {
	e, err := scanCashEntry(on(r.pool, tx).QueryRow(ctx,
		`SELECT `+cashLedgerColumns+` FROM cash_ledger_entries ORDER BY sequence DESC LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest cash entry: %w", err)
	}
	return e, nil
}

// Insert appends an entry.
func (r *CashLedgerRepo) Insert(ctx context.Context, tx pgx.Tx, e *domain.CashLedgerEntry) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO cash_ledger_entries (`+cashLedgerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.Sequence, e.EntryType, e.Direction, e.Amount, e.RunningBalance,
		e.ConversionID, e.ActorID, e.Note, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert cash entry: %w", err)
	}
	return nil
}

// GetByID fetches one entry.
func (r *CashLedgerRepo) GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CashLedgerEntry, error) {
	e, err := scanCashEntry(on(r.pool, tx).QueryRow(ctx,
		`SELECT `+cashLedgerColumns+` FROM cash_ledger_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash entry: %w", err)
	}
	return e, nil
}

// List returns entries after afterSequence, oldest first.
func (r *CashLedgerRepo) List(ctx context.Context, afterSequence int64, limit int) ([]domain.CashLedgerEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cashLedgerColumns+` FROM cash_ledger_entries WHERE sequence > $1 ORDER BY sequence LIMIT $2`,
		afterSequence, limit)
	if err != nil {
		return nil, fmt.Errorf("list cash entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.CashLedgerEntry
	for rows.Next() {
		e, err := scanCashEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cash entry row: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cash entry rows: %w", err)
	}
	return entries, nil
}
