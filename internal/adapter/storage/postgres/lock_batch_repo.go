package postgres

import (
	"context"
	"fmt"

	"gold-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const lockBatchColumns = `id, user_id, conversion_id, original_grams, remaining_grams,
	lock_price_per_gram, status, created_at, updated_at`

// LockBatchRepo implements ports.LockBatchRepository.
type LockBatchRepo struct {
	pool Pool
}

// NewLockBatchRepo creates a new LockBatchRepo.
func NewLockBatchRepo(pool Pool) *LockBatchRepo {
	return &LockBatchRepo{pool: pool}
}

// Create inserts a lock batch.
func (r *LockBatchRepo) Create(ctx context.Context, tx pgx.Tx, b *domain.LockBatch) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO fpgw_lock_batches (`+lockBatchColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.UserID, b.ConversionID, b.OriginalGrams, b.RemainingGrams,
		b.LockPricePerGram, b.Status, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert lock batch: %w", err)
	}
	return nil
}

// ListActiveForUpdate locks the user's active batches, oldest first.
func (r *LockBatchRepo) ListActiveForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]domain.LockBatch, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+lockBatchColumns+` FROM fpgw_lock_batches
		WHERE user_id = $1 AND status = $2 ORDER BY created_at, id FOR UPDATE`,
		userID, domain.LockBatchActive)
	if err != nil {
		return nil, fmt.Errorf("list lock batches: %w", err)
	}
	defer rows.Close()

	var batches []domain.LockBatch
	for rows.Next() {
		b := domain.LockBatch{}
		if err := rows.Scan(&b.ID, &b.UserID, &b.ConversionID, &b.OriginalGrams, &b.RemainingGrams,
			&b.LockPricePerGram, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lock batch row: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lock batch rows: %w", err)
	}
	return batches, nil
}

// Update writes the remaining grams and status.
func (r *LockBatchRepo) Update(ctx context.Context, tx pgx.Tx, b *domain.LockBatch) error {
	_, err := tx.Exec(ctx,
		`UPDATE fpgw_lock_batches SET remaining_grams = $1, status = $2, updated_at = $3 WHERE id = $4`,
		b.RemainingGrams, b.Status, b.UpdatedAt, b.ID)
	if err != nil {
		return fmt.Errorf("update lock batch: %w", err)
	}
	return nil
}

// SumActiveLockedValue totals the USD value still locked across active batches.
func (r *LockBatchRepo) SumActiveLockedValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(remaining_grams * lock_price_per_gram), 0)
		FROM fpgw_lock_batches WHERE status = $1`, domain.LockBatchActive).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum locked value: %w", err)
	}
	return total, nil
}
