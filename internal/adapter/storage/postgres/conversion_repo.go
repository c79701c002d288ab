package postgres

import (
	"context"
	"errors"
	"fmt"

	"gold-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const conversionColumns = `id, user_id, direction, gold_grams, spot_price_per_gram, locked_value_usd,
	fee_usd, status, execution_price_per_gram, execution_value_usd, ledger_entry_id, reviewed_by,
	rejection_reason, created_at, reviewed_at, completed_at`

// ConversionRepo implements ports.ConversionRepository.
type ConversionRepo struct {
	pool Pool
}

// NewConversionRepo creates a new ConversionRepo.
func NewConversionRepo(pool Pool) *ConversionRepo {
	return &ConversionRepo{pool: pool}
}

func scanConversion(row pgx.Row) (*domain.WalletConversion, error) {
	c := &domain.WalletConversion{}
	err := row.Scan(&c.ID, &c.UserID, &c.Direction, &c.GoldGrams, &c.SpotPricePerGram, &c.LockedValueUSD,
		&c.FeeUSD, &c.Status, &c.ExecutionPricePerGram, &c.ExecutionValueUSD, &c.LedgerEntryID, &c.ReviewedBy,
		&c.RejectionReason, &c.CreatedAt, &c.ReviewedAt, &c.CompletedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a conversion request.
func (r *ConversionRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.WalletConversion) error {
	_, err := on(r.pool, tx).Exec(ctx,
		`INSERT INTO wallet_conversions (`+conversionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		c.ID, c.UserID, c.Direction, c.GoldGrams, c.SpotPricePerGram, c.LockedValueUSD,
		c.FeeUSD, c.Status, c.ExecutionPricePerGram, c.ExecutionValueUSD, c.LedgerEntryID, c.ReviewedBy,
		c.RejectionReason, c.CreatedAt, c.ReviewedAt, c.CompletedAt)
	if err != nil {
		return fmt.Errorf("insert conversion: %w", err)
	}
	return nil
}

// GetByID fetches a conversion without locking.
func (r *ConversionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletConversion, error) {
	c, err := scanConversion(r.pool.QueryRow(ctx,
		`SELECT `+conversionColumns+` FROM wallet_conversions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conversion: %w", err)
	}
	return c, nil
}

// GetByIDForUpdate fetches a conversion with a row lock.
func (r *ConversionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletConversion, error) {
	c, err := scanConversion(tx.QueryRow(ctx,
		`SELECT `+conversionColumns+` FROM wallet_conversions WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conversion for update: %w", err)
	}
	return c, nil
}

// Update writes the review and execution columns.
func (r *ConversionRepo) Update(ctx context.Context, tx pgx.Tx, c *domain.WalletConversion) error {
	_, err := tx.Exec(ctx,
		`UPDATE wallet_conversions SET status = $1, execution_price_per_gram = $2, execution_value_usd = $3,
		ledger_entry_id = $4, reviewed_by = $5, rejection_reason = $6, reviewed_at = $7, completed_at = $8
		WHERE id = $9`,
		c.Status, c.ExecutionPricePerGram, c.ExecutionValueUSD, c.LedgerEntryID, c.ReviewedBy,
		c.RejectionReason, c.ReviewedAt, c.CompletedAt, c.ID)
	if err != nil {
		return fmt.Errorf("update conversion: %w", err)
	}
	return nil
}

// List returns conversions, newest first, optionally filtered by status.
func (r *ConversionRepo) List(ctx context.Context, status *domain.ConversionStatus, limit int) ([]domain.WalletConversion, error) {
	query := `SELECT ` + conversionColumns + ` FROM wallet_conversions`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2`
		args = append(args, *status, limit)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()

	var convs []domain.WalletConversion
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conversion row: %w", err)
		}
		convs = append(convs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversion rows: %w", err)
	}
	return convs, nil
}
