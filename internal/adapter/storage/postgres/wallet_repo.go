package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gold-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const walletColumns = `id, user_id, class, available_grams, pending_grams, locked_grams, reserved_grams, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.Class, &w.AvailableGrams, &w.PendingGrams,
		&w.LockedGrams, &w.ReservedGrams, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// GetOrCreateForUpdate locks the user's wallet of the class, inserting an
// empty wallet first when none exists. Must run inside tx.
func (r *WalletRepo) GetOrCreateForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID, class domain.WalletClass) (*domain.Wallet, error) {
	now := time.Now().UTC()
	_, err := tx.Exec(ctx,
		`INSERT INTO wallets (`+walletColumns+`) VALUES ($1, $2, $3, 0, 0, 0, 0, $4, $4)
		ON CONFLICT (user_id, class) DO NOTHING`,
		uuid.New(), userID, class, now)
	if err != nil {
		return nil, fmt.Errorf("ensure wallet: %w", err)
	}

	w, err := scanWallet(tx.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 AND class = $2 FOR UPDATE`, userID, class))
	if err != nil {
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// Get fetches the user's wallet of the class without locking.
func (r *WalletRepo) Get(ctx context.Context, userID uuid.UUID, class domain.WalletClass) (*domain.Wallet, error) {
	w, err := scanWallet(r.pool.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 AND class = $2`, userID, class))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return w, nil
}

// Update writes the wallet balances. Must run inside tx.
func (r *WalletRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	tag, err := tx.Exec(ctx,
		`UPDATE wallets SET available_grams = $1, pending_grams = $2, locked_grams = $3,
		reserved_grams = $4, updated_at = $5 WHERE id = $6`,
		w.AvailableGrams, w.PendingGrams, w.LockedGrams, w.ReservedGrams, w.UpdatedAt, w.ID)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update wallet %s: no rows affected", w.ID)
	}
	return nil
}

// CreateTransaction records a wallet movement.
func (r *WalletRepo) CreateTransaction(ctx context.Context, tx pgx.Tx, t *domain.WalletTransaction) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO wallet_transactions (id, wallet_id, user_id, type, grams, usd_value, price_per_gram,
		order_id, conversion_id, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.WalletID, t.UserID, t.Type, t.Grams, t.USDValue, t.PricePerGram,
		t.OrderID, t.ConversionID, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}
	return nil
}

// SumClaims totals every gram state across all wallets of the class.
func (r *WalletRepo) SumClaims(ctx context.Context, class domain.WalletClass) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(available_grams + pending_grams + locked_grams + reserved_grams), 0)
		FROM wallets WHERE class = $1`, class).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum wallet claims: %w", err)
	}
	return total, nil
}
