package postgres

import (
	"context"
	"errors"
	"fmt"

	"gold-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	barColumns = `id, order_id, bar_id, serial_number, weight_grams, purity, mint,
	vault_location, custody_status, custody_verified_at, created_at`
	certificateColumns = `id, certificate_number, type, order_id, bar_lot_id, signature, payload, issued_at`
	holdingColumns     = `id, bar_lot_id, order_id, user_id, weight_grams, vault_location, credit_transaction_id, created_at`
)

// BarRepo implements ports.BarRepository.
type BarRepo struct {
	pool Pool
}

// NewBarRepo creates a new BarRepo.
func NewBarRepo(pool Pool) *BarRepo {
	return &BarRepo{pool: pool}
}

func scanBar(row pgx.Row) (*domain.BarLot, error) {
	b := &domain.BarLot{}
	err := row.Scan(
		&b.ID, &b.OrderID, &b.BarID, &b.SerialNumber, &b.WeightGrams, &b.Purity, &b.Mint,
		&b.VaultLocation, &b.CustodyStatus, &b.CustodyVerifiedAt, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateBar inserts a bar lot. The serial number is unique.
func (r *BarRepo) CreateBar(ctx context.Context, tx pgx.Tx, b *domain.BarLot) error {
	_, err := on(r.pool, tx).Exec(ctx,
		`INSERT INTO bar_lots (`+barColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID, b.OrderID, b.BarID, b.SerialNumber, b.WeightGrams, b.Purity, b.Mint,
		b.VaultLocation, b.CustodyStatus, b.CustodyVerifiedAt, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bar lot: %w", err)
	}
	return nil
}

// GetBarBySerial fetches a bar by serial number.
func (r *BarRepo) GetBarBySerial(ctx context.Context, tx pgx.Tx, serial string) (*domain.BarLot, error) {
	b, err := scanBar(on(r.pool, tx).QueryRow(ctx,
		`SELECT `+barColumns+` FROM bar_lots WHERE serial_number = $1`, serial))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bar by serial: %w", err)
	}
	return b, nil
}

// ListBarsByOrder returns the order's bars in allocation order.
func (r *BarRepo) ListBarsByOrder(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]domain.BarLot, error) {
	rows, err := on(r.pool, tx).Query(ctx,
		`SELECT `+barColumns+` FROM bar_lots WHERE order_id = $1 ORDER BY created_at, serial_number`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list bars: %w", err)
	}
	defer rows.Close()

	var bars []domain.BarLot
	for rows.Next() {
		b, err := scanBar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bar row: %w", err)
		}
		bars = append(bars, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bar rows: %w", err)
	}
	return bars, nil
}

// CreateCertificate inserts a certificate. Certificates are never updated.
func (r *BarRepo) CreateCertificate(ctx context.Context, tx pgx.Tx, c *domain.Certificate) error {
	_, err := on(r.pool, tx).Exec(ctx,
		`INSERT INTO certificates (`+certificateColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.CertificateNumber, c.Type, c.OrderID, c.BarLotID, c.Signature, []byte(c.Payload), c.IssuedAt,
	)
	if err != nil {
		return fmt.Errorf("insert certificate: %w", err)
	}
	return nil
}

func scanCertificate(row pgx.Row) (*domain.Certificate, error) {
	c := &domain.Certificate{}
	var payload []byte
	if err := row.Scan(&c.ID, &c.CertificateNumber, &c.Type, &c.OrderID, &c.BarLotID, &c.Signature, &payload, &c.IssuedAt); err != nil {
		return nil, err
	}
	c.Payload = payload
	return c, nil
}

// GetCertificateByNumber fetches a certificate by its number.
func (r *BarRepo) GetCertificateByNumber(ctx context.Context, tx pgx.Tx, number string) (*domain.Certificate, error) {
	c, err := scanCertificate(on(r.pool, tx).QueryRow(ctx,
		`SELECT `+certificateColumns+` FROM certificates WHERE certificate_number = $1`, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get certificate: %w", err)
	}
	return c, nil
}

// ListCertificatesByOrder returns every certificate attached to the order.
func (r *BarRepo) ListCertificatesByOrder(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]domain.Certificate, error) {
	rows, err := on(r.pool, tx).Query(ctx,
		`SELECT `+certificateColumns+` FROM certificates WHERE order_id = $1 ORDER BY issued_at, certificate_number`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()

	var certs []domain.Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certificate row: %w", err)
		}
		certs = append(certs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate certificate rows: %w", err)
	}
	return certs, nil
}

// CreateHolding inserts a vault holding; one per bar.
func (r *BarRepo) CreateHolding(ctx context.Context, tx pgx.Tx, h *domain.VaultHolding) error {
	_, err := on(r.pool, tx).Exec(ctx,
		`INSERT INTO vault_holdings (`+holdingColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		h.ID, h.BarLotID, h.OrderID, h.UserID, h.WeightGrams, h.VaultLocation, h.CreditTransactionID, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vault holding: %w", err)
	}
	return nil
}

// ListHoldingsByOrder returns the order's vault holdings.
func (r *BarRepo) ListHoldingsByOrder(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]domain.VaultHolding, error) {
	rows, err := on(r.pool, tx).Query(ctx,
		`SELECT `+holdingColumns+` FROM vault_holdings WHERE order_id = $1 ORDER BY created_at`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list vault holdings: %w", err)
	}
	defer rows.Close()

	var holdings []domain.VaultHolding
	for rows.Next() {
		h := domain.VaultHolding{}
		if err := rows.Scan(&h.ID, &h.BarLotID, &h.OrderID, &h.UserID, &h.WeightGrams,
			&h.VaultLocation, &h.CreditTransactionID, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vault holding row: %w", err)
		}
		holdings = append(holdings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vault holding rows: %w", err)
	}
	return holdings, nil
}

// LinkHoldingsToCredit stamps the settlement credit on the order's holdings.
func (r *BarRepo) LinkHoldingsToCredit(ctx context.Context, tx pgx.Tx, orderID, creditTxID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`UPDATE vault_holdings SET credit_transaction_id = $1 WHERE order_id = $2 AND credit_transaction_id IS NULL`,
		creditTxID, orderID)
	if err != nil {
		return fmt.Errorf("link vault holdings: %w", err)
	}
	return nil
}

// SumInVaultGrams totals the weight of every bar currently in the vault.
func (r *BarRepo) SumInVaultGrams(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(weight_grams), 0) FROM bar_lots WHERE custody_status = $1`,
		domain.CustodyInVault).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum in-vault grams: %w", err)
	}
	return total, nil
}
