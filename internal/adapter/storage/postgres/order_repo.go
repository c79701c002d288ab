package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, external_reference, custodian_order_id, user_id, bar_size, bar_count,
	total_grams, usd_amount, price_per_gram, preferred_vault_location, vault_location, callback_url,
	origin, status, allocated_bars, certificates_issued, error_message, approved_by,
	submitted_at, confirmed_at, custodian_fulfilled_at, fulfilled_at, cancelled_at, created_at, updated_at`

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

func scanOrder(row pgx.Row) (*domain.PurchaseOrder, error) {
	o := &domain.PurchaseOrder{}
	err := row.Scan(
		&o.ID, &o.ExternalReference, &o.CustodianOrderID, &o.UserID, &o.BarSize, &o.BarCount,
		&o.TotalGrams, &o.USDAmount, &o.PricePerGram, &o.PreferredVaultLocation, &o.VaultLocation, &o.CallbackURL,
		&o.Origin, &o.Status, &o.AllocatedBars, &o.CertificatesIssued, &o.ErrorMessage, &o.ApprovedBy,
		&o.SubmittedAt, &o.ConfirmedAt, &o.CustodianFulfilledAt, &o.FulfilledAt, &o.CancelledAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Create inserts a purchase order.
func (r *OrderRepo) Create(ctx context.Context, tx pgx.Tx, o *domain.PurchaseOrder) error {
	query := `INSERT INTO purchase_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`

	_, err := on(r.pool, tx).Exec(ctx, query,
		o.ID, o.ExternalReference, o.CustodianOrderID, o.UserID, o.BarSize, o.BarCount,
		o.TotalGrams, o.USDAmount, o.PricePerGram, o.PreferredVaultLocation, o.VaultLocation, o.CallbackURL,
		o.Origin, o.Status, o.AllocatedBars, o.CertificatesIssued, o.ErrorMessage, o.ApprovedBy,
		o.SubmittedAt, o.ConfirmedAt, o.CustodianFulfilledAt, o.FulfilledAt, o.CancelledAt, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// Update writes every mutable column of the order.
func (r *OrderRepo) Update(ctx context.Context, tx pgx.Tx, o *domain.PurchaseOrder) error {
	query := `UPDATE purchase_orders SET
		custodian_order_id = $1, vault_location = $2, status = $3, allocated_bars = $4,
		certificates_issued = $5, error_message = $6, approved_by = $7, submitted_at = $8,
		confirmed_at = $9, custodian_fulfilled_at = $10, fulfilled_at = $11, cancelled_at = $12,
		updated_at = $13
		WHERE id = $14`

	tag, err := on(r.pool, tx).Exec(ctx, query,
		o.CustodianOrderID, o.VaultLocation, o.Status, o.AllocatedBars,
		o.CertificatesIssued, o.ErrorMessage, o.ApprovedBy, o.SubmittedAt,
		o.ConfirmedAt, o.CustodianFulfilledAt, o.FulfilledAt, o.CancelledAt,
		o.UpdatedAt, o.ID,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update purchase order %s: no rows affected", o.ID)
	}
	return nil
}

// GetByID fetches an order without locking.
func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1`
	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order by id: %w", err)
	}
	return o, nil
}

// GetByIDForUpdate fetches an order with a row lock. Must run inside tx.
func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1 FOR UPDATE`
	o, err := scanOrder(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order for update: %w", err)
	}
	return o, nil
}

// GetByReferenceForUpdate locks the order whose platform reference or
// custodian id equals reference.
func (r *OrderRepo) GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reference string) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders
		WHERE external_reference = $1 OR custodian_order_id = $1
		ORDER BY (external_reference = $1) DESC LIMIT 1 FOR UPDATE`
	o, err := scanOrder(tx.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order by reference: %w", err)
	}
	return o, nil
}

// List returns a page of orders, newest first, and the total match count.
func (r *OrderRepo) List(ctx context.Context, params ports.OrderListParams) ([]domain.PurchaseOrder, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, *params.UserID)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM purchase_orders %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count purchase orders: %w", err)
	}

	page, pageSize := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	dataQuery := fmt.Sprintf(`SELECT %s FROM purchase_orders %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, where, argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.PurchaseOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan purchase order row: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate purchase order rows: %w", err)
	}
	return orders, total, nil
}
