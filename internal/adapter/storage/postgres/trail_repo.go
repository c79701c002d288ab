package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gold-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TrailRepo implements ports.TrailRepository.
type TrailRepo struct {
	pool Pool
}

// NewTrailRepo creates a new TrailRepo.
func NewTrailRepo(pool Pool) *TrailRepo {
	return &TrailRepo{pool: pool}
}

// Create inserts a settlement trail.
func (r *TrailRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.SettlementTrail) error {
	events, err := json.Marshal(t.Events)
	if err != nil {
		return fmt.Errorf("marshal trail events: %w", err)
	}
	_, err = on(r.pool, tx).Exec(ctx,
		`INSERT INTO settlement_trails (id, order_id, status, events, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.OrderID, t.Status, events, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert settlement trail: %w", err)
	}
	return nil
}

// GetByOrderForUpdate locks the order's trail, if one exists.
func (r *TrailRepo) GetByOrderForUpdate(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.SettlementTrail, error) {
	t := &domain.SettlementTrail{}
	var events []byte
	err := tx.QueryRow(ctx,
		`SELECT id, order_id, status, events, created_at, updated_at
		FROM settlement_trails WHERE order_id = $1 FOR UPDATE`, orderID).
		Scan(&t.ID, &t.OrderID, &t.Status, &events, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settlement trail: %w", err)
	}
	if err := json.Unmarshal(events, &t.Events); err != nil {
		return nil, fmt.Errorf("unmarshal trail events: %w", err)
	}
	return t, nil
}

// Update writes the trail status and events.
func (r *TrailRepo) Update(ctx context.Context, tx pgx.Tx, t *domain.SettlementTrail) error {
	events, err := json.Marshal(t.Events)
	if err != nil {
		return fmt.Errorf("marshal trail events: %w", err)
	}
	_, err = tx.Exec(ctx,
		`UPDATE settlement_trails SET status = $1, events = $2, updated_at = $3 WHERE id = $4`,
		t.Status, events, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("update settlement trail: %w", err)
	}
	return nil
}
