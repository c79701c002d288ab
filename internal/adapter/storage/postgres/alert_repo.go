package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gold-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const alertColumns = `id, type, severity, expected_value, actual_value, difference, difference_pct,
	fingerprint, resolved, resolved_by, resolution_notes, resolved_at, created_at`

// AlertRepo implements ports.AlertRepository.
type AlertRepo struct {
	pool Pool
}

// NewAlertRepo creates a new AlertRepo.
func NewAlertRepo(pool Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

func scanAlert(row pgx.Row) (*domain.ReconciliationAlert, error) {
	a := &domain.ReconciliationAlert{}
	err := row.Scan(&a.ID, &a.Type, &a.Severity, &a.ExpectedValue, &a.ActualValue, &a.Difference,
		&a.DifferencePct, &a.Fingerprint, &a.Resolved, &a.ResolvedBy, &a.ResolutionNotes, &a.ResolvedAt, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts an alert.
func (r *AlertRepo) Create(ctx context.Context, a *domain.ReconciliationAlert) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO reconciliation_alerts (`+alertColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		a.ID, a.Type, a.Severity, a.ExpectedValue, a.ActualValue, a.Difference,
		a.DifferencePct, a.Fingerprint, a.Resolved, a.ResolvedBy, a.ResolutionNotes, a.ResolvedAt, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID fetches an alert.
func (r *AlertRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReconciliationAlert, error) {
	a, err := scanAlert(r.pool.QueryRow(ctx, `SELECT `+alertColumns+` FROM reconciliation_alerts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// FindUnresolvedByFingerprint returns the open alert for a metric snapshot.
func (r *AlertRepo) FindUnresolvedByFingerprint(ctx context.Context, fingerprint string) (*domain.ReconciliationAlert, error) {
	a, err := scanAlert(r.pool.QueryRow(ctx,
		`SELECT `+alertColumns+` FROM reconciliation_alerts WHERE fingerprint = $1 AND NOT resolved LIMIT 1`, fingerprint))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find alert by fingerprint: %w", err)
	}
	return a, nil
}

// Resolve sets the resolution fields on an unresolved alert.
func (r *AlertRepo) Resolve(ctx context.Context, id, resolvedBy uuid.UUID, notes string, at time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reconciliation_alerts SET resolved = TRUE, resolved_by = $1, resolution_notes = $2, resolved_at = $3
		WHERE id = $4 AND NOT resolved`,
		resolvedBy, notes, at, id)
	if err != nil {
		return false, fmt.Errorf("resolve alert: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// List returns alerts, newest first.
func (r *AlertRepo) List(ctx context.Context, unresolvedOnly bool, limit int) ([]domain.ReconciliationAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM reconciliation_alerts`
	if unresolvedOnly {
		query += ` WHERE NOT resolved`
	}
	query += ` ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.ReconciliationAlert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert row: %w", err)
		}
		alerts = append(alerts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alert rows: %w", err)
	}
	return alerts, nil
}
