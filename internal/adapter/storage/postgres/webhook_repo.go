package postgres

import (
	"context"
	"fmt"

	"gold-settlement/internal/core/domain"

	"github.com/google/uuid"
)

// WebhookAuditRepo implements ports.WebhookAuditRepository.
type WebhookAuditRepo struct {
	pool Pool
}

// NewWebhookAuditRepo creates a new WebhookAuditRepo.
func NewWebhookAuditRepo(pool Pool) *WebhookAuditRepo {
	return &WebhookAuditRepo{pool: pool}
}

// Create inserts an audit entry for one inbound attempt.
func (r *WebhookAuditRepo) Create(ctx context.Context, e *domain.WebhookAuditEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO webhook_audit_entries
		(id, received_at, event_type, order_reference, source_ip, signature_valid, blocked, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.ReceivedAt, e.EventType, e.OrderReference, e.SourceIP, e.SignatureValid, e.Blocked, e.Reason)
	if err != nil {
		return fmt.Errorf("insert webhook audit entry: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries first.
func (r *WebhookAuditRepo) ListRecent(ctx context.Context, limit int) ([]domain.WebhookAuditEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, received_at, event_type, order_reference, source_ip, signature_valid, blocked, reason
		FROM webhook_audit_entries ORDER BY received_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list webhook audit entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.WebhookAuditEntry
	for rows.Next() {
		e := domain.WebhookAuditEntry{}
		if err := rows.Scan(&e.ID, &e.ReceivedAt, &e.EventType, &e.OrderReference,
			&e.SourceIP, &e.SignatureValid, &e.Blocked, &e.Reason); err != nil {
			return nil, fmt.Errorf("scan webhook audit row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webhook audit rows: %w", err)
	}
	return entries, nil
}

// DeliveryLogRepo implements ports.DeliveryLogRepository.
type DeliveryLogRepo struct {
	pool Pool
}

// NewDeliveryLogRepo creates a new DeliveryLogRepo.
func NewDeliveryLogRepo(pool Pool) *DeliveryLogRepo {
	return &DeliveryLogRepo{pool: pool}
}

// Create inserts one outbound delivery attempt.
func (r *DeliveryLogRepo) Create(ctx context.Context, l *domain.OutboundDeliveryLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO outbound_delivery_logs
		(id, order_id, event, url, payload, http_status, response_body, success, error, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID, l.OrderID, l.Event, l.URL, l.Payload, l.HTTPStatus, l.ResponseBody,
		l.Success, l.Error, l.DurationMs, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert delivery log: %w", err)
	}
	return nil
}

// ListByOrder returns the order's delivery attempts, newest first.
func (r *DeliveryLogRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.OutboundDeliveryLog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, order_id, event, url, payload, http_status, response_body, success, error, duration_ms, created_at
		FROM outbound_delivery_logs WHERE order_id = $1 ORDER BY created_at DESC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list delivery logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.OutboundDeliveryLog
	for rows.Next() {
		l := domain.OutboundDeliveryLog{}
		if err := rows.Scan(&l.ID, &l.OrderID, &l.Event, &l.URL, &l.Payload, &l.HTTPStatus,
			&l.ResponseBody, &l.Success, &l.Error, &l.DurationMs, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate delivery log rows: %w", err)
	}
	return logs, nil
}
