package service

import (
	"context"
	"io"
	"sync"
	"testing"

	"gold-settlement/internal/core/domain"
	"gold-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(v int) *int {
	return &v
}

// recordingAudit is a synchronous ports.AuditService.
type recordingAudit struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func (a *recordingAudit) Log(_ context.Context, entry *domain.AuditLog) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

func (a *recordingAudit) find(action domain.AuditAction) []*domain.AuditLog {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []*domain.AuditLog
	for _, e := range a.entries {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

type sentNotification struct {
	orderID uuid.UUID
	event   domain.WebhookEventType
	data    any
}

// recordingNotifier is a ports.Notifier that keeps every call.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifier) Notify(_ context.Context, order *domain.PurchaseOrder, event domain.WebhookEventType, data any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{orderID: order.ID, event: event, data: data})
}

func (n *recordingNotifier) count(event domain.WebhookEventType) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, s := range n.sent {
		if s.event == event {
			c++
		}
	}
	return c
}
