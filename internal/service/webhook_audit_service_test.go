package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/testutil/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookAuditService_RingBufferEvictsOldest(t *testing.T) {
	svc := NewWebhookAuditService(nil, 3, newTestLogger())

	for i := 1; i <= 5; i++ {
		svc.Record(context.Background(), domain.WebhookAuditEntry{OrderReference: fmt.Sprintf("WG-%d", i)})
	}

	recent := svc.Recent(10)
	require.Len(t, recent, 3)
	assert.Equal(t, "WG-5", recent[0].OrderReference)
	assert.Equal(t, "WG-4", recent[1].OrderReference)
	assert.Equal(t, "WG-3", recent[2].OrderReference)

	assert.Len(t, svc.Recent(1), 1)
}

func TestWebhookAuditService_Persists(t *testing.T) {
	store := memstore.New()
	svc := NewWebhookAuditService(store.Repos().WebhookAudit, 0, newTestLogger())

	svc.Record(context.Background(), domain.WebhookAuditEntry{OrderReference: "WG-1", Blocked: true, Reason: "invalid_signature"})
	svc.Flush()

	entries := store.WebhookAuditEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "invalid_signature", entries[0].Reason)
}

// gatedAuditRepo blocks every Create until release is closed.
type gatedAuditRepo struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once

	mu      sync.Mutex
	entries []domain.WebhookAuditEntry
}

func (r *gatedAuditRepo) Create(_ context.Context, entry *domain.WebhookAuditEntry) error {
	r.once.Do(func() { close(r.started) })
	<-r.release
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *gatedAuditRepo) ListRecent(_ context.Context, _ int) ([]domain.WebhookAuditEntry, error) {
	return nil, nil
}

func TestWebhookAuditService_DropsWhenQueueFull(t *testing.T) {
	repo := &gatedAuditRepo{started: make(chan struct{}), release: make(chan struct{})}
	svc := NewWebhookAuditService(repo, 1, newTestLogger())
	ctx := context.Background()

	svc.Record(ctx, domain.WebhookAuditEntry{OrderReference: "WG-1"})
	<-repo.started
	svc.Record(ctx, domain.WebhookAuditEntry{OrderReference: "WG-2"})
	for i := 3; i <= 50; i++ {
		svc.Record(ctx, domain.WebhookAuditEntry{OrderReference: fmt.Sprintf("WG-%d", i), Blocked: true})
	}

	close(repo.release)
	svc.Close()

	require.Len(t, repo.entries, 2)
	assert.Equal(t, "WG-1", repo.entries[0].OrderReference)
	assert.Equal(t, "WG-2", repo.entries[1].OrderReference)
	// the ring still reflects the latest attempt
	assert.Equal(t, "WG-50", svc.Recent(1)[0].OrderReference)
}

func TestWebhookAuditService_RecordAfterCloseStaysInMemory(t *testing.T) {
	store := memstore.New()
	svc := NewWebhookAuditService(store.Repos().WebhookAudit, 10, newTestLogger())
	svc.Close()

	svc.Record(context.Background(), domain.WebhookAuditEntry{OrderReference: "WG-late"})
	svc.Flush()

	assert.Empty(t, store.WebhookAuditEntries())
	assert.Equal(t, "WG-late", svc.Recent(1)[0].OrderReference)
}
