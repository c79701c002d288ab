package service

import (
	"context"
	"sync"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/internal/metrics"

	"github.com/rs/zerolog"
)

const defaultWebhookAuditBuffer = 1000

// WebhookAuditServiceImpl keeps the most recent webhook audit entries in a
// bounded ring buffer and persists them through a bounded queue drained by a
// single worker. Entries that do not fit in the queue are logged and dropped.
type WebhookAuditServiceImpl struct {
	repo ports.WebhookAuditRepository
	log  zerolog.Logger

	mu    sync.Mutex
	ring  []domain.WebhookAuditEntry
	next  int
	count int

	qmu     sync.RWMutex
	queue   chan domain.WebhookAuditEntry
	closed  bool
	pending sync.WaitGroup
	stopped chan struct{}
}

// NewWebhookAuditService creates the service. size <= 0 uses the default and
// bounds both the ring and the persistence queue. repo may be nil, in which
// case entries live only in memory and the log.
func NewWebhookAuditService(repo ports.WebhookAuditRepository, size int, log zerolog.Logger) *WebhookAuditServiceImpl {
	if size <= 0 {
		size = defaultWebhookAuditBuffer
	}
	s := &WebhookAuditServiceImpl{
		repo:    repo,
		log:     log,
		ring:    make([]domain.WebhookAuditEntry, size),
		stopped: make(chan struct{}),
	}
	if repo != nil {
		s.queue = make(chan domain.WebhookAuditEntry, size)
		go s.persist()
	} else {
		close(s.stopped)
	}
	return s
}

// Record stores the entry; the oldest entry is overwritten once full.
func (s *WebhookAuditServiceImpl) Record(_ context.Context, entry domain.WebhookAuditEntry) {
	s.mu.Lock()
	s.ring[s.next] = entry
	s.next = (s.next + 1) % len(s.ring)
	if s.count < len(s.ring) {
		s.count++
	}
	s.mu.Unlock()

	ev := s.log.Info()
	if entry.Blocked {
		ev = s.log.Warn()
	}
	ev.Str("event", entry.EventType).
		Str("reference", entry.OrderReference).
		Str("source_ip", entry.SourceIP).
		Bool("signature_valid", entry.SignatureValid).
		Bool("blocked", entry.Blocked).
		Str("reason", entry.Reason).
		Msg("webhook audit")

	s.enqueue(entry)
}

func (s *WebhookAuditServiceImpl) enqueue(entry domain.WebhookAuditEntry) {
	s.qmu.RLock()
	defer s.qmu.RUnlock()
	if s.queue == nil || s.closed {
		return
	}
	s.pending.Add(1)
	select {
	case s.queue <- entry:
	default:
		s.pending.Done()
		metrics.WebhookAuditDropped()
		s.log.Warn().
			Str("reference", entry.OrderReference).
			Str("source_ip", entry.SourceIP).
			Str("reason", entry.Reason).
			Msg("webhook audit queue full, entry not persisted")
	}
}

func (s *WebhookAuditServiceImpl) persist() {
	defer close(s.stopped)
	for entry := range s.queue {
		if err := s.repo.Create(context.Background(), &entry); err != nil {
			s.log.Warn().Err(err).Str("reference", entry.OrderReference).Msg("failed to persist webhook audit entry")
		}
		s.pending.Done()
	}
}

// Recent returns up to limit entries, newest first.
func (s *WebhookAuditServiceImpl) Recent(limit int) []domain.WebhookAuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 || limit > s.count {
		limit = s.count
	}
	out := make([]domain.WebhookAuditEntry, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (s.next - i + len(s.ring)) % len(s.ring)
		out = append(out, s.ring[idx])
	}
	return out
}

// Flush waits until every queued entry has been written.
func (s *WebhookAuditServiceImpl) Flush() {
	s.pending.Wait()
}

// Close drains the queue and stops the worker. Entries recorded afterwards
// are kept in memory only.
func (s *WebhookAuditServiceImpl) Close() {
	s.qmu.Lock()
	if s.queue != nil && !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.qmu.Unlock()
	<-s.stopped
}
