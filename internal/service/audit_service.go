package service

import (
	"context"
	"encoding/json"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit logs are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Log records an audit entry asynchronously (fire-and-forget).
func (s *auditService) Log(_ context.Context, entry *domain.AuditLog) {
	go func() {
		ev := s.log.Info()
		if entry.Outcome == "rejected" {
			ev = s.log.Warn()
		}
		ev.Str("action", string(entry.Action)).
			Str("resource_type", entry.ResourceType).
			Str("resource_id", entry.ResourceID).
			Str("outcome", entry.Outcome).
			Str("ip", entry.IPAddress).
			Msg("audit")

		if s.repo != nil {
			if err := s.repo.Create(context.Background(), entry); err != nil {
				s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
			}
		}
	}()
}

// newAuditEntry builds an audit record; details are JSON-encoded.
func newAuditEntry(actorID *uuid.UUID, action domain.AuditAction, resourceType, resourceID, outcome string, details map[string]any) *domain.AuditLog {
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Outcome:      outcome,
		CreatedAt:    time.Now().UTC(),
	}
	if len(details) > 0 {
		if b, err := json.Marshal(details); err == nil {
			entry.Details = string(b)
		}
	}
	return entry
}

func actorRef(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
