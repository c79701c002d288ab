package service

import (
	"context"
	"testing"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Log_PersistsToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan struct{})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) error {
			if log.Action != domain.AuditActionApproveSettlement {
				t.Errorf("expected APPROVE_SETTLEMENT, got %s", log.Action)
			}
			close(done)
			return nil
		},
	)

	actorID := uuid.New()
	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      &actorID,
		Action:       domain.AuditActionApproveSettlement,
		ResourceType: "order",
		ResourceID:   uuid.New().String(),
		Outcome:      "success",
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})

	select {
	case <-done:
		// OK
	case <-time.After(2 * time.Second):
		t.Fatal("audit log not persisted in time")
	}
}

func TestAuditService_Log_NilRepo(t *testing.T) {
	svc := NewAuditService(nil, newTestLogger())

	// Should not panic
	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionInferenceRejected,
		ResourceType: "webhook",
		Outcome:      "rejected",
		CreatedAt:    time.Now(),
	})

	time.Sleep(50 * time.Millisecond) // let goroutine run
}
