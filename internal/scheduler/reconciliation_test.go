package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"gold-settlement/internal/core/ports"
	"gold-settlement/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewReconciliation_RejectsZeroInterval(t *testing.T) {
	_, err := NewReconciliation(nil, 0, 0, zerolog.New(io.Discard))
	assert.Error(t, err)
}

func TestReconciliation_RunsOnInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockReconciliationService(ctrl)
	ran := make(chan struct{}, 4)
	svc.EXPECT().Run(gomock.Any(), TriggerScheduled).DoAndReturn(
		func(context.Context, string) (*ports.RunReport, error) {
			ran <- struct{}{}
			return &ports.RunReport{Trigger: TriggerScheduled}, nil
		}).MinTimes(1)

	r, err := NewReconciliation(svc, 20*time.Millisecond, time.Second, zerolog.New(io.Discard))
	require.NoError(t, err)
	require.NoError(t, r.Start(context.Background()))

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciliation job did not run")
	}
	require.NoError(t, r.Stop())
}

func TestReconciliation_RunOnceSurvivesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockReconciliationService(ctrl)
	svc.EXPECT().Run(gomock.Any(), TriggerScheduled).Return(nil, errors.New("lock held"))

	r, err := NewReconciliation(svc, time.Minute, time.Second, zerolog.New(io.Discard))
	require.NoError(t, err)

	r.runOnce(context.Background())
}
