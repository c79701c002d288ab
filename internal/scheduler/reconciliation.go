// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"gold-settlement/internal/core/ports"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// TriggerScheduled labels runs started by the scheduler.
const TriggerScheduled = "scheduled"

// Reconciliation runs the reconciliation engine on a fixed interval.
type Reconciliation struct {
	sched    gocron.Scheduler
	svc      ports.ReconciliationService
	interval time.Duration
	timeout  time.Duration
	log      zerolog.Logger
}

// NewReconciliation creates the scheduler. Each run is bounded by timeout.
func NewReconciliation(svc ports.ReconciliationService, interval, timeout time.Duration, log zerolog.Logger) (*Reconciliation, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("reconciliation interval must be positive, got %s", interval)
	}
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	if timeout <= 0 {
		timeout = interval
	}
	return &Reconciliation{
		sched:    sched,
		svc:      svc,
		interval: interval,
		timeout:  timeout,
		log:      log,
	}, nil
}

// Start registers the job and starts the scheduler. Overlapping runs in this
// process are skipped; other instances are excluded by the service's lock.
func (r *Reconciliation) Start(ctx context.Context) error {
	_, err := r.sched.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(func() { r.runOnce(ctx) }),
		gocron.WithName("reconciliation"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("register reconciliation job: %w", err)
	}
	r.sched.Start()
	r.log.Info().Dur("interval", r.interval).Msg("reconciliation scheduler started")
	return nil
}

// Stop waits for a running job to finish.
func (r *Reconciliation) Stop() error {
	return r.sched.Shutdown()
}

func (r *Reconciliation) runOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	report, err := r.svc.Run(ctx, TriggerScheduled)
	if err != nil {
		r.log.Warn().Err(err).Msg("scheduled reconciliation failed")
		return
	}
	alerts := 0
	for _, c := range report.Checks {
		if c.AlertID != nil && !c.Suppressed {
			alerts++
		}
	}
	r.log.Debug().Int("new_alerts", alerts).Msg("scheduled reconciliation done")
}
