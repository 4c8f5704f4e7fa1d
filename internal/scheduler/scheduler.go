// Package scheduler runs periodic maintenance of the recompute queue.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tag-ledger/internal/config"

	"github.com/robfig/cron/v3"
)

const taskTimeout = 5 * time.Minute

// QueueMaintainer is the part of the recompute queue the scheduler drives.
type QueueMaintainer interface {
	RequeueStale(ctx context.Context, runningLongerThan time.Duration) (int64, error)
	CleanupCompleted(ctx context.Context, olderThan time.Duration) (int64, error)
}

type MetricsRecorder interface {
	IncrementCounter(name string, tags map[string]string)
}

type Scheduler struct {
	cron    *cron.Cron
	queue   QueueMaintainer
	metrics MetricsRecorder
	cfg     config.SchedulerConfig
	logger  *slog.Logger
}

func New(cfg config.SchedulerConfig, queue QueueMaintainer, metrics MetricsRecorder) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		slog.Warn("invalid scheduler timezone, falling back to UTC",
			slog.String("timezone", cfg.TimeZone),
			slog.String("error", err.Error()),
		)
		loc = time.UTC
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		queue:   queue,
		metrics: metrics,
		cfg:     cfg,
		logger:  slog.Default(),
	}

	if _, err := s.cron.AddFunc(cfg.StaleJobSchedule, s.runTask("requeue_stale", s.RequeueStale)); err != nil {
		return nil, fmt.Errorf("unable to schedule stale job requeue: %w", err)
	}
	if _, err := s.cron.AddFunc(cfg.CleanupSchedule, s.runTask("cleanup_completed", s.CleanupCompleted)); err != nil {
		return nil, fmt.Errorf("unable to schedule job cleanup: %w", err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started",
		slog.String("stale_job_schedule", s.cfg.StaleJobSchedule),
		slog.String("cleanup_schedule", s.cfg.CleanupSchedule),
		slog.String("timezone", s.cfg.TimeZone),
	)
}

// Stop waits for running tasks or until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out with tasks still running")
	}
}

// Entries reports how many tasks are registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// RequeueStale returns jobs stuck in running, usually from a crashed worker, to pending.
func (s *Scheduler) RequeueStale(ctx context.Context) (int64, error) {
	return s.queue.RequeueStale(ctx, s.cfg.StaleJobTimeout)
}

// CleanupCompleted deletes finished jobs past the retention window.
func (s *Scheduler) CleanupCompleted(ctx context.Context) (int64, error) {
	return s.queue.CleanupCompleted(ctx, s.cfg.CompletedRetention)
}

func (s *Scheduler) runTask(name string, task func(ctx context.Context) (int64, error)) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()

		startTime := time.Now()
		count, err := task(ctx)
		if err != nil {
			s.metrics.IncrementCounter("scheduler.task", map[string]string{"task": name, "status": "failed"})
			s.logger.Error("scheduled task failed",
				slog.String("task", name),
				slog.String("error", err.Error()),
			)
			return
		}

		s.metrics.IncrementCounter("scheduler.task", map[string]string{"task": name, "status": "success"})
		s.logger.Info("scheduled task completed",
			slog.String("task", name),
			slog.Int64("affected", count),
			slog.Duration("duration", time.Since(startTime)),
		)
	}
}
