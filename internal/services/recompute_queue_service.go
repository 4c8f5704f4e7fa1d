package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

type RecomputeQueueService struct {
	jobRepo         repositories.RecomputeJobRepositoryInterface
	engine          TagAggregationServiceInterface
	events          RecomputeLoggerInterface
	metrics         MetricsRecorderInterface
	circuitBreaker  CircuitBreakerInterface
	maxWorkers      int
	pollInterval    time.Duration
	workerSemaphore chan struct{}
	logger          *slog.Logger
}

func NewRecomputeQueueService(
	jobRepo repositories.RecomputeJobRepositoryInterface,
	engine TagAggregationServiceInterface,
	events RecomputeLoggerInterface,
	metrics MetricsRecorderInterface,
	circuitBreaker CircuitBreakerInterface,
	maxWorkers int,
	pollInterval time.Duration,
) RecomputeQueueServiceInterface {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &RecomputeQueueService{
		jobRepo:         jobRepo,
		engine:          engine,
		events:          events,
		metrics:         metrics,
		circuitBreaker:  circuitBreaker,
		maxWorkers:      maxWorkers,
		pollInterval:    pollInterval,
		workerSemaphore: make(chan struct{}, maxWorkers),
		logger:          slog.Default(),
	}
}

// Enqueue records a recompute request. While a pending job exists for the user the
// request is folded into it; the boolean reports that case.
func (s *RecomputeQueueService) Enqueue(ctx context.Context, userID, trigger string) (*models.RecomputeJob, bool, error) {
	job, coalesced, err := s.jobRepo.EnqueueOrCoalesce(ctx, userID, trigger)
	if err != nil {
		return nil, false, fmt.Errorf("failed to enqueue recompute: %w", err)
	}

	s.metrics.IncrementCounter("queue.enqueued", map[string]string{
		"trigger":   trigger,
		"coalesced": strconv.FormatBool(coalesced),
	})
	s.events.LogJobEnqueued(ctx, job, coalesced)

	return job, coalesced, nil
}

// Trigger is the fire-and-forget form used after edits. The caller's cancellation does
// not reach the enqueue and failures are only logged.
func (s *RecomputeQueueService) Trigger(ctx context.Context, userID, trigger string) {
	ctx = context.WithoutCancel(ctx)
	if _, _, err := s.Enqueue(ctx, userID, trigger); err != nil {
		s.logger.ErrorContext(ctx, "failed to trigger recompute",
			slog.String("user_id", userID),
			slog.String("trigger", trigger),
			slog.String("error", err.Error()),
		)
	}
}

func (s *RecomputeQueueService) StartProcessing(ctx context.Context) {
	s.logger.Info("starting recompute queue",
		slog.Int("max_workers", s.maxWorkers),
		slog.Duration("poll_interval", s.pollInterval),
	)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("recompute queue shutting down, waiting for workers to complete")
			wg.Wait()
			s.logger.Info("recompute queue stopped")
			return

		case <-ticker.C:
			jobs, err := s.jobRepo.FetchPending(ctx, s.maxWorkers*2)
			if err != nil {
				s.circuitBreaker.RecordFailure()
				s.logger.Error("failed to fetch pending recompute jobs",
					slog.String("error", err.Error()),
				)
				continue
			}

			for _, job := range jobs {
				wg.Add(1)
				go s.processJobAsync(ctx, job, &wg)
			}
		}
	}
}

func (s *RecomputeQueueService) processJobAsync(ctx context.Context, job *models.RecomputeJob, wg *sync.WaitGroup) {
	defer wg.Done()

	s.workerSemaphore <- struct{}{}
	defer func() { <-s.workerSemaphore }()

	if err := s.ProcessJob(ctx, job); err != nil {
		s.logger.Error("failed to process recompute job",
			slog.String("job_id", job.ID.String()),
			slog.String("user_id", job.UserID),
			slog.String("error", err.Error()),
		)
	}
}

// ProcessJob claims and runs one job. A job that cannot be claimed, because another
// worker took it or the user already has a running job, is left alone.
func (s *RecomputeQueueService) ProcessJob(ctx context.Context, job *models.RecomputeJob) error {
	if s.circuitBreaker.IsOpen() {
		s.metrics.RecordGauge("circuit_breaker.state", float64(StateOpen), map[string]string{
			"service": "store",
		})
		return ErrCircuitBreakerOpen
	}

	if job.RetryCount >= job.MaxRetries {
		return s.handleMaxRetriesExceeded(ctx, job)
	}

	claimed, err := s.jobRepo.Claim(ctx, job.ID)
	if err != nil {
		s.circuitBreaker.RecordFailure()
		return err
	}
	if !claimed {
		return nil
	}

	s.events.LogRecomputeStarted(ctx, job.UserID, job.Trigger)

	// Once claimed the pass runs to completion even during shutdown.
	result, err := s.engine.Recompute(context.WithoutCancel(ctx), job.UserID)
	if err != nil {
		s.circuitBreaker.RecordFailure()
		return s.handleProcessingError(ctx, job, err)
	}

	return s.completeProcessing(ctx, job, result)
}

func (s *RecomputeQueueService) completeProcessing(ctx context.Context, job *models.RecomputeJob, result *models.RecomputeResult) error {
	if err := s.jobRepo.MarkCompleted(ctx, job.ID, result); err != nil {
		return err
	}

	s.circuitBreaker.RecordSuccess()
	return nil
}

func (s *RecomputeQueueService) handleProcessingError(ctx context.Context, job *models.RecomputeJob, err error) error {
	s.events.LogRecomputeFailed(ctx, job.UserID, err.Error(), job.RetryCount)

	if job.RetryCount+1 < job.MaxRetries {
		backoffMs := int64(math.Pow(2, float64(job.RetryCount+1)) * 1000)

		s.events.LogRetryAttempt(ctx, job.ID, job.UserID, job.RetryCount+1, job.MaxRetries, backoffMs)

		if retryErr := s.jobRepo.IncrementRetry(ctx, job.ID, err.Error()); retryErr != nil {
			return fmt.Errorf("failed to increment retry: %w", retryErr)
		}

		s.metrics.IncrementCounter("recompute.retry", map[string]string{
			"trigger": job.Trigger,
		})

		return err
	}

	return s.handleMaxRetriesExceeded(ctx, job)
}

func (s *RecomputeQueueService) handleMaxRetriesExceeded(ctx context.Context, job *models.RecomputeJob) error {
	if err := s.jobRepo.MarkFailed(ctx, job.ID, ErrMaxRetriesExceeded.Error()); err != nil {
		return err
	}

	s.events.LogRecomputeFailed(ctx, job.UserID, ErrMaxRetriesExceeded.Error(), job.RetryCount)

	return ErrMaxRetriesExceeded
}

// GetJob hides jobs of other users behind a not-found error.
func (s *RecomputeQueueService) GetJob(ctx context.Context, userID string, jobID uuid.UUID) (*models.RecomputeJob, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.UserID != userID {
		return nil, repositories.ErrRecomputeJobNotFound
	}
	return job, nil
}

func (s *RecomputeQueueService) GetQueueMetrics(ctx context.Context) (*dto.QueueMetrics, error) {
	counts := make(map[string]int64, 4)
	for _, status := range []string{models.JobStatusPending, models.JobStatusRunning, models.JobStatusCompleted, models.JobStatusFailed} {
		count, err := s.jobRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		counts[status] = count
		s.metrics.RecordGauge("queue.depth", float64(count), map[string]string{"status": status})
	}

	oldest, err := s.jobRepo.GetOldestPendingAge(ctx)
	if err != nil {
		return nil, err
	}

	var oldestPending *string
	if oldest != nil {
		age := oldest.Round(time.Second).String()
		oldestPending = &age
	}

	return &dto.QueueMetrics{
		PendingCount:   counts[models.JobStatusPending],
		RunningCount:   counts[models.JobStatusRunning],
		CompletedCount: counts[models.JobStatusCompleted],
		FailedCount:    counts[models.JobStatusFailed],
		OldestPending:  oldestPending,
		CircuitBreaker: s.circuitBreaker.GetState().String(),
	}, nil
}

func (s *RecomputeQueueService) RequeueStale(ctx context.Context, runningLongerThan time.Duration) (int64, error) {
	count, err := s.jobRepo.RequeueStale(ctx, runningLongerThan)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Warn("requeued stale recompute jobs", slog.Int64("count", count))
	}
	return count, nil
}

func (s *RecomputeQueueService) CleanupCompleted(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.jobRepo.CleanupCompleted(ctx, olderThan)
}
