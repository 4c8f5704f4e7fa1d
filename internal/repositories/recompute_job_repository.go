package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tag-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRecomputeJobNotFound = errors.New("recompute job not found")
)

type recomputeJobRepository struct {
	db *gorm.DB
}

func NewRecomputeJobRepository(db *gorm.DB) RecomputeJobRepositoryInterface {
	return &recomputeJobRepository{
		db: db,
	}
}

// EnqueueOrCoalesce returns the user's pending job when one exists, bumping its
// coalesced count, and otherwise creates a new one. The boolean is true on coalesce.
// A coalesced trigger restarts the job's retry budget and backoff, so a job that was
// put back by IncrementRetry runs again now with its full budget.
func (r *recomputeJobRepository) EnqueueOrCoalesce(ctx context.Context, userID, trigger string) (*models.RecomputeJob, bool, error) {
	var job models.RecomputeJob
	coalesced := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND status = ?", userID, models.JobStatusPending).
			Order("scheduled_at ASC").
			First(&job).Error

		if err == nil {
			now := time.Now()
			coalesced = true
			job.CoalescedCount++
			job.Trigger = trigger
			job.RetryCount = 0
			job.ScheduledAt = now
			job.ErrorMessage = ""
			return tx.Model(&models.RecomputeJob{}).
				Where("id = ?", job.ID).
				Updates(map[string]interface{}{
					"coalesced_count": gorm.Expr("coalesced_count + 1"),
					"trigger_reason":  trigger,
					"retry_count":     0,
					"scheduled_at":    now,
					"error_message":   "",
				}).Error
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		job = models.RecomputeJob{
			UserID:  userID,
			Trigger: trigger,
			Status:  models.JobStatusPending,
		}
		return tx.Create(&job).Error
	})

	if err != nil {
		return nil, false, fmt.Errorf("failed to enqueue recompute job: %w", err)
	}

	return &job, coalesced, nil
}

func (r *recomputeJobRepository) FetchPending(ctx context.Context, limit int) ([]*models.RecomputeJob, error) {
	var jobs []*models.RecomputeJob

	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", models.JobStatusPending, time.Now()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&jobs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending jobs: %w", err)
	}

	return jobs, nil
}

// Claim moves a pending job to running. It fails (false, nil) when another worker took
// the job first or when the same user already has a running job.
func (r *recomputeJobRepository) Claim(ctx context.Context, jobID uuid.UUID) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.RecomputeJob{}).
		Where("id = ? AND status = ?", jobID, models.JobStatusPending).
		Where("NOT EXISTS (SELECT 1 FROM recompute_jobs AS running WHERE running.user_id = recompute_jobs.user_id AND running.status = ?)", models.JobStatusRunning).
		Updates(map[string]interface{}{
			"status":     models.JobStatusRunning,
			"started_at": now,
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to claim job: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (r *recomputeJobRepository) MarkCompleted(ctx context.Context, jobID uuid.UUID, result *models.RecomputeResult) error {
	updates := map[string]interface{}{
		"status":        models.JobStatusCompleted,
		"processed_at":  time.Now(),
		"error_message": "",
	}
	if result != nil {
		updates["banks_scanned"] = result.BanksScanned
		updates["banks_skipped"] = result.BanksSkipped
		updates["transactions_seen"] = result.TransactionsSeen
		updates["transactions_applied"] = result.TransactionsApplied
	}

	res := r.db.WithContext(ctx).Model(&models.RecomputeJob{}).Where("id = ?", jobID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to mark job as completed: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrRecomputeJobNotFound
	}

	return nil
}

func (r *recomputeJobRepository) MarkFailed(ctx context.Context, jobID uuid.UUID, errorMessage string) error {
	result := r.db.WithContext(ctx).Model(&models.RecomputeJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":        models.JobStatusFailed,
			"error_message": errorMessage,
			"processed_at":  time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark job as failed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrRecomputeJobNotFound
	}

	return nil
}

// IncrementRetry puts the job back to pending with exponential backoff.
func (r *recomputeJobRepository) IncrementRetry(ctx context.Context, jobID uuid.UUID, errorMessage string) error {
	job, err := r.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	job.RetryCount++
	result := r.db.WithContext(ctx).Model(&models.RecomputeJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"retry_count":   job.RetryCount,
			"scheduled_at":  job.CalculateNextScheduledTime(),
			"status":        models.JobStatusPending,
			"error_message": errorMessage,
			"started_at":    nil,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to increment retry: %w", result.Error)
	}

	return nil
}

func (r *recomputeJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (*models.RecomputeJob, error) {
	var job models.RecomputeJob
	if err := r.db.WithContext(ctx).Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecomputeJobNotFound
		}
		return nil, fmt.Errorf("failed to find recompute job: %w", err)
	}
	return &job, nil
}

func (r *recomputeJobRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RecomputeJob{}).
		Where("status = ?", status).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count %s jobs: %w", status, err)
	}

	return count, nil
}

func (r *recomputeJobRepository) GetOldestPendingAge(ctx context.Context) (*time.Duration, error) {
	var job models.RecomputeJob

	err := r.db.WithContext(ctx).Where("status = ?", models.JobStatusPending).
		Order("created_at ASC").
		First(&job).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find oldest pending job: %w", err)
	}

	age := time.Since(job.CreatedAt)
	return &age, nil
}

// RequeueStale returns jobs stuck in running (worker died mid-pass) to pending.
func (r *recomputeJobRepository) RequeueStale(ctx context.Context, runningLongerThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-runningLongerThan)

	result := r.db.WithContext(ctx).Model(&models.RecomputeJob{}).
		Where("status = ? AND started_at < ?", models.JobStatusRunning, cutoff).
		Updates(map[string]interface{}{
			"status":       models.JobStatusPending,
			"scheduled_at": time.Now(),
			"started_at":   nil,
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to requeue stale jobs: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *recomputeJobRepository) CleanupCompleted(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoffTime := time.Now().Add(-olderThan)

	result := r.db.WithContext(ctx).
		Where("status = ? AND processed_at < ?", models.JobStatusCompleted, cutoffTime).
		Delete(&models.RecomputeJob{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup completed jobs: %w", result.Error)
	}

	return result.RowsAffected, nil
}
