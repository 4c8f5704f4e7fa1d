package repositories

import (
	"context"
	"errors"
	"fmt"

	"tag-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrImportJobNotFound = errors.New("import job not found")

type importJobRepository struct {
	db *gorm.DB
}

func NewImportJobRepository(db *gorm.DB) ImportJobRepositoryInterface {
	return &importJobRepository{
		db: db,
	}
}

func (r *importJobRepository) Create(ctx context.Context, job *models.ImportJob) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create import job: %w", err)
	}
	return nil
}

func (r *importJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (*models.ImportJob, error) {
	var job models.ImportJob
	if err := r.db.WithContext(ctx).Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImportJobNotFound
		}
		return nil, fmt.Errorf("failed to get import job: %w", err)
	}
	return &job, nil
}

// Update persists progress counters and status
func (r *importJobRepository) Update(ctx context.Context, job *models.ImportJob) error {
	result := r.db.WithContext(ctx).Model(&models.ImportJob{}).
		Where("id = ?", job.ID).
		Updates(map[string]interface{}{
			"status":         job.Status,
			"total_rows":     job.TotalRows,
			"processed_rows": job.ProcessedRows,
			"failed_rows":    job.FailedRows,
			"error_message":  job.ErrorMessage,
			"completed_at":   job.CompletedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update import job: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrImportJobNotFound
	}

	return nil
}
