package services

import (
	"context"
	"fmt"
	"time"

	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories"
)

type SummaryWriter struct {
	summaryRepo repositories.SummaryRepositoryInterface
}

func NewSummaryWriter(summaryRepo repositories.SummaryRepositoryInterface) SummaryWriterInterface {
	return &SummaryWriter{
		summaryRepo: summaryRepo,
	}
}

// Write replaces the user's snapshot in one upsert. It returns false when a snapshot
// computed later than computedAt is already stored; that is not an error.
func (w *SummaryWriter) Write(ctx context.Context, userID string, tags []models.TagAggregate, computedAt time.Time) (bool, error) {
	if tags == nil {
		tags = []models.TagAggregate{}
	}

	snapshot := &models.TagsSummarySnapshot{
		UserID:     userID,
		Tags:       tags,
		ComputedAt: computedAt.UTC(),
	}

	written, err := w.summaryRepo.Upsert(ctx, snapshot)
	if err != nil {
		return false, fmt.Errorf("failed to write tags summary: %w", err)
	}
	return written, nil
}
