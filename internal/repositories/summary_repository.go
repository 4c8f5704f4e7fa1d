package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tag-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSummaryNotFound = errors.New("tags summary not found")

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepositoryInterface {
	return &summaryRepository{
		db: db,
	}
}

// Upsert writes the snapshot in a single statement. An existing row is only replaced
// when its computed_at is not newer than the incoming one; created_at is kept.
// The boolean reports whether the row was written.
func (r *summaryRepository) Upsert(ctx context.Context, snapshot *models.TagsSummarySnapshot) (bool, error) {
	now := time.Now().UTC()
	snapshot.ID = models.TagsSummaryID(snapshot.UserID)
	snapshot.Type = models.TagsSummaryType
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = now
	}
	snapshot.UpdatedAt = now
	if snapshot.ComputedAt.IsZero() {
		snapshot.ComputedAt = now
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "tags", "updated_at", "computed_at"}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "tags_summaries.computed_at <= excluded.computed_at"},
		}},
	}).Create(snapshot)

	if result.Error != nil {
		return false, fmt.Errorf("failed to upsert tags summary: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *summaryRepository) GetByUserID(ctx context.Context, userID string) (*models.TagsSummarySnapshot, error) {
	var snapshot models.TagsSummarySnapshot
	if err := r.db.WithContext(ctx).Where("id = ?", models.TagsSummaryID(userID)).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get tags summary: %w", err)
	}
	return &snapshot, nil
}
