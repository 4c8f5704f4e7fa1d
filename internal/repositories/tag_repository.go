package repositories

import (
	"context"
	"errors"
	"fmt"

	"tag-ledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTagNotFound   = errors.New("tag not found")
	ErrTagNameExists = errors.New("tag name already exists")
)

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepositoryInterface {
	return &tagRepository{
		db: db,
	}
}

// ListByUser returns the full tag catalog of a user ordered by name
func (r *tagRepository) ListByUser(ctx context.Context, userID string) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name_key ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

func (r *tagRepository) GetByID(ctx context.Context, userID, tagID string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", tagID, userID).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &tag, nil
}

// GetByName matches case-insensitively
func (r *tagRepository) GetByName(ctx context.Context, userID, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name_key = ?", userID, models.TagNameKey(name)).
		First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag by name: %w", err)
	}
	return &tag, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTagNameExists
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	result := r.db.WithContext(ctx).Model(&models.Tag{}).
		Where("id = ? AND user_id = ?", tag.ID, tag.UserID).
		Updates(map[string]interface{}{
			"name":     tag.Name,
			"name_key": models.TagNameKey(tag.Name),
			"color":    tag.Color,
		})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrTagNameExists
		}
		return fmt.Errorf("failed to update tag: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}

	return nil
}

func (r *tagRepository) Delete(ctx context.Context, userID, tagID string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", tagID, userID).Delete(&models.Tag{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tag: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}

	return nil
}
