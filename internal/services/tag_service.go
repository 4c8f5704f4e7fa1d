package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories"
)

var (
	ErrDuplicateTagName = errors.New("a tag with this name already exists")
)

type TagService struct {
	tagRepo     repositories.TagRepositoryInterface
	summaryRepo repositories.SummaryRepositoryInterface
	queue       RecomputeQueueServiceInterface
	metrics     MetricsRecorderInterface
}

func NewTagService(
	tagRepo repositories.TagRepositoryInterface,
	summaryRepo repositories.SummaryRepositoryInterface,
	queue RecomputeQueueServiceInterface,
	metrics MetricsRecorderInterface,
) TagServiceInterface {
	return &TagService{
		tagRepo:     tagRepo,
		summaryRepo: summaryRepo,
		queue:       queue,
		metrics:     metrics,
	}
}

func (s *TagService) ListTags(ctx context.Context, userID string) ([]models.Tag, error) {
	return s.tagRepo.ListByUser(ctx, userID)
}

// CreateTag does not trigger a recompute: a new tag has no transactions yet and the
// next pass adds it with zero counters.
func (s *TagService) CreateTag(ctx context.Context, userID string, req *dto.CreateTagRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameFree(ctx, userID, name, ""); err != nil {
		return nil, err
	}

	tag := &models.Tag{
		UserID: userID,
		Name:   name,
		Color:  req.Color,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, repositories.ErrTagNameExists) {
			return nil, ErrDuplicateTagName
		}
		return nil, err
	}

	s.metrics.IncrementCounter("tag.mutation", map[string]string{"action": "create"})
	return tag, nil
}

// UpdateTag renames or recolors a tag. Only a rename changes the summary, so only a
// rename queues a recompute.
func (s *TagService) UpdateTag(ctx context.Context, userID, tagID string, req *dto.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, userID, tagID)
	if err != nil {
		return nil, err
	}

	renamed := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != tag.Name {
			if err := s.ensureNameFree(ctx, userID, name, tag.ID); err != nil {
				return nil, err
			}
			tag.Name = name
			renamed = true
		}
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		if errors.Is(err, repositories.ErrTagNameExists) {
			return nil, ErrDuplicateTagName
		}
		return nil, err
	}

	s.metrics.IncrementCounter("tag.mutation", map[string]string{"action": "update"})
	if renamed {
		s.queue.Trigger(ctx, userID, models.RecomputeTriggerTagRenamed)
	}
	return tag, nil
}

// DeleteTag removes the tag from the catalog. References left on transactions become
// dangling and are dropped by the next pass.
func (s *TagService) DeleteTag(ctx context.Context, userID, tagID string) error {
	if err := s.tagRepo.Delete(ctx, userID, tagID); err != nil {
		return err
	}

	s.metrics.IncrementCounter("tag.mutation", map[string]string{"action": "delete"})
	s.queue.Trigger(ctx, userID, models.RecomputeTriggerTagDeleted)
	return nil
}

func (s *TagService) GetSummary(ctx context.Context, userID string) (*models.TagsSummarySnapshot, error) {
	return s.summaryRepo.GetByUserID(ctx, userID)
}

func (s *TagService) ensureNameFree(ctx context.Context, userID, name, exceptID string) error {
	existing, err := s.tagRepo.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repositories.ErrTagNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check tag name: %w", err)
	}
	if existing.ID != exceptID {
		return ErrDuplicateTagName
	}
	return nil
}
