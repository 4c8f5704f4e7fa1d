package services_test

import (
	"context"
	"errors"
	"testing"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories"
	"tag-ledger/internal/repositories/repository_mocks"
	"tag-ledger/internal/services"
	"tag-ledger/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type TagServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	service     services.TagServiceInterface
	tagRepo     *repository_mocks.MockTagRepositoryInterface
	summaryRepo *repository_mocks.MockSummaryRepositoryInterface
	queue       *service_mocks.MockRecomputeQueueServiceInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
}

func TestTagServiceSuite(t *testing.T) {
	suite.Run(t, new(TagServiceTestSuite))
}

func (s *TagServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.tagRepo = repository_mocks.NewMockTagRepositoryInterface(s.ctrl)
	s.summaryRepo = repository_mocks.NewMockSummaryRepositoryInterface(s.ctrl)
	s.queue = service_mocks.NewMockRecomputeQueueServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.service = services.NewTagService(s.tagRepo, s.summaryRepo, s.queue, s.metrics)
}

func (s *TagServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TagServiceTestSuite) TestCreateTag_Success() {
	name := gofakeit.Word()

	s.tagRepo.EXPECT().GetByName(s.ctx, "user-1", name).Return(nil, repositories.ErrTagNotFound)
	s.tagRepo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tag *models.Tag) error {
		s.Equal("user-1", tag.UserID)
		s.Equal(name, tag.Name)
		tag.ID = "tag-new"
		return nil
	})
	s.metrics.EXPECT().IncrementCounter("tag.mutation", map[string]string{"action": "create"})

	tag, err := s.service.CreateTag(s.ctx, "user-1", &dto.CreateTagRequest{Name: "  " + name + " "})

	s.Require().NoError(err)
	s.Equal("tag-new", tag.ID)
}

func (s *TagServiceTestSuite) TestCreateTag_DuplicateName() {
	s.tagRepo.EXPECT().GetByName(s.ctx, "user-1", "Rent").Return(&models.Tag{ID: "tag-1", Name: "rent"}, nil)

	_, err := s.service.CreateTag(s.ctx, "user-1", &dto.CreateTagRequest{Name: "Rent"})

	s.ErrorIs(err, services.ErrDuplicateTagName)
}

func (s *TagServiceTestSuite) TestCreateTag_UniqueIndexRace() {
	s.tagRepo.EXPECT().GetByName(s.ctx, "user-1", "Rent").Return(nil, repositories.ErrTagNotFound)
	s.tagRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(repositories.ErrTagNameExists)

	_, err := s.service.CreateTag(s.ctx, "user-1", &dto.CreateTagRequest{Name: "Rent"})

	s.ErrorIs(err, services.ErrDuplicateTagName)
}

func (s *TagServiceTestSuite) TestUpdateTag_RenameTriggersRecompute() {
	existing := &models.Tag{ID: "tag-1", UserID: "user-1", Name: "Rent"}
	newName := "Housing"

	s.tagRepo.EXPECT().GetByID(s.ctx, "user-1", "tag-1").Return(existing, nil)
	s.tagRepo.EXPECT().GetByName(s.ctx, "user-1", newName).Return(nil, repositories.ErrTagNotFound)
	s.tagRepo.EXPECT().Update(s.ctx, existing).Return(nil)
	s.metrics.EXPECT().IncrementCounter("tag.mutation", map[string]string{"action": "update"})
	s.queue.EXPECT().Trigger(s.ctx, "user-1", models.RecomputeTriggerTagRenamed)

	tag, err := s.service.UpdateTag(s.ctx, "user-1", "tag-1", &dto.UpdateTagRequest{Name: &newName})

	s.Require().NoError(err)
	s.Equal("Housing", tag.Name)
}

func (s *TagServiceTestSuite) TestUpdateTag_CaseOnlyRenameAllowed() {
	existing := &models.Tag{ID: "tag-1", UserID: "user-1", Name: "rent"}
	newName := "Rent"

	s.tagRepo.EXPECT().GetByID(s.ctx, "user-1", "tag-1").Return(existing, nil)
	s.tagRepo.EXPECT().GetByName(s.ctx, "user-1", newName).Return(existing, nil)
	s.tagRepo.EXPECT().Update(s.ctx, existing).Return(nil)
	s.metrics.EXPECT().IncrementCounter("tag.mutation", gomock.Any())
	s.queue.EXPECT().Trigger(s.ctx, "user-1", models.RecomputeTriggerTagRenamed)

	_, err := s.service.UpdateTag(s.ctx, "user-1", "tag-1", &dto.UpdateTagRequest{Name: &newName})

	s.NoError(err)
}

func (s *TagServiceTestSuite) TestUpdateTag_ColorOnlyDoesNotTrigger() {
	existing := &models.Tag{ID: "tag-1", UserID: "user-1", Name: "Rent"}
	color := "#FF0000"

	s.tagRepo.EXPECT().GetByID(s.ctx, "user-1", "tag-1").Return(existing, nil)
	s.tagRepo.EXPECT().Update(s.ctx, existing).Return(nil)
	s.metrics.EXPECT().IncrementCounter("tag.mutation", map[string]string{"action": "update"})

	tag, err := s.service.UpdateTag(s.ctx, "user-1", "tag-1", &dto.UpdateTagRequest{Color: &color})

	s.Require().NoError(err)
	s.Equal(color, tag.Color)
}

func (s *TagServiceTestSuite) TestUpdateTag_NameTakenByOtherTag() {
	existing := &models.Tag{ID: "tag-1", UserID: "user-1", Name: "Rent"}
	newName := "Food"

	s.tagRepo.EXPECT().GetByID(s.ctx, "user-1", "tag-1").Return(existing, nil)
	s.tagRepo.EXPECT().GetByName(s.ctx, "user-1", newName).Return(&models.Tag{ID: "tag-2", Name: "Food"}, nil)

	_, err := s.service.UpdateTag(s.ctx, "user-1", "tag-1", &dto.UpdateTagRequest{Name: &newName})

	s.ErrorIs(err, services.ErrDuplicateTagName)
}

func (s *TagServiceTestSuite) TestDeleteTag_TriggersRecompute() {
	s.tagRepo.EXPECT().Delete(s.ctx, "user-1", "tag-1").Return(nil)
	s.metrics.EXPECT().IncrementCounter("tag.mutation", map[string]string{"action": "delete"})
	s.queue.EXPECT().Trigger(s.ctx, "user-1", models.RecomputeTriggerTagDeleted)

	s.NoError(s.service.DeleteTag(s.ctx, "user-1", "tag-1"))
}

func (s *TagServiceTestSuite) TestDeleteTag_NotFound() {
	s.tagRepo.EXPECT().Delete(s.ctx, "user-1", "tag-1").Return(repositories.ErrTagNotFound)

	s.ErrorIs(s.service.DeleteTag(s.ctx, "user-1", "tag-1"), repositories.ErrTagNotFound)
}

func (s *TagServiceTestSuite) TestGetSummary() {
	snapshot := &models.TagsSummarySnapshot{UserID: "user-1"}
	s.summaryRepo.EXPECT().GetByUserID(s.ctx, "user-1").Return(snapshot, nil)

	got, err := s.service.GetSummary(s.ctx, "user-1")

	s.Require().NoError(err)
	s.Same(snapshot, got)
}

func (s *TagServiceTestSuite) TestListTags_Error() {
	s.tagRepo.EXPECT().ListByUser(s.ctx, "user-1").Return(nil, errors.New("boom"))

	_, err := s.service.ListTags(s.ctx, "user-1")

	s.Error(err)
}
