package repositories

import (
	"context"
	"testing"

	"tag-ledger/internal/database"
	"tag-ledger/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestTagRepository(t *testing.T) {
	suite.Run(t, new(TagRepositorySuite))
}

type TagRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TagRepositoryInterface
	ctx  context.Context
}

func (s *TagRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTagRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *TagRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TagRepositorySuite) TestCreate_AssignsDefaults() {
	tag := &models.Tag{UserID: "user-1", Name: " Rent "}

	s.Require().NoError(s.repo.Create(s.ctx, tag))
	s.NotEmpty(tag.ID)
	s.Equal(models.DefaultTagColor, tag.Color)
	s.Equal("rent", tag.NameKey)
}

func (s *TagRepositorySuite) TestCreate_DuplicateNameIgnoresCase() {
	s.Require().NoError(s.repo.Create(s.ctx, &models.Tag{UserID: "user-1", Name: "Rent"}))

	err := s.repo.Create(s.ctx, &models.Tag{UserID: "user-1", Name: "RENT"})
	s.ErrorIs(err, ErrTagNameExists)

	s.NoError(s.repo.Create(s.ctx, &models.Tag{UserID: "user-2", Name: "rent"}))
}

func (s *TagRepositorySuite) TestListByUser_ScopedAndOrdered() {
	database.CreateTestTag(s.T(), s.db, "user-1", "Salary")
	database.CreateTestTag(s.T(), s.db, "user-1", "groceries")
	database.CreateTestTag(s.T(), s.db, "user-2", "Other")

	tags, err := s.repo.ListByUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Require().Len(tags, 2)
	s.Equal("groceries", tags[0].Name)
	s.Equal("Salary", tags[1].Name)
}

func (s *TagRepositorySuite) TestGetByID_OtherUserNotFound() {
	tag := database.CreateTestTag(s.T(), s.db, "user-1", "Rent")

	found, err := s.repo.GetByID(s.ctx, "user-1", tag.ID)
	s.Require().NoError(err)
	s.Equal("Rent", found.Name)

	_, err = s.repo.GetByID(s.ctx, "user-2", tag.ID)
	s.ErrorIs(err, ErrTagNotFound)
}

func (s *TagRepositorySuite) TestGetByName_CaseInsensitive() {
	tag := database.CreateTestTag(s.T(), s.db, "user-1", "Rent")

	found, err := s.repo.GetByName(s.ctx, "user-1", "  rENT")
	s.Require().NoError(err)
	s.Equal(tag.ID, found.ID)

	_, err = s.repo.GetByName(s.ctx, "user-1", "Food")
	s.ErrorIs(err, ErrTagNotFound)
}

func (s *TagRepositorySuite) TestUpdate_RenameAndConflict() {
	rent := database.CreateTestTag(s.T(), s.db, "user-1", "Rent")
	database.CreateTestTag(s.T(), s.db, "user-1", "Food")

	rent.Name = "Housing"
	rent.Color = "#112233"
	s.Require().NoError(s.repo.Update(s.ctx, rent))

	found, err := s.repo.GetByName(s.ctx, "user-1", "housing")
	s.Require().NoError(err)
	s.Equal("#112233", found.Color)

	rent.Name = "food"
	s.ErrorIs(s.repo.Update(s.ctx, rent), ErrTagNameExists)

	s.ErrorIs(s.repo.Update(s.ctx, &models.Tag{ID: "missing", UserID: "user-1", Name: "x"}), ErrTagNotFound)
}

func (s *TagRepositorySuite) TestDelete() {
	tag := database.CreateTestTag(s.T(), s.db, "user-1", "Rent")

	s.ErrorIs(s.repo.Delete(s.ctx, "user-2", tag.ID), ErrTagNotFound)
	s.Require().NoError(s.repo.Delete(s.ctx, "user-1", tag.ID))
	s.ErrorIs(s.repo.Delete(s.ctx, "user-1", tag.ID), ErrTagNotFound)
}
