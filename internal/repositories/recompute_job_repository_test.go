package repositories

import (
	"context"
	"testing"
	"time"

	"tag-ledger/internal/database"
	"tag-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestRecomputeJobRepository(t *testing.T) {
	suite.Run(t, new(RecomputeJobRepositorySuite))
}

type RecomputeJobRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo RecomputeJobRepositoryInterface
	ctx  context.Context
}

func (s *RecomputeJobRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewRecomputeJobRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *RecomputeJobRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *RecomputeJobRepositorySuite) TestEnqueueOrCoalesce() {
	first, coalesced, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-1", models.RecomputeTriggerTagRenamed)
	s.Require().NoError(err)
	s.False(coalesced)
	s.NotEqual(uuid.Nil, first.ID)
	s.Equal(models.JobStatusPending, first.Status)

	second, coalesced, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-1", models.RecomputeTriggerTransaction)
	s.Require().NoError(err)
	s.True(coalesced)
	s.Equal(first.ID, second.ID)
	s.Equal(1, second.CoalescedCount)

	stored, err := s.repo.GetByID(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Equal(1, stored.CoalescedCount)
	s.Equal(models.RecomputeTriggerTransaction, stored.Trigger)

	other, coalesced, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-2", models.RecomputeTriggerManual)
	s.Require().NoError(err)
	s.False(coalesced)
	s.NotEqual(first.ID, other.ID)

	pending, err := s.repo.CountByStatus(s.ctx, models.JobStatusPending)
	s.Require().NoError(err)
	s.Equal(int64(2), pending)
}

func (s *RecomputeJobRepositorySuite) TestEnqueueOrCoalesce_RestartsRetriedJob() {
	job, _, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-1", models.RecomputeTriggerManual)
	s.Require().NoError(err)
	for i := 0; i < 2; i++ {
		_, err = s.repo.Claim(s.ctx, job.ID)
		s.Require().NoError(err)
		s.Require().NoError(s.repo.IncrementRetry(s.ctx, job.ID, "store unavailable"))
	}

	retried, err := s.repo.GetByID(s.ctx, job.ID)
	s.Require().NoError(err)
	s.Require().Equal(2, retried.RetryCount)
	s.Require().True(retried.ScheduledAt.After(time.Now()))

	again, coalesced, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-1", models.RecomputeTriggerTransaction)
	s.Require().NoError(err)
	s.True(coalesced)
	s.Equal(job.ID, again.ID)
	s.Equal(0, again.RetryCount)

	stored, err := s.repo.GetByID(s.ctx, job.ID)
	s.Require().NoError(err)
	s.Equal(0, stored.RetryCount)
	s.Empty(stored.ErrorMessage)
	s.Equal(models.RecomputeTriggerTransaction, stored.Trigger)
	s.False(stored.ScheduledAt.After(time.Now()))
	s.True(stored.CanRetry())

	due, err := s.repo.FetchPending(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(due, 1)
	s.Equal(job.ID, due[0].ID)
}

func (s *RecomputeJobRepositorySuite) TestClaim_OnceAndOnePerUser() {
	job, _, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-1", models.RecomputeTriggerManual)
	s.Require().NoError(err)

	claimed, err := s.repo.Claim(s.ctx, job.ID)
	s.Require().NoError(err)
	s.True(claimed)

	claimed, err = s.repo.Claim(s.ctx, job.ID)
	s.Require().NoError(err)
	s.False(claimed)

	// A new trigger while running queues a fresh job that cannot start yet.
	next, coalesced, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-1", models.RecomputeTriggerTagDeleted)
	s.Require().NoError(err)
	s.False(coalesced)

	claimed, err = s.repo.Claim(s.ctx, next.ID)
	s.Require().NoError(err)
	s.False(claimed)

	s.Require().NoError(s.repo.MarkCompleted(s.ctx, job.ID, &models.RecomputeResult{BanksScanned: 2, TransactionsSeen: 10, TransactionsApplied: 7}))

	claimed, err = s.repo.Claim(s.ctx, next.ID)
	s.Require().NoError(err)
	s.True(claimed)

	done, err := s.repo.GetByID(s.ctx, job.ID)
	s.Require().NoError(err)
	s.Equal(models.JobStatusCompleted, done.Status)
	s.Equal(2, done.BanksScanned)
	s.Equal(7, done.TransactionsApplied)
	s.NotNil(done.ProcessedAt)
}

func (s *RecomputeJobRepositorySuite) TestFetchPending_RespectsSchedule() {
	due, _, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-1", models.RecomputeTriggerManual)
	s.Require().NoError(err)

	later := &models.RecomputeJob{UserID: "user-2", Trigger: models.RecomputeTriggerManual, Status: models.JobStatusPending, ScheduledAt: time.Now().Add(time.Hour)}
	s.Require().NoError(s.db.Create(later).Error)

	jobs, err := s.repo.FetchPending(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(jobs, 1)
	s.Equal(due.ID, jobs[0].ID)
}

func (s *RecomputeJobRepositorySuite) TestIncrementRetryAndMarkFailed() {
	job, _, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-1", models.RecomputeTriggerManual)
	s.Require().NoError(err)
	_, err = s.repo.Claim(s.ctx, job.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.repo.IncrementRetry(s.ctx, job.ID, "store unavailable"))

	retried, err := s.repo.GetByID(s.ctx, job.ID)
	s.Require().NoError(err)
	s.Equal(models.JobStatusPending, retried.Status)
	s.Equal(1, retried.RetryCount)
	s.Equal("store unavailable", retried.ErrorMessage)
	s.True(retried.ScheduledAt.After(time.Now()))
	s.Nil(retried.StartedAt)

	s.Require().NoError(s.repo.MarkFailed(s.ctx, job.ID, "gave up"))
	failed, err := s.repo.GetByID(s.ctx, job.ID)
	s.Require().NoError(err)
	s.True(failed.IsTerminal())

	s.ErrorIs(s.repo.IncrementRetry(s.ctx, uuid.New(), "x"), ErrRecomputeJobNotFound)
	s.ErrorIs(s.repo.MarkFailed(s.ctx, uuid.New(), "x"), ErrRecomputeJobNotFound)
}

func (s *RecomputeJobRepositorySuite) TestRequeueStale() {
	job, _, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-1", models.RecomputeTriggerManual)
	s.Require().NoError(err)
	_, err = s.repo.Claim(s.ctx, job.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.db.Model(&models.RecomputeJob{}).Where("id = ?", job.ID).
		Update("started_at", time.Now().Add(-time.Hour)).Error)

	count, err := s.repo.RequeueStale(s.ctx, 15*time.Minute)
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	requeued, err := s.repo.GetByID(s.ctx, job.ID)
	s.Require().NoError(err)
	s.Equal(models.JobStatusPending, requeued.Status)
}

func (s *RecomputeJobRepositorySuite) TestCleanupCompleted() {
	job, _, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-1", models.RecomputeTriggerManual)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.MarkCompleted(s.ctx, job.ID, nil))
	s.Require().NoError(s.db.Model(&models.RecomputeJob{}).Where("id = ?", job.ID).
		Update("processed_at", time.Now().Add(-48*time.Hour)).Error)

	fresh, _, err := s.repo.EnqueueOrCoalesce(s.ctx, "user-2", models.RecomputeTriggerManual)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.MarkCompleted(s.ctx, fresh.ID, nil))

	deleted, err := s.repo.CleanupCompleted(s.ctx, 24*time.Hour)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	_, err = s.repo.GetByID(s.ctx, job.ID)
	s.ErrorIs(err, ErrRecomputeJobNotFound)
}

func (s *RecomputeJobRepositorySuite) TestGetOldestPendingAge() {
	age, err := s.repo.GetOldestPendingAge(s.ctx)
	s.Require().NoError(err)
	s.Nil(age)

	_, _, err = s.repo.EnqueueOrCoalesce(s.ctx, "user-1", models.RecomputeTriggerManual)
	s.Require().NoError(err)

	age, err = s.repo.GetOldestPendingAge(s.ctx)
	s.Require().NoError(err)
	s.NotNil(age)
}
