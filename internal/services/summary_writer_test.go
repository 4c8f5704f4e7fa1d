package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories/repository_mocks"
	"tag-ledger/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryWriter_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockSummaryRepositoryInterface(ctrl)
	writer := services.NewSummaryWriter(repo)

	loc := time.FixedZone("IST", 5*60*60+30*60)
	computedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, loc)

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap *models.TagsSummarySnapshot) (bool, error) {
			assert.Equal(t, "user-1", snap.UserID)
			assert.NotNil(t, snap.Tags)
			assert.Empty(t, snap.Tags)
			assert.Equal(t, time.UTC, snap.ComputedAt.Location())
			assert.True(t, snap.ComputedAt.Equal(computedAt))
			return true, nil
		})

	written, err := writer.Write(context.Background(), "user-1", nil, computedAt)

	require.NoError(t, err)
	assert.True(t, written)
}

func TestSummaryWriter_StaleIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockSummaryRepositoryInterface(ctrl)
	writer := services.NewSummaryWriter(repo)

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(false, nil)

	written, err := writer.Write(context.Background(), "user-1", []models.TagAggregate{}, time.Now())

	require.NoError(t, err)
	assert.False(t, written)
}

func TestSummaryWriter_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockSummaryRepositoryInterface(ctrl)
	writer := services.NewSummaryWriter(repo)
	failure := errors.New("connection reset")

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(false, failure)

	_, err := writer.Write(context.Background(), "user-1", nil, time.Now())

	assert.ErrorIs(t, err, failure)
}
