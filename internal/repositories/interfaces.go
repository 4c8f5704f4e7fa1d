package repositories

import (
	"context"
	"time"

	"tag-ledger/internal/models"

	"github.com/google/uuid"
)

// TagRepositoryInterface defines the contract for the per-user tag catalog
type TagRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]models.Tag, error)
	GetByID(ctx context.Context, userID, tagID string) (*models.Tag, error)
	GetByName(ctx context.Context, userID, name string) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, userID, tagID string) error
}

// BankRepositoryInterface defines the contract for the bank registry
type BankRepositoryInterface interface {
	List(ctx context.Context) ([]models.Bank, error)
	GetByID(ctx context.Context, id string) (*models.Bank, error)
	TableNameExists(ctx context.Context, tableName string) (bool, error)
	Create(ctx context.Context, bank *models.Bank) error
}

// LedgerStoreInterface reads and writes rows of the per-bank transaction tables
type LedgerStoreInterface interface {
	EnsureTable(ctx context.Context, tableName string) error
	TableExists(ctx context.Context, tableName string) (bool, error)
	ScanPage(ctx context.Context, tableName, userID, cursor string, limit int) ([]models.TransactionRecord, string, error)
	InsertBatch(ctx context.Context, tableName string, records []*models.TransactionRecord) error
	GetByID(ctx context.Context, tableName, userID, id string) (*models.TransactionRecord, error)
	UpdateData(ctx context.Context, tableName string, record *models.TransactionRecord) error
}

// SummaryRepositoryInterface persists the materialized tags summary
type SummaryRepositoryInterface interface {
	Upsert(ctx context.Context, snapshot *models.TagsSummarySnapshot) (bool, error)
	GetByUserID(ctx context.Context, userID string) (*models.TagsSummarySnapshot, error)
}

// RecomputeJobRepositoryInterface defines the contract for the recompute queue
type RecomputeJobRepositoryInterface interface {
	EnqueueOrCoalesce(ctx context.Context, userID, trigger string) (*models.RecomputeJob, bool, error)
	FetchPending(ctx context.Context, limit int) ([]*models.RecomputeJob, error)
	Claim(ctx context.Context, jobID uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, jobID uuid.UUID, result *models.RecomputeResult) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, errorMessage string) error
	IncrementRetry(ctx context.Context, jobID uuid.UUID, errorMessage string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*models.RecomputeJob, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	GetOldestPendingAge(ctx context.Context) (*time.Duration, error)
	RequeueStale(ctx context.Context, runningLongerThan time.Duration) (int64, error)
	CleanupCompleted(ctx context.Context, olderThan time.Duration) (int64, error)
}

// ImportJobRepositoryInterface tracks statement imports
type ImportJobRepositoryInterface interface {
	Create(ctx context.Context, job *models.ImportJob) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*models.ImportJob, error)
	Update(ctx context.Context, job *models.ImportJob) error
}
