package services

import (
	"context"
	"time"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/models"

	"github.com/google/uuid"
)

// ClassifierInterface maps one raw transaction to a normalized movement
type ClassifierInterface interface {
	Classify(data models.JSONBMap) models.NormalizedMovement
	Explain(data models.JSONBMap) Classification
}

// TagAggregationServiceInterface is the engine entry point
type TagAggregationServiceInterface interface {
	Recompute(ctx context.Context, userID string) (*models.RecomputeResult, error)
}

// SummaryWriterInterface persists the per-user snapshot
type SummaryWriterInterface interface {
	Write(ctx context.Context, userID string, tags []models.TagAggregate, computedAt time.Time) (bool, error)
}

// RecomputeQueueServiceInterface defines the persisted, coalescing recompute queue
type RecomputeQueueServiceInterface interface {
	Enqueue(ctx context.Context, userID, trigger string) (*models.RecomputeJob, bool, error)
	Trigger(ctx context.Context, userID, trigger string)
	StartProcessing(ctx context.Context)
	ProcessJob(ctx context.Context, job *models.RecomputeJob) error
	GetJob(ctx context.Context, userID string, jobID uuid.UUID) (*models.RecomputeJob, error)
	GetQueueMetrics(ctx context.Context) (*dto.QueueMetrics, error)
	RequeueStale(ctx context.Context, runningLongerThan time.Duration) (int64, error)
	CleanupCompleted(ctx context.Context, olderThan time.Duration) (int64, error)
}

// TagServiceInterface manages the tag catalog and exposes the summary
type TagServiceInterface interface {
	ListTags(ctx context.Context, userID string) ([]models.Tag, error)
	CreateTag(ctx context.Context, userID string, req *dto.CreateTagRequest) (*models.Tag, error)
	UpdateTag(ctx context.Context, userID, tagID string, req *dto.UpdateTagRequest) (*models.Tag, error)
	DeleteTag(ctx context.Context, userID, tagID string) error
	GetSummary(ctx context.Context, userID string) (*models.TagsSummarySnapshot, error)
}

// BankServiceInterface manages the bank registry
type BankServiceInterface interface {
	ListBanks(ctx context.Context) ([]models.Bank, error)
	GetBank(ctx context.Context, bankID string) (*models.Bank, error)
	CreateBank(ctx context.Context, name string) (*models.Bank, error)
}

// TransactionServiceInterface edits transactions in bank tables
type TransactionServiceInterface interface {
	UpdateTransaction(ctx context.Context, userID, bankID, transactionID string, req *dto.UpdateTransactionRequest) (*models.TransactionRecord, error)
	BulkUpdateTags(ctx context.Context, userID, bankID string, req *dto.BulkUpdateTransactionsRequest) (*dto.BulkUpdateResult, error)
}

// ImportServiceInterface loads statement files into bank tables
type ImportServiceInterface interface {
	StartImport(ctx context.Context, userID, bankID string, req *dto.ImportRequest, fileName string, data []byte) (*models.ImportJob, error)
	GetImport(ctx context.Context, userID string, jobID uuid.UUID) (*models.ImportJob, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type RecomputeLoggerInterface interface {
	LogJobEnqueued(ctx context.Context, job *models.RecomputeJob, coalesced bool)
	LogRecomputeStarted(ctx context.Context, userID, trigger string)
	LogRecomputeCompleted(ctx context.Context, result *models.RecomputeResult)
	LogRecomputeFailed(ctx context.Context, userID, errorMsg string, retryCount int)
	LogBankSkipped(ctx context.Context, userID, bankName, tableName, reason string)
	LogSnapshotDiscarded(ctx context.Context, userID string, computedAt time.Time)
	LogRetryAttempt(ctx context.Context, jobID uuid.UUID, userID string, retryCount, maxRetries int, backoffMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogImportCompleted(ctx context.Context, job *models.ImportJob)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
