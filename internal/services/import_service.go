package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/importer"
	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrImportNotFound = errors.New("import job not found")
)

const defaultImportBatchSize = 200

type ImportService struct {
	importRepo repositories.ImportJobRepositoryInterface
	bankRepo   repositories.BankRepositoryInterface
	ledger     repositories.LedgerStoreInterface
	router     *TableRouter
	queue      RecomputeQueueServiceInterface
	events     RecomputeLoggerInterface
	metrics    MetricsRecorderInterface
	batchSize  int
	logger     *slog.Logger
}

func NewImportService(
	importRepo repositories.ImportJobRepositoryInterface,
	bankRepo repositories.BankRepositoryInterface,
	ledger repositories.LedgerStoreInterface,
	router *TableRouter,
	queue RecomputeQueueServiceInterface,
	events RecomputeLoggerInterface,
	metrics MetricsRecorderInterface,
	batchSize int,
) *ImportService {
	if batchSize <= 0 {
		batchSize = defaultImportBatchSize
	}
	return &ImportService{
		importRepo: importRepo,
		bankRepo:   bankRepo,
		ledger:     ledger,
		router:     router,
		queue:      queue,
		events:     events,
		metrics:    metrics,
		batchSize:  batchSize,
		logger:     slog.Default(),
	}
}

// StartImport parses the file up front so malformed uploads fail the request, then
// writes the rows in the background. Progress is tracked on the returned job.
func (s *ImportService) StartImport(ctx context.Context, userID, bankID string, req *dto.ImportRequest, fileName string, data []byte) (*models.ImportJob, error) {
	bank, err := s.bankRepo.GetByID(ctx, bankID)
	if err != nil {
		return nil, err
	}

	sheet, err := importer.Parse(fileName, data)
	if err != nil {
		return nil, err
	}

	tableName := s.router.TableFor(*bank)
	if err := s.ledger.EnsureTable(ctx, tableName); err != nil {
		return nil, err
	}

	job := &models.ImportJob{
		UserID:      userID,
		BankID:      bank.ID,
		AccountID:   req.AccountID,
		StatementID: req.StatementID,
		Source:      sheet.Source,
		FileName:    fileName,
		Status:      models.JobStatusPending,
		TotalRows:   len(sheet.Rows),
	}
	if err := s.importRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create import job: %w", err)
	}

	snapshot := *job
	go s.run(context.WithoutCancel(ctx), job, tableName, sheet.Rows)

	return &snapshot, nil
}

func (s *ImportService) GetImport(ctx context.Context, userID string, jobID uuid.UUID) (*models.ImportJob, error) {
	job, err := s.importRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrImportJobNotFound) {
			return nil, ErrImportNotFound
		}
		return nil, err
	}
	if job.UserID != userID {
		return nil, ErrImportNotFound
	}
	return job, nil
}

func (s *ImportService) run(ctx context.Context, job *models.ImportJob, tableName string, rows []models.JSONBMap) {
	startTime := time.Now()

	job.Status = models.JobStatusRunning
	if err := s.importRepo.Update(ctx, job); err != nil {
		s.logger.Error("failed to mark import running", slog.String("job_id", job.ID.String()), slog.Any("error", err))
	}

	for start := 0; start < len(rows); start += s.batchSize {
		end := min(start+s.batchSize, len(rows))
		batch := s.buildBatch(job, rows[start:end])

		if err := s.ledger.InsertBatch(ctx, tableName, batch); err != nil {
			job.FailedRows += len(batch)
			job.ErrorMessage = err.Error()
			s.logger.Warn("import batch failed",
				slog.String("job_id", job.ID.String()),
				slog.Int("batch_start", start),
				slog.Any("error", err),
			)
		} else {
			job.ProcessedRows += len(batch)
		}

		if err := s.importRepo.Update(ctx, job); err != nil {
			s.logger.Error("failed to record import progress", slog.String("job_id", job.ID.String()), slog.Any("error", err))
		}
	}

	completedAt := time.Now().UTC()
	job.CompletedAt = &completedAt
	job.Status = models.JobStatusCompleted
	if job.ProcessedRows == 0 && job.FailedRows > 0 {
		job.Status = models.JobStatusFailed
	}
	if err := s.importRepo.Update(ctx, job); err != nil {
		s.logger.Error("failed to finalize import", slog.String("job_id", job.ID.String()), slog.Any("error", err))
	}

	s.metrics.RecordProcessingTime("import.duration", time.Since(startTime))
	s.metrics.RecordGauge("import.rows", float64(job.ProcessedRows), map[string]string{"status": "processed"})
	s.metrics.RecordGauge("import.rows", float64(job.FailedRows), map[string]string{"status": "failed"})
	s.events.LogImportCompleted(ctx, job)

	if job.ProcessedRows > 0 {
		s.queue.Trigger(ctx, job.UserID, models.RecomputeTriggerImportComplete)
	}
}

func (s *ImportService) buildBatch(job *models.ImportJob, rows []models.JSONBMap) []*models.TransactionRecord {
	batch := make([]*models.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		record := &models.TransactionRecord{
			UserID:      job.UserID,
			AccountID:   job.AccountID,
			StatementID: job.StatementID,
			Data:        row,
		}
		if id, ok := row.StringValue("id"); ok {
			record.ID = id
			delete(row, "id")
		}
		batch = append(batch, record)
	}
	return batch
}
