package services

import (
	"context"
	"log/slog"
	"time"

	"tag-ledger/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey carries the request trace id into service logs.
const CorrelationIDKey contextKey = "correlation_id"

func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, correlationID)
}

type RecomputeLogger struct {
	logger *slog.Logger
}

func NewRecomputeLogger(logger *slog.Logger) RecomputeLoggerInterface {
	return &RecomputeLogger{
		logger: logger,
	}
}

func (l *RecomputeLogger) LogJobEnqueued(ctx context.Context, job *models.RecomputeJob, coalesced bool) {
	l.logger.InfoContext(ctx, "recompute job enqueued",
		slog.String("event_type", "recompute_job_enqueued"),
		slog.String("job_id", job.ID.String()),
		slog.String("user_id", job.UserID),
		slog.String("trigger", job.Trigger),
		slog.Bool("coalesced", coalesced),
		slog.Int("coalesced_count", job.CoalescedCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *RecomputeLogger) LogRecomputeStarted(ctx context.Context, userID, trigger string) {
	l.logger.InfoContext(ctx, "recompute started",
		slog.String("event_type", "recompute_started"),
		slog.String("user_id", userID),
		slog.String("trigger", trigger),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *RecomputeLogger) LogRecomputeCompleted(ctx context.Context, result *models.RecomputeResult) {
	l.logger.InfoContext(ctx, "recompute completed",
		slog.String("event_type", "recompute_completed"),
		slog.String("user_id", result.UserID),
		slog.Int("tag_count", result.TagCount),
		slog.Int("banks_scanned", result.BanksScanned),
		slog.Int("banks_skipped", result.BanksSkipped),
		slog.Int("transactions_seen", result.TransactionsSeen),
		slog.Int("transactions_applied", result.TransactionsApplied),
		slog.Bool("snapshot_written", result.SnapshotWritten),
		slog.Int64("duration_ms", result.DurationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *RecomputeLogger) LogRecomputeFailed(ctx context.Context, userID, errorMsg string, retryCount int) {
	l.logger.WarnContext(ctx, "recompute failed",
		slog.String("event_type", "recompute_failed"),
		slog.String("user_id", userID),
		slog.String("error", errorMsg),
		slog.Int("retry_count", retryCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *RecomputeLogger) LogBankSkipped(ctx context.Context, userID, bankName, tableName, reason string) {
	l.logger.InfoContext(ctx, "bank skipped during recompute",
		slog.String("event_type", "recompute_bank_skipped"),
		slog.String("user_id", userID),
		slog.String("bank_name", bankName),
		slog.String("table_name", tableName),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *RecomputeLogger) LogSnapshotDiscarded(ctx context.Context, userID string, computedAt time.Time) {
	l.logger.WarnContext(ctx, "stale tags summary discarded",
		slog.String("event_type", "snapshot_discarded"),
		slog.String("user_id", userID),
		slog.Time("computed_at", computedAt),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *RecomputeLogger) LogRetryAttempt(ctx context.Context, jobID uuid.UUID, userID string, retryCount, maxRetries int, backoffMs int64) {
	l.logger.InfoContext(ctx, "retry attempt",
		slog.String("event_type", "retry_attempt"),
		slog.String("job_id", jobID.String()),
		slog.String("user_id", userID),
		slog.Int("retry_count", retryCount),
		slog.Int("max_retries", maxRetries),
		slog.Int64("backoff_ms", backoffMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *RecomputeLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	l.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *RecomputeLogger) LogImportCompleted(ctx context.Context, job *models.ImportJob) {
	attrs := []slog.Attr{
		slog.String("event_type", "import_completed"),
		slog.String("import_id", job.ID.String()),
		slog.String("user_id", job.UserID),
		slog.String("bank_id", job.BankID),
		slog.String("status", job.Status),
		slog.Int("total_rows", job.TotalRows),
		slog.Int("processed_rows", job.ProcessedRows),
		slog.Int("failed_rows", job.FailedRows),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if job.ErrorMessage != "" {
		attrs = append(attrs, slog.String("error", job.ErrorMessage))
	}

	l.logger.LogAttrs(ctx, slog.LevelInfo, "import completed", attrs...)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
