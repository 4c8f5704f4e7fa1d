package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories"

	"golang.org/x/sync/singleflight"
)

var (
	ErrTagCatalogUnavailable   = errors.New("tag catalog unavailable")
	ErrBankRegistryUnavailable = errors.New("bank registry unavailable")
)

type TagAggregationService struct {
	tagRepo    repositories.TagRepositoryInterface
	bankRepo   repositories.BankRepositoryInterface
	ledger     repositories.LedgerStoreInterface
	writer     SummaryWriterInterface
	classifier ClassifierInterface
	router     *TableRouter
	scanConfig ScanConfig
	inflight   singleflight.Group
	events     RecomputeLoggerInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
	now        func() time.Time
}

func NewTagAggregationService(
	tagRepo repositories.TagRepositoryInterface,
	bankRepo repositories.BankRepositoryInterface,
	ledger repositories.LedgerStoreInterface,
	writer SummaryWriterInterface,
	classifier ClassifierInterface,
	router *TableRouter,
	scanConfig ScanConfig,
	events RecomputeLoggerInterface,
	metrics MetricsRecorderInterface,
) TagAggregationServiceInterface {
	return &TagAggregationService{
		tagRepo:    tagRepo,
		bankRepo:   bankRepo,
		ledger:     ledger,
		writer:     writer,
		classifier: classifier,
		router:     router,
		scanConfig: scanConfig,
		events:     events,
		metrics:    metrics,
		logger:     slog.Default(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// pendingMovement is an accepted movement held back until its bank finishes scanning,
// so a bank that fails halfway contributes nothing.
type pendingMovement struct {
	tags        []models.Tag
	movement    models.NormalizedMovement
	statementID string
	account     string
}

type bankScan struct {
	movements    []pendingMovement
	seen         int
	unclassified int
	untagged     int
}

// Recompute rebuilds the tags summary of userID from every bank table and writes it.
// Calls for a user that arrive while a pass for that user is running share its outcome.
func (s *TagAggregationService) Recompute(ctx context.Context, userID string) (*models.RecomputeResult, error) {
	v, err, shared := s.inflight.Do(userID, func() (interface{}, error) {
		return s.recompute(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.metrics.IncrementCounter("recompute.shared", nil)
	}

	result := *v.(*models.RecomputeResult)
	return &result, nil
}

func (s *TagAggregationService) recompute(ctx context.Context, userID string) (*models.RecomputeResult, error) {
	startTime := time.Now()
	result := &models.RecomputeResult{
		UserID:     userID,
		ComputedAt: s.now(),
	}

	tags, err := s.tagRepo.ListByUser(ctx, userID)
	if err != nil {
		s.recordFailure(userID)
		return nil, fmt.Errorf("%w: %w", ErrTagCatalogUnavailable, err)
	}
	catalog := NewTagCatalog(tags)
	result.TagCount = catalog.Len()

	banks, err := s.bankRepo.List(ctx)
	if err != nil {
		s.recordFailure(userID)
		return nil, fmt.Errorf("%w: %w", ErrBankRegistryUnavailable, err)
	}

	aggregates := make(map[string]*models.TagAggregate, len(tags))
	for _, tag := range tags {
		aggregates[tag.ID] = models.NewTagAggregate(tag)
	}

	for _, bank := range banks {
		tableName := s.router.TableFor(bank)

		scan, err := s.scanBank(ctx, userID, tableName, catalog)
		if err != nil {
			result.BanksSkipped++
			s.events.LogBankSkipped(ctx, userID, bank.Name, tableName, err.Error())
			s.metrics.IncrementCounter("recompute.bank.skipped", map[string]string{"reason": "scan_failed"})
			continue
		}
		if scan == nil {
			result.BanksSkipped++
			s.events.LogBankSkipped(ctx, userID, bank.Name, tableName, "table does not exist")
			s.metrics.IncrementCounter("recompute.bank.skipped", map[string]string{"reason": "missing_table"})
			continue
		}

		result.BanksScanned++
		result.TransactionsSeen += scan.seen
		result.TransactionsUnclassified += scan.unclassified
		result.TransactionsUntagged += scan.untagged

		for _, pm := range scan.movements {
			for _, tag := range pm.tags {
				aggregates[tag.ID].AddMovement(pm.movement, bank.Name, pm.statementID, pm.account)
			}
		}
		result.TransactionsApplied += len(scan.movements)
	}

	ordered := sortAggregates(aggregates)

	written, err := s.writer.Write(ctx, userID, ordered, result.ComputedAt)
	if err != nil {
		s.recordFailure(userID)
		return nil, err
	}
	result.SnapshotWritten = written
	if !written {
		s.events.LogSnapshotDiscarded(ctx, userID, result.ComputedAt)
		s.metrics.IncrementCounter("recompute.snapshot.stale", nil)
	}

	duration := time.Since(startTime)
	result.DurationMs = duration.Milliseconds()

	s.metrics.RecordProcessingTime("recompute.duration", duration)
	s.metrics.IncrementCounter("recompute.completed", map[string]string{"status": "success"})
	s.metrics.RecordGauge("recompute.transactions", float64(result.TransactionsApplied), map[string]string{"outcome": "applied"})
	s.metrics.RecordGauge("recompute.transactions", float64(result.TransactionsUnclassified), map[string]string{"outcome": "unclassified"})
	s.metrics.RecordGauge("recompute.transactions", float64(result.TransactionsUntagged), map[string]string{"outcome": "untagged"})
	s.events.LogRecomputeCompleted(ctx, result)

	return result, nil
}

// scanBank returns nil, nil when the bank has no table yet.
func (s *TagAggregationService) scanBank(ctx context.Context, userID, tableName string, catalog *TagCatalog) (*bankScan, error) {
	exists, err := s.ledger.TableExists(ctx, tableName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	scan := &bankScan{}
	fetch := func(ctx context.Context, cursor string, limit int) ([]models.TransactionRecord, string, error) {
		return s.ledger.ScanPage(ctx, tableName, userID, cursor, limit)
	}

	for record, err := range Scan(ctx, s.scanConfig, fetch) {
		if err != nil {
			return nil, err
		}
		scan.seen++

		tags := catalog.Resolve(record.TagRefs())
		if len(tags) == 0 {
			scan.untagged++
			continue
		}

		movement := s.classifier.Classify(record.Data)
		if !movement.Applicable() {
			scan.unclassified++
			continue
		}

		scan.movements = append(scan.movements, pendingMovement{
			tags:        tags,
			movement:    movement,
			statementID: record.StatementID,
			account:     record.AccountDisplay(),
		})
	}

	return scan, nil
}

func (s *TagAggregationService) recordFailure(userID string) {
	s.metrics.IncrementCounter("recompute.completed", map[string]string{"status": "failed"})
	s.logger.Error("tag recompute failed", slog.String("user_id", userID))
}

// sortAggregates orders by tag name, case-sensitive, with the id as a stable tie-breaker.
func sortAggregates(aggregates map[string]*models.TagAggregate) []models.TagAggregate {
	ordered := make([]models.TagAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		ordered = append(ordered, *agg)
	}
	slices.SortFunc(ordered, func(a, b models.TagAggregate) int {
		return cmp.Or(cmp.Compare(a.TagName, b.TagName), cmp.Compare(a.TagID, b.TagID))
	})
	return ordered
}
