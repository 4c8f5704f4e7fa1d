package services

import (
	"context"
	"errors"
	"slices"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories"
)

var (
	ErrUnknownTag     = errors.New("one or more tags do not exist")
	ErrReservedField  = errors.New("field cannot be edited")
	reservedDataField = []string{"id", "userId", "user_id", "accountId", "account_id", "statementId", "statement_id"}
)

type TransactionService struct {
	bankRepo repositories.BankRepositoryInterface
	tagRepo  repositories.TagRepositoryInterface
	ledger   repositories.LedgerStoreInterface
	router   *TableRouter
	queue    RecomputeQueueServiceInterface
	metrics  MetricsRecorderInterface
}

func NewTransactionService(
	bankRepo repositories.BankRepositoryInterface,
	tagRepo repositories.TagRepositoryInterface,
	ledger repositories.LedgerStoreInterface,
	router *TableRouter,
	queue RecomputeQueueServiceInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &TransactionService{
		bankRepo: bankRepo,
		tagRepo:  tagRepo,
		ledger:   ledger,
		router:   router,
		queue:    queue,
		metrics:  metrics,
	}
}

// UpdateTransaction merges raw field edits and optionally replaces the tag list,
// then queues a recompute for the owner.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, bankID, transactionID string, req *dto.UpdateTransactionRequest) (*models.TransactionRecord, error) {
	for field := range req.Fields {
		if field == models.TagsField || slices.Contains(reservedDataField, field) {
			return nil, ErrReservedField
		}
	}

	tableName, err := s.tableFor(ctx, bankID)
	if err != nil {
		return nil, err
	}

	record, err := s.ledger.GetByID(ctx, tableName, userID, transactionID)
	if err != nil {
		return nil, err
	}
	if record.Data == nil {
		record.Data = models.JSONBMap{}
	}

	if req.Tags != nil {
		if err := s.ensureTagsExist(ctx, userID, *req.Tags); err != nil {
			return nil, err
		}
		record.Data[models.TagsField] = tagIDsValue(*req.Tags)
	}
	record.Data.Merge(req.Fields)

	if err := s.ledger.UpdateData(ctx, tableName, record); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("transaction.edit", map[string]string{"kind": "single"})
	s.queue.Trigger(ctx, userID, models.RecomputeTriggerTransaction)
	return record, nil
}

// BulkUpdateTags adds and removes tag ids on many transactions. Missing transactions
// are reported, not fatal. One recompute is queued for the whole batch.
func (s *TransactionService) BulkUpdateTags(ctx context.Context, userID, bankID string, req *dto.BulkUpdateTransactionsRequest) (*dto.BulkUpdateResult, error) {
	if err := s.ensureTagsExist(ctx, userID, req.AddTags); err != nil {
		return nil, err
	}

	tableName, err := s.tableFor(ctx, bankID)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog := NewTagCatalog(tags)

	result := &dto.BulkUpdateResult{NotFound: []string{}}
	for _, id := range req.TransactionIDs {
		record, err := s.ledger.GetByID(ctx, tableName, userID, id)
		if err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				result.NotFound = append(result.NotFound, id)
				continue
			}
			return nil, err
		}
		if record.Data == nil {
			record.Data = models.JSONBMap{}
		}

		record.Data[models.TagsField] = editTagRefs(catalog, record.TagRefs(), req.AddTags, req.RemoveTags)
		if err := s.ledger.UpdateData(ctx, tableName, record); err != nil {
			return nil, err
		}
		result.Updated++
	}

	if result.Updated > 0 {
		s.metrics.IncrementCounter("transaction.edit", map[string]string{"kind": "bulk"})
		s.queue.Trigger(ctx, userID, models.RecomputeTriggerBulkEdit)
	}
	return result, nil
}

func (s *TransactionService) tableFor(ctx context.Context, bankID string) (string, error) {
	bank, err := s.bankRepo.GetByID(ctx, bankID)
	if err != nil {
		return "", err
	}
	return s.router.TableFor(*bank), nil
}

func (s *TransactionService) ensureTagsExist(ctx context.Context, userID string, tagIDs []string) error {
	for _, id := range tagIDs {
		if _, err := s.tagRepo.GetByID(ctx, userID, id); err != nil {
			if errors.Is(err, repositories.ErrTagNotFound) {
				return ErrUnknownTag
			}
			return err
		}
	}
	return nil
}

func tagIDsValue(ids []string) []interface{} {
	out := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, interface{}(id)) {
			out = append(out, id)
		}
	}
	return out
}

// editTagRefs rewrites the tags field. References the catalog resolves, by id or by
// name, are stored as ids; dangling ones are kept as written.
func editTagRefs(catalog *TagCatalog, current []models.TagRef, add, remove []string) []interface{} {
	out := make([]interface{}, 0, len(current)+len(add))
	ids := make([]string, 0, len(current)+len(add))

	for _, ref := range current {
		id := ref.ID
		if tag, ok := catalog.lookup(ref); ok {
			id = tag.ID
		} else if id == "" {
			out = append(out, map[string]interface{}{"name": ref.Name})
			continue
		}
		if slices.Contains(remove, id) || slices.Contains(ids, id) {
			continue
		}
		ids = append(ids, id)
		out = append(out, id)
	}

	for _, id := range add {
		if slices.Contains(ids, id) || slices.Contains(remove, id) {
			continue
		}
		ids = append(ids, id)
		out = append(out, id)
	}
	return out
}
