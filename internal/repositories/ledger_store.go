package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tag-ledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTableNotFound       = errors.New("bank table not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type ledgerStore struct {
	db *gorm.DB
}

// NewLedgerStore gives access to the per-bank transaction tables. Table names come from
// the bank registry and are quoted by gorm, so hyphenated slugs are safe.
func NewLedgerStore(db *gorm.DB) LedgerStoreInterface {
	return &ledgerStore{
		db: db,
	}
}

func (s *ledgerStore) EnsureTable(ctx context.Context, tableName string) error {
	if err := s.db.WithContext(ctx).Table(tableName).AutoMigrate(&models.TransactionRecord{}); err != nil {
		return fmt.Errorf("failed to create bank table %s: %w", tableName, err)
	}
	return nil
}

// TableExists looks tableName up in the catalog of the current schema. A failed lookup
// is an error, not a missing table.
func (s *ledgerStore) TableExists(ctx context.Context, tableName string) (bool, error) {
	query := "SELECT count(*) FROM information_schema.tables WHERE table_schema = CURRENT_SCHEMA() AND table_name = ? AND table_type = 'BASE TABLE'"
	if s.db.Dialector.Name() == "sqlite" {
		query = "SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
	}

	var count int64
	if err := s.db.WithContext(ctx).Raw(query, tableName).Scan(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up bank table %s: %w", tableName, err)
	}
	return count > 0, nil
}

func (s *ledgerStore) requireTable(ctx context.Context, tableName string) error {
	exists, err := s.TableExists(ctx, tableName)
	if err != nil {
		return err
	}
	if !exists {
		return ErrTableNotFound
	}
	return nil
}

// ScanPage returns up to limit records of userID ordered by id, starting after cursor.
// The returned cursor is empty once the table is exhausted.
func (s *ledgerStore) ScanPage(ctx context.Context, tableName, userID, cursor string, limit int) ([]models.TransactionRecord, string, error) {
	if err := s.requireTable(ctx, tableName); err != nil {
		return nil, "", err
	}

	afterID, err := DecodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	query := s.db.WithContext(ctx).Table(tableName).Where("user_id = ?", userID)
	if afterID != "" {
		query = query.Where("id > ?", afterID)
	}

	var records []models.TransactionRecord
	if err := query.Order("id ASC").Limit(limit).Find(&records).Error; err != nil {
		return nil, "", fmt.Errorf("failed to scan %s: %w", tableName, err)
	}

	next := ""
	if len(records) == limit {
		next = EncodeCursor(records[len(records)-1].ID)
	}
	return records, next, nil
}

func (s *ledgerStore) InsertBatch(ctx context.Context, tableName string, records []*models.TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Table(tableName).CreateInBatches(records, len(records)).Error; err != nil {
		return fmt.Errorf("failed to insert into %s: %w", tableName, err)
	}
	return nil
}

func (s *ledgerStore) GetByID(ctx context.Context, tableName, userID, id string) (*models.TransactionRecord, error) {
	if err := s.requireTable(ctx, tableName); err != nil {
		return nil, err
	}

	var record models.TransactionRecord
	err := s.db.WithContext(ctx).Table(tableName).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &record, nil
}

// UpdateData replaces the raw data column of one record owned by record.UserID.
func (s *ledgerStore) UpdateData(ctx context.Context, tableName string, record *models.TransactionRecord) error {
	if record.Data == nil {
		record.Data = models.JSONBMap{}
	}
	record.UpdatedAt = time.Now().UTC()

	result := s.db.WithContext(ctx).Table(tableName).
		Where("id = ? AND user_id = ?", record.ID, record.UserID).
		Updates(map[string]interface{}{
			"data":       record.Data,
			"updated_at": record.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}
