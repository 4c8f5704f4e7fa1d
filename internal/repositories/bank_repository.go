package repositories

import (
	"context"
	"errors"
	"fmt"

	"tag-ledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBankNotFound    = errors.New("bank not found")
	ErrBankTableExists = errors.New("bank table name already registered")
)

type bankRepository struct {
	db *gorm.DB
}

func NewBankRepository(db *gorm.DB) BankRepositoryInterface {
	return &bankRepository{
		db: db,
	}
}

// List returns every registered bank. The registry is global, not per user.
func (r *bankRepository) List(ctx context.Context) ([]models.Bank, error) {
	var banks []models.Bank
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&banks).Error; err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	return banks, nil
}

func (r *bankRepository) GetByID(ctx context.Context, id string) (*models.Bank, error) {
	var bank models.Bank
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	return &bank, nil
}

func (r *bankRepository) TableNameExists(ctx context.Context, tableName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bank{}).
		Where("txn_table = ?", tableName).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check bank table name: %w", err)
	}
	return count > 0, nil
}

func (r *bankRepository) Create(ctx context.Context, bank *models.Bank) error {
	if err := r.db.WithContext(ctx).Create(bank).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrBankTableExists
		}
		return fmt.Errorf("failed to create bank: %w", err)
	}
	return nil
}
