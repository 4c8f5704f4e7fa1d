package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrBankTableCollision = errors.New("could not allocate a unique table name for bank")
)

const bankSuffixLength = 8

type BankService struct {
	bankRepo repositories.BankRepositoryInterface
	ledger   repositories.LedgerStoreInterface
	router   *TableRouter
	logger   *slog.Logger
}

func NewBankService(
	bankRepo repositories.BankRepositoryInterface,
	ledger repositories.LedgerStoreInterface,
	router *TableRouter,
) BankServiceInterface {
	return &BankService{
		bankRepo: bankRepo,
		ledger:   ledger,
		router:   router,
		logger:   slog.Default(),
	}
}

func (s *BankService) ListBanks(ctx context.Context) ([]models.Bank, error) {
	return s.bankRepo.List(ctx)
}

func (s *BankService) GetBank(ctx context.Context, bankID string) (*models.Bank, error) {
	return s.bankRepo.GetByID(ctx, bankID)
}

// CreateBank registers a bank and fixes its table name for good. The derived name gets
// an id suffix when another bank already owns it.
func (s *BankService) CreateBank(ctx context.Context, name string) (*models.Bank, error) {
	bank := &models.Bank{
		ID:   uuid.New().String(),
		Name: strings.TrimSpace(name),
	}

	tableName, err := s.allocateTableName(ctx, bank)
	if err != nil {
		return nil, err
	}
	bank.TxTableName = tableName

	if err := s.bankRepo.Create(ctx, bank); err != nil {
		if errors.Is(err, repositories.ErrBankTableExists) {
			return nil, ErrBankTableCollision
		}
		return nil, err
	}

	if err := s.ledger.EnsureTable(ctx, tableName); err != nil {
		return nil, fmt.Errorf("bank registered but table creation failed: %w", err)
	}

	s.logger.Info("bank registered",
		slog.String("bank_id", bank.ID),
		slog.String("bank_name", bank.Name),
		slog.String("table_name", tableName),
	)
	return bank, nil
}

func (s *BankService) allocateTableName(ctx context.Context, bank *models.Bank) (string, error) {
	candidates := []string{
		s.router.RouteTable(bank.Name),
		s.router.WithSuffix(s.router.RouteTable(bank.Name), bank.ID[:bankSuffixLength]),
	}

	for _, candidate := range candidates {
		taken, err := s.bankRepo.TableNameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrBankTableCollision
}
