package repositories

import (
	"context"
	"testing"

	"tag-ledger/internal/database"
	"tag-ledger/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestBankRepository(t *testing.T) {
	suite.Run(t, new(BankRepositorySuite))
}

type BankRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo BankRepositoryInterface
	ctx  context.Context
}

func (s *BankRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBankRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *BankRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BankRepositorySuite) TestCreateAndGet() {
	bank := &models.Bank{Name: "HDFC Bank", TxTableName: "bank-txn-hdfc-bank"}
	s.Require().NoError(s.repo.Create(s.ctx, bank))
	s.NotEmpty(bank.ID)

	found, err := s.repo.GetByID(s.ctx, bank.ID)
	s.Require().NoError(err)
	s.Equal("HDFC Bank", found.Name)
	s.Equal("bank-txn-hdfc-bank", found.TxTableName)

	_, err = s.repo.GetByID(s.ctx, "missing")
	s.ErrorIs(err, ErrBankNotFound)
}

func (s *BankRepositorySuite) TestCreate_DuplicateTableName() {
	s.Require().NoError(s.repo.Create(s.ctx, &models.Bank{Name: "SBI", TxTableName: "bank-txn-sbi"}))

	err := s.repo.Create(s.ctx, &models.Bank{Name: "S.B.I", TxTableName: "bank-txn-sbi"})
	s.ErrorIs(err, ErrBankTableExists)
}

func (s *BankRepositorySuite) TestTableNameExists() {
	database.CreateTestBank(s.T(), s.db, "ICICI", "bank-txn-icici", false)

	exists, err := s.repo.TableNameExists(s.ctx, "bank-txn-icici")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.TableNameExists(s.ctx, "bank-txn-axis")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *BankRepositorySuite) TestList() {
	database.CreateTestBank(s.T(), s.db, "HDFC", "bank-txn-hdfc", false)
	database.CreateTestBank(s.T(), s.db, "ICICI", "bank-txn-icici", false)

	banks, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(banks, 2)
}
