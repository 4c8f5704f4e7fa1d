package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tag-ledger/internal/database"
	"tag-ledger/internal/dto"
	"tag-ledger/internal/importer"
	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories"
	"tag-ledger/internal/services"
	"tag-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type ImportServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	db         *database.DB
	importRepo repositories.ImportJobRepositoryInterface
	ledger     repositories.LedgerStoreInterface
	queue      *service_mocks.MockRecomputeQueueServiceInterface
	service    services.ImportServiceInterface
	bank       *models.Bank
}

func TestImportServiceSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}

func (s *ImportServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.db = database.SetupTestDB(s.T())
	s.importRepo = repositories.NewImportJobRepository(s.db.DB)
	s.ledger = repositories.NewLedgerStore(s.db.DB)
	s.queue = service_mocks.NewMockRecomputeQueueServiceInterface(s.ctrl)

	s.service = services.NewImportService(
		s.importRepo,
		repositories.NewBankRepository(s.db.DB),
		s.ledger,
		services.NewTableRouter(""),
		s.queue,
		services.NewRecomputeLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		services.NewPrometheusMetrics(prometheus.NewRegistry()),
		2,
	)

	s.bank = database.CreateTestBank(s.T(), s.db, "HDFC", "bank-txn-hdfc", false)
}

func (s *ImportServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
	s.ctrl.Finish()
}

func (s *ImportServiceTestSuite) TestStartImport_WritesRowsAndTriggersRecompute() {
	triggered := make(chan struct{})
	s.queue.EXPECT().Trigger(gomock.Any(), "user-1", models.RecomputeTriggerImportComplete).
		Do(func(context.Context, string, string) { close(triggered) })

	csv := []byte("id,Amount,Dr/Cr,Tags\n" +
		"row-1,100,CR,Rent\n" +
		"row-2,50,DR,\n" +
		"row-3,75,DR,Food;Rent\n")

	job, err := s.service.StartImport(s.ctx, "user-1", s.bank.ID, &dto.ImportRequest{AccountID: "acct-1", StatementID: "st-1"}, "march.csv", csv)
	s.Require().NoError(err)
	s.Equal(3, job.TotalRows)
	s.Equal(models.ImportSourceCSV, job.Source)

	select {
	case <-triggered:
	case <-time.After(5 * time.Second):
		s.FailNow("import did not finish")
	}

	stored, err := s.service.GetImport(s.ctx, "user-1", job.ID)
	s.Require().NoError(err)
	s.Equal(models.JobStatusCompleted, stored.Status)
	s.Equal(3, stored.ProcessedRows)
	s.Equal(0, stored.FailedRows)
	s.Equal(100.0, stored.PercentComplete())
	s.NotNil(stored.CompletedAt)

	record, err := s.ledger.GetByID(s.ctx, "bank-txn-hdfc", "user-1", "row-3")
	s.Require().NoError(err)
	s.Equal("st-1", record.StatementID)
	s.Equal("acct-1", record.AccountID)
	s.NotContains(record.Data, "id")
	s.Equal([]models.TagRef{{Name: "Food"}, {Name: "Rent"}}, record.TagRefs())
}

func (s *ImportServiceTestSuite) TestStartImport_RejectsBadFile() {
	_, err := s.service.StartImport(s.ctx, "user-1", s.bank.ID, &dto.ImportRequest{}, "statement.pdf", []byte("%PDF"))
	s.ErrorIs(err, importer.ErrUnsupportedFileType)

	_, err = s.service.StartImport(s.ctx, "user-1", s.bank.ID, &dto.ImportRequest{}, "empty.csv", []byte("Amount\n"))
	s.ErrorIs(err, importer.ErrEmptyFile)
}

func (s *ImportServiceTestSuite) TestStartImport_UnknownBank() {
	_, err := s.service.StartImport(s.ctx, "user-1", "missing", &dto.ImportRequest{}, "a.csv", []byte("Amount\n1\n"))
	s.ErrorIs(err, repositories.ErrBankNotFound)
}

func (s *ImportServiceTestSuite) TestGetImport_OtherUserHidden() {
	job := &models.ImportJob{UserID: "user-2", BankID: s.bank.ID, Source: models.ImportSourceCSV, Status: models.JobStatusPending}
	s.Require().NoError(s.importRepo.Create(s.ctx, job))

	_, err := s.service.GetImport(s.ctx, "user-1", job.ID)
	s.ErrorIs(err, services.ErrImportNotFound)

	_, err = s.service.GetImport(s.ctx, "user-1", uuid.New())
	s.ErrorIs(err, services.ErrImportNotFound)
}
