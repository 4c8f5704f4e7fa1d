package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tag-ledger/internal/dto"
	apierrors "tag-ledger/internal/errors"
	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories"
	"tag-ledger/internal/services"
	"tag-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	ctrl                   *gomock.Controller
	mockTransactionService *service_mocks.MockTransactionServiceInterface
	handler                *TransactionHandler
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockTransactionService)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

type handlerCall struct {
	c   echo.Context
	rec *httptest.ResponseRecorder
}

func (s *TransactionHandlerTestSuite) newCall(bankID, transactionID, body string) *handlerCall {
	c, rec := newTestContext(http.MethodPatch, "/api/v1/banks/"+bankID+"/transactions", body)
	c.Set("user_id", testUserID)
	if transactionID != "" {
		c.SetParamNames("bankId", "id")
		c.SetParamValues(bankID, transactionID)
	} else {
		c.SetParamNames("bankId")
		c.SetParamValues(bankID)
	}
	return &handlerCall{c: c, rec: rec}
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_ReplaceTags() {
	call := s.newCall("b1", "tx1", `{"tags":["t1","t2"]}`)

	tags := []string{"t1", "t2"}
	s.mockTransactionService.EXPECT().
		UpdateTransaction(gomock.Any(), testUserID, "b1", "tx1", &dto.UpdateTransactionRequest{Tags: &tags}).
		Return(&models.TransactionRecord{ID: "tx1", UserID: testUserID}, nil)

	s.Require().NoError(s.handler.UpdateTransaction(call.c))
	s.Equal(http.StatusOK, call.rec.Code)
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_EmptyBody() {
	call := s.newCall("b1", "tx1", `{}`)

	s.Require().NoError(s.handler.UpdateTransaction(call.c))
	s.Equal(http.StatusBadRequest, call.rec.Code)
	s.Equal(string(apierrors.ValidationRequiredField), decodeErrorCode(call.rec))
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_ErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{"unknown tag", services.ErrUnknownTag, http.StatusUnprocessableEntity, apierrors.TagUnknownRef},
		{"reserved field", fmt.Errorf("%w: userId", services.ErrReservedField), http.StatusUnprocessableEntity, apierrors.TransactionReservedField},
		{"missing transaction", repositories.ErrTransactionNotFound, http.StatusNotFound, apierrors.TransactionNotFound},
		{"missing bank", repositories.ErrBankNotFound, http.StatusNotFound, apierrors.BankNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			call := s.newCall("b1", "tx1", `{"fields":{"Narration":"rent"}}`)

			s.mockTransactionService.EXPECT().
				UpdateTransaction(gomock.Any(), testUserID, "b1", "tx1", gomock.Any()).
				Return(nil, tt.err)

			s.Require().NoError(s.handler.UpdateTransaction(call.c))
			s.Equal(tt.wantStatus, call.rec.Code)
			s.Equal(string(tt.wantCode), decodeErrorCode(call.rec))
		})
	}
}

func (s *TransactionHandlerTestSuite) TestBulkUpdate_Success() {
	call := s.newCall("b1", "", `{"transactionIds":["tx1","tx2"],"addTags":["t1"]}`)

	s.mockTransactionService.EXPECT().
		BulkUpdateTags(gomock.Any(), testUserID, "b1", &dto.BulkUpdateTransactionsRequest{
			TransactionIDs: []string{"tx1", "tx2"},
			AddTags:        []string{"t1"},
		}).
		Return(&dto.BulkUpdateResult{Updated: 1, NotFound: []string{"tx2"}}, nil)

	s.Require().NoError(s.handler.BulkUpdateTransactions(call.c))
	s.Equal(http.StatusOK, call.rec.Code)
	s.Contains(call.rec.Body.String(), `"notFound":["tx2"]`)
}

func (s *TransactionHandlerTestSuite) TestBulkUpdate_NoTagChanges() {
	call := s.newCall("b1", "", `{"transactionIds":["tx1"]}`)

	s.Require().NoError(s.handler.BulkUpdateTransactions(call.c))
	s.Equal(http.StatusBadRequest, call.rec.Code)
	s.Equal(string(apierrors.ValidationRequiredField), decodeErrorCode(call.rec))
}

func (s *TransactionHandlerTestSuite) TestBulkUpdate_MissingIDs() {
	call := s.newCall("b1", "", `{"addTags":["t1"]}`)

	s.Require().NoError(s.handler.BulkUpdateTransactions(call.c))
	s.Equal(http.StatusBadRequest, call.rec.Code)
	s.Equal(string(apierrors.ValidationGeneral), decodeErrorCode(call.rec))
}
