package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"tag-ledger/internal/dto"
	apierrors "tag-ledger/internal/errors"
	"tag-ledger/internal/importer"
	"tag-ledger/internal/models"
	"tag-ledger/internal/services"
	"tag-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ImportHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockImportService *service_mocks.MockImportServiceInterface
	handler           *ImportHandler
}

func (s *ImportHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockImportService = service_mocks.NewMockImportServiceInterface(s.ctrl)
	s.handler = NewImportHandler(s.mockImportService, 1024)
}

func (s *ImportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestImportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ImportHandlerTestSuite))
}

func (s *ImportHandlerTestSuite) uploadContext(fileName string, content []byte, fields map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		s.Require().NoError(writer.WriteField(key, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile(importFileField, fileName)
		s.Require().NoError(err)
		_, err = part.Write(content)
		s.Require().NoError(err)
	}
	s.Require().NoError(writer.Close())

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/banks/b1/imports", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set("user_id", testUserID)
	c.SetParamNames("bankId")
	c.SetParamValues("b1")
	return c, rec
}

func (s *ImportHandlerTestSuite) TestUploadStatement_Accepted() {
	content := []byte("Date,Narration,Amount,Dr/Cr\n2026-01-01,Rent,1000,DR\n")
	c, rec := s.uploadContext("jan.csv", content, map[string]string{"accountId": "acc-1", "statementId": "st-1"})

	jobID := uuid.New()
	s.mockImportService.EXPECT().
		StartImport(gomock.Any(), testUserID, "b1", &dto.ImportRequest{AccountID: "acc-1", StatementID: "st-1"}, "jan.csv", content).
		Return(&models.ImportJob{ID: jobID, UserID: testUserID, BankID: "b1", Status: models.JobStatusPending, TotalRows: 1}, nil)

	s.Require().NoError(s.handler.UploadStatement(c))
	s.Equal(http.StatusAccepted, rec.Code)
	s.Contains(rec.Body.String(), jobID.String())
}

func (s *ImportHandlerTestSuite) TestUploadStatement_MissingFile() {
	c, rec := s.uploadContext("", nil, nil)

	s.Require().NoError(s.handler.UploadStatement(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationRequiredField), decodeErrorCode(rec))
}

func (s *ImportHandlerTestSuite) TestUploadStatement_TooLarge() {
	c, rec := s.uploadContext("big.csv", bytes.Repeat([]byte("a"), 2048), nil)

	s.Require().NoError(s.handler.UploadStatement(c))
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Equal(string(apierrors.ImportFileTooLarge), decodeErrorCode(rec))
}

func (s *ImportHandlerTestSuite) TestUploadStatement_UnsupportedType() {
	c, rec := s.uploadContext("statement.pdf", []byte("%PDF"), nil)

	s.mockImportService.EXPECT().
		StartImport(gomock.Any(), testUserID, "b1", gomock.Any(), "statement.pdf", gomock.Any()).
		Return(nil, importer.ErrUnsupportedFileType)

	s.Require().NoError(s.handler.UploadStatement(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ImportUnsupportedFile), decodeErrorCode(rec))
}

func (s *ImportHandlerTestSuite) TestGetImport_Progress() {
	jobID := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/v1/imports/"+jobID.String(), "")
	c.Set("user_id", testUserID)
	c.SetParamNames("id")
	c.SetParamValues(jobID.String())

	s.mockImportService.EXPECT().GetImport(gomock.Any(), testUserID, jobID).Return(&models.ImportJob{
		ID:            jobID,
		UserID:        testUserID,
		Status:        models.JobStatusRunning,
		TotalRows:     400,
		ProcessedRows: 200,
	}, nil)

	s.Require().NoError(s.handler.GetImport(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"percentComplete":50`)
}

func (s *ImportHandlerTestSuite) TestGetImport_NotFound() {
	jobID := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/v1/imports/"+jobID.String(), "")
	c.Set("user_id", testUserID)
	c.SetParamNames("id")
	c.SetParamValues(jobID.String())

	s.mockImportService.EXPECT().GetImport(gomock.Any(), testUserID, jobID).Return(nil, services.ErrImportNotFound)

	s.Require().NoError(s.handler.GetImport(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.ImportNotFound), decodeErrorCode(rec))
}
