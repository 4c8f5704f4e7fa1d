package handlers

import (
	"fmt"
	"io"
	"net/http"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/errors"
	"tag-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const importFileField = "file"

// ImportHandler accepts CSV and XLSX statement uploads
type ImportHandler struct {
	importService  services.ImportServiceInterface
	maxUploadBytes int64
}

func NewImportHandler(importService services.ImportServiceInterface, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadStatement parses the uploaded file and starts writing its rows into the bank table.
// The returned job can be polled for progress.
// @Router /banks/{bankId}/imports [post]
func (h *ImportHandler) UploadStatement(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	bankID, ok := requiredParam(c, "bankId")
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	req := dto.ImportRequest{
		AccountID:   c.FormValue("accountId"),
		StatementID: c.FormValue("statementId"),
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	fileHeader, err := c.FormFile(importFileField)
	if err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("file is required"))
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return SendError(c, errors.ImportFileTooLarge,
			errors.WithDetails(fmt.Sprintf("limit is %d bytes", h.maxUploadBytes)))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, fmt.Errorf("failed to open upload: %w", err))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return SendSystemError(c, fmt.Errorf("failed to read upload: %w", err))
	}

	job, err := h.importService.StartImport(c.Request().Context(), userID, bankID, &req, fileHeader.Filename, data)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusAccepted, SuccessResponse{Data: job})
}

// GetImport reports the progress of one of the caller's imports
// @Router /imports/{id} [get]
func (h *ImportHandler) GetImport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	jobID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	job, err := h.importService.GetImport(c.Request().Context(), userID, jobID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: job,
		Meta: map[string]float64{"percentComplete": job.PercentComplete()},
	})
}
