package handlers

import (
	"net/http"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/errors"
	"tag-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler edits transactions stored in bank tables
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// UpdateTransaction replaces the tag list and/or merges raw fields of one transaction
// @Router /banks/{bankId}/transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	bankID, ok := requiredParam(c, "bankId")
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}
	transactionID, ok := requiredParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if req.Tags == nil && len(req.Fields) == 0 {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("tags or fields is required"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	record, err := h.transactionService.UpdateTransaction(c.Request().Context(), userID, bankID, transactionID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: record})
}

// BulkUpdateTransactions adds and removes tags across many transactions of one bank
// @Router /banks/{bankId}/transactions [patch]
func (h *TransactionHandler) BulkUpdateTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	bankID, ok := requiredParam(c, "bankId")
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.BulkUpdateTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}
	if len(req.AddTags) == 0 && len(req.RemoveTags) == 0 {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("addTags or removeTags is required"))
	}

	result, err := h.transactionService.BulkUpdateTags(c.Request().Context(), userID, bankID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}
