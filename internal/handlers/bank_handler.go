package handlers

import (
	"net/http"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/errors"
	"tag-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// BankHandler handles the global bank registry
type BankHandler struct {
	bankService services.BankServiceInterface
}

func NewBankHandler(bankService services.BankServiceInterface) *BankHandler {
	return &BankHandler{bankService: bankService}
}

// @Router /banks [get]
func (h *BankHandler) ListBanks(c echo.Context) error {
	banks, err := h.bankService.ListBanks(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: banks,
		Meta: map[string]int{"total": len(banks)},
	})
}

// @Router /banks/{bankId} [get]
func (h *BankHandler) GetBank(c echo.Context) error {
	bankID, ok := requiredParam(c, "bankId")
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	bank, err := h.bankService.GetBank(c.Request().Context(), bankID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: bank})
}

// CreateBank registers a bank. Its table name is fixed here and never changes.
// @Router /banks [post]
func (h *BankHandler) CreateBank(c echo.Context) error {
	var req dto.CreateBankRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	bank, err := h.bankService.CreateBank(c.Request().Context(), req.Name)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: bank})
}
