package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"tag-ledger/internal/errors"
	"tag-ledger/internal/importer"
	"tag-ledger/internal/repositories"
	"tag-ledger/internal/services"
	"tag-ledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// 1. SendError - client and business errors (4xx)
//    SendError(c, errors.TagNotFound)
//    SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//
// 2. SendSystemError - store and unexpected failures (500). The internal error is
//    logged, never returned to the client.
//
// 3. SendServiceError - maps a service or repository sentinel to its code and falls
//    back to SendSystemError for anything unknown.
//
// DO NOT USE echo.NewHTTPError() or c.JSON() directly for errors.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		slog.String("trace_id", traceID),
		slog.String("path", c.Path()),
		slog.String("error", internal.Error()),
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError reports validator failures field by field
func SendValidationError(c echo.Context, err error) error {
	errorResponse := errors.NewValidationError(validation.FieldErrors(err), getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

var serviceErrorCodes = []struct {
	target error
	code   errors.ErrorCode
}{
	{repositories.ErrTagNotFound, errors.TagNotFound},
	{services.ErrDuplicateTagName, errors.TagAlreadyExists},
	{repositories.ErrTagNameExists, errors.TagAlreadyExists},
	{services.ErrUnknownTag, errors.TagUnknownRef},
	{repositories.ErrBankNotFound, errors.BankNotFound},
	{services.ErrBankTableCollision, errors.BankTableCollision},
	{repositories.ErrBankTableExists, errors.BankTableCollision},
	{repositories.ErrTransactionNotFound, errors.TransactionNotFound},
	{repositories.ErrTableNotFound, errors.TransactionNotFound},
	{services.ErrReservedField, errors.TransactionReservedField},
	{repositories.ErrSummaryNotFound, errors.SummaryNotFound},
	{repositories.ErrRecomputeJobNotFound, errors.JobNotFound},
	{services.ErrImportNotFound, errors.ImportNotFound},
	{repositories.ErrImportJobNotFound, errors.ImportNotFound},
	{importer.ErrUnsupportedFileType, errors.ImportUnsupportedFile},
	{importer.ErrMissingHeader, errors.ImportEmptyFile},
	{importer.ErrEmptyFile, errors.ImportEmptyFile},
	{services.ErrCircuitBreakerOpen, errors.SystemServiceUnavailable},
}

// SendServiceError maps known sentinels to their API codes
func SendServiceError(c echo.Context, err error) error {
	for _, candidate := range serviceErrorCodes {
		if stderrors.Is(err, candidate.target) {
			return SendError(c, candidate.code)
		}
	}
	return SendSystemError(c, err)
}
