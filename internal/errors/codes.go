package errors

// ErrorCode is a stable machine-readable API error code
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
	AuthForbidden          ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidID     ErrorCode = "VALIDATION_005"
)

// Tag catalog error codes (TAG_*)
const (
	TagNotFound      ErrorCode = "TAG_001"
	TagAlreadyExists ErrorCode = "TAG_002"
	TagUnknownRef    ErrorCode = "TAG_003"
)

// Bank registry error codes (BANK_*)
const (
	BankNotFound       ErrorCode = "BANK_001"
	BankTableCollision ErrorCode = "BANK_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionReservedField ErrorCode = "TRANSACTION_002"
)

// Summary error codes (SUMMARY_*)
const (
	SummaryNotFound ErrorCode = "SUMMARY_001"
)

// Recompute job error codes (JOB_*)
const (
	JobNotFound ErrorCode = "JOB_001"
)

// Import error codes (IMPORT_*)
const (
	ImportNotFound        ErrorCode = "IMPORT_001"
	ImportUnsupportedFile ErrorCode = "IMPORT_002"
	ImportEmptyFile       ErrorCode = "IMPORT_003"
	ImportFileTooLarge    ErrorCode = "IMPORT_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	SystemRouteNotFound      ErrorCode = "SYSTEM_006"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthForbidden:          "Insufficient permissions to access this resource",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidID:     "Invalid identifier format",

	TagNotFound:      "Tag not found",
	TagAlreadyExists: "A tag with this name already exists",
	TagUnknownRef:    "One or more referenced tags do not exist",

	BankNotFound:       "Bank not found",
	BankTableCollision: "Could not allocate a transaction table for this bank",

	TransactionNotFound:      "Transaction not found",
	TransactionReservedField: "One or more fields cannot be edited",

	SummaryNotFound: "Tags summary has not been computed yet",

	JobNotFound: "Recompute job not found",

	ImportNotFound:        "Import job not found",
	ImportUnsupportedFile: "Unsupported file type, upload CSV or XLSX",
	ImportEmptyFile:       "File has no data rows",
	ImportFileTooLarge:    "File exceeds the upload size limit",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for code, or a generic one for unknown codes
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
