// Package errors provides custom error types for the Assistec API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User & role errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrRoleNotFound   = &AppError{Code: "ROLE_NOT_FOUND", Message: "Role not found", StatusCode: http.StatusNotFound}
	ErrWeakPassword   = &AppError{Code: "WEAK_PASSWORD", Message: "Password must have at least 6 characters", StatusCode: http.StatusBadRequest}
)

// Ledger draft validation errors. Raised before any store interaction;
// the draft stays open for correction.
var (
	ErrMissingDescription = &AppError{Code: "MISSING_DESCRIPTION", Message: "Description is required", StatusCode: http.StatusBadRequest}
	ErrInvalidAmount      = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be a positive number", StatusCode: http.StatusBadRequest}
	ErrMissingCategory    = &AppError{Code: "MISSING_CATEGORY", Message: "Category is required and must match the transaction type", StatusCode: http.StatusBadRequest}
	ErrMissingDate        = &AppError{Code: "MISSING_DATE", Message: "Date is required", StatusCode: http.StatusBadRequest}
)

// Ledger store errors. Each is scoped to the single operation that
// produced it; callers retry by re-issuing the request.
var (
	ErrLoadFailed   = &AppError{Code: "LOAD_FAILED", Message: "Could not load transactions for the period", StatusCode: http.StatusInternalServerError}
	ErrSubmitFailed = &AppError{Code: "SUBMIT_FAILED", Message: "Could not save the transaction", StatusCode: http.StatusInternalServerError}
	ErrDeleteFailed = &AppError{Code: "DELETE_FAILED", Message: "Could not delete the transaction", StatusCode: http.StatusInternalServerError}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Gallery errors.
var (
	ErrImageNotFound   = &AppError{Code: "IMAGE_NOT_FOUND", Message: "Image not found", StatusCode: http.StatusNotFound}
	ErrInvalidFileType = &AppError{Code: "INVALID_FILE_TYPE", Message: "Only image files are accepted", StatusCode: http.StatusBadRequest}
	ErrFileTooLarge    = &AppError{Code: "FILE_TOO_LARGE", Message: "File exceeds the 5MB size limit", StatusCode: http.StatusRequestEntityTooLarge}
	ErrUploadFailed    = &AppError{Code: "UPLOAD_FAILED", Message: "Could not store the uploaded file", StatusCode: http.StatusInternalServerError}
)

// Credential errors.
var (
	ErrCredentialNotFound = &AppError{Code: "CREDENTIAL_NOT_FOUND", Message: "Credential not found", StatusCode: http.StatusNotFound}
)

// Note errors.
var (
	ErrNoteNotFound = &AppError{Code: "NOTE_NOT_FOUND", Message: "Note not found", StatusCode: http.StatusNotFound}
)

// Advisory result errors.
var (
	ErrResultNotFound = &AppError{Code: "RESULT_NOT_FOUND", Message: "Advisory result not found", StatusCode: http.StatusNotFound}
)
