package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	InvalidAccount    ErrorCode = "invalid_account"
	AccountNotFound   ErrorCode = "account_not_found"
	DuplicateAccount  ErrorCode = "duplicate_account"
	InsufficientFunds ErrorCode = "insufficient_funds"
	StoreUnavailable  ErrorCode = "store_unavailable"
	StoreCorruption   ErrorCode = "store_corruption"
	InvalidInput      ErrorCode = "invalid_input"
	InvalidAmount     ErrorCode = "invalid_amount"
	InternalError     ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// HTTPStatus maps an error code to the status the handler layer responds with.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case InvalidAccount, InvalidInput, InvalidAmount:
		return http.StatusBadRequest
	case AccountNotFound:
		return http.StatusNotFound
	case DuplicateAccount:
		return http.StatusConflict
	case InsufficientFunds:
		return http.StatusUnprocessableEntity
	case StoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors for common cases
var (
	ErrInvalidAccount         = NewAppError(InvalidAccount, "account number is required")
	ErrAccountNotFound        = NewAppError(AccountNotFound, "account not found")
	ErrDuplicateAccount       = NewAppError(DuplicateAccount, "account already exists")
	ErrInsufficientFunds      = NewAppError(InsufficientFunds, "insufficient funds")
	ErrInvalidAmount          = NewAppError(InvalidAmount, "amount must not be negative")
	ErrCannotBeginTransaction = NewAppError(InternalError, "cannot begin transaction on this executor")
)
