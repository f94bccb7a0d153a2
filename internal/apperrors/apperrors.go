package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the error type returned by the service layer. It carries a
// machine-readable code and the HTTP status the handlers should respond with.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError attaches the underlying cause to the error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeTransaction       = "TRANSACTION_ERROR"
)

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// ValidationError reports missing or malformed input. No side effects have
// occurred when one of these is returned.
func ValidationError(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// NotFoundError reports that an entity is absent, or soft-deleted when an
// active one was required.
func NotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// ConflictError reports a uniqueness violation on create or restore.
func ConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

// InsufficientStockError names the product and the shortfall so the caller
// can act on it.
func InsufficientStockError(productName string, requested, available int) *AppError {
	msg := fmt.Sprintf("insufficient stock for product %s (requested: %d, available: %d)", productName, requested, available)
	return New(CodeInsufficientStock, msg, http.StatusUnprocessableEntity)
}

// TransactionError reports an infrastructure-level failure during a
// transactional operation; the transaction has been rolled back.
func TransactionError(message string) *AppError {
	return New(CodeTransaction, message, http.StatusInternalServerError)
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
