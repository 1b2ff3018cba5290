package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound              = errors.New("resource not found")
	ErrAlreadyExists         = errors.New("resource already exists")
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrTokenExpired          = errors.New("token expired")
	ErrPaymentFailed         = errors.New("payment failed")
	ErrProviderNotConfigured = errors.New("payment provider not configured")
)

// Machine-readable error codes returned alongside the message
const (
	CodeNotFound              = "ERR_NOT_FOUND"
	CodeAlreadyExists         = "ERR_ALREADY_EXISTS"
	CodeInvalidInput          = "ERR_INVALID_INPUT"
	CodeUnauthorized          = "ERR_UNAUTHORIZED"
	CodeForbidden             = "ERR_FORBIDDEN"
	CodeInvalidCredentials    = "ERR_INVALID_CREDENTIALS"
	CodePaymentFailed         = "ERR_PAYMENT_FAILED"
	CodeProviderNotConfigured = "ERR_PROVIDER_NOT_CONFIGURED"
	CodeInternal              = "ERR_INTERNAL"
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeAlreadyExists, message, ErrAlreadyExists)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func PaymentFailed(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodePaymentFailed, message, ErrPaymentFailed)
}

func ProviderNotConfigured(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeProviderNotConfigured, message, ErrProviderNotConfigured)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "internal server error", err)
}

// InternalErrorWithMessage keeps the cause for logging but returns a specific
// user-facing message instead of the generic one.
func InternalErrorWithMessage(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, message, err)
}
