package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

const (
	CodeAlreadyProcessed    = "TX_001"
	CodeLockNotAcquired     = "TX_002"
	CodeTransactionNotFound = "TX_003"
	CodeTokenExpired        = "TX_004"
	CodeBadGateway          = "GW_001"
	CodeTokenIssuer         = "GW_002"
	CodeInvalidRequest      = "REQ_001"
	CodeNoGatewayMatched    = "REQ_002"
	CodeInvalidToken        = "AUTH_001"
	CodeForbidden           = "AUTH_002"
	CodeRateLimited         = "RATE_001"
	CodeInternal            = "SYS_001"
	CodeInvalidTransition   = "SYS_002"
)

// ---- Transaction lifecycle (TX) ----

// ErrAlreadyProcessed is returned when a step is invoked on a transaction that
// already left the stage the step requires.
func ErrAlreadyProcessed(transactionID string, status string) *AppError {
	return New(CodeAlreadyProcessed,
		fmt.Sprintf("Transaction %s already processed (status %s)", transactionID, status), http.StatusConflict)
}

func ErrLockNotAcquired(resource string) *AppError {
	return New(CodeLockNotAcquired, fmt.Sprintf("Lock not acquired for %s", resource), http.StatusConflict)
}

func ErrTransactionNotFound(transactionID string) *AppError {
	return New(CodeTransactionNotFound, fmt.Sprintf("Transaction %s not found", transactionID), http.StatusNotFound)
}

func ErrPaymentTokenExpired(transactionID string) *AppError {
	return New(CodeTokenExpired, fmt.Sprintf("Payment token of transaction %s is expired", transactionID), http.StatusUnprocessableEntity)
}

// ---- Upstream services (GW) ----

// ErrBadGateway wraps a failed call to an external system.
func ErrBadGateway(service string, err error) *AppError {
	return Wrap(CodeBadGateway, fmt.Sprintf("Error calling %s", service), http.StatusBadGateway, err)
}

func ErrTokenIssuer(err error) *AppError {
	return Wrap(CodeTokenIssuer, "Error issuing transaction token", http.StatusBadGateway, err)
}

// ---- Request validation (REQ) ----

func ErrInvalidRequest(message string) *AppError {
	return New(CodeInvalidRequest, message, http.StatusBadRequest)
}

func ErrNoGatewayMatched() *AppError {
	return New(CodeNoGatewayMatched, "No gateway matched the authorization request", http.StatusBadRequest)
}

// Validation returns a REQ_001 validation error.
func Validation(message string) *AppError {
	return ErrInvalidRequest(message)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New(CodeForbidden, "Token not valid for this transaction", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

func ErrInvalidTransition(err error) *AppError {
	return Wrap(CodeInvalidTransition, "Corrupted transaction event log", http.StatusInternalServerError, err)
}
