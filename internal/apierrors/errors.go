package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeNotFound             = "NOT_FOUND"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeProductNotFound      = "PRODUCT_NOT_FOUND"
	CodeLaneNotFound         = "LANE_NOT_FOUND"
	CodeInsufficientCredits  = "INSUFFICIENT_CREDITS"
	CodePaymentMismatch      = "PAYMENT_MISMATCH"
	CodeInvalidState         = "INVALID_STATE"
	CodeIdempotencyConflict  = "IDEMPOTENCY_CONFLICT"
	CodeRedemptionInProgress = "REDEMPTION_IN_PROGRESS"
	CodeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeInternalError        = "INTERNAL_ERROR"
)

// APIError is an error with everything needed to answer an HTTP request.
// Err holds the underlying cause for logging and is never sent to clients.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden creates a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// InternalError creates a sanitized 500 error that keeps the cause for logs
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
