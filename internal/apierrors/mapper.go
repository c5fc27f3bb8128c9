package apierrors

import (
	"errors"
	"strings"

	analyticsProcessor "redeem-server/internal/analytics/processor"
	authProcessor "redeem-server/internal/auth/processor"
	lanesProcessor "redeem-server/internal/lanes/processor"
	merchProcessor "redeem-server/internal/merch/processor"
	"redeem-server/internal/store"
	usersProcessor "redeem-server/internal/users/processor"
)

// MapError converts domain/processor errors to APIErrors.
// If the error is already an APIError, it returns it as-is.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map auth processor errors
	case errors.Is(err, authProcessor.ErrMissingToken):
		return Unauthorized("Authorization token is missing or invalid")

	case errors.Is(err, authProcessor.ErrExpiredToken):
		return Unauthorized("Authorization token has expired")

	case errors.Is(err, authProcessor.ErrParseJWTToken),
		errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrUnknownUser):
		return Unauthorized("Authorization token is missing or invalid")

	case errors.Is(err, authProcessor.ErrForbidden):
		return Forbidden("Admin access required")

	// Map merch processor errors
	case errors.Is(err, merchProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")

	case errors.Is(err, merchProcessor.ErrProductNotFound):
		return NotFound(CodeProductNotFound, "Product not found")

	case errors.Is(err, merchProcessor.ErrInsufficientCredits):
		return BadRequest(CodeInsufficientCredits, "Not enough credits")

	case errors.Is(err, merchProcessor.ErrInvalidCredits):
		return BadRequest(CodeInvalidInput, "Credits applied must not be negative")

	case errors.Is(err, merchProcessor.ErrPaymentMismatch):
		return BadRequest(CodePaymentMismatch, "Invalid cash payment amount")

	case errors.Is(err, merchProcessor.ErrIdempotencyConflict):
		return Conflict(CodeIdempotencyConflict, "Idempotency key was already used for a different redemption")

	case errors.Is(err, merchProcessor.ErrRedemptionInProgress):
		return Conflict(CodeRedemptionInProgress, "Another redemption is in progress. Please retry shortly.")

	case errors.Is(err, merchProcessor.ErrEmailMismatch):
		return Forbidden("Email does not match the signed-in user")

	// Map lanes processor errors
	case errors.Is(err, lanesProcessor.ErrLaneNotFound):
		return NotFound(CodeLaneNotFound, "Lane not found")

	case errors.Is(err, lanesProcessor.ErrInvalidState):
		return BadRequest(CodeInvalidState, "Invalid state. Allowed values: "+strings.Join(store.LaneStates, ", ")+".")

	// Map analytics processor errors
	case errors.Is(err, analyticsProcessor.ErrSinceRequired):
		return BadRequest(CodeInvalidInput, "Since parameter is required")

	case errors.Is(err, analyticsProcessor.ErrInvalidSince):
		return BadRequest(CodeInvalidInput, "Invalid date format for since parameter")

	case errors.Is(err, analyticsProcessor.ErrEmailMismatch):
		return Forbidden("Email does not match the signed-in user")

	// Map users processor errors
	case errors.Is(err, usersProcessor.ErrEmailRequired):
		return BadRequest(CodeInvalidInput, "Email is required")

	case errors.Is(err, usersProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")

	case errors.Is(err, usersProcessor.ErrForbidden):
		return Forbidden("You may only view your own profile")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
