package apierrors

import (
	"errors"

	"redeem-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// SetLogger replaces the package logger, letting bootstrap share one zap core.
func SetLogger(l *observability.Logger) {
	if l != nil {
		logger = l
	}
}

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Message string `json:"message"`        // User-friendly error message
	Code    string `json:"code,omitempty"` // Machine-readable error code
}

// RespondWithError logs and sends a sanitized JSON response to the client.
// This is the primary function handlers should use for error responses.
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()
	apiErr := MapError(err)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.StatusCode >= 500 {
		logger.Error(ctx, "API error response", apiErr.Err)
	} else {
		logger.Info(ctx, "API error response")
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, ErrorResponse{
		Message: apiErr.Message,
		Code:    apiErr.Code,
	})
}

// RespondWithValidationError handles Gin binding/validation errors.
//
//	var req SomeRequest
//	if err := c.ShouldBindJSON(&req); err != nil {
//	    apierrors.RespondWithValidationError(c, err)
//	    return
//	}
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		apiErr := ValidationError(validationErrs)
		logger.InfoWithError(ctx, "Validation failed", err)

		c.AbortWithStatusJSON(apiErr.StatusCode, ErrorResponse{
			Message: apiErr.Message,
			Code:    apiErr.Code,
		})
		return
	}

	// Not a validation error - might be a JSON parsing error or other binding issue
	logger.InfoWithError(ctx, "Request binding failed", err)
	c.AbortWithStatusJSON(400, ErrorResponse{
		Message: "Invalid request format. Please check your JSON syntax.",
		Code:    CodeInvalidInput,
	})
}
