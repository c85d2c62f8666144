package apierrors

import (
	"call-relay/internal/observability"

	"github.com/gin-gonic/gin"
)

// StatusError is the value of the "status" field in every error body
const StatusError = "ERROR"

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// SetLogger replaces the package logger, typically with the application's.
func SetLogger(l *observability.Logger) {
	logger = l
}

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// RespondWithError logs the error and sends a sanitized JSON response.
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
	if apiErr.Cause != nil {
		logger.Error(ctx, "API error response", apiErr.Cause)
	} else {
		logger.Info(ctx, "API error response")
	}

	c.JSON(apiErr.StatusCode, ErrorResponse{
		Status:  StatusError,
		Message: apiErr.Message,
		Code:    apiErr.Code,
	})
}
