package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned in the "code" field
const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeCallNotFound   = "CALL_NOT_FOUND"
	CodeCallNotStarted = "CALL_NOT_STARTED"
	CodeTelephonyError = "TELEPHONY_ERROR"
	CodeAIServiceError = "AI_SERVICE_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

// APIError is an error that knows how it should be presented to API clients.
// Cause is logged but never sent.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// UpstreamError creates a 500 error for a failed external collaborator
func UpstreamError(code, message string, cause error) *APIError {
	return &APIError{StatusCode: http.StatusInternalServerError, Code: code, Message: message, Cause: cause}
}

// InternalError creates a sanitized 500 error - never exposes internal details
func InternalError(cause error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Cause:      cause,
	}
}
