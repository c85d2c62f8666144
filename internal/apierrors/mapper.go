package apierrors

import (
	"errors"

	"call-relay/internal/callsession"
	callProcessor "call-relay/internal/callsession/processor"

	"github.com/go-playground/validator/v10"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return BadRequest(CodeInvalidInput, buildValidationMessage(validationErrs))
	}

	switch {
	case errors.Is(err, callProcessor.ErrPhoneRequired):
		return BadRequest(CodeInvalidInput, "Phone number is required.")

	case errors.Is(err, callProcessor.ErrTaskRequired):
		return BadRequest(CodeInvalidInput, "Task is required.")

	case errors.Is(err, callProcessor.ErrCallIDRequired):
		return BadRequest(CodeInvalidInput, "Call ID is required.")

	case errors.Is(err, callProcessor.ErrCallNotFound):
		return NotFound(CodeCallNotFound, "Call not found.")

	case errors.Is(err, callsession.ErrSessionNotStarted):
		return BadRequest(CodeCallNotStarted, "Call not started.")

	case errors.Is(err, callProcessor.ErrTelephonyFailed):
		return UpstreamError(CodeTelephonyError, "Failed to start call.", err)

	case errors.Is(err, callProcessor.ErrModelUnavailable):
		return UpstreamError(CodeAIServiceError, "AI service is temporarily unavailable. Please try again later.", err)

	default:
		return InternalError(err)
	}
}
