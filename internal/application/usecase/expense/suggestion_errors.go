package expense

import (
	"context"
	"errors"
	"strings"
)

// Error code constants for category suggestion failures.
const (
	ErrCodeAIServiceUnavailable = "AI_SERVICE_UNAVAILABLE"
	ErrCodeAIRateLimited        = "AI_RATE_LIMITED"
	ErrCodeAIAuthError          = "AI_AUTH_ERROR"
	ErrCodeAITimeout            = "AI_TIMEOUT"
	ErrCodeAIParseError         = "AI_PARSE_ERROR"
	ErrCodeAIUnknownError       = "AI_UNKNOWN_ERROR"
)

// errorMessages contains the user-facing message for each error code.
var errorMessages = map[string]string{
	ErrCodeAIServiceUnavailable: "The suggestion service is temporarily unavailable. Please try again later.",
	ErrCodeAIRateLimited:        "Too many suggestion requests. Please wait a few minutes and try again.",
	ErrCodeAIAuthError:          "The suggestion service is misconfigured. Please contact an administrator.",
	ErrCodeAITimeout:            "The suggestion took too long. Please try again.",
	ErrCodeAIParseError:         "The suggestion could not be read. Please try again.",
	ErrCodeAIUnknownError:       "An unexpected error occurred while suggesting a category.",
}

// SuggestionError describes a failed category suggestion.
type SuggestionError struct {
	Code      string
	Message   string
	Retryable bool
	Err       error
}

// Error implements the error interface.
func (e *SuggestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// classifyError converts a model error into a SuggestionError with a code,
// a user-facing message and a retryable flag.
func classifyError(err error) *SuggestionError {
	errStr := strings.ToLower(err.Error())

	newErr := func(code string, retryable bool) *SuggestionError {
		return &SuggestionError{Code: code, Message: errorMessages[code], Retryable: retryable, Err: err}
	}

	// Check for timeout/cancellation (context errors)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newErr(ErrCodeAITimeout, true)
	}

	// Check for rate limiting
	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted") {
		return newErr(ErrCodeAIRateLimited, true)
	}

	// Check for authentication errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "invalid api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "authentication") {
		return newErr(ErrCodeAIAuthError, false)
	}

	// Check for network/connection errors
	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "dial") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "unavailable") || strings.Contains(errStr, "503") {
		return newErr(ErrCodeAIServiceUnavailable, true)
	}

	// Check for parse errors
	if strings.Contains(errStr, "parse") || strings.Contains(errStr, "json") ||
		strings.Contains(errStr, "unmarshal") || strings.Contains(errStr, "decode") {
		return newErr(ErrCodeAIParseError, true)
	}

	return newErr(ErrCodeAIUnknownError, true)
}
